package session

// Package session holds the application state shown in the main window: the
// current recipe or message, its rendered Document and thumbnail. It runs each
// search or random fetch in the background, lets a newer request supersede a
// pending one, and reports every state change through an update callback.
