package model

// Package model defines domain data structures used across the app: the recipe
// record returned by the remote API and the view status enum that drives the
// main window. Structures are plain values; they carry no I/O.
