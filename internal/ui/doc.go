package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It wires the search entry and buttons to the session, renders the current
// recipe document and thumbnail, and hosts the settings dialog and menus.
// All UI strings are localized via Localization.
