package mealdb

// Package mealdb implements the query side of the app on top of TheMealDB's
// public JSON API. It builds search and random request URLs, performs one GET per
// call, decodes the {"meals": [...]} envelope and returns the first record.
