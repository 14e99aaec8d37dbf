package model

import (
	"strings"
)

// MaxIngredients is the number of ingredient/measure slots the API exposes per meal
const MaxIngredients = 20

// IngredientSeparator joins ingredient and measurement lists for display
const IngredientSeparator = ", "

// Recipe represents a single meal record returned by the recipe API.
// Ingredients[i] and Measurements[i] describe the same slot; either side may be empty.
type Recipe struct {
	ID           string
	Name         string
	Area         string // origin region
	Category     string
	ThumbnailURL string
	VideoURL     string
	Ingredients  [MaxIngredients]string
	Measurements [MaxIngredients]string
}

// IngredientPair is one positional ingredient slot with at least one side present
type IngredientPair struct {
	Ingredient string
	Measure    string
}

// IngredientList returns the present ingredients in slot order
func (r *Recipe) IngredientList() []string {
	return presentEntries(r.Ingredients[:])
}

// MeasurementList returns the present measurements in slot order
func (r *Recipe) MeasurementList() []string {
	return presentEntries(r.Measurements[:])
}

// JoinedIngredients returns the present ingredients separated by ", "
func (r *Recipe) JoinedIngredients() string {
	return strings.Join(r.IngredientList(), IngredientSeparator)
}

// JoinedMeasurements returns the present measurements separated by ", ".
// The result is joined independently of JoinedIngredients and is not re-paired.
func (r *Recipe) JoinedMeasurements() string {
	return strings.Join(r.MeasurementList(), IngredientSeparator)
}

// Pairs returns ingredient slots where at least one side is present, in slot order
func (r *Recipe) Pairs() []IngredientPair {
	var pairs []IngredientPair
	for i := 0; i < MaxIngredients; i++ {
		ingredient := strings.TrimSpace(r.Ingredients[i])
		measure := strings.TrimSpace(r.Measurements[i])
		if ingredient == "" && measure == "" {
			continue
		}
		pairs = append(pairs, IngredientPair{Ingredient: ingredient, Measure: measure})
	}
	return pairs
}

// HasVideo reports whether the recipe carries a video link
func (r *Recipe) HasVideo() bool {
	return strings.TrimSpace(r.VideoURL) != ""
}

// presentEntries drops empty and whitespace-only slots
func presentEntries(slots []string) []string {
	entries := make([]string, 0, len(slots))
	for _, slot := range slots {
		if s := strings.TrimSpace(slot); s != "" {
			entries = append(entries, s)
		}
	}
	return entries
}
