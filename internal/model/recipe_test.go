package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newRecipe(ingredients, measurements map[int]string) *Recipe {
	r := &Recipe{Name: "Test"}
	for i, v := range ingredients {
		r.Ingredients[i] = v
	}
	for i, v := range measurements {
		r.Measurements[i] = v
	}
	return r
}

func TestRecipe_JoinedIngredients(t *testing.T) {
	tests := []struct {
		name        string
		ingredients map[int]string
		expected    string
	}{
		{"no ingredients", nil, ""},
		{"single", map[int]string{0: "Flour"}, "Flour"},
		{"contiguous", map[int]string{0: "Flour", 1: "Sugar", 2: "Eggs"}, "Flour, Sugar, Eggs"},
		{"sparse keeps order", map[int]string{3: "Eggs", 0: "Flour", 19: "Salt"}, "Flour, Eggs, Salt"},
		{"whitespace only skipped", map[int]string{0: "Flour", 1: "  ", 2: "Milk"}, "Flour, Milk"},
		{"entries trimmed", map[int]string{0: " Butter "}, "Butter"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRecipe(tt.ingredients, nil)
			assert.Equal(t, tt.expected, r.JoinedIngredients())
		})
	}
}

func TestRecipe_JoinedMeasurementsIndependentOfIngredients(t *testing.T) {
	r := newRecipe(
		map[int]string{0: "flour", 2: "sugar"},
		map[int]string{1: "2 cups", 2: "1 cup"},
	)

	assert.Equal(t, "flour, sugar", r.JoinedIngredients())
	assert.Equal(t, "2 cups, 1 cup", r.JoinedMeasurements())
}

func TestRecipe_Lists(t *testing.T) {
	r := newRecipe(map[int]string{5: "b", 1: "a"}, map[int]string{7: "x"})

	assert.Equal(t, []string{"a", "b"}, r.IngredientList())
	assert.Equal(t, []string{"x"}, r.MeasurementList())
	assert.Empty(t, (&Recipe{}).IngredientList())
}

func TestRecipe_Pairs(t *testing.T) {
	r := newRecipe(
		map[int]string{0: "flour", 2: "sugar"},
		map[int]string{0: "2 cups", 1: "pinch", 2: " "},
	)

	expected := []IngredientPair{
		{Ingredient: "flour", Measure: "2 cups"},
		{Ingredient: "", Measure: "pinch"},
		{Ingredient: "sugar", Measure: ""},
	}
	assert.Equal(t, expected, r.Pairs())
}

func TestRecipe_HasVideo(t *testing.T) {
	assert.False(t, (&Recipe{}).HasVideo())
	assert.False(t, (&Recipe{VideoURL: "  "}).HasVideo())
	assert.True(t, (&Recipe{VideoURL: "https://youtu.be/abc123"}).HasVideo())
}
