package mealdb

import (
	"fmt"
	"strings"

	"github.com/ytget/meal-maker/internal/model"
)

// JSON field names used by the API for a single meal
const (
	FieldID               = "idMeal"
	FieldName             = "strMeal"
	FieldArea             = "strArea"
	FieldCategory         = "strCategory"
	FieldThumbnail        = "strMealThumb"
	FieldYoutube          = "strYoutube"
	FieldIngredientFormat = "strIngredient%d"
	FieldMeasureFormat    = "strMeasure%d"
)

// envelope is the response shape shared by search.php and random.php
type envelope struct {
	Meals []rawMeal `json:"meals"`
}

// rawMeal keeps the flat API object; values are strings or null
type rawMeal map[string]any

// get returns the string value for key, or "" for null, missing or non-string values
func (m rawMeal) get(key string) string {
	v, ok := m[key]
	if !ok || v == nil {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}

// toRecipe converts the flat API object into a Recipe
func (m rawMeal) toRecipe() *model.Recipe {
	r := &model.Recipe{
		ID:           m.get(FieldID),
		Name:         m.get(FieldName),
		Area:         m.get(FieldArea),
		Category:     m.get(FieldCategory),
		ThumbnailURL: m.get(FieldThumbnail),
		VideoURL:     m.get(FieldYoutube),
	}

	for i := 0; i < model.MaxIngredients; i++ {
		r.Ingredients[i] = m.get(fmt.Sprintf(FieldIngredientFormat, i+1))
		r.Measurements[i] = m.get(fmt.Sprintf(FieldMeasureFormat, i+1))
	}

	return r
}
