package mealdb

import (
	"context"

	"github.com/ytget/meal-maker/internal/model"
)

// Source defines the interface for fetching a single recipe.
type Source interface {
	// SearchByName returns the first meal whose name matches term.
	// An empty term yields ErrEmptyQuery without touching the network.
	SearchByName(ctx context.Context, term string) (*model.Recipe, error)

	// Random returns one random meal.
	Random(ctx context.Context) (*model.Recipe, error)
}
