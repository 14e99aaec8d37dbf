package session

import (
	"errors"

	"github.com/ytget/meal-maker/internal/mealdb"
)

// QueryKind identifies what the user asked for
type QueryKind string

const (
	QuerySearch QueryKind = "search"
	QueryRandom QueryKind = "random"
)

// Messages are the user-facing texts for non-recipe outcomes
type Messages struct {
	EmptyQuery     string
	NotFound       string
	RandomNotFound string
	FetchFailed    string
}

// DefaultMessages returns the English messages
func DefaultMessages() Messages {
	return Messages{
		EmptyQuery:     "Please enter a search term.",
		NotFound:       "No meal found.",
		RandomNotFound: "No random meal found.",
		FetchFailed:    "Could not reach the recipe service.",
	}
}

// For returns the message for err raised by a query of the given kind
func (m Messages) For(kind QueryKind, err error) string {
	switch {
	case errors.Is(err, mealdb.ErrEmptyQuery):
		return m.EmptyQuery
	case errors.Is(err, mealdb.ErrNotFound):
		if kind == QueryRandom {
			return m.RandomNotFound
		}
		return m.NotFound
	default:
		return m.FetchFailed
	}
}
