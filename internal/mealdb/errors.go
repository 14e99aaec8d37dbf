package mealdb

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyQuery is returned when a search is requested without a term
	ErrEmptyQuery = errors.New("empty search term")

	// ErrNotFound is returned when the API reports no matching meal
	ErrNotFound = errors.New("no meal found")
)

// FetchError describes a transport, status or decoding failure while talking to the API
type FetchError struct {
	Op         string // "search" or "random"
	URL        string
	StatusCode int // 0 when no response was received
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s %s: status %d: %v", e.Op, e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
