package model

// ViewStatus represents what the main detail area is currently showing
type ViewStatus string

const (
	// ViewStatusIdle means no fetch is in flight and no new result is pending
	ViewStatusIdle ViewStatus = "Idle"

	// ViewStatusLoading means a search or random fetch is in flight
	ViewStatusLoading ViewStatus = "Loading"

	// ViewStatusDisplaying means a recipe is rendered
	ViewStatusDisplaying ViewStatus = "Displaying"

	// ViewStatusMessage means a plain status message replaced the recipe
	ViewStatusMessage ViewStatus = "Message"
)

// String returns the string representation of ViewStatus
func (vs ViewStatus) String() string {
	return string(vs)
}

// IsActive returns true while a fetch is in flight
func (vs ViewStatus) IsActive() bool {
	return vs == ViewStatusLoading
}

// IsFinished returns true if the last request produced a recipe or a message
func (vs ViewStatus) IsFinished() bool {
	return vs == ViewStatusDisplaying || vs == ViewStatusMessage
}
