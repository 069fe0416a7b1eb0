package store

import "errors"

// Sentinel errors returned by storages. Callers should use [errors.Is] to
// match against these values.
var (
	// ErrEmptyHistoryEntryID is returned when an entry without an ID is
	// appended to the history.
	ErrEmptyHistoryEntryID = errors.New("history entry has no id")
)
