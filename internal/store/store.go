// Package store holds what the record store implementations share.
package store

import "errors"

// ErrNotFound is returned when a summary id does not exist.
var ErrNotFound = errors.New("summary not found")

// DefaultListLimit applies when ListSummaries is called with limit <= 0.
const DefaultListLimit = 10
