package repository

import "errors"

// ErrNotFound is returned when no task exists for the given ID.
var ErrNotFound = errors.New("task not found in store")
