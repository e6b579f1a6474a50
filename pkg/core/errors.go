package core

import "errors"

// Common errors.
var (
	ErrLoadFailed        = errors.New("failed to load collection")
	ErrNotFound          = errors.New("not found")
	ErrInvalidSortField  = errors.New("invalid sort field")
	ErrInvalidDirection  = errors.New("invalid sort direction")
	ErrInvalidTheme      = errors.New("invalid theme")
	ErrStorageNotDefined = errors.New("storage is not configured")
	ErrEmptyName         = errors.New("wine name cannot be empty")
)
