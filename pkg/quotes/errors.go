package quotes

import "errors"

// Common errors returned by the rotator.
var (
	// ErrNoQuotes is returned when the quote list is empty.
	ErrNoQuotes = errors.New("no quotes configured")

	// ErrCategoryNotFound is returned when no quote has the requested category.
	ErrCategoryNotFound = errors.New("no quotes in category")
)
