package intent

import "errors"

// Domain-specific errors for the intent package.
var (
	// ErrUnknownBudget is returned when a caller passes a reasoning budget
	// outside {quick, standard, deep}. Guessing a budget would hide caller
	// bugs, so this fails fast instead of falling back.
	ErrUnknownBudget = errors.New("unknown reasoning budget")
)
