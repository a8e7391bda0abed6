package research

import "errors"

// Domain-specific errors for the research package.
var (
	ErrEmptyQuery = errors.New("research query is empty")
)
