package http

import (
	"errors"

	"legal-research-assistant/internal/research"
)

// mapError translates use-case errors into client-facing ones. Unknown
// errors pass through and are rendered as a generic internal error.
func (h *handler) mapError(err error) (error, bool) {
	switch {
	case errors.Is(err, research.ErrEmptyQuery):
		return research.ErrEmptyQuery, true
	default:
		return err, false
	}
}
