package datemath

import "time"

// Range is an absolute publication-date window resolved from a relative
// phrase.
type Range struct {
	From time.Time
	To   time.Time
}
