package domain

import "time"

// Shop represents a single coffee shop listing.
// ID and DateEntered are assigned by the database at insert time and are
// immutable afterwards. Deleted marks a soft-deleted record: the row stays
// in storage but is hidden from normal reads.
type Shop struct {
	ID          int64
	Name        string
	Rating      float64
	DateEntered time.Time
	Favorited   bool
	Deleted     bool
}

// MaxNameLength is the longest shop name accepted by Create, matching the
// column constraint in the shops table.
const MaxNameLength = 255

// Rating bounds enforced on Create. Stored as NUMERIC(3,2), so two
// fractional digits.
const (
	MinRating = 0.0
	MaxRating = 5.0
)
