package repo

import "time"

// SaleFilter holds the optional, conjunctive filters of a sales listing.
// Nil fields are not applied.
type SaleFilter struct {
	Since     *time.Time
	Until     *time.Time
	ProductID *int
	MinAmount *float64
	MaxAmount *float64
	Offset    *int
	Limit     *int
}
