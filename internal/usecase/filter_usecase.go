package usecase

import (
	"time"

	"prism/internal/domain/entity"
)

// Filter is the uniform record-selection request applied before any
// aggregation. Zero-valued fields mean "no restriction".
type Filter struct {
	// From/To define an inclusive calendar-day range.
	From *time.Time
	To   *time.Time

	// SubIDs passes records whose Sub ID slots intersect the set.
	SubIDs []string

	// Channels applies to Shopee records only; other platforms are
	// unaffected by this predicate.
	Channels []string

	// Platform restricts to a single marketplace; the excluded
	// marketplace's collection is emptied rather than filtered field-wise.
	Platform entity.Platform
}

// IsZero reports whether the filter imposes no restriction.
func (f *Filter) IsZero() bool {
	return f == nil ||
		(f.From == nil && f.To == nil && len(f.SubIDs) == 0 && len(f.Channels) == 0 && f.Platform == "")
}

// FilterUsecase applies selection predicates uniformly across the three
// canonical collections. Pure and order-preserving.
type FilterUsecase interface {
	// Apply returns a new filtered view of the collections; inputs are
	// never mutated.
	Apply(collections *entity.Collections, filter *Filter) *entity.Collections
}
