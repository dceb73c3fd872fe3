package usecase

import (
	"prism/internal/domain/entity"
)

// AggregateUsecase computes the derived metrics over filtered, reconciled
// collections. Pure: re-running it on the same inputs yields identical
// bucket contents.
type AggregateUsecase interface {
	// Aggregate builds the five bucket families and the grand totals.
	// attributed is the Sub ID spend mapping produced by the attribution
	// engine over the same collections.
	Aggregate(collections *entity.Collections, attributed map[string]*entity.AttributedSpend) *entity.Aggregates
}
