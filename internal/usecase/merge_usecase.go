package usecase

import (
	"prism/internal/domain/entity"
)

// OrderMergeResult is the outcome of reconciling two order collections of
// different origins for one platform.
type OrderMergeResult struct {
	Merged    []entity.OrderRecord
	Stats     entity.PlatformMergeStats
	Conflicts []entity.Conflict
}

// AdMergeResult is the outcome of reconciling two ad collections of
// different origins.
type AdMergeResult struct {
	Merged    []entity.AdRecord
	Stats     entity.PlatformMergeStats
	Conflicts []entity.Conflict
}

// MergeUsecase reconciles a previously stored dataset with a newly arrived
// one. When the same key exists in both origins, the API-synced value wins
// and the disagreement is recorded as a resolved conflict, never an error.
type MergeUsecase interface {
	// MergeOrders merges order collections keyed by order ID. Rows sharing
	// an order ID are order lines and move together as a unit.
	MergeOrders(existing, incoming []entity.OrderRecord, platform entity.Platform) *OrderMergeResult

	// MergeAds merges ad collections keyed by the
	// (campaign, ad set, ad, day) composite.
	MergeAds(existing, incoming []entity.AdRecord) *AdMergeResult

	// DetectAnomalies runs the cross-platform pass comparing daily ad spend
	// against daily commission. It must run only after all per-platform
	// merges complete. Findings are advisory recommendations.
	DetectAnomalies(collections *entity.Collections) ([]entity.Conflict, []string)
}
