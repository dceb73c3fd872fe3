package impl

import (
	"strings"

	"prism/internal/domain/entity"
	"prism/internal/usecase"
)

type attributionService struct{}

// NewAttributionService creates the Sub ID attribution engine.
func NewAttributionService() usecase.AttributionUsecase {
	return &attributionService{}
}

// Attribute assigns every ad record to at most one Sub ID bucket using the
// FirstSubstringMatch heuristic. The Sub ID universe is built from the
// order collections in scan order (Shopee first, then Lazada), and ties go
// to the first matching Sub ID, not the best one.
func (s *attributionService) Attribute(collections *entity.Collections) map[string]*entity.AttributedSpend {
	universe := subIDUniverse(collections)

	buckets := make(map[string]*entity.AttributedSpend, len(universe)+1)
	for _, ad := range collections.FacebookAds {
		target := entity.NoSubIDBucket
		name := ad.FullName()
		for _, subID := range universe {
			if strings.Contains(name, strings.ToLower(subID)) {
				target = subID

				break
			}
		}

		bucket, ok := buckets[target]
		if !ok {
			bucket = &entity.AttributedSpend{SubID: target}
			buckets[target] = bucket
		}
		bucket.Spend = bucket.Spend.Add(ad.Spend)
		bucket.AdCount++
		bucket.Impressions += ad.Impressions
		bucket.Clicks += ad.Clicks
	}

	return buckets
}

// subIDUniverse collects every trimmed, non-empty Sub ID observed in the
// order collections, deduplicated and in first-seen scan order.
func subIDUniverse(collections *entity.Collections) []string {
	seen := make(map[string]struct{})
	var universe []string

	collect := func(orders []entity.OrderRecord) {
		for _, order := range orders {
			for _, subID := range order.SubIDs {
				subID = strings.TrimSpace(subID)
				if subID == "" {
					continue
				}
				if _, ok := seen[subID]; ok {
					continue
				}
				seen[subID] = struct{}{}
				universe = append(universe, subID)
			}
		}
	}
	collect(collections.ShopeeOrders)
	collect(collections.LazadaOrders)

	return universe
}
