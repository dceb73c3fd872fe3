package impl

import (
	"time"

	"prism/internal/domain/entity"
	"prism/internal/usecase"
)

type filterService struct{}

// NewFilterService creates the filter pipeline.
func NewFilterService() usecase.FilterUsecase {
	return &filterService{}
}

// Apply returns a filtered copy of the collections. Predicates are pure
// and order-preserving; inputs are never mutated.
//
// Date handling is asymmetric on purpose: Shopee rows with an unparseable
// order time pass a date-range filter (fail-open) while Lazada and
// advertising rows are dropped (fail-closed). Changing this would shift
// historical report totals, so the behavior is preserved as-is.
func (s *filterService) Apply(collections *entity.Collections, filter *usecase.Filter) *entity.Collections {
	if filter.IsZero() {
		return collections.Clone()
	}

	var rangeStart, rangeEnd time.Time
	hasRange := filter.From != nil || filter.To != nil
	if filter.From != nil {
		rangeStart = startOfDay(*filter.From)
	}
	if filter.To != nil {
		rangeEnd = endOfDay(*filter.To)
	}

	subIDs := toSet(filter.SubIDs)
	channels := toSet(filter.Channels)

	includeShopee := filter.Platform == "" || filter.Platform == entity.PlatformShopee
	includeLazada := filter.Platform == "" || filter.Platform == entity.PlatformLazada

	filtered := &entity.Collections{}

	if includeShopee {
		for _, order := range collections.ShopeeOrders {
			if hasRange && order.HasOrderTime() && !inRange(order.OrderTime, rangeStart, rangeEnd) {
				continue
			}
			if len(subIDs) > 0 && !intersects(order.SubIDs, subIDs) {
				continue
			}
			if len(channels) > 0 {
				if _, ok := channels[order.Channel]; !ok {
					continue
				}
			}
			filtered.ShopeeOrders = append(filtered.ShopeeOrders, order)
		}
	}

	if includeLazada {
		for _, order := range collections.LazadaOrders {
			if hasRange && (!order.HasOrderTime() || !inRange(order.OrderTime, rangeStart, rangeEnd)) {
				continue
			}
			if len(subIDs) > 0 && !intersects(order.SubIDs, subIDs) {
				continue
			}
			// The channel predicate never applies to Lazada; it has no
			// channel column.
			filtered.LazadaOrders = append(filtered.LazadaOrders, order)
		}
	}

	for _, ad := range collections.FacebookAds {
		if hasRange && (!ad.HasDate() || !inRange(ad.Date, rangeStart, rangeEnd)) {
			continue
		}
		filtered.FacebookAds = append(filtered.FacebookAds, ad)
	}

	return filtered
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return startOfDay(t).Add(24*time.Hour - time.Nanosecond)
}

func inRange(t, start, end time.Time) bool {
	if !start.IsZero() && t.Before(start) {
		return false
	}
	if !end.IsZero() && t.After(end) {
		return false
	}

	return true
}

func toSet(values []string) map[string]struct{} {
	if len(values) == 0 {
		return nil
	}

	set := make(map[string]struct{}, len(values))
	for _, value := range values {
		set[value] = struct{}{}
	}

	return set
}

func intersects(values []string, set map[string]struct{}) bool {
	for _, value := range values {
		if _, ok := set[value]; ok {
			return true
		}
	}

	return false
}
