package impl

import (
	"sort"

	"prism/internal/domain/entity"
	"prism/internal/usecase"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// subIDAccumulator carries the per-Sub-ID running state during one pass.
// Shopee orders deduplicate by order ID; Lazada rows count directly.
type subIDAccumulator struct {
	metrics        entity.SubIDMetrics
	shopeeOrderIDs map[string]struct{}
}

type aggregatorService struct{}

// NewAggregatorService creates the metrics aggregator.
func NewAggregatorService() usecase.AggregateUsecase {
	return &aggregatorService{}
}

// Aggregate computes every bucket family in a single pass over the
// collections. All accumulation keeps full precision; rounding is the
// delivery layer's job.
func (s *aggregatorService) Aggregate(collections *entity.Collections, attributed map[string]*entity.AttributedSpend) *entity.Aggregates {
	agg := &entity.Aggregates{
		PerPlatform: make(map[entity.Platform]*entity.PlatformMetrics),
		PerDay:      make(map[string]*entity.DayMetrics),
		PerCategory: make(map[string]*entity.LabelMetrics),
		PerProduct:  make(map[string]*entity.LabelMetrics),
	}

	subAccums := make(map[string]*subIDAccumulator)
	var subOrder []string

	// Per-bucket order-ID sets so a multi-line Shopee order counts once
	// per bucket it touches.
	dayOrderIDs := make(map[string]map[string]struct{})
	categoryOrderIDs := make(map[string]map[string]struct{})
	productOrderIDs := make(map[string]map[string]struct{})
	platformOrderIDs := make(map[string]struct{})

	for _, order := range collections.ShopeeOrders {
		agg.Totals.TotalCommission = agg.Totals.TotalCommission.Add(order.Commission)

		platform := platformBucket(agg, entity.PlatformShopee)
		platform.Commission = platform.Commission.Add(order.Commission)
		platform.Amount = platform.Amount.Add(order.Amount)
		if _, ok := platformOrderIDs[order.OrderID]; !ok {
			platformOrderIDs[order.OrderID] = struct{}{}
			platform.Orders++
			agg.Totals.TotalOrders++
		}

		day := dayBucket(agg, order.DayKey())
		day.Commission = day.Commission.Add(order.Commission)
		if addOnce(dayOrderIDs, order.DayKey(), order.OrderID) {
			day.Orders++
		}

		category := labelBucket(agg.PerCategory, order.Category, entity.PlatformShopee)
		category.Commission = category.Commission.Add(order.Commission)
		category.Amount = category.Amount.Add(order.Amount)
		if addOnce(categoryOrderIDs, entity.LabelBucketKey(order.Category, entity.PlatformShopee), order.OrderID) {
			category.Orders++
		}

		product := labelBucket(agg.PerProduct, order.Product, entity.PlatformShopee)
		product.Commission = product.Commission.Add(order.Commission)
		product.Amount = product.Amount.Add(order.Amount)
		if addOnce(productOrderIDs, entity.LabelBucketKey(order.Product, entity.PlatformShopee), order.OrderID) {
			product.Orders++
		}

		for _, subID := range order.DistinctSubIDs() {
			accum, ok := subAccums[subID]
			if !ok {
				accum = &subIDAccumulator{
					metrics:        entity.SubIDMetrics{SubID: subID},
					shopeeOrderIDs: make(map[string]struct{}),
				}
				subAccums[subID] = accum
				subOrder = append(subOrder, subID)
			}
			accum.metrics.ShopeeCommission = accum.metrics.ShopeeCommission.Add(order.Commission)
			accum.metrics.TotalAmount = accum.metrics.TotalAmount.Add(order.Amount)
			if _, seen := accum.shopeeOrderIDs[order.OrderID]; !seen {
				accum.shopeeOrderIDs[order.OrderID] = struct{}{}
				accum.metrics.ShopeeOrders++
			}
		}
	}

	for _, order := range collections.LazadaOrders {
		agg.Totals.TotalCommission = agg.Totals.TotalCommission.Add(order.Commission)
		agg.Totals.TotalOrders++

		platform := platformBucket(agg, entity.PlatformLazada)
		platform.Commission = platform.Commission.Add(order.Commission)
		platform.Amount = platform.Amount.Add(order.Amount)
		platform.Orders++

		day := dayBucket(agg, order.DayKey())
		day.Commission = day.Commission.Add(order.Commission)
		day.Orders++

		category := labelBucket(agg.PerCategory, order.Category, entity.PlatformLazada)
		category.Commission = category.Commission.Add(order.Commission)
		category.Amount = category.Amount.Add(order.Amount)
		category.Orders++

		product := labelBucket(agg.PerProduct, order.Product, entity.PlatformLazada)
		product.Commission = product.Commission.Add(order.Commission)
		product.Amount = product.Amount.Add(order.Amount)
		product.Orders++

		for _, subID := range order.DistinctSubIDs() {
			accum, ok := subAccums[subID]
			if !ok {
				accum = &subIDAccumulator{
					metrics:        entity.SubIDMetrics{SubID: subID},
					shopeeOrderIDs: make(map[string]struct{}),
				}
				subAccums[subID] = accum
				subOrder = append(subOrder, subID)
			}
			accum.metrics.LazadaCommission = accum.metrics.LazadaCommission.Add(order.Commission)
			accum.metrics.TotalAmount = accum.metrics.TotalAmount.Add(order.Amount)
			accum.metrics.LazadaOrders++
		}
	}

	for _, ad := range collections.FacebookAds {
		agg.Totals.TotalAdSpend = agg.Totals.TotalAdSpend.Add(ad.Spend)

		platform := platformBucket(agg, entity.PlatformFacebook)
		platform.AdSpend = platform.AdSpend.Add(ad.Spend)
		platform.AdCount++
		platform.Impressions += ad.Impressions
		platform.Clicks += ad.Clicks

		day := dayBucket(agg, ad.DayKey())
		day.AdSpend = day.AdSpend.Add(ad.Spend)
	}

	if noSubID, ok := attributed[entity.NoSubIDBucket]; ok {
		agg.NoSubIDSpend = *noSubID
	} else {
		agg.NoSubIDSpend = entity.AttributedSpend{SubID: entity.NoSubIDBucket}
	}

	for subID, accum := range subAccums {
		if spend, ok := attributed[subID]; ok {
			accum.metrics.AdSpend = spend.Spend
		}
	}

	agg.PerSubID = finalizeSubIDs(subAccums, subOrder)
	finalizeDays(agg)
	finalizeTotals(agg)

	return agg
}

// finalizeSubIDs derives profit, ROI and cost-per-order and drops
// noise-only buckets: a Sub ID with zero orders and zero commission is not
// signal, even if orphan spend leaked onto it.
func finalizeSubIDs(accums map[string]*subIDAccumulator, order []string) []entity.SubIDMetrics {
	results := make([]entity.SubIDMetrics, 0, len(accums))
	for _, subID := range order {
		accum := accums[subID]
		m := accum.metrics
		m.TotalCommission = m.ShopeeCommission.Add(m.LazadaCommission)
		m.UniqueOrders = m.ShopeeOrders + m.LazadaOrders
		if m.UniqueOrders == 0 && m.TotalCommission.IsZero() {
			continue
		}

		m.TotalProfit = m.TotalCommission.Sub(m.AdSpend)
		if m.AdSpend.IsPositive() {
			m.OverallROI = m.TotalProfit.Div(m.AdSpend).Mul(hundred)
		}
		if m.UniqueOrders > 0 {
			m.CostPerOrder = m.AdSpend.Div(decimal.NewFromInt(int64(m.UniqueOrders)))
		}
		results = append(results, m)
	}

	sort.SliceStable(results, func(i, j int) bool {
		if !results[i].TotalCommission.Equal(results[j].TotalCommission) {
			return results[i].TotalCommission.GreaterThan(results[j].TotalCommission)
		}

		return results[i].SubID < results[j].SubID
	})

	return results
}

func finalizeDays(agg *entity.Aggregates) {
	for _, day := range agg.PerDay {
		day.Profit = day.Commission.Sub(day.AdSpend)
		if day.AdSpend.IsPositive() {
			day.ROI = day.Profit.Div(day.AdSpend).Mul(hundred)
		}
	}
}

func finalizeTotals(agg *entity.Aggregates) {
	agg.Totals.TotalProfit = agg.Totals.TotalCommission.Sub(agg.Totals.TotalAdSpend)
	if agg.Totals.TotalAdSpend.IsPositive() {
		agg.Totals.OverallROI = agg.Totals.TotalProfit.Div(agg.Totals.TotalAdSpend).Mul(hundred)
	}
}

func platformBucket(agg *entity.Aggregates, platform entity.Platform) *entity.PlatformMetrics {
	bucket, ok := agg.PerPlatform[platform]
	if !ok {
		bucket = &entity.PlatformMetrics{Platform: platform}
		agg.PerPlatform[platform] = bucket
	}

	return bucket
}

func dayBucket(agg *entity.Aggregates, day string) *entity.DayMetrics {
	bucket, ok := agg.PerDay[day]
	if !ok {
		bucket = &entity.DayMetrics{Day: day}
		agg.PerDay[day] = bucket
	}

	return bucket
}

func labelBucket(buckets map[string]*entity.LabelMetrics, label string, platform entity.Platform) *entity.LabelMetrics {
	key := entity.LabelBucketKey(label, platform)
	bucket, ok := buckets[key]
	if !ok {
		bucket = &entity.LabelMetrics{Label: label, Platform: platform}
		buckets[key] = bucket
	}

	return bucket
}

func addOnce(sets map[string]map[string]struct{}, bucketKey, orderID string) bool {
	set, ok := sets[bucketKey]
	if !ok {
		set = make(map[string]struct{})
		sets[bucketKey] = set
	}
	if _, seen := set[orderID]; seen {
		return false
	}
	set[orderID] = struct{}{}

	return true
}
