package entity

import "github.com/shopspring/decimal"

// NoSubIDBucket is the reserved attribution target for ad spend that
// matches no known Sub ID.
const NoSubIDBucket = "no_sub_id"

// AttributedSpend accumulates advertising spend assigned to one Sub ID.
type AttributedSpend struct {
	SubID       string          `json:"sub_id"`
	Spend       decimal.Decimal `json:"spend"`
	AdCount     int             `json:"ad_count"`
	Impressions int64           `json:"impressions"`
	Clicks      int64           `json:"clicks"`
}

// SubIDMetrics is the full performance picture for one Sub ID.
// All monetary values keep full precision; rounding happens only at the
// delivery boundary.
type SubIDMetrics struct {
	SubID            string          `json:"sub_id"`
	ShopeeCommission decimal.Decimal `json:"shopee_commission"`
	LazadaCommission decimal.Decimal `json:"lazada_commission"`
	TotalCommission  decimal.Decimal `json:"total_commission"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	AdSpend          decimal.Decimal `json:"ad_spend"`
	ShopeeOrders     int             `json:"shopee_orders"`
	LazadaOrders     int             `json:"lazada_orders"`
	UniqueOrders     int             `json:"unique_orders"`
	TotalProfit      decimal.Decimal `json:"total_profit"`
	OverallROI       decimal.Decimal `json:"overall_roi"`
	CostPerOrder     decimal.Decimal `json:"cost_per_order"`
}

// PlatformMetrics aggregates one platform's contribution.
type PlatformMetrics struct {
	Platform    Platform        `json:"platform"`
	Commission  decimal.Decimal `json:"commission"`
	Amount      decimal.Decimal `json:"amount"`
	AdSpend     decimal.Decimal `json:"ad_spend"`
	Orders      int             `json:"orders"`
	AdCount     int             `json:"ad_count"`
	Impressions int64           `json:"impressions"`
	Clicks      int64           `json:"clicks"`
}

// DayMetrics aggregates one calendar day. Records with an unparseable
// timestamp land under the UnknownDay key.
type DayMetrics struct {
	Day        string          `json:"day"`
	Commission decimal.Decimal `json:"commission"`
	AdSpend    decimal.Decimal `json:"ad_spend"`
	Orders     int             `json:"orders"`
	Profit     decimal.Decimal `json:"profit"`
	ROI        decimal.Decimal `json:"roi"`
}

// LabelMetrics aggregates a category or product label. Identical labels on
// different platforms stay separate buckets.
type LabelMetrics struct {
	Label      string          `json:"label"`
	Platform   Platform        `json:"platform"`
	Commission decimal.Decimal `json:"commission"`
	Amount     decimal.Decimal `json:"amount"`
	Orders     int             `json:"orders"`
}

// LabelBucketKey builds the composite map key for category/product buckets.
func LabelBucketKey(label string, platform Platform) string {
	return label + "|" + string(platform)
}

// Totals holds the scalar grand totals of one aggregation pass.
type Totals struct {
	TotalCommission decimal.Decimal `json:"total_commission"`
	TotalAdSpend    decimal.Decimal `json:"total_ad_spend"`
	TotalOrders     int             `json:"total_orders"`
	TotalProfit     decimal.Decimal `json:"total_profit"`
	OverallROI      decimal.Decimal `json:"overall_roi"`
}

// Aggregates is the complete output of the metrics aggregation stage.
type Aggregates struct {
	PerSubID     []SubIDMetrics              `json:"per_sub_id"`
	NoSubIDSpend AttributedSpend             `json:"no_sub_id_spend"`
	PerPlatform  map[Platform]*PlatformMetrics `json:"per_platform"`
	PerDay       map[string]*DayMetrics        `json:"per_day"`
	PerCategory  map[string]*LabelMetrics      `json:"per_category"`
	PerProduct   map[string]*LabelMetrics      `json:"per_product"`
	Totals       Totals                        `json:"totals"`
}
