package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// UnknownDay is the reserved per-day bucket key for records whose
// timestamp could not be parsed. Keeping such records in a named bucket
// instead of dropping them preserves the invariant that per-day sums
// always equal the grand totals.
const UnknownDay = "unknown"

// dayFormat is the calendar-day key layout used by all per-day buckets.
const dayFormat = "2006-01-02"

// OrderRecord is a canonical marketplace order row. A single logical order
// can span multiple rows when it covers several product categories, so
// OrderID is unique per platform but not per row.
type OrderRecord struct {
	OrderID    string          `json:"order_id"`
	SubIDs     []string        `json:"sub_ids"`
	Channel    string          `json:"channel,omitempty"` // Shopee only
	Category   string          `json:"category"`
	Product    string          `json:"product"`
	Commission decimal.Decimal `json:"commission"`
	Amount     decimal.Decimal `json:"amount"`
	OrderTime  time.Time       `json:"order_time"` // zero value means unparseable
	Origin     Origin          `json:"origin,omitempty"`
}

// HasOrderTime reports whether the order carries a parseable timestamp.
func (r *OrderRecord) HasOrderTime() bool {
	return !r.OrderTime.IsZero()
}

// DayKey returns the calendar-day bucket key for the order.
func (r *OrderRecord) DayKey() string {
	if !r.HasOrderTime() {
		return UnknownDay
	}

	return r.OrderTime.Format(dayFormat)
}

// DistinctSubIDs returns the order's Sub IDs deduplicated by value,
// preserving slot order. A row may legitimately repeat the same Sub ID
// across slots; metrics credit each value once.
func (r *OrderRecord) DistinctSubIDs() []string {
	if len(r.SubIDs) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(r.SubIDs))
	distinct := make([]string, 0, len(r.SubIDs))
	for _, subID := range r.SubIDs {
		if _, ok := seen[subID]; ok {
			continue
		}
		seen[subID] = struct{}{}
		distinct = append(distinct, subID)
	}

	return distinct
}
