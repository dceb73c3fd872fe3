package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// AdRecord is a canonical advertising-spend row at creative granularity.
// Ad platforms do not expose a stable cross-sync identifier at this level,
// so deduplication keys on the naming composite plus the calendar day.
type AdRecord struct {
	CampaignName string          `json:"campaign_name"`
	AdSetName    string          `json:"ad_set_name"`
	AdName       string          `json:"ad_name"`
	Spend        decimal.Decimal `json:"spend"`
	Impressions  int64           `json:"impressions"`
	Clicks       int64           `json:"clicks"`
	Reach        int64           `json:"reach"`
	CTR          decimal.Decimal `json:"ctr"`
	CPM          decimal.Decimal `json:"cpm"`
	CPC          decimal.Decimal `json:"cpc"`
	Date         time.Time       `json:"date"` // zero value means unparseable
	Origin       Origin          `json:"origin,omitempty"`
}

// HasDate reports whether the ad row carries a parseable date.
func (r *AdRecord) HasDate() bool {
	return !r.Date.IsZero()
}

// DayKey returns the calendar-day bucket key for the ad row.
func (r *AdRecord) DayKey() string {
	if !r.HasDate() {
		return UnknownDay
	}

	return r.Date.Format(dayFormat)
}

// DedupKey returns the merge key for the ad row.
func (r *AdRecord) DedupKey() string {
	return strings.Join([]string{r.CampaignName, r.AdSetName, r.AdName, r.DayKey()}, "|")
}

// FullName returns the concatenated, lower-cased naming composite used by
// Sub ID attribution.
func (r *AdRecord) FullName() string {
	return strings.ToLower(r.CampaignName + " " + r.AdSetName + " " + r.AdName)
}
