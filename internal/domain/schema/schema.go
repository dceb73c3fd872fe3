// Package schema describes how raw export rows map onto canonical fields.
// Each platform gets a descriptor listing the accepted column aliases per
// field, so onboarding a new export variant (different locale, renamed
// columns) is a data change rather than a code change.
package schema

import (
	"strings"

	"prism/internal/domain/entity"
)

// RawRow is one uploaded or synced row: a mapping from column name to a
// string or number value, produced by the upstream parsing layer.
type RawRow map[string]any

// OrderSchema maps marketplace export columns to canonical order fields.
// Alias lists are ordered by priority; matching is case-insensitive on the
// trimmed column name.
type OrderSchema struct {
	Platform   entity.Platform
	OrderID    []string
	SubIDSlots [][]string // ordered Sub ID slots, each with its own aliases
	Channel    []string
	Category   []string
	Product    []string
	Commission []string
	Amount     []string
	OrderTime  []string
}

// AdSchema maps advertising export columns to canonical ad fields.
type AdSchema struct {
	Platform     entity.Platform
	CampaignName []string
	AdSetName    []string
	AdName       []string
	Spend        []string
	Impressions  []string
	Clicks       []string
	Reach        []string
	CTR          []string
	CPM          []string
	CPC          []string
	Date         []string
}

// ShopeeOrders returns the descriptor for Shopee affiliate exports.
// Shopee carries five Sub ID slots and is the only platform with a
// channel label.
func ShopeeOrders() *OrderSchema {
	return &OrderSchema{
		Platform: entity.PlatformShopee,
		OrderID:  []string{"Order ID", "รหัสการสั่งซื้อ", "order_id"},
		SubIDSlots: [][]string{
			{"Sub_id1", "Sub ID 1", "sub_id1"},
			{"Sub_id2", "Sub ID 2", "sub_id2"},
			{"Sub_id3", "Sub ID 3", "sub_id3"},
			{"Sub_id4", "Sub ID 4", "sub_id4"},
			{"Sub_id5", "Sub ID 5", "sub_id5"},
		},
		Channel:    []string{"Channel", "ช่องทาง", "channel"},
		Category:   []string{"L1 Category", "หมวดหมู่สินค้า L1", "category"},
		Product:    []string{"Item Name", "ชื่อสินค้า", "product_name"},
		Commission: []string{"Net Commission", "คอมมิชชั่นสุทธิ(฿)", "commission"},
		Amount:     []string{"Order Amount", "มูลค่าซื้อ(฿)", "order_amount"},
		OrderTime:  []string{"Order Time", "เวลาที่สั่งซื้อ", "order_time"},
	}
}

// LazadaOrders returns the descriptor for Lazada affiliate exports.
// Lazada carries six Sub ID slots and no channel column.
func LazadaOrders() *OrderSchema {
	return &OrderSchema{
		Platform: entity.PlatformLazada,
		OrderID:  []string{"Order Number", "orderNumber", "order_number"},
		SubIDSlots: [][]string{
			{"Aff Sub ID", "aff_sub_id"},
			{"Sub ID 1", "Sub ID1", "sub_id_1"},
			{"Sub ID 2", "Sub ID2", "sub_id_2"},
			{"Sub ID 3", "Sub ID3", "sub_id_3"},
			{"Sub ID 4", "Sub ID4", "sub_id_4"},
			{"Sub ID 5", "Sub ID5", "sub_id_5"},
		},
		Category:   []string{"Category L1", "categoryL1", "category"},
		Product:    []string{"Item Name", "Product Name", "item_name"},
		Commission: []string{"Payout", "Commission", "payout"},
		Amount:     []string{"Order Amount", "Price", "order_amount"},
		OrderTime:  []string{"Order Time", "Conversion Time", "order_time"},
	}
}

// FacebookAds returns the descriptor for Facebook Ads Manager exports and
// Marketing API rows.
func FacebookAds() *AdSchema {
	return &AdSchema{
		Platform:     entity.PlatformFacebook,
		CampaignName: []string{"Campaign name", "campaign_name"},
		AdSetName:    []string{"Ad set name", "adset_name", "ad_set_name"},
		AdName:       []string{"Ad name", "ad_name"},
		Spend:        []string{"Amount spent (THB)", "Amount spent", "spend"},
		Impressions:  []string{"Impressions", "impressions"},
		Clicks:       []string{"Link clicks", "Clicks (all)", "clicks"},
		Reach:        []string{"Reach", "reach"},
		CTR:          []string{"CTR (all)", "CTR (link click-through rate)", "ctr"},
		CPM:          []string{"CPM (cost per 1,000 impressions)", "cpm"},
		CPC:          []string{"CPC (all)", "CPC (cost per link click)", "cpc"},
		Date:         []string{"Day", "Date", "Reporting starts", "date_start"},
	}
}

// Lookup resolves the first alias present in the row. Column names are
// matched case-insensitively on their trimmed form.
func Lookup(row RawRow, aliases []string) (any, bool) {
	for _, alias := range aliases {
		if value, ok := row[alias]; ok {
			return value, true
		}
	}

	// Fall back to a normalized scan so "order id " or "ORDER ID" still match.
	for _, alias := range aliases {
		needle := normalizeColumn(alias)
		for column, value := range row {
			if normalizeColumn(column) == needle {
				return value, true
			}
		}
	}

	return nil, false
}

// MatchesAny reports whether the row contains at least one known column of
// the given alias sets. A batch where no row matches anything is a
// structural failure, not a parse failure.
func MatchesAny(row RawRow, aliasSets ...[]string) bool {
	for _, aliases := range aliasSets {
		if _, ok := Lookup(row, aliases); ok {
			return true
		}
	}

	return false
}

// KnownColumns returns every alias set of an order schema, used for
// structural validation of a batch.
func (s *OrderSchema) KnownColumns() [][]string {
	sets := [][]string{s.OrderID, s.Category, s.Product, s.Commission, s.Amount, s.OrderTime}
	if len(s.Channel) > 0 {
		sets = append(sets, s.Channel)
	}
	sets = append(sets, s.SubIDSlots...)

	return sets
}

// KnownColumns returns every alias set of an ad schema.
func (s *AdSchema) KnownColumns() [][]string {
	return [][]string{
		s.CampaignName, s.AdSetName, s.AdName, s.Spend,
		s.Impressions, s.Clicks, s.Reach, s.CTR, s.CPM, s.CPC, s.Date,
	}
}

func normalizeColumn(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
