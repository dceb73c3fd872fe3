package impl

import (
	"testing"

	"prism/internal/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func adSpend(campaign, adSet, ad, spend string) entity.AdRecord {
	return entity.AdRecord{
		CampaignName: campaign,
		AdSetName:    adSet,
		AdName:       ad,
		Spend:        decimal.RequireFromString(spend),
	}
}

func ordersWithSubIDs(subIDs ...string) []entity.OrderRecord {
	orders := make([]entity.OrderRecord, 0, len(subIDs))
	for i, subID := range subIDs {
		orders = append(orders, entity.OrderRecord{
			OrderID: string(rune('A' + i)),
			SubIDs:  []string{subID},
		})
	}

	return orders
}

func TestAttributionService_Attribute_SubstringMatchInAnyNamePart(t *testing.T) {
	service := NewAttributionService()

	collections := &entity.Collections{
		ShopeeOrders: ordersWithSubIDs("camp_a", "camp_b", "camp_c"),
		FacebookAds: []entity.AdRecord{
			adSpend("camp_a - conversions", "", "", "100"),
			adSpend("spring promo", "set camp_b TH", "", "200"),
			adSpend("spring promo", "", "video camp_c v2", "300"),
		},
	}

	buckets := service.Attribute(collections)

	require.Contains(t, buckets, "camp_a")
	require.Contains(t, buckets, "camp_b")
	require.Contains(t, buckets, "camp_c")
	assert.True(t, buckets["camp_a"].Spend.Equal(decimal.RequireFromString("100")))
	assert.True(t, buckets["camp_b"].Spend.Equal(decimal.RequireFromString("200")))
	assert.True(t, buckets["camp_c"].Spend.Equal(decimal.RequireFromString("300")))
}

func TestAttributionService_Attribute_CaseInsensitive(t *testing.T) {
	service := NewAttributionService()

	collections := &entity.Collections{
		LazadaOrders: ordersWithSubIDs("Winter_Sale"),
		FacebookAds: []entity.AdRecord{
			adSpend("WINTER_SALE retargeting", "", "", "50"),
		},
	}

	buckets := service.Attribute(collections)

	require.Contains(t, buckets, "Winter_Sale")
	assert.True(t, buckets["Winter_Sale"].Spend.Equal(decimal.RequireFromString("50")))
}

func TestAttributionService_Attribute_FirstMatchWinsWholeAd(t *testing.T) {
	service := NewAttributionService()

	// Both Sub IDs appear in the ad's naming; the earlier one in scan
	// order takes the full spend, never a split.
	collections := &entity.Collections{
		ShopeeOrders: ordersWithSubIDs("camp_a", "camp_ab"),
		FacebookAds: []entity.AdRecord{
			adSpend("camp_ab launch", "", "", "100"),
		},
	}

	buckets := service.Attribute(collections)

	require.Contains(t, buckets, "camp_a")
	assert.True(t, buckets["camp_a"].Spend.Equal(decimal.RequireFromString("100")))
	assert.NotContains(t, buckets, "camp_ab")
}

func TestAttributionService_Attribute_ShopeeUniverseScansBeforeLazada(t *testing.T) {
	service := NewAttributionService()

	collections := &entity.Collections{
		ShopeeOrders: ordersWithSubIDs("promo"),
		LazadaOrders: ordersWithSubIDs("promo_lz"),
		FacebookAds: []entity.AdRecord{
			adSpend("promo_lz spring", "", "", "80"),
		},
	}

	buckets := service.Attribute(collections)

	require.Contains(t, buckets, "promo",
		"the shopee-sourced Sub ID is scanned first and substring-matches")
	assert.True(t, buckets["promo"].Spend.Equal(decimal.RequireFromString("80")))
}

func TestAttributionService_Attribute_UnmatchedSpendGoesToReservedBucket(t *testing.T) {
	service := NewAttributionService()

	collections := &entity.Collections{
		ShopeeOrders: ordersWithSubIDs("camp_a"),
		FacebookAds: []entity.AdRecord{
			{CampaignName: "brand awareness", Spend: decimal.RequireFromString("500"), Impressions: 1000, Clicks: 10},
			{CampaignName: "another generic", Spend: decimal.RequireFromString("250"), Impressions: 400, Clicks: 4},
		},
	}

	buckets := service.Attribute(collections)

	require.Contains(t, buckets, entity.NoSubIDBucket)
	noMatch := buckets[entity.NoSubIDBucket]
	assert.True(t, noMatch.Spend.Equal(decimal.RequireFromString("750")))
	assert.Equal(t, 2, noMatch.AdCount)
	assert.Equal(t, int64(1400), noMatch.Impressions)
	assert.Equal(t, int64(14), noMatch.Clicks)
}

func TestAttributionService_Attribute_EmptySubIDsNeverMatch(t *testing.T) {
	service := NewAttributionService()

	collections := &entity.Collections{
		ShopeeOrders: []entity.OrderRecord{
			{OrderID: "A", SubIDs: []string{"", "  "}},
		},
		FacebookAds: []entity.AdRecord{
			adSpend("anything", "", "", "100"),
		},
	}

	buckets := service.Attribute(collections)

	require.Len(t, buckets, 1)
	assert.Contains(t, buckets, entity.NoSubIDBucket)
}

func TestAttributionService_Attribute_NoAdsYieldsNoBuckets(t *testing.T) {
	service := NewAttributionService()

	buckets := service.Attribute(&entity.Collections{
		ShopeeOrders: ordersWithSubIDs("camp_a"),
	})

	assert.Empty(t, buckets)
}
