package impl

import (
	"testing"
	"time"

	"prism/internal/domain/entity"
	"prism/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func timePtr(t time.Time) *time.Time {
	return &t
}

func filterFixture() *entity.Collections {
	march10 := time.Date(2025, 3, 10, 15, 30, 0, 0, time.UTC)
	march12 := time.Date(2025, 3, 12, 9, 0, 0, 0, time.UTC)

	return &entity.Collections{
		ShopeeOrders: []entity.OrderRecord{
			{OrderID: "S1", SubIDs: []string{"camp_a"}, Channel: "Facebook", OrderTime: march10},
			{OrderID: "S2", SubIDs: []string{"camp_b"}, Channel: "Instagram", OrderTime: march12},
			{OrderID: "S3", SubIDs: []string{"camp_a"}, Channel: "Facebook"}, // unparseable order time
		},
		LazadaOrders: []entity.OrderRecord{
			{OrderID: "L1", SubIDs: []string{"camp_a"}, OrderTime: march10},
			{OrderID: "L2", SubIDs: []string{"camp_b"}}, // unparseable order time
		},
		FacebookAds: []entity.AdRecord{
			{CampaignName: "camp_a promo", Date: march10},
			{CampaignName: "no date"},
		},
	}
}

func TestFilterService_Apply_ZeroFilterReturnsDeepCopy(t *testing.T) {
	service := NewFilterService()
	collections := filterFixture()

	filtered := service.Apply(collections, nil)

	require.Equal(t, collections, filtered)

	filtered.ShopeeOrders[0].SubIDs[0] = "mutated"
	assert.Equal(t, "camp_a", collections.ShopeeOrders[0].SubIDs[0],
		"the returned view must not alias the stored data")
}

func TestFilterService_Apply_DateRangeInclusiveDays(t *testing.T) {
	service := NewFilterService()
	collections := filterFixture()

	from := time.Date(2025, 3, 10, 23, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 10, 1, 0, 0, 0, time.UTC)
	filtered := service.Apply(collections, &usecase.Filter{From: timePtr(from), To: timePtr(to)})

	// The boundary timestamps' time-of-day parts are irrelevant; the whole
	// calendar day 2025-03-10 is in range.
	orderIDs := []string{}
	for _, order := range filtered.ShopeeOrders {
		orderIDs = append(orderIDs, order.OrderID)
	}
	assert.Contains(t, orderIDs, "S1")
	assert.NotContains(t, orderIDs, "S2")
}

func TestFilterService_Apply_UnparseableDatesFailOpenForShopeeOnly(t *testing.T) {
	service := NewFilterService()
	collections := filterFixture()

	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
	filtered := service.Apply(collections, &usecase.Filter{From: timePtr(from), To: timePtr(to)})

	shopeeIDs := []string{}
	for _, order := range filtered.ShopeeOrders {
		shopeeIDs = append(shopeeIDs, order.OrderID)
	}
	assert.Contains(t, shopeeIDs, "S3", "dateless shopee rows pass a date filter")

	lazadaIDs := []string{}
	for _, order := range filtered.LazadaOrders {
		lazadaIDs = append(lazadaIDs, order.OrderID)
	}
	assert.NotContains(t, lazadaIDs, "L2", "dateless lazada rows are dropped by a date filter")

	require.Len(t, filtered.FacebookAds, 1, "dateless ad rows are dropped by a date filter")
	assert.Equal(t, "camp_a promo", filtered.FacebookAds[0].CampaignName)
}

func TestFilterService_Apply_SubIDIntersection(t *testing.T) {
	service := NewFilterService()
	collections := filterFixture()

	filtered := service.Apply(collections, &usecase.Filter{SubIDs: []string{"camp_b"}})

	require.Len(t, filtered.ShopeeOrders, 1)
	assert.Equal(t, "S2", filtered.ShopeeOrders[0].OrderID)
	require.Len(t, filtered.LazadaOrders, 1)
	assert.Equal(t, "L2", filtered.LazadaOrders[0].OrderID)
	assert.Len(t, filtered.FacebookAds, 2, "ad rows carry no Sub ID and always pass this predicate")
}

func TestFilterService_Apply_ChannelAppliesToShopeeOnly(t *testing.T) {
	service := NewFilterService()
	collections := filterFixture()

	filtered := service.Apply(collections, &usecase.Filter{Channels: []string{"Facebook"}})

	for _, order := range filtered.ShopeeOrders {
		assert.Equal(t, "Facebook", order.Channel)
	}
	assert.Len(t, filtered.ShopeeOrders, 2)
	assert.Len(t, filtered.LazadaOrders, 2, "lazada has no channel column and always passes")
	assert.Len(t, filtered.FacebookAds, 2)
}

func TestFilterService_Apply_PlatformSelectorEmptiesOtherMarketplace(t *testing.T) {
	service := NewFilterService()
	collections := filterFixture()

	filtered := service.Apply(collections, &usecase.Filter{Platform: entity.PlatformShopee})

	assert.Len(t, filtered.ShopeeOrders, 3)
	assert.Empty(t, filtered.LazadaOrders)
	assert.Len(t, filtered.FacebookAds, 2, "ads survive a marketplace selector")
}

func TestFilterService_Apply_PredicatesCombineWithAND(t *testing.T) {
	service := NewFilterService()
	collections := filterFixture()

	from := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	filtered := service.Apply(collections, &usecase.Filter{
		From:     timePtr(from),
		To:       timePtr(from),
		SubIDs:   []string{"camp_a"},
		Channels: []string{"Facebook"},
	})

	shopeeIDs := []string{}
	for _, order := range filtered.ShopeeOrders {
		shopeeIDs = append(shopeeIDs, order.OrderID)
	}
	assert.ElementsMatch(t, []string{"S1", "S3"}, shopeeIDs)
	require.Len(t, filtered.LazadaOrders, 1)
	assert.Equal(t, "L1", filtered.LazadaOrders[0].OrderID)
}

func TestFilterService_Apply_DoesNotMutateInput(t *testing.T) {
	service := NewFilterService()
	collections := filterFixture()

	service.Apply(collections, &usecase.Filter{SubIDs: []string{"camp_a"}})

	assert.Len(t, collections.ShopeeOrders, 3)
	assert.Len(t, collections.LazadaOrders, 2)
	assert.Len(t, collections.FacebookAds, 2)
}
