package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollections_WithoutOrigin_StripsProvenance(t *testing.T) {
	original := &Collections{
		ShopeeOrders: []OrderRecord{
			{OrderID: "SP-1", SubIDs: []string{"camp_a"}, Origin: OriginFileImport},
		},
		LazadaOrders: []OrderRecord{
			{OrderID: "LZ-1", Origin: OriginAPISync},
		},
		FacebookAds: []AdRecord{
			{CampaignName: "camp_a", Origin: OriginAPISync},
		},
	}

	stripped := original.WithoutOrigin()

	require.Len(t, stripped.ShopeeOrders, 1)
	assert.Empty(t, stripped.ShopeeOrders[0].Origin)
	assert.Empty(t, stripped.LazadaOrders[0].Origin)
	assert.Empty(t, stripped.FacebookAds[0].Origin)

	assert.Equal(t, OriginFileImport, original.ShopeeOrders[0].Origin,
		"stripping returns a copy, the input keeps its provenance")
	assert.Equal(t, OriginAPISync, original.LazadaOrders[0].Origin)
	assert.Equal(t, OriginAPISync, original.FacebookAds[0].Origin)
}
