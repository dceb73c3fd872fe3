package entity

// Collections is the canonical "current dataset": one order collection per
// marketplace plus the advertising rows. It is replaced wholesale on every
// committed import or sync pass and never mutated in place.
type Collections struct {
	ShopeeOrders []OrderRecord `json:"shopee_orders"`
	LazadaOrders []OrderRecord `json:"lazada_orders"`
	FacebookAds  []AdRecord    `json:"facebook_ads"`
}

// IsEmpty reports whether no platform has any records.
func (c *Collections) IsEmpty() bool {
	return len(c.ShopeeOrders) == 0 && len(c.LazadaOrders) == 0 && len(c.FacebookAds) == 0
}

// Clone returns a deep copy of the collections.
func (c *Collections) Clone() *Collections {
	clone := &Collections{
		ShopeeOrders: make([]OrderRecord, len(c.ShopeeOrders)),
		LazadaOrders: make([]OrderRecord, len(c.LazadaOrders)),
		FacebookAds:  make([]AdRecord, len(c.FacebookAds)),
	}
	copy(clone.ShopeeOrders, c.ShopeeOrders)
	copy(clone.LazadaOrders, c.LazadaOrders)
	copy(clone.FacebookAds, c.FacebookAds)
	for i := range clone.ShopeeOrders {
		clone.ShopeeOrders[i].SubIDs = append([]string(nil), c.ShopeeOrders[i].SubIDs...)
	}
	for i := range clone.LazadaOrders {
		clone.LazadaOrders[i].SubIDs = append([]string(nil), c.LazadaOrders[i].SubIDs...)
	}

	return clone
}

// WithoutOrigin returns a copy of the collections with all provenance tags
// cleared, for downstream consumers that are origin-agnostic.
func (c *Collections) WithoutOrigin() *Collections {
	stripped := c.Clone()
	for i := range stripped.ShopeeOrders {
		stripped.ShopeeOrders[i].Origin = ""
	}
	for i := range stripped.LazadaOrders {
		stripped.LazadaOrders[i].Origin = ""
	}
	for i := range stripped.FacebookAds {
		stripped.FacebookAds[i].Origin = ""
	}

	return stripped
}

// OrdersFor returns the order collection for a marketplace platform.
func (c *Collections) OrdersFor(platform Platform) []OrderRecord {
	switch platform {
	case PlatformShopee:
		return c.ShopeeOrders
	case PlatformLazada:
		return c.LazadaOrders
	default:
		return nil
	}
}
