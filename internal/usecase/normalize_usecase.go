package usecase

import (
	"prism/internal/domain/entity"
	"prism/internal/domain/schema"
)

// NormalizeUsecase converts heterogeneous raw export rows into canonical
// typed records. Row-level problems degrade the row to its safest default;
// only a batch in which no row matches any schema column is rejected.
type NormalizeUsecase interface {
	// NormalizeOrders converts raw marketplace rows into canonical order records.
	NormalizeOrders(rows []schema.RawRow, platform entity.Platform, origin entity.Origin) ([]entity.OrderRecord, error)

	// NormalizeAds converts raw advertising rows into canonical ad records.
	NormalizeAds(rows []schema.RawRow, origin entity.Origin) ([]entity.AdRecord, error)
}
