package usecase

import (
	"prism/internal/domain/entity"
)

// AttributionUsecase assigns advertising spend, which carries no native
// tracking identifier, to the Sub IDs observed in marketplace orders.
//
// The heuristic is FirstSubstringMatch: the first known Sub ID (in order
// scan order) found as a substring of the ad's lower-cased naming
// composite wins. It is deliberately not a scoring matcher; a
// longest-match strategy would be a drop-in replacement behind this
// contract.
type AttributionUsecase interface {
	// Attribute maps each ad record to at most one Sub ID bucket. Spend
	// matching no known Sub ID accumulates under entity.NoSubIDBucket.
	Attribute(collections *entity.Collections) map[string]*entity.AttributedSpend
}
