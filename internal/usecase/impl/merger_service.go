package impl

import (
	"fmt"
	"time"

	"prism/internal/domain/entity"
	"prism/internal/usecase"

	"github.com/shopspring/decimal"
)

// Severity thresholds for monetary conflicts, as a ratio of the larger value.
var (
	spendDeltaMedium = decimal.NewFromFloat(0.1)
	spendDeltaHigh   = decimal.NewFromFloat(0.5)
)

// anomalySpendRatio flags a day whose ad spend exceeds this multiple of the
// commission earned the same day.
var anomalySpendRatio = decimal.NewFromInt(3)

const (
	mergeStatusClean        = "clean"
	mergeStatusDeduplicated = "deduplicated"
	mergeStatusConflicts    = "conflicts_resolved"
)

type mergerService struct{}

// NewMergerService creates the source merger.
func NewMergerService() usecase.MergeUsecase {
	return &mergerService{}
}

// MergeOrders reconciles two order collections for one platform. Rows are
// grouped by order ID so multi-line orders move between origins as a unit.
func (s *mergerService) MergeOrders(existing, incoming []entity.OrderRecord, platform entity.Platform) *usecase.OrderMergeResult {
	existingGroups, existingKeys := groupOrderLines(existing)
	incomingGroups, incomingKeys := groupOrderLines(incoming)

	result := &usecase.OrderMergeResult{
		Stats: entity.PlatformMergeStats{
			Platform:      platform,
			OriginalCount: len(existing),
			NewCount:      len(incoming),
		},
	}

	merged := make([]entity.OrderRecord, 0, len(existing)+len(incoming))
	for _, key := range existingKeys {
		incomingLines, ok := incomingGroups[key]
		if !ok {
			merged = append(merged, existingGroups[key]...)

			continue
		}

		result.Stats.DuplicatesFound++
		winner, loser := chooseOrderLines(existingGroups[key], incomingLines)
		if conflicts := orderConflicts(platform, key, winner, loser); len(conflicts) > 0 {
			result.Stats.ConflictsResolved += len(conflicts)
			result.Conflicts = append(result.Conflicts, conflicts...)
		}
		merged = append(merged, winner...)
	}
	for _, key := range incomingKeys {
		if _, ok := existingGroups[key]; ok {
			continue
		}
		merged = append(merged, incomingGroups[key]...)
	}

	result.Merged = merged
	result.Stats.MergedCount = len(merged)
	result.Stats.Status = mergeStatus(&result.Stats)

	return result
}

// MergeAds reconciles two ad collections keyed by the naming composite
// plus calendar day.
func (s *mergerService) MergeAds(existing, incoming []entity.AdRecord) *usecase.AdMergeResult {
	existingByKey, existingKeys := indexAds(existing)
	incomingByKey, incomingKeys := indexAds(incoming)

	result := &usecase.AdMergeResult{
		Stats: entity.PlatformMergeStats{
			Platform:      entity.PlatformFacebook,
			OriginalCount: len(existing),
			NewCount:      len(incoming),
		},
	}

	merged := make([]entity.AdRecord, 0, len(existing)+len(incoming))
	for _, key := range existingKeys {
		incomingRecord, ok := incomingByKey[key]
		if !ok {
			merged = append(merged, existingByKey[key])

			continue
		}

		result.Stats.DuplicatesFound++
		winner, loser := chooseAd(existingByKey[key], incomingRecord)
		if !winner.Spend.Equal(loser.Spend) {
			result.Stats.ConflictsResolved++
			result.Conflicts = append(result.Conflicts, entity.Conflict{
				Kind:       entity.ConflictSpendMismatch,
				Severity:   monetarySeverity(winner.Spend, loser.Spend),
				Platform:   entity.PlatformFacebook,
				Key:        key,
				Field:      "spend",
				FileValue:  originValue(winner, loser, entity.OriginFileImport).Spend.String(),
				SyncValue:  originValue(winner, loser, entity.OriginAPISync).Spend.String(),
				Resolution: "api_sync value kept",
			})
		}
		merged = append(merged, winner)
	}
	for _, key := range incomingKeys {
		if _, ok := existingByKey[key]; ok {
			continue
		}
		merged = append(merged, incomingByKey[key])
	}

	result.Merged = merged
	result.Stats.MergedCount = len(merged)
	result.Stats.Status = mergeStatus(&result.Stats)

	return result
}

// DetectAnomalies compares daily ad spend against daily commission across
// platforms. Findings are advisory and never block the pipeline.
func (s *mergerService) DetectAnomalies(collections *entity.Collections) ([]entity.Conflict, []string) {
	commissionByDay := make(map[string]decimal.Decimal)
	for _, order := range collections.ShopeeOrders {
		day := order.DayKey()
		commissionByDay[day] = commissionByDay[day].Add(order.Commission)
	}
	for _, order := range collections.LazadaOrders {
		day := order.DayKey()
		commissionByDay[day] = commissionByDay[day].Add(order.Commission)
	}

	spendByDay := make(map[string]decimal.Decimal)
	dayOrder := make([]string, 0)
	for _, ad := range collections.FacebookAds {
		day := ad.DayKey()
		if _, ok := spendByDay[day]; !ok {
			dayOrder = append(dayOrder, day)
		}
		spendByDay[day] = spendByDay[day].Add(ad.Spend)
	}

	var conflicts []entity.Conflict
	var recommendations []string
	for _, day := range dayOrder {
		spend := spendByDay[day]
		if !spend.IsPositive() {
			continue
		}
		commission := commissionByDay[day]

		var severity entity.ConflictSeverity
		switch {
		case commission.IsZero():
			severity = entity.SeverityHigh
		case spend.GreaterThan(commission.Mul(anomalySpendRatio)):
			severity = entity.SeverityMedium
		default:
			continue
		}

		conflicts = append(conflicts, entity.Conflict{
			Kind:       entity.ConflictPerformanceAnomaly,
			Severity:   severity,
			Platform:   entity.PlatformFacebook,
			Key:        day,
			Field:      "daily_spend_vs_commission",
			FileValue:  commission.String(),
			SyncValue:  spend.String(),
			Resolution: "advisory",
		})
		recommendations = append(recommendations, fmt.Sprintf(
			"%s: ad spend %s far exceeds attributable commission %s; review campaign targeting",
			day, spend.StringFixed(2), commission.StringFixed(2)))
	}

	return conflicts, recommendations
}

// groupOrderLines buckets rows by order ID preserving first-seen key order.
func groupOrderLines(orders []entity.OrderRecord) (map[string][]entity.OrderRecord, []string) {
	groups := make(map[string][]entity.OrderRecord, len(orders))
	keys := make([]string, 0, len(orders))
	for _, order := range orders {
		if _, ok := groups[order.OrderID]; !ok {
			keys = append(keys, order.OrderID)
		}
		groups[order.OrderID] = append(groups[order.OrderID], order)
	}

	return groups, keys
}

func indexAds(ads []entity.AdRecord) (map[string]entity.AdRecord, []string) {
	byKey := make(map[string]entity.AdRecord, len(ads))
	keys := make([]string, 0, len(ads))
	for _, ad := range ads {
		key := ad.DedupKey()
		if _, ok := byKey[key]; !ok {
			keys = append(keys, key)
		}
		// Later rows with an identical key within one batch replace
		// earlier ones; exports occasionally repeat a creative row.
		byKey[key] = ad
	}

	return byKey, keys
}

// chooseOrderLines picks the surviving line group. The API-synced origin
// is the higher-fidelity source of truth; when both sides share an origin
// the incoming batch wins, matching the replace-wholesale lifecycle.
func chooseOrderLines(existing, incoming []entity.OrderRecord) (winner, loser []entity.OrderRecord) {
	if linesOrigin(existing) == entity.OriginAPISync && linesOrigin(incoming) != entity.OriginAPISync {
		return existing, incoming
	}

	return incoming, existing
}

func chooseAd(existing, incoming entity.AdRecord) (winner, loser entity.AdRecord) {
	if existing.Origin == entity.OriginAPISync && incoming.Origin != entity.OriginAPISync {
		return existing, incoming
	}

	return incoming, existing
}

func linesOrigin(lines []entity.OrderRecord) entity.Origin {
	if len(lines) == 0 {
		return ""
	}

	return lines[0].Origin
}

// orderConflicts compares the surviving and replaced line groups of one
// order ID and records field-level disagreements.
func orderConflicts(platform entity.Platform, key string, winner, loser []entity.OrderRecord) []entity.Conflict {
	winnerCommission := sumCommission(winner)
	loserCommission := sumCommission(loser)

	var conflicts []entity.Conflict
	if !winnerCommission.Equal(loserCommission) {
		conflicts = append(conflicts, entity.Conflict{
			Kind:       entity.ConflictSpendMismatch,
			Severity:   monetarySeverity(winnerCommission, loserCommission),
			Platform:   platform,
			Key:        key,
			Field:      "commission",
			FileValue:  originCommission(winner, loser, entity.OriginFileImport),
			SyncValue:  originCommission(winner, loser, entity.OriginAPISync),
			Resolution: "api_sync value kept",
		})
	}

	winnerDay := firstDay(winner)
	loserDay := firstDay(loser)
	if winnerDay != loserDay {
		conflicts = append(conflicts, entity.Conflict{
			Kind:       entity.ConflictDateMismatch,
			Severity:   dateSeverity(winner, loser),
			Platform:   platform,
			Key:        key,
			Field:      "order_time",
			FileValue:  originDay(winner, loser, entity.OriginFileImport),
			SyncValue:  originDay(winner, loser, entity.OriginAPISync),
			Resolution: "api_sync value kept",
		})
	}

	return conflicts
}

func sumCommission(lines []entity.OrderRecord) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.Commission)
	}

	return total
}

func firstDay(lines []entity.OrderRecord) string {
	if len(lines) == 0 {
		return entity.UnknownDay
	}

	return lines[0].DayKey()
}

func originCommission(a, b []entity.OrderRecord, origin entity.Origin) string {
	if linesOrigin(a) == origin {
		return sumCommission(a).String()
	}
	if linesOrigin(b) == origin {
		return sumCommission(b).String()
	}

	return ""
}

func originDay(a, b []entity.OrderRecord, origin entity.Origin) string {
	if linesOrigin(a) == origin {
		return firstDay(a)
	}
	if linesOrigin(b) == origin {
		return firstDay(b)
	}

	return ""
}

func originValue(a, b entity.AdRecord, origin entity.Origin) entity.AdRecord {
	if a.Origin == origin {
		return a
	}

	return b
}

// monetarySeverity grades a monetary mismatch by its relative delta.
func monetarySeverity(a, b decimal.Decimal) entity.ConflictSeverity {
	larger := decimal.Max(a.Abs(), b.Abs())
	if larger.IsZero() {
		return entity.SeverityLow
	}

	ratio := a.Sub(b).Abs().Div(larger)
	switch {
	case ratio.LessThan(spendDeltaMedium):
		return entity.SeverityLow
	case ratio.LessThan(spendDeltaHigh):
		return entity.SeverityMedium
	default:
		return entity.SeverityHigh
	}
}

// dateSeverity grades a date shift by its magnitude in days.
func dateSeverity(winner, loser []entity.OrderRecord) entity.ConflictSeverity {
	if len(winner) == 0 || len(loser) == 0 ||
		!winner[0].HasOrderTime() || !loser[0].HasOrderTime() {
		return entity.SeverityMedium
	}

	delta := winner[0].OrderTime.Sub(loser[0].OrderTime)
	if delta < 0 {
		delta = -delta
	}
	switch {
	case delta <= 24*time.Hour:
		return entity.SeverityLow
	case delta <= 7*24*time.Hour:
		return entity.SeverityMedium
	default:
		return entity.SeverityHigh
	}
}

func mergeStatus(stats *entity.PlatformMergeStats) string {
	switch {
	case stats.ConflictsResolved > 0:
		return mergeStatusConflicts
	case stats.DuplicatesFound > 0:
		return mergeStatusDeduplicated
	default:
		return mergeStatusClean
	}
}
