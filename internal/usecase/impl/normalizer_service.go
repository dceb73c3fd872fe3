package impl

import (
	"strconv"
	"strings"
	"time"

	domainerrors "prism/internal/domain/errors"
	"prism/internal/domain/entity"
	"prism/internal/domain/schema"
	"prism/internal/usecase"

	"github.com/shopspring/decimal"
)

// timeLayouts is the ordered fallback list tried after RFC3339. Day-first
// layouts come before month-first ones because the marketplace exports are
// predominantly dd/MM.
var timeLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02/01/2006 15:04:05",
	"02/01/2006",
	"01/02/2006 15:04:05",
	"01/02/2006",
	"02.01.2006 15:04:05",
	"02.01.2006",
	"2006/01/02 15:04:05",
	"2006/01/02",
}

type normalizerService struct {
	shopee   *schema.OrderSchema
	lazada   *schema.OrderSchema
	facebook *schema.AdSchema
}

// NewNormalizerService creates the row normalizer with the built-in
// platform schemas.
func NewNormalizerService() usecase.NormalizeUsecase {
	return &normalizerService{
		shopee:   schema.ShopeeOrders(),
		lazada:   schema.LazadaOrders(),
		facebook: schema.FacebookAds(),
	}
}

// NormalizeOrders converts raw marketplace rows into canonical order records.
func (s *normalizerService) NormalizeOrders(rows []schema.RawRow, platform entity.Platform, origin entity.Origin) ([]entity.OrderRecord, error) {
	var orderSchema *schema.OrderSchema
	switch platform {
	case entity.PlatformShopee:
		orderSchema = s.shopee
	case entity.PlatformLazada:
		orderSchema = s.lazada
	default:
		return nil, domainerrors.ErrUnknownPlatform.WithDetails(string(platform))
	}

	known := orderSchema.KnownColumns()
	records := make([]entity.OrderRecord, 0, len(rows))
	matchedAny := false
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		if !schema.MatchesAny(row, known...) {
			// Footer/summary rows in exports carry none of the known
			// columns; they degrade to nothing rather than aborting.
			continue
		}
		matchedAny = true

		record := entity.OrderRecord{
			OrderID:    lookupString(row, orderSchema.OrderID),
			SubIDs:     extractSubIDs(row, orderSchema.SubIDSlots),
			Category:   lookupString(row, orderSchema.Category),
			Product:    lookupString(row, orderSchema.Product),
			Commission: lookupDecimal(row, orderSchema.Commission),
			Amount:     lookupDecimal(row, orderSchema.Amount),
			OrderTime:  lookupTime(row, orderSchema.OrderTime),
			Origin:     origin,
		}
		if len(orderSchema.Channel) > 0 {
			record.Channel = lookupString(row, orderSchema.Channel)
		}
		records = append(records, record)
	}

	if len(rows) > 0 && !matchedAny {
		return nil, domainerrors.ErrSchemaMismatch.WithDetails(
			"no row matched any known column for platform " + string(platform))
	}

	return records, nil
}

// NormalizeAds converts raw advertising rows into canonical ad records.
func (s *normalizerService) NormalizeAds(rows []schema.RawRow, origin entity.Origin) ([]entity.AdRecord, error) {
	known := s.facebook.KnownColumns()
	records := make([]entity.AdRecord, 0, len(rows))
	matchedAny := false
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		if !schema.MatchesAny(row, known...) {
			continue
		}
		matchedAny = true

		records = append(records, entity.AdRecord{
			CampaignName: lookupString(row, s.facebook.CampaignName),
			AdSetName:    lookupString(row, s.facebook.AdSetName),
			AdName:       lookupString(row, s.facebook.AdName),
			Spend:        lookupDecimal(row, s.facebook.Spend),
			Impressions:  lookupInt(row, s.facebook.Impressions),
			Clicks:       lookupInt(row, s.facebook.Clicks),
			Reach:        lookupInt(row, s.facebook.Reach),
			CTR:          lookupDecimal(row, s.facebook.CTR),
			CPM:          lookupDecimal(row, s.facebook.CPM),
			CPC:          lookupDecimal(row, s.facebook.CPC),
			Date:         lookupTime(row, s.facebook.Date),
			Origin:       origin,
		})
	}

	if len(rows) > 0 && !matchedAny {
		return nil, domainerrors.ErrSchemaMismatch.WithDetails(
			"no row matched any known advertising column")
	}

	return records, nil
}

func extractSubIDs(row schema.RawRow, slots [][]string) []string {
	subIDs := make([]string, 0, len(slots))
	for _, aliases := range slots {
		value := strings.TrimSpace(lookupString(row, aliases))
		if value == "" {
			continue
		}
		// A row may legitimately repeat a Sub ID across slots; attribution
		// keys by value, so duplicates are kept here.
		subIDs = append(subIDs, value)
	}

	return subIDs
}

func lookupString(row schema.RawRow, aliases []string) string {
	value, ok := schema.Lookup(row, aliases)
	if !ok {
		return ""
	}

	return strings.TrimSpace(stringify(value))
}

func lookupDecimal(row schema.RawRow, aliases []string) decimal.Decimal {
	value, ok := schema.Lookup(row, aliases)
	if !ok {
		return decimal.Zero
	}

	return parseDecimal(value)
}

func lookupInt(row schema.RawRow, aliases []string) int64 {
	value, ok := schema.Lookup(row, aliases)
	if !ok {
		return 0
	}

	return parseDecimal(value).IntPart()
}

func lookupTime(row schema.RawRow, aliases []string) time.Time {
	value, ok := schema.Lookup(row, aliases)
	if !ok {
		return time.Time{}
	}

	return parseTime(value)
}

func stringify(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case bool:
		return strconv.FormatBool(v)
	case nil:
		return ""
	default:
		return ""
	}
}

// parseDecimal is the best-effort numeric policy: strip everything except
// digits, '.' and '-', and substitute zero on failure so a malformed cell
// never blocks aggregation.
func parseDecimal(value any) decimal.Decimal {
	if f, ok := value.(float64); ok {
		return decimal.NewFromFloat(f)
	}

	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			return r
		}

		return -1
	}, stringify(value))

	parsed, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}

	return parsed
}

// parseTime tries RFC3339 first, then the explicit layout list. The zero
// time is the "unparseable" sentinel; it is never an error.
func parseTime(value any) time.Time {
	if t, ok := value.(time.Time); ok {
		return t
	}

	raw := strings.TrimSpace(stringify(value))
	if raw == "" {
		return time.Time{}
	}

	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}

	return time.Time{}
}
