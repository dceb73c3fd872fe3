package handler

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"prism/internal/delivery/api/response"
	"prism/internal/domain/entity"
	"prism/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const dayLayout = "2006-01-02"

// ReportHandlerParams holds dependencies for ReportHandler, injected by Fx.
type ReportHandlerParams struct {
	fx.In

	DatasetUC usecase.DatasetUsecase
	Logger    *slog.Logger
}

// ReportHandler handles read endpoints: aggregated metrics and the merge
// report of the last committed pass.
type ReportHandler struct {
	datasetUC usecase.DatasetUsecase
	logger    *slog.Logger
}

// NewReportHandler is the constructor for ReportHandler
func NewReportHandler(params ReportHandlerParams) *ReportHandler {
	return &ReportHandler{
		datasetUC: params.DatasetUC,
		logger:    params.Logger,
	}
}

// GetAggregates returns the aggregated performance picture, optionally
// narrowed by query filters
func (h *ReportHandler) GetAggregates(c echo.Context) error {
	filter, err := parseFilter(c)
	if err != nil {
		return err
	}

	aggregates, err := h.datasetUC.GetAggregates(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newAggregatesResponse(aggregates))
}

// GetMergeReport returns the merge report of the last committed pass
func (h *ReportHandler) GetMergeReport(c echo.Context) error {
	report, err := h.datasetUC.GetMergeReport(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, report)
}

// parseFilter builds the record-selection filter from query parameters.
// A response has already been written when an error is returned.
func parseFilter(c echo.Context) (*usecase.Filter, error) {
	filter := &usecase.Filter{}

	if raw := c.QueryParam("from"); raw != "" {
		from, err := time.Parse(dayLayout, raw)
		if err != nil {
			return nil, response.BadRequest(c, "INVALID_DATE_RANGE", "from must be formatted as YYYY-MM-DD")
		}
		filter.From = &from
	}

	if raw := c.QueryParam("to"); raw != "" {
		to, err := time.Parse(dayLayout, raw)
		if err != nil {
			return nil, response.BadRequest(c, "INVALID_DATE_RANGE", "to must be formatted as YYYY-MM-DD")
		}
		filter.To = &to
	}

	if filter.From != nil && filter.To != nil && filter.From.After(*filter.To) {
		return nil, response.BadRequest(c, "INVALID_DATE_RANGE", "from must not be after to")
	}

	filter.SubIDs = splitParam(c.QueryParam("sub_ids"))
	filter.Channels = splitParam(c.QueryParam("channels"))

	if raw := c.QueryParam("platform"); raw != "" {
		platform := entity.Platform(raw)
		if platform != entity.PlatformShopee && platform != entity.PlatformLazada {
			return nil, response.BadRequest(c, "UNKNOWN_PLATFORM", "platform must be shopee or lazada")
		}
		filter.Platform = platform
	}

	return filter, nil
}

func splitParam(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}

	return values
}

// AggregatesResponse is the display-ready projection of the aggregates.
// Monetary values are rounded to two decimal places, ratios to one; the
// aggregation stage itself keeps full precision.
type AggregatesResponse struct {
	PerSubID     []SubIDMetricsDTO             `json:"per_sub_id"`
	NoSubIDSpend AttributedSpendDTO            `json:"no_sub_id_spend"`
	PerPlatform  map[string]PlatformMetricsDTO `json:"per_platform"`
	PerDay       map[string]DayMetricsDTO      `json:"per_day"`
	PerCategory  map[string]LabelMetricsDTO    `json:"per_category"`
	PerProduct   map[string]LabelMetricsDTO    `json:"per_product"`
	Totals       TotalsDTO                     `json:"totals"`
}

// SubIDMetricsDTO is the rounded view of one Sub ID's metrics
type SubIDMetricsDTO struct {
	SubID            string `json:"sub_id"`
	ShopeeCommission string `json:"shopee_commission"`
	LazadaCommission string `json:"lazada_commission"`
	TotalCommission  string `json:"total_commission"`
	TotalAmount      string `json:"total_amount"`
	AdSpend          string `json:"ad_spend"`
	ShopeeOrders     int    `json:"shopee_orders"`
	LazadaOrders     int    `json:"lazada_orders"`
	UniqueOrders     int    `json:"unique_orders"`
	TotalProfit      string `json:"total_profit"`
	OverallROI       string `json:"overall_roi"`
	CostPerOrder     string `json:"cost_per_order"`
}

// AttributedSpendDTO is the rounded view of one attribution bucket
type AttributedSpendDTO struct {
	SubID       string `json:"sub_id"`
	Spend       string `json:"spend"`
	AdCount     int    `json:"ad_count"`
	Impressions int64  `json:"impressions"`
	Clicks      int64  `json:"clicks"`
}

// PlatformMetricsDTO is the rounded view of one platform's contribution
type PlatformMetricsDTO struct {
	Platform    string `json:"platform"`
	Commission  string `json:"commission"`
	Amount      string `json:"amount"`
	AdSpend     string `json:"ad_spend"`
	Orders      int    `json:"orders"`
	AdCount     int    `json:"ad_count"`
	Impressions int64  `json:"impressions"`
	Clicks      int64  `json:"clicks"`
}

// DayMetricsDTO is the rounded view of one calendar day
type DayMetricsDTO struct {
	Day        string `json:"day"`
	Commission string `json:"commission"`
	AdSpend    string `json:"ad_spend"`
	Orders     int    `json:"orders"`
	Profit     string `json:"profit"`
	ROI        string `json:"roi"`
}

// LabelMetricsDTO is the rounded view of one category or product bucket
type LabelMetricsDTO struct {
	Label      string `json:"label"`
	Platform   string `json:"platform"`
	Commission string `json:"commission"`
	Amount     string `json:"amount"`
	Orders     int    `json:"orders"`
}

// TotalsDTO is the rounded view of the grand totals
type TotalsDTO struct {
	TotalCommission string `json:"total_commission"`
	TotalAdSpend    string `json:"total_ad_spend"`
	TotalOrders     int    `json:"total_orders"`
	TotalProfit     string `json:"total_profit"`
	OverallROI      string `json:"overall_roi"`
}

func newAggregatesResponse(aggregates *entity.Aggregates) *AggregatesResponse {
	resp := &AggregatesResponse{
		PerSubID:     make([]SubIDMetricsDTO, 0, len(aggregates.PerSubID)),
		NoSubIDSpend: newAttributedSpendDTO(aggregates.NoSubIDSpend),
		PerPlatform:  make(map[string]PlatformMetricsDTO, len(aggregates.PerPlatform)),
		PerDay:       make(map[string]DayMetricsDTO, len(aggregates.PerDay)),
		PerCategory:  make(map[string]LabelMetricsDTO, len(aggregates.PerCategory)),
		PerProduct:   make(map[string]LabelMetricsDTO, len(aggregates.PerProduct)),
		Totals: TotalsDTO{
			TotalCommission: aggregates.Totals.TotalCommission.StringFixed(2),
			TotalAdSpend:    aggregates.Totals.TotalAdSpend.StringFixed(2),
			TotalOrders:     aggregates.Totals.TotalOrders,
			TotalProfit:     aggregates.Totals.TotalProfit.StringFixed(2),
			OverallROI:      aggregates.Totals.OverallROI.StringFixed(1),
		},
	}

	for _, metrics := range aggregates.PerSubID {
		resp.PerSubID = append(resp.PerSubID, SubIDMetricsDTO{
			SubID:            metrics.SubID,
			ShopeeCommission: metrics.ShopeeCommission.StringFixed(2),
			LazadaCommission: metrics.LazadaCommission.StringFixed(2),
			TotalCommission:  metrics.TotalCommission.StringFixed(2),
			TotalAmount:      metrics.TotalAmount.StringFixed(2),
			AdSpend:          metrics.AdSpend.StringFixed(2),
			ShopeeOrders:     metrics.ShopeeOrders,
			LazadaOrders:     metrics.LazadaOrders,
			UniqueOrders:     metrics.UniqueOrders,
			TotalProfit:      metrics.TotalProfit.StringFixed(2),
			OverallROI:       metrics.OverallROI.StringFixed(1),
			CostPerOrder:     metrics.CostPerOrder.StringFixed(2),
		})
	}

	for platform, metrics := range aggregates.PerPlatform {
		resp.PerPlatform[string(platform)] = PlatformMetricsDTO{
			Platform:    string(metrics.Platform),
			Commission:  metrics.Commission.StringFixed(2),
			Amount:      metrics.Amount.StringFixed(2),
			AdSpend:     metrics.AdSpend.StringFixed(2),
			Orders:      metrics.Orders,
			AdCount:     metrics.AdCount,
			Impressions: metrics.Impressions,
			Clicks:      metrics.Clicks,
		}
	}

	for day, metrics := range aggregates.PerDay {
		resp.PerDay[day] = DayMetricsDTO{
			Day:        metrics.Day,
			Commission: metrics.Commission.StringFixed(2),
			AdSpend:    metrics.AdSpend.StringFixed(2),
			Orders:     metrics.Orders,
			Profit:     metrics.Profit.StringFixed(2),
			ROI:        metrics.ROI.StringFixed(1),
		}
	}

	for key, metrics := range aggregates.PerCategory {
		resp.PerCategory[key] = newLabelMetricsDTO(metrics)
	}
	for key, metrics := range aggregates.PerProduct {
		resp.PerProduct[key] = newLabelMetricsDTO(metrics)
	}

	return resp
}

func newAttributedSpendDTO(spend entity.AttributedSpend) AttributedSpendDTO {
	return AttributedSpendDTO{
		SubID:       spend.SubID,
		Spend:       spend.Spend.StringFixed(2),
		AdCount:     spend.AdCount,
		Impressions: spend.Impressions,
		Clicks:      spend.Clicks,
	}
}

func newLabelMetricsDTO(metrics *entity.LabelMetrics) LabelMetricsDTO {
	return LabelMetricsDTO{
		Label:      metrics.Label,
		Platform:   string(metrics.Platform),
		Commission: metrics.Commission.StringFixed(2),
		Amount:     metrics.Amount.StringFixed(2),
		Orders:     metrics.Orders,
	}
}
