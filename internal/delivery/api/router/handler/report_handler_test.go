package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"prism/internal/domain/entity"
	domainerrors "prism/internal/domain/errors"
	mockUsecase "prism/internal/mocks/usecase"
	"prism/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newReportHandler(datasetUC usecase.DatasetUsecase) *ReportHandler {
	return &ReportHandler{
		datasetUC: datasetUC,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func sampleAggregates() *entity.Aggregates {
	return &entity.Aggregates{
		PerSubID: []entity.SubIDMetrics{
			{
				SubID:            "camp_a",
				ShopeeCommission: decimal.RequireFromString("1234.5"),
				TotalCommission:  decimal.RequireFromString("1234.5"),
				TotalAmount:      decimal.RequireFromString("20000"),
				AdSpend:          decimal.RequireFromString("300.004"),
				ShopeeOrders:     3,
				UniqueOrders:     3,
				TotalProfit:      decimal.RequireFromString("934.496"),
				OverallROI:       decimal.RequireFromString("311.4986"),
				CostPerOrder:     decimal.RequireFromString("100.001333"),
			},
		},
		NoSubIDSpend: entity.AttributedSpend{SubID: entity.NoSubIDBucket, Spend: decimal.RequireFromString("12.345")},
		PerPlatform: map[entity.Platform]*entity.PlatformMetrics{
			entity.PlatformShopee: {
				Platform:   entity.PlatformShopee,
				Commission: decimal.RequireFromString("1234.5"),
				Orders:     3,
			},
		},
		PerDay: map[string]*entity.DayMetrics{
			"2025-03-10": {
				Day:        "2025-03-10",
				Commission: decimal.RequireFromString("1234.5"),
				ROI:        decimal.RequireFromString("311.4986"),
			},
		},
		PerCategory: map[string]*entity.LabelMetrics{},
		PerProduct:  map[string]*entity.LabelMetrics{},
		Totals: entity.Totals{
			TotalCommission: decimal.RequireFromString("1234.5"),
			TotalAdSpend:    decimal.RequireFromString("312.349"),
			TotalOrders:     3,
			TotalProfit:     decimal.RequireFromString("922.151"),
			OverallROI:      decimal.RequireFromString("295.23"),
		},
	}
}

func TestReportHandler_GetAggregates_RoundsMonetaryValues(t *testing.T) {
	datasetUC := mockUsecase.NewMockDatasetUsecase(t)
	datasetUC.EXPECT().
		GetAggregates(mock.Anything, mock.MatchedBy(func(filter *usecase.Filter) bool {
			return filter.IsZero()
		})).
		Return(sampleAggregates(), nil)

	c, rec := newTestContext(t, http.MethodGet, "/api/v1/reports/aggregates", "")

	err := newReportHandler(datasetUC).GetAggregates(c)
	require.NoError(t, err)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"shopee_commission":"1234.50"`)
	assert.Contains(t, body, `"ad_spend":"300.00"`)
	assert.Contains(t, body, `"overall_roi":"311.5"`)
	assert.Contains(t, body, `"cost_per_order":"100.00"`)
	assert.Contains(t, body, `"spend":"12.35"`)
	assert.Contains(t, body, `"total_ad_spend":"312.35"`)
}

func TestReportHandler_GetAggregates_ParsesQueryFilter(t *testing.T) {
	var captured *usecase.Filter
	datasetUC := mockUsecase.NewMockDatasetUsecase(t)
	datasetUC.EXPECT().
		GetAggregates(mock.Anything, mock.AnythingOfType("*usecase.Filter")).
		Run(func(_ context.Context, filter *usecase.Filter) {
			captured = filter
		}).
		Return(sampleAggregates(), nil)

	target := "/api/v1/reports/aggregates?from=2025-03-01&to=2025-03-31&sub_ids=camp_a,%20camp_b&channels=Website&platform=shopee"
	c, rec := newTestContext(t, http.MethodGet, target, "")

	err := newReportHandler(datasetUC).GetAggregates(c)
	require.NoError(t, err)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, captured)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), *captured.From)
	assert.Equal(t, time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC), *captured.To)
	assert.Equal(t, []string{"camp_a", "camp_b"}, captured.SubIDs)
	assert.Equal(t, []string{"Website"}, captured.Channels)
	assert.Equal(t, entity.PlatformShopee, captured.Platform)
}

func TestReportHandler_GetAggregates_RejectsMalformedDate(t *testing.T) {
	datasetUC := mockUsecase.NewMockDatasetUsecase(t)

	c, rec := newTestContext(t, http.MethodGet, "/api/v1/reports/aggregates?from=03-10-2025", "")

	err := newReportHandler(datasetUC).GetAggregates(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_DATE_RANGE")
}

func TestReportHandler_GetAggregates_RejectsInvertedRange(t *testing.T) {
	datasetUC := mockUsecase.NewMockDatasetUsecase(t)

	c, rec := newTestContext(t, http.MethodGet, "/api/v1/reports/aggregates?from=2025-03-31&to=2025-03-01", "")

	err := newReportHandler(datasetUC).GetAggregates(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_DATE_RANGE")
}

func TestReportHandler_GetAggregates_RejectsUnknownPlatform(t *testing.T) {
	datasetUC := mockUsecase.NewMockDatasetUsecase(t)

	c, rec := newTestContext(t, http.MethodGet, "/api/v1/reports/aggregates?platform=facebook", "")

	err := newReportHandler(datasetUC).GetAggregates(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "UNKNOWN_PLATFORM")
}

func TestReportHandler_GetMergeReport_Success(t *testing.T) {
	datasetUC := mockUsecase.NewMockDatasetUsecase(t)
	datasetUC.EXPECT().GetMergeReport(mock.Anything).Return(sampleMergeReport(), nil)

	c, rec := newTestContext(t, http.MethodGet, "/api/v1/reports/merge", "")

	err := newReportHandler(datasetUC).GetMergeReport(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"dataset_version":"v-test"`)
}

func TestReportHandler_GetMergeReport_NotFound(t *testing.T) {
	datasetUC := mockUsecase.NewMockDatasetUsecase(t)
	datasetUC.EXPECT().GetMergeReport(mock.Anything).Return(nil, domainerrors.ErrReportNotFound)

	c, rec := newTestContext(t, http.MethodGet, "/api/v1/reports/merge", "")

	err := newReportHandler(datasetUC).GetMergeReport(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "REPORT_NOT_FOUND")
}
