package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"prism/internal/delivery/api/validator"
	"prism/internal/domain/entity"
	domainerrors "prism/internal/domain/errors"
	mockUsecase "prism/internal/mocks/usecase"
	"prism/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func newDatasetHandler(datasetUC usecase.DatasetUsecase) *DatasetHandler {
	return &DatasetHandler{
		datasetUC: datasetUC,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func sampleMergeReport() *entity.MergeReport {
	return &entity.MergeReport{
		GeneratedAt:    time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC),
		DatasetVersion: "v-test",
		Platforms: []entity.PlatformMergeStats{
			{Platform: entity.PlatformShopee, NewCount: 1, MergedCount: 1, Status: "success"},
		},
	}
}

func TestDatasetHandler_ImportRows_Success(t *testing.T) {
	datasetUC := mockUsecase.NewMockDatasetUsecase(t)
	datasetUC.EXPECT().
		ImportRows(mock.Anything, mock.MatchedBy(func(input *usecase.ImportInput) bool {
			return input.Platform == "shopee" && input.Origin == "file_import" && len(input.Rows) == 1
		})).
		Return(sampleMergeReport(), nil)

	body := `{"platform":"shopee","origin":"file_import","rows":[{"Order ID":"S-1"}]}`
	c, rec := newTestContext(t, http.MethodPost, "/api/v1/datasets/import", body)

	err := newDatasetHandler(datasetUC).ImportRows(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"dataset_version":"v-test"`)
	assert.Contains(t, rec.Body.String(), `"request_id"`)
}

func TestDatasetHandler_ImportRows_RejectsUnknownOrigin(t *testing.T) {
	datasetUC := mockUsecase.NewMockDatasetUsecase(t)

	body := `{"platform":"shopee","origin":"carrier_pigeon","rows":[{"Order ID":"S-1"}]}`
	c, rec := newTestContext(t, http.MethodPost, "/api/v1/datasets/import", body)

	err := newDatasetHandler(datasetUC).ImportRows(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}

func TestDatasetHandler_ImportRows_RejectsEmptyRows(t *testing.T) {
	datasetUC := mockUsecase.NewMockDatasetUsecase(t)

	body := `{"platform":"lazada","origin":"file_import","rows":[]}`
	c, rec := newTestContext(t, http.MethodPost, "/api/v1/datasets/import", body)

	err := newDatasetHandler(datasetUC).ImportRows(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}

func TestDatasetHandler_ImportRows_MapsDomainError(t *testing.T) {
	datasetUC := mockUsecase.NewMockDatasetUsecase(t)
	datasetUC.EXPECT().
		ImportRows(mock.Anything, mock.AnythingOfType("*usecase.ImportInput")).
		Return(nil, domainerrors.ErrImportSuperseded)

	body := `{"platform":"shopee","origin":"file_import","rows":[{"Order ID":"S-1"}]}`
	c, rec := newTestContext(t, http.MethodPost, "/api/v1/datasets/import", body)

	err := newDatasetHandler(datasetUC).ImportRows(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "IMPORT_SUPERSEDED")
}

func TestDatasetHandler_SyncAds_Success(t *testing.T) {
	datasetUC := mockUsecase.NewMockDatasetUsecase(t)
	datasetUC.EXPECT().SyncAds(mock.Anything).Return(sampleMergeReport(), nil)

	c, rec := newTestContext(t, http.MethodPost, "/api/v1/datasets/sync", "")

	err := newDatasetHandler(datasetUC).SyncAds(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"dataset_version":"v-test"`)
}

func TestDatasetHandler_SyncAds_NotConfigured(t *testing.T) {
	datasetUC := mockUsecase.NewMockDatasetUsecase(t)
	datasetUC.EXPECT().SyncAds(mock.Anything).Return(nil, domainerrors.ErrAdsSyncNotConfigured)

	c, rec := newTestContext(t, http.MethodPost, "/api/v1/datasets/sync", "")

	err := newDatasetHandler(datasetUC).SyncAds(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "ADS_SYNC_NOT_CONFIGURED")
}
