package handler

import (
	"log/slog"
	"net/http"

	"prism/internal/delivery/api/response"
	"prism/internal/domain/entity"
	"prism/internal/domain/schema"
	"prism/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DatasetHandlerParams holds dependencies for DatasetHandler, injected by Fx.
type DatasetHandlerParams struct {
	fx.In

	DatasetUC usecase.DatasetUsecase
	Logger    *slog.Logger
}

// DatasetHandler handles dataset mutation endpoints: file imports and
// ad-spend syncs.
type DatasetHandler struct {
	datasetUC usecase.DatasetUsecase
	logger    *slog.Logger
}

// NewDatasetHandler is the constructor for DatasetHandler
func NewDatasetHandler(params DatasetHandlerParams) *DatasetHandler {
	return &DatasetHandler{
		datasetUC: params.DatasetUC,
		logger:    params.Logger,
	}
}

// ImportRequest represents the request body for importing a batch of rows
type ImportRequest struct {
	Platform string          `json:"platform" validate:"required,oneof=shopee lazada facebook"`
	Origin   string          `json:"origin" validate:"required,oneof=file_import api_sync"`
	Rows     []schema.RawRow `json:"rows" validate:"required,min=1"`
}

// ImportRows handles a batch import for one platform
func (h *DatasetHandler) ImportRows(c echo.Context) error {
	var req ImportRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid import payload")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	input := &usecase.ImportInput{
		Platform: entity.Platform(req.Platform),
		Origin:   entity.Origin(req.Origin),
		Rows:     req.Rows,
	}

	report, err := h.datasetUC.ImportRows(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, report)
}

// SyncAds triggers an on-demand ad-spend sync through the configured provider
func (h *DatasetHandler) SyncAds(c echo.Context) error {
	report, err := h.datasetUC.SyncAds(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, report)
}
