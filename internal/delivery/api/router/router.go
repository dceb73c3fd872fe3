// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"prism/config"
	"prism/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	DatasetHandler *handler.DatasetHandler
	ReportHandler  *handler.ReportHandler
	Config         *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	datasetHandler *handler.DatasetHandler
	reportHandler  *handler.ReportHandler
	config         *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		datasetHandler: params.DatasetHandler,
		reportHandler:  params.ReportHandler,
		config:         params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// API v1 routes
	apiV1 := e.Group("/api/v1")

	// Dataset mutation routes
	datasetsGroup := apiV1.Group("/datasets")
	{
		datasetsGroup.POST("/import", r.datasetHandler.ImportRows)
		datasetsGroup.POST("/sync", r.datasetHandler.SyncAds)
	}

	// Report routes
	reportsGroup := apiV1.Group("/reports")
	{
		reportsGroup.GET("/aggregates", r.reportHandler.GetAggregates)
		reportsGroup.GET("/merge", r.reportHandler.GetMergeReport)
	}
}
