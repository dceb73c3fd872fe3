package main

import (
	"context"
	"log/slog"
	"os"

	"prism/config"
	"prism/internal/delivery"
	"prism/internal/delivery/api"
	"prism/internal/delivery/api/router/handler"
	"prism/internal/delivery/scheduler"
	"prism/internal/domain/repository"
	"prism/internal/domain/service"
	"prism/internal/infra/adsapi"
	logs "prism/internal/infra/log"
	"prism/internal/infra/persistence/postgres"
	"prism/internal/infra/persistence/snapshot"
	"prism/internal/infra/pubsub"
	"prism/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewArtifactRepository,
			newSnapshotStore,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			pubsub.NewEventPublisher,
			newAdsProvider,
		),
	)
}

// newSnapshotStore opens the local Pebble mirror used when the primary
// store is unavailable. Snapshots are optional.
func newSnapshotStore(cfg *config.Config, logger *slog.Logger) (repository.SnapshotStore, error) {
	if cfg.Snapshot == nil || !cfg.Snapshot.Enabled {
		logger.Info("Snapshot mirror disabled")

		return nil, nil
	}

	return snapshot.NewPebbleStore(cfg.Snapshot.Path)
}

// newAdsProvider creates the advertising-platform client. A nil provider
// disables the sync endpoints.
func newAdsProvider(cfg *config.Config, logger *slog.Logger) service.AdsProvider {
	return adsapi.NewClient(cfg.AdsAPI, logger)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewNormalizerService,
			impl.NewMergerService,
			impl.NewAttributionService,
			impl.NewFilterService,
			impl.NewAggregatorService,
			impl.NewDatasetService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewDatasetHandler,
			handler.NewReportHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				scheduler.NewScheduler,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
