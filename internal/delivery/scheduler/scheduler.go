// Package scheduler runs the recurring advertising-platform sync.
package scheduler

import (
	"context"
	"log/slog"

	"prism/config"
	"prism/internal/delivery"
	"prism/internal/errors"
	"prism/internal/usecase"

	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

type adsSyncScheduler struct {
	cfg       *config.Config
	logger    *slog.Logger
	datasetUC usecase.DatasetUsecase
	cron      *cron.Cron
}

// SchedulerParams holds dependencies for the sync scheduler, injected by Fx.
type SchedulerParams struct {
	fx.In

	Lc        fx.Lifecycle
	Cfg       *config.Config
	Logger    *slog.Logger
	DatasetUC usecase.DatasetUsecase
}

// NewScheduler builds the cron-backed delivery that periodically pulls
// ad-spend rows through the dataset usecase.
func NewScheduler(params SchedulerParams) (delivery.Delivery, error) {
	srv := &adsSyncScheduler{
		cfg:       params.Cfg,
		logger:    params.Logger,
		datasetUC: params.DatasetUC,
		cron:      cron.New(),
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

func (s *adsSyncScheduler) Serve(ctx context.Context) error {
	if s.cfg.Sync == nil || !s.cfg.Sync.Enabled {
		s.logger.Info("Advertising sync scheduler disabled")

		return nil
	}

	if _, err := s.cron.AddFunc(s.cfg.Sync.Schedule, func() {
		s.runSync(ctx)
	}); err != nil {
		return errors.Wrapf(err, "register sync schedule %q failed", s.cfg.Sync.Schedule)
	}

	s.logger.Info("Starting advertising sync scheduler",
		slog.String("schedule", s.cfg.Sync.Schedule))
	s.cron.Start()

	return nil
}

func (s *adsSyncScheduler) runSync(ctx context.Context) {
	report, err := s.datasetUC.SyncAds(ctx)
	if err != nil {
		s.logger.Error("Scheduled advertising sync failed", slog.Any("error", err))

		return
	}

	s.logger.Info("Scheduled advertising sync finished",
		slog.String("dataset_version", report.DatasetVersion),
		slog.Int("conflicts", len(report.Conflicts)))
}

func (s *adsSyncScheduler) stop(ctx context.Context) error {
	s.logger.Info("Shutting down advertising sync scheduler")

	stopCtx := s.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-ctx.Done():
	}

	return nil
}
