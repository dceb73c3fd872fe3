package impl

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"prism/internal/domain/entity"
	domainerrors "prism/internal/domain/errors"
	"prism/internal/domain/repository"
	"prism/internal/domain/service"
	"prism/internal/usecase"
	"prism/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// datasetService owns the current-dataset state and runs the full
// reconciliation pipeline. The stage services it composes are pure; all
// storage and concurrency control happens here.
type datasetService struct {
	logger     *slog.Logger
	repo       repository.DatasetRepository
	snapshots  repository.SnapshotStore
	publisher  service.EventPublisher
	ads        service.AdsProvider
	normalizer usecase.NormalizeUsecase
	merger     usecase.MergeUsecase
	attributor usecase.AttributionUsecase
	filterer   usecase.FilterUsecase
	aggregator usecase.AggregateUsecase

	// tickets hands out a monotonically increasing number per submission;
	// commits happen under mu and only when the pass still holds the
	// newest ticket. An older pass that finishes late is discarded.
	tickets         atomic.Uint64
	mu              sync.Mutex
	committedTicket uint64
	lastSyncAt      time.Time
}

// NewDatasetService is the constructor for datasetService. snapshots, ads
// and publisher accept provider-selected implementations; the noop
// publisher and a nil-free snapshot store keep every path wired.
func NewDatasetService(
	logger *slog.Logger,
	repo repository.DatasetRepository,
	snapshots repository.SnapshotStore,
	publisher service.EventPublisher,
	ads service.AdsProvider,
	normalizer usecase.NormalizeUsecase,
	merger usecase.MergeUsecase,
	attributor usecase.AttributionUsecase,
	filterer usecase.FilterUsecase,
	aggregator usecase.AggregateUsecase,
) usecase.DatasetUsecase {
	return &datasetService{
		logger:     logger,
		repo:       repo,
		snapshots:  snapshots,
		publisher:  publisher,
		ads:        ads,
		normalizer: normalizer,
		merger:     merger,
		attributor: attributor,
		filterer:   filterer,
		aggregator: aggregator,
	}
}

// ImportRows runs one pipeline pass for a platform batch and commits the
// outcome. Normalization happens outside the lock; the load-merge-persist
// section is serialized and guarded by the supersede check.
func (srv *datasetService) ImportRows(ctx context.Context, input *usecase.ImportInput) (*entity.MergeReport, error) {
	if input == nil || len(input.Rows) == 0 {
		return nil, errors.Wrap(domainerrors.ErrInvalidImportPayload, "empty import batch")
	}
	if input.Origin != entity.OriginFileImport && input.Origin != entity.OriginAPISync {
		return nil, errors.Wrapf(domainerrors.ErrUnknownOrigin, "origin %q", input.Origin)
	}

	ticket := srv.tickets.Add(1)

	srv.logger.Info("Starting reconciliation pass",
		"platform", input.Platform, "origin", input.Origin, "rows", len(input.Rows), "ticket", ticket)

	var (
		orders []entity.OrderRecord
		ads    []entity.AdRecord
		err    error
	)
	switch input.Platform {
	case entity.PlatformShopee, entity.PlatformLazada:
		orders, err = srv.normalizer.NormalizeOrders(input.Rows, input.Platform, input.Origin)
	case entity.PlatformFacebook:
		ads, err = srv.normalizer.NormalizeAds(input.Rows, input.Origin)
	default:
		return nil, errors.Wrapf(domainerrors.ErrUnknownPlatform, "platform %q", input.Platform)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to normalize import batch")
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	if ticket < srv.committedTicket {
		return nil, errors.Wrap(domainerrors.ErrImportSuperseded, "a newer submission already committed")
	}

	stored, err := srv.loadOrEmptyCollections(ctx)
	if err != nil {
		return nil, err
	}

	merged := stored.Clone()
	var (
		stats     entity.PlatformMergeStats
		conflicts []entity.Conflict
	)
	switch input.Platform {
	case entity.PlatformShopee, entity.PlatformLazada:
		result := srv.merger.MergeOrders(stored.OrdersFor(input.Platform), orders, input.Platform)
		stats, conflicts = result.Stats, result.Conflicts
		if input.Platform == entity.PlatformShopee {
			merged.ShopeeOrders = result.Merged
		} else {
			merged.LazadaOrders = result.Merged
		}
	case entity.PlatformFacebook:
		result := srv.merger.MergeAds(stored.FacebookAds, ads)
		stats, conflicts = result.Stats, result.Conflicts
		merged.FacebookAds = result.Merged
	}

	anomalies, recommendations := srv.merger.DetectAnomalies(merged)
	conflicts = append(conflicts, anomalies...)

	version, err := util.CalculateChecksum(merged.WithoutOrigin())
	if err != nil {
		return nil, errors.Wrap(err, "failed to version merged dataset")
	}

	report := &entity.MergeReport{
		GeneratedAt:     time.Now(),
		DatasetVersion:  version,
		Platforms:       []entity.PlatformMergeStats{stats},
		Conflicts:       conflicts,
		Summary:         buildSummary(stats, len(conflicts)),
		Recommendations: recommendations,
	}

	attributed := srv.attributor.Attribute(merged)
	aggregates := srv.aggregator.Aggregate(merged, attributed)

	if err := srv.repo.SaveCollections(ctx, merged); err != nil {
		return nil, errors.Wrap(err, "failed to persist collections")
	}
	if err := srv.repo.SaveAggregates(ctx, aggregates); err != nil {
		return nil, errors.Wrap(err, "failed to persist aggregates")
	}
	if err := srv.repo.SaveMergeReport(ctx, report); err != nil {
		return nil, errors.Wrap(err, "failed to persist merge report")
	}

	srv.committedTicket = ticket

	srv.mirrorSnapshot(ctx, aggregates, report)
	srv.publishUpdated(ctx, input, version, stats.MergedCount)

	srv.logger.Info("Reconciliation pass committed",
		"platform", input.Platform, "version", version, "merged", stats.MergedCount, "conflicts", len(conflicts))

	return report, nil
}

// SyncAds pulls advertising rows since the last successful sync and feeds
// them through the standard pipeline with api_sync origin.
func (srv *datasetService) SyncAds(ctx context.Context) (*entity.MergeReport, error) {
	if srv.ads == nil {
		return nil, errors.Wrap(domainerrors.ErrAdsSyncNotConfigured, "no ads provider configured")
	}

	srv.mu.Lock()
	since := srv.lastSyncAt
	srv.mu.Unlock()

	rows, err := srv.ads.FetchAdRows(ctx, since)
	if err != nil {
		return nil, domainerrors.ErrAdsSyncFailed.WrapMessage(err.Error())
	}
	if len(rows) == 0 {
		srv.logger.Info("Ads sync returned no new rows", "since", since)

		report, err := srv.GetMergeReport(ctx)
		if err == nil {
			return report, nil
		}
		// A no-op sync before the first committed pass is not a failure.
		if errors.Is(err, domainerrors.ErrReportNotFound) {
			return &entity.MergeReport{
				GeneratedAt: time.Now(),
				Summary:     "no advertising rows to sync",
			}, nil
		}

		return nil, err
	}

	report, err := srv.ImportRows(ctx, &usecase.ImportInput{
		Platform: entity.PlatformFacebook,
		Origin:   entity.OriginAPISync,
		Rows:     rows,
	})
	if err != nil {
		return nil, err
	}

	srv.mu.Lock()
	srv.lastSyncAt = time.Now()
	srv.mu.Unlock()

	return report, nil
}

// GetAggregates serves the performance picture. An unfiltered request is
// answered from the persisted aggregates (snapshot as fallback); a
// filtered request recomputes over the stored collections so attribution
// runs against the filtered Sub ID universe.
func (srv *datasetService) GetAggregates(ctx context.Context, filter *usecase.Filter) (*entity.Aggregates, error) {
	if filter.IsZero() {
		aggregates, err := srv.repo.LoadAggregates(ctx)
		if err == nil {
			return aggregates, nil
		}
		if !errors.Is(err, repository.ErrArtifactNotFound) {
			srv.logger.Warn("Failed to load persisted aggregates, falling back", "error", err)
		}
		if srv.snapshots != nil {
			if aggregates, snapErr := srv.snapshots.LoadAggregates(ctx); snapErr == nil {
				return aggregates, nil
			}
		}
		if errors.Is(err, repository.ErrArtifactNotFound) {
			return nil, errors.Wrap(domainerrors.ErrDatasetNotFound, "no dataset imported yet")
		}

		return nil, errors.Wrap(err, "failed to load aggregates")
	}

	collections, err := srv.repo.LoadCollections(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrArtifactNotFound) {
			return nil, errors.Wrap(domainerrors.ErrDatasetNotFound, "no dataset imported yet")
		}

		return nil, errors.Wrap(err, "failed to load collections")
	}

	filtered := srv.filterer.Apply(collections, filter)
	attributed := srv.attributor.Attribute(filtered)

	return srv.aggregator.Aggregate(filtered, attributed), nil
}

// GetMergeReport returns the report of the last committed pass.
func (srv *datasetService) GetMergeReport(ctx context.Context) (*entity.MergeReport, error) {
	report, err := srv.repo.LoadMergeReport(ctx)
	if err == nil {
		return report, nil
	}
	if srv.snapshots != nil {
		if report, snapErr := srv.snapshots.LoadMergeReport(ctx); snapErr == nil {
			return report, nil
		}
	}
	if errors.Is(err, repository.ErrArtifactNotFound) {
		return nil, errors.Wrap(domainerrors.ErrReportNotFound, "no reconciliation pass committed yet")
	}

	return nil, errors.Wrap(err, "failed to load merge report")
}

func (srv *datasetService) loadOrEmptyCollections(ctx context.Context) (*entity.Collections, error) {
	stored, err := srv.repo.LoadCollections(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrArtifactNotFound) {
			return &entity.Collections{}, nil
		}

		return nil, errors.Wrap(err, "failed to load stored collections")
	}

	return stored, nil
}

// mirrorSnapshot copies the committed artifacts into the local snapshot
// store. Mirror failures never fail the pass.
func (srv *datasetService) mirrorSnapshot(ctx context.Context, aggregates *entity.Aggregates, report *entity.MergeReport) {
	if srv.snapshots == nil {
		return
	}
	if err := srv.snapshots.SaveAggregates(ctx, aggregates); err != nil {
		srv.logger.Warn("Failed to mirror aggregates snapshot", "error", err)
	}
	if err := srv.snapshots.SaveMergeReport(ctx, report); err != nil {
		srv.logger.Warn("Failed to mirror merge report snapshot", "error", err)
	}
}

// publishUpdated emits the dataset-updated event. Publish failures never
// fail the pass.
func (srv *datasetService) publishUpdated(ctx context.Context, input *usecase.ImportInput, version string, total int) {
	if srv.publisher == nil {
		return
	}
	event := &service.DatasetUpdatedEvent{
		RequestID:      uuid.New().String(),
		DatasetVersion: version,
		Platform:       input.Platform,
		Origin:         input.Origin,
		TotalRecords:   total,
		OccurredAt:     time.Now(),
	}
	if err := srv.publisher.PublishDatasetUpdated(ctx, event); err != nil {
		srv.logger.Warn("Failed to publish dataset updated event", "error", err)
	}
}

func buildSummary(stats entity.PlatformMergeStats, conflictCount int) string {
	return fmt.Sprintf("platform %s: %d existing + %d incoming -> %d merged, %d duplicates, %d conflicts",
		stats.Platform, stats.OriginalCount, stats.NewCount, stats.MergedCount, stats.DuplicatesFound, conflictCount)
}
