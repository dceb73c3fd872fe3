package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"prism/internal/domain/entity"
	domainerrors "prism/internal/domain/errors"
	"prism/internal/domain/repository"
	"prism/internal/domain/schema"
	"prism/internal/domain/service"
	mockRepo "prism/internal/mocks/repository"
	mockService "prism/internal/mocks/service"
	"prism/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestDatasetService(
	repo repository.DatasetRepository,
	snapshots repository.SnapshotStore,
	publisher service.EventPublisher,
	ads service.AdsProvider,
) usecase.DatasetUsecase {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewDatasetService(
		logger,
		repo,
		snapshots,
		publisher,
		ads,
		NewNormalizerService(),
		NewMergerService(),
		NewAttributionService(),
		NewFilterService(),
		NewAggregatorService(),
	)
}

func shopeeImportInput() *usecase.ImportInput {
	return &usecase.ImportInput{
		Platform: entity.PlatformShopee,
		Origin:   entity.OriginFileImport,
		Rows: []schema.RawRow{
			{
				"Order ID":       "SP-1",
				"Sub_id1":        "camp_a",
				"Net Commission": "12.50",
				"Order Amount":   "250.00",
				"Order Time":     "2025-03-10 14:00:00",
			},
		},
	}
}

func TestDatasetService_ImportRows_FirstImportCommits(t *testing.T) {
	repo := mockRepo.NewMockDatasetRepository(t)
	snapshots := mockRepo.NewMockSnapshotStore(t)
	publisher := mockService.NewMockEventPublisher(t)
	svc := newTestDatasetService(repo, snapshots, publisher, nil)
	ctx := context.Background()

	repo.EXPECT().LoadCollections(ctx).Return(nil, repository.ErrArtifactNotFound)
	repo.EXPECT().SaveCollections(ctx, mock.AnythingOfType("*entity.Collections")).Return(nil)
	repo.EXPECT().SaveAggregates(ctx, mock.AnythingOfType("*entity.Aggregates")).Return(nil)
	repo.EXPECT().SaveMergeReport(ctx, mock.AnythingOfType("*entity.MergeReport")).Return(nil)
	snapshots.EXPECT().SaveAggregates(ctx, mock.AnythingOfType("*entity.Aggregates")).Return(nil)
	snapshots.EXPECT().SaveMergeReport(ctx, mock.AnythingOfType("*entity.MergeReport")).Return(nil)
	publisher.EXPECT().
		PublishDatasetUpdated(ctx, mock.AnythingOfType("*service.DatasetUpdatedEvent")).
		Run(func(ctx context.Context, event *service.DatasetUpdatedEvent) {
			assert.Equal(t, entity.PlatformShopee, event.Platform)
			assert.Equal(t, entity.OriginFileImport, event.Origin)
			assert.NotEmpty(t, event.DatasetVersion)
		}).
		Return(nil)

	report, err := svc.ImportRows(ctx, shopeeImportInput())

	require.NoError(t, err)
	require.NotNil(t, report)
	assert.NotEmpty(t, report.DatasetVersion)
	require.Len(t, report.Platforms, 1)
	assert.Equal(t, entity.PlatformShopee, report.Platforms[0].Platform)
	assert.Equal(t, 1, report.Platforms[0].MergedCount)
}

func TestDatasetService_ImportRows_StructuralFailureTouchesNothing(t *testing.T) {
	repo := mockRepo.NewMockDatasetRepository(t)
	svc := newTestDatasetService(repo, nil, nil, nil)

	input := &usecase.ImportInput{
		Platform: entity.PlatformShopee,
		Origin:   entity.OriginFileImport,
		Rows:     []schema.RawRow{{"Unrelated": "x"}},
	}

	report, err := svc.ImportRows(context.Background(), input)

	require.Error(t, err)
	assert.Nil(t, report)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "SCHEMA_MISMATCH", appErr.ErrorCode())
	// No repository expectations were set: a structural failure must not
	// load or write anything.
}

func TestDatasetService_ImportRows_EmptyBatchRejected(t *testing.T) {
	repo := mockRepo.NewMockDatasetRepository(t)
	svc := newTestDatasetService(repo, nil, nil, nil)

	_, err := svc.ImportRows(context.Background(), &usecase.ImportInput{
		Platform: entity.PlatformShopee,
		Origin:   entity.OriginFileImport,
	})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_IMPORT_PAYLOAD", appErr.ErrorCode())
}

func TestDatasetService_ImportRows_UnknownOriginRejected(t *testing.T) {
	repo := mockRepo.NewMockDatasetRepository(t)
	svc := newTestDatasetService(repo, nil, nil, nil)

	input := shopeeImportInput()
	input.Origin = entity.Origin("manual")
	_, err := svc.ImportRows(context.Background(), input)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "UNKNOWN_ORIGIN", appErr.ErrorCode())
}

func TestDatasetService_ImportRows_MergesAgainstStoredDataset(t *testing.T) {
	repo := mockRepo.NewMockDatasetRepository(t)
	svc := newTestDatasetService(repo, nil, nil, nil)
	ctx := context.Background()

	stored := &entity.Collections{
		ShopeeOrders: []entity.OrderRecord{
			{OrderID: "SP-1", SubIDs: []string{"camp_a"},
				Commission: mustDecimal("99.00"), Origin: entity.OriginAPISync,
				OrderTime: time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)},
		},
	}

	repo.EXPECT().LoadCollections(ctx).Return(stored, nil)
	var savedCollections *entity.Collections
	repo.EXPECT().SaveCollections(ctx, mock.AnythingOfType("*entity.Collections")).
		Run(func(ctx context.Context, collections *entity.Collections) {
			savedCollections = collections
		}).
		Return(nil)
	repo.EXPECT().SaveAggregates(ctx, mock.AnythingOfType("*entity.Aggregates")).Return(nil)
	repo.EXPECT().SaveMergeReport(ctx, mock.AnythingOfType("*entity.MergeReport")).Return(nil)

	report, err := svc.ImportRows(ctx, shopeeImportInput())

	require.NoError(t, err)
	assert.Equal(t, 1, report.Platforms[0].DuplicatesFound)
	assert.Equal(t, 1, report.Platforms[0].ConflictsResolved)

	require.NotNil(t, savedCollections)
	require.Len(t, savedCollections.ShopeeOrders, 1)
	assert.True(t, savedCollections.ShopeeOrders[0].Commission.Equal(mustDecimal("99.00")),
		"stored api_sync rows win over a later file import")
}

func TestDatasetService_SyncAds_NotConfigured(t *testing.T) {
	repo := mockRepo.NewMockDatasetRepository(t)
	svc := newTestDatasetService(repo, nil, nil, nil)

	_, err := svc.SyncAds(context.Background())

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "ADS_SYNC_NOT_CONFIGURED", appErr.ErrorCode())
}

func TestDatasetService_SyncAds_ProviderFailure(t *testing.T) {
	repo := mockRepo.NewMockDatasetRepository(t)
	ads := mockService.NewMockAdsProvider(t)
	svc := newTestDatasetService(repo, nil, nil, ads)
	ctx := context.Background()

	ads.EXPECT().FetchAdRows(ctx, mock.AnythingOfType("time.Time")).
		Return(nil, assert.AnError)

	_, err := svc.SyncAds(ctx)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "ADS_SYNC_FAILED", appErr.ErrorCode())
}

func TestDatasetService_SyncAds_RunsPipelineWithAPISyncOrigin(t *testing.T) {
	repo := mockRepo.NewMockDatasetRepository(t)
	ads := mockService.NewMockAdsProvider(t)
	svc := newTestDatasetService(repo, nil, nil, ads)
	ctx := context.Background()

	rows := []schema.RawRow{
		{"Campaign name": "camp_a promo", "Amount spent (THB)": "100", "Day": "2025-03-10"},
	}
	ads.EXPECT().FetchAdRows(ctx, mock.AnythingOfType("time.Time")).Return(rows, nil)

	repo.EXPECT().LoadCollections(ctx).Return(nil, repository.ErrArtifactNotFound)
	var savedCollections *entity.Collections
	repo.EXPECT().SaveCollections(ctx, mock.AnythingOfType("*entity.Collections")).
		Run(func(ctx context.Context, collections *entity.Collections) {
			savedCollections = collections
		}).
		Return(nil)
	repo.EXPECT().SaveAggregates(ctx, mock.AnythingOfType("*entity.Aggregates")).Return(nil)
	repo.EXPECT().SaveMergeReport(ctx, mock.AnythingOfType("*entity.MergeReport")).Return(nil)

	report, err := svc.SyncAds(ctx)

	require.NoError(t, err)
	assert.Equal(t, entity.PlatformFacebook, report.Platforms[0].Platform)
	require.NotNil(t, savedCollections)
	require.Len(t, savedCollections.FacebookAds, 1)
	assert.Equal(t, entity.OriginAPISync, savedCollections.FacebookAds[0].Origin)
}

func TestDatasetService_GetAggregates_UnfilteredServesPersisted(t *testing.T) {
	repo := mockRepo.NewMockDatasetRepository(t)
	svc := newTestDatasetService(repo, nil, nil, nil)
	ctx := context.Background()

	persisted := &entity.Aggregates{}
	repo.EXPECT().LoadAggregates(ctx).Return(persisted, nil)

	aggregates, err := svc.GetAggregates(ctx, nil)

	require.NoError(t, err)
	assert.Same(t, persisted, aggregates)
}

func TestDatasetService_GetAggregates_UnfilteredFallsBackToSnapshot(t *testing.T) {
	repo := mockRepo.NewMockDatasetRepository(t)
	snapshots := mockRepo.NewMockSnapshotStore(t)
	svc := newTestDatasetService(repo, snapshots, nil, nil)
	ctx := context.Background()

	mirrored := &entity.Aggregates{}
	repo.EXPECT().LoadAggregates(ctx).Return(nil, assert.AnError)
	snapshots.EXPECT().LoadAggregates(ctx).Return(mirrored, nil)

	aggregates, err := svc.GetAggregates(ctx, nil)

	require.NoError(t, err)
	assert.Same(t, mirrored, aggregates)
}

func TestDatasetService_GetAggregates_NoDatasetYet(t *testing.T) {
	repo := mockRepo.NewMockDatasetRepository(t)
	svc := newTestDatasetService(repo, nil, nil, nil)
	ctx := context.Background()

	repo.EXPECT().LoadAggregates(ctx).Return(nil, repository.ErrArtifactNotFound)

	_, err := svc.GetAggregates(ctx, nil)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "DATASET_NOT_FOUND", appErr.ErrorCode())
}

func TestDatasetService_GetAggregates_FilteredRecomputes(t *testing.T) {
	repo := mockRepo.NewMockDatasetRepository(t)
	svc := newTestDatasetService(repo, nil, nil, nil)
	ctx := context.Background()

	stored := &entity.Collections{
		ShopeeOrders: []entity.OrderRecord{
			{OrderID: "S1", SubIDs: []string{"camp_a"}, Commission: mustDecimal("10"),
				OrderTime: time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)},
			{OrderID: "S2", SubIDs: []string{"camp_b"}, Commission: mustDecimal("20"),
				OrderTime: time.Date(2025, 3, 12, 10, 0, 0, 0, time.UTC)},
		},
	}
	repo.EXPECT().LoadCollections(ctx).Return(stored, nil)

	aggregates, err := svc.GetAggregates(ctx, &usecase.Filter{SubIDs: []string{"camp_a"}})

	require.NoError(t, err)
	require.Len(t, aggregates.PerSubID, 1)
	assert.Equal(t, "camp_a", aggregates.PerSubID[0].SubID)
	assert.True(t, aggregates.Totals.TotalCommission.Equal(mustDecimal("10")))
}

func TestDatasetService_GetMergeReport_FallsBackToSnapshot(t *testing.T) {
	repo := mockRepo.NewMockDatasetRepository(t)
	snapshots := mockRepo.NewMockSnapshotStore(t)
	svc := newTestDatasetService(repo, snapshots, nil, nil)
	ctx := context.Background()

	mirrored := &entity.MergeReport{DatasetVersion: "abc"}
	repo.EXPECT().LoadMergeReport(ctx).Return(nil, repository.ErrArtifactNotFound)
	snapshots.EXPECT().LoadMergeReport(ctx).Return(mirrored, nil)

	report, err := svc.GetMergeReport(ctx)

	require.NoError(t, err)
	assert.Same(t, mirrored, report)
}

func TestDatasetService_GetMergeReport_NoPassCommitted(t *testing.T) {
	repo := mockRepo.NewMockDatasetRepository(t)
	svc := newTestDatasetService(repo, nil, nil, nil)
	ctx := context.Background()

	repo.EXPECT().LoadMergeReport(ctx).Return(nil, repository.ErrArtifactNotFound)

	_, err := svc.GetMergeReport(ctx)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "REPORT_NOT_FOUND", appErr.ErrorCode())
}

func TestDatasetService_ImportRows_IdenticalDataYieldsSameVersion(t *testing.T) {
	ctx := context.Background()

	runOnce := func() string {
		repo := mockRepo.NewMockDatasetRepository(t)
		svc := newTestDatasetService(repo, nil, nil, nil)
		repo.EXPECT().LoadCollections(ctx).Return(nil, repository.ErrArtifactNotFound)
		repo.EXPECT().SaveCollections(ctx, mock.Anything).Return(nil)
		repo.EXPECT().SaveAggregates(ctx, mock.Anything).Return(nil)
		repo.EXPECT().SaveMergeReport(ctx, mock.Anything).Return(nil)

		report, err := svc.ImportRows(ctx, shopeeImportInput())
		require.NoError(t, err)

		return report.DatasetVersion
	}

	assert.Equal(t, runOnce(), runOnce(), "the dataset version is a content checksum")
}

func TestDatasetService_ImportRows_VersionIgnoresOrigin(t *testing.T) {
	ctx := context.Background()

	runOnce := func(origin entity.Origin) string {
		repo := mockRepo.NewMockDatasetRepository(t)
		svc := newTestDatasetService(repo, nil, nil, nil)
		repo.EXPECT().LoadCollections(ctx).Return(nil, repository.ErrArtifactNotFound)
		repo.EXPECT().SaveCollections(ctx, mock.Anything).Return(nil)
		repo.EXPECT().SaveAggregates(ctx, mock.Anything).Return(nil)
		repo.EXPECT().SaveMergeReport(ctx, mock.Anything).Return(nil)

		input := shopeeImportInput()
		input.Origin = origin
		report, err := svc.ImportRows(ctx, input)
		require.NoError(t, err)

		return report.DatasetVersion
	}

	assert.Equal(t, runOnce(entity.OriginFileImport), runOnce(entity.OriginAPISync),
		"the version checksum covers origin-stripped collections")
}

// gatedNormalizer blocks the first normalization until released so a later
// submission can commit while the first pass is still in flight.
type gatedNormalizer struct {
	inner   usecase.NormalizeUsecase
	entered chan struct{}
	release chan struct{}
	once    sync.Once
}

func (n *gatedNormalizer) NormalizeOrders(rows []schema.RawRow, platform entity.Platform, origin entity.Origin) ([]entity.OrderRecord, error) {
	gated := false
	n.once.Do(func() { gated = true })
	if gated {
		close(n.entered)
		<-n.release
	}

	return n.inner.NormalizeOrders(rows, platform, origin)
}

func (n *gatedNormalizer) NormalizeAds(rows []schema.RawRow, origin entity.Origin) ([]entity.AdRecord, error) {
	return n.inner.NormalizeAds(rows, origin)
}

func TestDatasetService_ImportRows_SupersededPassDiscarded(t *testing.T) {
	repo := mockRepo.NewMockDatasetRepository(t)
	ctx := context.Background()

	normalizer := &gatedNormalizer{
		inner:   NewNormalizerService(),
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewDatasetService(
		logger,
		repo,
		nil,
		nil,
		nil,
		normalizer,
		NewMergerService(),
		NewAttributionService(),
		NewFilterService(),
		NewAggregatorService(),
	)

	// Only the newer pass may touch the store.
	repo.EXPECT().LoadCollections(ctx).Return(nil, repository.ErrArtifactNotFound).Once()
	repo.EXPECT().SaveCollections(ctx, mock.Anything).Return(nil).Once()
	repo.EXPECT().SaveAggregates(ctx, mock.Anything).Return(nil).Once()
	repo.EXPECT().SaveMergeReport(ctx, mock.Anything).Return(nil).Once()

	older := make(chan error, 1)
	go func() {
		_, err := svc.ImportRows(ctx, shopeeImportInput())
		older <- err
	}()

	// The older pass holds its submission ticket and is parked inside
	// normalization; a later submission now runs to completion.
	<-normalizer.entered
	_, err := svc.ImportRows(ctx, shopeeImportInput())
	require.NoError(t, err)

	close(normalizer.release)

	err = <-older
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "IMPORT_SUPERSEDED", appErr.ErrorCode())
}

func TestDatasetService_SyncAds_NoRowsBeforeFirstPass(t *testing.T) {
	repo := mockRepo.NewMockDatasetRepository(t)
	ads := mockService.NewMockAdsProvider(t)
	svc := newTestDatasetService(repo, nil, nil, ads)
	ctx := context.Background()

	ads.EXPECT().FetchAdRows(ctx, mock.AnythingOfType("time.Time")).Return(nil, nil)
	repo.EXPECT().LoadMergeReport(ctx).Return(nil, repository.ErrArtifactNotFound)

	report, err := svc.SyncAds(ctx)

	require.NoError(t, err, "a no-op sync before any committed pass is not a failure")
	require.NotNil(t, report)
	assert.Empty(t, report.Platforms)
	assert.Contains(t, report.Summary, "no advertising rows")
}

func mustDecimal(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}
