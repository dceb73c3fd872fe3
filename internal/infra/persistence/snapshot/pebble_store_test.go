package snapshot

import (
	"context"
	"testing"

	"prism/internal/domain/entity"
	"prism/internal/domain/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPebbleStore_RoundTrip(t *testing.T) {
	store, err := NewPebbleStore(t.TempDir())
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()

	aggregates := &entity.Aggregates{
		Totals: entity.Totals{
			TotalCommission: decimal.RequireFromString("123.45"),
			TotalOrders:     7,
		},
	}
	require.NoError(t, store.SaveAggregates(ctx, aggregates))

	loaded, err := store.LoadAggregates(ctx)
	require.NoError(t, err)
	assert.True(t, loaded.Totals.TotalCommission.Equal(aggregates.Totals.TotalCommission))
	assert.Equal(t, 7, loaded.Totals.TotalOrders)

	report := &entity.MergeReport{DatasetVersion: "abc123", Summary: "clean"}
	require.NoError(t, store.SaveMergeReport(ctx, report))

	loadedReport, err := store.LoadMergeReport(ctx)
	require.NoError(t, err)
	assert.Equal(t, "abc123", loadedReport.DatasetVersion)
}

func TestPebbleStore_MissingKey(t *testing.T) {
	store, err := NewPebbleStore(t.TempDir())
	require.NoError(t, err)
	defer store.Close()

	_, err = store.LoadAggregates(context.Background())
	assert.ErrorIs(t, err, repository.ErrArtifactNotFound)
}

func TestPebbleStore_OverwriteReplacesWholesale(t *testing.T) {
	store, err := NewPebbleStore(t.TempDir())
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()

	first := &entity.MergeReport{DatasetVersion: "v1"}
	second := &entity.MergeReport{DatasetVersion: "v2"}
	require.NoError(t, store.SaveMergeReport(ctx, first))
	require.NoError(t, store.SaveMergeReport(ctx, second))

	loaded, err := store.LoadMergeReport(ctx)
	require.NoError(t, err)
	assert.Equal(t, "v2", loaded.DatasetVersion)
}
