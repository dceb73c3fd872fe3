// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"encoding/json"

	"prism/internal/domain/entity"
	domainerrors "prism/internal/domain/errors"
	"prism/internal/domain/repository"
	"prism/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// artifactRepository implements the repository.DatasetRepository interface.
// Every artifact lives under a fixed key and is replaced wholesale; there
// is no row-level history.
type artifactRepository struct {
	db *gorm.DB
}

// NewArtifactRepository is the constructor for artifactRepository.
func NewArtifactRepository(db *gorm.DB) repository.DatasetRepository {
	return &artifactRepository{
		db: db,
	}
}

// SaveCollections replaces the persisted canonical dataset.
func (repo *artifactRepository) SaveCollections(ctx context.Context, collections *entity.Collections) error {
	return repo.save(ctx, repository.KeyCollections, collections)
}

// LoadCollections retrieves the persisted canonical dataset.
func (repo *artifactRepository) LoadCollections(ctx context.Context) (*entity.Collections, error) {
	collections := &entity.Collections{}
	if err := repo.load(ctx, repository.KeyCollections, collections); err != nil {
		return nil, err
	}

	return collections, nil
}

// SaveAggregates replaces the persisted aggregates.
func (repo *artifactRepository) SaveAggregates(ctx context.Context, aggregates *entity.Aggregates) error {
	return repo.save(ctx, repository.KeyAggregates, aggregates)
}

// LoadAggregates retrieves the persisted aggregates.
func (repo *artifactRepository) LoadAggregates(ctx context.Context) (*entity.Aggregates, error) {
	aggregates := &entity.Aggregates{}
	if err := repo.load(ctx, repository.KeyAggregates, aggregates); err != nil {
		return nil, err
	}

	return aggregates, nil
}

// SaveMergeReport replaces the persisted merge report.
func (repo *artifactRepository) SaveMergeReport(ctx context.Context, report *entity.MergeReport) error {
	return repo.save(ctx, repository.KeyMergeReport, report)
}

// LoadMergeReport retrieves the persisted merge report.
func (repo *artifactRepository) LoadMergeReport(ctx context.Context) (*entity.MergeReport, error) {
	report := &entity.MergeReport{}
	if err := repo.load(ctx, repository.KeyMergeReport, report); err != nil {
		return nil, err
	}

	return report, nil
}

func (repo *artifactRepository) save(ctx context.Context, key string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "failed to encode artifact %s", key)
	}

	artifactM := &model.ArtifactModel{
		Key:     key,
		Payload: payload,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
		}).
		Create(artifactM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save artifact "+key)
	}

	return nil
}

func (repo *artifactRepository) load(ctx context.Context, key string, target any) error {
	var artifactM model.ArtifactModel

	if err := repo.db.WithContext(ctx).
		Where("key = ?", key).
		First(&artifactM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return repository.ErrArtifactNotFound
		}

		return errors.Wrapf(err, "failed to load artifact %s", key)
	}

	if err := json.Unmarshal(artifactM.Payload, target); err != nil {
		return errors.Wrapf(err, "failed to decode artifact %s", key)
	}

	return nil
}
