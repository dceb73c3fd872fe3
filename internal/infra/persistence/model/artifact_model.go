package model

import (
	"time"
)

// ArtifactModel mirrors the 'dataset_artifacts' table. Each row is one
// serialized artifact blob (collections, aggregates or merge report)
// replaced wholesale on every committed reconciliation pass.
type ArtifactModel struct {
	Key       string `gorm:"type:varchar(64);primaryKey"`
	Payload   []byte `gorm:"type:jsonb;not null"`
	Version   string `gorm:"type:varchar(64)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ArtifactModel) TableName() string {
	return "dataset_artifacts"
}
