package entity

import "time"

// ConflictKind classifies a disagreement between the file-imported and
// API-synced versions of the same logical record.
type ConflictKind string

const (
	// ConflictSpendMismatch marks differing monetary values for the same key.
	ConflictSpendMismatch ConflictKind = "spend_mismatch"
	// ConflictDateMismatch marks a date shift of the same logical event.
	ConflictDateMismatch ConflictKind = "date_mismatch"
	// ConflictPerformanceAnomaly marks daily spend far exceeding any
	// attributable commission; advisory only.
	ConflictPerformanceAnomaly ConflictKind = "performance_anomaly"
)

// ConflictSeverity grades a conflict for human review.
type ConflictSeverity string

const (
	SeverityLow    ConflictSeverity = "low"
	SeverityMedium ConflictSeverity = "medium"
	SeverityHigh   ConflictSeverity = "high"
)

// Conflict is a resolved disagreement between origins. It is audit
// material, never an error: the API-synced value has already won.
type Conflict struct {
	Kind       ConflictKind     `json:"kind"`
	Severity   ConflictSeverity `json:"severity"`
	Platform   Platform         `json:"platform"`
	Key        string           `json:"key"`
	Field      string           `json:"field"`
	FileValue  string           `json:"file_value"`
	SyncValue  string           `json:"sync_value"`
	Resolution string           `json:"resolution"`
}

// PlatformMergeStats summarizes one platform's merge pass.
type PlatformMergeStats struct {
	Platform          Platform `json:"platform"`
	OriginalCount     int      `json:"original_count"`
	NewCount          int      `json:"new_count"`
	MergedCount       int      `json:"merged_count"`
	DuplicatesFound   int      `json:"duplicates_found"`
	ConflictsResolved int      `json:"conflicts_resolved"`
	Status            string   `json:"status"`
}

// MergeReport is the display-ready outcome of a reconciliation pass.
type MergeReport struct {
	GeneratedAt     time.Time            `json:"generated_at"`
	DatasetVersion  string               `json:"dataset_version"`
	Platforms       []PlatformMergeStats `json:"platforms"`
	Conflicts       []Conflict           `json:"conflicts"`
	Summary         string               `json:"summary"`
	Recommendations []string             `json:"recommendations"`
}
