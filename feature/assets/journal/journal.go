package journal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"asset-cache/core/database"
	"asset-cache/feature/assets"

	"gorm.io/gorm"
)

// TableName is the table the journal writes to.
const TableName = "asset_loads"

// AssetLoad is one attempted load.
type AssetLoad struct {
	ID         uint      `gorm:"column:id;primaryKey"`
	BatchID    string    `gorm:"column:batch_id;size:36;index"`
	Kind       string    `gorm:"column:kind;size:16"`
	Name       string    `gorm:"column:name;size:255"`
	Path       string    `gorm:"column:path;size:1024"`
	OK         bool      `gorm:"column:ok"`
	Error      string    `gorm:"column:error;type:text"`
	Width      int       `gorm:"column:width"`
	Height     int       `gorm:"column:height"`
	DurationMS int64     `gorm:"column:duration_ms"`
	LoadedAt   time.Time `gorm:"column:loaded_at;index"`
}

func (AssetLoad) TableName() string { return TableName }

// Columns lists the columns a migrated table must have.
func Columns() []string {
	return []string{"id", "batch_id", "kind", "name", "path", "ok", "error", "width", "height", "duration_ms", "loaded_at"}
}

var _ assets.Recorder = (*Journal)(nil)

// Journal records batch outcomes into TableName.
type Journal struct {
	db        *gorm.DB
	batchSize int
	now       func() time.Time
}

// New creates a journal on db.
func New(db *gorm.DB) *Journal {
	return &Journal{db: db, batchSize: 100, now: time.Now}
}

// Migrate creates or updates the journal table.
func (j *Journal) Migrate(ctx context.Context) error {
	if err := j.db.WithContext(ctx).AutoMigrate(&AssetLoad{}); err != nil {
		return fmt.Errorf("failed to migrate %s: %w", TableName, err)
	}
	return nil
}

// Verify returns the columns the live table is missing.
func (j *Journal) Verify(ctx context.Context) ([]string, error) {
	return database.MissingColumns(j.db.WithContext(ctx), TableName, Columns())
}

// Record inserts one row per record.
func (j *Journal) Record(ctx context.Context, records []assets.Record) error {
	if len(records) == 0 {
		return nil
	}
	at := j.now()
	rows := make([]AssetLoad, 0, len(records))
	for _, r := range records {
		row := AssetLoad{
			BatchID:    r.Batch,
			Kind:       string(r.Kind),
			Name:       r.Name,
			Path:       r.Path,
			OK:         r.Err == nil,
			Width:      r.Width,
			Height:     r.Height,
			DurationMS: r.Duration.Milliseconds(),
			LoadedAt:   at,
		}
		if r.Err != nil {
			row.Error = r.Err.Error()
		}
		rows = append(rows, row)
	}
	if err := j.db.WithContext(ctx).CreateInBatches(&rows, j.batchSize).Error; err != nil {
		return fmt.Errorf("failed to write %d load records: %w", len(rows), err)
	}
	return nil
}

// Recent returns the newest rows first. A non-positive limit returns all rows.
func (j *Journal) Recent(ctx context.Context, limit int) ([]AssetLoad, error) {
	var rows []AssetLoad
	q := j.db.WithContext(ctx).Order("loaded_at DESC").Order("id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", TableName, err)
	}
	return rows, nil
}

// Failures returns the failed rows of one batch.
func (j *Journal) Failures(ctx context.Context, batchID string) ([]AssetLoad, error) {
	if batchID == "" {
		return nil, errors.New("batch id is required")
	}
	var rows []AssetLoad
	err := j.db.WithContext(ctx).
		Where("batch_id = ? AND ok = ?", batchID, false).
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to read failures of batch %s: %w", batchID, err)
	}
	return rows, nil
}
