package journal

import (
	"context"
	"errors"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"asset-cache/core/database"
	"asset-cache/core/render/software"
	"asset-cache/core/scan"
	"asset-cache/feature/assets"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupSQLite(t *testing.T) *Journal {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	j := New(db)
	require.NoError(t, j.Migrate(context.Background()))
	return j
}

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func TestMigrate_Columns(t *testing.T) {
	j := setupSQLite(t)

	missing, err := j.Verify(context.Background())
	require.NoError(t, err)
	assert.Empty(t, missing)
}

func TestVerify_MissingTable(t *testing.T) {
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)

	missing, err := New(db).Verify(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Columns(), missing)
}

func TestRecord(t *testing.T) {
	j := setupSQLite(t)
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	j.now = func() time.Time { return fixed }

	err := j.Record(context.Background(), []assets.Record{
		{Batch: "b1", Kind: assets.KindTexture, Name: "hero", Path: "tex/hero.png", Width: 8, Height: 4},
		{Batch: "b1", Kind: assets.KindTexture, Name: "bad", Path: "tex/bad.png", Err: errors.New("corrupt")},
		{Batch: "b1", Kind: assets.KindSound, Name: "beep", Path: "snd/beep.wav", Duration: 250 * time.Millisecond},
	})
	require.NoError(t, err)

	rows, err := j.Recent(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "beep", rows[0].Name, "newest id first")
	assert.Equal(t, int64(250), rows[0].DurationMS)
	assert.True(t, rows[2].OK)
	assert.Equal(t, 8, rows[2].Width)
	assert.True(t, rows[2].LoadedAt.Equal(fixed))

	failures, err := j.Failures(context.Background(), "b1")
	require.NoError(t, err)
	require.Len(t, failures, 1)
	assert.Equal(t, "bad", failures[0].Name)
	assert.Equal(t, "corrupt", failures[0].Error)

	limited, err := j.Recent(context.Background(), 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestRecord_Empty(t *testing.T) {
	db, mock := setupMockDB(t)
	require.NoError(t, New(db).Record(context.Background(), nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecord_InsertError(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `asset_loads`")).
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := New(db).Record(context.Background(), []assets.Record{
		{Batch: "b", Kind: assets.KindImage, Name: "x", Path: "x.png"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFailures_RequiresBatch(t *testing.T) {
	j := setupSQLite(t)
	_, err := j.Failures(context.Background(), "")
	assert.Error(t, err)
}

func TestJournal_AsRecorder(t *testing.T) {
	j := setupSQLite(t)
	root := t.TempDir()
	writeFixture(t, filepath.Join(root, "tex", "ok.png"))

	backend, err := software.New(32, 32)
	require.NoError(t, err)
	m, err := assets.NewConfigured(context.Background(), backend, scan.FS{Root: root}, nil,
		assets.Dirs{Textures: "tex"}, assets.WithRecorder(j))
	require.NoError(t, err)
	assert.Equal(t, 1, m.Len(assets.KindTexture))

	rows, err := j.Recent(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "ok", rows[0].Name)
	assert.Equal(t, "textures", rows[0].Kind)
	assert.NotEmpty(t, rows[0].BatchID)
}
