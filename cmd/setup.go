package cmd

import (
	"context"
	"errors"
	"fmt"

	"asset-cache/core/catalog"
	"asset-cache/core/config"
	"asset-cache/core/database"
	"asset-cache/core/logger"
	"asset-cache/core/render"
	"asset-cache/core/scan"
	"asset-cache/core/storage"
	"asset-cache/feature/assets"
	"asset-cache/feature/assets/journal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// bootstrap loads the configuration and builds the logger every command uses.
func bootstrap(cmd *cobra.Command) (*config.Config, *zap.Logger, error) {
	dir, _ := cmd.Flags().GetString("env")
	cfg, err := config.LoadConfig(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return cfg, logg, nil
}

// newSource returns the local or bucket source named by assets.source.
func newSource(ctx context.Context, cfg *config.Config) (scan.Source, error) {
	switch cfg.Assets.Source {
	case "", catalog.SourceFS:
		return scan.FS{Root: cfg.Assets.Root}, nil
	case catalog.SourceBucket:
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to create storage client: %w", err)
		}
		if err := storage.EnsureBucket(ctx, client, cfg.Storage.Bucket); err != nil {
			return nil, err
		}
		return scan.Bucket{Client: client, Bucket: cfg.Storage.Bucket, Prefix: cfg.Storage.Prefix}, nil
	}
	return nil, fmt.Errorf("unknown asset source %q", cfg.Assets.Source)
}

// openJournal connects the optional load journal. A disabled or unreachable
// database only produces a warning.
func openJournal(ctx context.Context, cfg *config.Config, logg *zap.Logger) *journal.Journal {
	db, err := database.Connect(cfg.Database)
	if errors.Is(err, database.ErrDisabled) {
		return nil
	}
	if err != nil {
		logg.Warn("Optional database connection failed", zap.Error(err))
		return nil
	}

	j := journal.New(db)
	if err := j.Migrate(ctx); err != nil {
		logg.Warn("Load journal disabled", zap.Error(err))
		return nil
	}
	if missing, err := j.Verify(ctx); err == nil && len(missing) > 0 {
		logg.Warn("Load journal table is missing columns", zap.Strings("columns", missing))
	}
	logg.Info("Load journal enabled", zap.String("driver", cfg.Database.Driver))
	return j
}

// newManager builds a manager on backend and runs the configured load.
func newManager(ctx context.Context, cfg *config.Config, backend render.Backend, logg *zap.Logger) (*assets.Manager, assets.Report, error) {
	source, err := newSource(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	opts, err := assets.ConfigOptions(cfg.Assets)
	if err != nil {
		return nil, nil, err
	}
	if j := openJournal(ctx, cfg, logg); j != nil {
		opts = append(opts, assets.WithRecorder(j))
	}

	m := assets.New(backend, source, logg, opts...)
	var report assets.Report
	if cfg.Assets.Conventional {
		report, err = m.LoadConventional(ctx)
	} else {
		report, err = m.LoadConfigured(ctx, assets.ConfigDirs(cfg.Assets))
	}
	if err != nil {
		return nil, nil, err
	}
	return m, report, nil
}
