package catalog

import (
	"fmt"

	"asset-cache/core/batch"
)

// Asset sources.
const (
	SourceFS     = "fs"
	SourceBucket = "bucket"
)

// Config holds configuration for the batch loads.
type Config struct {
	// Source selects where assets are read from (fs, bucket).
	Source string `mapstructure:"source" default:"fs"`
	// Root is prepended to every directory for the fs source.
	Root string `mapstructure:"root" default:""`
	// Conventional loads assets/*.png and assets/sounds/*.wav instead of the directories below.
	Conventional bool `mapstructure:"conventional" default:"false"`
	// TexturesDir holds *.png files loaded straight into textures. Empty skips it.
	TexturesDir string `mapstructure:"textures_dir" default:""`
	// ImagesDir holds *.png files kept as CPU images. Empty skips it.
	ImagesDir string `mapstructure:"images_dir" default:""`
	// SoundsDir holds *.wav files. Empty skips it.
	SoundsDir string `mapstructure:"sounds_dir" default:""`
	// Policy is the batch policy (concurrent, sequential).
	Policy string `mapstructure:"policy" default:"concurrent"`
	// Concurrency caps in-flight loads per batch. Zero is unbounded.
	Concurrency int `mapstructure:"concurrency" default:"0"`
}

// BatchPolicy parses Policy.
func (c Config) BatchPolicy() (batch.Policy, error) {
	return batch.ParsePolicy(c.Policy)
}

// Validate checks the policy and the concurrency cap.
func (c Config) Validate() error {
	if _, err := c.BatchPolicy(); err != nil {
		return err
	}
	if c.Concurrency < 0 {
		return fmt.Errorf("concurrency must not be negative, got %d", c.Concurrency)
	}
	return nil
}
