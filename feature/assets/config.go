package assets

import "asset-cache/core/catalog"

// ConfigDirs returns the directories named by cfg.
func ConfigDirs(cfg catalog.Config) Dirs {
	return Dirs{Textures: cfg.TexturesDir, Images: cfg.ImagesDir, Sounds: cfg.SoundsDir}
}

// ConfigOptions translates cfg into Manager options.
func ConfigOptions(cfg catalog.Config) ([]Option, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	policy, err := cfg.BatchPolicy()
	if err != nil {
		return nil, err
	}
	return []Option{WithPolicy(policy), WithConcurrency(cfg.Concurrency)}, nil
}
