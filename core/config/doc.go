// Package config loads the application configuration.
//
// Values come from environment variables, optionally seeded from a .env file
// in the given directory. Every field declares its key with a mapstructure
// tag and its fallback with a default tag; nested keys map to variables by
// replacing dots with underscores:
//
//	ASSETS_TEXTURES_DIR=assets/tiles
//	ASSETS_POLICY=sequential
//	LOG_LEVEL=debug
//	DATABASE_DRIVER=sqlite
//
// The unprefixed TEXTURES_DIR, IMAGES_DIR and SOUNDS_DIR variables are also
// read when the prefixed ones are unset.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(cfg.Assets.Dirs())
package config
