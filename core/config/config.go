package config

import (
	"fmt"
	"os"
	"reflect"
	"strings"

	"asset-cache/core/catalog"
	"asset-cache/core/database"
	"asset-cache/core/logger"
	"asset-cache/core/server"
	"asset-cache/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	// Assets holds the directories and policy of the startup load.
	Assets catalog.Config `mapstructure:"assets"`
	// Server holds configuration for the inspector HTTP server.
	Server server.Config `mapstructure:"server"`
	// Storage holds configuration for the bucket source.
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the optional load journal.
	Database database.Config `mapstructure:"database"`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// A missing .env is fine.
	_ = godotenv.Overload(envPath)

	v := viper.New()

	bindValues(v, Config{}, "")

	// ASSETS_TEXTURES_DIR -> assets.textures_dir
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}
	config.applyLegacyDirs()

	return &config, nil
}

// applyLegacyDirs honours the bare TEXTURES_DIR, IMAGES_DIR and SOUNDS_DIR
// variables when the prefixed ones are unset.
func (c *Config) applyLegacyDirs() {
	for env, dst := range map[string]*string{
		"TEXTURES_DIR": &c.Assets.TexturesDir,
		"IMAGES_DIR":   &c.Assets.ImagesDir,
		"SOUNDS_DIR":   &c.Assets.SoundsDir,
	} {
		if *dst == "" {
			*dst = os.Getenv(env)
		}
	}
}

// bindValues walks the struct and registers every mapstructure key with its
// default tag so AutomaticEnv can find it.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		defaultValue := field.Tag.Get("default")
		v.SetDefault(key, defaultValue)
	}
}
