package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"profile-sync/core/database"
	"profile-sync/core/logger"
	"profile-sync/core/orchestrator"
	"profile-sync/core/server"
	"profile-sync/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Storage holds configuration for the object storage (e.g., S3, Minio).
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the database store backend.
	Database database.Config `mapstructure:"database"`
	// Sync holds inventory sources and profile store selection.
	Sync orchestrator.Config `mapstructure:"sync"`
}

// LoadConfig loads configuration from config.yaml, environment variables and
// the .env file in path. Environment wins over the file.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(path)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	// Map environment variables to nested keys (e.g. SYNC_STORE -> sync.store)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if err := config.expandPaths(); err != nil {
		return nil, err
	}

	return &config, nil
}

// expandPaths resolves "~" in every filesystem path of the sync section.
// Object sources are left alone.
func (c *Config) expandPaths() error {
	var inventories []string
	for _, source := range c.Sync.Inventories {
		source = strings.TrimSpace(source)
		if source == "" {
			continue
		}
		expanded, err := ExpandHome(source)
		if err != nil {
			return err
		}
		inventories = append(inventories, expanded)
	}
	c.Sync.Inventories = inventories

	profiles, err := ExpandHome(c.Sync.ProfilesPath)
	if err != nil {
		return err
	}
	c.Sync.ProfilesPath = profiles

	if c.Database.Driver == database.DriverSQLite {
		name, err := ExpandHome(c.Database.Name)
		if err != nil {
			return err
		}
		c.Database.Name = name
	}
	return nil
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("expanding %s: %w", path, err)
	}
	if path == "~" {
		return home, nil
	}
	return filepath.Join(home, path[2:]), nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	// If it's a pointer, get the element
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

		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
