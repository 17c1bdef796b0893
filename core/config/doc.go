// Package config provides configuration management for the profile sync tool.
//
// It utilizes Viper for loading configuration from an optional config.yaml,
// a .env file and environment variables. Command-line flags override the
// loaded values in the cmd package.
//
// # Configuration Structure
//
// The Config struct is divided into subsections:
//   - Server: HTTP port and API key
//   - Log: Logging level and format
//   - Storage: S3/MinIO credentials for s3:// inventories and the s3 store
//   - Database: connection details for the database store
//   - Sync: inventory sources, profile store backend and identifier generator
//
// Environment variables map to nested keys by replacing dots with
// underscores (SYNC_STORE -> sync.store). List values such as
// SYNC_INVENTORIES are comma separated.
//
// Paths starting with "~" are expanded here; nothing below this package
// looks at the home directory.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Sync.ProfilesPath)
package config
