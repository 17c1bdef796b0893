package cmd

import (
	"context"
	"fmt"
	"strings"

	"profile-sync/core/config"
	"profile-sync/core/database"
	"profile-sync/core/identity"
	"profile-sync/core/inventory"
	"profile-sync/core/logger"
	"profile-sync/core/orchestrator"
	"profile-sync/core/storage"
	"profile-sync/core/store"

	"go.uber.org/zap"
)

// syncFlags are the command-line overrides shared by commands that sync.
type syncFlags struct {
	inventories []string
	profiles    string
	store       string
}

// apply overrides cfg with every flag that was set.
func (f syncFlags) apply(cfg *config.Config) error {
	if len(f.inventories) > 0 {
		cfg.Sync.Inventories = nil
		for _, source := range f.inventories {
			expanded, err := config.ExpandHome(source)
			if err != nil {
				return err
			}
			cfg.Sync.Inventories = append(cfg.Sync.Inventories, expanded)
		}
	}
	if f.profiles != "" {
		expanded, err := config.ExpandHome(f.profiles)
		if err != nil {
			return err
		}
		cfg.Sync.ProfilesPath = expanded
	}
	if f.store != "" {
		cfg.Sync.Store = f.store
	}
	return nil
}

// loadConfig loads the configuration and builds the logger.
func loadConfig(flags syncFlags) (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := flags.apply(cfg); err != nil {
		return nil, nil, err
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return cfg, logg, nil
}

// needsStorage reports whether any configured component reads object storage.
func needsStorage(cfg *config.Config) bool {
	if cfg.Sync.Store == store.BackendObject {
		return true
	}
	for _, source := range cfg.Sync.Inventories {
		if strings.HasPrefix(source, inventory.ObjectScheme) {
			return true
		}
	}
	return false
}

// newStorageClient returns a storage client, or nil when nothing needs one.
func newStorageClient(cfg *config.Config) (storage.Client, error) {
	if !needsStorage(cfg) {
		return nil, nil
	}
	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to storage: %w", err)
	}
	return client, nil
}

// newRunner wires the store, generator and storage client selected by cfg.
func newRunner(ctx context.Context, cfg *config.Config, logg *zap.Logger) (*orchestrator.Runner, error) {
	client, err := newStorageClient(cfg)
	if err != nil {
		return nil, err
	}

	st, err := newStore(ctx, cfg, client)
	if err != nil {
		return nil, err
	}

	gen, err := identity.New(cfg.Sync.IDGenerator)
	if err != nil {
		return nil, err
	}

	logg.Debug("Sync configured",
		zap.Strings("inventories", cfg.Sync.Inventories),
		zap.String("store", st.Location()),
		zap.String("id_generator", cfg.Sync.IDGenerator))

	return orchestrator.NewRunner(cfg.Sync.Inventories, st, gen, client, logg), nil
}

// newStore opens the profile store backend selected by cfg.
func newStore(ctx context.Context, cfg *config.Config, client storage.Client) (store.Store, error) {
	switch cfg.Sync.Store {
	case store.BackendFile, "":
		return store.NewFileStore(cfg.Sync.ProfilesPath), nil
	case store.BackendObject:
		return store.NewObjectStore(client, cfg.Storage.Bucket, cfg.Sync.ObjectKey, cfg.Storage.Region), nil
	case store.BackendDatabase:
		db, err := database.Connect(cfg.Database)
		if err != nil {
			return nil, err
		}
		st := store.NewDatabaseStore(db)
		if err := st.Migrate(ctx); err != nil {
			return nil, err
		}
		return st, nil
	default:
		return nil, fmt.Errorf("unknown profile store %q (want %s, %s or %s)",
			cfg.Sync.Store, store.BackendFile, store.BackendObject, store.BackendDatabase)
	}
}
