package cmd

import (
	"strings"

	"minimcu/config"
	"minimcu/storage"
)

// openStore opens the SQLite database, preferring the per-command --db
// flag over the configured path, and seeds the known-locations registry.
func openStore(dbFlag string) (*storage.SQLiteStore, *config.Config, error) {
	cfg, err := config.LoadAndValidate()
	if err != nil {
		return nil, nil, err
	}

	path := strings.TrimSpace(dbFlag)
	if path == "" {
		path = cfg.Database.Path
	}

	store, err := storage.OpenSQLite(path)
	if err != nil {
		return nil, nil, err
	}

	if err := store.SeedLocations(cfg.Locations); err != nil {
		_ = store.Close()
		return nil, nil, err
	}
	return store, cfg, nil
}
