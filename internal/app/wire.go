package app

import (
	"fmt"
	"os"
	"path/filepath"

	"usermap/internal/directory"
	"usermap/internal/domain"
	"usermap/internal/observability"
	"usermap/internal/services/mapping"
	"usermap/internal/store"
)

// Wire bundles the directory, store and mapping service for the CLI.
type Wire struct {
	Directory *directory.FileDirectory
	DB        *store.DB
	Mapping   *mapping.Service
	Mode      domain.Mode
	Log       *observability.Logger
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	if cfg.DataDir == "" {
		return nil, fmt.Errorf("data directory is required")
	}
	mode, err := domain.ParseMode(cfg.Mode)
	if err != nil {
		return nil, err
	}
	level, err := observability.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", cfg.LogLevel, err)
	}
	if err := os.MkdirAll(cfg.DataDir, 0o700); err != nil {
		return nil, err
	}

	log := observability.NewLogger("usermap", nil, level)
	dir := directory.New(cfg.DataDir, log.Named("directory"))

	var codec store.Codec
	if cfg.Passphrase != "" {
		codec = store.SealedCodec{Passphrase: cfg.Passphrase}
	}
	db := store.Open(filepath.Join(cfg.DataDir, cfg.DBFile), store.Options{
		Mode:          mode,
		CaseSensitive: cfg.CaseSensitive,
		Lookup:        dir,
		Codec:         codec,
		Logger:        log.Named("store"),
	})

	return &Wire{
		Directory: dir,
		DB:        db,
		Mapping:   mapping.New(db),
		Mode:      mode,
		Log:       log,
	}, nil
}
