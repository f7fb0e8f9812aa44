// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (DB, Solr, Redis) via constructors.
  - Zero Hidden State: No global variables are used to store config.

The Solr endpoint is normally given on the command line; SOLR_UPDATE_URL is
only consulted when the argument is omitted.
*/
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// # Configuration Schema

// Config holds all runtime configuration for the vubib exporter commands.
type Config struct {
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Relational Database (PostgreSQL), the catalog source of truth
	DatabaseURL string `env:"DATABASE_URL,required,notEmpty"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// Search index (Solr update handler)
	SolrUpdateURL string        `env:"SOLR_UPDATE_URL"`
	SolrTimeout   time.Duration `env:"SOLR_TIMEOUT"    envDefault:"30s"`

	// SolrRateLimit caps index requests per second. Zero disables throttling.
	SolrRateLimit float64 `env:"SOLR_RATE_LIMIT" envDefault:"0"`

	// PageSize is the number of source rows fetched per database round-trip.
	PageSize int `env:"INDEX_PAGE_SIZE" envDefault:"500"`

	// Run lock (Redis). Empty disables locking.
	RedisURL string        `env:"REDIS_URL"`
	LockTTL  time.Duration `env:"LOCK_TTL" envDefault:"6h"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {

	// Initialize an empty config struct
	cfg := &Config{}

	// This will fail if any field marked with 'required' is missing.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if cfg.PageSize <= 0 {
		return nil, fmt.Errorf("config: INDEX_PAGE_SIZE must be positive, got %d", cfg.PageSize)
	}

	return cfg, nil
}

// IsDevelopment reports whether the exporter is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// LockingEnabled reports whether overlapping runs are guarded by a Redis lock.
func (c *Config) LockingEnabled() bool {
	return c.RedisURL != ""
}
