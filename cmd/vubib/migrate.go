// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"github.com/spf13/cobra"

	"github.com/taibuivan/vubib/internal/platform/config"
	"github.com/taibuivan/vubib/internal/platform/ctxutil"
	"github.com/taibuivan/vubib/internal/platform/migration"
	"github.com/taibuivan/vubib/internal/platform/validate"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate [up|down]",
	Short: "Apply the catalog schema migrations",
	Long: `Migrate provisions the catalog tables read by the exporter on a development
or integration database. The default direction is up.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMigrate,
}

func runMigrate(_ *cobra.Command, args []string) error {
	ctx, stop := signalContext()
	defer stop()

	direction := migration.Up
	if len(args) > 0 {
		direction = migration.Direction(args[0])
	}

	v := &validate.Validator{}
	v.OneOf("direction", string(direction), string(migration.Up), string(migration.Down))
	if err := v.Err(); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := newLogger(cfg.Debug, ctxutil.GetRunID(ctx))

	return migration.Run(cfg.DatabaseURL, cfg.MigrationPath, direction, log)
}
