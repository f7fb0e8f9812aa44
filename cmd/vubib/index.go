// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/taibuivan/vubib/internal/index/solr"
	"github.com/taibuivan/vubib/internal/indexer"
	"github.com/taibuivan/vubib/internal/platform/config"
)

// indexFlags holds the options of the index command.
var indexFlags struct {
	kind   string
	offset int
	limit  int
	commit bool
}

var indexCmd = &cobra.Command{
	Use:   "index [solr-update-url]",
	Short: "Write folder, agent and work documents to the index",
	Long: `Index walks the catalog in ascending id order and writes one document per
folder, agent and work. A page of a single table can be re-indexed with
--offset and --limit. Records that fail are logged and counted; the command
still exits 0.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runIndex,
}

func init() {
	flags := indexCmd.Flags()
	flags.StringVar(&indexFlags.kind, "kind", string(indexer.KindAll), "record kind: all, folder, agent or work")
	flags.IntVar(&indexFlags.offset, "offset", 0, "first row of the page (requires --limit)")
	flags.IntVar(&indexFlags.limit, "limit", 0, "rows in the page (requires --offset)")
	flags.BoolVar(&indexFlags.commit, "commit", false, "send a commit once the pass completes")
}

func runIndex(cmd *cobra.Command, args []string) error {
	ctx, stop := signalContext()
	defer stop()

	// 1. Options
	opts := indexer.Options{Kind: indexer.Kind(indexFlags.kind)}
	if cmd.Flags().Changed("offset") {
		opts.Offset = &indexFlags.offset
	}
	if cmd.Flags().Changed("limit") {
		opts.Limit = &indexFlags.limit
	}
	if err := opts.Validate(); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	url, err := solrURL(args, cfg.SolrUpdateURL)
	if err != nil {
		return err
	}

	// 2. Wiring
	a, err := start(ctx, cfg, "index")
	if err != nil {
		return err
	}
	defer a.Close()

	writer := solr.NewWriter(url, solr.Options{Timeout: a.cfg.SolrTimeout, RateLimit: a.cfg.SolrRateLimit})
	ix := indexer.New(a.repositories(), writer, a.log, a.cfg.PageSize)

	// 3. Pass
	stats, err := ix.IndexAll(ctx, opts)
	if err != nil {
		return err
	}

	if indexFlags.commit {
		if err := writer.Commit(ctx); err != nil {
			a.log.Error("commit_failed", slog.Any("error", err))
		}
	}

	a.log.Info("index_summary",
		slog.Int("success", stats.Success),
		slog.Int("failure", stats.Failure),
		slog.Int("total", stats.Total),
	)
	return nil
}
