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

var deleteCommit bool

var deleteCmd = &cobra.Command{
	Use:   "delete [solr-update-url]",
	Short: "Retract index documents whose rows were deleted",
	Long: `Delete walks the work, agent and folder tables and retracts the documents
of every id missing between two surviving rows. The query endpoint is derived
from the update endpoint. Ids above the highest surviving row are not checked.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDelete,
}

func init() {
	deleteCmd.Flags().BoolVar(&deleteCommit, "commit", false, "send a commit once the pass completes")
}

func runDelete(_ *cobra.Command, args []string) error {
	ctx, stop := signalContext()
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	url, err := solrURL(args, cfg.SolrUpdateURL)
	if err != nil {
		return err
	}

	a, err := start(ctx, cfg, "delete")
	if err != nil {
		return err
	}
	defer a.Close()

	opts := solr.Options{Timeout: a.cfg.SolrTimeout, RateLimit: a.cfg.SolrRateLimit}
	writer := solr.NewWriter(url, opts)
	reader := solr.NewReader(solr.QueryURL(url), opts)

	deleted, err := indexer.NewDeleter(a.repositories(), reader, writer, a.log, a.cfg.PageSize).Delete(ctx)
	if err != nil {
		return err
	}

	if deleteCommit && deleted > 0 {
		if err := writer.Commit(ctx); err != nil {
			a.log.Error("commit_failed", slog.Any("error", err))
		}
	}

	a.log.Info("delete_summary", slog.Int("deleted", deleted))
	return nil
}
