// reindex-search rebuilds the Algolia movement index from Firestore. It
// upserts every stored movement, so it is safe to run repeatedly.
//
// Usage:
//
//	export GOOGLE_APPLICATION_CREDENTIALS=/path/to/service-account.json
//	export GOOGLE_CLOUD_PROJECT=your-project-id
//	ALGOLIA_APP_ID=... ALGOLIA_API_KEY=... go run ./scripts/reindex-search/
//	go run ./scripts/reindex-search/ -dry-run
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/castlemilk/cuentas/internal/config"
	"github.com/castlemilk/cuentas/internal/logger"
	"github.com/castlemilk/cuentas/internal/model"
	"github.com/castlemilk/cuentas/internal/search"
	"github.com/castlemilk/cuentas/internal/store"
)

func main() {
	dryRun := flag.Bool("dry-run", false, "count movements without writing to the index")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(cfg.LogLevel)

	if !*dryRun && !cfg.AlgoliaEnabled() {
		log.Fatal().Msg("ALGOLIA_APP_ID and ALGOLIA_API_KEY are required")
	}

	ctx := context.Background()
	client, err := firestore.NewClient(ctx, cfg.ProjectID)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create firestore client")
	}
	defer client.Close()

	st := store.NewFirestoreStore(client, logger.Component(log, "store"))

	var index search.Index
	if !*dryRun {
		index, err = search.NewAlgoliaClient(search.Config{
			AppID:     cfg.AlgoliaAppID,
			APIKey:    cfg.AlgoliaAPIKey,
			IndexName: cfg.AlgoliaIndex,
		}, logger.Component(log, "search"))
		if err != nil {
			log.Fatal().Err(err).Msg("failed to create algolia client")
		}
	}

	var seen, indexed, failed int
	err = st.ForEachMovement(ctx, func(m *model.Movement) error {
		seen++
		if index == nil {
			return nil
		}
		if err := index.IndexMovement(ctx, m); err != nil {
			failed++
			log.Warn().Err(err).Str("movement_id", m.ID).Msg("failed to index movement")
			return nil
		}
		indexed++
		if indexed%500 == 0 {
			log.Info().Int("indexed", indexed).Msg("progress")
		}
		return nil
	})
	if err != nil {
		log.Fatal().Err(err).Msg("reindex aborted")
	}

	log.Info().
		Str("project", cfg.ProjectID).
		Str("index", cfg.AlgoliaIndex).
		Bool("dry_run", *dryRun).
		Int("movements", seen).
		Int("indexed", indexed).
		Int("failed", failed).
		Msg("reindex complete")
}
