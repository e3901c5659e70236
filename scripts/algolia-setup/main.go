// algolia-setup applies the movement search index settings. The settings
// below are the single source of truth for the index.
//
// Usage:
//
//	ALGOLIA_APP_ID=... ALGOLIA_ADMIN_KEY=... go run ./scripts/algolia-setup
//	ALGOLIA_APP_ID=... ALGOLIA_ADMIN_KEY=... go run ./scripts/algolia-setup -index movements-dev
//	go run ./scripts/algolia-setup -print
package main

import (
	"encoding/json"
	"flag"
	"os"
	"strings"

	"github.com/algolia/algoliasearch-client-go/v4/algolia/search"
	"github.com/castlemilk/cuentas/internal/logger"
)

func movementIndexSettings() *search.IndexSettings {
	hitsPerPage := int32(50)
	maxFacetValues := int32(100)
	oneTypo, twoTypos := int32(4), int32(8)

	return &search.IndexSettings{
		SearchableAttributes: []string{"Description", "Category"},
		// UserId is filter-only: every query is scoped to one user.
		AttributesForFaceting: []string{
			"filterOnly(UserId)",
			"filterOnly(Type)",
			"searchable(Category)",
		},
		NumericAttributesForFiltering: []string{"Amount", "AmountCents", "DateUnix"},
		CustomRanking:                 []string{"desc(DateUnix)"},
		AttributesToRetrieve: []string{
			"objectID", "UserId", "Type", "Description", "Category",
			"Amount", "AmountCents", "Date", "DateUnix",
		},
		AttributesToHighlight: []string{"Description", "Category"},
		HitsPerPage:           &hitsPerPage,
		MaxValuesPerFacet:     &maxFacetValues,
		MinWordSizefor1Typo:   &oneTypo,
		MinWordSizefor2Typos:  &twoTypos,
	}
}

func main() {
	indexName := flag.String("index", envOr("ALGOLIA_INDEX", "movements"), "index to configure")
	printOnly := flag.Bool("print", false, "print the settings as JSON and exit")
	flag.Parse()

	log := logger.New(envOr("LOG_LEVEL", "info"))
	settings := movementIndexSettings()

	if *printOnly {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(settings); err != nil {
			log.Fatal().Err(err).Msg("encode settings")
		}
		return
	}

	appID := os.Getenv("ALGOLIA_APP_ID")
	adminKey := os.Getenv("ALGOLIA_ADMIN_KEY")
	if appID == "" || adminKey == "" {
		log.Fatal().Msg("ALGOLIA_APP_ID and ALGOLIA_ADMIN_KEY are required")
	}

	client, err := search.NewClient(appID, adminKey)
	if err != nil {
		log.Fatal().Err(err).Msg("create algolia client")
	}

	resp, err := client.SetSettings(client.NewApiSetSettingsRequest(*indexName, settings))
	if err != nil {
		log.Fatal().Err(err).Str("index", *indexName).Msg("set index settings")
	}

	log.Info().
		Str("index", *indexName).
		Str("app_id", appID).
		Interface("task_id", resp.TaskID).
		Str("searchable", strings.Join(settings.SearchableAttributes, ",")).
		Str("facets", strings.Join(settings.AttributesForFaceting, ",")).
		Str("ranking", strings.Join(settings.CustomRanking, ",")).
		Msg("index settings applied; they take effect within seconds")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
