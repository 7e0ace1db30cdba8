// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/replication-scout/internal/catalog"
	"github.com/pdiddy/replication-scout/internal/crossref"
	"github.com/pdiddy/replication-scout/internal/pipeline"
	"github.com/pdiddy/replication-scout/internal/resolve"
	"github.com/pdiddy/replication-scout/internal/results"
)

var scanCmd = &cobra.Command{
	Use:   "scan [discipline]",
	Short: "Harvest a discipline's journals and resolve replication packages",
	Long: `Scan runs the full pipeline for one discipline (` + strings.Join(catalog.Names(), ", ") + `):
harvest each registry journal from CrossRef for the given year range,
classify every paper's topic, resolve its replication package, and store
the outcomes. The summary block prints per-journal counts, the topic
distribution, and the package-source breakdown.`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func init() {
	scanCmd.Flags().Int("from", 2020, "publication year range start")
	scanCmd.Flags().Int("until", 2024, "publication year range end")

	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	fromYear, _ := cmd.Flags().GetInt("from")
	untilYear, _ := cmd.Flags().GetInt("until")

	cfg := pipelineConfig()

	store, err := results.NewStore(cfg.Results)
	if err != nil {
		return err
	}
	defer store.Close()

	p := &pipeline.Pipeline{
		Harvester: crossref.New(cfg.Harvest),
		Resolver:  resolve.New(cfg.Resolver, os.Stdout),
		Store:     store,
		Out:       os.Stdout,
	}
	return p.Scan(cmd.Context(), args[0], fromYear, untilYear)
}
