// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/replication-scout/internal/resolve"
	"github.com/pdiddy/replication-scout/pkg/types"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve the replication package for a single paper",
	Long: `Resolve locates the replication package for one paper described by
flags. The paper's own title and abstract are scanned for a direct
repository link first; otherwise the hosting services are queried in the
venue's policy order.`,
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().String("doi", "", "paper DOI (bare form, e.g. 10.1257/aer.20211723)")
	resolveCmd.Flags().String("title", "", "paper title")
	resolveCmd.Flags().String("abstract", "", "paper abstract")
	resolveCmd.Flags().String("journal", "", "venue name (selects the adapter policy)")
	resolveCmd.Flags().String("authors", "", `author list ("First Last; First Last")`)
	resolveCmd.Flags().String("discipline", "", "discipline (economics, finance, psychology)")

	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
	paper := types.PaperQuery{}
	paper.DOI, _ = cmd.Flags().GetString("doi")
	paper.Title, _ = cmd.Flags().GetString("title")
	paper.Abstract, _ = cmd.Flags().GetString("abstract")
	paper.Journal, _ = cmd.Flags().GetString("journal")
	paper.Authors, _ = cmd.Flags().GetString("authors")
	paper.Discipline, _ = cmd.Flags().GetString("discipline")

	if paper.DOI == "" && paper.Title == "" {
		return fmt.Errorf("provide at least --doi or --title")
	}

	cfg := pipelineConfig()
	r := resolve.New(cfg.Resolver, os.Stderr)

	outcome := r.Resolve(cmd.Context(), paper)
	if !outcome.Found {
		fmt.Println("no replication package found")
		return nil
	}
	fmt.Printf("replication package (%s): %s\n", outcome.Source, outcome.URL)
	return nil
}
