// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/replication-scout/internal/results"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the accumulated results as CSV or YAML",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().String("format", "csv", "export format: csv or yaml")
	exportCmd.Flags().String("name", "papers", "base name of the export file")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	name, _ := cmd.Flags().GetString("name")

	cfg := pipelineConfig()
	store, err := results.NewStore(cfg.Results)
	if err != nil {
		return err
	}
	defer store.Close()

	var path string
	switch format {
	case "csv":
		path, err = store.ExportCSV(cmd.Context(), name)
	case "yaml":
		path, err = store.ExportYAML(cmd.Context(), name)
	default:
		return fmt.Errorf("unknown export format %q (csv or yaml)", format)
	}
	if err != nil {
		return err
	}
	fmt.Println("wrote", path)
	return nil
}
