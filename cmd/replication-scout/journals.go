// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/replication-scout/internal/catalog"
)

var journalsCmd = &cobra.Command{
	Use:   "journals [discipline]",
	Short: "List the journal registry for a discipline",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runJournals,
}

func init() {
	rootCmd.AddCommand(journalsCmd)
}

func runJournals(cmd *cobra.Command, args []string) error {
	names := catalog.Names()
	if len(args) == 1 {
		names = args[:1]
	}

	for _, name := range names {
		d, err := catalog.Get(name)
		if err != nil {
			return err
		}
		fmt.Printf("%s (%d journals):\n", d.Name, len(d.Journals))
		for _, j := range d.Journals {
			fmt.Printf("  %-55s %s\n", j.Name, j.ISSN)
		}
		fmt.Println()
	}
	return nil
}
