// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline drives a full scan: harvest each journal of a
// discipline, classify every paper's topic, resolve its replication
// package, and persist the outcome. A failing journal does not stop the
// scan.
package pipeline

import (
	"context"
	"fmt"
	"io"

	"github.com/pdiddy/replication-scout/internal/catalog"
	"github.com/pdiddy/replication-scout/internal/results"
	"github.com/pdiddy/replication-scout/internal/topic"
	"github.com/pdiddy/replication-scout/pkg/types"
)

// Harvester fetches the papers of one journal. *crossref.Client
// implements it.
type Harvester interface {
	JournalWorks(ctx context.Context, journal, issn string, fromYear, untilYear int, w io.Writer) ([]types.Paper, error)
}

// Resolver locates a paper's replication package. *resolve.Resolver
// implements it.
type Resolver interface {
	Resolve(ctx context.Context, paper types.PaperQuery) types.Outcome
}

// Store persists papers and aggregates scan statistics. *results.Store
// implements it.
type Store interface {
	Upsert(ctx context.Context, p types.Paper) error
	SummaryByJournal(ctx context.Context) ([]results.GroupSummary, error)
	SummaryByTopic(ctx context.Context) ([]results.GroupSummary, error)
	SummaryBySource(ctx context.Context) ([]results.GroupSummary, error)
}

// Pipeline wires the harvester, resolver, and store for one scan run.
type Pipeline struct {
	Harvester Harvester
	Resolver  Resolver
	Store     Store
	Out       io.Writer
}

// Scan processes every journal in the discipline's registry for the
// given publication year range. Per-journal failures are reported and
// skipped; the summary block covers everything stored so far.
func (p *Pipeline) Scan(ctx context.Context, discipline string, fromYear, untilYear int) error {
	d, err := catalog.Get(discipline)
	if err != nil {
		return err
	}

	for _, journal := range d.Journals {
		papers, err := p.Harvester.JournalWorks(ctx, journal.Name, journal.ISSN, fromYear, untilYear, p.Out)
		if err != nil {
			// Partial pages are still worth processing.
			fmt.Fprintf(p.Out, "warning: harvesting %s failed: %v\n", journal.Name, err)
		}
		if len(papers) == 0 {
			continue
		}

		found := 0
		for _, paper := range papers {
			if ctx.Err() != nil {
				return ctx.Err()
			}

			classifyText := paper.Abstract
			if classifyText == "" {
				classifyText = paper.Title
			}
			paper.Topic = topic.Classify(paper.Title, classifyText, d)

			outcome := p.Resolver.Resolve(ctx, paper.Query(d.Name))
			if outcome.Found {
				paper.ReplicationPackage = 1
				paper.ReplicationURL = outcome.URL
				paper.ReplicationSource = outcome.Source
				found++
			}

			if err := p.Store.Upsert(ctx, paper); err != nil {
				fmt.Fprintf(p.Out, "warning: storing %q failed: %v\n", paper.Title, err)
			}
		}
		fmt.Fprintf(p.Out, "%s: %d papers, %d with packages\n", journal.Name, len(papers), found)
	}

	return p.printSummary(ctx)
}

// printSummary writes the scan summary block: per-journal counts, topic
// distribution, and the package-source breakdown.
func (p *Pipeline) printSummary(ctx context.Context) error {
	byJournal, err := p.Store.SummaryByJournal(ctx)
	if err != nil {
		return fmt.Errorf("summarizing by journal: %w", err)
	}
	byTopic, err := p.Store.SummaryByTopic(ctx)
	if err != nil {
		return fmt.Errorf("summarizing by topic: %w", err)
	}
	bySource, err := p.Store.SummaryBySource(ctx)
	if err != nil {
		return fmt.Errorf("summarizing by source: %w", err)
	}

	total, withPackage := 0, 0
	fmt.Fprintf(p.Out, "\nPapers by journal:\n")
	for _, g := range byJournal {
		fmt.Fprintf(p.Out, "  %-50s %4d papers, %4d packages (%.1f%%)\n",
			g.Name, g.Papers, g.WithPackage, g.Rate()*100)
		total += g.Papers
		withPackage += g.WithPackage
	}

	fmt.Fprintf(p.Out, "\nPapers by topic:\n")
	for _, g := range byTopic {
		fmt.Fprintf(p.Out, "  %-30s %4d\n", g.Name, g.Papers)
	}

	fmt.Fprintf(p.Out, "\nPackages by source:\n")
	for _, g := range bySource {
		fmt.Fprintf(p.Out, "  %-15s %4d\n", g.Name, g.Papers)
	}

	rate := 0.0
	if total > 0 {
		rate = float64(withPackage) / float64(total) * 100
	}
	fmt.Fprintf(p.Out, "\nTotal: %d papers, %d with replication packages (%.1f%%)\n",
		total, withPackage, rate)
	return nil
}
