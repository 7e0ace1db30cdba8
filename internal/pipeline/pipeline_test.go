// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/pdiddy/replication-scout/internal/results"
	"github.com/pdiddy/replication-scout/pkg/types"
)

// fakeHarvester returns canned papers per journal name.
type fakeHarvester struct {
	papers map[string][]types.Paper
	errs   map[string]error
	calls  []string
}

func (f *fakeHarvester) JournalWorks(ctx context.Context, journal, issn string, fromYear, untilYear int, w io.Writer) ([]types.Paper, error) {
	f.calls = append(f.calls, journal)
	return f.papers[journal], f.errs[journal]
}

// fakeResolver finds a package for DOIs listed in found.
type fakeResolver struct {
	found map[string]types.Outcome
}

func (f *fakeResolver) Resolve(ctx context.Context, paper types.PaperQuery) types.Outcome {
	return f.found[paper.DOI]
}

// memStore records upserts in memory.
type memStore struct {
	papers    []types.Paper
	upsertErr error
}

func (m *memStore) Upsert(ctx context.Context, p types.Paper) error {
	if m.upsertErr != nil {
		return m.upsertErr
	}
	m.papers = append(m.papers, p)
	return nil
}

func (m *memStore) SummaryByJournal(ctx context.Context) ([]results.GroupSummary, error) {
	return m.group(func(p types.Paper) string { return p.Journal }), nil
}

func (m *memStore) SummaryByTopic(ctx context.Context) ([]results.GroupSummary, error) {
	return m.group(func(p types.Paper) string { return p.Topic }), nil
}

func (m *memStore) SummaryBySource(ctx context.Context) ([]results.GroupSummary, error) {
	var groups []results.GroupSummary
	for _, g := range m.group(func(p types.Paper) string { return p.ReplicationSource }) {
		if g.Name != "" {
			groups = append(groups, g)
		}
	}
	return groups, nil
}

func (m *memStore) group(key func(types.Paper) string) []results.GroupSummary {
	byName := map[string]*results.GroupSummary{}
	var order []string
	for _, p := range m.papers {
		k := key(p)
		g, ok := byName[k]
		if !ok {
			g = &results.GroupSummary{Name: k}
			byName[k] = g
			order = append(order, k)
		}
		g.Papers++
		g.WithPackage += p.ReplicationPackage
	}
	groups := make([]results.GroupSummary, 0, len(order))
	for _, k := range order {
		groups = append(groups, *byName[k])
	}
	return groups
}

func aerPaper(doi, title, abstract string) types.Paper {
	return types.Paper{
		Title: title, Abstract: abstract, Journal: "American Economic Review",
		Authors: "Jane Doe", DOI: doi, Year: "2024", Date: "2024-01-01",
		Link: "https://doi.org/" + doi,
	}
}

func TestScanClassifiesResolvesAndStores(t *testing.T) {
	harvester := &fakeHarvester{papers: map[string][]types.Paper{
		"American Economic Review": {
			aerPaper("10.1257/one", "Monetary Policy and Inflation Expectations", "We study central bank policy."),
			aerPaper("10.1257/two", "Minimum Wage Effects", "Employment responses in the labor market."),
		},
	}}
	resolver := &fakeResolver{found: map[string]types.Outcome{
		"10.1257/one": {Found: true, URL: "https://doi.org/10.3886/E1V1", Source: "aeaweb"},
	}}
	store := &memStore{}

	var out strings.Builder
	p := &Pipeline{Harvester: harvester, Resolver: resolver, Store: store, Out: &out}
	if err := p.Scan(context.Background(), "economics", 2020, 2024); err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	// All 15 economics journals are swept even when only one has papers.
	if len(harvester.calls) != 15 {
		t.Errorf("harvester called %d times, want 15", len(harvester.calls))
	}

	if len(store.papers) != 2 {
		t.Fatalf("stored %d papers, want 2", len(store.papers))
	}

	first := store.papers[0]
	if first.Topic != "macroeconomics" {
		t.Errorf("Topic = %q, want macroeconomics", first.Topic)
	}
	if first.ReplicationPackage != 1 || first.ReplicationURL != "https://doi.org/10.3886/E1V1" {
		t.Errorf("resolution fields = %d/%q", first.ReplicationPackage, first.ReplicationURL)
	}
	if first.ReplicationSource != "aeaweb" {
		t.Errorf("ReplicationSource = %q", first.ReplicationSource)
	}

	second := store.papers[1]
	if second.Topic != "labor_economics" {
		t.Errorf("Topic = %q, want labor_economics", second.Topic)
	}
	if second.ReplicationPackage != 0 || second.ReplicationURL != "" {
		t.Errorf("unresolved paper has resolution fields set: %d/%q", second.ReplicationPackage, second.ReplicationURL)
	}

	summary := out.String()
	for _, want := range []string{
		"Papers by journal:",
		"Papers by topic:",
		"Packages by source:",
		"Total: 2 papers, 1 with replication packages (50.0%)",
	} {
		if !strings.Contains(summary, want) {
			t.Errorf("summary output lacks %q\noutput:\n%s", want, summary)
		}
	}
}

func TestScanContinuesPastJournalFailure(t *testing.T) {
	harvester := &fakeHarvester{
		papers: map[string][]types.Paper{
			"Journal of Financial Economics": {
				{Title: "Bank Lending Standards", Journal: "Journal of Financial Economics", DOI: "10.1/x", Date: "2023-01-01"},
			},
		},
		errs: map[string]error{
			"Journal of Finance": errors.New("connection reset"),
		},
	}
	store := &memStore{}

	var out strings.Builder
	p := &Pipeline{Harvester: harvester, Resolver: &fakeResolver{}, Store: store, Out: &out}
	if err := p.Scan(context.Background(), "finance", 2020, 2024); err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	if len(harvester.calls) != 5 {
		t.Errorf("harvester called %d times, want all 5 finance journals", len(harvester.calls))
	}
	if len(store.papers) != 1 {
		t.Errorf("stored %d papers, want 1 past the failure", len(store.papers))
	}
	if !strings.Contains(out.String(), "warning: harvesting Journal of Finance failed") {
		t.Errorf("output lacks the harvest warning:\n%s", out.String())
	}
}

func TestScanUnknownDiscipline(t *testing.T) {
	p := &Pipeline{Harvester: &fakeHarvester{}, Resolver: &fakeResolver{}, Store: &memStore{}, Out: io.Discard}
	if err := p.Scan(context.Background(), "alchemy", 2020, 2024); err == nil {
		t.Error("Scan returned nil error for an unknown discipline")
	}
}

func TestScanStoreFailureIsReported(t *testing.T) {
	harvester := &fakeHarvester{papers: map[string][]types.Paper{
		"Psychological Science": {
			{Title: "Working Memory and Attention", Journal: "Psychological Science", DOI: "10.1/y", Date: "2022-01-01"},
		},
	}}
	store := &memStore{upsertErr: fmt.Errorf("disk full")}

	var out strings.Builder
	p := &Pipeline{Harvester: harvester, Resolver: &fakeResolver{}, Store: store, Out: &out}
	if err := p.Scan(context.Background(), "psychology", 2020, 2024); err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if !strings.Contains(out.String(), "warning: storing") {
		t.Errorf("output lacks the store warning:\n%s", out.String())
	}
}
