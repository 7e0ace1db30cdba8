// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package resolve locates the replication package for a paper. It scans
// the paper's own text for a direct repository link, selects an adapter
// ordering for the venue, and sweeps the hosting services in that order
// until a candidate clears the acceptance threshold.
//
// Resolution is best-effort: a hosting service that fails contributes
// zero candidates and the sweep moves on. Resolve never returns an
// error; the terminal state is an Outcome with Found false.
package resolve

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pdiddy/replication-scout/internal/repos"
	"github.com/pdiddy/replication-scout/pkg/types"
)

// SourceDirect tags outcomes produced by the direct URL scan rather than
// an adapter query.
const SourceDirect = "direct"

// Resolver sweeps hosting-service adapters for one paper at a time.
type Resolver struct {
	adapters map[string]repos.Adapter
	cfg      types.ResolverConfig
	out      io.Writer
}

// New builds a Resolver with the full adapter set. The publisher-page
// adapter gets its own client because article pages are slower than the
// search APIs.
func New(cfg types.ResolverConfig, out io.Writer) *Resolver {
	apiClient := &http.Client{Timeout: cfg.Timeout}
	pageTimeout := cfg.PageTimeout
	if pageTimeout <= 0 {
		pageTimeout = 10 * time.Second
	}
	pageClient := &http.Client{Timeout: pageTimeout}

	return NewWithAdapters(cfg, out,
		&repos.AEAWebAdapter{Client: pageClient},
		&repos.ZenodoAdapter{Client: apiClient},
		&repos.DataverseAdapter{Client: apiClient},
		&repos.OSFAdapter{Client: apiClient},
		&repos.OpenICPSRAdapter{Client: apiClient},
	)
}

// NewWithAdapters builds a Resolver over an explicit adapter set. Tests
// use it to inject fakes.
func NewWithAdapters(cfg types.ResolverConfig, out io.Writer, adapters ...repos.Adapter) *Resolver {
	byName := make(map[string]repos.Adapter, len(adapters))
	for _, a := range adapters {
		byName[a.Name()] = a
	}
	return &Resolver{adapters: byName, cfg: cfg, out: out}
}

// Resolve finds the replication package for one paper. The scan of the
// paper's own title and abstract runs first: a direct repository link
// there is accepted without querying any hosting service. Otherwise the
// venue's adapter policy decides the sweep order and the first accepted
// candidate terminates the sweep.
func (r *Resolver) Resolve(ctx context.Context, paper types.PaperQuery) types.Outcome {
	if u, ok := ScanForRepoURL(paper.Title, paper.Abstract); ok {
		fmt.Fprintf(r.out, "found package link in paper text: %s\n", u)
		return types.Outcome{Found: true, URL: u, Source: SourceDirect}
	}

	query := repos.QueryFor(paper)
	policy := Classify(paper.Journal, paper.Discipline)

	for _, name := range policy {
		adapter, ok := r.adapters[name]
		if !ok {
			continue
		}

		candidates, err := adapter.Search(ctx, query, r.cfg)
		if err != nil {
			fmt.Fprintf(r.out, "warning: %s search failed: %v\n", name, err)
			continue
		}
		if len(candidates) == 0 {
			continue
		}

		// A candidate the hosting service itself ties to the paper needs
		// no similarity check.
		for _, c := range candidates {
			if c.Confirmed {
				fmt.Fprintf(r.out, "%s confirmed package: %s\n", name, c.URL)
				return types.Outcome{Found: true, URL: c.URL, Source: name}
			}
		}

		best, ok := repos.Rank(candidates, query, r.cfg)
		if !ok {
			continue
		}
		fmt.Fprintf(r.out, "%s matched package (score %.2f): %s\n", name, best.Composite, best.URL)
		return types.Outcome{Found: true, URL: best.URL, Source: name}
	}

	return types.Outcome{}
}
