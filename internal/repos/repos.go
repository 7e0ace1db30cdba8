// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package repos queries replication package hosting services and ranks
// the candidates they return against the originating paper.
//
// Each hosting service (Zenodo, Harvard Dataverse, OSF, openICPSR, and
// the AEA article page) implements the Adapter interface per the
// Strategy pattern. Adapters try a DOI lookup first when one is
// supplied, fall back to free-text title search, issue at most one
// network attempt per query, and report transport or parse problems as
// errors for the caller to absorb.
package repos

import (
	"context"
	"regexp"
	"strings"

	"github.com/pdiddy/replication-scout/internal/textmatch"
	"github.com/pdiddy/replication-scout/pkg/types"
)

// Adapter searches a single hosting service for replication package
// candidates.
type Adapter interface {
	Name() string
	Search(ctx context.Context, query RepoQuery, cfg types.ResolverConfig) ([]types.Candidate, error)
}

// RepoQuery holds the search parameters derived from one paper.
type RepoQuery struct {
	// DOI is the paper's identifier, bare form. Empty disables DOI lookup.
	DOI string

	// Title is the full paper title.
	Title string

	// AuthorSurname is the first author's surname, used to narrow
	// free-text searches and to confirm candidate authorship.
	AuthorSurname string
}

// QueryFor builds a RepoQuery from a paper query.
func QueryFor(paper types.PaperQuery) RepoQuery {
	return RepoQuery{
		DOI:           paper.DOI,
		Title:         paper.Title,
		AuthorSurname: textmatch.FirstSurname(paper.Authors),
	}
}

// Rank scores up to cfg.CandidateCap() candidates against the query and
// returns the best one when its composite score clears the acceptance
// threshold. Ties keep the first-seen candidate. The boolean reports
// acceptance; a false return means the adapter found nothing usable.
func Rank(candidates []types.Candidate, query RepoQuery, cfg types.ResolverConfig) (types.ScoredCandidate, bool) {
	if limit := cfg.CandidateCap(); len(candidates) > limit {
		candidates = candidates[:limit]
	}

	wSim, wRatio, wAuthor := cfg.Weights()

	var best types.ScoredCandidate
	found := false
	for _, c := range candidates {
		sc := types.ScoredCandidate{
			Candidate:       c,
			TitleSimilarity: textmatch.TitleSimilarity(query.Title, c.Title),
			WordRatio:       textmatch.WordMatchRatio(query.Title, c.Title),
			AuthorMatch:     textmatch.AuthorMatch(query.AuthorSurname, c.Title+" "+c.Description),
		}
		sc.Composite = wSim*sc.TitleSimilarity + wRatio*sc.WordRatio + wAuthor*sc.AuthorMatch

		if !found || sc.Composite > best.Composite {
			best = sc
			found = true
		}
	}

	if !found || best.Composite < cfg.Threshold() {
		return types.ScoredCandidate{}, false
	}
	return best, true
}

// nonWordPattern matches everything except word characters and spaces;
// title keywords are extracted from the cleaned form.
var nonWordPattern = regexp.MustCompile(`[^\w\s]`)

// titleKeywords returns up to max significant words (> 3 characters) of
// the title for free-text repository queries.
func titleKeywords(title string, max int) []string {
	clean := nonWordPattern.ReplaceAllString(title, " ")
	var words []string
	for _, w := range strings.Fields(clean) {
		if len(w) > 3 {
			words = append(words, w)
			if len(words) == max {
				break
			}
		}
	}
	return words
}

// mentionsDOI reports whether text contains the DOI, case-insensitively.
func mentionsDOI(doi, text string) bool {
	if doi == "" || text == "" {
		return false
	}
	return strings.Contains(strings.ToLower(text), strings.ToLower(doi))
}
