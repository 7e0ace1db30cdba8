// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package repos

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/pdiddy/replication-scout/pkg/types"
)

// zenodoAPIBase is the Zenodo records search endpoint. Declared as a var
// so tests can substitute an httptest server.
var zenodoAPIBase = "https://zenodo.org/api/records"

// zenodoRecordBase prefixes landing URLs built from record IDs.
var zenodoRecordBase = "https://zenodo.org/record/"

// ZenodoAdapter queries the Zenodo dataset index. Zenodo records carry
// related-identifier metadata, so a paper DOI lookup is the precise path;
// title search is the fallback.
type ZenodoAdapter struct {
	Client *http.Client
}

// Name returns the adapter identifier.
func (a *ZenodoAdapter) Name() string { return "zenodo" }

// Search queries Zenodo by DOI relation first, then by title keywords.
func (a *ZenodoAdapter) Search(ctx context.Context, query RepoQuery, cfg types.ResolverConfig) ([]types.Candidate, error) {
	if query.DOI != "" {
		candidates, err := a.searchByDOI(ctx, query, cfg)
		if err != nil {
			return nil, err
		}
		if len(candidates) > 0 {
			return candidates, nil
		}
	}
	if query.Title == "" {
		return nil, nil
	}
	return a.searchByTitle(ctx, query, cfg)
}

// searchByDOI looks for dataset records whose related identifiers or
// description mention the paper DOI.
func (a *ZenodoAdapter) searchByDOI(ctx context.Context, query RepoQuery, cfg types.ResolverConfig) ([]types.Candidate, error) {
	q := fmt.Sprintf("related.identifier:%q OR %q", query.DOI, query.DOI)
	hits, err := a.records(ctx, q, cfg)
	if err != nil {
		return nil, err
	}

	var candidates []types.Candidate
	for _, hit := range hits {
		if !hit.relatedTo(query.DOI) {
			continue
		}
		candidates = append(candidates, hit.candidate())
	}
	return candidates, nil
}

// searchByTitle runs a quoted keyword query, narrowed by the first
// author's surname when known, and keeps hits that look like replication
// material.
func (a *ZenodoAdapter) searchByTitle(ctx context.Context, query RepoQuery, cfg types.ResolverConfig) ([]types.Candidate, error) {
	keywords := strings.Join(titleKeywords(query.Title, 5), " ")
	if keywords == "" {
		return nil, nil
	}

	q := fmt.Sprintf("%q replication", keywords)
	if query.AuthorSurname != "" {
		q = fmt.Sprintf("%q %s", keywords, query.AuthorSurname)
	}

	hits, err := a.records(ctx, q, cfg)
	if err != nil {
		return nil, err
	}

	var candidates []types.Candidate
	for _, hit := range hits {
		if !hit.looksLikePackage() {
			continue
		}
		candidates = append(candidates, hit.candidate())
	}
	return candidates, nil
}

// records performs one bounded search call against the records endpoint.
func (a *ZenodoAdapter) records(ctx context.Context, q string, cfg types.ResolverConfig) ([]zenodoHit, error) {
	params := url.Values{
		"q":    {q},
		"type": {"dataset"},
		"size": {fmt.Sprintf("%d", cfg.CandidateCap())},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, zenodoAPIBase+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", cfg.UserAgent)
	if cfg.ZenodoAPIToken != "" {
		req.Header.Set("Authorization", "Bearer "+cfg.ZenodoAPIToken)
	}

	resp, err := a.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("Zenodo API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Zenodo API returned HTTP %d", resp.StatusCode)
	}

	var zr zenodoResponse
	if err := json.NewDecoder(resp.Body).Decode(&zr); err != nil {
		return nil, fmt.Errorf("parsing Zenodo response: %w", err)
	}
	return zr.Hits.Hits, nil
}

// Zenodo API JSON structures.
type zenodoResponse struct {
	Hits struct {
		Hits []zenodoHit `json:"hits"`
	} `json:"hits"`
}

type zenodoHit struct {
	ID       json.Number    `json:"id"`
	Metadata zenodoMetadata `json:"metadata"`
}

type zenodoMetadata struct {
	Title              string            `json:"title"`
	Description        string            `json:"description"`
	RelatedIdentifiers []zenodoRelatedID `json:"related_identifiers"`
	Creators           []zenodoCreator   `json:"creators"`
}

type zenodoRelatedID struct {
	Identifier string `json:"identifier"`
}

type zenodoCreator struct {
	Name string `json:"name"`
}

// relatedTo reports whether the record references the DOI in its related
// identifiers or description.
func (h zenodoHit) relatedTo(doi string) bool {
	for _, rel := range h.Metadata.RelatedIdentifiers {
		if mentionsDOI(doi, rel.Identifier) {
			return true
		}
	}
	return mentionsDOI(doi, h.Metadata.Description)
}

// packageMarkers are phrases that distinguish replication uploads from
// unrelated datasets with overlapping titles.
var packageMarkers = []string{"replication", "data and code", "supplementary", "materials"}

func (h zenodoHit) looksLikePackage() bool {
	title := strings.ToLower(h.Metadata.Title)
	desc := strings.ToLower(h.Metadata.Description)
	for _, marker := range packageMarkers {
		if strings.Contains(title, marker) || strings.Contains(desc, marker) {
			return true
		}
	}
	return false
}

// candidate converts the hit into the ranker's shape. Creator names are
// folded into the description so the author-match signal can see them.
func (h zenodoHit) candidate() types.Candidate {
	desc := h.Metadata.Description
	for _, c := range h.Metadata.Creators {
		desc += " " + c.Name
	}
	return types.Candidate{
		Title:       h.Metadata.Title,
		URL:         zenodoRecordBase + h.ID.String(),
		Description: desc,
		Source:      "zenodo",
	}
}
