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

// openICPSRAPIBase is the openICPSR study search endpoint. Declared as a
// var so tests can substitute an httptest server.
var openICPSRAPIBase = "https://www.openicpsr.org/openicpsr/search/studies/json"

// OpenICPSRAdapter queries the openICPSR institutional archive, the
// deposit target mandated by the AEA data policy. Study records carry
// their own 10.3886 DOI and often cite the article DOI in the
// description, which is the cross-check used for identifier lookup.
type OpenICPSRAdapter struct {
	Client *http.Client
}

// Name returns the adapter identifier.
func (a *OpenICPSRAdapter) Name() string { return "openicpsr" }

// Search queries the study index by DOI first, then by title keywords.
func (a *OpenICPSRAdapter) Search(ctx context.Context, query RepoQuery, cfg types.ResolverConfig) ([]types.Candidate, error) {
	if query.DOI != "" {
		docs, err := a.studies(ctx, query.DOI, cfg)
		if err != nil {
			return nil, err
		}
		var candidates []types.Candidate
		for _, doc := range docs {
			if doc.DOI == "" {
				continue
			}
			if mentionsDOI(query.DOI, doc.Description) || mentionsDOI(query.DOI, doc.DOI) {
				candidates = append(candidates, doc.candidate())
			}
		}
		if len(candidates) > 0 {
			return candidates, nil
		}
	}

	keywords := strings.Join(titleKeywords(query.Title, 5), " ")
	if keywords == "" {
		return nil, nil
	}
	docs, err := a.studies(ctx, keywords, cfg)
	if err != nil {
		return nil, err
	}

	var candidates []types.Candidate
	for _, doc := range docs {
		if doc.DOI == "" {
			continue
		}
		candidates = append(candidates, doc.candidate())
	}
	return candidates, nil
}

// studies performs one bounded search call.
func (a *OpenICPSRAdapter) studies(ctx context.Context, q string, cfg types.ResolverConfig) ([]icpsrDoc, error) {
	params := url.Values{
		"q":    {q},
		"rows": {fmt.Sprintf("%d", cfg.CandidateCap())},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, openICPSRAPIBase+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", cfg.UserAgent)

	resp, err := a.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("openICPSR search request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("openICPSR search returned HTTP %d", resp.StatusCode)
	}

	var ir icpsrResponse
	if err := json.NewDecoder(resp.Body).Decode(&ir); err != nil {
		return nil, fmt.Errorf("parsing openICPSR response: %w", err)
	}
	return ir.SearchResults.Response.Docs, nil
}

// openICPSR search JSON structures (Solr-style envelope).
type icpsrResponse struct {
	SearchResults struct {
		Response struct {
			Docs []icpsrDoc `json:"docs"`
		} `json:"response"`
	} `json:"searchResults"`
}

type icpsrDoc struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	DOI         string `json:"doi"`
}

func (d icpsrDoc) candidate() types.Candidate {
	landing := d.DOI
	if landing != "" && !strings.HasPrefix(landing, "http") {
		landing = "https://doi.org/" + landing
	}
	return types.Candidate{
		Title:       d.Name,
		URL:         landing,
		Description: d.Description,
		Source:      "openicpsr",
	}
}
