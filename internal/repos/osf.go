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

// osfAPIBase is the OSF node search endpoint. Declared as a var so tests
// can substitute an httptest server.
var osfAPIBase = "https://api.osf.io/v2/search/nodes/"

// OSFAdapter queries the Open Science Framework node search. OSF is the
// dominant host for psychology replication material; its search is plain
// free text, so the DOI path is just a text query for the DOI string.
type OSFAdapter struct {
	Client *http.Client
}

// Name returns the adapter identifier.
func (a *OSFAdapter) Name() string { return "osf" }

// Search queries OSF by DOI string first, then by title keywords.
func (a *OSFAdapter) Search(ctx context.Context, query RepoQuery, cfg types.ResolverConfig) ([]types.Candidate, error) {
	if query.DOI != "" {
		candidates, err := a.nodes(ctx, query.DOI, cfg)
		if err != nil {
			return nil, err
		}
		if len(candidates) > 0 {
			return candidates, nil
		}
	}

	keywords := strings.Join(titleKeywords(query.Title, 6), " ")
	if keywords == "" {
		return nil, nil
	}
	return a.nodes(ctx, keywords, cfg)
}

// nodes performs one bounded search call.
func (a *OSFAdapter) nodes(ctx context.Context, q string, cfg types.ResolverConfig) ([]types.Candidate, error) {
	params := url.Values{"q": {q}}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, osfAPIBase+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", cfg.UserAgent)

	resp, err := a.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("OSF API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("OSF API returned HTTP %d", resp.StatusCode)
	}

	var or osfResponse
	if err := json.NewDecoder(resp.Body).Decode(&or); err != nil {
		return nil, fmt.Errorf("parsing OSF response: %w", err)
	}

	var candidates []types.Candidate
	for _, node := range or.Data {
		if len(candidates) == cfg.CandidateCap() {
			break
		}
		if node.Links.HTML == "" {
			continue
		}
		candidates = append(candidates, types.Candidate{
			Title:       node.Attributes.Title,
			URL:         node.Links.HTML,
			Description: node.Attributes.Description,
			Source:      "osf",
		})
	}
	return candidates, nil
}

// OSF API JSON structures (JSON:API envelope).
type osfResponse struct {
	Data []osfNode `json:"data"`
}

type osfNode struct {
	Attributes struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	} `json:"attributes"`
	Links struct {
		HTML string `json:"html"`
	} `json:"links"`
}
