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

// dataverseAPIBase is the Harvard Dataverse search endpoint. Declared as
// a var so tests can substitute an httptest server.
var dataverseAPIBase = "https://dataverse.harvard.edu/api/search"

// dataverseDatasetBase prefixes landing URLs for persistent IDs that are
// neither DOIs nor handles.
var dataverseDatasetBase = "https://dataverse.harvard.edu/dataset.xhtml?persistentId="

// DataverseAdapter queries the Harvard Dataverse search API. Dataverse
// datasets index the DOI of their related publication, checked across
// three query fields before falling back to title search.
type DataverseAdapter struct {
	Client *http.Client
}

// Name returns the adapter identifier.
func (a *DataverseAdapter) Name() string { return "dataverse" }

// Search tries the DOI-bearing query fields in precision order, then a
// title-plus-replication-phrase query.
func (a *DataverseAdapter) Search(ctx context.Context, query RepoQuery, cfg types.ResolverConfig) ([]types.Candidate, error) {
	if query.DOI != "" {
		doiQueries := []string{
			fmt.Sprintf("publicationIdValue:%q", query.DOI),
			fmt.Sprintf("%q", query.DOI),
			fmt.Sprintf("relatedPublication:%q", query.DOI),
		}
		for _, q := range doiQueries {
			items, err := a.datasets(ctx, q, cfg)
			if err != nil {
				return nil, err
			}
			if len(items) > 0 {
				return itemsToCandidates(items), nil
			}
		}
	}

	keywords := strings.Join(titleKeywords(query.Title, 5), " ")
	if keywords == "" {
		return nil, nil
	}
	q := fmt.Sprintf(`(%q) AND (replication OR "replication data" OR "replication package" OR materials)`, keywords)
	items, err := a.datasets(ctx, q, cfg)
	if err != nil {
		return nil, err
	}

	// Title search is noisy; keep only items that present themselves as
	// replication material.
	var kept []dataverseItem
	for _, item := range items {
		text := strings.ToLower(item.Name + " " + item.Description)
		if strings.Contains(text, "replication") || strings.Contains(text, "materials") || strings.Contains(text, "data") {
			kept = append(kept, item)
		}
	}
	return itemsToCandidates(kept), nil
}

// datasets performs one bounded search call.
func (a *DataverseAdapter) datasets(ctx context.Context, q string, cfg types.ResolverConfig) ([]dataverseItem, error) {
	params := url.Values{
		"q":        {q},
		"type":     {"dataset"},
		"per_page": {fmt.Sprintf("%d", cfg.CandidateCap())},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, dataverseAPIBase+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", cfg.UserAgent)
	if cfg.DataverseAPIToken != "" {
		req.Header.Set("X-Dataverse-key", cfg.DataverseAPIToken)
	}

	resp, err := a.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("Dataverse API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Dataverse API returned HTTP %d", resp.StatusCode)
	}

	var dr dataverseResponse
	if err := json.NewDecoder(resp.Body).Decode(&dr); err != nil {
		return nil, fmt.Errorf("parsing Dataverse response: %w", err)
	}
	return dr.Data.Items, nil
}

// Dataverse API JSON structures.
type dataverseResponse struct {
	Data struct {
		Items []dataverseItem `json:"items"`
	} `json:"data"`
}

type dataverseItem struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	GlobalID    string `json:"global_id"`
	URL         string `json:"url"`
}

// landingURL resolves the dataset's persistent identifier to a
// dereferenceable URL: doi: and hdl: prefixes map to their resolvers,
// anything else lands on the Dataverse dataset page.
func (item dataverseItem) landingURL() string {
	switch {
	case strings.HasPrefix(item.GlobalID, "doi:"):
		return "https://doi.org/" + strings.TrimPrefix(item.GlobalID, "doi:")
	case strings.HasPrefix(item.GlobalID, "hdl:"):
		return "https://hdl.handle.net/" + strings.TrimPrefix(item.GlobalID, "hdl:")
	case item.GlobalID != "":
		return dataverseDatasetBase + item.GlobalID
	default:
		return item.URL
	}
}

func itemsToCandidates(items []dataverseItem) []types.Candidate {
	var candidates []types.Candidate
	for _, item := range items {
		landing := item.landingURL()
		if landing == "" {
			continue
		}
		candidates = append(candidates, types.Candidate{
			Title:       item.Name,
			URL:         landing,
			Description: item.Description,
			Source:      "dataverse",
		})
	}
	return candidates
}
