// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package repos

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func dataverseEnvelope(items ...map[string]any) map[string]any {
	if items == nil {
		items = []map[string]any{}
	}
	return map[string]any{"data": map[string]any{"items": items}}
}

func TestDataverseDOIQueryOrder(t *testing.T) {
	const doi = "10.1257/aer.20211723"

	var queries []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("q")
		queries = append(queries, q)
		if got := r.Header.Get("X-Dataverse-key"); got != "dv-token" {
			t.Errorf("X-Dataverse-key = %q, want %q", got, "dv-token")
		}

		// Only the relatedPublication field matches, so the first two
		// queries must come back empty.
		var resp map[string]any
		if strings.HasPrefix(q, "relatedPublication:") {
			resp = dataverseEnvelope(map[string]any{
				"name":        "Replication Data for: Credit and Crisis",
				"description": "All estimation code.",
				"global_id":   "doi:10.7910/DVN/ABC123",
			})
		} else {
			resp = dataverseEnvelope()
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	oldBase := dataverseAPIBase
	dataverseAPIBase = server.URL
	defer func() { dataverseAPIBase = oldBase }()

	cfg := testCfg()
	cfg.DataverseAPIToken = "dv-token"
	adapter := &DataverseAdapter{Client: server.Client()}
	candidates, err := adapter.Search(context.Background(), RepoQuery{DOI: doi, Title: "Credit and Crisis"}, cfg)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}

	wantQueries := []string{
		fmt.Sprintf("publicationIdValue:%q", doi),
		fmt.Sprintf("%q", doi),
		fmt.Sprintf("relatedPublication:%q", doi),
	}
	if len(queries) != len(wantQueries) {
		t.Fatalf("server saw %d queries %v, want %d", len(queries), queries, len(wantQueries))
	}
	for i := range wantQueries {
		if queries[i] != wantQueries[i] {
			t.Errorf("query[%d] = %q, want %q", i, queries[i], wantQueries[i])
		}
	}

	if len(candidates) != 1 {
		t.Fatalf("got %d candidates, want 1", len(candidates))
	}
	if candidates[0].URL != "https://doi.org/10.7910/DVN/ABC123" {
		t.Errorf("URL = %q, want doi.org landing page", candidates[0].URL)
	}
	if candidates[0].Source != "dataverse" {
		t.Errorf("Source = %q, want %q", candidates[0].Source, "dataverse")
	}
}

func TestDataverseTitleFallbackFilters(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(dataverseEnvelope(
			map[string]any{
				"name":        "Replication Data for: Household Savings Study",
				"description": "",
				"global_id":   "hdl:1902.1/XYZ",
			},
			map[string]any{
				"name":        "Household Savings Oral Histories",
				"description": "Interview transcripts.",
				"global_id":   "doi:10.7910/DVN/NOPE",
			},
		))
	}))
	defer server.Close()

	oldBase := dataverseAPIBase
	dataverseAPIBase = server.URL
	defer func() { dataverseAPIBase = oldBase }()

	adapter := &DataverseAdapter{Client: server.Client()}
	candidates, err := adapter.Search(context.Background(), RepoQuery{Title: "Household Savings Study"}, testCfg())
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(candidates) != 1 {
		t.Fatalf("got %d candidates, want 1 (transcripts filtered)", len(candidates))
	}
	if candidates[0].URL != "https://hdl.handle.net/1902.1/XYZ" {
		t.Errorf("URL = %q, want handle resolver URL", candidates[0].URL)
	}
}

func TestDataverseLandingURL(t *testing.T) {
	tests := []struct {
		name string
		item dataverseItem
		want string
	}{
		{"doi prefix", dataverseItem{GlobalID: "doi:10.7910/DVN/ABC"}, "https://doi.org/10.7910/DVN/ABC"},
		{"hdl prefix", dataverseItem{GlobalID: "hdl:1902.1/123"}, "https://hdl.handle.net/1902.1/123"},
		{"other persistent id", dataverseItem{GlobalID: "ark:/123/456"}, dataverseDatasetBase + "ark:/123/456"},
		{"no global id", dataverseItem{URL: "https://dataverse.harvard.edu/x"}, "https://dataverse.harvard.edu/x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.item.landingURL(); got != tt.want {
				t.Errorf("landingURL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDataverseServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer server.Close()

	oldBase := dataverseAPIBase
	dataverseAPIBase = server.URL
	defer func() { dataverseAPIBase = oldBase }()

	adapter := &DataverseAdapter{Client: server.Client()}
	if _, err := adapter.Search(context.Background(), RepoQuery{DOI: "10.1/x", Title: "Some Title Words"}, testCfg()); err == nil {
		t.Error("Search returned nil error on HTTP 502")
	}
}
