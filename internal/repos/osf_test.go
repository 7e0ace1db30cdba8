// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package repos

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func osfEnvelope(nodes ...map[string]any) map[string]any {
	if nodes == nil {
		nodes = []map[string]any{}
	}
	return map[string]any{"data": nodes}
}

func osfNodeJSON(title, description, htmlURL string) map[string]any {
	return map[string]any{
		"attributes": map[string]any{"title": title, "description": description},
		"links":      map[string]any{"html": htmlURL},
	}
}

func TestOSFSearchByDOI(t *testing.T) {
	const doi = "10.1037/xge0001234"

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("q"); got != doi {
			t.Errorf("q = %q, want the DOI string", got)
		}
		json.NewEncoder(w).Encode(osfEnvelope(
			osfNodeJSON("Materials for: Memory Consolidation Study", "Preregistration and data.", "https://osf.io/abcde/"),
		))
	}))
	defer server.Close()

	oldBase := osfAPIBase
	osfAPIBase = server.URL
	defer func() { osfAPIBase = oldBase }()

	adapter := &OSFAdapter{Client: server.Client()}
	candidates, err := adapter.Search(context.Background(), RepoQuery{DOI: doi, Title: "Memory Consolidation Study"}, testCfg())
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(candidates) != 1 {
		t.Fatalf("got %d candidates, want 1", len(candidates))
	}
	if candidates[0].URL != "https://osf.io/abcde/" {
		t.Errorf("URL = %q, want node HTML link", candidates[0].URL)
	}
	if candidates[0].Source != "osf" {
		t.Errorf("Source = %q, want %q", candidates[0].Source, "osf")
	}
}

func TestOSFTitleFallbackAndCap(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("q")
		if q == "10.9999/none" {
			json.NewEncoder(w).Encode(osfEnvelope())
			return
		}
		if q != "Memory Consolidation During Sleep Deprivation Among" {
			t.Errorf("q = %q, want six title keywords", q)
		}
		var nodes []map[string]any
		for i := 0; i < 7; i++ {
			nodes = append(nodes, osfNodeJSON("Memory project", "", "https://osf.io/node/"))
		}
		// Nodes without an HTML link are dropped, not counted.
		nodes[0] = osfNodeJSON("Orphan node", "", "")
		json.NewEncoder(w).Encode(osfEnvelope(nodes...))
	}))
	defer server.Close()

	oldBase := osfAPIBase
	osfAPIBase = server.URL
	defer func() { osfAPIBase = oldBase }()

	adapter := &OSFAdapter{Client: server.Client()}
	candidates, err := adapter.Search(context.Background(), RepoQuery{
		DOI:   "10.9999/none",
		Title: "Memory Consolidation During Sleep Deprivation Among Young Adults",
	}, testCfg())
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(candidates) != 5 {
		t.Errorf("got %d candidates, want the cap of 5", len(candidates))
	}
}

func TestOSFServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "too many requests", http.StatusTooManyRequests)
	}))
	defer server.Close()

	oldBase := osfAPIBase
	osfAPIBase = server.URL
	defer func() { osfAPIBase = oldBase }()

	adapter := &OSFAdapter{Client: server.Client()}
	if _, err := adapter.Search(context.Background(), RepoQuery{Title: "Some Title Words"}, testCfg()); err == nil {
		t.Error("Search returned nil error on HTTP 429")
	}
}
