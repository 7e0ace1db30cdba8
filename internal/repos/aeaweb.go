// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package repos

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"golang.org/x/net/html"

	"github.com/pdiddy/replication-scout/pkg/types"
)

// aeaArticleBase is the AEA article page endpoint. Declared as a var so
// tests can substitute an httptest server.
var aeaArticleBase = "https://www.aeaweb.org/articles"

// packageHrefPattern matches anchor targets that point at an openICPSR
// deposit, either through the 10.3886 DOI prefix or the archive host.
var packageHrefPattern = regexp.MustCompile(`doi\.org/10\.3886/|openicpsr\.org`)

// AEAWebAdapter fetches the AEA article page and extracts the replication
// package link the publisher embeds next to the article metadata.
//
// Unlike the other adapters this one has no free-text mode: the doi.org
// redirect for AEA articles answers 403 to non-browser clients, so the
// page is addressed directly by article DOI and the single anchor whose
// visible text names the replication package is the only signal consumed.
// The match skips scoring entirely; a publisher-confirmed link needs no
// similarity check.
type AEAWebAdapter struct {
	Client *http.Client
}

// Name returns the adapter identifier.
func (a *AEAWebAdapter) Name() string { return "aeaweb" }

// Search fetches the article page for the DOI and returns the embedded
// replication package anchor, if any. Papers without a DOI yield nothing.
func (a *AEAWebAdapter) Search(ctx context.Context, query RepoQuery, cfg types.ResolverConfig) ([]types.Candidate, error) {
	if query.DOI == "" {
		return nil, nil
	}

	pageURL := aeaArticleBase + "?id=" + url.QueryEscape(query.DOI)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", cfg.UserAgent)

	resp, err := a.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("AEA article page request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("AEA article page returned HTTP %d", resp.StatusCode)
	}

	doc, err := html.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing AEA article page: %w", err)
	}

	text, href, ok := findPackageAnchor(doc)
	if !ok {
		return nil, nil
	}

	return []types.Candidate{{
		Title:     strings.TrimSpace(text),
		URL:       href,
		Source:    "aeaweb",
		Confirmed: true,
	}}, nil
}

// findPackageAnchor walks the parse tree for the first anchor whose
// visible text contains "replication package" and whose target matches
// the openICPSR pattern.
func findPackageAnchor(n *html.Node) (text, href string, ok bool) {
	if n.Type == html.ElementNode && n.Data == "a" {
		t := anchorText(n)
		h := attrValue(n, "href")
		if strings.Contains(strings.ToLower(t), "replication package") && packageHrefPattern.MatchString(h) {
			return t, h, true
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if text, href, ok = findPackageAnchor(c); ok {
			return text, href, true
		}
	}
	return "", "", false
}

// anchorText concatenates the text nodes under an anchor.
func anchorText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.TextNode {
			b.WriteString(node.Data)
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

func attrValue(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}
