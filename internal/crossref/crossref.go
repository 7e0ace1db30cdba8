// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package crossref harvests paper metadata from the CrossRef works index.
// Queries are filtered by journal ISSN and publication date range, paged
// by offset, and spaced by a rate limiter to stay inside the polite pool.
package crossref

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"golang.org/x/time/rate"

	"github.com/pdiddy/replication-scout/internal/httputil"
	"github.com/pdiddy/replication-scout/pkg/types"
)

// worksAPIBase is the CrossRef works endpoint. Declared as a var so tests
// can substitute an httptest server.
var worksAPIBase = "https://api.crossref.org/works"

// selectFields limits the response payload to the fields the pipeline
// consumes.
const selectFields = "title,author,published-print,published-online,DOI,abstract,container-title"

const (
	defaultRowsPerRequest    = 50
	defaultMaxRequests       = 10
	defaultRequestsPerSecond = 1
)

// Client queries the CrossRef works index for one configured harvest.
type Client struct {
	http    *http.Client
	limiter *rate.Limiter
	cfg     types.HarvestConfig
}

// New builds a Client from the harvest configuration. Unset numeric
// fields get the polite defaults (50 rows, 10 requests, 1 req/s).
func New(cfg types.HarvestConfig) *Client {
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = defaultRequestsPerSecond
	}
	return &Client{
		http:    &http.Client{Timeout: cfg.Timeout},
		limiter: rate.NewLimiter(rate.Limit(rps), 1),
		cfg:     cfg,
	}
}

// JournalWorks fetches papers published in the journal (by ISSN) between
// fromYear and untilYear inclusive. Pagination walks rows-sized pages up
// to the configured request cap and stops early on a short page. A
// mid-harvest failure returns the papers collected so far along with the
// error.
func (c *Client) JournalWorks(ctx context.Context, journal, issn string, fromYear, untilYear int, w io.Writer) ([]types.Paper, error) {
	rows := c.cfg.RowsPerRequest
	if rows <= 0 {
		rows = defaultRowsPerRequest
	}
	maxRequests := c.cfg.MaxRequests
	if maxRequests <= 0 {
		maxRequests = defaultMaxRequests
	}

	var papers []types.Paper
	offset := 0
	for request := 0; request < maxRequests; request++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return papers, err
		}

		page, err := c.worksPage(ctx, issn, fromYear, untilYear, rows, offset)
		if err != nil {
			return papers, fmt.Errorf("fetching %s page at offset %d: %w", journal, offset, err)
		}
		fmt.Fprintf(w, "%s: page %d returned %d of %d works\n", journal, request+1, len(page.Items), page.Total)

		for _, item := range page.Items {
			paper, ok := item.paper(journal)
			if !ok {
				continue
			}
			papers = append(papers, paper)
		}

		if len(page.Items) < rows {
			break
		}
		offset += rows
	}
	return papers, nil
}

// worksPage performs one works query. 429 responses are retried by the
// shared helper before being treated as errors.
func (c *Client) worksPage(ctx context.Context, issn string, fromYear, untilYear, rows, offset int) (*worksMessage, error) {
	params := url.Values{
		"filter": {fmt.Sprintf("issn:%s,from-pub-date:%d,until-pub-date:%d", issn, fromYear, untilYear)},
		"rows":   {fmt.Sprintf("%d", rows)},
		"offset": {fmt.Sprintf("%d", offset)},
		"select": {selectFields},
		"sort":   {"published"},
		"order":  {"desc"},
	}
	if c.cfg.Mailto != "" {
		params.Set("mailto", c.cfg.Mailto)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, worksAPIBase+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.cfg.UserAgent)

	resp, err := httputil.DoWithRetry(ctx, c.http, req, 0)
	if err != nil {
		return nil, fmt.Errorf("CrossRef works request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("CrossRef works returned HTTP %d", resp.StatusCode)
	}

	var wr worksResponse
	if err := json.NewDecoder(resp.Body).Decode(&wr); err != nil {
		return nil, fmt.Errorf("parsing CrossRef response: %w", err)
	}
	return &wr.Message, nil
}

// CrossRef works JSON structures.
type worksResponse struct {
	Message worksMessage `json:"message"`
}

type worksMessage struct {
	Total int         `json:"total-results"`
	Items []worksItem `json:"items"`
}

type worksItem struct {
	Title           []string    `json:"title"`
	Author          []worksName `json:"author"`
	PublishedPrint  *worksDate  `json:"published-print"`
	PublishedOnline *worksDate  `json:"published-online"`
	DOI             string      `json:"DOI"`
	Abstract        string      `json:"abstract"`
}

type worksName struct {
	Given  string `json:"given"`
	Family string `json:"family"`
}

type worksDate struct {
	DateParts [][]int `json:"date-parts"`
}

const maxAuthors = 10

// paper converts one works item to the pipeline record. Items without a
// title are dropped.
func (item worksItem) paper(journal string) (types.Paper, bool) {
	title := strings.TrimSpace(strings.Join(item.Title, " "))
	if title == "" {
		return types.Paper{}, false
	}

	authors := "N/A"
	if len(item.Author) > 0 {
		names := item.Author
		if len(names) > maxAuthors {
			names = names[:maxAuthors]
		}
		parts := make([]string, 0, len(names))
		for _, n := range names {
			parts = append(parts, strings.TrimSpace(n.Given+" "+n.Family))
		}
		authors = strings.Join(parts, "; ")
	}

	year, date := "N/A", "N/A"
	if pub := item.published(); pub != nil {
		year, date = pub.format()
	}

	link := "N/A"
	if item.DOI != "" {
		link = "https://doi.org/" + item.DOI
	}

	return types.Paper{
		Title:    title,
		Authors:  authors,
		Journal:  journal,
		Year:     year,
		Date:     date,
		DOI:      item.DOI,
		Link:     link,
		Abstract: stripJATS(item.Abstract),
	}, true
}

// published prefers the print date, falling back to the online date.
func (item worksItem) published() *worksDate {
	if item.PublishedPrint != nil && len(item.PublishedPrint.DateParts) > 0 {
		return item.PublishedPrint
	}
	if item.PublishedOnline != nil && len(item.PublishedOnline.DateParts) > 0 {
		return item.PublishedOnline
	}
	return nil
}

// format renders the first date-parts entry as a year string and a
// zero-padded YYYY-MM-DD date. Missing month or day default to 1.
func (d worksDate) format() (year, date string) {
	parts := d.DateParts[0]
	if len(parts) == 0 {
		return "N/A", "N/A"
	}
	y := parts[0]
	m, day := 1, 1
	if len(parts) > 1 {
		m = parts[1]
	}
	if len(parts) > 2 {
		day = parts[2]
	}
	return fmt.Sprintf("%d", y), fmt.Sprintf("%d-%02d-%02d", y, m, day)
}

// jatsTagPattern matches the JATS XML markup CrossRef abstracts arrive in.
var jatsTagPattern = regexp.MustCompile(`</?[a-zA-Z][^>]*>`)

// stripJATS removes XML tags from an abstract and collapses whitespace.
func stripJATS(abstract string) string {
	if abstract == "" {
		return ""
	}
	plain := jatsTagPattern.ReplaceAllString(abstract, " ")
	return strings.Join(strings.Fields(plain), " ")
}
