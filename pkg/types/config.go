// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by components that make
// network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "replication-scout/0.1 (mailto:research@example.edu)").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// ResolverConfig holds settings for the replication package resolver:
// the scoring weights, the acceptance threshold, and per-adapter limits.
// The threshold and weights are empirically chosen defaults, not derived
// constants; treat them as tunable.
type ResolverConfig struct {
	HTTPConfig `yaml:",inline"`

	// AcceptThreshold is the minimum composite score a candidate needs
	// to be accepted (default 0.4).
	AcceptThreshold float64 `json:"accept_threshold" yaml:"accept_threshold"`

	// SimilarityWeight scales the title Jaccard similarity (default 0.6).
	SimilarityWeight float64 `json:"similarity_weight" yaml:"similarity_weight"`

	// WordRatioWeight scales the shared-word ratio (default 0.3).
	WordRatioWeight float64 `json:"word_ratio_weight" yaml:"word_ratio_weight"`

	// AuthorWeight scales the author-match flag (default 0.1).
	AuthorWeight float64 `json:"author_weight" yaml:"author_weight"`

	// MaxCandidates caps the hits evaluated per adapter query (default 5).
	MaxCandidates int `json:"max_candidates" yaml:"max_candidates"`

	// PageTimeout is the timeout for the publisher article-page fetch,
	// which carries a heavier payload than the search APIs (default 10s).
	PageTimeout time.Duration `json:"page_timeout" yaml:"page_timeout"`

	// ZenodoAPIToken is an optional token for higher Zenodo rate limits.
	ZenodoAPIToken string `json:"zenodo_api_token,omitempty" yaml:"zenodo_api_token,omitempty"`

	// DataverseAPIToken is an optional Harvard Dataverse API token.
	DataverseAPIToken string `json:"dataverse_api_token,omitempty" yaml:"dataverse_api_token,omitempty"`
}

// Weights returns the configured composite weights, substituting the
// defaults for unset values.
func (c ResolverConfig) Weights() (similarity, wordRatio, author float64) {
	similarity, wordRatio, author = c.SimilarityWeight, c.WordRatioWeight, c.AuthorWeight
	if similarity == 0 && wordRatio == 0 && author == 0 {
		return 0.6, 0.3, 0.1
	}
	return similarity, wordRatio, author
}

// Threshold returns the acceptance threshold, defaulting to 0.4.
func (c ResolverConfig) Threshold() float64 {
	if c.AcceptThreshold <= 0 {
		return 0.4
	}
	return c.AcceptThreshold
}

// CandidateCap returns the per-query candidate cap, defaulting to 5.
func (c ResolverConfig) CandidateCap() int {
	if c.MaxCandidates <= 0 {
		return 5
	}
	return c.MaxCandidates
}

// HarvestConfig holds settings for the CrossRef harvesting stage.
type HarvestConfig struct {
	HTTPConfig `yaml:",inline"`

	// Mailto is the contact address sent to CrossRef for polite pool
	// access.
	Mailto string `json:"mailto,omitempty" yaml:"mailto,omitempty"`

	// RequestsPerSecond bounds the request rate against the CrossRef
	// index (default 1).
	RequestsPerSecond float64 `json:"requests_per_second" yaml:"requests_per_second"`

	// RowsPerRequest is the page size for works queries (default 50).
	RowsPerRequest int `json:"rows_per_request" yaml:"rows_per_request"`

	// MaxRequests caps the pagination loop per journal (default 10).
	MaxRequests int `json:"max_requests" yaml:"max_requests"`
}

// ResultsConfig holds settings for the results store and exporters.
type ResultsConfig struct {
	// ResultsDir is the base directory for the store (contains index/)
	// and exports (contains exports/).
	ResultsDir string `json:"results_dir" yaml:"results_dir"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	Resolver ResolverConfig `json:"resolver" yaml:"resolver"`
	Harvest  HarvestConfig  `json:"harvest" yaml:"harvest"`
	Results  ResultsConfig  `json:"results" yaml:"results"`
}
