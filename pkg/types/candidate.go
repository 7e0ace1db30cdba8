// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Candidate is one raw hit returned by a repository adapter. It lives for
// a single adapter invocation and is consumed by the ranker in the same
// call.
type Candidate struct {
	// Title is the candidate record's own title (dataset or study name).
	Title string `json:"title" yaml:"title"`

	// URL is the candidate's landing address, already normalized to a
	// resolvable form (doi.org, hdl.handle.net, or the service page).
	URL string `json:"url" yaml:"url"`

	// Description is free metadata text used for identifier cross-checks
	// and author matching. May be empty.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Source names the adapter that produced the hit (e.g. "zenodo").
	Source string `json:"source" yaml:"source"`

	// Confirmed marks a candidate the hosting service itself ties to the
	// paper, such as a publisher-page anchor. Confirmed candidates are
	// accepted without similarity scoring.
	Confirmed bool `json:"confirmed,omitempty" yaml:"confirmed,omitempty"`
}

// ScoredCandidate is a Candidate plus the match scores computed against
// the originating paper query.
type ScoredCandidate struct {
	Candidate `yaml:",inline"`

	// TitleSimilarity is the Jaccard similarity of the two titles, in [0,1].
	TitleSimilarity float64 `json:"title_similarity" yaml:"title_similarity"`

	// WordRatio is the shared-word ratio against the smaller token set,
	// in [0,1].
	WordRatio float64 `json:"word_ratio" yaml:"word_ratio"`

	// AuthorMatch is 1 when the first author's surname appears in the
	// candidate's text, 0 otherwise.
	AuthorMatch float64 `json:"author_match" yaml:"author_match"`

	// Composite is the weighted acceptance score.
	Composite float64 `json:"composite" yaml:"composite"`
}

// Outcome is the terminal result of one resolution: whether a package was
// located and, if so, where. Never mutated after it is produced.
type Outcome struct {
	Found bool `json:"found" yaml:"found"`

	// URL is the accepted package address; empty when Found is false.
	URL string `json:"url,omitempty" yaml:"url,omitempty"`

	// Source names the adapter (or "abstract" for an embedded link) that
	// produced the accepted URL; empty when Found is false.
	Source string `json:"source,omitempty" yaml:"source,omitempty"`
}
