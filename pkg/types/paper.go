// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the replication-scout
// pipeline: the paper records harvested from CrossRef, the candidate
// records returned by repository adapters, and the resolution outcome.
package types

// PaperQuery holds the identifying fields of one paper for a single
// resolution run. It is constructed fresh per paper by the pipeline and
// never mutated during resolution.
type PaperQuery struct {
	// DOI is the paper's persistent identifier, bare form
	// (e.g. "10.1257/aer.20211723"). May be empty.
	DOI string `json:"doi" yaml:"doi"`

	// Title is the paper title as returned by the bibliographic index.
	Title string `json:"title" yaml:"title"`

	// Abstract is the paper abstract; it may contain embedded URLs
	// pointing directly at a repository.
	Abstract string `json:"abstract,omitempty" yaml:"abstract,omitempty"`

	// Journal is the publishing venue name, used for policy selection.
	Journal string `json:"journal" yaml:"journal"`

	// Authors is the author list, either a single name or
	// "First Last; First Last" form.
	Authors string `json:"authors" yaml:"authors"`

	// Discipline selects the journal registry and topic keyword set
	// (e.g. "economics", "psychology").
	Discipline string `json:"discipline,omitempty" yaml:"discipline,omitempty"`
}

// Paper is the accumulated record for one harvested paper: bibliographic
// fields plus the topic classification and resolution result. This is the
// shape the results store persists and the exporters emit.
type Paper struct {
	Title   string `json:"title" yaml:"title"`
	Authors string `json:"authors" yaml:"authors"`
	Journal string `json:"journal" yaml:"journal"`

	// Topic is the keyword-classified subject (e.g. "macroeconomics").
	Topic string `json:"topic" yaml:"topic"`

	Year string `json:"year" yaml:"year"`
	Date string `json:"date" yaml:"date"`
	DOI  string `json:"doi" yaml:"doi"`

	// Link is the canonical DOI link for the paper itself.
	Link string `json:"link" yaml:"link"`

	Abstract string `json:"abstract,omitempty" yaml:"abstract,omitempty"`

	// ReplicationPackage is 1 when a package was located, 0 otherwise.
	ReplicationPackage int `json:"replication_package" yaml:"replication_package"`

	// ReplicationURL is the located package URL, empty when none found.
	ReplicationURL string `json:"replication_url,omitempty" yaml:"replication_url,omitempty"`

	// ReplicationSource names the adapter (or "direct") that produced the
	// package URL, empty when none found.
	ReplicationSource string `json:"replication_source,omitempty" yaml:"replication_source,omitempty"`
}

// Query returns the resolution input derived from the harvested record.
func (p Paper) Query(discipline string) PaperQuery {
	return PaperQuery{
		DOI:        p.DOI,
		Title:      p.Title,
		Abstract:   p.Abstract,
		Journal:    p.Journal,
		Authors:    p.Authors,
		Discipline: discipline,
	}
}
