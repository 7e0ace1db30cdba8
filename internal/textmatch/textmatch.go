// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package textmatch computes similarity signals between paper titles and
// candidate repository records. All functions are pure and deterministic;
// empty or missing input scores zero.
package textmatch

import "strings"

// minTokenLen filters out short tokens so articles and prepositions do
// not inflate the overlap.
const minTokenLen = 4

// tokenSet splits s on whitespace, lowercases, and keeps tokens of at
// least minTokenLen characters.
func tokenSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, tok := range strings.Fields(strings.ToLower(s)) {
		if len(tok) >= minTokenLen {
			set[tok] = struct{}{}
		}
	}
	return set
}

func intersectionSize(a, b map[string]struct{}) int {
	if len(b) < len(a) {
		a, b = b, a
	}
	n := 0
	for tok := range a {
		if _, ok := b[tok]; ok {
			n++
		}
	}
	return n
}

// TitleSimilarity returns the Jaccard coefficient of the two titles'
// significant-token sets, in [0,1]. An empty union scores 0.
func TitleSimilarity(a, b string) float64 {
	setA, setB := tokenSet(a), tokenSet(b)
	inter := intersectionSize(setA, setB)
	union := len(setA) + len(setB) - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}

// WordMatchRatio returns the shared-token count divided by the size of
// the smaller token set, in [0,1]. It captures the common case where a
// repository listing truncates or extends the paper title: a strict
// subset or superset scores 1.
func WordMatchRatio(a, b string) float64 {
	setA, setB := tokenSet(a), tokenSet(b)
	smaller := len(setA)
	if len(setB) < smaller {
		smaller = len(setB)
	}
	if smaller == 0 {
		return 0
	}
	return float64(intersectionSize(setA, setB)) / float64(smaller)
}

// FirstSurname extracts the first author's surname from an author-list
// string. It accepts "Last, First; Last, First", "First Last; First
// Last", and single-name forms; the result is empty when the field is
// empty or the "N/A" placeholder.
func FirstSurname(authors string) string {
	first, _, _ := strings.Cut(authors, ";")
	first = strings.TrimSpace(first)
	if first == "" || strings.EqualFold(first, "n/a") {
		return ""
	}
	if last, _, found := strings.Cut(first, ","); found {
		return strings.TrimSpace(last)
	}
	fields := strings.Fields(first)
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}

// AuthorMatch reports 1 when the first author's surname appears anywhere
// in text, case-insensitively, and 0 otherwise.
func AuthorMatch(authors, text string) float64 {
	surname := FirstSurname(authors)
	if surname == "" || text == "" {
		return 0
	}
	if strings.Contains(strings.ToLower(text), strings.ToLower(surname)) {
		return 1
	}
	return 0
}
