// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package resolve

import "strings"

// Policy is an ordered list of adapter names; the sweep queries hosting
// services in this order and the first accepted candidate wins.
type Policy []string

// Adapter orderings per venue family. AEA journals mandate openICPSR
// deposits linked from the article page, so that family leads with the
// publisher page; psychology work overwhelmingly lands on OSF; everything
// else starts from the DOI-indexed repositories. All policies order the
// same adapter set.
var (
	PolicyAEA        = Policy{"aeaweb", "zenodo", "openicpsr", "dataverse", "osf"}
	PolicyPsychology = Policy{"osf", "zenodo", "dataverse", "openicpsr", "aeaweb"}
	PolicyGeneric    = Policy{"zenodo", "dataverse", "osf", "openicpsr", "aeaweb"}
)

// aeaVenueMarkers match the journal families published by the American
// Economic Association.
var aeaVenueMarkers = []string{
	"american economic",
	"aea papers",
	"journal of economic literature",
	"journal of economic perspectives",
}

// Classify selects the adapter policy for a venue. Matching is by
// case-insensitive substring against publisher families; an unknown
// venue falls back to the discipline default, and an unknown discipline
// to the generic policy.
func Classify(journal, discipline string) Policy {
	venue := strings.ToLower(journal)
	for _, marker := range aeaVenueMarkers {
		if strings.Contains(venue, marker) {
			return PolicyAEA
		}
	}
	if strings.EqualFold(discipline, "psychology") {
		return PolicyPsychology
	}
	return PolicyGeneric
}
