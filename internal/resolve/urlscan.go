// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package resolve

import (
	"regexp"
	"strings"
)

// urlPattern extracts candidate URLs from free text. Trailing punctuation
// that abstracts commonly append (periods, closing brackets) is trimmed
// after the match.
var urlPattern = regexp.MustCompile(`https?://[^\s"'<>]+`)

// repoHostMarkers identify URLs that point directly at a known package
// host. A paper whose title or abstract already carries one of these
// needs no adapter queries.
var repoHostMarkers = []string{
	"github.com/",
	"zenodo.org/",
	"dataverse.harvard.edu/",
	"osf.io/",
	"figshare.com/",
	"openicpsr.org/",
	"doi.org/10.3886/",
}

// ScanForRepoURL scans the given text fields in order for a URL hosted by
// a known package repository and returns the first match.
func ScanForRepoURL(texts ...string) (string, bool) {
	for _, text := range texts {
		for _, raw := range urlPattern.FindAllString(text, -1) {
			u := strings.TrimRight(raw, ".,;:)]}")
			if isRepoURL(u) {
				return u, true
			}
		}
	}
	return "", false
}

func isRepoURL(u string) bool {
	lower := strings.ToLower(u)
	for _, marker := range repoHostMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}
