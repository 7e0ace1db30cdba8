// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package topic classifies papers into discipline topics by keyword
// occurrence counting over the title and abstract.
package topic

import (
	"strings"

	"github.com/pdiddy/replication-scout/internal/catalog"
)

// flagshipWeight doubles the count of a discipline's flagship keywords.
const flagshipWeight = 2

// Classify assigns the topic whose keywords occur most often in the
// paper's title and abstract. Flagship keywords count double. Topics are
// scored in sorted name order, so ties resolve deterministically to the
// alphabetically first topic. When nothing matches the result is the
// discipline fallback ("general_<discipline>").
func Classify(title, abstract string, d catalog.Discipline) string {
	text := strings.ToLower(title + " " + abstract)

	flagship := make(map[string]bool, len(d.Flagship))
	for _, kw := range d.Flagship {
		flagship[strings.ToLower(kw)] = true
	}

	best := d.Fallback()
	bestScore := 0
	for _, name := range d.TopicNames() {
		score := 0
		for _, kw := range d.Topics[name] {
			kw = strings.ToLower(kw)
			n := strings.Count(text, kw)
			if flagship[kw] {
				n *= flagshipWeight
			}
			score += n
		}
		if score > bestScore {
			best = name
			bestScore = score
		}
	}
	return best
}
