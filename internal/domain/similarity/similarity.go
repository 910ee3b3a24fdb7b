// Package similarity scores string closeness with a trigram metric.
package similarity

import (
	"math"
	"strings"
)

// Trigram returns a similarity score in [0,1] for two strings, computed as
// the Jaccard ratio of their trigram sets. Strings are lowercased and padded
// with two leading and one trailing space before extraction, so word
// boundaries contribute trigrams (same convention as PostgreSQL's pg_trgm).
//
// Trigram(x, x) == 1 for non-empty x, the metric is symmetric, and scores
// fall as edit distance grows.
func Trigram(a, b string) float64 {
	ta := trigrams(a)
	tb := trigrams(b)
	if len(ta) == 0 || len(tb) == 0 {
		if len(ta) == 0 && len(tb) == 0 {
			return 1
		}
		return 0
	}

	shared := 0
	for g := range ta {
		if _, ok := tb[g]; ok {
			shared++
		}
	}

	union := len(ta) + len(tb) - shared
	return float64(shared) / float64(union)
}

// Confidence converts a [0,1] similarity into a percentage rounded to two
// decimal places.
func Confidence(score float64) float64 {
	return math.Round(score*100*100) / 100
}

func trigrams(s string) map[string]struct{} {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return nil
	}

	set := make(map[string]struct{})
	for _, word := range strings.Fields(s) {
		padded := "  " + word + " "
		for i := 0; i+3 <= len(padded); i++ {
			set[padded[i:i+3]] = struct{}{}
		}
	}
	return set
}
