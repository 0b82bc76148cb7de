// ABOUTME: Thin wrapper over sahilm/fuzzy for fuzzy string matching
// ABOUTME: Used by tree search to rank labels and find the folders to open

package fuzzy

import "github.com/sahilm/fuzzy"

// Source is a list of strings addressed by index.
type Source = fuzzy.Source

// Match represents a single fuzzy match result.
type Match struct {
	Str            string
	Index          int
	MatchedIndexes []int
	Score          int
}

// FindFrom matches pattern against every string in data.
// Returns matches sorted by score (best first).
func FindFrom(pattern string, data Source) []Match {
	results := fuzzy.FindFrom(pattern, data)
	matches := make([]Match, len(results))
	for i, r := range results {
		matches[i] = Match{
			Str:            r.Str,
			Index:          r.Index,
			MatchedIndexes: r.MatchedIndexes,
			Score:          r.Score,
		}
	}
	return matches
}
