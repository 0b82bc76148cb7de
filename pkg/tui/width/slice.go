// ABOUTME: Column-based cutting of plain text on grapheme boundaries
// ABOUTME: Cut splits at a cell budget; Truncate keeps only the head

package width

import "github.com/rivo/uniseg"

// Cut splits s so that head occupies at most cols cells. A wide grapheme
// that would straddle the boundary goes to tail. s must not contain escape
// sequences.
func Cut(s string, cols int) (head, tail string) {
	if cols <= 0 {
		return "", s
	}
	if isPlainASCII(s) {
		if len(s) <= cols {
			return s, ""
		}
		return s[:cols], s[cols:]
	}

	used := 0
	rest := s
	state := -1
	for len(rest) > 0 {
		cluster, next, _, newState := uniseg.FirstGraphemeClusterInString(rest, state)
		w := clusterWidth(cluster)
		if used+w > cols {
			break
		}
		used += w
		rest = next
		state = newState
	}
	return s[:len(s)-len(rest)], rest
}

// Truncate returns the longest prefix of s that fits in cols cells.
func Truncate(s string, cols int) string {
	head, _ := Cut(s, cols)
	return head
}

// LastCluster returns the final grapheme cluster of s, or "" if s is empty.
func LastCluster(s string) string {
	last := ""
	state := -1
	for len(s) > 0 {
		last, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
	}
	return last
}
