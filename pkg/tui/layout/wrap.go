// ABOUTME: Word wrapping into a fixed grid of padded rows with hyphenated hard splits
// ABOUTME: Widths are display columns; newlines in the input are dropped, not honored

package layout

import (
	"strings"

	"github.com/mauromedda/charflow-go/pkg/tui/internal/pool"
	"github.com/mauromedda/charflow-go/pkg/tui/width"
	"github.com/rivo/uniseg"
)

// Wrap lays text out in exactly height rows, each padded with spaces to
// width columns. Words are packed greedily; a word too long for an empty
// row is split, usually with a trailing hyphen. Text that does not fit in
// height rows is dropped.
func Wrap(text string, cols, height int) []string {
	if height <= 0 {
		return []string{}
	}
	rows := make([]string, 0, height)
	if cols <= 0 {
		for range height {
			rows = append(rows, "")
		}
		return rows
	}

	words := strings.Fields(strings.ReplaceAll(text, "\n", ""))
	line := pool.GetStringBuilder()
	defer pool.PutStringBuilder(line)
	used := 0
	started := false

	emit := func(s string, w int) {
		rows = append(rows, s+strings.Repeat(" ", max(cols-w, 0)))
	}

	for len(words) > 0 && len(rows) < height {
		word := words[0]
		ww := width.String(word)

		if !started {
			if ww < cols {
				line.WriteString(word)
				used = ww
				started = true
				words = words[1:]
				continue
			}
			head, tail := splitWord(word, cols)
			if head != "" {
				emit(head, width.String(head))
			}
			if tail == "" {
				words = words[1:]
			} else {
				words[0] = tail
			}
			continue
		}

		if used+1+ww < cols {
			line.WriteByte(' ')
			line.WriteString(word)
			used += 1 + ww
			words = words[1:]
			continue
		}

		emit(line.String(), used)
		line.Reset()
		used = 0
		started = false
	}

	if started && len(rows) < height {
		emit(line.String(), used)
	}
	for len(rows) < height {
		emit("", 0)
	}
	return rows
}

// splitWord breaks a word that cannot sit on an empty row of cols columns.
// head is what goes on the row; tail continues as the next word. A cluster
// wider than the row is discarded so the caller always makes progress.
func splitWord(word string, cols int) (head, tail string) {
	if cols == 1 {
		head, tail = width.Cut(word, 1)
		if head == "" {
			return "", dropCluster(word)
		}
		return head, tail
	}

	full, rest := width.Cut(word, cols)
	if width.LastCluster(full) == "-" && width.String(full) == cols {
		return full, rest
	}

	head, tail = width.Cut(word, cols-1)
	if head != "" {
		return head + "-", tail
	}
	if full != "" {
		return full, rest
	}
	return "", dropCluster(word)
}

func dropCluster(s string) string {
	_, rest, _, _ := uniseg.FirstGraphemeClusterInString(s, -1)
	return rest
}
