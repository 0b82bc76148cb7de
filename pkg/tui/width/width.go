// ABOUTME: Display width of cell text: grapheme-aware, ANSI sequences count as zero
// ABOUTME: Fast path for plain ASCII; a two-generation cache for everything else

package width

import (
	"sync"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

const cacheSize = 256

// generations caches measured widths in two maps. When the current map
// fills it becomes the previous one, and a hit there is copied forward.
// Strings measured every frame therefore never fall out.
type generations struct {
	mu        sync.Mutex
	cur, prev map[string]int
	limit     int
}

func newGenerations(limit int) *generations {
	return &generations{cur: make(map[string]int, limit), limit: limit}
}

func (g *generations) get(s string) (int, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if w, ok := g.cur[s]; ok {
		return w, true
	}
	w, ok := g.prev[s]
	if ok {
		g.store(s, w)
	}
	return w, ok
}

func (g *generations) put(s string, w int) {
	g.mu.Lock()
	g.store(s, w)
	g.mu.Unlock()
}

func (g *generations) store(s string, w int) {
	if len(g.cur) >= g.limit {
		g.prev, g.cur = g.cur, make(map[string]int, g.limit)
	}
	g.cur[s] = w
}

var widths = newGenerations(cacheSize)

// String returns the number of terminal cells s occupies.
func String(s string) int {
	if s == "" {
		return 0
	}
	if isPlainASCII(s) {
		return len(s)
	}
	if w, ok := widths.get(s); ok {
		return w
	}
	w := measure(s)
	widths.put(s, w)
	return w
}

// Rune returns the number of cells r occupies.
func Rune(r rune) int {
	return runewidth.RuneWidth(r)
}

// isPlainASCII reports whether s is printable ASCII only (0x20-0x7E).
func isPlainASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if b := s[i]; b < 0x20 || b > 0x7E {
			return false
		}
	}
	return true
}

func measure(s string) int {
	s = Strip(s)
	w := 0
	state := -1
	for len(s) > 0 {
		var cluster string
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		w += clusterWidth(cluster)
	}
	return w
}

// clusterWidth is the width of one grapheme cluster, taken from its base rune.
func clusterWidth(cluster string) int {
	if cluster == "" {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(cluster)
	return Rune(r)
}
