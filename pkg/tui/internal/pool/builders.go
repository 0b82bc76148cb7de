// ABOUTME: Pooled strings.Builder values for building wrapped rows and frame text
// ABOUTME: Builders that grew past maxRetained are dropped instead of pooled

package pool

import (
	"strings"
	"sync"
)

// maxRetained caps the capacity a pooled builder may keep. A full-screen
// frame of wide glyphs stays well below it.
const maxRetained = 64 << 10

var builders = sync.Pool{
	New: func() any { return new(strings.Builder) },
}

// GetStringBuilder returns an empty builder.
func GetStringBuilder() *strings.Builder {
	sb := builders.Get().(*strings.Builder)
	sb.Reset()
	return sb
}

// PutStringBuilder hands sb back. nil and oversized builders are ignored.
func PutStringBuilder(sb *strings.Builder) {
	if sb == nil || sb.Cap() > maxRetained {
		return
	}
	sb.Reset()
	builders.Put(sb)
}
