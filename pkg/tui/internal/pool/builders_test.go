// ABOUTME: Tests for the strings.Builder pool
// ABOUTME: Covers reset on reuse and the oversized-builder cutoff

package pool

import (
	"strings"
	"testing"
)

func TestGetStringBuilder_Empty(t *testing.T) {
	t.Parallel()

	sb := GetStringBuilder()
	sb.WriteString("leftover")
	PutStringBuilder(sb)

	again := GetStringBuilder()
	defer PutStringBuilder(again)
	if again.Len() != 0 {
		t.Errorf("Len = %d, want 0", again.Len())
	}
}

func TestPutStringBuilder_IgnoresNilAndOversized(t *testing.T) {
	t.Parallel()

	PutStringBuilder(nil)

	big := new(strings.Builder)
	big.Grow(maxRetained + 1)
	PutStringBuilder(big)
	if big.Cap() <= maxRetained {
		t.Fatalf("Cap = %d, want > %d", big.Cap(), maxRetained)
	}
}
