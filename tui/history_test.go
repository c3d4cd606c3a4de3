// ABOUTME: Tests for History, the in-process location bar.
package tui

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestHistoryEmpty(t *testing.T) {
	h := NewHistory(nil)
	if h.Len() != 0 {
		t.Errorf("Len = %d, want 0", h.Len())
	}
	if h.Current() != nil {
		t.Errorf("Current = %v, want nil", h.Current())
	}
	if got := h.Path(); got != "/" {
		t.Errorf("Path = %q, want %q", got, "/")
	}
}

func TestHistoryPushCopiesSegments(t *testing.T) {
	h := NewHistory([]string{"ui"})
	segs := []string{"ui", "search"}
	h.Push(segs)
	segs[1] = "mutated"

	if diff := cmp.Diff([]string{"ui", "search"}, h.Current()); diff != "" {
		t.Errorf("Current mismatch (-want +got):\n%s", diff)
	}
	if got := h.Path(); got != "/ui/search" {
		t.Errorf("Path = %q, want %q", got, "/ui/search")
	}
	if h.Len() != 2 {
		t.Errorf("Len = %d, want 2", h.Len())
	}
}
