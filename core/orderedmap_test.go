// ABOUTME: Tests for the insertion-ordered OrderedMap.
// ABOUTME: Covers ordering, overwrite-in-place, and deletion.
package core_test

import (
	"testing"

	"github.com/2389-research/gifbox/core"
	"github.com/google/go-cmp/cmp"
)

func TestOrderedMap_KeepsInsertionOrder(t *testing.T) {
	m := core.NewOrderedMap[string, int]()
	m.Set("zeta", 1)
	m.Set("alpha", 2)
	m.Set("mid", 3)

	if diff := cmp.Diff([]string{"zeta", "alpha", "mid"}, m.Keys()); diff != "" {
		t.Errorf("keys mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{1, 2, 3}, m.Values()); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}
}

func TestOrderedMap_OverwriteKeepsPosition(t *testing.T) {
	m := core.NewOrderedMap[string, int]()
	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("a", 10)

	if m.Len() != 2 {
		t.Errorf("expected Len()=2, got %d", m.Len())
	}
	if diff := cmp.Diff([]string{"a", "b"}, m.Keys()); diff != "" {
		t.Errorf("keys mismatch (-want +got):\n%s", diff)
	}
	if v, _ := m.Get("a"); v != 10 {
		t.Errorf("expected 10, got %d", v)
	}
}

func TestOrderedMap_Delete(t *testing.T) {
	m := core.NewOrderedMap[string, int]()
	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("c", 3)
	m.Delete("b")
	m.Delete("missing")

	if m.Has("b") {
		t.Error("expected b removed")
	}
	if diff := cmp.Diff([]string{"a", "c"}, m.Keys()); diff != "" {
		t.Errorf("keys mismatch (-want +got):\n%s", diff)
	}
	m.Set("b", 4)
	if diff := cmp.Diff([]string{"a", "c", "b"}, m.Keys()); diff != "" {
		t.Errorf("expected re-added key at end (-want +got):\n%s", diff)
	}
}

func TestOrderedMap_RangeStops(t *testing.T) {
	m := core.NewOrderedMap[string, int]()
	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("c", 3)

	var seen []string
	m.Range(func(k string, _ int) bool {
		seen = append(seen, k)
		return k != "b"
	})
	if diff := cmp.Diff([]string{"a", "b"}, seen); diff != "" {
		t.Errorf("range mismatch (-want +got):\n%s", diff)
	}
}
