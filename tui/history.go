// ABOUTME: History is the in-process location bar, recording every path the router pushes.
package tui

import "strings"

// History implements core.Location for the terminal client.
type History struct {
	entries [][]string
}

// NewHistory creates a History whose current location is start.
func NewHistory(start []string) *History {
	h := &History{}
	if len(start) > 0 {
		h.Push(start)
	}
	return h
}

// Push records segments as the current location.
func (h *History) Push(segments []string) {
	cp := make([]string, len(segments))
	copy(cp, segments)
	h.entries = append(h.entries, cp)
}

// Current returns the segments of the current location, or nil.
func (h *History) Current() []string {
	if len(h.entries) == 0 {
		return nil
	}
	return h.entries[len(h.entries)-1]
}

// Path renders the current location as "/a/b".
func (h *History) Path() string {
	return "/" + strings.Join(h.Current(), "/")
}

// Len returns how many locations have been pushed.
func (h *History) Len() int {
	return len(h.entries)
}
