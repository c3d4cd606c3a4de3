// ABOUTME: Shared fixtures for core tests: a recording Location and model builders.
package core_test

import (
	"testing"

	"github.com/2389-research/gifbox/core"
	"github.com/2389-research/gifbox/wire"
)

type recordingLocation struct {
	pushes [][]string
}

func (l *recordingLocation) Push(segments []string) {
	l.pushes = append(l.pushes, segments)
}

func (l *recordingLocation) Current() []string {
	if len(l.pushes) == 0 {
		return nil
	}
	return l.pushes[len(l.pushes)-1]
}

var testUser = wire.User{ID: 1, Email: "a@b.com", JWT: "tok"}

// newLoggedIn returns a dispatcher over an initialized, authenticated model
// sitting on the search page.
func newLoggedIn(t *testing.T) (*core.Dispatcher, *recordingLocation) {
	t.Helper()
	m := core.NewModel()
	m.IsInitializing = false
	u := testUser
	m.User = &u
	m.Route = core.RouteSearch
	loc := &recordingLocation{}
	return core.NewDispatcher(m, loc), loc
}

// newLoggedOut returns a dispatcher over an initialized model with no user.
func newLoggedOut(t *testing.T) (*core.Dispatcher, *recordingLocation) {
	t.Helper()
	m := core.NewModel()
	m.IsInitializing = false
	m.Route = core.RouteLogin
	loc := &recordingLocation{}
	return core.NewDispatcher(m, loc), loc
}

func gif(id string, saved bool, category string) wire.Gif {
	g := wire.Gif{ID: id, Title: "title " + id, URL: "https://media.example/" + id + ".gif", IsSaved: saved}
	if category != "" {
		c := category
		g.Category = &c
	}
	return g
}

func eventNames(evs []core.Event) []string {
	names := make([]string, len(evs))
	for i, ev := range evs {
		names[i] = core.EventName(ev)
	}
	return names
}

func commandTypes(cmds []core.Command) []string {
	types := make([]string, len(cmds))
	for i, c := range cmds {
		types[i] = c.CommandType()
	}
	return types
}
