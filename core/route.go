// ABOUTME: Router mapping location path segments to Route values and back.
// ABOUTME: PostRouting emits the side-effect events a page needs on arrival.
package core

import "strings"

// Route is the logical page being shown.
type Route int

const (
	RouteInit Route = iota
	RouteLogin
	RouteSearch
	RouteFavorites
)

func (r Route) String() string {
	switch r {
	case RouteInit:
		return "Init"
	case RouteLogin:
		return "Login"
	case RouteSearch:
		return "Search"
	case RouteFavorites:
		return "Favorites"
	default:
		return "Unknown"
	}
}

// Segments returns the canonical path segments for r.
func (r Route) Segments() []string {
	switch r {
	case RouteLogin:
		return []string{"ui", "login"}
	case RouteSearch:
		return []string{"ui", "search"}
	case RouteFavorites:
		return []string{"ui", "favorites"}
	default:
		return []string{"ui"}
	}
}

// Path returns the canonical path for r, e.g. "/ui/search".
func (r Route) Path() string {
	return "/" + strings.Join(r.Segments(), "/")
}

// RouteFor maps path segments to a Route. Only the first two segments are
// considered; unknown pages under "ui" fall back to Search and anything
// outside "ui" is Init.
func RouteFor(segments []string) Route {
	if len(segments) == 0 || segments[0] != "ui" {
		return RouteInit
	}
	if len(segments) == 1 {
		return RouteInit
	}
	switch segments[1] {
	case "login":
		return RouteLogin
	case "search":
		return RouteSearch
	case "favorites":
		return RouteFavorites
	default:
		return RouteSearch
	}
}

// ParsePath splits a location path into non-empty segments.
func ParsePath(path string) []string {
	return strings.FieldsFunc(path, func(r rune) bool { return r == '/' })
}

// PostRouting emits the events that arriving at r should trigger.
func PostRouting(r Route, o *Orders) {
	if r == RouteFavorites {
		o.Send(Favorites{Event: FetchFavorites{}})
	}
}
