// ABOUTME: Favorites reducer: lists saved GIFs, tracks category drafts, and commits categories.
// ABOUTME: FilterFavorites is the pure view-side filter over the stored favorites.
package core

import (
	"strings"

	"github.com/2389-research/gifbox/wire"
)

func reduceFavorites(ev FavoritesEvent, m *Model, o *Orders) {
	s := &m.Favorites
	switch e := ev.(type) {
	case FetchFavorites:
		if !m.Authenticated() {
			o.Send(Logout{})
			return
		}
		s.IsFetchingFavorites = true
		s.FetchError = nil
		o.Perform(FetchFavoritesCommand{JWT: m.User.JWT})

	case FetchFavoritesSucceeded:
		if !m.CurrentSession(e.JWT) {
			o.Skip()
			return
		}
		s.IsFetchingFavorites = false
		mergeGifs(s.Favorites, e.Gifs...)

	case FetchFavoritesFailed:
		if !m.CurrentSession(e.JWT) {
			o.Skip()
			return
		}
		s.IsFetchingFavorites = false
		if follow, ok := HandleCommonErrors(e.Err); ok {
			o.Send(follow)
			return
		}
		err := e.Err
		s.FetchError = &err

	case UpdateFilter:
		s.Filter = e.Value

	case UpdateCategory:
		if e.Value == "" {
			delete(s.CategoryUpdates, e.ID)
		} else {
			s.CategoryUpdates[e.ID] = e.Value
		}

	case Categorize:
		category, pending := s.CategoryUpdates[e.ID]
		if !m.Authenticated() || !pending || s.SavingCategory.Has(e.ID) {
			o.Skip()
			return
		}
		s.SavingCategory.Add(e.ID)
		s.CategorizeError = ""
		o.Perform(CategorizeCommand{ID: e.ID, Category: category, JWT: m.User.JWT})

	case CategorizeSucceeded:
		if !m.CurrentSession(e.JWT) {
			o.Skip()
			return
		}
		s.SavingCategory.Remove(e.Gif.ID)
		delete(s.CategoryUpdates, e.Gif.ID)
		mergeGifs(s.Favorites, e.Gif)

	case CategorizeFailed:
		if !m.CurrentSession(e.JWT) {
			o.Skip()
			return
		}
		s.SavingCategory.Remove(e.ID)
		if follow, ok := HandleCommonErrors(e.Err); ok {
			o.Send(follow)
			return
		}
		s.CategorizeError = e.Err.Description

	default:
		o.Skip()
	}
}

// FilterFavorites returns the favorites whose category contains the filter,
// in stored order. An empty filter matches everything; a GIF without a
// category never matches a non-empty filter.
func FilterFavorites(s FavoritesState) []wire.Gif {
	all := s.Favorites.Values()
	if s.Filter == "" {
		return all
	}
	out := make([]wire.Gif, 0, len(all))
	for _, g := range all {
		if g.Category != nil && strings.Contains(*g.Category, s.Filter) {
			out = append(out, g)
		}
	}
	return out
}
