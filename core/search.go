// ABOUTME: Search reducer: runs queries against the backend and saves results to favorites.
// ABOUTME: Saving is tracked per GIF id so concurrent saves never share state.
package core

func reduceSearch(ev SearchEvent, m *Model, o *Orders) {
	s := &m.Search
	switch e := ev.(type) {
	case UpdateQuery:
		s.Query = e.Value

	case SubmitSearch:
		if !m.Authenticated() {
			o.Send(Logout{})
			return
		}
		s.Error = ""
		s.Results = newGifMap()
		s.HasSearchRequest = true
		o.Perform(SearchCommand{Query: s.Query, JWT: m.User.JWT})

	case SearchSucceeded:
		if !m.CurrentSession(e.JWT) {
			o.Skip()
			return
		}
		s.HasSearchRequest = false
		mergeGifs(s.Results, e.Gifs...)

	case SearchFailed:
		if !m.CurrentSession(e.JWT) {
			o.Skip()
			return
		}
		s.HasSearchRequest = false
		if follow, ok := HandleCommonErrors(e.Err); ok {
			o.Send(follow)
			return
		}
		s.Error = e.Err.Description

	case SaveGif:
		if !m.Authenticated() {
			o.Send(Logout{})
			return
		}
		if s.Saving.Has(e.ID) {
			o.Skip()
			return
		}
		s.Saving.Add(e.ID)
		s.SaveError = ""
		o.Perform(SaveGifCommand{ID: e.ID, JWT: m.User.JWT})

	case SaveGifSucceeded:
		if !m.CurrentSession(e.JWT) {
			o.Skip()
			return
		}
		s.Saving.Remove(e.Gif.ID)
		o.Send(FavoriteSaved{Gif: e.Gif})

	case SaveGifFailed:
		if !m.CurrentSession(e.JWT) {
			o.Skip()
			return
		}
		s.Saving.Remove(e.ID)
		if follow, ok := HandleCommonErrors(e.Err); ok {
			o.Send(follow)
			return
		}
		s.SaveError = e.Err.Description

	default:
		o.Skip()
	}
}
