// ABOUTME: Domain records shared by the client and the API: Gif and User.
// ABOUTME: JSON field names match the backend's snake_case wire format.
package wire

// Gif is a single GIF as returned by the backend. Identity is ID, which is
// the opaque id assigned by the upstream GIF provider.
type Gif struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	URL      string  `json:"url"`
	IsSaved  bool    `json:"is_saved"`
	Category *string `json:"category"`
}

// CategoryOr returns the GIF's category, or def when it has none.
func (g Gif) CategoryOr(def string) string {
	if g.Category == nil {
		return def
	}
	return *g.Category
}

// User is an authenticated session. It is replaced wholesale on login,
// registration and logout, never edited in place.
type User struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	JWT   string `json:"jwt"`
}
