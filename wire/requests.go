// ABOUTME: Request and response bodies for the six backend operations.
// ABOUTME: Endpoint names are exported so the client and the fake backend agree on paths.
package wire

// Endpoint names, relative to the API base URL.
const (
	EndpointRegister    = "register"
	EndpointLogin       = "login"
	EndpointSearchGiphy = "search_giphy"
	EndpointSaveGif     = "save_gif"
	EndpointFavorites   = "favorites"
	EndpointCategorize  = "categorize"
)

// RegisterRequest creates a new account.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest authenticates an existing account.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SearchGiphyRequest searches the upstream provider.
type SearchGiphyRequest struct {
	Query string `json:"query"`
}

// SearchGiphyResponse lists matching GIFs in provider order.
type SearchGiphyResponse struct {
	Gifs []Gif `json:"gifs"`
}

// SaveGifRequest saves a GIF to the caller's favorites.
type SaveGifRequest struct {
	ID string `json:"id"`
}

// SaveGifResponse carries the saved GIF.
type SaveGifResponse struct {
	Gif Gif `json:"gif"`
}

// FetchFavoritesRequest has no fields; the caller is identified by the JWT.
type FetchFavoritesRequest struct{}

// FetchFavoritesResponse lists the caller's saved GIFs.
type FetchFavoritesResponse struct {
	Gifs []Gif `json:"gifs"`
}

// CategorizeGifRequest sets the category of a saved GIF.
type CategorizeGifRequest struct {
	ID       string `json:"id"`
	Category string `json:"category"`
}

// CategorizeGifResponse carries the updated GIF.
type CategorizeGifResponse struct {
	Gif Gif `json:"gif"`
}
