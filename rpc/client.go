// ABOUTME: JSON-over-HTTP client for the six gifbox backend operations.
// ABOUTME: Decodes the tagged response envelope and reports every failure as a wire.Error.
package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/2389-research/gifbox/core"
	"github.com/2389-research/gifbox/wire"
	"github.com/google/uuid"
)

// Ensure Client implements core.API at compile time.
var _ core.API = (*Client)(nil)

const (
	// DefaultTimeout bounds a single request when the caller gives none.
	DefaultTimeout   = 10 * time.Second
	defaultUserAgent = "gifbox/0.1"
	maxResponseBytes = 4 << 20
)

// Client talks to the gifbox API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

// NewClient builds a Client for the API rooted at baseURL, for example
// "http://127.0.0.1:8080/api". A zero timeout uses DefaultTimeout.
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:   base,
		http:      &http.Client{Timeout: timeout},
		userAgent: defaultUserAgent,
	}, nil
}

// BaseURL returns the API root the client posts to.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// Register creates an account and returns its session.
func (c *Client) Register(ctx context.Context, req wire.RegisterRequest) (wire.User, error) {
	return post[wire.User](ctx, c, wire.EndpointRegister, req, "")
}

// Login authenticates and returns a session.
func (c *Client) Login(ctx context.Context, req wire.LoginRequest) (wire.User, error) {
	return post[wire.User](ctx, c, wire.EndpointLogin, req, "")
}

// SearchGiphy searches the upstream provider through the backend.
func (c *Client) SearchGiphy(ctx context.Context, req wire.SearchGiphyRequest, jwt string) (wire.SearchGiphyResponse, error) {
	return post[wire.SearchGiphyResponse](ctx, c, wire.EndpointSearchGiphy, req, jwt)
}

// SaveGif adds a GIF to the caller's favorites.
func (c *Client) SaveGif(ctx context.Context, req wire.SaveGifRequest, jwt string) (wire.SaveGifResponse, error) {
	return post[wire.SaveGifResponse](ctx, c, wire.EndpointSaveGif, req, jwt)
}

// Favorites lists the caller's saved GIFs.
func (c *Client) Favorites(ctx context.Context, jwt string) (wire.FetchFavoritesResponse, error) {
	return post[wire.FetchFavoritesResponse](ctx, c, wire.EndpointFavorites, wire.FetchFavoritesRequest{}, jwt)
}

// Categorize sets the category on one of the caller's saved GIFs.
func (c *Client) Categorize(ctx context.Context, req wire.CategorizeGifRequest, jwt string) (wire.CategorizeGifResponse, error) {
	return post[wire.CategorizeGifResponse](ctx, c, wire.EndpointCategorize, req, jwt)
}

// post sends body to endpoint and unwraps the envelope. The HTTP status is
// ignored; only the envelope says whether the call failed.
func post[T any](ctx context.Context, c *Client, endpoint string, body any, jwt string) (T, error) {
	var zero T
	if c == nil {
		return zero, fmt.Errorf("client is nil: %w", wire.TransportError())
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return zero, fmt.Errorf("encode %s request: %v: %w", endpoint, err, wire.InternalError())
	}
	reqURL := c.baseURL.JoinPath(endpoint)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL.String(), bytes.NewReader(payload))
	if err != nil {
		return zero, fmt.Errorf("create %s request: %v: %w", endpoint, err, wire.TransportError())
	}
	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", requestID)
	if jwt != "" {
		req.Header.Set("Authorization", "bearer "+jwt)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("rpc request failed endpoint=%s request_id=%s err=%v", endpoint, requestID, err)
		return zero, fmt.Errorf("execute %s request: %v: %w", endpoint, err, wire.TransportError())
	}
	defer func() { _ = resp.Body.Close() }()

	var envelope wire.Response[T]
	decoder := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes))
	if err := decoder.Decode(&envelope); err != nil {
		log.Printf("rpc decode failed endpoint=%s request_id=%s status=%d err=%v", endpoint, requestID, resp.StatusCode, err)
		return zero, fmt.Errorf("decode %s response: %v: %w", endpoint, err, wire.InternalError())
	}
	data, err := envelope.Unwrap()
	if err != nil {
		var we wire.Error
		if errors.As(err, &we) {
			log.Printf("rpc error endpoint=%s request_id=%s status=%d description=%q", endpoint, requestID, we.Status, we.Description)
		}
		return zero, err
	}
	return data, nil
}

func parseBaseURL(raw string) (*url.URL, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, fmt.Errorf("api url is empty")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse api url %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("api url %q must use http or https", raw)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("api url %q has no host", raw)
	}
	u.Path = strings.TrimRight(u.Path, "/")
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
