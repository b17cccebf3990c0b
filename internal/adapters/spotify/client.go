package spotify

import (
	"net/http"
	"strings"
	"time"

	"github.com/GustaveMAG/vienna-vibe/internal/core/ports"
)

// DefaultBaseURL is the Spotify Web API root.
const DefaultBaseURL = "https://api.spotify.com/v1"

// Options tunes a Client.
type Options struct {
	// UserAuth reports whether the HTTP client carries a user token. Without
	// one only catalog reads are possible.
	UserAuth     bool
	MaxRetries   int
	RetryBackoff time.Duration
}

// Client is an HTTP client for the Spotify adapter.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	userAuth    bool
	maxRetries  int
	baseBackoff time.Duration
}

// compile-time interface assertion
var _ ports.CatalogProvider = (*Client)(nil)

// NewClient constructs a new Spotify client. httpClient is expected to add
// the Authorization header, see NewAuthenticatedHTTPClient.
func NewClient(httpClient *http.Client, baseURL string, opts Options) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient:  httpClient,
		baseURL:     strings.TrimRight(baseURL, "/"),
		userAuth:    opts.UserAuth,
		maxRetries:  opts.MaxRetries,
		baseBackoff: opts.RetryBackoff,
	}
}
