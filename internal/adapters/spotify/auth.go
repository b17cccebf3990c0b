package spotify

import (
	"context"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

const (
	defaultAuthURL  = "https://accounts.spotify.com/authorize"
	defaultTokenURL = "https://accounts.spotify.com/api/token"
)

// Credentials are the application keys plus an optional user refresh token.
type Credentials struct {
	ClientID     string
	ClientSecret string
	RefreshToken string
	// TokenURL overrides the accounts service endpoint.
	TokenURL string
}

// NewAuthenticatedHTTPClient returns an HTTP client that attaches bearer
// tokens to every request. With a refresh token the client acts on behalf of
// that user; otherwise it uses the client credentials grant and the second
// return value is false.
func NewAuthenticatedHTTPClient(ctx context.Context, creds Credentials) (*http.Client, bool, error) {
	if creds.ClientID == "" || creds.ClientSecret == "" {
		return nil, false, fmt.Errorf("spotify adapter: client id and secret are required")
	}

	tokenURL := creds.TokenURL
	if tokenURL == "" {
		tokenURL = defaultTokenURL
	}

	if creds.RefreshToken != "" {
		cfg := &oauth2.Config{
			ClientID:     creds.ClientID,
			ClientSecret: creds.ClientSecret,
			Endpoint: oauth2.Endpoint{
				AuthURL:   defaultAuthURL,
				TokenURL:  tokenURL,
				AuthStyle: oauth2.AuthStyleInHeader,
			},
			Scopes: []string{"playlist-modify-public", "playlist-modify-private"},
		}
		ts := cfg.TokenSource(ctx, &oauth2.Token{RefreshToken: creds.RefreshToken})
		return oauth2.NewClient(ctx, ts), true, nil
	}

	cfg := &clientcredentials.Config{
		ClientID:     creds.ClientID,
		ClientSecret: creds.ClientSecret,
		TokenURL:     tokenURL,
		AuthStyle:    oauth2.AuthStyleInHeader,
	}
	return cfg.Client(ctx), false, nil
}
