package spotify_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GustaveMAG/vienna-vibe/internal/adapters/spotify"
)

func TestNewAuthenticatedHTTPClient(t *testing.T) {
	tests := []struct {
		name         string
		refreshToken string
		wantGrant    string
		wantUserAuth bool
	}{
		{name: "client credentials", wantGrant: "client_credentials"},
		{name: "refresh token", refreshToken: "refresh-1", wantGrant: "refresh_token", wantUserAuth: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var grant string
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				switch r.URL.Path {
				case "/api/token":
					if user, _, ok := r.BasicAuth(); !ok || user != "id" {
						t.Errorf("expected basic auth with client id")
					}
					r.ParseForm()
					grant = r.PostForm.Get("grant_type")
					w.Header().Set("Content-Type", "application/json")
					io.WriteString(w, `{"access_token":"tok-1","token_type":"Bearer","expires_in":3600}`)
				case "/v1/me":
					if got := r.Header.Get("Authorization"); got != "Bearer tok-1" {
						t.Errorf("Authorization: got %q", got)
					}
					io.WriteString(w, `{"id":"u"}`)
				}
			}))
			defer ts.Close()

			httpClient, userAuth, err := spotify.NewAuthenticatedHTTPClient(context.Background(), spotify.Credentials{
				ClientID:     "id",
				ClientSecret: "secret",
				RefreshToken: tt.refreshToken,
				TokenURL:     ts.URL + "/api/token",
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if userAuth != tt.wantUserAuth {
				t.Fatalf("userAuth: got %v, want %v", userAuth, tt.wantUserAuth)
			}

			resp, err := httpClient.Get(ts.URL + "/v1/me")
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			resp.Body.Close()

			if grant != tt.wantGrant {
				t.Fatalf("grant_type: got %q, want %q", grant, tt.wantGrant)
			}
		})
	}
}

func TestNewAuthenticatedHTTPClient_MissingKeys(t *testing.T) {
	if _, _, err := spotify.NewAuthenticatedHTTPClient(context.Background(), spotify.Credentials{ClientID: "id"}); err == nil {
		t.Fatal("expected error without client secret")
	}
}
