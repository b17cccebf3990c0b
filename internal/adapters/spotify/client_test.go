package spotify_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/GustaveMAG/vienna-vibe/internal/adapters/spotify"
	"github.com/GustaveMAG/vienna-vibe/internal/core/domain"
	"github.com/GustaveMAG/vienna-vibe/internal/core/ports"
)

// --- Helpers ---

func newTestClient(ts *httptest.Server, userAuth bool) *spotify.Client {
	return spotify.NewClient(ts.Client(), ts.URL, spotify.Options{
		UserAuth:     userAuth,
		MaxRetries:   2,
		RetryBackoff: time.Millisecond,
	})
}

func compareTracks(t *testing.T, got, want domain.Track) {
	t.Helper()

	if got.ID != want.ID {
		t.Errorf("ID: got %v, want %v", got.ID, want.ID)
	}
	if got.URI != want.URI {
		t.Errorf("URI: got %v, want %v", got.URI, want.URI)
	}
	if got.Title != want.Title {
		t.Errorf("Title: got %v, want %v", got.Title, want.Title)
	}
	if got.Artist != want.Artist {
		t.Errorf("Artist: got %v, want %v", got.Artist, want.Artist)
	}
	if got.CoverURL != want.CoverURL {
		t.Errorf("CoverURL: got %v, want %v", got.CoverURL, want.CoverURL)
	}
	if got.PreviewURL != want.PreviewURL {
		t.Errorf("PreviewURL: got %v, want %v", got.PreviewURL, want.PreviewURL)
	}
	if got.ISRC != want.ISRC {
		t.Errorf("ISRC: got %v, want %v", got.ISRC, want.ISRC)
	}
	if got.DurationMs != want.DurationMs {
		t.Errorf("DurationMs: got %v, want %v", got.DurationMs, want.DurationMs)
	}
}

const searchBody = `{
	"tracks": {
		"items": [
			{
				"id": "1",
				"uri": "spotify:track:1",
				"name": "Test Track",
				"duration_ms": 200000,
				"preview_url": "https://p.scdn.co/mp3-preview/1",
				"artists": [ { "name": "Test Artist" }, { "name": "Guest" } ],
				"album": {
					"name": "Test Album",
					"images": [ { "url": "http://img.com/1.jpg" } ]
				},
				"external_ids": { "isrc": "US1234567890" }
			},
			{ "id": "", "name": "local file" }
		]
	}
}`

// --- Tests ---

func TestSearchTracks(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search" {
			t.Errorf("Expected URL path /search, got %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("q") != `genre:"jazz"` || q.Get("type") != "track" || q.Get("limit") != "50" || q.Get("market") != "AT" {
			t.Errorf("unexpected query: %v", q)
		}
		w.Write([]byte(searchBody))
	}))
	defer ts.Close()

	tracks, err := newTestClient(ts, false).SearchTracks(context.Background(), `genre:"jazz"`, "AT", 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tracks) != 1 {
		t.Fatalf("expected 1 track, got %d", len(tracks))
	}

	compareTracks(t, tracks[0], domain.Track{
		ID:         "1",
		URI:        "spotify:track:1",
		Title:      "Test Track",
		Artist:     "Test Artist, Guest",
		CoverURL:   "http://img.com/1.jpg",
		PreviewURL: "https://p.scdn.co/mp3-preview/1",
		DurationMs: 200000,
		ISRC:       "US1234567890",
	})
}

func TestSearchTracks_Errors(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		status int
	}{
		{name: "empty query", query: "", status: http.StatusOK},
		{name: "bad request", query: `genre:"x"`, status: http.StatusBadRequest},
		{name: "server keeps failing", query: `genre:"x"`, status: http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer ts.Close()

			if _, err := newTestClient(ts, false).SearchTracks(context.Background(), tt.query, "AT", 10); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestGetTracks_BatchesAndSkipsNulls(t *testing.T) {
	var calls int
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		ids := strings.Split(r.URL.Query().Get("ids"), ",")
		if len(ids) > 50 {
			t.Errorf("batch too large: %d", len(ids))
		}
		resp := map[string][]any{"tracks": {}}
		for _, id := range ids {
			if id == "gone" {
				resp["tracks"] = append(resp["tracks"], nil)
				continue
			}
			resp["tracks"] = append(resp["tracks"], map[string]any{"id": id, "name": "T" + id})
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer ts.Close()

	ids := make([]string, 0, 61)
	for i := 0; i < 60; i++ {
		ids = append(ids, string(rune('a'+i%26))+strings.Repeat("x", i/26))
	}
	ids = append(ids, "gone")

	tracks, err := newTestClient(ts, false).GetTracks(context.Background(), ids)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 2 {
		t.Errorf("calls: got %d, want 2", calls)
	}
	if len(tracks) != 60 {
		t.Fatalf("tracks: got %d, want 60", len(tracks))
	}
	if tracks[0].URI != "spotify:track:"+ids[0] {
		t.Errorf("URI fallback: got %q", tracks[0].URI)
	}
}

func TestGetAudioFeatures(t *testing.T) {
	tests := []struct {
		name          string
		status        int
		body          string
		wantReal      bool
		wantFallbacks []string
	}{
		{
			name:     "real features",
			status:   http.StatusOK,
			body:     `{"audio_features":[{"id":"a","energy":0.7,"valence":0.2,"tempo":128},{"id":"b","energy":0.1}]}`,
			wantReal: true,
		},
		{
			name:          "forbidden falls back",
			status:        http.StatusForbidden,
			wantFallbacks: []string{"a", "b"},
		},
		{
			name:          "null and zero entries fall back",
			status:        http.StatusOK,
			body:          `{"audio_features":[{"id":"a","energy":0.7,"valence":0.2,"tempo":128},null]}`,
			wantReal:      true,
			wantFallbacks: []string{"b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/audio-features" {
					t.Errorf("unexpected path %s", r.URL.Path)
				}
				w.WriteHeader(tt.status)
				io.WriteString(w, tt.body)
			}))
			defer ts.Close()

			client := newTestClient(ts, false)
			got, err := client.GetAudioFeatures(context.Background(), []string{"a", "b"})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != 2 {
				t.Fatalf("expected features for both ids, got %v", got)
			}
			if tt.wantReal && got["a"].Energy != 0.7 {
				t.Errorf("a: expected real energy 0.7, got %v", got["a"].Energy)
			}

			// fallback values must be stable across calls
			again, err := client.GetAudioFeatures(context.Background(), []string{"a", "b"})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			for _, id := range tt.wantFallbacks {
				f := got[id]
				if f != again[id] {
					t.Errorf("%s: fallback not deterministic", id)
				}
				if f.Tempo < 60 || f.Tempo > 180 || f.Energy < 0.1 || f.Energy > 0.9 {
					t.Errorf("%s: fallback out of range: %+v", id, f)
				}
			}
		})
	}
}

func TestCreatePlaylistAndAddTracks(t *testing.T) {
	var created map[string]any
	var added [][]string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/me":
			io.WriteString(w, `{"id":"user-1","display_name":"Anna"}`)
		case r.Method == http.MethodPost && r.URL.Path == "/users/user-1/playlists":
			json.NewDecoder(r.Body).Decode(&created)
			w.WriteHeader(http.StatusCreated)
			io.WriteString(w, `{"id":"pl-1","name":"Vienna Vibe: Rain","external_urls":{"spotify":"https://open.spotify.com/playlist/pl-1"}}`)
		case r.Method == http.MethodPost && r.URL.Path == "/playlists/pl-1/tracks":
			var body struct {
				URIs []string `json:"uris"`
			}
			json.NewDecoder(r.Body).Decode(&body)
			added = append(added, body.URIs)
			w.WriteHeader(http.StatusCreated)
			io.WriteString(w, `{"snapshot_id":"s"}`)
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer ts.Close()

	client := newTestClient(ts, true)
	ctx := context.Background()

	user, err := client.CurrentUser(ctx)
	if err != nil {
		t.Fatalf("CurrentUser: %v", err)
	}
	if user.ID != "user-1" || user.DisplayName != "Anna" {
		t.Fatalf("unexpected user %+v", user)
	}

	pl, err := client.CreatePlaylist(ctx, user.ID, "Vienna Vibe: Rain", "Weather: Rain", true)
	if err != nil {
		t.Fatalf("CreatePlaylist: %v", err)
	}
	if pl.ID != "pl-1" || pl.URL != "https://open.spotify.com/playlist/pl-1" {
		t.Fatalf("unexpected playlist %+v", pl)
	}
	if created["name"] != "Vienna Vibe: Rain" || created["public"] != true || created["description"] != "Weather: Rain" {
		t.Fatalf("unexpected create body %v", created)
	}

	uris := make([]string, 150)
	for i := range uris {
		uris[i] = "spotify:track:x"
	}
	if err := client.AddTracks(ctx, pl.ID, uris); err != nil {
		t.Fatalf("AddTracks: %v", err)
	}
	if len(added) != 2 || len(added[0]) != 100 || len(added[1]) != 50 {
		t.Fatalf("unexpected batches: %d", len(added))
	}
}

func TestUserOperations_RequireUserToken(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("no request expected, got %s", r.URL.Path)
	}))
	defer ts.Close()

	client := newTestClient(ts, false)
	ctx := context.Background()

	if _, err := client.CurrentUser(ctx); !errors.Is(err, ports.ErrCatalogUnavailable) {
		t.Errorf("CurrentUser: expected ErrCatalogUnavailable, got %v", err)
	}
	if _, err := client.CreatePlaylist(ctx, "u", "n", "d", true); !errors.Is(err, ports.ErrCatalogUnavailable) {
		t.Errorf("CreatePlaylist: expected ErrCatalogUnavailable, got %v", err)
	}
	if err := client.AddTracks(ctx, "p", []string{"x"}); !errors.Is(err, ports.ErrCatalogUnavailable) {
		t.Errorf("AddTracks: expected ErrCatalogUnavailable, got %v", err)
	}
}

func TestCurrentUser_RevokedToken(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer ts.Close()

	_, err := newTestClient(ts, true).CurrentUser(context.Background())
	if !errors.Is(err, ports.ErrCatalogUnavailable) {
		t.Fatalf("expected ErrCatalogUnavailable, got %v", err)
	}
}
