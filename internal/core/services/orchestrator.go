package services

import (
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/GustaveMAG/vienna-vibe/internal/core/domain"
	"github.com/GustaveMAG/vienna-vibe/internal/core/ports"
)

// Settings carries the catalog-facing knobs of the service.
type Settings struct {
	Market         string
	PlaylistPrefix string
	PlaylistFlag   string
}

// Orchestrator coordinates the weather provider, the mood mapper, the music
// catalog and local storage.
type Orchestrator struct {
	weather  ports.WeatherProvider
	catalog  ports.CatalogProvider
	store    ports.Store
	previews ports.PreviewAnalyzer
	settings Settings

	now     func() time.Time
	newID   func() string
	shuffle func([]domain.Track)
}

// NewOrchestrator constructs an Orchestrator. previews may be nil.
func NewOrchestrator(weather ports.WeatherProvider, catalog ports.CatalogProvider, store ports.Store, previews ports.PreviewAnalyzer, settings Settings) *Orchestrator {
	if settings.Market == "" {
		settings.Market = "AT"
	}
	if settings.PlaylistPrefix == "" {
		settings.PlaylistPrefix = "Vienna Vibe"
	}
	if settings.PlaylistFlag == "" {
		settings.PlaylistFlag = "🇦🇹"
	}
	return &Orchestrator{
		weather:  weather,
		catalog:  catalog,
		store:    store,
		previews: previews,
		settings: settings,
		now:      time.Now,
		newID:    uuid.NewString,
		shuffle:  shuffleTracks,
	}
}

func shuffleTracks(tracks []domain.Track) {
	// #nosec G404 -- playlist order only, not security-sensitive
	rand.Shuffle(len(tracks), func(i, j int) {
		tracks[i], tracks[j] = tracks[j], tracks[i]
	})
}
