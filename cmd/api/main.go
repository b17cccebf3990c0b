package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/GustaveMAG/vienna-vibe/internal/adapters/cache"
	"github.com/GustaveMAG/vienna-vibe/internal/adapters/openmeteo"
	"github.com/GustaveMAG/vienna-vibe/internal/adapters/rest"
	"github.com/GustaveMAG/vienna-vibe/internal/adapters/spotify"
	"github.com/GustaveMAG/vienna-vibe/internal/adapters/sqlite"
	"github.com/GustaveMAG/vienna-vibe/internal/config"
	"github.com/GustaveMAG/vienna-vibe/internal/core/services"
	"github.com/GustaveMAG/vienna-vibe/internal/scheduler"
	"github.com/GustaveMAG/vienna-vibe/internal/worker"
)

func main() {
	// 1. Configuration (.env + environment)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("FATAL: %v", err)
	}

	// 2. Driven adapters
	// -- Database
	store, err := sqlite.NewAdapter(cfg.StoragePath)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize database: %v", err)
	}
	defer store.Close()

	// -- Weather, behind a short-lived cache
	weatherClient := openmeteo.NewClient(openmeteo.Config{
		BaseURL:   cfg.OpenMeteoURL,
		Latitude:  cfg.Latitude,
		Longitude: cfg.Longitude,
		RateLimit: cfg.WeatherRateLimit,
		Burst:     cfg.WeatherRateBurst,
	})
	weather := cache.NewCachedWeather(weatherClient, cfg.WeatherCacheTTL)

	// -- Spotify
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	httpClient, userAuth, err := spotify.NewAuthenticatedHTTPClient(ctx, spotify.Credentials{
		ClientID:     cfg.SpotifyClientID,
		ClientSecret: cfg.SpotifyClientSecret,
		RefreshToken: cfg.SpotifyRefreshToken,
	})
	if err != nil {
		log.Fatalf("FATAL: Failed to configure Spotify auth: %v", err)
	}
	if !userAuth {
		log.Println("WARN: SPOTIFY_REFRESH_TOKEN not set, playlist creation is disabled")
	}
	catalog := spotify.NewClient(httpClient, cfg.SpotifyAPIURL, spotify.Options{
		UserAuth:     userAuth,
		MaxRetries:   cfg.SpotifyMaxRetries,
		RetryBackoff: cfg.SpotifyRetryBackoff,
	})

	// -- Preview analysis workers
	analyzer := worker.NewPreviewAnalyzer(nil)
	pool := worker.NewPool(store, analyzer.Analyze, cfg.WorkerCount, cfg.WorkerQueue)
	pool.Start()
	defer pool.Stop()

	// 3. Core logic
	svc := services.NewOrchestrator(weather, catalog, store, pool, services.Settings{
		Market:         cfg.Market,
		PlaylistPrefix: cfg.PlaylistPrefix,
		PlaylistFlag:   cfg.PlaylistFlag,
	})

	// -- Periodic vibe snapshots
	if cfg.RefreshEnabled {
		sched := scheduler.New(svc, cfg.RefreshInterval)
		if err := sched.Start(); err != nil {
			log.Fatalf("FATAL: Failed to start scheduler: %v", err)
		}
		defer sched.Stop()
	}

	// 4. Driving adapter
	handler := rest.NewHandler(svc)

	// 5. Start the server
	log.Println("------------------------------------------------")
	log.Printf("🎶 Vienna Vibe API is running on http://localhost:%s (%s)", cfg.Port, cfg.LocationName)
	log.Println("------------------------------------------------")

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 15 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		err := srv.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			serverErr <- err
			return
		}
		serverErr <- nil
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			log.Printf("server error: %v", err)
		}
	case <-ctx.Done():
		log.Println("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown error: %v", err)
		}
	}

	hits, misses := weather.Stats()
	log.Printf("weather cache: %d hits, %d misses", hits, misses)
}
