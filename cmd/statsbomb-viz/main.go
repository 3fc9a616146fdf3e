package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/esanchezmex/statsbomb-viz/internal/cache"
	"github.com/esanchezmex/statsbomb-viz/internal/config"
	"github.com/esanchezmex/statsbomb-viz/internal/handlers"
	"github.com/esanchezmex/statsbomb-viz/internal/statsbomb"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {
	// .env is optional; real config comes from the environment
	godotenv.Load()

	cfg := config.Load()

	store, err := buildStore(cfg)
	if err != nil {
		fmt.Printf("✗ Cache setup error: %v\n", err)
		os.Exit(1)
	}

	client := statsbomb.New(cfg.Source.BaseURL, cfg.Source.Timeout, store)
	handler := handlers.NewHandler(client)

	// Create router
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	// Routes
	r.Get("/", handler.Dashboard)
	r.Get("/health", handler.HealthCheck)
	r.Get("/api/v1/competitions", handler.GetCompetitions)
	r.Get("/api/v1/competitions/{competitionID}/seasons/{seasonID}/matches", handler.GetMatches)
	r.Get("/api/v1/matches/{matchID}/events", handler.GetEvents)
	r.Get("/api/v1/matches/{matchID}/lineups", handler.GetLineups)
	r.Get("/api/v1/matches/{matchID}/stats/teams", handler.GetTeamStats)
	r.Get("/api/v1/matches/{matchID}/stats/players", handler.GetPlayerStats)
	r.Get("/api/v1/matches/{matchID}/charts/timeline", handler.GetTimeline)
	r.Get("/api/v1/matches/{matchID}/charts/team-breakdown", handler.GetTeamBreakdown)
	r.Get("/api/v1/matches/{matchID}/charts/player-breakdown", handler.GetPlayerBreakdown)
	r.Get("/api/v1/matches/{matchID}/charts/heatmap", handler.GetHeatmap)
	r.Get("/api/v1/matches/{matchID}/charts/radar", handler.GetRadar)

	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	// Start server in goroutine
	go func() {
		fmt.Printf("✓ StatsBomb Viz started on %s\n", cfg.Server.Addr)
		fmt.Printf("  Data source: %s\n", cfg.Source.BaseURL)
		fmt.Printf("  Fetch timeout: %s\n", cfg.Source.Timeout)
		if cfg.Cache.RedisURL != "" {
			fmt.Printf("  Cache: redis (%s), TTL %s\n", cfg.Cache.RedisURL, cfg.Cache.TTL)
		} else {
			fmt.Printf("  Cache: %s/, TTL %s\n", cfg.Cache.Dir, cfg.Cache.TTL)
		}
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Printf("✗ Server error: %v\n", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	fmt.Println("\n✓ Shutting down gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		fmt.Printf("✗ Shutdown error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("✓ StatsBomb Viz stopped")
}

// buildStore selects the response cache backend: Redis when REDIS_URL is
// set, otherwise JSON files under the cache dir.
func buildStore(cfg *config.Config) (cache.Store, error) {
	if cfg.Cache.RedisURL == "" {
		return cache.NewFileStore(cfg.Cache.Dir, cfg.Cache.TTL)
	}

	opts, err := redis.ParseURL(cfg.Cache.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("parsing redis URL: %w", err)
	}
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connecting to redis: %w", err)
	}

	return cache.NewRedisStore(client, cfg.Cache.TTL), nil
}
