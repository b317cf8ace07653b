package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"polylinegpx/internal/api"
	"polylinegpx/internal/config"
	"polylinegpx/internal/metrics"
	"polylinegpx/internal/postgres"
	"polylinegpx/internal/redis"
	"polylinegpx/internal/service/cache"
	"polylinegpx/internal/service/conversion"
	"polylinegpx/internal/service/track"
	"polylinegpx/internal/worker"
)

var configDir string

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP conversion API",
		Long:  `Serve the conversion API. Configuration is read from .env.<APP_ENV> and the environment.`,
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
	cmd.Flags().StringVar(&configDir, "config-dir", ".", "Directory holding the .env.<APP_ENV> file")
	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	// Load configuration
	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	gin.SetMode(cfg.GinMode)

	collector, err := metrics.NewCollector(nil)
	if err != nil {
		return fmt.Errorf("failed to register metrics: %w", err)
	}

	// Initialize cache and track store
	gpxCache, err := initializeCache(cfg)
	if err != nil {
		return err
	}
	defer redis.Close()

	repo, err := initializeTrackStore(cfg)
	if err != nil {
		return err
	}
	defer postgres.Close()

	conv := conversion.NewConversionService(gpxCache, collector, cfg.PolylinePrecision)
	tracks := track.NewTrackService(repo, conv)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Start background workers
	worker.StartAllWorkers(ctx, gpxCache)

	return runAPIServer(ctx, cfg, conv, tracks, collector)
}

func initializeCache(cfg config.Config) (cache.Cache, error) {
	if cfg.RedisUrl == "" {
		log.Println("REDIS_URL is not set, using in-memory GPX cache")
		return cache.NewMemoryCache(cfg.CacheTTL), nil
	}
	if _, err := redis.Init(cfg.RedisUrl); err != nil {
		return nil, err
	}
	return cache.NewRedisCache(cfg.CacheTTL), nil
}

func initializeTrackStore(cfg config.Config) (track.Repository, error) {
	if cfg.DBUrl == "" {
		log.Println("DB_URL is not set, saved tracks are kept in memory")
		return track.NewMemoryRepository(), nil
	}
	db, err := postgres.Init(cfg.DBUrl)
	if err != nil {
		return nil, err
	}
	return postgres.NewTrackRepository(db), nil
}

func runAPIServer(ctx context.Context, cfg config.Config, conv *conversion.ConversionService, tracks *track.TrackService, collector *metrics.Collector) error {
	// Initialize Gin router
	r := gin.Default()

	// Configure API routes
	info := map[string]string{
		"port":  cfg.Port,
		"cache": cfg.CacheBackend(),
		"store": cfg.StoreBackend(),
	}
	api.SetupRouter(r, info, conv, tracks, collector)

	srv := &http.Server{
		Addr:              cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		log.Println("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("Server shutdown failed: %v", err)
		}
	}()

	log.Printf("Server listening on %s", cfg.Port)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}
