package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gallery-service/internal/adapters/primary/http/handlers"
	"gallery-service/internal/adapters/primary/http/middleware"
	"gallery-service/internal/adapters/secondary/gitrepo"
	"gallery-service/internal/adapters/secondary/postgres"
	"gallery-service/internal/adapters/secondary/yamlcatalog"
	"gallery-service/internal/config"
	ports "gallery-service/internal/core/ports/output"
	"gallery-service/internal/core/services"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	initLogger(cfg)

	// Exhibit catalog
	var (
		catalog ports.ExhibitCatalog
		pool    *pgxpool.Pool
	)
	switch cfg.Gallery.CatalogBackend {
	case config.CatalogBackendPostgres:
		pool, err = newPool(cfg)
		if err != nil {
			log.Fatalf("database: %v", err)
		}
		defer pool.Close()

		repo := postgres.NewExhibitCatalogRepository(pool)
		if err := repo.EnsureSchema(context.Background()); err != nil {
			log.Fatalf("ensure schema: %v", err)
		}
		if cfg.Gallery.SeedFromFile {
			if err := seedCatalog(context.Background(), repo, cfg.Gallery.ExhibitsFile); err != nil {
				log.Fatalf("seed catalog: %v", err)
			}
		}
		catalog = repo
		log.Info("using postgres exhibit catalog")
	default:
		catalog = yamlcatalog.NewCatalog(cfg.Gallery.ExhibitsFile)
		log.Infof("using exhibit catalog file %s", cfg.Gallery.ExhibitsFile)
	}

	// Git checkouts serve as both inspector and syncer
	git := gitrepo.NewClient(&cfg.Git)

	gallerySvc := services.NewGalleryService(catalog, git, git, services.GallerySettings{
		Title:                      cfg.Gallery.Title,
		Destination:                cfg.Gallery.Destination,
		HideGalleryWithoutExhibits: cfg.Gallery.HideGalleryWithoutExhibits,
	})

	h := handlers.New(gallerySvc)

	// Setup router
	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logging(), middleware.Metrics(), gin.Recovery())

	api := router.Group("/" + cfg.Gallery.Namespace)
	h.RegisterRoutes(api)

	router.GET("/healthz", func(c *gin.Context) {
		if pool != nil {
			if err := pool.Ping(c.Request.Context()); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": err.Error()})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if cfg.Metrics.Enabled {
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		log.Infof("starting gallery server on %s (namespace /%s)", addr, cfg.Gallery.Namespace)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced shutdown: %v", err)
	}

	log.Info("server stopped")
}

func newPool(cfg *config.Config) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.Database.DSN())
	if err != nil {
		return nil, fmt.Errorf("parse db config: %w", err)
	}
	poolCfg.MaxConns = int32(cfg.Database.MaxOpenConns)
	poolCfg.MinConns = int32(cfg.Database.MaxIdleConns)
	poolCfg.MaxConnLifetime = cfg.Database.ConnMaxLifetime

	pool, err := pgxpool.NewWithConfig(context.Background(), poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create db pool: %w", err)
	}
	if err := pool.Ping(context.Background()); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}
	log.Info("database connection established")
	return pool, nil
}

// seedCatalog loads the exhibits file into an empty table.
func seedCatalog(ctx context.Context, repo *postgres.ExhibitCatalogRepo, path string) error {
	count, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		log.Debugf("catalog already holds %d exhibits, skipping seed", count)
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	sources, err := yamlcatalog.Parse(data)
	if err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	if err := repo.Replace(ctx, sources); err != nil {
		return err
	}
	log.Infof("seeded catalog with %d exhibits from %s", len(sources), path)
	return nil
}

func initLogger(cfg *config.Config) {
	level, err := log.ParseLevel(cfg.Logger.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Logger.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}
