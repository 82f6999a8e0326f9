package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	CatalogBackendYAML     = "yaml"
	CatalogBackendPostgres = "postgres"
)

type Config struct {
	Server   ServerConfig
	Gallery  GalleryConfig
	Git      GitConfig
	Database DatabaseConfig
	Metrics  MetricsConfig
	Logger   LoggerConfig
}

type ServerConfig struct {
	Host string
	Port int
}

type GalleryConfig struct {
	Namespace                  string
	Title                      string
	Destination                string
	HideGalleryWithoutExhibits bool
	CatalogBackend             string
	ExhibitsFile               string
	SeedFromFile               bool
}

type GitConfig struct {
	Timeout      time.Duration
	CheckUpdates bool
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode)
}

type MetricsConfig struct {
	Enabled bool
}

type LoggerConfig struct {
	Level  string
	Format string
}

func Load() (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("GALLERY_ENV_FILE", ".env")
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("GALLERY_NAMESPACE", "jupyterlab-gallery")
	v.SetDefault("GALLERY_TITLE", "Gallery")
	v.SetDefault("GALLERY_DESTINATION", "gallery")
	v.SetDefault("GALLERY_HIDE_WITHOUT_EXHIBITS", false)
	v.SetDefault("GALLERY_CATALOG_BACKEND", CatalogBackendYAML)
	v.SetDefault("GALLERY_EXHIBITS_FILE", "exhibits.yaml")
	v.SetDefault("GALLERY_SEED_FROM_FILE", false)
	v.SetDefault("GALLERY_CHECK_UPDATES", true)
	v.SetDefault("GIT_TIMEOUT", "60s")
	v.SetDefault("DATABASE_HOST", "localhost")
	v.SetDefault("DATABASE_PORT", 5432)
	v.SetDefault("DATABASE_USER", "postgres")
	v.SetDefault("DATABASE_PASSWORD", "")
	v.SetDefault("DATABASE_NAME", "gallery")
	v.SetDefault("DATABASE_SSLMODE", "disable")
	v.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	v.SetDefault("DATABASE_MAX_IDLE_CONNS", 2)
	v.SetDefault("DATABASE_CONN_MAX_LIFETIME", "30m")
	v.SetDefault("METRICS_ENABLED", true)
	v.SetDefault("LOGGER_LEVEL", "info")
	v.SetDefault("LOGGER_FORMAT", "json")

	// Env
	v.AutomaticEnv()

	// A missing .env file is fine; variables already set in the
	// environment win over the file.
	_ = godotenv.Load(v.GetString("GALLERY_ENV_FILE"))

	gitTimeout := durationOrDefault(v, "GIT_TIMEOUT", 60*time.Second)
	connLifetime := durationOrDefault(v, "DATABASE_CONN_MAX_LIFETIME", 30*time.Minute)

	cfg := &Config{
		Server: ServerConfig{
			Host: v.GetString("SERVER_HOST"),
			Port: v.GetInt("SERVER_PORT"),
		},
		Gallery: GalleryConfig{
			Namespace:                  v.GetString("GALLERY_NAMESPACE"),
			Title:                      v.GetString("GALLERY_TITLE"),
			Destination:                v.GetString("GALLERY_DESTINATION"),
			HideGalleryWithoutExhibits: v.GetBool("GALLERY_HIDE_WITHOUT_EXHIBITS"),
			CatalogBackend:             v.GetString("GALLERY_CATALOG_BACKEND"),
			ExhibitsFile:               v.GetString("GALLERY_EXHIBITS_FILE"),
			SeedFromFile:               v.GetBool("GALLERY_SEED_FROM_FILE"),
		},
		Git: GitConfig{
			Timeout:      gitTimeout,
			CheckUpdates: v.GetBool("GALLERY_CHECK_UPDATES"),
		},
		Database: DatabaseConfig{
			Host:            v.GetString("DATABASE_HOST"),
			Port:            v.GetInt("DATABASE_PORT"),
			User:            v.GetString("DATABASE_USER"),
			Password:        v.GetString("DATABASE_PASSWORD"),
			Name:            v.GetString("DATABASE_NAME"),
			SSLMode:         v.GetString("DATABASE_SSLMODE"),
			MaxOpenConns:    v.GetInt("DATABASE_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DATABASE_MAX_IDLE_CONNS"),
			ConnMaxLifetime: connLifetime,
		},
		Metrics: MetricsConfig{
			Enabled: v.GetBool("METRICS_ENABLED"),
		},
		Logger: LoggerConfig{
			Level:  v.GetString("LOGGER_LEVEL"),
			Format: v.GetString("LOGGER_FORMAT"),
		},
	}

	switch cfg.Gallery.CatalogBackend {
	case CatalogBackendYAML, CatalogBackendPostgres:
	default:
		return nil, fmt.Errorf("unsupported GALLERY_CATALOG_BACKEND %q", cfg.Gallery.CatalogBackend)
	}

	return cfg, nil
}

// durationOrDefault parses key as a duration, falling back to def with a
// warning when the value is malformed.
func durationOrDefault(v *viper.Viper, key string, def time.Duration) time.Duration {
	raw := v.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Warnf("invalid %s %q, using default %s", key, raw, def)
		return def
	}
	return d
}
