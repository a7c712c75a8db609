package config

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment variables or .env file.
//
// Only Feed is needed by the default report mode; Server and Postgres are
// read by the ingest, migrate and api modes.
//
// Example ENV equivalent:
//
//	FEED_PATH=paste.txt
//	FEED_DIR=./data/feeds
//	SERVER_PORT=8080
//	SERVER_RATE_LIMIT=60
//	SERVER_REQUEST_TIMEOUT=10s
//	POSTGRES_HOST=localhost
//	POSTGRES_PORT=5432
//	POSTGRES_USER=admin
//	POSTGRES_PASSWORD=secret
//	POSTGRES_DB=imoveis
//	POSTGRES_SSLMODE=disable
type Config struct {
	Feed     FeedConfig     // XML feed locations
	Server   ServerConfig   // HTTP server configuration
	Postgres PostgresConfig // PostgreSQL connection settings
}

// FeedConfig points at the XML feed(s) to process.
type FeedConfig struct {
	Path string // single feed file used by report mode and single-file ingest
	Dir  string // directory scanned for *.xml files by ingest mode
}

// ServerConfig holds HTTP server settings for api mode.
type ServerConfig struct {
	Port           string
	RateLimit      int           // requests per minute per client IP; 0 disables
	RequestTimeout time.Duration // deadline attached to every request context
}

// PostgresConfig defines connection details for PostgreSQL.
//
// Fields:
//   - Host: hostname of the database server.
//   - Port: port number of the database server (default 5432).
//   - User: username for authentication.
//   - Password: password for authentication.
//   - DBName: target database name.
//   - SSLMode: SSL mode (e.g., "disable", "require").
//   - URL: computed DSN used by database/sql to connect.
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	URL      string
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and read by cmd/main.go and the app
// wiring. Packages below internal/ receive values explicitly instead.
var AppConfig Config

// LoadConfig initializes the global AppConfig by reading from .env file
// or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Fatal exit:
//   - If required variables are missing, validateConfig() will terminate the app
//     with a descriptive log message.
func LoadConfig() {
	v := viper.New()

	v.SetDefault("FEED_PATH", "paste.txt")
	v.SetDefault("FEED_DIR", "./data/feeds")

	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("SERVER_RATE_LIMIT", 60)
	v.SetDefault("SERVER_REQUEST_TIMEOUT", "10s")

	v.SetDefault("POSTGRES_HOST", "localhost")
	v.SetDefault("POSTGRES_PORT", 5432)
	v.SetDefault("POSTGRES_USER", "postgres")
	v.SetDefault("POSTGRES_PASSWORD", "postgres")
	v.SetDefault("POSTGRES_DB", "imoveis")
	v.SetDefault("POSTGRES_SSLMODE", "disable")

	// Optionally read from .env if present (common in local dev)
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	_ = v.ReadInConfig() // ignore error if no .env

	v.AutomaticEnv()

	AppConfig = Config{
		Feed: FeedConfig{
			Path: v.GetString("FEED_PATH"),
			Dir:  v.GetString("FEED_DIR"),
		},
		Server: ServerConfig{
			Port:           v.GetString("SERVER_PORT"),
			RateLimit:      v.GetInt("SERVER_RATE_LIMIT"),
			RequestTimeout: v.GetDuration("SERVER_REQUEST_TIMEOUT"),
		},
		Postgres: PostgresConfig{
			Host:     v.GetString("POSTGRES_HOST"),
			Port:     v.GetInt("POSTGRES_PORT"),
			User:     v.GetString("POSTGRES_USER"),
			Password: v.GetString("POSTGRES_PASSWORD"),
			DBName:   v.GetString("POSTGRES_DB"),
			SSLMode:  v.GetString("POSTGRES_SSLMODE"),
		},
	}
	AppConfig.Postgres.URL = AppConfig.Postgres.DSN()

	validateConfig()
}

// DSN builds the lib/pq connection URL for these settings.
func (p PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		p.User,
		p.Password,
		p.Host,
		p.Port,
		p.DBName,
		p.SSLMode,
	)
}

// validateConfig terminates the application when required settings are
// missing from AppConfig.
func validateConfig() {
	if missing := missingKeys(AppConfig); len(missing) > 0 {
		log.Fatalf("missing required environment variables: %v\n", missing)
	}
}

// missingKeys lists the environment keys whose values are empty in cfg.
func missingKeys(cfg Config) []string {
	var missing []string

	if cfg.Feed.Path == "" {
		missing = append(missing, "FEED_PATH")
	}
	if cfg.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if cfg.Postgres.Host == "" {
		missing = append(missing, "POSTGRES_HOST")
	}
	if cfg.Postgres.Port == 0 {
		missing = append(missing, "POSTGRES_PORT")
	}
	if cfg.Postgres.User == "" {
		missing = append(missing, "POSTGRES_USER")
	}
	if cfg.Postgres.Password == "" {
		missing = append(missing, "POSTGRES_PASSWORD")
	}
	if cfg.Postgres.DBName == "" {
		missing = append(missing, "POSTGRES_DB")
	}

	return missing
}
