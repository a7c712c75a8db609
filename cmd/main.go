package main

//
//  @title           imoveisxml API
//  @version         1.0
//  @description     Read-only catalog of listings and launches ingested from XML real-estate feeds.
//  @termsOfService  https://github.com/guttosm/imoveisxml
//  @contact.name    API Support
//  @contact.url     https://github.com/guttosm/imoveisxml
//  @contact.email   support@example.com
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        imoveis
//  @tag.description Listings (Imovel) from ingested feeds
//
//  @tag.name        lancamentos
//  @tag.description Launches (Lancamento) from ingested feeds
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/guttosm/imoveisxml/config"
	_ "github.com/guttosm/imoveisxml/docs" // swagger docs
	"github.com/guttosm/imoveisxml/internal/app"
	"github.com/guttosm/imoveisxml/internal/extraction"
	"github.com/guttosm/imoveisxml/internal/feed"
	"github.com/guttosm/imoveisxml/internal/ingestion"
	"github.com/guttosm/imoveisxml/internal/logger"
	"github.com/guttosm/imoveisxml/internal/report"
	"github.com/guttosm/imoveisxml/internal/storage"
)

// options are the parsed command-line flags.
type options struct {
	mode     string
	file     string
	dir      string
	parallel int
	force    bool
	port     string
}

// parseFlags reads args on top of defaults taken from cfg.
func parseFlags(args []string, cfg config.Config) (options, error) {
	var o options
	fs := flag.NewFlagSet("imoveisxml", flag.ContinueOnError)
	fs.StringVar(&o.mode, "mode", "report", "Mode: report, ingest, migrate or api")
	fs.StringVar(&o.file, "file", "", "Feed file (report default: FEED_PATH; ingest: single file instead of --dir)")
	fs.StringVar(&o.dir, "dir", cfg.Feed.Dir, "Directory with *.xml feeds for ingest mode")
	fs.IntVar(&o.parallel, "parallel", 0, "How many feeds to ingest concurrently (0=auto up to CPU, max 4)")
	fs.BoolVar(&o.force, "force", false, "Re-ingest feeds whose checksum is already stored")
	fs.StringVar(&o.port, "port", cfg.Server.Port, "Port for API mode")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if o.mode == "report" && o.file == "" {
		o.file = cfg.Feed.Path
	}
	return o, nil
}

// runReport loads the feed at path, extracts both record kinds and writes
// the console report to out.
func runReport(path string, out io.Writer) error {
	doc, err := feed.Load(path)
	if err != nil {
		return err
	}
	res := extraction.Extract(doc)
	logger.L().Debug().
		Str("file", path).
		Int("listings", len(res.Listings)).
		Int("launches", len(res.Launches)).
		Msg("feed extracted")

	if err := report.Write(out, res.Listings, res.Launches); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// runIngest persists one feed (--file) or a directory of feeds (--dir),
// applying pending migrations first.
func runIngest(ctx context.Context, o options) error {
	db, err := app.InitPostgres(config.AppConfig)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	if err := app.Migrate(ctx, db); err != nil {
		return err
	}

	if o.file != "" {
		_, err := ingestion.ProcessFile(ctx, o.file, storage.NewFeedRepository(db), o.force)
		return err
	}
	return ingestion.ProcessDirectory(ctx, o.dir, db, o.parallel, o.force)
}

func runMigrate(ctx context.Context) error {
	db, err := app.InitPostgres(config.AppConfig)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()
	return app.Migrate(ctx, db)
}

// errorChain lists err and every error it wraps, outermost first.
func errorChain(err error) []string {
	var chain []string
	for err != nil {
		chain = append(chain, err.Error())
		err = errors.Unwrap(err)
	}
	return chain
}

// fail logs err with its wrapped chain and exits with status 1.
func fail(err error, msg string) {
	logger.L().Error().Err(err).Strs("trace", errorChain(err)).Msg(msg)
	os.Exit(1)
}

// startServer initializes and starts the HTTP server in a separate goroutine.
//
// Parameters:
//   - router (http.Handler): The HTTP router (Gin Engine) configured with all routes.
//   - port (string): The port where the server will listen for incoming requests.
//
// Returns:
//   - *http.Server: The initialized HTTP server instance.
func startServer(router http.Handler, port string) *http.Server {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("port", port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown gracefully terminates the HTTP server and cleans up resources
// when an OS interrupt signal (SIGINT, SIGTERM) is received.
//
// Parameters:
//   - ctx (context.Context): A context with timeout for graceful shutdown.
//   - server (*http.Server): The HTTP server instance to shut down.
//   - cleanup (func()): Cleanup callback to release resources (e.g., DB connections).
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(quit)

	<-quit
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Error().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

// main is the entry point of the imoveisxml application.
//
// Modes (selected via --mode flag):
//   - report:  Prints listings and launches of one feed to stdout (default).
//   - ingest:  Persists one feed (--file) or every *.xml in --dir to PostgreSQL.
//   - migrate: Applies the embedded database migrations.
//   - api:     Starts the REST API over ingested records.
//
// Any failure is logged to stderr with its error chain and exits with status 1.
func main() {
	config.LoadConfig()
	logger.Init()

	opts, err := parseFlags(os.Args[1:], config.AppConfig)
	if err != nil {
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch opts.mode {
	case "report":
		if err := runReport(opts.file, os.Stdout); err != nil {
			fail(err, "failed to process feed")
		}

	case "ingest":
		logger.L().Info().Msg("running ingestion")
		if err := runIngest(ctx, opts); err != nil {
			fail(err, "ingestion failed")
		}
		logger.L().Info().Msg("ingestion completed successfully")

	case "migrate":
		if err := runMigrate(ctx); err != nil {
			fail(err, "migration failed")
		}

	case "api":
		// the server handles signals itself
		stop()
		logger.L().Info().Msg("starting API server")

		router, cleanup, err := app.InitializeApp()
		if err != nil {
			fail(err, "app init error")
		}

		server := startServer(router, opts.port)
		gracefulShutdown(context.Background(), server, cleanup)

	default:
		fail(fmt.Errorf("unknown mode %q", opts.mode), "invalid arguments")
	}
}
