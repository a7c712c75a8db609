package app

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/imoveisxml/config"
	"github.com/guttosm/imoveisxml/internal/api"
	"github.com/guttosm/imoveisxml/internal/service"
	"github.com/guttosm/imoveisxml/internal/storage"
)

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Connects to PostgreSQL using InitPostgres().
//   - Builds repository, catalog service and HTTP handler.
//   - Configures the Gin router with API routes and health probes.
//   - Provides a cleanup function that closes the database pool.
//
// Returns:
//   - *gin.Engine: the configured Gin HTTP router.
//   - func(): cleanup function to be executed on shutdown.
//   - error: any initialization error that occurred.
func InitializeApp() (*gin.Engine, func(), error) {
	cfg := config.AppConfig

	db, err := postgresOpener(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize postgres: %w", err)
	}

	repo := storage.NewFeedRepository(db)
	svc := service.NewCatalogService(repo)
	handler := api.NewHandler(svc)

	router := api.NewRouter(handler, api.RouterOptions{
		RateLimit:      cfg.Server.RateLimit,
		RequestTimeout: cfg.Server.RequestTimeout,
	})
	api.NewHealthHandler(db.PingContext).Register(router)

	cleanup := func() {
		_ = db.Close()
	}

	return router, cleanup, nil
}
