package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/imoveisxml/internal/domain/dto"
	"github.com/guttosm/imoveisxml/internal/domain/models"
	"github.com/guttosm/imoveisxml/internal/middleware"
	"github.com/guttosm/imoveisxml/internal/service"
)

var errInvalidLimit = errors.New("limit must be a non-negative integer")

// Handler serves the read-only catalog endpoints over ingested feeds.
//
// Responsibilities:
//   - Parse and validate query parameters
//   - Delegate lookups to the catalog service
//   - Translate records into response DTOs
type Handler struct {
	svc service.CatalogService
}

// NewHandler constructs a new Handler instance.
//
// Parameters:
//   - svc (service.CatalogService): query service over stored listings and launches.
//
// Returns:
//   - *Handler: A handler ready to be registered with the router.
func NewHandler(svc service.CatalogService) *Handler {
	return &Handler{svc: svc}
}

// ListListings handles GET /api/v1/imoveis.
//
// ListListings godoc
// @Summary      List listings
// @Description  Returns listings from the most recently ingested feeds, optionally filtered by city, state and purpose
// @Tags         imoveis
// @Produce      json
// @Param        cidade      query     string  false  "City"     example(Santos)
// @Param        estado      query     string  false  "State"    example(SP)
// @Param        finalidade  query     string  false  "Purpose"  example(Residencial)
// @Param        limit       query     int     false  "Page size (default 50, max 500)"
// @Success      200         {object}  dto.ListingsResponse  "Success"
// @Failure      400         {object}  dto.ErrorResponse     "Bad Request"
// @Failure      500         {object}  dto.ErrorResponse     "Internal Error"
// @Router       /api/v1/imoveis [get]
func (h *Handler) ListListings(c *gin.Context) {
	limit, ok := parseLimit(c)
	if !ok {
		return
	}

	filter := models.ListingFilter{
		City:    query(c, "cidade"),
		State:   query(c, "estado"),
		Purpose: query(c, "finalidade"),
		Limit:   limit,
	}
	listings, err := h.svc.SearchListings(c.Request.Context(), filter)
	if err != nil {
		middleware.AbortWithError(c, http.StatusInternalServerError, "failed to fetch listings", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewListingsResponse(listings))
}

// GetListing handles GET /api/v1/imoveis/:codigo.
//
// GetListing godoc
// @Summary      Get listing by code
// @Description  Returns the most recently ingested listing with the given Codigo
// @Tags         imoveis
// @Produce      json
// @Param        codigo  path      string  true  "Listing code"  example(AB123)
// @Success      200     {object}  dto.ListingResponse  "Success"
// @Failure      404     {object}  dto.ErrorResponse    "Not Found"
// @Failure      500     {object}  dto.ErrorResponse    "Internal Error"
// @Router       /api/v1/imoveis/{codigo} [get]
func (h *Handler) GetListing(c *gin.Context) {
	// Codes are stored exactly as written in the feed.
	listing, err := h.svc.GetListing(c.Request.Context(), c.Param("codigo"))
	if err != nil {
		middleware.AbortWithError(c, http.StatusInternalServerError, "failed to fetch listing", err)
		return
	}
	if listing == nil {
		middleware.AbortWithError(c, http.StatusNotFound, "listing not found", nil)
		return
	}

	c.JSON(http.StatusOK, dto.NewListingResponse(*listing))
}

// ListLaunches handles GET /api/v1/lancamentos.
//
// ListLaunches godoc
// @Summary      List launches
// @Description  Returns launches from the most recently ingested feeds, optionally filtered by city and builder
// @Tags         lancamentos
// @Produce      json
// @Param        cidade       query     string  false  "City"     example(Santos)
// @Param        construtora  query     string  false  "Builder"
// @Param        limit        query     int     false  "Page size (default 50, max 500)"
// @Success      200          {object}  dto.LaunchesResponse  "Success"
// @Failure      400          {object}  dto.ErrorResponse     "Bad Request"
// @Failure      500          {object}  dto.ErrorResponse     "Internal Error"
// @Router       /api/v1/lancamentos [get]
func (h *Handler) ListLaunches(c *gin.Context) {
	limit, ok := parseLimit(c)
	if !ok {
		return
	}

	filter := models.LaunchFilter{
		City:    query(c, "cidade"),
		Builder: query(c, "construtora"),
		Limit:   limit,
	}
	launches, err := h.svc.SearchLaunches(c.Request.Context(), filter)
	if err != nil {
		middleware.AbortWithError(c, http.StatusInternalServerError, "failed to fetch launches", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewLaunchesResponse(launches))
}

func query(c *gin.Context, key string) string {
	return strings.TrimSpace(c.Query(key))
}

// parseLimit reads ?limit=; 0 when missing. Writes a 400 and reports false
// when the value is not a non-negative integer.
func parseLimit(c *gin.Context) (int, bool) {
	raw := query(c, "limit")
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid limit", errInvalidLimit)
		return 0, false
	}
	return n, true
}
