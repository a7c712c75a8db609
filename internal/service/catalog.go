package service

import (
	"context"

	"github.com/guttosm/imoveisxml/internal/domain/models"
	"github.com/guttosm/imoveisxml/internal/storage"
)

// MaxLimit caps page sizes requested through the service.
const MaxLimit = 500

// CatalogService exposes stored listings and launches to the HTTP layer.
type CatalogService interface {
	SearchListings(ctx context.Context, filter models.ListingFilter) ([]models.Listing, error)
	GetListing(ctx context.Context, code string) (*models.Listing, error)
	SearchLaunches(ctx context.Context, filter models.LaunchFilter) ([]models.Launch, error)
}

type catalogService struct {
	repo storage.FeedRepository
}

func NewCatalogService(repo storage.FeedRepository) CatalogService {
	return &catalogService{repo: repo}
}

func (s *catalogService) SearchListings(ctx context.Context, filter models.ListingFilter) ([]models.Listing, error) {
	filter.Limit = normalizeLimit(filter.Limit)
	return s.repo.FindListings(ctx, filter)
}

func (s *catalogService) GetListing(ctx context.Context, code string) (*models.Listing, error) {
	return s.repo.GetListingByCode(ctx, code)
}

func (s *catalogService) SearchLaunches(ctx context.Context, filter models.LaunchFilter) ([]models.Launch, error) {
	filter.Limit = normalizeLimit(filter.Limit)
	return s.repo.FindLaunches(ctx, filter)
}

func normalizeLimit(limit int) int {
	switch {
	case limit <= 0:
		return storage.DefaultLimit
	case limit > MaxLimit:
		return MaxLimit
	default:
		return limit
	}
}
