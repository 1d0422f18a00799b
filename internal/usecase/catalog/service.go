package catalog

import (
	"context"

	"github.com/bookline/gateway/internal/domain/entity"
	"github.com/bookline/gateway/internal/pkg/pagination"
)

//go:generate mockgen -source=service.go -destination=../../mocks/catalog_mocks.go -package=mocks

// CatalogAPI is the slice of the backend client the catalog proxy needs.
type CatalogAPI interface {
	ListBusinesses(ctx context.Context, limit, offset int) ([]entity.Business, error)
	GetBusiness(ctx context.Context, publicID string) (*entity.Business, error)
	ListServices(ctx context.Context, publicID string) ([]entity.Service, error)
	UnavailableTimes(ctx context.Context, serviceID, date string) ([]string, error)
}

type Service struct {
	api CatalogAPI
}

func NewService(api CatalogAPI) *Service {
	return &Service{api: api}
}

func (s *Service) ListBusinesses(ctx context.Context, params pagination.Params) ([]entity.Business, error) {
	businesses, err := s.api.ListBusinesses(ctx, params.Limit(), params.Offset())
	if err != nil {
		return nil, err
	}
	if businesses == nil {
		businesses = []entity.Business{}
	}
	return businesses, nil
}

// GetBusiness returns a listing with its services. A failing services fetch
// degrades to an empty list: the listing page is still worth rendering.
func (s *Service) GetBusiness(ctx context.Context, publicID string) (*entity.Business, []entity.Service, error) {
	business, err := s.api.GetBusiness(ctx, publicID)
	if err != nil {
		return nil, nil, err
	}

	services, err := s.api.ListServices(ctx, publicID)
	if err != nil || services == nil {
		services = []entity.Service{}
	}

	return business, services, nil
}

func (s *Service) UnavailableTimes(ctx context.Context, serviceID, date string) ([]string, error) {
	times, err := s.api.UnavailableTimes(ctx, serviceID, date)
	if err != nil {
		return nil, err
	}
	if times == nil {
		times = []string{}
	}
	return times, nil
}
