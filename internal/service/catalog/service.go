package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"github.com/trimshop/booking-api/internal/model"
	"github.com/trimshop/booking-api/internal/repository"
)

const activeListCacheKey = "services:active"

// Service manages the bookable service catalog.
type Service struct {
	repo            repository.ServiceRepository
	cache           *cache.Cache
	defaultDuration int
}

func NewService(repo repository.ServiceRepository, defaultDurationMinutes int) *Service {
	if defaultDurationMinutes <= 0 {
		defaultDurationMinutes = 30
	}
	return &Service{
		repo:            repo,
		cache:           cache.New(5*time.Minute, 10*time.Minute),
		defaultDuration: defaultDurationMinutes,
	}
}

func (s *Service) CreateService(ctx context.Context, req *model.CreateServiceRequest) (*model.Service, error) {
	duration := req.Duration
	if duration <= 0 {
		duration = s.defaultDuration
	}

	service := &model.Service{
		Name:        req.Name,
		Description: req.Description,
		Duration:    duration,
		Price:       req.Price,
		Status:      model.ServiceStatusActive,
	}

	if err := s.repo.Create(ctx, service); err != nil {
		return nil, fmt.Errorf("failed to create service: %w", err)
	}

	s.cache.Delete(activeListCacheKey)
	return service, nil
}

func (s *Service) GetService(ctx context.Context, id uuid.UUID) (*model.Service, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) FindByName(ctx context.Context, name string) (*model.Service, error) {
	return s.repo.GetByName(ctx, name)
}

func (s *Service) ListActive(ctx context.Context) ([]*model.Service, error) {
	if cached, ok := s.cache.Get(activeListCacheKey); ok {
		return cached.([]*model.Service), nil
	}

	services, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}

	s.cache.Set(activeListCacheKey, services, cache.DefaultExpiration)
	return services, nil
}
