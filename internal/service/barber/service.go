package barber

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"github.com/trimshop/booking-api/internal/model"
	"github.com/trimshop/booking-api/internal/repository"
)

const (
	activeListCacheKey = "barbers:active"

	defaultWorkStart = "09:00"
	defaultWorkEnd   = "19:00"
)

type Service struct {
	repo  repository.BarberRepository
	cache *cache.Cache
}

func NewService(repo repository.BarberRepository) *Service {
	return &Service{
		repo:  repo,
		cache: cache.New(5*time.Minute, 10*time.Minute),
	}
}

func (s *Service) CreateBarber(ctx context.Context, req *model.CreateBarberRequest) (*model.Barber, error) {
	workStart := req.WorkStart
	if workStart == "" {
		workStart = defaultWorkStart
	}
	workEnd := req.WorkEnd
	if workEnd == "" {
		workEnd = defaultWorkEnd
	}

	start, err := model.ParseTimeOfDay(workStart)
	if err != nil {
		return nil, fmt.Errorf("invalid work_start: %w", err)
	}
	end, err := model.ParseTimeOfDay(workEnd)
	if err != nil {
		return nil, fmt.Errorf("invalid work_end: %w", err)
	}

	barber := &model.Barber{
		Name:      req.Name,
		Phone:     req.Phone,
		Email:     req.Email,
		Specialty: req.Specialty,
		WorkStart: start,
		WorkEnd:   end,
		Status:    model.BarberStatusActive,
	}

	if err := s.repo.Create(ctx, barber); err != nil {
		return nil, fmt.Errorf("failed to create barber: %w", err)
	}

	s.cache.Delete(activeListCacheKey)
	return barber, nil
}

func (s *Service) GetBarber(ctx context.Context, id uuid.UUID) (*model.Barber, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) FindByName(ctx context.Context, name string) (*model.Barber, error) {
	return s.repo.GetByName(ctx, name)
}

// ListActive returns the active roster, served from a short-lived cache
// because the booking bot asks for it on nearly every conversation turn.
func (s *Service) ListActive(ctx context.Context) ([]*model.Barber, error) {
	if cached, ok := s.cache.Get(activeListCacheKey); ok {
		return cached.([]*model.Barber), nil
	}

	barbers, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list barbers: %w", err)
	}

	s.cache.Set(activeListCacheKey, barbers, cache.DefaultExpiration)
	return barbers, nil
}
