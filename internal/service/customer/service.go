package customer

import (
	"context"
	"fmt"
	"strings"

	"github.com/trimshop/booking-api/internal/model"
	"github.com/trimshop/booking-api/internal/repository"
	apperrors "github.com/trimshop/booking-api/pkg/errors"
)

type Service struct {
	repo repository.CustomerRepository
}

func NewService(repo repository.CustomerRepository) *Service {
	return &Service{repo: repo}
}

// NormalizePhone strips the formatting noise WhatsApp and web forms produce
// so one person maps to one row.
func NormalizePhone(phone string) string {
	var b strings.Builder
	for i, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
			continue
		}
		if r == '+' && i == 0 {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// GetOrCreate resolves a customer by phone, creating the row on first
// contact. A stored name is only filled in when it was previously unset;
// re-resolving never overwrites a known name.
func (s *Service) GetOrCreate(ctx context.Context, phone, name string) (*model.Customer, error) {
	phone = NormalizePhone(phone)

	existing, err := s.repo.GetByPhone(ctx, phone)
	if err != nil && !apperrors.IsNotFound(err) {
		return nil, err
	}

	if existing == nil {
		created := &model.Customer{Phone: phone}
		if name != "" {
			created.Name = &name
		}
		if err := s.repo.Create(ctx, created); err != nil {
			return nil, fmt.Errorf("failed to create customer: %w", err)
		}
		return created, nil
	}

	if name != "" && existing.Name == nil {
		if err := s.repo.UpdateName(ctx, existing.ID, name); err != nil {
			return nil, err
		}
		existing.Name = &name
		return existing, nil
	}

	if err := s.repo.TouchInteraction(ctx, existing.ID); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *Service) GetByPhone(ctx context.Context, phone string) (*model.Customer, error) {
	return s.repo.GetByPhone(ctx, NormalizePhone(phone))
}

// UpdateName overwrites the stored name unconditionally.
func (s *Service) UpdateName(ctx context.Context, phone, name string) (*model.Customer, error) {
	customer, err := s.repo.GetByPhone(ctx, NormalizePhone(phone))
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdateName(ctx, customer.ID, name); err != nil {
		return nil, err
	}

	customer.Name = &name
	return customer, nil
}
