package customer

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trimshop/booking-api/internal/model"
	apperrors "github.com/trimshop/booking-api/pkg/errors"
)

type fakeCustomerRepo struct {
	byPhone map[string]*model.Customer
	touched map[uuid.UUID]int
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{
		byPhone: map[string]*model.Customer{},
		touched: map[uuid.UUID]int{},
	}
}

func (r *fakeCustomerRepo) Create(ctx context.Context, c *model.Customer) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	c.CreatedAt = time.Now()
	r.byPhone[c.Phone] = c
	return nil
}

func (r *fakeCustomerRepo) GetByPhone(ctx context.Context, phone string) (*model.Customer, error) {
	c, ok := r.byPhone[phone]
	if !ok {
		return nil, apperrors.NotFound("customer", nil)
	}
	return c, nil
}

func (r *fakeCustomerRepo) UpdateName(ctx context.Context, id uuid.UUID, name string) error {
	for _, c := range r.byPhone {
		if c.ID == id {
			n := name
			c.Name = &n
			return nil
		}
	}
	return apperrors.NotFound("customer", nil)
}

func (r *fakeCustomerRepo) TouchInteraction(ctx context.Context, id uuid.UUID) error {
	r.touched[id]++
	return nil
}

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"+55 (11) 99999-0000", "+5511999990000"},
		{"11 99999 0000", "11999990000"},
		{"+5511999990000", "+5511999990000"},
		{"tel: 11+99999", "1199999"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizePhone(tt.in), "input %q", tt.in)
	}
}

func TestGetOrCreate_CreatesOnFirstContact(t *testing.T) {
	repo := newFakeCustomerRepo()
	svc := NewService(repo)

	c, err := svc.GetOrCreate(context.Background(), "+55 11 99999-0000", "Ana")
	require.NoError(t, err)
	require.NotNil(t, c)

	assert.Equal(t, "+5511999990000", c.Phone)
	require.NotNil(t, c.Name)
	assert.Equal(t, "Ana", *c.Name)
}

func TestGetOrCreate_CreatesWithoutName(t *testing.T) {
	repo := newFakeCustomerRepo()
	svc := NewService(repo)

	c, err := svc.GetOrCreate(context.Background(), "+5511999990000", "")
	require.NoError(t, err)
	assert.Nil(t, c.Name)
}

func TestGetOrCreate_FillsNameWhenUnset(t *testing.T) {
	repo := newFakeCustomerRepo()
	svc := NewService(repo)

	first, err := svc.GetOrCreate(context.Background(), "+5511999990000", "")
	require.NoError(t, err)
	require.Nil(t, first.Name)

	second, err := svc.GetOrCreate(context.Background(), "+5511999990000", "Ana")
	require.NoError(t, err)
	require.NotNil(t, second.Name)
	assert.Equal(t, "Ana", *second.Name)
	assert.Equal(t, first.ID, second.ID)
}

func TestGetOrCreate_NeverOverwritesKnownName(t *testing.T) {
	repo := newFakeCustomerRepo()
	svc := NewService(repo)

	_, err := svc.GetOrCreate(context.Background(), "+5511999990000", "Ana")
	require.NoError(t, err)

	again, err := svc.GetOrCreate(context.Background(), "+5511999990000", "Someone Else")
	require.NoError(t, err)
	require.NotNil(t, again.Name)
	assert.Equal(t, "Ana", *again.Name)
}

func TestGetOrCreate_TouchesExisting(t *testing.T) {
	repo := newFakeCustomerRepo()
	svc := NewService(repo)

	created, err := svc.GetOrCreate(context.Background(), "+5511999990000", "Ana")
	require.NoError(t, err)

	_, err = svc.GetOrCreate(context.Background(), "+5511999990000", "Ana")
	require.NoError(t, err)
	assert.Equal(t, 1, repo.touched[created.ID])
}

func TestGetOrCreate_ResolvesFormattingVariants(t *testing.T) {
	repo := newFakeCustomerRepo()
	svc := NewService(repo)

	first, err := svc.GetOrCreate(context.Background(), "+55 (11) 99999-0000", "Ana")
	require.NoError(t, err)

	second, err := svc.GetOrCreate(context.Background(), "+5511999990000", "")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
}

func TestGetByPhone_Unknown(t *testing.T) {
	svc := NewService(newFakeCustomerRepo())

	_, err := svc.GetByPhone(context.Background(), "+5500000000000")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestUpdateName_Overwrites(t *testing.T) {
	repo := newFakeCustomerRepo()
	svc := NewService(repo)

	_, err := svc.GetOrCreate(context.Background(), "+5511999990000", "Ana")
	require.NoError(t, err)

	updated, err := svc.UpdateName(context.Background(), "+5511999990000", "Ana Maria")
	require.NoError(t, err)
	require.NotNil(t, updated.Name)
	assert.Equal(t, "Ana Maria", *updated.Name)
}
