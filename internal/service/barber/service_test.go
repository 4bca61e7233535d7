package barber

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trimshop/booking-api/internal/model"
	apperrors "github.com/trimshop/booking-api/pkg/errors"
)

type fakeBarberRepo struct {
	barbers   map[uuid.UUID]*model.Barber
	listCalls int
}

func newFakeBarberRepo() *fakeBarberRepo {
	return &fakeBarberRepo{barbers: map[uuid.UUID]*model.Barber{}}
}

func (r *fakeBarberRepo) Create(ctx context.Context, b *model.Barber) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	r.barbers[b.ID] = b
	return nil
}

func (r *fakeBarberRepo) Get(ctx context.Context, id uuid.UUID) (*model.Barber, error) {
	b, ok := r.barbers[id]
	if !ok {
		return nil, apperrors.NotFound("barber", nil)
	}
	return b, nil
}

func (r *fakeBarberRepo) GetActive(ctx context.Context, id uuid.UUID) (*model.Barber, error) {
	b, err := r.Get(ctx, id)
	if err != nil || !b.IsActive() {
		return nil, apperrors.NotFound("barber", nil)
	}
	return b, nil
}

func (r *fakeBarberRepo) GetByName(ctx context.Context, name string) (*model.Barber, error) {
	for _, b := range r.barbers {
		if b.Name == name {
			return b, nil
		}
	}
	return nil, apperrors.NotFound("barber", nil)
}

func (r *fakeBarberRepo) ListActive(ctx context.Context) ([]*model.Barber, error) {
	r.listCalls++
	var out []*model.Barber
	for _, b := range r.barbers {
		if b.IsActive() {
			out = append(out, b)
		}
	}
	return out, nil
}

func TestCreateBarber_AppliesDefaultHours(t *testing.T) {
	svc := NewService(newFakeBarberRepo())

	b, err := svc.CreateBarber(context.Background(), &model.CreateBarberRequest{Name: "Marco"})
	require.NoError(t, err)

	assert.Equal(t, model.NewTimeOfDay(9, 0), b.WorkStart)
	assert.Equal(t, model.NewTimeOfDay(19, 0), b.WorkEnd)
	assert.Equal(t, model.BarberStatusActive, b.Status)
}

func TestCreateBarber_CustomHours(t *testing.T) {
	svc := NewService(newFakeBarberRepo())

	b, err := svc.CreateBarber(context.Background(), &model.CreateBarberRequest{
		Name:      "Leo",
		WorkStart: "10:30",
		WorkEnd:   "18:00",
	})
	require.NoError(t, err)

	assert.Equal(t, model.NewTimeOfDay(10, 30), b.WorkStart)
	assert.Equal(t, model.NewTimeOfDay(18, 0), b.WorkEnd)
}

func TestCreateBarber_RejectsMalformedHours(t *testing.T) {
	svc := NewService(newFakeBarberRepo())

	_, err := svc.CreateBarber(context.Background(), &model.CreateBarberRequest{
		Name:      "Leo",
		WorkStart: "ten",
	})
	require.Error(t, err)
}

func TestListActive_ServedFromCache(t *testing.T) {
	repo := newFakeBarberRepo()
	svc := NewService(repo)

	_, err := svc.CreateBarber(context.Background(), &model.CreateBarberRequest{Name: "Marco"})
	require.NoError(t, err)

	first, err := svc.ListActive(context.Background())
	require.NoError(t, err)
	second, err := svc.ListActive(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, repo.listCalls)
	assert.Equal(t, first, second)
}

func TestCreateBarber_InvalidatesRosterCache(t *testing.T) {
	repo := newFakeBarberRepo()
	svc := NewService(repo)

	_, err := svc.CreateBarber(context.Background(), &model.CreateBarberRequest{Name: "Marco"})
	require.NoError(t, err)

	roster, err := svc.ListActive(context.Background())
	require.NoError(t, err)
	require.Len(t, roster, 1)

	_, err = svc.CreateBarber(context.Background(), &model.CreateBarberRequest{Name: "Leo"})
	require.NoError(t, err)

	roster, err = svc.ListActive(context.Background())
	require.NoError(t, err)
	assert.Len(t, roster, 2)
}
