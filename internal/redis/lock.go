package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var ErrLockNotAcquired = errors.New("barber lock not acquired")

// Locker serializes the availability check and the booking insert for one
// barber. The engine itself has no in-process lock; without this, two
// concurrent book calls for overlapping spans can both pass the check.
type Locker interface {
	WithBarberLock(ctx context.Context, barberID uuid.UUID, fn func(ctx context.Context) error) error
}

type barberLocker struct {
	client *redis.Client
	ttl    time.Duration
}

func NewBarberLocker(client *redis.Client, ttl time.Duration) Locker {
	return &barberLocker{
		client: client,
		ttl:    ttl,
	}
}

func (l *barberLocker) WithBarberLock(ctx context.Context, barberID uuid.UUID, fn func(ctx context.Context) error) error {
	key := fmt.Sprintf("lock:barber:%s", barberID.String())
	token := uuid.NewString()

	ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
	if err != nil {
		return fmt.Errorf("acquire barber lock: %w", err)
	}
	if !ok {
		return ErrLockNotAcquired
	}

	defer func() {
		_ = l.release(ctx, key, token)
	}()

	lockCtx, cancel := context.WithTimeout(ctx, l.ttl)
	defer cancel()

	return fn(lockCtx)
}

// unlockScript deletes the key only when it still holds our token, so an
// expired lock taken over by another worker is never released by us.
var unlockScript = redis.NewScript(`
local val = redis.call("GET", KEYS[1])
if val == ARGV[1] then
  return redis.call("DEL", KEYS[1])
end
return 0
`)

func (l *barberLocker) release(ctx context.Context, key, token string) error {
	return unlockScript.Run(ctx, l.client, []string{key}, token).Err()
}
