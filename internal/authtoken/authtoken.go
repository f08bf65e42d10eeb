package authtoken

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const (
	magicLinkPrefix = "magiclink:"
	denylistPrefix  = "denylist:"

	MagicLinkTTL = 15 * time.Minute
)

var ErrTokenNotFound = errors.New("token not found or already used")

// Manager keeps the short-lived auth state in Redis: one-time magic
// link tokens and the sign-out denylist for issued JWTs.
type Manager struct {
	rdb *redis.Client
}

func NewManager(rdb *redis.Client) *Manager {
	return &Manager{rdb: rdb}
}

// --------------------------------------------------
// Magic links
// --------------------------------------------------

// IssueMagicToken mints a one-time token for the given email. Delivery
// is out of band; the panel only stores and later consumes it.
func (m *Manager) IssueMagicToken(ctx context.Context, email string) (string, error) {
	token := uuid.NewString()

	if err := m.rdb.Set(
		ctx,
		magicLinkPrefix+token,
		email,
		MagicLinkTTL,
	).Err(); err != nil {
		return "", err
	}

	return token, nil
}

// ConsumeMagicToken atomically fetches and deletes the token, so a
// link can be used exactly once.
func (m *Manager) ConsumeMagicToken(ctx context.Context, token string) (string, error) {
	email, err := m.rdb.GetDel(ctx, magicLinkPrefix+token).Result()
	if err == redis.Nil {
		return "", ErrTokenNotFound
	}
	if err != nil {
		return "", err
	}
	return email, nil
}

// --------------------------------------------------
// Sign-out denylist
// --------------------------------------------------

// Denylist marks a JWT id as signed out until the token would have
// expired anyway.
func (m *Manager) Denylist(ctx context.Context, jti string, until time.Time) error {
	ttl := time.Until(until)
	if ttl <= 0 {
		return nil
	}
	return m.rdb.Set(ctx, denylistPrefix+jti, "1", ttl).Err()
}

func (m *Manager) IsDenylisted(ctx context.Context, jti string) (bool, error) {
	n, err := m.rdb.Exists(ctx, denylistPrefix+jti).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
