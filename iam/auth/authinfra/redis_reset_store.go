package authinfra

import (
	"context"
	"crypto/subtle"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/CavidAtamoghlanov/vacancy-management/iam/auth"
	"github.com/CavidAtamoghlanov/vacancy-management/pkg/errx"
	"github.com/CavidAtamoghlanov/vacancy-management/pkg/kernel"
)

// RedisResetTokenStore implements ResetTokenStore with expiring Redis keys.
// Storing a new token replaces any outstanding one for the same email.
type RedisResetTokenStore struct {
	client *redis.Client
	prefix string
}

func NewRedisResetTokenStore(client *redis.Client) auth.ResetTokenStore {
	return &RedisResetTokenStore{
		client: client,
		prefix: "auth:reset:",
	}
}

func (s *RedisResetTokenStore) Store(ctx context.Context, email kernel.Email, token string, ttl time.Duration) error {
	if err := s.client.Set(ctx, s.key(email), token, ttl).Err(); err != nil {
		return errx.Wrap(err, "failed to store reset token", errx.TypeExternal)
	}
	return nil
}

func (s *RedisResetTokenStore) Verify(ctx context.Context, email kernel.Email, token string) error {
	stored, err := s.client.Get(ctx, s.key(email)).Result()
	if err == redis.Nil {
		return auth.ErrInvalidResetToken()
	}
	if err != nil {
		return errx.Wrap(err, "failed to read reset token", errx.TypeExternal)
	}
	if subtle.ConstantTimeCompare([]byte(stored), []byte(token)) != 1 {
		return auth.ErrInvalidResetToken()
	}
	return nil
}

func (s *RedisResetTokenStore) Invalidate(ctx context.Context, email kernel.Email) error {
	if err := s.client.Del(ctx, s.key(email)).Err(); err != nil {
		return errx.Wrap(err, "failed to invalidate reset token", errx.TypeExternal)
	}
	return nil
}

func (s *RedisResetTokenStore) key(email kernel.Email) string {
	return s.prefix + email.String()
}
