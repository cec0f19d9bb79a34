package repository

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// SessionRepository records issued refresh tokens so they can be revoked and
// rotated. Tokens are stored hashed; redis TTL handles expiry.
type SessionRepository interface {
	SaveRefreshToken(ctx context.Context, userID uuid.UUID, token string, ttl time.Duration) error
	RefreshTokenValid(ctx context.Context, userID uuid.UUID, token string) (bool, error)
	DeleteRefreshToken(ctx context.Context, token string) error
}

type RedisSessionRepository struct {
	client *redis.Client
}

func NewRedisSessionRepository(client *redis.Client) *RedisSessionRepository {
	return &RedisSessionRepository{client: client}
}

func refreshTokenKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return "session:refresh:" + hex.EncodeToString(sum[:])
}

func (r *RedisSessionRepository) SaveRefreshToken(ctx context.Context, userID uuid.UUID, token string, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return r.client.Set(ctx, refreshTokenKey(token), userID.String(), ttl).Err()
}

func (r *RedisSessionRepository) RefreshTokenValid(ctx context.Context, userID uuid.UUID, token string) (bool, error) {
	v, err := r.client.Get(ctx, refreshTokenKey(token)).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return v == userID.String(), nil
}

func (r *RedisSessionRepository) DeleteRefreshToken(ctx context.Context, token string) error {
	return r.client.Del(ctx, refreshTokenKey(token)).Err()
}
