package nonce

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "directory_nonce:"

// Service issues and verifies single-purpose anti-forgery tokens for
// the public directory filter endpoint. Tokens live in Redis with a
// TTL and stay valid until they expire, so a page can refilter many
// times with the nonce it was rendered with.
type Service struct {
	redisClient *redis.Client
	ttl         time.Duration
}

func NewService(redisClient *redis.Client, ttl time.Duration) *Service {
	return &Service{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

// Issue creates a fresh token and registers it for the configured TTL.
func (s *Service) Issue(ctx context.Context) (string, error) {
	token := uuid.New().String()
	key := fmt.Sprintf("%s%s", keyPrefix, token)
	if err := s.redisClient.Set(ctx, key, "valid", s.ttl).Err(); err != nil {
		return "", err
	}
	return token, nil
}

// Verify reports whether the token was issued and has not expired.
func (s *Service) Verify(ctx context.Context, token string) (bool, error) {
	if token == "" {
		return false, nil
	}
	key := fmt.Sprintf("%s%s", keyPrefix, token)
	exists, err := s.redisClient.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return exists > 0, nil
}
