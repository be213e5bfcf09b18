package tokens

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"soko/pkg/utils"
)

const refreshKeyPrefix = "soko:refresh:"

// ErrTokenNotFound means the refresh token is unknown, expired or revoked.
var ErrTokenNotFound = errors.New("refresh token not found")

type RefreshStoreInterface interface {
	Issue(ctx context.Context, userID uuid.UUID) (string, error)
	Resolve(ctx context.Context, token string) (uuid.UUID, error)
	Revoke(ctx context.Context, token string) error
}

// RefreshStore keeps opaque refresh tokens in redis so a restart or a revoke
// takes effect immediately, unlike the stateless access tokens.
type RefreshStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRefreshStore(client *redis.Client, ttl time.Duration) *RefreshStore {
	return &RefreshStore{client: client, ttl: ttl}
}

func (s *RefreshStore) Issue(ctx context.Context, userID uuid.UUID) (string, error) {
	token, err := utils.GenerateSecureToken(32)
	if err != nil {
		return "", fmt.Errorf("generate refresh token: %w", err)
	}
	if err := s.client.Set(ctx, refreshKeyPrefix+token, userID.String(), s.ttl).Err(); err != nil {
		return "", fmt.Errorf("store refresh token: %w", err)
	}
	return token, nil
}

func (s *RefreshStore) Resolve(ctx context.Context, token string) (uuid.UUID, error) {
	value, err := s.client.Get(ctx, refreshKeyPrefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return uuid.Nil, ErrTokenNotFound
	}
	if err != nil {
		return uuid.Nil, fmt.Errorf("resolve refresh token: %w", err)
	}

	userID, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, ErrTokenNotFound
	}
	return userID, nil
}

func (s *RefreshStore) Revoke(ctx context.Context, token string) error {
	return s.client.Del(ctx, refreshKeyPrefix+token).Err()
}
