// Package session keeps the active token per user in redis. The auth
// middleware consults it; the messaging core itself never touches sessions.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"chatcore/internal/config"
)

type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedis(cfg *config.Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("cannot connect to redis: %w", err)
	}
	return rdb, nil
}

func NewStore(rdb *redis.Client, cfg *config.Config) *Store {
	return &Store{
		rdb: rdb,
		ttl: time.Duration(cfg.Auth.SessionTTLMins) * time.Minute,
	}
}

func sessionKey(userID string) string {
	return "session:" + userID
}

// Save records token as the single active session for the user.
func (s *Store) Save(ctx context.Context, userID, token string) error {
	if err := s.rdb.Set(ctx, sessionKey(userID), token, s.ttl).Err(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Active reports whether token matches the stored session.
func (s *Store) Active(ctx context.Context, userID, token string) (bool, error) {
	stored, err := s.rdb.Get(ctx, sessionKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("load session: %w", err)
	}
	return stored == token, nil
}

func (s *Store) Revoke(ctx context.Context, userID string) error {
	if err := s.rdb.Del(ctx, sessionKey(userID)).Err(); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	return nil
}
