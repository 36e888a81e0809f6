package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v9"
	"github.com/umalmyha/insurance/internal/model"
)

type SessionRepository interface {
	Create(context.Context, *model.Session) error
	FindByToken(context.Context, string) (*model.Session, error)
	DeleteByToken(context.Context, string) error
}

type redisSessionRepository struct {
	client     *redis.Client
	timeToLive time.Duration
}

func NewRedisSessionRepository(client *redis.Client, timeToLive time.Duration) SessionRepository {
	return &redisSessionRepository{client: client, timeToLive: timeToLive}
}

func (repo *redisSessionRepository) Create(ctx context.Context, s *model.Session) error {
	encoded, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode session - %w", err)
	}

	if err := repo.client.Set(ctx, repo.key(s.Token), encoded, repo.timeToLive).Err(); err != nil {
		return fmt.Errorf("failed to save session - %w", err)
	}
	return nil
}

func (repo *redisSessionRepository) FindByToken(ctx context.Context, token string) (*model.Session, error) {
	res, err := repo.client.Get(ctx, repo.key(token)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load session - %w", err)
	}

	var s model.Session
	if err := json.Unmarshal([]byte(res), &s); err != nil {
		return nil, fmt.Errorf("failed to decode session - %w", err)
	}
	return &s, nil
}

func (repo *redisSessionRepository) DeleteByToken(ctx context.Context, token string) error {
	if err := repo.client.Del(ctx, repo.key(token)).Err(); err != nil {
		return fmt.Errorf("failed to delete session - %w", err)
	}
	return nil
}

func (repo *redisSessionRepository) key(token string) string {
	return fmt.Sprintf("%s:%s", currentUserKey, token)
}
