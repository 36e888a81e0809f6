package repository

import (
	"context"
	"strings"

	"github.com/go-redis/redis/v9"
	"github.com/umalmyha/insurance/internal/model"
)

type UserRepository interface {
	FindAll(context.Context) ([]model.User, error)
	FindByEmail(context.Context, string) (*model.User, error)
	Create(context.Context, *model.User) error
}

type redisUserRepository struct {
	client *redis.Client
}

func NewRedisUserRepository(client *redis.Client) UserRepository {
	return &redisUserRepository{client: client}
}

func (repo *redisUserRepository) FindAll(ctx context.Context) ([]model.User, error) {
	return loadCollection[model.User](ctx, repo.client, registeredUsersKey)
}

func (repo *redisUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	users, err := loadCollection[model.User](ctx, repo.client, registeredUsersKey)
	if err != nil {
		return nil, err
	}

	for i := range users {
		if strings.EqualFold(users[i].Email, email) {
			return &users[i], nil
		}
	}
	return nil, nil
}

func (repo *redisUserRepository) Create(ctx context.Context, u *model.User) error {
	users, err := loadCollection[model.User](ctx, repo.client, registeredUsersKey)
	if err != nil {
		return err
	}

	u.ID = nextID(users, func(u model.User) int { return u.ID })
	users = append(users, *u)

	return saveCollection(ctx, repo.client, registeredUsersKey, users)
}
