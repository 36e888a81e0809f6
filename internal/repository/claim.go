package repository

import (
	"context"

	"github.com/go-redis/redis/v9"
	"github.com/umalmyha/insurance/internal/model"
)

type ClaimRepository interface {
	FindAll(context.Context) ([]model.Claim, error)
	Create(context.Context, *model.Claim) error
	DeleteByID(context.Context, int) (bool, error)
}

type redisClaimRepository struct {
	client *redis.Client
}

func NewRedisClaimRepository(client *redis.Client) ClaimRepository {
	return &redisClaimRepository{client: client}
}

func (repo *redisClaimRepository) FindAll(ctx context.Context) ([]model.Claim, error) {
	return loadCollection[model.Claim](ctx, repo.client, claimsKey)
}

func (repo *redisClaimRepository) Create(ctx context.Context, c *model.Claim) error {
	claims, err := loadCollection[model.Claim](ctx, repo.client, claimsKey)
	if err != nil {
		return err
	}

	c.ID = nextID(claims, func(c model.Claim) int { return c.ID })

	stored := *c
	stored.CustomerPolicy = nil
	claims = append(claims, stored)

	return saveCollection(ctx, repo.client, claimsKey, claims)
}

func (repo *redisClaimRepository) DeleteByID(ctx context.Context, id int) (bool, error) {
	claims, err := loadCollection[model.Claim](ctx, repo.client, claimsKey)
	if err != nil {
		return false, err
	}

	for i := range claims {
		if claims[i].ID == id {
			claims = append(claims[:i], claims[i+1:]...)
			if err := saveCollection(ctx, repo.client, claimsKey, claims); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}
