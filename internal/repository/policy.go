package repository

import (
	"context"

	"github.com/go-redis/redis/v9"
	"github.com/umalmyha/insurance/internal/model"
)

// PolicyRepository is read-only, policy products are maintained as seed data
type PolicyRepository interface {
	FindAll(context.Context) ([]model.Policy, error)
	FindByID(context.Context, int) (*model.Policy, error)
}

type redisPolicyRepository struct {
	client *redis.Client
}

func NewRedisPolicyRepository(client *redis.Client) PolicyRepository {
	return &redisPolicyRepository{client: client}
}

func (repo *redisPolicyRepository) FindAll(ctx context.Context) ([]model.Policy, error) {
	return loadCollection[model.Policy](ctx, repo.client, policiesKey)
}

func (repo *redisPolicyRepository) FindByID(ctx context.Context, id int) (*model.Policy, error) {
	policies, err := loadCollection[model.Policy](ctx, repo.client, policiesKey)
	if err != nil {
		return nil, err
	}

	for i := range policies {
		if policies[i].ID == id {
			return &policies[i], nil
		}
	}
	return nil, nil
}
