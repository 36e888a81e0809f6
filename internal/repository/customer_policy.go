package repository

import (
	"context"

	"github.com/go-redis/redis/v9"
	"github.com/umalmyha/insurance/internal/model"
)

type CustomerPolicyRepository interface {
	FindAll(context.Context) ([]model.CustomerPolicy, error)
	FindByID(context.Context, int) (*model.CustomerPolicy, error)
	Create(context.Context, *model.CustomerPolicy) error
	DeleteByID(context.Context, int) (bool, error)
}

type redisCustomerPolicyRepository struct {
	client *redis.Client
}

func NewRedisCustomerPolicyRepository(client *redis.Client) CustomerPolicyRepository {
	return &redisCustomerPolicyRepository{client: client}
}

func (repo *redisCustomerPolicyRepository) FindAll(ctx context.Context) ([]model.CustomerPolicy, error) {
	return loadCollection[model.CustomerPolicy](ctx, repo.client, customerPoliciesKey)
}

func (repo *redisCustomerPolicyRepository) FindByID(ctx context.Context, id int) (*model.CustomerPolicy, error) {
	assignments, err := loadCollection[model.CustomerPolicy](ctx, repo.client, customerPoliciesKey)
	if err != nil {
		return nil, err
	}

	for i := range assignments {
		if assignments[i].ID == id {
			return &assignments[i], nil
		}
	}
	return nil, nil
}

func (repo *redisCustomerPolicyRepository) Create(ctx context.Context, cp *model.CustomerPolicy) error {
	assignments, err := loadCollection[model.CustomerPolicy](ctx, repo.client, customerPoliciesKey)
	if err != nil {
		return err
	}

	cp.ID = nextID(assignments, func(cp model.CustomerPolicy) int { return cp.ID })

	// enrichment joins are computed per response, only the reference ids are stored
	stored := *cp
	stored.Customer = nil
	stored.Policy = nil
	assignments = append(assignments, stored)

	return saveCollection(ctx, repo.client, customerPoliciesKey, assignments)
}

func (repo *redisCustomerPolicyRepository) DeleteByID(ctx context.Context, id int) (bool, error) {
	assignments, err := loadCollection[model.CustomerPolicy](ctx, repo.client, customerPoliciesKey)
	if err != nil {
		return false, err
	}

	for i := range assignments {
		if assignments[i].ID == id {
			assignments = append(assignments[:i], assignments[i+1:]...)
			if err := saveCollection(ctx, repo.client, customerPoliciesKey, assignments); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}
