package repository

import (
	"context"

	"github.com/go-redis/redis/v9"
	"github.com/umalmyha/insurance/internal/model"
)

type CustomerRepository interface {
	FindAll(context.Context) ([]model.Customer, error)
	FindByID(context.Context, int) (*model.Customer, error)
	Create(context.Context, *model.Customer) error
	DeleteByID(context.Context, int) (bool, error)
}

type redisCustomerRepository struct {
	client *redis.Client
}

func NewRedisCustomerRepository(client *redis.Client) CustomerRepository {
	return &redisCustomerRepository{client: client}
}

func (repo *redisCustomerRepository) FindAll(ctx context.Context) ([]model.Customer, error) {
	return loadCollection[model.Customer](ctx, repo.client, customersKey)
}

func (repo *redisCustomerRepository) FindByID(ctx context.Context, id int) (*model.Customer, error) {
	customers, err := loadCollection[model.Customer](ctx, repo.client, customersKey)
	if err != nil {
		return nil, err
	}

	for i := range customers {
		if customers[i].ID == id {
			return &customers[i], nil
		}
	}
	return nil, nil
}

func (repo *redisCustomerRepository) Create(ctx context.Context, c *model.Customer) error {
	customers, err := loadCollection[model.Customer](ctx, repo.client, customersKey)
	if err != nil {
		return err
	}

	c.ID = nextID(customers, func(c model.Customer) int { return c.ID })
	customers = append(customers, *c)

	return saveCollection(ctx, repo.client, customersKey, customers)
}

func (repo *redisCustomerRepository) DeleteByID(ctx context.Context, id int) (bool, error) {
	customers, err := loadCollection[model.Customer](ctx, repo.client, customersKey)
	if err != nil {
		return false, err
	}

	for i := range customers {
		if customers[i].ID == id {
			customers = append(customers[:i], customers[i+1:]...)
			if err := saveCollection(ctx, repo.client, customersKey, customers); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}
