package repository

import (
	"context"

	"github.com/go-redis/redis/v9"
	"github.com/umalmyha/insurance/internal/model"
)

type PaymentRepository interface {
	FindAll(context.Context) ([]model.Payment, error)
	Create(context.Context, *model.Payment) error
	DeleteByID(context.Context, int) (bool, error)
}

type redisPaymentRepository struct {
	client *redis.Client
}

func NewRedisPaymentRepository(client *redis.Client) PaymentRepository {
	return &redisPaymentRepository{client: client}
}

func (repo *redisPaymentRepository) FindAll(ctx context.Context) ([]model.Payment, error) {
	return loadCollection[model.Payment](ctx, repo.client, paymentsKey)
}

func (repo *redisPaymentRepository) Create(ctx context.Context, p *model.Payment) error {
	payments, err := loadCollection[model.Payment](ctx, repo.client, paymentsKey)
	if err != nil {
		return err
	}

	p.ID = nextID(payments, func(p model.Payment) int { return p.ID })

	stored := *p
	stored.CustomerPolicy = nil
	payments = append(payments, stored)

	return saveCollection(ctx, repo.client, paymentsKey, payments)
}

func (repo *redisPaymentRepository) DeleteByID(ctx context.Context, id int) (bool, error) {
	payments, err := loadCollection[model.Payment](ctx, repo.client, paymentsKey)
	if err != nil {
		return false, err
	}

	for i := range payments {
		if payments[i].ID == id {
			payments = append(payments[:i], payments[i+1:]...)
			if err := saveCollection(ctx, repo.client, paymentsKey, payments); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}
