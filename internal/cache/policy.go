package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v9"
	"github.com/umalmyha/insurance/internal/model"
	"github.com/vmihailenco/msgpack/v5"
)

const cachedPolicyTimeToLive = 10 * time.Minute

// PolicyCache keeps policy rows by id to speed up enrichment joins
type PolicyCache interface {
	FindByID(context.Context, int) (*model.Policy, error)
	Cache(context.Context, *model.Policy) error
}

type redisPolicyCache struct {
	client *redis.Client
}

func NewRedisPolicyCache(client *redis.Client) PolicyCache {
	return &redisPolicyCache{client: client}
}

func (r *redisPolicyCache) FindByID(ctx context.Context, id int) (*model.Policy, error) {
	res, err := r.client.Get(ctx, r.key(id)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var p model.Policy
	if err := msgpack.Unmarshal([]byte(res), &p); err != nil {
		return nil, err
	}

	return &p, nil
}

func (r *redisPolicyCache) Cache(ctx context.Context, p *model.Policy) error {
	encoded, err := msgpack.Marshal(p)
	if err != nil {
		return err
	}

	_, err = r.client.SetNX(ctx, r.key(p.ID), encoded, cachedPolicyTimeToLive).Result()
	if err != nil {
		return err
	}
	return nil
}

func (r *redisPolicyCache) key(id int) string {
	return fmt.Sprintf("policy:%d", id)
}
