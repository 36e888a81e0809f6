package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v9"
)

// Storage keys, one JSON-serialized array per collection. Collections are
// re-read on every operation so writes done by other processes sharing the
// store are always observed.
const (
	customersKey        = "customers"
	policiesKey         = "policies"
	customerPoliciesKey = "customerPolicies"
	paymentsKey         = "payments"
	claimsKey           = "claims"
	registeredUsersKey  = "registeredUsers"
	currentUserKey      = "currentUser"
)

func loadCollection[T any](ctx context.Context, client *redis.Client, key string) ([]T, error) {
	res, err := client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return []T{}, nil
		}
		return nil, fmt.Errorf("failed to load collection %s - %w", key, err)
	}

	items := make([]T, 0)
	if err := json.Unmarshal([]byte(res), &items); err != nil {
		return nil, fmt.Errorf("failed to decode collection %s - %w", key, err)
	}
	return items, nil
}

func saveCollection[T any](ctx context.Context, client *redis.Client, key string, items []T) error {
	encoded, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode collection %s - %w", key, err)
	}

	if err := client.Set(ctx, key, encoded, 0).Err(); err != nil {
		return fmt.Errorf("failed to save collection %s - %w", key, err)
	}
	return nil
}

// nextID assigns monotonically increasing ids within the loaded snapshot,
// an id of a deleted row is never handed out again while any row with a
// greater id remains
func nextID[T any](items []T, id func(T) int) int {
	next := 1
	for _, item := range items {
		if id(item) >= next {
			next = id(item) + 1
		}
	}
	return next
}
