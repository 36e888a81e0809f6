package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v9"
	"github.com/umalmyha/insurance/internal/model"
)

var seedCustomers = []model.Customer{
	{ID: 1, FirstName: "Shaik", LastName: "Haasif", Email: "haasiffire@gmail.com", Phone: "9959075632", Address: "Kadapa"},
	{ID: 2, FirstName: "Nani", LastName: "Shaik", Email: "sz1803@gmail.com", Phone: "9502943179", Address: "Nellore"},
	{ID: 3, FirstName: "Khaki", LastName: "Nani", Email: "nani@gmail.com", Phone: "8985833246", Address: "Allur"},
}

var seedPolicies = []model.Policy{
	{ID: 1, PolicyName: "Term Life Insurance", PolicyType: "Life", PremiumAmount: 5000, DurationMonths: 240, CoverageAmount: 1000000},
	{ID: 2, PolicyName: "Health Insurance", PolicyType: "Health", PremiumAmount: 3000, DurationMonths: 12, CoverageAmount: 500000},
	{ID: 3, PolicyName: "Motor Insurance", PolicyType: "Auto", PremiumAmount: 2000, DurationMonths: 12, CoverageAmount: 200000},
}

var seedUsers = []struct {
	user     model.User
	password string
}{
	{user: model.User{ID: 1, Email: "admin@test.com", FirstName: "Admin", LastName: "User"}, password: "admin123"},
	{user: model.User{ID: 2, Email: "user@test.com", FirstName: "Test", LastName: "User"}, password: "user123"},
}

// Seed installs demo rows for collections which are still absent in storage.
// Existing collections are left untouched.
func Seed(ctx context.Context, client *redis.Client) error {
	if err := seedCollection(ctx, client, customersKey, seedCustomers); err != nil {
		return err
	}
	if err := seedCollection(ctx, client, policiesKey, seedPolicies); err != nil {
		return err
	}

	users := make([]model.User, 0, len(seedUsers))
	for _, s := range seedUsers {
		hash, err := model.GeneratePasswordHash(s.password)
		if err != nil {
			return fmt.Errorf("failed to hash seed user password - %w", err)
		}

		u := s.user
		u.PasswordHash = hash
		users = append(users, u)
	}
	return seedCollection(ctx, client, registeredUsersKey, users)
}

func seedCollection[T any](ctx context.Context, client *redis.Client, key string, items []T) error {
	encoded, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode seed collection %s - %w", key, err)
	}

	if err := client.SetNX(ctx, key, encoded, 0).Err(); err != nil {
		return fmt.Errorf("failed to seed collection %s - %w", key, err)
	}
	return nil
}
