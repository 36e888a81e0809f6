package repository

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/go-redis/redis/v9"
	"github.com/labstack/gommon/log"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/require"
	"github.com/umalmyha/insurance/internal/model"
)

const (
	connectionTimeout = 3 * time.Second
)

const (
	redisContainerName = "redis-test-insurance"
	redisTestPassword  = "test"
	redisPort          = "6379"
	redisTestDB        = 0
)

var redisClient *redis.Client

func TestMain(m *testing.M) {
	// build docker pool
	dockerPool, err := dockertest.NewPool("")
	if err != nil {
		log.Fatalf("failed to create pool - %v", err)
	}

	if err := dockerPool.Client.Ping(); err != nil {
		log.Fatalf("failed to connect to docker - %v", err)
	}

	// start redis
	redisStore, err := dockerPool.RunWithOptions(&dockertest.RunOptions{
		Name:       redisContainerName,
		Repository: "redis",
		Tag:        "latest",
		Cmd:        []string{fmt.Sprintf("--requirepass %s", redisTestPassword)},
		PortBindings: map[docker.Port][]docker.PortBinding{
			"6379/tcp": {{HostIP: "localhost", HostPort: fmt.Sprintf("%s/tcp", redisPort)}},
		},
	})
	if err != nil {
		log.Fatalf("failed to start redis - %v", err)
	}

	// connect to redis
	err = dockerPool.Retry(func() error {
		ctx, cancel := context.WithTimeout(context.Background(), connectionTimeout)
		defer cancel()

		redisClient = redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("localhost:%s", redisPort),
			Password: redisTestPassword,
			DB:       redisTestDB,
		})

		return redisClient.Ping(ctx).Err()
	})
	if err != nil {
		log.Fatalf("failed to establish connection to redis - %v", err)
	}

	// start tests
	code := m.Run()

	// purge redis
	if err := dockerPool.Purge(redisStore); err != nil {
		log.Fatalf("failed to purge redis - %v", err)
	}

	os.Exit(code)
}

func TestCustomerRps(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	require.NoError(t, redisClient.Del(ctx, customersKey).Err(), "failed to reset customers collection")

	customerRps := NewRedisCustomerRepository(redisClient)

	customers := []*model.Customer{
		{FirstName: "John", LastName: "Norman", Email: "johnnorman@somemail.com", Phone: "9876543210", Address: "Hyderabad"},
		{FirstName: "Albert", LastName: "Peers", Email: "albertpeers@somemail.com", Phone: "8876543210", Address: "Chennai"},
		{FirstName: "Andrew", LastName: "Wallet", Email: "andrewallet@somemail.com", Phone: "7876543210", Address: "Mumbai"},
	}

	t.Log("create 3 customers")
	{
		for _, c := range customers {
			err := customerRps.Create(ctx, c)
			require.NoError(t, err, "failed to create customer")
		}
	}

	t.Log("ids are assigned in increasing order")
	{
		for i, c := range customers {
			require.Equal(t, i+1, c.ID, "customer must get next free id")
		}
	}

	t.Logf("verify %d customers in storage", len(customers))
	{
		dbCustomers, err := customerRps.FindAll(ctx)
		require.NoError(t, err, "failed to read customers")
		require.Equal(t, len(customers), len(dbCustomers), "all created customers must be read back")
	}

	t.Log("find customer by id")
	{
		dbCustomer, err := customerRps.FindByID(ctx, customers[0].ID)
		require.NoError(t, err, "failed to read customer")
		require.NotNil(t, dbCustomer, "customer was created, but not found in storage")
		require.Equal(t, customers[0].Email, dbCustomer.Email, "customer in storage is not the same it was passed")
	}

	t.Log("delete customer by id")
	{
		ok, err := customerRps.DeleteByID(ctx, customers[0].ID)
		require.NoError(t, err, "failed to delete customer")
		require.True(t, ok, "existing customer must be reported deleted")
	}

	t.Log("deleting the same customer again is a no-op")
	{
		ok, err := customerRps.DeleteByID(ctx, customers[0].ID)
		require.NoError(t, err, "failed to delete customer")
		require.False(t, ok, "deleted customer must not be reported deleted again")
	}

	t.Log("id of deleted customer is not handed out again")
	{
		c := &model.Customer{FirstName: "Oliver", LastName: "Jefferson", Email: "oliverjeff@somemail.com", Phone: "6876543210", Address: "Delhi"}
		err := customerRps.Create(ctx, c)
		require.NoError(t, err, "failed to create customer")
		require.Equal(t, len(customers)+1, c.ID, "new id must continue after the greatest ever assigned")
	}
}

func TestCustomerPolicyRps(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	require.NoError(t, redisClient.Del(ctx, customerPoliciesKey).Err(), "failed to reset assignments collection")

	assignmentRps := NewRedisCustomerPolicyRepository(redisClient)

	assignment := &model.CustomerPolicy{
		CustomerID:    1,
		PolicyID:      2,
		StartDate:     "2026-09-01",
		EndDate:       "2027-09-01",
		Status:        model.AssignmentStatusActive,
		PremiumAmount: 5000,
		Customer:      &model.Customer{ID: 1, FirstName: "Shaik"},
		Policy:        &model.Policy{ID: 2, PolicyName: "Health Insurance"},
	}

	t.Log("create assignment")
	{
		err := assignmentRps.Create(ctx, assignment)
		require.NoError(t, err, "failed to create assignment")
	}

	t.Log("expanded rows are not persisted, only the references are")
	{
		dbAssignment, err := assignmentRps.FindByID(ctx, assignment.ID)
		require.NoError(t, err, "failed to read assignment")
		require.NotNil(t, dbAssignment, "assignment was created, but not found in storage")
		require.Nil(t, dbAssignment.Customer, "stored assignment must not carry expanded customer")
		require.Nil(t, dbAssignment.Policy, "stored assignment must not carry expanded policy")
		require.Equal(t, assignment.CustomerID, dbAssignment.CustomerID)
		require.Equal(t, assignment.PolicyID, dbAssignment.PolicyID)
	}
}

func TestSessionRps(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	sessionRps := NewRedisSessionRepository(redisClient, time.Minute)

	session := &model.Session{
		Token:     "3e2c0e31-4fc9-4e1c-9dfd-29738a2f4c83",
		UserID:    1,
		Email:     "admin@test.com",
		FirstName: "Admin",
		LastName:  "User",
		IssuedAt:  time.Now().Unix(),
	}

	t.Log("create session")
	{
		err := sessionRps.Create(ctx, session)
		require.NoError(t, err, "failed to create session")
	}

	t.Log("find session by token")
	{
		dbSession, err := sessionRps.FindByToken(ctx, session.Token)
		require.NoError(t, err, "failed to read session")
		require.NotNil(t, dbSession, "session was created, but not found in storage")
		require.Equal(t, session.Email, dbSession.Email, "session in storage is not the same it was passed")
	}

	t.Log("delete session by token")
	{
		err := sessionRps.DeleteByToken(ctx, session.Token)
		require.NoError(t, err, "failed to delete session")
	}

	t.Log("verify session is deleted")
	{
		dbSession, err := sessionRps.FindByToken(ctx, session.Token)
		require.NoError(t, err, "failed to read session")
		require.Nil(t, dbSession, "session was deleted, but still present in storage")
	}
}

func TestSeed(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	require.NoError(t, redisClient.Del(ctx, customersKey, policiesKey, registeredUsersKey).Err(), "failed to reset collections")

	t.Log("seed installs demo collections")
	{
		require.NoError(t, Seed(ctx, redisClient), "failed to seed")

		customers, err := loadCollection[model.Customer](ctx, redisClient, customersKey)
		require.NoError(t, err, "failed to read customers")
		require.Len(t, customers, len(seedCustomers), "all demo customers must be installed")

		policies, err := loadCollection[model.Policy](ctx, redisClient, policiesKey)
		require.NoError(t, err, "failed to read policies")
		require.Len(t, policies, len(seedPolicies), "all demo policies must be installed")
	}

	t.Log("seeded users can verify their demo passwords")
	{
		users, err := loadCollection[model.User](ctx, redisClient, registeredUsersKey)
		require.NoError(t, err, "failed to read users")
		require.Len(t, users, len(seedUsers), "all demo users must be installed")
		require.NoError(t, users[0].VerifyPassword("admin123"), "seeded hash must verify demo password")
	}

	t.Log("existing collections are left untouched on repeated seed")
	{
		customerRps := NewRedisCustomerRepository(redisClient)
		c := &model.Customer{FirstName: "Extra", LastName: "Row", Email: "extra@somemail.com", Phone: "9123456780", Address: "Pune"}
		require.NoError(t, customerRps.Create(ctx, c), "failed to create customer")

		require.NoError(t, Seed(ctx, redisClient), "failed to seed repeatedly")

		customers, err := loadCollection[model.Customer](ctx, redisClient, customersKey)
		require.NoError(t, err, "failed to read customers")
		require.Len(t, customers, len(seedCustomers)+1, "repeated seed must not overwrite the collection")
	}
}
