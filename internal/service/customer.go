package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/umalmyha/insurance/internal/cache"
	"github.com/umalmyha/insurance/internal/errors"
	"github.com/umalmyha/insurance/internal/model"
	"github.com/umalmyha/insurance/internal/repository"
)

type CustomerService interface {
	FindAll(context.Context) ([]model.Customer, error)
	Create(context.Context, *model.Customer) (*model.Customer, error)
	DeleteByID(context.Context, int) error
}

type customerService struct {
	customerRepo  repository.CustomerRepository
	customerCache cache.CustomerCache
}

func NewCustomerService(customerRepo repository.CustomerRepository, customerCache cache.CustomerCache) CustomerService {
	return &customerService{customerRepo: customerRepo, customerCache: customerCache}
}

func (s *customerService) FindAll(ctx context.Context) ([]model.Customer, error) {
	customers, err := s.customerRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return customers, nil
}

// Create persists a new customer, email and phone must be unique within
// the customer collection
func (s *customerService) Create(ctx context.Context, c *model.Customer) (*model.Customer, error) {
	customers, err := s.customerRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	for i := range customers {
		if strings.EqualFold(customers[i].Email, c.Email) {
			return nil, errors.NewBusinessErr("email", "Email already exists")
		}
		if customers[i].Phone == c.Phone {
			return nil, errors.NewBusinessErr("phone", "Phone number already exists")
		}
	}

	if err := s.customerRepo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *customerService) DeleteByID(ctx context.Context, id int) error {
	if err := s.customerCache.EvictByID(ctx, id); err != nil {
		return err
	}

	ok, err := s.customerRepo.DeleteByID(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return errors.NewEntryNotFoundErr(fmt.Sprintf("Customer with ID %d not found", id))
	}
	return nil
}
