package service

import (
	"context"
	"fmt"

	"github.com/umalmyha/insurance/internal/errors"
	"github.com/umalmyha/insurance/internal/model"
	"github.com/umalmyha/insurance/internal/repository"
)

type CustomerPolicyService interface {
	FindAll(context.Context) ([]model.CustomerPolicy, error)
	Assign(context.Context, *model.CustomerPolicy) (*model.CustomerPolicy, error)
	DeleteByID(context.Context, int) error
}

type customerPolicyService struct {
	assignmentRepo repository.CustomerPolicyRepository
	enricher       *Enricher
}

func NewCustomerPolicyService(assignmentRepo repository.CustomerPolicyRepository, enricher *Enricher) CustomerPolicyService {
	return &customerPolicyService{assignmentRepo: assignmentRepo, enricher: enricher}
}

func (s *customerPolicyService) FindAll(ctx context.Context) ([]model.CustomerPolicy, error) {
	assignments, err := s.assignmentRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	for i := range assignments {
		s.enricher.Assignment(ctx, &assignments[i])
	}
	return assignments, nil
}

// Assign links a customer to a policy, the created row is returned enriched
func (s *customerPolicyService) Assign(ctx context.Context, cp *model.CustomerPolicy) (*model.CustomerPolicy, error) {
	if err := s.assignmentRepo.Create(ctx, cp); err != nil {
		return nil, err
	}

	s.enricher.Assignment(ctx, cp)
	return cp, nil
}

func (s *customerPolicyService) DeleteByID(ctx context.Context, id int) error {
	ok, err := s.assignmentRepo.DeleteByID(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return errors.NewEntryNotFoundErr(fmt.Sprintf("Policy with ID %d not found", id))
	}
	return nil
}
