package service

import (
	"context"

	"github.com/umalmyha/insurance/internal/model"
	"github.com/umalmyha/insurance/internal/repository"
)

type PolicyService interface {
	FindAll(context.Context) ([]model.Policy, error)
}

type policyService struct {
	policyRepo repository.PolicyRepository
}

func NewPolicyService(policyRepo repository.PolicyRepository) PolicyService {
	return &policyService{policyRepo: policyRepo}
}

func (s *policyService) FindAll(ctx context.Context) ([]model.Policy, error) {
	policies, err := s.policyRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return policies, nil
}
