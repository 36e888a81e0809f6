package service

import (
	"context"
	"fmt"

	"github.com/umalmyha/insurance/internal/errors"
	"github.com/umalmyha/insurance/internal/model"
	"github.com/umalmyha/insurance/internal/repository"
)

type ClaimService interface {
	FindAll(context.Context) ([]model.Claim, error)
	Create(context.Context, *model.Claim) (*model.Claim, error)
	DeleteByID(context.Context, int) error
}

type claimService struct {
	claimRepo repository.ClaimRepository
	enricher  *Enricher
}

func NewClaimService(claimRepo repository.ClaimRepository, enricher *Enricher) ClaimService {
	return &claimService{claimRepo: claimRepo, enricher: enricher}
}

func (s *claimService) FindAll(ctx context.Context) ([]model.Claim, error) {
	claims, err := s.claimRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	for i := range claims {
		claims[i].CustomerPolicy = s.enricher.AssignmentByID(ctx, claims[i].CustomerPolicyID)
	}
	return claims, nil
}

func (s *claimService) Create(ctx context.Context, c *model.Claim) (*model.Claim, error) {
	if err := s.claimRepo.Create(ctx, c); err != nil {
		return nil, err
	}

	c.CustomerPolicy = s.enricher.AssignmentByID(ctx, c.CustomerPolicyID)
	return c, nil
}

func (s *claimService) DeleteByID(ctx context.Context, id int) error {
	ok, err := s.claimRepo.DeleteByID(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return errors.NewEntryNotFoundErr(fmt.Sprintf("Claim with ID %d not found", id))
	}
	return nil
}
