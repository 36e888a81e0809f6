package service

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/umalmyha/insurance/internal/cache"
	"github.com/umalmyha/insurance/internal/model"
	"github.com/umalmyha/insurance/internal/repository"
)

// Enricher expands foreign-key references into the referenced rows.
// An unresolvable or failing lookup yields an absent field, never an error -
// dangling references are an accepted state of the collections.
type Enricher struct {
	customerRepo   repository.CustomerRepository
	policyRepo     repository.PolicyRepository
	assignmentRepo repository.CustomerPolicyRepository
	customerCache  cache.CustomerCache
	policyCache    cache.PolicyCache
}

func NewEnricher(
	customerRepo repository.CustomerRepository,
	policyRepo repository.PolicyRepository,
	assignmentRepo repository.CustomerPolicyRepository,
	customerCache cache.CustomerCache,
	policyCache cache.PolicyCache,
) *Enricher {
	return &Enricher{
		customerRepo:   customerRepo,
		policyRepo:     policyRepo,
		assignmentRepo: assignmentRepo,
		customerCache:  customerCache,
		policyCache:    policyCache,
	}
}

// Assignment populates customer and policy of the assignment in place
func (e *Enricher) Assignment(ctx context.Context, cp *model.CustomerPolicy) {
	cp.Customer = e.customer(ctx, cp.CustomerID)
	cp.Policy = e.policy(ctx, cp.PolicyID)
}

// AssignmentByID loads an assignment and expands it, nil when absent
func (e *Enricher) AssignmentByID(ctx context.Context, id int) *model.CustomerPolicy {
	cp, err := e.assignmentRepo.FindByID(ctx, id)
	if err != nil {
		logrus.Warnf("enrichment lookup of assignment %d failed - %v", id, err)
		return nil
	}
	if cp == nil {
		return nil
	}

	e.Assignment(ctx, cp)
	return cp
}

func (e *Enricher) customer(ctx context.Context, id int) *model.Customer {
	if c, err := e.customerCache.FindByID(ctx, id); err == nil && c != nil {
		return c
	}

	c, err := e.customerRepo.FindByID(ctx, id)
	if err != nil {
		logrus.Warnf("enrichment lookup of customer %d failed - %v", id, err)
		return nil
	}
	if c == nil {
		return nil
	}

	if err := e.customerCache.Cache(ctx, c); err != nil {
		logrus.Warnf("failed to cache customer %d - %v", id, err)
	}
	return c
}

func (e *Enricher) policy(ctx context.Context, id int) *model.Policy {
	if p, err := e.policyCache.FindByID(ctx, id); err == nil && p != nil {
		return p
	}

	p, err := e.policyRepo.FindByID(ctx, id)
	if err != nil {
		logrus.Warnf("enrichment lookup of policy %d failed - %v", id, err)
		return nil
	}
	if p == nil {
		return nil
	}

	if err := e.policyCache.Cache(ctx, p); err != nil {
		logrus.Warnf("failed to cache policy %d - %v", id, err)
	}
	return p
}
