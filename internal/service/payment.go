package service

import (
	"context"
	"fmt"

	"github.com/umalmyha/insurance/internal/errors"
	"github.com/umalmyha/insurance/internal/model"
	"github.com/umalmyha/insurance/internal/repository"
)

type PaymentService interface {
	FindAll(context.Context) ([]model.Payment, error)
	Create(context.Context, *model.Payment) (*model.Payment, error)
	DeleteByID(context.Context, int) error
}

type paymentService struct {
	paymentRepo repository.PaymentRepository
	enricher    *Enricher
}

func NewPaymentService(paymentRepo repository.PaymentRepository, enricher *Enricher) PaymentService {
	return &paymentService{paymentRepo: paymentRepo, enricher: enricher}
}

func (s *paymentService) FindAll(ctx context.Context) ([]model.Payment, error) {
	payments, err := s.paymentRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	for i := range payments {
		payments[i].CustomerPolicy = s.enricher.AssignmentByID(ctx, payments[i].CustomerPolicyID)
	}
	return payments, nil
}

func (s *paymentService) Create(ctx context.Context, p *model.Payment) (*model.Payment, error) {
	if err := s.paymentRepo.Create(ctx, p); err != nil {
		return nil, err
	}

	p.CustomerPolicy = s.enricher.AssignmentByID(ctx, p.CustomerPolicyID)
	return p, nil
}

func (s *paymentService) DeleteByID(ctx context.Context, id int) error {
	ok, err := s.paymentRepo.DeleteByID(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return errors.NewEntryNotFoundErr(fmt.Sprintf("Payment with ID %d not found", id))
	}
	return nil
}
