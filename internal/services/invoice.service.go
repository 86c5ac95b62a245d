package services

import (
	"context"

	"github.com/pingui001/Crud-y-DB/internal/model"
)

type InvoiceRepository interface {
	Create(ctx context.Context, inv *model.Invoice) (*model.Invoice, error)
	List(ctx context.Context) ([]*model.Invoice, error)
	Get(ctx context.Context, id int64) (*model.Invoice, error)
	Update(ctx context.Context, id int64, u model.InvoiceUpdate) error
	Delete(ctx context.Context, id int64) error
}

type InvoiceService struct {
	repo InvoiceRepository
}

func NewInvoiceService(repo InvoiceRepository) *InvoiceService {
	return &InvoiceService{
		repo: repo,
	}
}

func (s *InvoiceService) Create(ctx context.Context, p model.InvoiceCreateRequest) (*model.Invoice, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	inv := &model.Invoice{
		PlatformUsed:   p.PlatformUsed,
		InvoiceNumber:  p.InvoiceNumber,
		TransactionID:  p.TransactionID,
		InvoicePeriod:  p.InvoicePeriod,
		InvoicedAmount: p.InvoicedAmount,
		AmountPaid:     p.AmountPaid,
	}
	return s.repo.Create(ctx, inv)
}

func (s *InvoiceService) List(ctx context.Context) ([]*model.Invoice, error) {
	return s.repo.List(ctx)
}

func (s *InvoiceService) Get(ctx context.Context, id int64) (*model.Invoice, error) {
	return s.repo.Get(ctx, id)
}

func (s *InvoiceService) Update(ctx context.Context, id int64, u model.InvoiceUpdate) error {
	if _, any := u.Changes(); !any {
		return ErrNoFieldsToUpdate
	}
	return s.repo.Update(ctx, id, u)
}

func (s *InvoiceService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
