package services

import (
	"context"

	"github.com/pingui001/Crud-y-DB/internal/model"
)

type TransactionRepository interface {
	Create(ctx context.Context, txn *model.Transaction) (*model.Transaction, error)
	List(ctx context.Context) ([]*model.Transaction, error)
	Get(ctx context.Context, id int64) (*model.Transaction, error)
	Update(ctx context.Context, id int64, u model.TransactionUpdate) error
	Delete(ctx context.Context, id int64) error
}

type TransactionService struct {
	repo TransactionRepository
}

func NewTransactionService(repo TransactionRepository) *TransactionService {
	return &TransactionService{
		repo: repo,
	}
}

func (s *TransactionService) Create(ctx context.Context, p model.TransactionCreateRequest) (*model.Transaction, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	txn := &model.Transaction{
		CustomerID:        p.CustomerID,
		DateAndTime:       p.DateAndTime,
		TransactionAmount: p.TransactionAmount,
		TransactionStatus: p.TransactionStatus,
		TransactionType:   p.TransactionType,
	}
	return s.repo.Create(ctx, txn)
}

func (s *TransactionService) List(ctx context.Context) ([]*model.Transaction, error) {
	return s.repo.List(ctx)
}

func (s *TransactionService) Get(ctx context.Context, id int64) (*model.Transaction, error) {
	return s.repo.Get(ctx, id)
}

func (s *TransactionService) Update(ctx context.Context, id int64, u model.TransactionUpdate) error {
	if _, any := u.Changes(); !any {
		return ErrNoFieldsToUpdate
	}
	return s.repo.Update(ctx, id, u)
}

func (s *TransactionService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
