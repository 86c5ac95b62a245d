package services

import (
	"context"
	"errors"

	"github.com/pingui001/Crud-y-DB/internal/model"
)

var (
	// ErrNoFieldsToUpdate rejects partial updates that carry no fields at all.
	ErrNoFieldsToUpdate = errors.New("at least one field must be provided")
)

type CustomerRepository interface {
	Create(ctx context.Context, c *model.Customer) (*model.Customer, error)
	List(ctx context.Context) ([]*model.Customer, error)
	Get(ctx context.Context, id int64) (*model.Customer, error)
	Update(ctx context.Context, id int64, u model.CustomerUpdate) error
	Delete(ctx context.Context, id int64) error
}

type CustomerService struct {
	repo CustomerRepository
}

func NewCustomerService(repo CustomerRepository) *CustomerService {
	return &CustomerService{
		repo: repo,
	}
}

func (s *CustomerService) Create(ctx context.Context, p model.CustomerCreateRequest) (*model.Customer, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	c := &model.Customer{
		IdentificationNumber: p.IdentificationNumber,
		CustomerName:         p.CustomerName,
		Address:              p.Address,
		Phone:                p.Phone,
		Email:                p.Email,
	}
	return s.repo.Create(ctx, c)
}

func (s *CustomerService) List(ctx context.Context) ([]*model.Customer, error) {
	return s.repo.List(ctx)
}

func (s *CustomerService) Get(ctx context.Context, id int64) (*model.Customer, error) {
	return s.repo.Get(ctx, id)
}

func (s *CustomerService) Update(ctx context.Context, id int64, u model.CustomerUpdate) error {
	if _, any := u.Changes(); !any {
		return ErrNoFieldsToUpdate
	}
	return s.repo.Update(ctx, id, u)
}

func (s *CustomerService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
