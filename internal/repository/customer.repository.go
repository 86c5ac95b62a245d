package repository

import (
	"context"
	"errors"

	"github.com/pingui001/Crud-y-DB/internal/model"
	"github.com/pingui001/Crud-y-DB/pkg/pg"
	"gorm.io/gorm"
)

type CustomerRepository struct {
	*pg.DB
}

func NewCustomerRepository(db *pg.DB) *CustomerRepository {
	return &CustomerRepository{
		db,
	}
}

func (r *CustomerRepository) Create(ctx context.Context, c *model.Customer) (*model.Customer, error) {
	entity := toCustomerEntity(c)

	if err := r.Write(ctx).Create(entity).Error; err != nil {
		return nil, classifyWriteError(err)
	}

	return toCustomerModel(entity), nil
}

func (r *CustomerRepository) List(ctx context.Context) ([]*model.Customer, error) {
	var entities []*CustomerEntity
	if err := r.Read(ctx).Order("id_customer ASC").Find(&entities).Error; err != nil {
		return nil, err
	}
	return toCustomerModels(entities), nil
}

func (r *CustomerRepository) Get(ctx context.Context, id int64) (*model.Customer, error) {
	var entity CustomerEntity
	err := r.Read(ctx).Where("id_customer = ?", id).First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}
	return toCustomerModel(&entity), nil
}

// Update applies the supplied fields only; omitted fields keep their values.
// Existence is checked first so a missing row is reported as not-found rather
// than a silent zero-row update.
func (r *CustomerRepository) Update(ctx context.Context, id int64, u model.CustomerUpdate) error {
	changes, _ := u.Changes()

	var entity CustomerEntity
	err := r.Write(ctx).Where("id_customer = ?", id).First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCustomerNotFound
		}
		return err
	}

	result := r.Write(ctx).
		Model(&CustomerEntity{}).
		Where("id_customer = ?", id).
		Updates(changes)
	if result.Error != nil {
		return classifyWriteError(result.Error)
	}
	return nil
}

func (r *CustomerRepository) Delete(ctx context.Context, id int64) error {
	result := r.Write(ctx).Where("id_customer = ?", id).Delete(&CustomerEntity{})
	if result.Error != nil {
		return classifyWriteError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrCustomerNotFound
	}
	return nil
}
