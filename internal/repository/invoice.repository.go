package repository

import (
	"context"
	"errors"

	"github.com/pingui001/Crud-y-DB/internal/model"
	"github.com/pingui001/Crud-y-DB/pkg/pg"
	"gorm.io/gorm"
)

type InvoiceRepository struct {
	*pg.DB
}

func NewInvoiceRepository(db *pg.DB) *InvoiceRepository {
	return &InvoiceRepository{
		db,
	}
}

func (r *InvoiceRepository) Create(ctx context.Context, inv *model.Invoice) (*model.Invoice, error) {
	entity := toInvoiceEntity(inv)

	if err := r.Write(ctx).Create(entity).Error; err != nil {
		return nil, classifyWriteError(err)
	}

	return toInvoiceModel(entity), nil
}

func (r *InvoiceRepository) List(ctx context.Context) ([]*model.Invoice, error) {
	var entities []*InvoiceEntity
	if err := r.Read(ctx).Order("id_invoice ASC").Find(&entities).Error; err != nil {
		return nil, err
	}
	return toInvoiceModels(entities), nil
}

func (r *InvoiceRepository) Get(ctx context.Context, id int64) (*model.Invoice, error) {
	var entity InvoiceEntity
	err := r.Read(ctx).Where("id_invoice = ?", id).First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvoiceNotFound
		}
		return nil, err
	}
	return toInvoiceModel(&entity), nil
}

func (r *InvoiceRepository) Update(ctx context.Context, id int64, u model.InvoiceUpdate) error {
	changes, _ := u.Changes()

	var entity InvoiceEntity
	err := r.Write(ctx).Where("id_invoice = ?", id).First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvoiceNotFound
		}
		return err
	}

	result := r.Write(ctx).
		Model(&InvoiceEntity{}).
		Where("id_invoice = ?", id).
		Updates(changes)
	if result.Error != nil {
		return classifyWriteError(result.Error)
	}
	return nil
}

func (r *InvoiceRepository) Delete(ctx context.Context, id int64) error {
	result := r.Write(ctx).Where("id_invoice = ?", id).Delete(&InvoiceEntity{})
	if result.Error != nil {
		return classifyWriteError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrInvoiceNotFound
	}
	return nil
}
