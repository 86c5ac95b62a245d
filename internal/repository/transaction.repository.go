package repository

import (
	"context"
	"errors"

	"github.com/pingui001/Crud-y-DB/internal/model"
	"github.com/pingui001/Crud-y-DB/pkg/pg"
	"gorm.io/gorm"
)

type TransactionRepository struct {
	*pg.DB
}

func NewTransactionRepository(db *pg.DB) *TransactionRepository {
	return &TransactionRepository{
		db,
	}
}

func (r *TransactionRepository) Create(ctx context.Context, txn *model.Transaction) (*model.Transaction, error) {
	entity := toTransactionEntity(txn)

	if err := r.Write(ctx).Create(entity).Error; err != nil {
		return nil, classifyWriteError(err)
	}

	return toTransactionModel(entity), nil
}

func (r *TransactionRepository) List(ctx context.Context) ([]*model.Transaction, error) {
	var entities []*TransactionEntity
	if err := r.Read(ctx).Order("id_transaction ASC").Find(&entities).Error; err != nil {
		return nil, err
	}
	return toTransactionModels(entities), nil
}

func (r *TransactionRepository) Get(ctx context.Context, id int64) (*model.Transaction, error) {
	var entity TransactionEntity
	err := r.Read(ctx).Where("id_transaction = ?", id).First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, err
	}
	return toTransactionModel(&entity), nil
}

func (r *TransactionRepository) Update(ctx context.Context, id int64, u model.TransactionUpdate) error {
	changes, _ := u.Changes()

	var entity TransactionEntity
	err := r.Write(ctx).Where("id_transaction = ?", id).First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTransactionNotFound
		}
		return err
	}

	result := r.Write(ctx).
		Model(&TransactionEntity{}).
		Where("id_transaction = ?", id).
		Updates(changes)
	if result.Error != nil {
		return classifyWriteError(result.Error)
	}
	return nil
}

func (r *TransactionRepository) Delete(ctx context.Context, id int64) error {
	result := r.Write(ctx).Where("id_transaction = ?", id).Delete(&TransactionEntity{})
	if result.Error != nil {
		return classifyWriteError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}
