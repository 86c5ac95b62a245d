package repository

import (
	"time"

	"github.com/pingui001/Crud-y-DB/internal/model"
)

type TransactionEntity struct {
	ID                int64           `db:"id_transaction"     gorm:"primaryKey;autoIncrement;column:id_transaction"`
	CustomerID        int64           `db:"customer_id"        gorm:"column:customer_id;index"`
	Customer          *CustomerEntity `db:"-"                  gorm:"foreignKey:CustomerID;references:ID;constraint:OnDelete:SET NULL"`
	DateAndTime       time.Time       `db:"date_and_time"      gorm:"column:date_and_time;not null"`
	TransactionAmount int64           `db:"transaction_amount" gorm:"column:transaction_amount;not null"`
	TransactionStatus string          `db:"transaction_status" gorm:"column:transaction_status;not null"`
	TransactionType   string          `db:"transaction_type"   gorm:"column:transaction_type;not null"`
}

func (TransactionEntity) TableName() string {
	return "transactions"
}

func toTransactionEntity(m *model.Transaction) *TransactionEntity {
	if m == nil {
		return nil
	}
	return &TransactionEntity{
		ID:                m.ID,
		CustomerID:        m.CustomerID,
		DateAndTime:       m.DateAndTime,
		TransactionAmount: m.TransactionAmount,
		TransactionStatus: m.TransactionStatus,
		TransactionType:   m.TransactionType,
	}
}

func toTransactionModel(e *TransactionEntity) *model.Transaction {
	if e == nil {
		return nil
	}
	return &model.Transaction{
		ID:                e.ID,
		CustomerID:        e.CustomerID,
		DateAndTime:       e.DateAndTime,
		TransactionAmount: e.TransactionAmount,
		TransactionStatus: e.TransactionStatus,
		TransactionType:   e.TransactionType,
	}
}

func toTransactionModels(entities []*TransactionEntity) []*model.Transaction {
	if entities == nil {
		return nil
	}
	models := make([]*model.Transaction, len(entities))
	for i, e := range entities {
		models[i] = toTransactionModel(e)
	}
	return models
}
