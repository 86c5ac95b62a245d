package repository

import (
	"time"

	"github.com/pingui001/Crud-y-DB/internal/model"
)

type InvoiceEntity struct {
	ID             int64              `db:"id_invoice"      gorm:"primaryKey;autoIncrement;column:id_invoice"`
	PlatformUsed   string             `db:"platform_used"   gorm:"column:platform_used;not null"`
	InvoiceNumber  string             `db:"invoice_number"  gorm:"column:invoice_number;not null;unique"`
	TransactionID  int64              `db:"transaction_id"  gorm:"column:transaction_id;index"`
	Transaction    *TransactionEntity `db:"-"               gorm:"foreignKey:TransactionID;references:ID;constraint:OnDelete:SET NULL"`
	InvoicePeriod  *time.Time         `db:"invoice_period"  gorm:"column:invoice_period;type:date"`
	InvoicedAmount int64              `db:"invoiced_amount" gorm:"column:invoiced_amount;not null"`
	AmountPaid     int64              `db:"amount_paid"     gorm:"column:amount_paid;not null"`
}

func (InvoiceEntity) TableName() string {
	return "invoices"
}

func toInvoiceEntity(m *model.Invoice) *InvoiceEntity {
	if m == nil {
		return nil
	}
	return &InvoiceEntity{
		ID:             m.ID,
		PlatformUsed:   m.PlatformUsed,
		InvoiceNumber:  m.InvoiceNumber,
		TransactionID:  m.TransactionID,
		InvoicePeriod:  m.InvoicePeriod,
		InvoicedAmount: m.InvoicedAmount,
		AmountPaid:     m.AmountPaid,
	}
}

func toInvoiceModel(e *InvoiceEntity) *model.Invoice {
	if e == nil {
		return nil
	}
	return &model.Invoice{
		ID:             e.ID,
		PlatformUsed:   e.PlatformUsed,
		InvoiceNumber:  e.InvoiceNumber,
		TransactionID:  e.TransactionID,
		InvoicePeriod:  e.InvoicePeriod,
		InvoicedAmount: e.InvoicedAmount,
		AmountPaid:     e.AmountPaid,
	}
}

func toInvoiceModels(entities []*InvoiceEntity) []*model.Invoice {
	if entities == nil {
		return nil
	}
	models := make([]*model.Invoice, len(entities))
	for i, e := range entities {
		models[i] = toInvoiceModel(e)
	}
	return models
}
