package model

import (
	"fmt"
	"strings"
	"time"
)

type Invoice struct {
	ID             int64      `json:"id"`
	PlatformUsed   string     `json:"platform_used"`
	InvoiceNumber  string     `json:"invoice_number"`
	TransactionID  int64      `json:"transaction_id"`
	InvoicePeriod  *time.Time `json:"invoice_period"`
	InvoicedAmount int64      `json:"invoiced_amount"`
	AmountPaid     int64      `json:"amount_paid"`
}

func (Invoice) TableName() string { return "invoices" }

type InvoiceCreateRequest struct {
	PlatformUsed   string
	InvoiceNumber  string
	TransactionID  int64
	InvoicePeriod  *time.Time
	InvoicedAmount int64
	AmountPaid     int64
}

func (p InvoiceCreateRequest) Validate() error {
	var missing []string
	if p.PlatformUsed == "" {
		missing = append(missing, "platform_used")
	}
	if p.InvoiceNumber == "" {
		missing = append(missing, "invoice_number")
	}
	if p.TransactionID == 0 {
		missing = append(missing, "transaction_id")
	}
	if p.InvoicePeriod == nil {
		missing = append(missing, "invoice_period")
	}
	if p.InvoicedAmount == 0 {
		missing = append(missing, "invoiced_amount")
	}
	if p.AmountPaid == 0 {
		missing = append(missing, "amount_paid")
	}
	if len(missing) > 0 {
		return &ValidationError{Message: fmt.Sprintf("missing required fields: %s", strings.Join(missing, ", "))}
	}
	return nil
}

type InvoiceUpdate struct {
	PlatformUsed   *string    `json:"platform_used"`
	InvoiceNumber  *string    `json:"invoice_number"`
	TransactionID  *int64     `json:"transaction_id"`
	InvoicePeriod  *time.Time `json:"invoice_period"`
	InvoicedAmount *int64     `json:"invoiced_amount"`
	AmountPaid     *int64     `json:"amount_paid"`
}

func (u InvoiceUpdate) Changes() (map[string]any, bool) {
	changes := make(map[string]any)
	if u.PlatformUsed != nil {
		changes["platform_used"] = *u.PlatformUsed
	}
	if u.InvoiceNumber != nil {
		changes["invoice_number"] = *u.InvoiceNumber
	}
	if u.TransactionID != nil {
		changes["transaction_id"] = *u.TransactionID
	}
	if u.InvoicePeriod != nil {
		changes["invoice_period"] = *u.InvoicePeriod
	}
	if u.InvoicedAmount != nil {
		changes["invoiced_amount"] = *u.InvoicedAmount
	}
	if u.AmountPaid != nil {
		changes["amount_paid"] = *u.AmountPaid
	}
	return changes, len(changes) > 0
}
