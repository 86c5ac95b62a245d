package model

import (
	"fmt"
	"strings"
	"time"
)

type Transaction struct {
	ID                int64     `json:"id"`
	CustomerID        int64     `json:"customer_id"`
	DateAndTime       time.Time `json:"date_and_time"`
	TransactionAmount int64     `json:"transaction_amount"`
	TransactionStatus string    `json:"transaction_status"`
	TransactionType   string    `json:"transaction_type"`
}

func (Transaction) TableName() string { return "transactions" }

type TransactionCreateRequest struct {
	CustomerID        int64
	DateAndTime       time.Time
	TransactionAmount int64
	TransactionStatus string
	TransactionType   string
}

func (p TransactionCreateRequest) Validate() error {
	var missing []string
	if p.CustomerID == 0 {
		missing = append(missing, "customer_id")
	}
	if p.DateAndTime.IsZero() {
		missing = append(missing, "date_and_time")
	}
	if p.TransactionAmount == 0 {
		missing = append(missing, "transaction_amount")
	}
	if p.TransactionStatus == "" {
		missing = append(missing, "transaction_status")
	}
	if p.TransactionType == "" {
		missing = append(missing, "transaction_type")
	}
	if len(missing) > 0 {
		return &ValidationError{Message: fmt.Sprintf("missing required fields: %s", strings.Join(missing, ", "))}
	}
	return nil
}

type TransactionUpdate struct {
	CustomerID        *int64     `json:"customer_id"`
	DateAndTime       *time.Time `json:"date_and_time"`
	TransactionAmount *int64     `json:"transaction_amount"`
	TransactionStatus *string    `json:"transaction_status"`
	TransactionType   *string    `json:"transaction_type"`
}

func (u TransactionUpdate) Changes() (map[string]any, bool) {
	changes := make(map[string]any)
	if u.CustomerID != nil {
		changes["customer_id"] = *u.CustomerID
	}
	if u.DateAndTime != nil {
		changes["date_and_time"] = *u.DateAndTime
	}
	if u.TransactionAmount != nil {
		changes["transaction_amount"] = *u.TransactionAmount
	}
	if u.TransactionStatus != nil {
		changes["transaction_status"] = *u.TransactionStatus
	}
	if u.TransactionType != nil {
		changes["transaction_type"] = *u.TransactionType
	}
	return changes, len(changes) > 0
}
