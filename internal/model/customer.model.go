package model

import (
	"fmt"
	"strings"
)

type Customer struct {
	ID                   int64  `json:"id"`
	IdentificationNumber int64  `json:"identification_number"`
	CustomerName         string `json:"customer_name"`
	Address              string `json:"address"`
	Phone                string `json:"phone"`
	Email                string `json:"email"`
}

func (Customer) TableName() string { return "customers" }

// CustomerCreateRequest is the input for creating a customer. Every field is
// required; Validate names all missing ones in one error.
type CustomerCreateRequest struct {
	IdentificationNumber int64
	CustomerName         string
	Address              string
	Phone                string
	Email                string
}

func (p CustomerCreateRequest) Validate() error {
	var missing []string
	if p.IdentificationNumber == 0 {
		missing = append(missing, "identification_number")
	}
	if p.CustomerName == "" {
		missing = append(missing, "customer_name")
	}
	if p.Address == "" {
		missing = append(missing, "address")
	}
	if p.Phone == "" {
		missing = append(missing, "phone")
	}
	if p.Email == "" {
		missing = append(missing, "email")
	}
	if len(missing) > 0 {
		return &ValidationError{Message: fmt.Sprintf("missing required fields: %s", strings.Join(missing, ", "))}
	}
	return nil
}

// CustomerUpdate carries a partial update; nil fields are left untouched.
type CustomerUpdate struct {
	IdentificationNumber *int64  `json:"identification_number"`
	CustomerName         *string `json:"customer_name"`
	Address              *string `json:"address"`
	Phone                *string `json:"phone"`
	Email                *string `json:"email"`
}

// Changes returns the column set to update and whether anything was supplied.
func (u CustomerUpdate) Changes() (map[string]any, bool) {
	changes := make(map[string]any)
	if u.IdentificationNumber != nil {
		changes["identification_number"] = *u.IdentificationNumber
	}
	if u.CustomerName != nil {
		changes["customer_name"] = *u.CustomerName
	}
	if u.Address != nil {
		changes["address"] = *u.Address
	}
	if u.Phone != nil {
		changes["phone"] = *u.Phone
	}
	if u.Email != nil {
		changes["email"] = *u.Email
	}
	return changes, len(changes) > 0
}
