package repository

import (
	"github.com/pingui001/Crud-y-DB/internal/model"
)

type CustomerEntity struct {
	ID                   int64  `db:"id_customer"           gorm:"primaryKey;autoIncrement;column:id_customer"`
	IdentificationNumber int64  `db:"identification_number" gorm:"column:identification_number;not null;unique"`
	CustomerName         string `db:"customer_name"         gorm:"column:customer_name;not null"`
	Address              string `db:"address"               gorm:"column:address;not null"`
	Phone                string `db:"phone"                 gorm:"column:phone;not null"`
	Email                string `db:"email"                 gorm:"column:email;not null"`
}

func (CustomerEntity) TableName() string {
	return "customers"
}

func toCustomerEntity(m *model.Customer) *CustomerEntity {
	if m == nil {
		return nil
	}
	return &CustomerEntity{
		ID:                   m.ID,
		IdentificationNumber: m.IdentificationNumber,
		CustomerName:         m.CustomerName,
		Address:              m.Address,
		Phone:                m.Phone,
		Email:                m.Email,
	}
}

func toCustomerModel(e *CustomerEntity) *model.Customer {
	if e == nil {
		return nil
	}
	return &model.Customer{
		ID:                   e.ID,
		IdentificationNumber: e.IdentificationNumber,
		CustomerName:         e.CustomerName,
		Address:              e.Address,
		Phone:                e.Phone,
		Email:                e.Email,
	}
}

func toCustomerModels(entities []*CustomerEntity) []*model.Customer {
	if entities == nil {
		return nil
	}
	models := make([]*model.Customer, len(entities))
	for i, e := range entities {
		models[i] = toCustomerModel(e)
	}
	return models
}
