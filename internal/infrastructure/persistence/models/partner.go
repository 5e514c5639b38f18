package models

import (
	"github.com/washpos/backend/internal/domain/partner"
)

// CustomerModel is the persistence model for the Customer aggregate root
type CustomerModel struct {
	AggregateModel
	CustomerNumber string `gorm:"type:varchar(20);not null;uniqueIndex"`
	Name           string `gorm:"type:varchar(200);not null;index"`
	Phone          string `gorm:"type:varchar(50);index"`
	Email          string `gorm:"type:varchar(200)"`
	Address        string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (CustomerModel) TableName() string {
	return "customers"
}

// ToDomain converts the persistence model to a domain Customer
func (m *CustomerModel) ToDomain() *partner.Customer {
	return &partner.Customer{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		CustomerNumber:    m.CustomerNumber,
		Name:              m.Name,
		Phone:             m.Phone,
		Email:             m.Email,
		Address:           m.Address,
	}
}

// FromDomain populates the persistence model from a domain Customer
func (m *CustomerModel) FromDomain(c *partner.Customer) {
	m.FromDomainAggregateRoot(c.BaseAggregateRoot)
	m.CustomerNumber = c.CustomerNumber
	m.Name = c.Name
	m.Phone = c.Phone
	m.Email = c.Email
	m.Address = c.Address
}

// CustomerModelFromDomain creates a new persistence model from a domain Customer
func CustomerModelFromDomain(c *partner.Customer) *CustomerModel {
	m := &CustomerModel{}
	m.FromDomain(c)
	return m
}
