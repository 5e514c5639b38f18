package partner

import (
	"strings"
	"time"

	"github.com/washpos/backend/internal/domain/shared"
)

// Customer represents a customer of the store.
// CustomerNumber is the sequential human-readable identifier (prefix "C")
// printed on receipts; the UUID is the storage key.
type Customer struct {
	shared.BaseAggregateRoot
	CustomerNumber string
	Name           string
	Phone          string
	Email          string
	Address        string
}

// NewCustomer creates a new customer with a pre-minted customer number
func NewCustomer(customerNumber, name, phone string) (*Customer, error) {
	if customerNumber == "" {
		return nil, shared.NewDomainError("INVALID_CUSTOMER_NUMBER", "Customer number cannot be empty")
	}
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_CUSTOMER_NAME", "Customer name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewDomainError("INVALID_CUSTOMER_NAME", "Customer name cannot exceed 200 characters")
	}

	return &Customer{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		CustomerNumber:    customerNumber,
		Name:              name,
		Phone:             phone,
	}, nil
}

// Update updates the customer's contact details
func (c *Customer) Update(name, phone, email, address string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_CUSTOMER_NAME", "Customer name cannot be empty")
	}

	c.Name = name
	c.Phone = phone
	c.Email = email
	c.Address = address
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}
