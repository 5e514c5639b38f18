package partner

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/washpos/backend/internal/domain/partner"
	"github.com/washpos/backend/internal/domain/sequence"
	"github.com/washpos/backend/internal/domain/shared"
)

type CreateCustomerRequest struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone"`
	Email   string `json:"email" binding:"omitempty,email"`
	Address string `json:"address"`
}

type UpdateCustomerRequest struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone"`
	Email   string `json:"email" binding:"omitempty,email"`
	Address string `json:"address"`
}

type CustomerResponse struct {
	ID             uuid.UUID `json:"id"`
	CustomerNumber string    `json:"customer_number"`
	Name           string    `json:"name"`
	Phone          string    `json:"phone"`
	Email          string    `json:"email"`
	Address        string    `json:"address"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func toCustomerResponse(c *partner.Customer) *CustomerResponse {
	return &CustomerResponse{
		ID:             c.GetID(),
		CustomerNumber: c.CustomerNumber,
		Name:           c.Name,
		Phone:          c.Phone,
		Email:          c.Email,
		Address:        c.Address,
		CreatedAt:      c.GetCreatedAt(),
		UpdatedAt:      c.GetUpdatedAt(),
	}
}

// CustomerService manages the customer book. Customer numbers are minted
// from the shared sequence so they stay unique and gap-aware across
// concurrent registrations.
type CustomerService struct {
	customerRepo partner.CustomerRepository
	numbers      *sequence.Generator
}

func NewCustomerService(customerRepo partner.CustomerRepository, numbers *sequence.Generator) *CustomerService {
	return &CustomerService{customerRepo: customerRepo, numbers: numbers}
}

func (s *CustomerService) CreateCustomer(ctx context.Context, req *CreateCustomerRequest) (*CustomerResponse, error) {
	customerNumber, err := s.numbers.Generate(ctx, sequence.PrefixCustomer, sequence.Width(sequence.PrefixCustomer))
	if err != nil {
		return nil, err
	}

	customer, err := partner.NewCustomer(customerNumber, req.Name, req.Phone)
	if err != nil {
		return nil, err
	}
	customer.Email = req.Email
	customer.Address = req.Address

	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

func (s *CustomerService) GetCustomer(ctx context.Context, id uuid.UUID) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

func (s *CustomerService) GetCustomerByNumber(ctx context.Context, customerNumber string) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByCustomerNumber(ctx, customerNumber)
	if err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

func (s *CustomerService) ListCustomers(ctx context.Context, filter shared.Filter) (*shared.Paginated[*CustomerResponse], error) {
	customers, err := s.customerRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.customerRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]*CustomerResponse, len(customers))
	for i, customer := range customers {
		responses[i] = toCustomerResponse(customer)
	}
	page := shared.NewPaginated(responses, total, filter.Page, filter.PageSize)
	return &page, nil
}

func (s *CustomerService) UpdateCustomer(ctx context.Context, id uuid.UUID, req *UpdateCustomerRequest) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := customer.Update(req.Name, req.Phone, req.Email, req.Address); err != nil {
		return nil, err
	}
	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

func (s *CustomerService) DeleteCustomer(ctx context.Context, id uuid.UUID) error {
	if _, err := s.customerRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.customerRepo.Delete(ctx, id)
}
