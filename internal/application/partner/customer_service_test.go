package partner

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/washpos/backend/internal/domain/partner"
	"github.com/washpos/backend/internal/domain/sequence"
	"github.com/washpos/backend/internal/domain/shared"
)

type mockCustomerRepo struct {
	mock.Mock
}

func (m *mockCustomerRepo) FindByID(ctx context.Context, id uuid.UUID) (*partner.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Customer), args.Error(1)
}

func (m *mockCustomerRepo) FindByCustomerNumber(ctx context.Context, customerNumber string) (*partner.Customer, error) {
	args := m.Called(ctx, customerNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Customer), args.Error(1)
}

func (m *mockCustomerRepo) FindAll(ctx context.Context, filter shared.Filter) ([]*partner.Customer, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*partner.Customer), args.Error(1)
}

func (m *mockCustomerRepo) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockCustomerRepo) Save(ctx context.Context, customer *partner.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *mockCustomerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// memoryCounterStore is a test double for the sequence counter
type memoryCounterStore struct {
	values map[string]int64
}

func newMemoryCounterStore() *memoryCounterStore {
	return &memoryCounterStore{values: make(map[string]int64)}
}

func (s *memoryCounterStore) Next(_ context.Context, prefix string) (int64, error) {
	s.values[prefix]++
	return s.values[prefix], nil
}

func (s *memoryCounterStore) Close() error { return nil }

func TestCustomerService_CreateCustomer(t *testing.T) {
	repo := new(mockCustomerRepo)
	svc := NewCustomerService(repo, sequence.NewGenerator(newMemoryCounterStore()))
	ctx := context.Background()

	repo.On("Save", ctx, mock.AnythingOfType("*partner.Customer")).Return(nil)

	resp, err := svc.CreateCustomer(ctx, &CreateCustomerRequest{
		Name:  "Priya Sharma",
		Phone: "9876543210",
		Email: "priya@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, "C00001", resp.CustomerNumber)
	assert.Equal(t, "Priya Sharma", resp.Name)
	assert.Equal(t, "priya@example.com", resp.Email)
	repo.AssertExpectations(t)

	t.Run("numbers advance per customer", func(t *testing.T) {
		resp2, err := svc.CreateCustomer(ctx, &CreateCustomerRequest{Name: "Arun"})
		require.NoError(t, err)
		assert.Equal(t, "C00002", resp2.CustomerNumber)
	})
}

func TestCustomerService_CreateCustomer_InvalidName(t *testing.T) {
	repo := new(mockCustomerRepo)
	svc := NewCustomerService(repo, sequence.NewGenerator(newMemoryCounterStore()))

	_, err := svc.CreateCustomer(context.Background(), &CreateCustomerRequest{Name: ""})

	assert.Error(t, err)
	repo.AssertNotCalled(t, "Save")
}

func TestCustomerService_UpdateCustomer(t *testing.T) {
	repo := new(mockCustomerRepo)
	svc := NewCustomerService(repo, sequence.NewGenerator(newMemoryCounterStore()))
	ctx := context.Background()

	existing, err := partner.NewCustomer("C00007", "Old Name", "111")
	require.NoError(t, err)

	repo.On("FindByID", ctx, existing.GetID()).Return(existing, nil)
	repo.On("Save", ctx, existing).Return(nil)

	resp, err := svc.UpdateCustomer(ctx, existing.GetID(), &UpdateCustomerRequest{
		Name:  "New Name",
		Phone: "222",
	})

	require.NoError(t, err)
	assert.Equal(t, "New Name", resp.Name)
	assert.Equal(t, "222", resp.Phone)
	assert.Equal(t, "C00007", resp.CustomerNumber)
}

func TestCustomerService_GetCustomer_NotFound(t *testing.T) {
	repo := new(mockCustomerRepo)
	svc := NewCustomerService(repo, sequence.NewGenerator(newMemoryCounterStore()))
	ctx := context.Background()

	id := uuid.New()
	repo.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)

	_, err := svc.GetCustomer(ctx, id)

	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestCustomerService_ListCustomers(t *testing.T) {
	repo := new(mockCustomerRepo)
	svc := NewCustomerService(repo, sequence.NewGenerator(newMemoryCounterStore()))
	ctx := context.Background()

	c1, err := partner.NewCustomer("C00001", "One", "")
	require.NoError(t, err)
	c2, err := partner.NewCustomer("C00002", "Two", "")
	require.NoError(t, err)

	filter := shared.DefaultFilter()
	repo.On("FindAll", ctx, filter).Return([]*partner.Customer{c1, c2}, nil)
	repo.On("Count", ctx, filter).Return(int64(2), nil)

	page, err := svc.ListCustomers(ctx, filter)

	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, int64(2), page.Total)
}
