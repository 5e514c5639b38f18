package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/washpos/backend/internal/domain/catalog"
	"github.com/washpos/backend/internal/domain/shared"
)

type mockProductRepo struct {
	mock.Mock
}

func (m *mockProductRepo) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *mockProductRepo) FindByBarcode(ctx context.Context, barcode string) (*catalog.Product, error) {
	args := m.Called(ctx, barcode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *mockProductRepo) FindAll(ctx context.Context, filter shared.Filter) ([]*catalog.Product, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*catalog.Product), args.Error(1)
}

func (m *mockProductRepo) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockProductRepo) Save(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *mockProductRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockProductRepo) ExistsByBarcode(ctx context.Context, barcode string) (bool, error) {
	args := m.Called(ctx, barcode)
	return args.Bool(0), args.Error(1)
}

func (m *mockProductRepo) AdjustStock(ctx context.Context, productID uuid.UUID, delta decimal.Decimal) error {
	args := m.Called(ctx, productID, delta)
	return args.Error(0)
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestProductService_CreateProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("creates product with rates", func(t *testing.T) {
		repo := new(mockProductRepo)
		repo.On("ExistsByBarcode", ctx, "SKU-1").Return(false, nil)
		repo.On("Save", ctx, mock.AnythingOfType("*catalog.Product")).Return(nil)

		service := NewProductService(repo)
		resp, err := service.CreateProduct(ctx, &CreateProductRequest{
			Name:            "Shirt",
			Category:        "Tops",
			Barcode:         "SKU-1",
			IronRate:        dec("2.50"),
			WashAndIronRate: dec("5.00"),
			DryCleanRate:    dec("8.00"),
		})

		require.NoError(t, err)
		assert.Equal(t, "Shirt", resp.Name)
		assert.True(t, dec("2.50").Equal(resp.IronRate))
		assert.Equal(t, "active", resp.Status)
		assert.False(t, resp.TrackStock)
	})

	t.Run("rejects duplicate barcode", func(t *testing.T) {
		repo := new(mockProductRepo)
		repo.On("ExistsByBarcode", ctx, "SKU-1").Return(true, nil)

		service := NewProductService(repo)
		_, err := service.CreateProduct(ctx, &CreateProductRequest{Name: "Shirt", Barcode: "SKU-1"})

		require.Error(t, err)
		repo.AssertNotCalled(t, "Save", ctx, mock.Anything)
	})

	t.Run("enables stock tracking on request", func(t *testing.T) {
		repo := new(mockProductRepo)
		repo.On("ExistsByBarcode", ctx, "SKU-2").Return(false, nil)
		repo.On("Save", ctx, mock.AnythingOfType("*catalog.Product")).Return(nil)

		service := NewProductService(repo)
		resp, err := service.CreateProduct(ctx, &CreateProductRequest{
			Name:         "Hanger",
			Barcode:      "SKU-2",
			TrackStock:   true,
			InitialStock: dec("100"),
		})

		require.NoError(t, err)
		assert.True(t, resp.TrackStock)
		assert.True(t, dec("100").Equal(resp.Stock))
	})
}

func TestProductService_UpdateRates(t *testing.T) {
	ctx := context.Background()

	t.Run("saves new rates", func(t *testing.T) {
		repo := new(mockProductRepo)
		product, err := catalog.NewProduct("Shirt", "Tops", "SKU-1", catalog.ServiceRates{
			Iron: dec("2.00"), WashAndIron: dec("4.00"), DryClean: dec("6.00"),
		})
		require.NoError(t, err)

		repo.On("FindByID", ctx, product.GetID()).Return(product, nil)
		repo.On("Save", ctx, product).Return(nil)

		service := NewProductService(repo)
		resp, err := service.UpdateRates(ctx, product.GetID(), &UpdateRatesRequest{
			IronRate: dec("3.00"), WashAndIronRate: dec("5.00"), DryCleanRate: dec("7.00"),
		})

		require.NoError(t, err)
		assert.True(t, dec("3.00").Equal(resp.IronRate))
	})

	t.Run("propagates not found", func(t *testing.T) {
		repo := new(mockProductRepo)
		id := uuid.New()
		repo.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)

		service := NewProductService(repo)
		_, err := service.UpdateRates(ctx, id, &UpdateRatesRequest{})

		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}
