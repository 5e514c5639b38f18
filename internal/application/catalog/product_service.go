package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/washpos/backend/internal/domain/catalog"
	"github.com/washpos/backend/internal/domain/shared"
)

// ProductService manages the laundry item catalog
type ProductService struct {
	productRepo catalog.ProductRepository
}

func NewProductService(productRepo catalog.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

func (s *ProductService) CreateProduct(ctx context.Context, req *CreateProductRequest) (*ProductResponse, error) {
	exists, err := s.productRepo.ExistsByBarcode(ctx, req.Barcode)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("DUPLICATE_BARCODE", "A product with this barcode already exists")
	}

	product, err := catalog.NewProduct(req.Name, req.Category, req.Barcode, catalog.ServiceRates{
		Iron:        req.IronRate,
		WashAndIron: req.WashAndIronRate,
		DryClean:    req.DryCleanRate,
	})
	if err != nil {
		return nil, err
	}
	product.Description = req.Description
	if req.TrackStock {
		if err := product.EnableStockTracking(req.InitialStock); err != nil {
			return nil, err
		}
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

func (s *ProductService) GetProduct(ctx context.Context, id uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

func (s *ProductService) GetProductByBarcode(ctx context.Context, barcode string) (*ProductResponse, error) {
	product, err := s.productRepo.FindByBarcode(ctx, barcode)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

func (s *ProductService) ListProducts(ctx context.Context, filter shared.Filter) (*shared.Paginated[*ProductResponse], error) {
	products, err := s.productRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.productRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]*ProductResponse, len(products))
	for i, product := range products {
		responses[i] = toProductResponse(product)
	}
	page := shared.NewPaginated(responses, total, filter.Page, filter.PageSize)
	return &page, nil
}

func (s *ProductService) UpdateProduct(ctx context.Context, id uuid.UUID, req *UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := product.Update(req.Name, req.Category, req.Description); err != nil {
		return nil, err
	}
	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

func (s *ProductService) UpdateRates(ctx context.Context, id uuid.UUID, req *UpdateRatesRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := product.SetRates(catalog.ServiceRates{
		Iron:        req.IronRate,
		WashAndIron: req.WashAndIronRate,
		DryClean:    req.DryCleanRate,
	}); err != nil {
		return nil, err
	}
	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

func (s *ProductService) DeactivateProduct(ctx context.Context, id uuid.UUID) error {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	product.Deactivate()
	return s.productRepo.Save(ctx, product)
}

func (s *ProductService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if _, err := s.productRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.productRepo.Delete(ctx, id)
}
