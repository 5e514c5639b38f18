package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/washpos/backend/internal/domain/order"
	"github.com/washpos/backend/internal/domain/shared"
	"github.com/washpos/backend/internal/infrastructure/persistence/models"
)

// GormReturnRepository implements order.ReturnRepository using GORM
type GormReturnRepository struct {
	db *gorm.DB
}

var _ order.ReturnRepository = (*GormReturnRepository)(nil)

func NewGormReturnRepository(db *gorm.DB) *GormReturnRepository {
	return &GormReturnRepository{db: db}
}

func (r *GormReturnRepository) FindByID(ctx context.Context, id uuid.UUID) (*order.Return, error) {
	var model models.ReturnModel
	if err := r.db.WithContext(ctx).Preload("Items").First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

func (r *GormReturnRepository) FindByReturnNumber(ctx context.Context, returnNumber string) (*order.Return, error) {
	var model models.ReturnModel
	if err := r.db.WithContext(ctx).Preload("Items").First(&model, "return_number = ?", returnNumber).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

func (r *GormReturnRepository) FindByOrderID(ctx context.Context, orderID uuid.UUID) ([]*order.Return, error) {
	var returnModels []models.ReturnModel
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("order_id = ?", orderID).
		Order("processed_at ASC").
		Find(&returnModels).Error; err != nil {
		return nil, err
	}

	returns := make([]*order.Return, len(returnModels))
	for i, model := range returnModels {
		returns[i] = model.ToDomain()
	}
	return returns, nil
}

func (r *GormReturnRepository) FindAll(ctx context.Context, filter shared.Filter) ([]*order.Return, error) {
	var returnModels []models.ReturnModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.ReturnModel{}).Preload("Items"), filter)

	if err := query.Find(&returnModels).Error; err != nil {
		return nil, err
	}

	returns := make([]*order.Return, len(returnModels))
	for i, model := range returnModels {
		returns[i] = model.ToDomain()
	}
	return returns, nil
}

func (r *GormReturnRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&models.ReturnModel{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormReturnRepository) Save(ctx context.Context, ret *order.Return) error {
	model := models.ReturnModelFromDomain(ret)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(model).Error
	})
}

// Delete removes a return and its items together. Processing uses this to
// compensate when a step after persistence fails.
func (r *GormReturnRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.ReturnItemModel{}, "return_id = ?", id).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.ReturnModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

func (r *GormReturnRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if filter.OrderBy != "" {
		orderDir := "ASC"
		if strings.ToLower(filter.OrderDir) == "desc" {
			orderDir = "DESC"
		}
		query = query.Order(filter.OrderBy + " " + orderDir)
	} else {
		query = query.Order("processed_at DESC")
	}
	return query
}

func (r *GormReturnRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("return_number ILIKE ? OR order_number ILIKE ?", searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "complete":
			query = query.Where("complete = ?", value)
		case "order_id":
			query = query.Where("order_id = ?", value)
		}
	}
	return query
}
