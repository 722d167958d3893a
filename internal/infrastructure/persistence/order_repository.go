package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/storecore/backend/internal/domain/ordering"
	"github.com/storecore/backend/internal/domain/shared"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements ordering.OrderRepository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// FindByID finds an order by its ID, lines included
func (r *GormOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*ordering.Order, error) {
	var order ordering.Order
	if err := dbFor(ctx, r.db).Preload("Lines").First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

// FindByIDForUpdate finds an order and locks its row for the duration of the
// surrounding transaction
func (r *GormOrderRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*ordering.Order, error) {
	var order ordering.Order
	err := dbFor(ctx, r.db).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Preload("Lines").
		First(&order, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

// FindByCode finds an order by its code
func (r *GormOrderRepository) FindByCode(ctx context.Context, code string) (*ordering.Order, error) {
	var order ordering.Order
	if err := dbFor(ctx, r.db).Preload("Lines").First(&order, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

// FindAll finds all orders matching the filter
func (r *GormOrderRepository) FindAll(ctx context.Context, filter shared.Filter) ([]ordering.Order, error) {
	var orders []ordering.Order
	query := dbFor(ctx, r.db).Model(&ordering.Order{}).Preload("Lines")

	if filter.Search != "" {
		query = query.Where("code LIKE ?", "%"+filter.Search+"%")
	}

	if err := applyFilter(query, filter).Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// Save creates or updates an order together with its lines. Lines removed
// from the aggregate are deleted.
func (r *GormOrderRepository) Save(ctx context.Context, order *ordering.Order) error {
	save := func(tx *gorm.DB) error {
		if err := tx.Omit("Lines").Save(order).Error; err != nil {
			return err
		}

		lineIDs := make([]uuid.UUID, 0, len(order.Lines))
		for i := range order.Lines {
			line := &order.Lines[i]
			line.OrderID = order.ID
			if err := tx.Save(line).Error; err != nil {
				return err
			}
			lineIDs = append(lineIDs, line.ID)
		}

		query := tx.Where("order_id = ?", order.ID)
		if len(lineIDs) > 0 {
			query = query.Where("id NOT IN ?", lineIDs)
		}
		return query.Delete(&ordering.OrderLine{}).Error
	}

	if inTransaction(ctx) {
		return save(dbFor(ctx, r.db))
	}
	return r.db.WithContext(ctx).Transaction(save)
}

// Delete deletes an order and its lines
func (r *GormOrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	remove := func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&ordering.OrderLine{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&ordering.Order{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	}

	if inTransaction(ctx) {
		return remove(dbFor(ctx, r.db))
	}
	return r.db.WithContext(ctx).Transaction(remove)
}
