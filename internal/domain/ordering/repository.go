package ordering

import (
	"context"

	"github.com/google/uuid"
	"github.com/storecore/backend/internal/domain/shared"
)

// OrderRepository defines the interface for order persistence
type OrderRepository interface {
	// FindByID finds an order by its ID, lines included
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)

	// FindByIDForUpdate finds an order and acquires a write lock on it for
	// the duration of the surrounding transaction. Line add/adjust must be
	// single-writer per order.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Order, error)

	// FindByCode finds an order by its code
	FindByCode(ctx context.Context, code string) (*Order, error)

	// FindAll finds all orders matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Order, error)

	// Save creates or updates an order together with its lines
	Save(ctx context.Context, order *Order) error

	// Delete deletes an order and its lines
	Delete(ctx context.Context, id uuid.UUID) error
}
