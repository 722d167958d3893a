package channel

import (
	"context"

	"github.com/google/uuid"
	"github.com/storecore/backend/internal/domain/shared"
)

// ChannelRepository defines the interface for channel persistence
type ChannelRepository interface {
	// FindByID finds a channel by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Channel, error)

	// FindByCode finds a channel by its code
	FindByCode(ctx context.Context, code string) (*Channel, error)

	// FindByToken finds a channel by its API token
	FindByToken(ctx context.Context, token string) (*Channel, error)

	// FindAll finds all channels matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Channel, error)

	// Save creates or updates a channel
	Save(ctx context.Context, ch *Channel) error

	// Delete deletes a channel
	Delete(ctx context.Context, id uuid.UUID) error
}
