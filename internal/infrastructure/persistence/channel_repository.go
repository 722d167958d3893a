package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/storecore/backend/internal/domain/channel"
	"github.com/storecore/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormChannelRepository implements channel.ChannelRepository using GORM
type GormChannelRepository struct {
	db *gorm.DB
}

// NewGormChannelRepository creates a new GormChannelRepository
func NewGormChannelRepository(db *gorm.DB) *GormChannelRepository {
	return &GormChannelRepository{db: db}
}

// FindByID finds a channel by its ID
func (r *GormChannelRepository) FindByID(ctx context.Context, id uuid.UUID) (*channel.Channel, error) {
	var ch channel.Channel
	if err := dbFor(ctx, r.db).First(&ch, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &ch, nil
}

// FindByCode finds a channel by its code
func (r *GormChannelRepository) FindByCode(ctx context.Context, code string) (*channel.Channel, error) {
	var ch channel.Channel
	if err := dbFor(ctx, r.db).First(&ch, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &ch, nil
}

// FindByToken finds a channel by its API token
func (r *GormChannelRepository) FindByToken(ctx context.Context, token string) (*channel.Channel, error) {
	var ch channel.Channel
	if err := dbFor(ctx, r.db).First(&ch, "token = ?", token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &ch, nil
}

// FindAll finds all channels matching the filter
func (r *GormChannelRepository) FindAll(ctx context.Context, filter shared.Filter) ([]channel.Channel, error) {
	var channels []channel.Channel
	query := dbFor(ctx, r.db).Model(&channel.Channel{})

	if filter.Search != "" {
		query = query.Where("code LIKE ?", "%"+filter.Search+"%")
	}

	if err := applyFilter(query, filter).Find(&channels).Error; err != nil {
		return nil, err
	}
	return channels, nil
}

// Save creates or updates a channel
func (r *GormChannelRepository) Save(ctx context.Context, ch *channel.Channel) error {
	return dbFor(ctx, r.db).Save(ch).Error
}

// Delete deletes a channel
func (r *GormChannelRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := dbFor(ctx, r.db).Delete(&channel.Channel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
