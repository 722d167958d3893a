package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/storecore/backend/internal/domain/pricing"
	"github.com/storecore/backend/internal/domain/shared"
	"github.com/storecore/backend/internal/domain/shared/valueobject"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormVariantPriceRepository implements pricing.VariantPriceRepository using
// GORM. Reads on the mutation paths take row locks when made inside a unit of
// work, serializing concurrent mutations of the same variant's record set.
// FindByVariantAndChannel backs price resolution and never locks.
type GormVariantPriceRepository struct {
	db *gorm.DB
}

// NewGormVariantPriceRepository creates a new GormVariantPriceRepository
func NewGormVariantPriceRepository(db *gorm.DB) *GormVariantPriceRepository {
	return &GormVariantPriceRepository{db: db}
}

// FindByID finds a price record by its ID
func (r *GormVariantPriceRepository) FindByID(ctx context.Context, id uuid.UUID) (*pricing.VariantPrice, error) {
	var price pricing.VariantPrice
	if err := r.query(ctx).First(&price, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &price, nil
}

// FindByKey finds the price record for a (variant, channel, currency) triple
func (r *GormVariantPriceRepository) FindByKey(ctx context.Context, variantID, channelID uuid.UUID, currencyCode valueobject.Currency) (*pricing.VariantPrice, error) {
	var price pricing.VariantPrice
	err := r.query(ctx).
		Where("variant_id = ? AND channel_id = ? AND currency_code = ?", variantID, channelID, currencyCode).
		First(&price).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &price, nil
}

// FindByVariant returns all price records for a variant across all channels
// and currencies
func (r *GormVariantPriceRepository) FindByVariant(ctx context.Context, variantID uuid.UUID) ([]pricing.VariantPrice, error) {
	var prices []pricing.VariantPrice
	err := r.query(ctx).
		Where("variant_id = ?", variantID).
		Order("created_at asc").
		Find(&prices).Error
	if err != nil {
		return nil, err
	}
	return prices, nil
}

// FindByVariantAndChannel returns a variant's price records within one
// channel. It serves display-price resolution, which only reads, so it does
// not lock the rows even inside a transaction.
func (r *GormVariantPriceRepository) FindByVariantAndChannel(ctx context.Context, variantID, channelID uuid.UUID) ([]pricing.VariantPrice, error) {
	var prices []pricing.VariantPrice
	err := dbFor(ctx, r.db).Model(&pricing.VariantPrice{}).
		Where("variant_id = ? AND channel_id = ?", variantID, channelID).
		Find(&prices).Error
	if err != nil {
		return nil, err
	}
	return prices, nil
}

// Save creates or updates a price record. The composite unique index over
// (variant_id, channel_id, currency_code) rejects duplicate triples.
func (r *GormVariantPriceRepository) Save(ctx context.Context, price *pricing.VariantPrice) error {
	return dbFor(ctx, r.db).Save(price).Error
}

// Delete removes a price record by ID
func (r *GormVariantPriceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := dbFor(ctx, r.db).Delete(&pricing.VariantPrice{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// DeleteByKey removes the record for a triple; no-op if absent
func (r *GormVariantPriceRepository) DeleteByKey(ctx context.Context, variantID, channelID uuid.UUID, currencyCode valueobject.Currency) error {
	return dbFor(ctx, r.db).
		Where("variant_id = ? AND channel_id = ? AND currency_code = ?", variantID, channelID, currencyCode).
		Delete(&pricing.VariantPrice{}).Error
}

// query returns a read query, locking rows when inside a transaction
func (r *GormVariantPriceRepository) query(ctx context.Context) *gorm.DB {
	db := dbFor(ctx, r.db).Model(&pricing.VariantPrice{})
	if inTransaction(ctx) {
		db = db.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return db
}
