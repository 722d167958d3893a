package persistence

import (
	"testing"

	"github.com/storecore/backend/internal/domain/catalog"
	"github.com/storecore/backend/internal/domain/channel"
	"github.com/storecore/backend/internal/domain/ordering"
	"github.com/storecore/backend/internal/domain/pricing"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB opens an in-memory SQLite database with the full schema
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&catalog.ProductVariant{},
		&channel.Channel{},
		&pricing.VariantPrice{},
		&ordering.Order{},
		&ordering.OrderLine{},
	))

	return db
}
