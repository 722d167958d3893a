package persistence

import (
	"fmt"
	"strings"

	"github.com/storecore/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// applyFilter applies ordering and pagination to a query. The order column
// comes from the repository's whitelist check, not raw user input.
func applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.OrderBy != "" {
		dir := "asc"
		if strings.EqualFold(filter.OrderDir, "desc") {
			dir = "desc"
		}
		query = query.Order(fmt.Sprintf("%s %s", filter.OrderBy, dir))
	}

	if filter.PageSize > 0 {
		query = query.Offset(filter.Offset()).Limit(filter.PageSize)
	}

	return query
}
