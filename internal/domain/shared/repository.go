package shared

// Filter carries the list query options shared by all repositories. OrderBy
// is checked against each repository's column whitelist before it reaches a
// query, never interpolated from raw input.
type Filter struct {
	Page     int
	PageSize int
	OrderBy  string
	OrderDir string
	Search   string
}

// Offset returns the row offset for the filter's page
func (f Filter) Offset() int {
	page := f.Page
	if page < 1 {
		page = 1
	}
	return (page - 1) * f.PageSize
}
