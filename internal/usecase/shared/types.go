package shared

// PageParams is the normalized page/limit pair used by all list endpoints.
type PageParams struct {
	Page  int
	Limit int
}

const (
	defaultLimit = 10
	maxLimit     = 100
)

func (p PageParams) Normalize() PageParams {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = defaultLimit
	}
	if p.Limit > maxLimit {
		p.Limit = maxLimit
	}
	return p
}

func (p PageParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Page is one page of a paginated listing.
type Page[T any] struct {
	Items []T
	Total int64
	Page  int
	Limit int
}

func (p Page[T]) TotalPages() int {
	if p.Limit <= 0 {
		return 0
	}
	pages := int(p.Total) / p.Limit
	if int(p.Total)%p.Limit != 0 {
		pages++
	}
	return pages
}
