package response

import "tour-booking-api/internal/usecase/shared"

type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

type PagedResponse[T any] struct {
	Items      []T        `json:"items"`
	Pagination Pagination `json:"pagination"`
}

func FromPage[T, U any](page shared.Page[T], convert func(T) U) PagedResponse[U] {
	items := make([]U, 0, len(page.Items))
	for _, it := range page.Items {
		items = append(items, convert(it))
	}
	return PagedResponse[U]{
		Items: items,
		Pagination: Pagination{
			Page:       page.Page,
			Limit:      page.Limit,
			Total:      page.Total,
			TotalPages: page.TotalPages(),
		},
	}
}
