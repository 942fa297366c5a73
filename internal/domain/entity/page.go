package entity

// PageRequest selects one page of a listing. Page is zero-based.
type PageRequest struct {
	Page int
	Size int
}

// Offset returns the number of rows to skip.
func (p PageRequest) Offset() int {
	if p.Page < 0 {
		return 0
	}

	return p.Page * p.Size
}

// Page is one slice of a listing together with the total row count.
type Page[T any] struct {
	Items []T   `json:"items"`
	Page  int   `json:"page"`
	Size  int   `json:"size"`
	Total int64 `json:"total"`
}

// NewPage wraps items returned for req.
func NewPage[T any](items []T, req PageRequest, total int64) *Page[T] {
	if items == nil {
		items = []T{}
	}

	return &Page[T]{Items: items, Page: req.Page, Size: req.Size, Total: total}
}
