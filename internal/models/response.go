package models

// Response is the envelope returned by all mutating operations.
type Response struct {
	Data    interface{} `json:"data"`
	Message string      `json:"message"`
}

// PageMeta describes the position of a page within the full result set.
type PageMeta struct {
	ItemCount int64 `json:"itemCount"`
	PageCount int   `json:"pageCount"`
	Page      int   `json:"page"`
	Take      int   `json:"take"`
}

// PaginatedResponse is the envelope returned by listing operations.
type PaginatedResponse struct {
	Data interface{} `json:"data"`
	Meta PageMeta    `json:"meta"`
}

// NewPageMeta computes page metadata from a total item count and the
// skip/take window that produced the page.
func NewPageMeta(itemCount int64, skip, take int) PageMeta {
	pageCount := int((itemCount + int64(take) - 1) / int64(take))
	return PageMeta{
		ItemCount: itemCount,
		PageCount: pageCount,
		Page:      skip/take + 1,
		Take:      take,
	}
}
