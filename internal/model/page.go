package model

// Page is the pagination envelope returned by list endpoints.
type Page struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int64 `json:"pages"`
	Data  any   `json:"data"`
}

func NewPage(page, limit int, total int64, data any) *Page {
	pages := total / int64(limit)
	if total%int64(limit) != 0 {
		pages++
	}
	return &Page{Page: page, Limit: limit, Total: total, Pages: pages, Data: data}
}
