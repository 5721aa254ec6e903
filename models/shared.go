package models

// Pagination is the paging envelope every list endpoint returns.
type Pagination struct {
	Current int `json:"current"`
	Pages   int `json:"pages"`
	Total   int `json:"total"`
	Limit   int `json:"limit"`
}

// ListFilter carries the filter fields shared by the admin dashboards.
// Resource-specific filters embed it.
type ListFilter struct {
	Status   string `form:"status" json:"status,omitempty"`
	Category string `form:"category" json:"category,omitempty"`
	Priority string `form:"priority" json:"priority,omitempty"`
	Search   string `form:"search" json:"search,omitempty"`
	Page     int    `form:"page" json:"page"`
	Limit    int    `form:"limit" json:"limit"`
}

// Sanitize clamps paging values the same way for every dashboard.
func (f *ListFilter) Sanitize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 20
	}
}
