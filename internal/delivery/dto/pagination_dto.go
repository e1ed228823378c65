package dto

// PageInfo describes the page a list response was cut from.
type PageInfo struct {
	Page     int   `json:"-"`
	PageSize int   `json:"-"`
	Total    int64 `json:"-"`
}
