package model

import (
	"net/url"
	"strconv"
)

const (
	DefaultCurrent   = 1
	DefaultPageSize  = 10
	DefaultSortField = "area_id"
)

// reserved query parameters, a filter of the same name is ignored
var fixedParams = map[string]bool{
	"page": true, "pageSize": true, "sortField": true, "sortOrder": true, "search": true,
}

// PageSizeOptions page sizes the list offers
var PageSizeOptions = []int{10, 20, 50, 100}

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// Pagination 分页
type Pagination struct {
	// 查询第几页，从1开始
	Current  int `json:"current"`
	PageSize int `json:"pageSize"`
}

// Sort 排序
type Sort struct {
	SortField string    `json:"sortField"`
	SortOrder SortOrder `json:"sortOrder"`
}

// TableState everything the list query depends on
type TableState struct {
	Pagination
	Sort
	// Search committed search text, the draft lives in the view
	Search  string            `json:"search"`
	Filters map[string]string `json:"filters"`
}

func DefaultTableState() TableState {
	return TableState{
		Pagination: Pagination{Current: DefaultCurrent, PageSize: DefaultPageSize},
		Sort:       Sort{SortField: DefaultSortField, SortOrder: SortAsc},
	}
}

func (t TableState) Clone() TableState {
	c := t
	if t.Filters != nil {
		c.Filters = make(map[string]string, len(t.Filters))
		for k, v := range t.Filters {
			c.Filters[k] = v
		}
	}
	return c
}

// Normalize coerces out of range values to their defaults and drops empty filters
func (t TableState) Normalize() TableState {
	c := t.Clone()
	if c.Current < 1 {
		c.Current = DefaultCurrent
	}
	if !ValidPageSize(c.PageSize) {
		c.PageSize = DefaultPageSize
	}
	if c.SortField == "" {
		c.SortField = DefaultSortField
	}
	if c.SortOrder != SortAsc && c.SortOrder != SortDesc {
		c.SortOrder = SortAsc
	}
	for k, v := range c.Filters {
		if k == "" || v == "" {
			delete(c.Filters, k)
		}
	}
	if len(c.Filters) == 0 {
		c.Filters = nil
	}
	return c
}

func ValidPageSize(size int) bool {
	for _, s := range PageSizeOptions {
		if s == size {
			return true
		}
	}
	return false
}

// Params the list query parameters, filters go top level
func (t TableState) Params() url.Values {
	values := url.Values{}
	for k, v := range t.Filters {
		if k != "" && v != "" && !fixedParams[k] {
			values.Set(k, v)
		}
	}
	values.Set("page", strconv.Itoa(t.Current))
	values.Set("pageSize", strconv.Itoa(t.PageSize))
	values.Set("sortField", t.SortField)
	values.Set("sortOrder", string(t.SortOrder))
	if t.Search != "" {
		values.Set("search", t.Search)
	}
	return values
}

// Key canonical encoding of t; two states share a key iff they would
// issue the same query
func (t TableState) Key() string {
	values := url.Values{}
	values.Set("current", strconv.Itoa(t.Current))
	values.Set("pageSize", strconv.Itoa(t.PageSize))
	values.Set("sortField", t.SortField)
	values.Set("sortOrder", string(t.SortOrder))
	values.Set("search", t.Search)
	for k, v := range t.Filters {
		if k != "" && v != "" && !fixedParams[k] {
			values.Set("f."+k, v)
		}
	}
	return values.Encode()
}
