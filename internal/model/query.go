package model

import (
	"fmt"
	"strings"
)

// SortKey selects the listing order
type SortKey string

// Supported sort keys
const (
	SortPopularity SortKey = "popularity"
	SortPriceAsc   SortKey = "price_asc"
	SortPriceDesc  SortKey = "price_desc"
	SortRatingDesc SortKey = "rating_desc"
)

// SortKeys lists sort keys in the order they are offered to visitors
var SortKeys = []SortKey{SortPopularity, SortPriceAsc, SortPriceDesc, SortRatingDesc}

// Label returns the display name of a sort key
func (k SortKey) Label() string {
	switch k {
	case SortPriceAsc:
		return "Price: Low to High"
	case SortPriceDesc:
		return "Price: High to Low"
	case SortRatingDesc:
		return "Highest Rated"
	default:
		return "Most Popular"
	}
}

// ParseSortKey accepts snake_case, camelCase or PascalCase names. An empty
// value selects popularity.
func ParseSortKey(s string) (SortKey, error) {
	norm := strings.ToLower(strings.ReplaceAll(strings.ReplaceAll(strings.TrimSpace(s), "_", ""), "-", ""))
	switch norm {
	case "", "popularity", "popular":
		return SortPopularity, nil
	case "priceasc":
		return SortPriceAsc, nil
	case "pricedesc":
		return SortPriceDesc, nil
	case "ratingdesc", "rating":
		return SortRatingDesc, nil
	}
	return "", fmt.Errorf("unknown sort key %q", s)
}

// FilterState is the visitor's current listing selection. Changing the tags
// or the sort key returns to the first page.
type FilterState struct {
	SelectedTags []string `json:"selected_tags"`
	SortKey      SortKey  `json:"sort"`
	Page         int      `json:"page"`
}

// DefaultFilterState returns the state a listing starts with
func DefaultFilterState() FilterState {
	return FilterState{SortKey: SortPopularity, Page: 1}
}

// HasTag reports whether tag is selected (case-insensitive)
func (f FilterState) HasTag(tag string) bool {
	for _, t := range f.SelectedTags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// WithTags replaces the selection and resets to page 1
func (f FilterState) WithTags(tags []string) FilterState {
	f.SelectedTags = append([]string(nil), tags...)
	f.Page = 1
	return f
}

// ToggleTag adds or removes a tag and resets to page 1
func (f FilterState) ToggleTag(tag string) FilterState {
	next := make([]string, 0, len(f.SelectedTags)+1)
	removed := false
	for _, t := range f.SelectedTags {
		if strings.EqualFold(t, tag) {
			removed = true
			continue
		}
		next = append(next, t)
	}
	if !removed {
		next = append(next, tag)
	}
	return f.WithTags(next)
}

// WithSort changes the sort key and resets to page 1
func (f FilterState) WithSort(key SortKey) FilterState {
	f.SortKey = key
	f.Page = 1
	return f
}

// WithPage moves to page p (minimum 1)
func (f FilterState) WithPage(p int) FilterState {
	if p < 1 {
		p = 1
	}
	f.Page = p
	return f
}

// ListingRequest represents a provider listing query
type ListingRequest struct {
	Tags     []string `form:"tag" json:"tags,omitempty"`
	Sort     string   `form:"sort" json:"sort,omitempty"`
	Page     int      `form:"page" json:"page,omitempty"`
	PageSize int      `form:"page_size" json:"page_size,omitempty"`
	Location string   `form:"location" json:"location,omitempty"`
}

// TagCount is a service tag with the number of providers offering it
type TagCount struct {
	Tag      string `json:"tag"`
	Count    int    `json:"count"`
	Selected bool   `json:"selected"`
}

// ListingFacets describes the filter options for the current result set
type ListingFacets struct {
	Tags     []TagCount `json:"tags"`
	PriceMin *float64   `json:"price_min,omitempty"`
	PriceMax *float64   `json:"price_max,omitempty"`
}

// ListingResponse represents one page of providers
type ListingResponse struct {
	Results    []Provider    `json:"results"`
	Total      int           `json:"total"`
	Page       int           `json:"page"`
	PageSize   int           `json:"page_size"`
	TotalPages int           `json:"total_pages"`
	HasMore    bool          `json:"has_more"`
	Filter     FilterState   `json:"filter"`
	Facets     ListingFacets `json:"facets"`
	Took       int64         `json:"took_ms"` // Response time in milliseconds
}
