package service

import (
	"sort"

	"medtour/internal/model"
	"medtour/internal/utils"
)

// DefaultPageSize is the number of providers per listing page
const DefaultPageSize = 3

// ListingEngine filters, sorts and pages provider records
type ListingEngine struct {
	pageSize int
}

// NewListingEngine creates a listing engine with a fixed page size
func NewListingEngine(pageSize int) *ListingEngine {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &ListingEngine{pageSize: pageSize}
}

// PageSize returns the configured page size
func (e *ListingEngine) PageSize() int {
	return e.pageSize
}

// ListingPage is the result of applying a FilterState to a record set
type ListingPage struct {
	Results    []model.Provider
	Matched    []model.Provider // filtered and sorted, before paging
	Total      int
	TotalPages int
}

// Apply runs filter, sort and paginate for one FilterState
func (e *ListingEngine) Apply(records []model.Provider, state model.FilterState, pageSize int) ListingPage {
	if pageSize <= 0 {
		pageSize = e.pageSize
	}
	matched := SortProviders(FilterProviders(records, state.SelectedTags), state.SortKey)
	return ListingPage{
		Results:    Paginate(matched, state.Page, pageSize),
		Matched:    matched,
		Total:      len(matched),
		TotalPages: TotalPages(len(matched), pageSize),
	}
}

// FilterProviders keeps records offering at least one selected tag. With no
// selected tags every record is kept. Input order is preserved.
func FilterProviders(records []model.Provider, selectedTags []string) []model.Provider {
	out := make([]model.Provider, 0, len(records))
	if len(selectedTags) == 0 {
		return append(out, records...)
	}
	selected := make(map[string]bool, len(selectedTags))
	for _, t := range selectedTags {
		selected[utils.TagKey(t)] = true
	}
	for _, r := range records {
		if hasAnyTag(r.ServiceTags, selected) {
			out = append(out, r)
		}
	}
	return out
}

func hasAnyTag(tags []string, selected map[string]bool) bool {
	for _, t := range tags {
		if selected[utils.TagKey(t)] {
			return true
		}
	}
	return false
}

// SortProviders returns a stably sorted copy. Featured records always come
// first; within each group records follow key, ties keep input order.
func SortProviders(records []model.Provider, key model.SortKey) []model.Provider {
	out := make([]model.Provider, len(records))
	copy(out, records)

	less := lessFor(key)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].IsFeatured != out[j].IsFeatured {
			return out[i].IsFeatured
		}
		return less(&out[i], &out[j])
	})
	return out
}

func lessFor(key model.SortKey) func(a, b *model.Provider) bool {
	switch key {
	case model.SortPriceAsc:
		return func(a, b *model.Provider) bool { return a.PriceFrom < b.PriceFrom }
	case model.SortPriceDesc:
		return func(a, b *model.Provider) bool { return a.PriceFrom > b.PriceFrom }
	case model.SortRatingDesc:
		return func(a, b *model.Provider) bool { return a.Rating > b.Rating }
	default:
		return func(a, b *model.Provider) bool { return a.ReviewCount > b.ReviewCount }
	}
}

// Paginate returns page (1-based) of size pageSize. Pages below 1 read as
// page 1; pages past the end are empty.
func Paginate[T any](records []T, page, pageSize int) []T {
	if pageSize <= 0 {
		return []T{}
	}
	if page < 1 {
		page = 1
	}
	// compare page counts first, (page-1)*pageSize can overflow
	if page-1 >= TotalPages(len(records), pageSize) {
		return []T{}
	}
	start := (page - 1) * pageSize
	end := start + pageSize
	if end > len(records) {
		end = len(records)
	}
	return records[start:end]
}

// TotalPages is ceil(n/pageSize); zero records means zero pages
func TotalPages(n, pageSize int) int {
	if n <= 0 || pageSize <= 0 {
		return 0
	}
	return (n + pageSize - 1) / pageSize
}
