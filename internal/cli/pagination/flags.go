package pagination

import (
	"errors"
	"fmt"
	"strings"
)

// Sort orders accepted by ParseSort.
const (
	SortOrderAsc  = "asc"
	SortOrderDesc = "desc"
)

// Sentinel errors for --sort and the paging flags.
var (
	ErrInvalidSortOrder     = errors.New("sort order must be 'asc' or 'desc'")
	ErrInvalidSortFormat    = errors.New("sort must be 'field' or 'field:order', e.g. 'price:desc'")
	ErrEmptySortField       = errors.New("sort field is empty")
	ErrInvalidSortField     = errors.New("unknown sort field")
	ErrMixedPaginationModes = errors.New("--page and --offset are mutually exclusive")
)

// Params selects a window of a listing, either by --limit/--offset or by
// --page/--page-size. Limit 0 means no upper bound.
type Params struct {
	Limit    int
	Offset   int
	Page     int
	PageSize int

	SortField string
	SortOrder string
}

// NewParams returns unbounded, ascending Params.
func NewParams() *Params {
	return &Params{SortOrder: SortOrderAsc}
}

// Validate rejects negative values and mixed or half-specified page modes.
func (p Params) Validate() error {
	for _, f := range []struct {
		name  string
		value int
	}{
		{"limit", p.Limit},
		{"offset", p.Offset},
		{"page", p.Page},
		{"page-size", p.PageSize},
	} {
		if f.value < 0 {
			return fmt.Errorf("%s cannot be negative, got %d", f.name, f.value)
		}
	}

	switch {
	case p.Page > 0 && p.Offset > 0:
		return ErrMixedPaginationModes
	case p.PageSize > 0 && p.Page == 0:
		return errors.New("page must be specified with --page-size (pages start at 1)")
	case p.Page > 0 && p.PageSize == 0:
		return errors.New("page-size must be specified with --page")
	}
	return nil
}

// ParseSort splits "field" or "field:order". The order defaults to
// ascending and is case-insensitive; an empty input means catalog order.
func ParseSort(raw string) (string, string, error) {
	if raw == "" {
		return "", SortOrderAsc, nil
	}

	rawField, rawOrder, hasOrder := strings.Cut(raw, ":")
	if strings.Contains(rawOrder, ":") {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidSortFormat, raw)
	}

	field := strings.TrimSpace(rawField)
	if field == "" {
		return "", "", ErrEmptySortField
	}

	order := SortOrderAsc
	if hasOrder {
		order = strings.ToLower(strings.TrimSpace(rawOrder))
	}
	if order != SortOrderAsc && order != SortOrderDesc {
		return "", "", fmt.Errorf("%w: got %q", ErrInvalidSortOrder, order)
	}
	return field, order, nil
}

// IsPageBased reports whether --page selects the window.
func (p Params) IsPageBased() bool {
	return p.Page > 0
}

// OffsetLimit converts either mode to an offset and a limit.
func (p Params) OffsetLimit() (int, int) {
	if p.IsPageBased() {
		return (p.Page - 1) * p.PageSize, p.PageSize
	}
	return p.Offset, p.Limit
}

// Apply slices items to the window p selects. A page past the end yields
// the last page; an offset past the end yields nothing.
func Apply[T any](p Params, items []T) []T {
	n := len(items)
	if n == 0 {
		return items
	}

	start, limit := p.OffsetLimit()
	if start >= n {
		if !p.IsPageBased() {
			return []T{}
		}
		start = (n - 1) / p.PageSize * p.PageSize
	}

	end := n
	if limit > 0 {
		end = min(start+limit, n)
	}
	return items[start:end]
}
