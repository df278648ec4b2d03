package pagination

// Meta describes a page of a listing.
type Meta struct {
	CurrentPage int  `json:"current_page" yaml:"current_page"`
	PageSize    int  `json:"page_size"    yaml:"page_size"`
	TotalPages  int  `json:"total_pages"  yaml:"total_pages"`
	TotalItems  int  `json:"total_items"  yaml:"total_items"`
	HasPrevious bool `json:"has_previous" yaml:"has_previous"`
	HasNext     bool `json:"has_next"     yaml:"has_next"`
}

// NewMeta describes the window Apply selects from totalCount items. An
// unbounded window is one page holding everything; offsets are reported as
// the page they fall in, and a page past the end is reported as the last
// page, matching Apply.
func NewMeta(params Params, totalCount int) Meta {
	offset, size := params.OffsetLimit()
	if size == 0 {
		size = totalCount
	}

	m := Meta{PageSize: size, TotalItems: totalCount, CurrentPage: 1}
	if size > 0 {
		m.TotalPages = (totalCount + size - 1) / size
		m.CurrentPage = offset/size + 1
	}
	if params.IsPageBased() && m.TotalPages > 0 {
		m.CurrentPage = min(m.CurrentPage, m.TotalPages)
	}

	m.HasPrevious = m.CurrentPage > 1
	m.HasNext = m.CurrentPage < m.TotalPages
	return m
}
