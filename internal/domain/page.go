package domain

// PageRequest describes a zero-based page of a larger result set.
type PageRequest struct {
	Page      int
	Size      int
	SortField string
	SortDesc  bool
}

// Offset returns the row offset for this page.
func (r PageRequest) Offset() int64 {
	return int64(r.Page) * int64(r.Size)
}
