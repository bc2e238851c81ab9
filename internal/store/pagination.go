package store

import "math"

// PageWindow is the row range a paginated query reads.
type PageWindow struct {
	Skip int64
	Take int
}

// NewPageWindow converts a 1-based page number and a page size into a row
// window. page and size must already be validated as positive; the skip
// saturates at math.MaxInt64 instead of overflowing.
func NewPageWindow(page, size int) PageWindow {
	p := int64(page) - 1
	s := int64(size)
	if p > 0 && s > 0 && p > math.MaxInt64/s {
		return PageWindow{Skip: math.MaxInt64, Take: size}
	}
	return PageWindow{Skip: p * s, Take: size}
}

// TotalPages returns ceil(total/size), or 0 when size is not positive.
func TotalPages(total int64, size int) int64 {
	if size <= 0 || total <= 0 {
		return 0
	}
	s := int64(size)
	pages := total / s
	if total%s != 0 {
		pages++
	}
	return pages
}
