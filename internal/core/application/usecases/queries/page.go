package queries

import (
	"math"

	"ordering/internal/pkg/errs"
)

const (
	// MinPageSize is the smallest accepted page size.
	MinPageSize = 1
	// MaxPageSize caps the page size to keep list queries bounded.
	MaxPageSize = 100
	// DefaultPageSize is used when the caller does not specify a size.
	DefaultPageSize = 20
)

// PageRequest describes which slice of a list to return.
// Pages are numbered from 1.
type PageRequest struct {
	number int
	size   int
}

// NewPageRequest creates a page descriptor. A non-positive size falls back to
// DefaultPageSize; sizes above MaxPageSize are rejected.
func NewPageRequest(number, size int) (PageRequest, error) {
	if number < 1 {
		return PageRequest{}, errs.NewValueIsOutOfRangeError("page", number, 1, math.MaxInt32)
	}

	if size <= 0 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		return PageRequest{}, errs.NewValueIsOutOfRangeError("size", size, MinPageSize, MaxPageSize)
	}

	return PageRequest{number: number, size: size}, nil
}

// Number returns the 1-based page number.
func (p PageRequest) Number() int {
	return p.number
}

// Size returns the page size.
func (p PageRequest) Size() int {
	return p.size
}

// Offset returns the row offset for the page.
func (p PageRequest) Offset() int {
	return (p.number - 1) * p.size
}
