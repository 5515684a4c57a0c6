package sysmem

import (
	"unsafe"

	"github.com/pkg/errors"
)

// ErrInvalidSize is returned when a raw allocation of zero or fewer bytes is requested
var ErrInvalidSize = errors.New("raw allocation size must be positive")

//go:generate mockgen -source raw.go -destination mock_sysmem/raw.go

// RawAllocator is the underlying allocator a backend claims blocks from. Returned pointers
// are at least word aligned. Free must be passed the same size that was passed to Allocate.
type RawAllocator interface {
	Allocate(size int) (unsafe.Pointer, error)
	Free(ptr unsafe.Pointer, size int) error
}
