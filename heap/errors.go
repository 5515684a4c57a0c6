package heap

import "github.com/pkg/errors"

var (
	// ErrInvalidSize is returned when a negative number of bytes is requested
	ErrInvalidSize = errors.New("allocation size must not be negative")
	// ErrUnknownPointer is returned when a pointer that is not an outstanding block of the allocator
	// is freed or queried. It is only detected when CreateTrackLiveBlocks is set.
	ErrUnknownPointer = errors.New("pointer is not an outstanding block of this allocator")
	// ErrCorruption is returned when the header or the debug margin of a block has been overwritten
	ErrCorruption = errors.New("memory corruption detected")
	// ErrSizeNotRecoverable is returned from New when the layout does not record block sizes and
	// live block tracking was not requested
	ErrSizeNotRecoverable = errors.New("layout does not record block sizes")
)
