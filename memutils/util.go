package memutils

import (
	"unsafe"

	cerrors "github.com/cockroachdb/errors"
)

// WordSize is the size in bytes of a machine word, which is the unit used for header fields
const WordSize int = int(unsafe.Sizeof(uintptr(0)))

type Number interface {
	~int | ~uint | ~uintptr
}

func CheckPow2[T Number](number T, name string) error {
	if number == 0 || number&(number-1) != 0 {
		return cerrors.Wrapf(PowerOfTwoError, "%s is %d", name, number)
	}
	return nil
}

func AlignUp(value int, alignment uint) int {
	return (value + int(alignment) - 1) & int(^(alignment - 1))
}

func AlignDown(value int, alignment uint) int {
	return value & int(^(alignment - 1))
}

// AlignPointerUp returns the first address at or after ptr that is a multiple of alignment.
// The result is derived from ptr so that it stays a valid pointer into the same allocation.
func AlignPointerUp(ptr unsafe.Pointer, alignment uintptr) unsafe.Pointer {
	addr := uintptr(ptr)
	aligned := (addr + alignment - 1) &^ (alignment - 1)
	return unsafe.Add(ptr, aligned-addr)
}

// IsAligned reports whether ptr is a multiple of alignment
func IsAligned(ptr unsafe.Pointer, alignment uintptr) bool {
	return uintptr(ptr)&(alignment-1) == 0
}
