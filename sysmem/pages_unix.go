//go:build linux || darwin || freebsd || netbsd || openbsd

package sysmem

import (
	"unsafe"

	cerrors "github.com/cockroachdb/errors"
	"github.com/vkngwrapper/memhook/usage"
	"golang.org/x/sys/unix"
)

func queryPageSize() int {
	return unix.Getpagesize()
}

// Pages is a RawAllocator that maps anonymous private pages for every request. Memory
// it returns is invisible to the garbage collector.
type Pages struct{}

func NewPages() *Pages {
	return &Pages{}
}

func (p *Pages) Allocate(size int) (unsafe.Pointer, error) {
	if size <= 0 {
		return nil, cerrors.Wrapf(ErrInvalidSize, "requested %d bytes", size)
	}

	length := RoundUpToPageSize(size)
	data, err := unix.Mmap(-1, 0, length, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, cerrors.Wrapf(err, "failed to map %d bytes", length)
	}

	usage.IncMmap(length)
	return unsafe.Pointer(&data[0]), nil
}

func (p *Pages) Free(ptr unsafe.Pointer, size int) error {
	if size <= 0 {
		return cerrors.Wrapf(ErrInvalidSize, "released %d bytes", size)
	}

	length := RoundUpToPageSize(size)
	err := unix.Munmap(unsafe.Slice((*byte)(ptr), length))
	if err != nil {
		return cerrors.Wrapf(err, "failed to unmap %d bytes at %p", length, ptr)
	}

	usage.DecMmap(length)
	return nil
}
