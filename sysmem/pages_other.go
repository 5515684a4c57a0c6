//go:build !(linux || darwin || freebsd || netbsd || openbsd)

package sysmem

import (
	"os"
	"sync"
	"unsafe"

	cerrors "github.com/cockroachdb/errors"
	"github.com/vkngwrapper/memhook/usage"
)

func queryPageSize() int {
	return os.Getpagesize()
}

// Pages is a RawAllocator that hands out page-rounded blocks. Without anonymous mappings
// the blocks come from the Go heap and are kept reachable until they are freed.
type Pages struct {
	mutex  sync.Mutex
	blocks map[uintptr][]byte
}

func NewPages() *Pages {
	return &Pages{blocks: make(map[uintptr][]byte)}
}

func (p *Pages) Allocate(size int) (unsafe.Pointer, error) {
	if size <= 0 {
		return nil, cerrors.Wrapf(ErrInvalidSize, "requested %d bytes", size)
	}

	length := RoundUpToPageSize(size)
	data := make([]byte, length)
	ptr := unsafe.Pointer(&data[0])

	p.mutex.Lock()
	p.blocks[uintptr(ptr)] = data
	p.mutex.Unlock()

	usage.IncMmap(length)
	return ptr, nil
}

func (p *Pages) Free(ptr unsafe.Pointer, size int) error {
	if size <= 0 {
		return cerrors.Wrapf(ErrInvalidSize, "released %d bytes", size)
	}

	p.mutex.Lock()
	defer p.mutex.Unlock()

	data, ok := p.blocks[uintptr(ptr)]
	if !ok {
		return cerrors.Newf("%p was not allocated from these pages", ptr)
	}

	delete(p.blocks, uintptr(ptr))
	usage.DecMmap(len(data))
	return nil
}
