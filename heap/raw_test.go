package heap_test

import (
	"sync"
	"unsafe"

	"github.com/pkg/errors"
	"github.com/vkngwrapper/memhook/memutils"
)

// skewedRawAllocator hands out Go heap blocks that are word aligned but deliberately
// one word past a 64-byte boundary, so the aligned layout always has to shift.
type skewedRawAllocator struct {
	mutex  sync.Mutex
	blocks map[uintptr]skewedBlock
}

type skewedBlock struct {
	data []byte
	size int
}

func newSkewedRawAllocator() *skewedRawAllocator {
	return &skewedRawAllocator{blocks: make(map[uintptr]skewedBlock)}
}

func (r *skewedRawAllocator) Allocate(size int) (unsafe.Pointer, error) {
	data := make([]byte, size+64+memutils.WordSize)
	base := memutils.AlignPointerUp(unsafe.Pointer(&data[0]), 64)
	ptr := unsafe.Add(base, memutils.WordSize)

	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.blocks[uintptr(ptr)] = skewedBlock{data: data, size: size}

	return ptr, nil
}

func (r *skewedRawAllocator) Free(ptr unsafe.Pointer, size int) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	block, ok := r.blocks[uintptr(ptr)]
	if !ok {
		return errors.Errorf("%p was never allocated", ptr)
	}
	if block.size != size {
		return errors.Errorf("%p was allocated with %d bytes but freed with %d", ptr, block.size, size)
	}

	delete(r.blocks, uintptr(ptr))
	return nil
}

func (r *skewedRawAllocator) Outstanding() int {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	return len(r.blocks)
}
