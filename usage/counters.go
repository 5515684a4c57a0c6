package usage

import (
	"sync/atomic"
)

// Counters tallies the bytes currently claimed by backend allocators. Heap counters follow
// arena growth and shrinkage, mmap counters follow page mappings. Every method is safe for
// concurrent use. Decrementing by more than was added is not detected.
type Counters struct {
	heapBytes  atomic.Int64
	heapPeak   atomic.Int64
	heapClaims atomic.Int64
	mmapBytes  atomic.Int64
	mmapClaims atomic.Int64
}

func (c *Counters) IncHeap(size int) {
	current := c.heapBytes.Add(int64(size))
	c.heapClaims.Add(1)

	for {
		peak := c.heapPeak.Load()
		if current <= peak || c.heapPeak.CompareAndSwap(peak, current) {
			return
		}
	}
}

func (c *Counters) DecHeap(size int) {
	c.heapBytes.Add(-int64(size))
	c.heapClaims.Add(-1)
}

func (c *Counters) IncMmap(size int) {
	c.mmapBytes.Add(int64(size))
	c.mmapClaims.Add(1)
}

func (c *Counters) DecMmap(size int) {
	c.mmapBytes.Add(-int64(size))
	c.mmapClaims.Add(-1)
}

// Heap returns the number of bytes currently claimed for heaps
func (c *Counters) Heap() int64 { return c.heapBytes.Load() }

// HeapPeak returns the highest value Heap has reached
func (c *Counters) HeapPeak() int64 { return c.heapPeak.Load() }

// Mmap returns the number of bytes currently mapped
func (c *Counters) Mmap() int64 { return c.mmapBytes.Load() }

// Snapshot reads every counter. Counters are read one at a time, so a snapshot taken
// while allocators are running need not be consistent across fields.
func (c *Counters) Snapshot() Snapshot {
	return Snapshot{
		HeapBytes:     c.heapBytes.Load(),
		HeapPeakBytes: c.heapPeak.Load(),
		HeapClaims:    c.heapClaims.Load(),
		MmapBytes:     c.mmapBytes.Load(),
		MmapClaims:    c.mmapClaims.Load(),
	}
}
