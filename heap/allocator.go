package heap

import (
	"context"
	"fmt"
	"unsafe"

	cerrors "github.com/cockroachdb/errors"
	"github.com/dolthub/swiss"
	"github.com/pkg/errors"
	"github.com/vkngwrapper/memhook/hook"
	"github.com/vkngwrapper/memhook/internal/utils"
	"github.com/vkngwrapper/memhook/memutils"
	"github.com/vkngwrapper/memhook/sysmem"
	"github.com/vkngwrapper/memhook/usage"
	"golang.org/x/exp/slog"
)

type liveBlock struct {
	size      int
	blockSize int
}

// Allocator hands out blocks through the memory hook, claiming each one from the raw allocator
// on its own
type Allocator struct {
	logger      *slog.Logger
	raw         sysmem.RawAllocator
	layout      hook.Layout
	createFlags CreateFlags

	mutex      utils.OptionalRWMutex
	statistics memutils.Statistics
	liveBlocks *swiss.Map[uintptr, liveBlock]
}

// Layout returns the header layout used for every block of this allocator
func (a *Allocator) Layout() hook.Layout {
	return a.layout
}

func (a *Allocator) blockSize(size int) int {
	blockSize := a.layout.InflateSize(size) + memutils.DebugMargin
	if blockSize < 1 {
		// Raw allocators do not hand out empty blocks
		return 1
	}
	return blockSize
}

// Alloc claims a block of size bytes. The returned pointer satisfies the alignment of the
// layout when the layout is ModeAligned. A size of 0 produces a unique, freeable pointer.
func (a *Allocator) Alloc(size int) (unsafe.Pointer, error) {
	if size < 0 {
		return nil, cerrors.Wrapf(ErrInvalidSize, "requested %d bytes", size)
	}

	blockSize := a.blockSize(size)
	a.logger.Debug("Allocator::Alloc", slog.Int("Size", size), slog.Int("BlockSize", blockSize))

	raw, err := a.raw.Allocate(blockSize)
	if err != nil {
		return nil, cerrors.Wrapf(err, "failed to claim %d bytes for a %d byte block", blockSize, size)
	}

	ptr := a.layout.AllocToPtr(raw, size)
	memutils.WriteMagicValue(ptr, size)
	usage.IncHeap(blockSize)

	a.mutex.Lock()
	a.statistics.BlockCount++
	a.statistics.BlockBytes += blockSize
	a.statistics.AllocationCount++
	a.statistics.AllocationBytes += size
	if a.liveBlocks != nil {
		a.liveBlocks.Put(uintptr(ptr), liveBlock{size: size, blockSize: blockSize})
	}
	a.mutex.Unlock()

	memutils.DebugValidate(a)
	return ptr, nil
}

// Free returns the block at ptr to the raw allocator. Freeing nil does nothing.
func (a *Allocator) Free(ptr unsafe.Pointer) error {
	if ptr == nil {
		return nil
	}

	a.mutex.Lock()
	raw, block, err := a.resolve(ptr)
	if err != nil {
		a.mutex.Unlock()
		return err
	}

	if !memutils.ValidateMagicValue(ptr, block.size) {
		a.mutex.Unlock()
		return cerrors.Wrapf(ErrCorruption, "debug margin after the %d byte block at %p was overwritten", block.size, ptr)
	}

	a.logger.Debug("Allocator::Free", slog.Int("Size", block.size), slog.Int("BlockSize", block.blockSize))

	// The block stays registered until the raw allocator has taken it back, so a failed
	// release can be retried
	err = a.raw.Free(raw, block.blockSize)
	if err != nil {
		a.mutex.Unlock()
		return cerrors.Wrapf(err, "failed to release the %d byte block at %p", block.size, ptr)
	}

	if a.liveBlocks != nil {
		a.liveBlocks.Delete(uintptr(ptr))
	}
	a.statistics.BlockCount--
	a.statistics.BlockBytes -= block.blockSize
	a.statistics.AllocationCount--
	a.statistics.AllocationBytes -= block.size
	a.mutex.Unlock()

	usage.DecHeap(block.blockSize)
	memutils.DebugValidate(a)
	return nil
}

// Realloc resizes the block at ptr to size bytes, preserving as much of its contents as fits.
// A nil ptr allocates a new block and a size of 0 frees ptr and returns nil. If an error is
// returned, ptr remains valid.
func (a *Allocator) Realloc(ptr unsafe.Pointer, size int) (unsafe.Pointer, error) {
	if ptr == nil {
		return a.Alloc(size)
	}

	if size == 0 {
		return nil, a.Free(ptr)
	}

	oldSize, err := a.SizeOf(ptr)
	if err != nil {
		return nil, err
	}

	newPtr, err := a.Alloc(size)
	if err != nil {
		return nil, err
	}

	copy(unsafe.Slice((*byte)(newPtr), size), unsafe.Slice((*byte)(ptr), oldSize))

	err = a.Free(ptr)
	if err != nil {
		freeErr := a.Free(newPtr)
		if freeErr != nil {
			a.logger.Error("error attempting to release reallocated block after failing to free the original", slog.Any("error", freeErr))
		}
		return nil, err
	}

	return newPtr, nil
}

// SizeOf returns the size that was requested for the block at ptr
func (a *Allocator) SizeOf(ptr unsafe.Pointer) (int, error) {
	a.mutex.RLock()
	defer a.mutex.RUnlock()

	_, block, err := a.resolve(ptr)
	if err != nil {
		return 0, err
	}
	return block.size, nil
}

// Bytes returns the payload of the block at ptr as a slice. The slice must not be used after
// the block is freed.
func (a *Allocator) Bytes(ptr unsafe.Pointer) ([]byte, error) {
	size, err := a.SizeOf(ptr)
	if err != nil {
		return nil, err
	}
	return unsafe.Slice((*byte)(ptr), size), nil
}

// resolve must be called with the mutex held
func (a *Allocator) resolve(ptr unsafe.Pointer) (unsafe.Pointer, liveBlock, error) {
	if ptr == nil {
		return nil, liveBlock{}, cerrors.Wrap(ErrUnknownPointer, "nil pointer")
	}

	if a.liveBlocks == nil {
		raw, size := a.layout.PtrToAlloc(ptr)
		return raw, liveBlock{size: size, blockSize: a.blockSize(size)}, nil
	}

	block, ok := a.liveBlocks.Get(uintptr(ptr))
	if !ok {
		return nil, liveBlock{}, cerrors.Wrapf(ErrUnknownPointer, "%p", ptr)
	}

	raw, size := a.layout.PtrToAlloc(ptr)
	if a.layout.Mode().TracksSize() && size != block.size {
		return nil, liveBlock{}, cerrors.Wrapf(ErrCorruption, "header of the %d byte block at %p records %d bytes", block.size, ptr, size)
	}

	return raw, block, nil
}

// Statistics returns the totals for every outstanding block
func (a *Allocator) Statistics() memutils.Statistics {
	a.mutex.RLock()
	defer a.mutex.RUnlock()

	return a.statistics
}

// Validate checks the internal bookkeeping of the allocator for consistency
func (a *Allocator) Validate() error {
	a.mutex.RLock()
	defer a.mutex.RUnlock()

	if a.statistics.BlockCount < 0 || a.statistics.AllocationCount < 0 ||
		a.statistics.BlockBytes < 0 || a.statistics.AllocationBytes < 0 {
		return errors.Errorf("allocator statistics went negative: %+v", a.statistics)
	}

	if a.statistics.AllocationBytes > a.statistics.BlockBytes {
		return errors.Errorf("allocated bytes (%d) exceed claimed block bytes (%d)", a.statistics.AllocationBytes, a.statistics.BlockBytes)
	}

	if a.liveBlocks == nil {
		return nil
	}

	var stats memutils.DetailedStatistics
	stats.Clear()
	a.addLiveBlocks(&stats)

	if stats.Statistics != a.statistics {
		return errors.Errorf("the live block registry (%+v) does not match the allocator statistics (%+v)", stats.Statistics, a.statistics)
	}

	return nil
}

// Destroy reports every block that was never freed. It returns an error if any remain, in
// which case their memory is leaked.
func (a *Allocator) Destroy() error {
	a.mutex.RLock()
	defer a.mutex.RUnlock()

	if a.statistics.AllocationCount == 0 {
		return nil
	}

	if a.liveBlocks != nil {
		for _, block := range a.sortedLiveBlocks() {
			a.logUnreleasedMemory(block.address, block.size)
		}
	} else {
		a.logger.LogAttrs(context.Background(), slog.LevelError, "[UNRELEASED MEMORY] unfreed allocations",
			slog.Int("count", a.statistics.AllocationCount),
			slog.Int("bytes", a.statistics.AllocationBytes),
		)
	}

	return errors.Errorf("%d allocations were not freed before the destruction of this allocator", a.statistics.AllocationCount)
}

func (a *Allocator) logUnreleasedMemory(address uintptr, size int) {
	a.logger.LogAttrs(context.Background(), slog.LevelError, "[UNRELEASED MEMORY] unfreed allocation",
		slog.String("address", fmt.Sprintf("%#x", address)),
		slog.Int("size", size),
	)
}
