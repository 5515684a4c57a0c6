package hook

import (
	"unsafe"

	cerrors "github.com/cockroachdb/errors"
	"github.com/vkngwrapper/memhook/memutils"
)

// Layout describes one header layout and alignment. The package-level functions use the
// layout selected by build tags, Layout makes the same operations available for any mode.
type Layout struct {
	mode      Mode
	alignment int
	reserved  int
}

// NewLayout builds a Layout for the provided mode. alignment must be a power of two of at
// least two machine words, it is only used to place blocks in ModeAligned.
func NewLayout(mode Mode, alignment int) (Layout, error) {
	if _, ok := modeMapping[mode]; !ok {
		return Layout{}, cerrors.Wrapf(ErrUnknownMode, "mode %d", int(mode))
	}

	err := memutils.CheckPow2(alignment, "alignment")
	if err != nil {
		return Layout{}, err
	}

	if alignment < 2*memutils.WordSize {
		return Layout{}, cerrors.Wrapf(ErrAlignmentTooSmall, "alignment is %d", alignment)
	}

	return Layout{
		mode:      mode,
		alignment: alignment,
		reserved:  reservedBytes(mode, alignment),
	}, nil
}

// DefaultLayout returns the layout selected by build tags
func DefaultLayout() Layout {
	return Layout{
		mode:      buildMode,
		alignment: Alignment,
		reserved:  headerReservedBytes,
	}
}

func (l Layout) Mode() Mode { return l.mode }

func (l Layout) Alignment() int { return l.alignment }

// HeaderReservedBytes returns the number of bytes in front of every application pointer
// that belong to the header
func (l Layout) HeaderReservedBytes() int { return l.reserved }

// InflateSize returns the number of bytes that must be claimed from the raw allocator to
// hand out size bytes. The sum must not overflow an int.
func (l Layout) InflateSize(size int) int {
	return inflateSize(l.mode, l.alignment, l.reserved, size)
}

// HeaderOffset returns how far past raw the header of a block claimed at raw is placed
func (l Layout) HeaderOffset(raw unsafe.Pointer) int {
	if l.mode != ModeAligned {
		return 0
	}
	return int(uintptr(memutils.AlignPointerUp(raw, uintptr(l.alignment))) - uintptr(raw))
}

// AllocToPtr writes the header for a block of size bytes into raw, which must point to at
// least InflateSize(size) bytes, and returns the application pointer
func (l Layout) AllocToPtr(raw unsafe.Pointer, size int) unsafe.Pointer {
	return allocToPtr(l.mode, l.alignment, l.reserved, raw, size)
}

// PtrToAlloc reads the header in front of ptr and returns the raw pointer and the size
// that were passed to AllocToPtr. In ModeNone ptr is returned unchanged with a size of -1.
func (l Layout) PtrToAlloc(ptr unsafe.Pointer) (unsafe.Pointer, int) {
	return ptrToAlloc(l.mode, l.alignment, l.reserved, ptr)
}

func reservedBytes(mode Mode, alignment int) int {
	switch mode {
	case ModeAligned:
		return alignment
	case ModeSizes:
		// The second word is slack so the payload keeps two-word alignment
		return 2 * memutils.WordSize
	case ModeUsage:
		return memutils.WordSize
	}

	return 0
}

func inflateSize(mode Mode, alignment, reserved, size int) int {
	switch mode {
	case ModeNone:
		return size
	case ModeAligned:
		return size + reserved + alignment - 1
	}

	return size + reserved
}

func allocToPtr(mode Mode, alignment, reserved int, raw unsafe.Pointer, size int) unsafe.Pointer {
	switch mode {
	case ModeNone:
		return raw
	case ModeAligned:
		header := memutils.AlignPointerUp(raw, uintptr(alignment))
		memutils.DebugAssert(uintptr(header)-uintptr(raw) < uintptr(alignment),
			"block header was placed past the first alignment step of the raw allocation")

		*(*uintptr)(header) = uintptr(size)
		*(*uintptr)(unsafe.Add(header, memutils.WordSize)) = uintptr(raw)
		return unsafe.Add(header, reserved)
	}

	memutils.DebugAssert(memutils.IsAligned(raw, uintptr(memutils.WordSize)),
		"raw allocation is not word aligned")
	*(*uintptr)(raw) = uintptr(size)
	return unsafe.Add(raw, reserved)
}

func ptrToAlloc(mode Mode, alignment, reserved int, ptr unsafe.Pointer) (unsafe.Pointer, int) {
	switch mode {
	case ModeNone:
		return ptr, -1
	case ModeAligned:
		header := unsafe.Add(ptr, -reserved)
		size := int(*(*uintptr)(header))
		rawAddr := *(*uintptr)(unsafe.Add(header, memutils.WordSize))
		memutils.DebugAssert(rawAddr <= uintptr(header) && uintptr(header)-rawAddr <= uintptr(alignment),
			"block header does not point back into its raw allocation")

		// The raw pointer is rebuilt from the header so it keeps pointing into the same allocation
		return unsafe.Add(header, -int(uintptr(header)-rawAddr)), size
	}

	header := unsafe.Add(ptr, -reserved)
	return header, int(*(*uintptr)(header))
}
