package hook_test

import (
	"runtime"
	"testing"
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/memhook/hook"
	"github.com/vkngwrapper/memhook/memutils"
)

var allModes = []hook.Mode{hook.ModeNone, hook.ModeUsage, hook.ModeSizes, hook.ModeAligned}

func mustLayout(t *testing.T, mode hook.Mode, alignment int) hook.Layout {
	layout, err := hook.NewLayout(mode, alignment)
	require.NoError(t, err)
	return layout
}

// rawBlock returns a word-aligned pointer into a fresh buffer of at least size bytes,
// advanced by offset bytes
func rawBlock(size, offset int) ([]byte, unsafe.Pointer) {
	buf := make([]byte, size+offset+memutils.WordSize)
	base := memutils.AlignPointerUp(unsafe.Pointer(&buf[0]), uintptr(memutils.WordSize))
	return buf, unsafe.Add(base, offset)
}

func TestNewLayoutReservedBytes(t *testing.T) {
	word := memutils.WordSize

	require.Equal(t, 0, mustLayout(t, hook.ModeNone, 16).HeaderReservedBytes())
	require.Equal(t, word, mustLayout(t, hook.ModeUsage, 16).HeaderReservedBytes())
	require.Equal(t, 2*word, mustLayout(t, hook.ModeSizes, 16).HeaderReservedBytes())
	require.Equal(t, 16, mustLayout(t, hook.ModeAligned, 16).HeaderReservedBytes())
	require.Equal(t, 32, mustLayout(t, hook.ModeAligned, 32).HeaderReservedBytes())
}

func TestNewLayoutRejectsBadInput(t *testing.T) {
	_, err := hook.NewLayout(hook.ModeAligned, 24)
	require.True(t, errors.Is(err, memutils.PowerOfTwoError))

	_, err = hook.NewLayout(hook.ModeAligned, 0)
	require.True(t, errors.Is(err, memutils.PowerOfTwoError))

	_, err = hook.NewLayout(hook.ModeAligned, memutils.WordSize)
	require.True(t, errors.Is(err, hook.ErrAlignmentTooSmall))

	_, err = hook.NewLayout(hook.Mode(42), 16)
	require.True(t, errors.Is(err, hook.ErrUnknownMode))
}

func TestInflateSizeAligned(t *testing.T) {
	layout := mustLayout(t, hook.ModeAligned, 16)
	require.Equal(t, 131, layout.InflateSize(100))

	layout = mustLayout(t, hook.ModeAligned, 32)
	require.Equal(t, 100+32+31, layout.InflateSize(100))
}

func TestInflateSizeOtherModes(t *testing.T) {
	word := memutils.WordSize

	require.Equal(t, 100, mustLayout(t, hook.ModeNone, 16).InflateSize(100))
	require.Equal(t, 100+word, mustLayout(t, hook.ModeUsage, 16).InflateSize(100))
	require.Equal(t, 100+2*word, mustLayout(t, hook.ModeSizes, 16).InflateSize(100))
	require.Equal(t, 0, mustLayout(t, hook.ModeNone, 16).InflateSize(0))
}

func TestNoTrackingIsIdentity(t *testing.T) {
	layout := mustLayout(t, hook.ModeNone, 16)
	buf, raw := rawBlock(100, 0)

	ptr := layout.AllocToPtr(raw, 100)
	require.Equal(t, raw, ptr)

	back, size := layout.PtrToAlloc(ptr)
	require.Equal(t, raw, back)
	require.Equal(t, -1, size)
	runtime.KeepAlive(buf)
}

func TestAlignedScenario(t *testing.T) {
	layout := mustLayout(t, hook.ModeAligned, 16)
	require.Equal(t, 131, layout.InflateSize(100))

	buf := make([]byte, 131+16)
	for offset := 0; offset < 16; offset++ {
		raw := unsafe.Pointer(&buf[offset])

		ptr := layout.AllocToPtr(raw, 100)
		require.Zero(t, uintptr(ptr)%16)
		// The header sits no more than alignment-1 bytes past the raw pointer
		headerOffset := int(uintptr(ptr)) - 16 - int(uintptr(raw))
		require.GreaterOrEqual(t, headerOffset, 0)
		require.LessOrEqual(t, headerOffset, 15)

		back, size := layout.PtrToAlloc(ptr)
		require.Equal(t, raw, back)
		require.Equal(t, 100, size)
	}
	runtime.KeepAlive(buf)
}

func TestRoundTripAllModes(t *testing.T) {
	sizes := []int{0, 1, 7, 8, 15, 16, 17, 100, 4096, 65537}

	for _, mode := range allModes {
		for _, alignment := range []int{16, 32, 64} {
			layout := mustLayout(t, mode, alignment)

			for _, size := range sizes {
				// Only the aligned layout tolerates raw pointers that are not word aligned
				offsets := []int{0}
				if mode == hook.ModeAligned {
					offsets = []int{0, 1, 3, 8, alignment - 1}
				}

				for _, offset := range offsets {
					inflated := layout.InflateSize(size)
					buf, raw := rawBlock(inflated, offset)

					ptr := layout.AllocToPtr(raw, size)
					back, recovered := layout.PtrToAlloc(ptr)

					require.Equal(t, raw, back, "mode %s alignment %d size %d offset %d", mode, alignment, size, offset)
					if mode.TracksSize() {
						require.Equal(t, size, recovered, "mode %s alignment %d size %d offset %d", mode, alignment, size, offset)
					}
					runtime.KeepAlive(buf)
				}
			}
		}
	}
}

func TestInflationSufficiency(t *testing.T) {
	for _, mode := range allModes {
		layout := mustLayout(t, mode, 32)

		for size := 0; size < 200; size += 13 {
			for offset := 0; offset < 32; offset += memutils.WordSize {
				buf, raw := rawBlock(layout.InflateSize(size), offset)

				headerOffset := layout.HeaderOffset(raw)
				require.GreaterOrEqual(t, headerOffset, 0)
				require.LessOrEqual(t, headerOffset+layout.HeaderReservedBytes()+size, layout.InflateSize(size))

				ptr := layout.AllocToPtr(raw, size)
				require.Equal(t, uintptr(raw)+uintptr(headerOffset+layout.HeaderReservedBytes()), uintptr(ptr))
				runtime.KeepAlive(buf)
			}
		}
	}
}

func TestAllocToPtrLeavesPayloadUntouched(t *testing.T) {
	for _, mode := range allModes {
		layout := mustLayout(t, mode, 16)
		buf, raw := rawBlock(layout.InflateSize(64), 0)
		for i := range buf {
			buf[i] = 0xAB
		}

		ptr := layout.AllocToPtr(raw, 64)
		payload := unsafe.Slice((*byte)(ptr), 64)
		for _, b := range payload {
			require.Equal(t, byte(0xAB), b, "mode %s", mode)
		}
		runtime.KeepAlive(buf)
	}
}

func TestModeString(t *testing.T) {
	require.Equal(t, "ModeAligned", hook.ModeAligned.String())
	require.Equal(t, "ModeNone", hook.ModeNone.String())
	require.Equal(t, "Mode(9)", hook.Mode(9).String())
	require.False(t, hook.ModeNone.TracksSize())
	require.True(t, hook.ModeUsage.TracksSize())
}
