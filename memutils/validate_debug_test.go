//go:build debug_memhook

package memutils_test

import (
	"testing"
	"unsafe"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/memhook/memutils"
)

type brokenValidatable struct{}

func (brokenValidatable) Validate() error {
	return errors.New("broken")
}

func TestDebugHelpersPanic(t *testing.T) {
	require.Panics(t, func() { memutils.DebugAssert(false, "assertion") })
	require.Panics(t, func() { memutils.DebugCheckPow2(3, "value") })
	require.Panics(t, func() { memutils.DebugValidate(brokenValidatable{}) })
	require.NotPanics(t, func() { memutils.DebugAssert(true, "assertion") })
}

func TestMagicValue(t *testing.T) {
	buf := make([]byte, 3+memutils.DebugMargin)
	ptr := unsafe.Pointer(&buf[0])

	memutils.WriteMagicValue(ptr, 3)
	require.True(t, memutils.ValidateMagicValue(ptr, 3))

	buf[3+memutils.DebugMargin-1] ^= 0xFF
	require.False(t, memutils.ValidateMagicValue(ptr, 3))
}
