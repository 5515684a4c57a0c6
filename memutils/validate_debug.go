//go:build debug_memhook

package memutils

import "unsafe"

const (
	// DebugMargin is the number of bytes of debug data that should be placed after the payload of blocks
	// handed out through the memory hook
	DebugMargin int = 16
	// corruptionDetectionMagicValue is a 4-byte pattern that should be copied into debug data placed
	// after the payload of blocks handed out through the memory hook
	corruptionDetectionMagicValue uint32 = 0x7F84E666
)

// The payload end is not necessarily 4-byte aligned, so the marker is compared bytewise
var corruptionDetectionMagicBytes = [4]byte{
	byte(corruptionDetectionMagicValue & 0xFF),
	byte(corruptionDetectionMagicValue >> 8 & 0xFF),
	byte(corruptionDetectionMagicValue >> 16 & 0xFF),
	byte(corruptionDetectionMagicValue >> 24 & 0xFF),
}

// WriteMagicValue writes an easy-to-identify marker across DebugMargin bytes at the provided pointer and offset.
// This method no-ops unless the debug_memhook build tag is present.
func WriteMagicValue(data unsafe.Pointer, offset int) {
	dest := unsafe.Add(data, offset)
	marginSize := DebugMargin / int(unsafe.Sizeof(uint32(0)))
	for i := 0; i < marginSize; i++ {
		*(*[4]byte)(dest) = corruptionDetectionMagicBytes
		dest = unsafe.Add(dest, unsafe.Sizeof(uint32(0)))
	}
}

// ValidateMagicValue verifies that the easy-to-identify marker written by WriteMagicValue is still present.
// It returns true if the value is still present and false otherwise.
// This method no-ops unless the debug_memhook build tag is present.
func ValidateMagicValue(data unsafe.Pointer, offset int) bool {
	source := unsafe.Add(data, offset)
	marginSize := DebugMargin / int(unsafe.Sizeof(uint32(0)))
	for i := 0; i < marginSize; i++ {
		if *(*[4]byte)(source) != corruptionDetectionMagicBytes {
			return false
		}
		source = unsafe.Add(source, unsafe.Sizeof(uint32(0)))
	}

	return true
}

// DebugValidate will call Validate on the provided object and panics if any errors are returned. This
// method no-ops unless the debug_memhook build tag is present
func DebugValidate(validatable Validatable) {
	err := validatable.Validate()
	if err != nil {
		panic(err)
	}
}

// DebugCheckPow2 will verify that the numerical value passed in is a power of two, and panics if it is not.
// This method no-ops unless the debug_memhook build tag is present.
func DebugCheckPow2[T Number](value T, name string) {
	err := CheckPow2[T](value, name)
	if err != nil {
		panic(err)
	}
}

// DebugAssert panics with the provided message if cond is false.
// This method no-ops unless the debug_memhook build tag is present.
func DebugAssert(cond bool, message string) {
	if !cond {
		panic(message)
	}
}
