package hook

import "unsafe"

// HeaderReservedBytes returns the number of bytes in front of every application pointer
// that belong to the header for the layout selected by build tags
func HeaderReservedBytes() int {
	return headerReservedBytes
}

// InflateSize returns the number of bytes a backend must claim from its raw allocator in
// order to hand out size bytes. The sum must not overflow an int.
func InflateSize(size int) int {
	return inflateSize(buildMode, Alignment, headerReservedBytes, size)
}

// AllocToPtr writes the block header into raw, which must point to at least
// InflateSize(size) bytes, and returns the pointer to hand to the application
func AllocToPtr(raw unsafe.Pointer, size int) unsafe.Pointer {
	return allocToPtr(buildMode, Alignment, headerReservedBytes, raw, size)
}

// PtrToAlloc recovers the raw pointer and requested size from a pointer returned by
// AllocToPtr. Without a header, ptr is returned unchanged with a size of -1.
func PtrToAlloc(ptr unsafe.Pointer) (unsafe.Pointer, int) {
	return ptrToAlloc(buildMode, Alignment, headerReservedBytes, ptr)
}
