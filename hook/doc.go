// Package hook provides the header layout and pointer transform shared by every backend
// allocator that hands memory out through the memory hook.
//
// A backend that wants to service a request for n bytes follows a fixed sequence:
//
//	inflated := hook.InflateSize(n)
//	raw := <claim inflated bytes from the raw allocator>
//	ptr := hook.AllocToPtr(raw, n)
//
// and to release the block again:
//
//	raw, n := hook.PtrToAlloc(ptr)
//	<release raw to the raw allocator>
//
// The layout of the reserved header in front of ptr is fixed at build time by tags:
//
//	memhook_align   reserve a full alignment block holding the size and the raw pointer
//	memhook_sizes   reserve two words, the first holding the size
//	memhook_usage   reserve a single word holding the size
//
// With none of these tags present, no header is reserved and ptr is the raw pointer.
// The alignment used by memhook_align is 16 bytes, 32 bytes with memhook_avx, or two words
// with memhook_nosimd.
//
// Pointers must only be passed to PtrToAlloc if they were produced by AllocToPtr in a
// binary built with the same tags. Anything else is undefined behavior. When the
// debug_memhook tag is present, the header bounds are asserted and violations panic.
//
// Layout exposes the same operations for an explicitly chosen mode, which is useful for
// backends that need more than one layout in a single binary.
package hook
