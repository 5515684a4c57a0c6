// Package heap is a reference backend for the memory hook. Every request claims its own block
// from a sysmem.RawAllocator, so it carries the header layout, alignment, usage accounting and
// diagnostics of the hook without any allocation strategy of its own.
package heap
