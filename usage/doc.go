// Package usage keeps the process-wide tallies of memory claimed by backend allocators.
// Backends call IncHeap and DecHeap when they grow or shrink a heap, and IncMmap and DecMmap
// when they map or unmap pages. The package-level functions compile to nothing unless the
// memhook_usage build tag is present, Counters can always be used directly.
package usage
