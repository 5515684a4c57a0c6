// Package sysmem wraps the operating system primitives the memory hook depends on: the page
// size, and a raw allocator that claims whole pages directly from the operating system.
package sysmem
