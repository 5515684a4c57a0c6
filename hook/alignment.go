package hook

// MemoryAlignment returns the minimum alignment, in bytes, of every pointer returned by
// AllocToPtr when alignment tracking is enabled. It is always a power of two of at least
// two machine words and never changes during the life of the process.
func MemoryAlignment() int {
	return Alignment
}
