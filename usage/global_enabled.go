//go:build memhook_usage

package usage

// Enabled reports whether the package-level counters are compiled in
const Enabled = true

// IncHeap records size bytes claimed from the operating system for a heap
func IncHeap(size int) { Global.IncHeap(size) }

// DecHeap records size bytes of a heap released to the operating system
func DecHeap(size int) { Global.DecHeap(size) }

// IncMmap records a mapping of size bytes
func IncMmap(size int) { Global.IncMmap(size) }

// DecMmap records the removal of a mapping of size bytes
func DecMmap(size int) { Global.DecMmap(size) }
