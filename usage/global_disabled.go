//go:build !memhook_usage

package usage

// Enabled reports whether the package-level counters are compiled in
const Enabled = false

// IncHeap no-ops unless the memhook_usage build tag is present
func IncHeap(size int) {}

// DecHeap no-ops unless the memhook_usage build tag is present
func DecHeap(size int) {}

// IncMmap no-ops unless the memhook_usage build tag is present
func IncMmap(size int) {}

// DecMmap no-ops unless the memhook_usage build tag is present
func DecMmap(size int) {}
