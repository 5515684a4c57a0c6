package usage

// Global holds the process-wide counters. The package-level functions only touch it when
// the memhook_usage build tag is present.
var Global Counters

// HeapUsage returns the number of bytes currently claimed for heaps across the process
func HeapUsage() int64 { return Global.Heap() }

// HeapPeak returns the highest value HeapUsage has reached
func HeapPeak() int64 { return Global.HeapPeak() }

// MmapUsage returns the number of bytes currently mapped across the process
func MmapUsage() int64 { return Global.Mmap() }
