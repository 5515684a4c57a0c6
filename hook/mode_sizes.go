//go:build memhook_sizes && !memhook_align

package hook

import "github.com/vkngwrapper/memhook/memutils"

const (
	buildMode           = ModeSizes
	headerReservedBytes = 2 * memutils.WordSize
)
