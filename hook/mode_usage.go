//go:build memhook_usage && !memhook_align && !memhook_sizes

package hook

import "github.com/vkngwrapper/memhook/memutils"

// A single size word is the only bytes this layout adds in front of the payload
const (
	buildMode           = ModeUsage
	headerReservedBytes = memutils.WordSize
)
