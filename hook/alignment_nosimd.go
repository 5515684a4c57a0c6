//go:build memhook_nosimd

package hook

import "github.com/vkngwrapper/memhook/memutils"

// Alignment matches what general purpose allocators already guarantee
const Alignment int = 2 * memutils.WordSize
