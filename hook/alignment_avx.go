//go:build memhook_avx && !memhook_nosimd

package hook

// Alignment is wide enough for 256-bit vector loads
const Alignment int = 32
