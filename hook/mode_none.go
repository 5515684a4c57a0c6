//go:build !memhook_align && !memhook_sizes && !memhook_usage

package hook

const (
	buildMode           = ModeNone
	headerReservedBytes = 0
)
