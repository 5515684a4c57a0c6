//go:build memhook_align

package hook

const (
	buildMode           = ModeAligned
	headerReservedBytes = Alignment
)
