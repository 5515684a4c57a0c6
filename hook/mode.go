package hook

import "fmt"

// Mode identifies one of the header layouts that can be placed in front of a block
type Mode int

const (
	// ModeNone reserves no header. Application pointers are raw pointers and sizes cannot
	// be recovered.
	ModeNone Mode = iota
	// ModeUsage reserves a single word holding the requested size
	ModeUsage
	// ModeSizes reserves two words, the first holding the requested size
	ModeSizes
	// ModeAligned reserves a full alignment block holding the requested size and the raw
	// pointer, and shifts the block forward so the application pointer is aligned
	ModeAligned
)

var modeMapping = map[Mode]string{
	ModeNone:    "ModeNone",
	ModeUsage:   "ModeUsage",
	ModeSizes:   "ModeSizes",
	ModeAligned: "ModeAligned",
}

func (m Mode) String() string {
	str, ok := modeMapping[m]
	if !ok {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return str
}

// TracksSize reports whether blocks laid out in this mode record their requested size
func (m Mode) TracksSize() bool {
	return m != ModeNone
}

// BuildMode returns the header layout selected by build tags
func BuildMode() Mode {
	return buildMode
}
