package usage

import (
	"context"

	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"golang.org/x/exp/slog"
)

// Snapshot is a point-in-time copy of Counters
type Snapshot struct {
	HeapBytes     int64
	HeapPeakBytes int64
	HeapClaims    int64
	MmapBytes     int64
	MmapClaims    int64
}

func (s Snapshot) WriteJSON(writer *jwriter.Writer) {
	obj := writer.Object()
	defer obj.End()

	obj.Name("HeapBytes").Int(int(s.HeapBytes))
	obj.Name("HeapPeakBytes").Int(int(s.HeapPeakBytes))
	obj.Name("HeapClaims").Int(int(s.HeapClaims))
	obj.Name("MmapBytes").Int(int(s.MmapBytes))
	obj.Name("MmapClaims").Int(int(s.MmapClaims))
}

func (s Snapshot) String() string {
	writer := jwriter.NewWriter()
	s.WriteJSON(&writer)
	return string(writer.Bytes())
}

// LogLeaks logs every counter in s that is still outstanding and returns true if any were.
// It is meant to be called once allocators have been torn down.
func LogLeaks(logger *slog.Logger, s Snapshot) bool {
	leaked := false

	if s.HeapBytes != 0 || s.HeapClaims != 0 {
		leaked = true
		logger.LogAttrs(context.Background(), slog.LevelError, "[UNRELEASED MEMORY] heap still claimed",
			slog.Int64("bytes", s.HeapBytes),
			slog.Int64("claims", s.HeapClaims),
		)
	}

	if s.MmapBytes != 0 || s.MmapClaims != 0 {
		leaked = true
		logger.LogAttrs(context.Background(), slog.LevelError, "[UNRELEASED MEMORY] pages still mapped",
			slog.Int64("bytes", s.MmapBytes),
			slog.Int64("claims", s.MmapClaims),
		)
	}

	return leaked
}
