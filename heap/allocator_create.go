package heap

import (
	cerrors "github.com/cockroachdb/errors"
	"github.com/dolthub/swiss"
	"github.com/vkngwrapper/memhook/hook"
	"github.com/vkngwrapper/memhook/internal/utils"
	"github.com/vkngwrapper/memhook/sysmem"
	"golang.org/x/exp/slog"
)

const (
	// initialLiveBlockCapacity sizes the live block registry when CreateTrackLiveBlocks is set
	initialLiveBlockCapacity uint32 = 64
)

// CreateOptions contains optional settings when creating an allocator
type CreateOptions struct {
	// Flags indicates specific allocator behaviors to activate or deactivate
	Flags CreateFlags

	// Layout overrides the header layout selected by build tags. Every block handed out by
	// the allocator uses the same layout.
	Layout *hook.Layout
}

// New creates a new Allocator
//
// logger - Receives debug output and reports of unreleased memory
//
// raw - The underlying allocator blocks are claimed from
//
// options - Optional parameters: it is valid to leave all the fields blank
func New(logger *slog.Logger, raw sysmem.RawAllocator, options CreateOptions) (*Allocator, error) {
	if raw == nil {
		return nil, cerrors.New("a raw allocator is required")
	}

	layout := hook.DefaultLayout()
	if options.Layout != nil {
		layout = *options.Layout
	}

	trackLiveBlocks := options.Flags&CreateTrackLiveBlocks != 0
	if !layout.Mode().TracksSize() && !trackLiveBlocks {
		return nil, cerrors.Wrapf(ErrSizeNotRecoverable, "layout %s requires CreateTrackLiveBlocks", layout.Mode())
	}

	allocator := &Allocator{
		logger:      logger,
		raw:         raw,
		layout:      layout,
		createFlags: options.Flags,
		mutex: utils.OptionalRWMutex{
			UseMutex: options.Flags&CreateExternallySynchronized == 0,
		},
	}

	if trackLiveBlocks {
		allocator.liveBlocks = swiss.NewMap[uintptr, liveBlock](initialLiveBlockCapacity)
	}

	logger.Debug("Allocator::New",
		slog.String("Mode", layout.Mode().String()),
		slog.Int("Alignment", layout.Alignment()),
		slog.Int("HeaderReservedBytes", layout.HeaderReservedBytes()),
		slog.String("Flags", options.Flags.String()),
	)

	return allocator, nil
}
