package hook

import "github.com/pkg/errors"

// ErrUnknownMode is returned by NewLayout when the requested Mode is not one of the declared modes
var ErrUnknownMode = errors.New("unknown header layout mode")

// ErrAlignmentTooSmall is returned by NewLayout when the alignment cannot hold a two-word header
var ErrAlignmentTooSmall = errors.New("alignment must be at least two machine words")
