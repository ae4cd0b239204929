package pose

import "errors"

var (
	// ErrEmptySequence indicates a sequence with no poses.
	ErrEmptySequence = errors.New("pose: empty pose sequence")

	// ErrNonFinite indicates a pose component that is NaN or Inf.
	ErrNonFinite = errors.New("pose: non-finite pose component")

	// ErrInvalidSteps indicates a generator asked for fewer than one pose.
	ErrInvalidSteps = errors.New("pose: generator steps must be positive")
)
