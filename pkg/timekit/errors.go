package timekit

import "go.llib.dev/frameless/pkg/errorkit"

const (
	// ErrInvalidStep is returned when the step duration is zero,
	// since such an iterator would never advance.
	ErrInvalidStep errorkit.Error = "ErrInvalidStep"
	// ErrDirectionMismatch is returned when the sign of the step
	// disagrees with the order of the start and end time.
	ErrDirectionMismatch errorkit.Error = "ErrDirectionMismatch"
	// ErrOverflow is reported by the Stepper when the next point
	// would be outside of the range time.Time can represent.
	ErrOverflow errorkit.Error = "ErrOverflow"
	// ErrInvalidRange is returned by Range.Validate when Till is before From.
	ErrInvalidRange errorkit.Error = "ErrInvalidRange"
)
