package timekit

import (
	"iter"
	"time"

	"go.llib.dev/frameless/pkg/iterkit"
)

// Stepper walks through time from a starting point with a fixed step, without an end.
// It implements iterkit.PullIter[time.Time].
//
// The first Next makes Value return the starting point,
// and every following Next moves it by the step.
// A negative step walks backward in time.
type Stepper struct {
	current time.Time
	step    time.Duration

	value time.Time
	err   error
	done  bool
	// overflow marks that current could not be advanced further.
	overflow bool
}

var _ iterkit.PullIter[time.Time] = (*Stepper)(nil)

// NewStepper returns a Stepper positioned at start.
// A zero step is rejected with ErrInvalidStep.
func NewStepper(start time.Time, step time.Duration) (*Stepper, error) {
	if err := checkStep(step); err != nil {
		return nil, err
	}
	return &Stepper{current: start, step: step}, nil
}

func (s *Stepper) Next() bool {
	if s.done {
		return false
	}
	if s.overflow {
		s.done = true
		s.err = ErrOverflow.F("unable to step %s from %s", s.step, s.current.Format(ISO8601Nano))
		return false
	}
	s.value = s.current
	next, ok := add(s.current, s.step)
	if !ok {
		s.overflow = true
		return true
	}
	s.current = next
	return true
}

func (s *Stepper) Value() time.Time {
	return s.value
}

func (s *Stepper) Err() error {
	return s.err
}

func (s *Stepper) Close() error {
	s.done = true
	return nil
}

// Seq returns the Stepper as a single-use sequence.
// The sequence ends only with an ErrOverflow,
// so the consumer is expected to stop the iteration.
func (s *Stepper) Seq() iterkit.SingleUseErrSeq[time.Time] {
	return iterkit.FromPullIter[time.Time](s)
}

// Steps returns an infinite sequence starting at start, moving by step.
// Every iteration over the sequence starts over from start.
// When the edge of the representable time range is reached, the sequence ends.
func Steps(start time.Time, step time.Duration) (iter.Seq[time.Time], error) {
	if err := checkStep(step); err != nil {
		return nil, err
	}
	return func(yield func(time.Time) bool) {
		s := &Stepper{current: start, step: step}
		for s.Next() {
			if !yield(s.Value()) {
				return
			}
		}
	}, nil
}
