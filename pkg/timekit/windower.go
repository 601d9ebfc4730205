package timekit

import (
	"iter"
	"time"

	"go.llib.dev/frameless/pkg/iterkit"
)

// Windower splits the span between a start and an end time into contiguous windows of a fixed step.
// It implements iterkit.PullIter[Window].
//
// Every window starts where the previous one ended.
// The last window always ends exactly at the end time,
// thus it can be shorter than the step when the span is not a multiple of it.
// With a negative step the windows walk backward, from start down to end.
type Windower struct {
	cursor time.Time
	bound  time.Time
	step   time.Duration

	value Window
	done  bool
}

var _ iterkit.PullIter[Window] = (*Windower)(nil)

// NewWindower validates its arguments and returns a Windower positioned at start.
//
// A zero step is rejected with ErrInvalidStep.
// A positive step requires start to not be after end,
// and a negative step requires start to not be before end,
// otherwise ErrDirectionMismatch is returned.
// When start equals to end, the Windower yields no windows.
func NewWindower(start, end time.Time, step time.Duration) (*Windower, error) {
	if err := checkDirection(start, end, step); err != nil {
		return nil, err
	}
	return &Windower{cursor: start, bound: end, step: step}, nil
}

func (w *Windower) Next() bool {
	if w.done {
		return false
	}
	if 0 <= cmpDir(w.cursor, w.bound, w.step) {
		w.done = true
		return false
	}
	candidate, ok := add(w.cursor, w.step)
	if !ok {
		candidate = w.bound
	}
	end := candidate
	if 0 < cmpDir(candidate, w.bound, w.step) {
		end = w.bound
	}
	w.value = Window{Start: w.cursor, End: end}
	w.cursor = candidate
	return true
}

func (w *Windower) Value() Window {
	return w.value
}

// Err is always nil, a constructed Windower can't fail.
func (w *Windower) Err() error {
	return nil
}

func (w *Windower) Close() error {
	w.done = true
	return nil
}

// Seq returns the Windower as a single-use sequence.
func (w *Windower) Seq() iterkit.SingleUseSeq[Window] {
	return func(yield func(Window) bool) {
		for w.Next() {
			if !yield(w.Value()) {
				return
			}
		}
	}
}

// Windows returns the windows between start and end with the given step.
// The arguments are validated the same way as with NewWindower.
// Every iteration over the returned sequence starts over from start.
func Windows(start, end time.Time, step time.Duration) (iter.Seq[Window], error) {
	if err := checkDirection(start, end, step); err != nil {
		return nil, err
	}
	return func(yield func(Window) bool) {
		w := &Windower{cursor: start, bound: end, step: step}
		for w.Next() {
			if !yield(w.Value()) {
				return
			}
		}
	}, nil
}
