package timekit

import (
	"iter"
	"time"

	"go.llib.dev/frameless/pkg/iterkit"
)

// Boundaries yields the points that separate the windows of a Windower:
// start, start+step, start+2*step ... and finally end.
// Both start and end are included, and the last point is clamped to end.
// When start equals to end, that single point is yielded.
type Boundaries struct {
	windower *Windower
	started  bool
	value    time.Time
}

var _ iterkit.PullIter[time.Time] = (*Boundaries)(nil)

// NewBoundaries validates its arguments the same way as NewWindower.
func NewBoundaries(start, end time.Time, step time.Duration) (*Boundaries, error) {
	w, err := NewWindower(start, end, step)
	if err != nil {
		return nil, err
	}
	return &Boundaries{windower: w}, nil
}

func (b *Boundaries) Next() bool {
	if !b.started {
		if b.windower.done {
			return false
		}
		b.started = true
		b.value = b.windower.cursor
		return true
	}
	if !b.windower.Next() {
		return false
	}
	b.value = b.windower.Value().End
	return true
}

func (b *Boundaries) Value() time.Time {
	return b.value
}

func (b *Boundaries) Err() error {
	return b.windower.Err()
}

func (b *Boundaries) Close() error {
	return b.windower.Close()
}

// Points returns the boundary points between start and end with the given step.
// Every iteration over the returned sequence starts over from start.
func Points(start, end time.Time, step time.Duration) (iter.Seq[time.Time], error) {
	if err := checkDirection(start, end, step); err != nil {
		return nil, err
	}
	return func(yield func(time.Time) bool) {
		b := &Boundaries{windower: &Windower{cursor: start, bound: end, step: step}}
		for b.Next() {
			if !yield(b.Value()) {
				return
			}
		}
	}, nil
}
