package timekit

import "time"

// cmpDir compares a and b along the direction of step.
// A positive result means a is further ahead than b when walking with step,
// so for a negative step the natural time order is mirrored.
func cmpDir(a, b time.Time, step time.Duration) int {
	if step < 0 {
		return b.Compare(a)
	}
	return a.Compare(b)
}

// add returns t+d, and false when the sum is not exact.
// time.Time saturates at the edges of its representable range,
// so a saturated sum is recognised by the distance it actually moved.
func add(t time.Time, d time.Duration) (time.Time, bool) {
	next := t.Add(d)
	return next, next.Sub(t) == d
}

func checkStep(step time.Duration) error {
	if step == 0 {
		return ErrInvalidStep.F("step duration cannot be zero")
	}
	return nil
}

func checkDirection(start, end time.Time, step time.Duration) error {
	if err := checkStep(step); err != nil {
		return err
	}
	if 0 < cmpDir(start, end, step) {
		if 0 < step {
			return ErrDirectionMismatch.F("start %s is after end %s for a positive step of %s",
				start.Format(ISO8601Nano), end.Format(ISO8601Nano), step)
		}
		return ErrDirectionMismatch.F("start %s is before end %s for a negative step of %s",
			start.Format(ISO8601Nano), end.Format(ISO8601Nano), step)
	}
	return nil
}
