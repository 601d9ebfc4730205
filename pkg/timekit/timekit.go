// Package timekit is a collection of iteration helpers over naive date-time values.
//
// A naive time is a time.Time that is read by its wall clock only.
// Use Naive to drop the location and the monotonic clock reading of a time value,
// so arithmetic on it is free from daylight saving shifts.
//
// Direction of every iteration is carried by the sign of its step:
// a positive step walks forward in time, a negative step walks backward.
package timekit

import (
	"context"
	"fmt"
	"time"

	"go.llib.dev/frameless/pkg/errorkit"
)

const (
	ISO8601      = "2006-01-02T15:04:05Z07:00"           // with seconds only (0 digits)
	ISO8601Milli = "2006-01-02T15:04:05.000Z07:00"       // with milliseconds (3 digits)
	ISO8601Micro = "2006-01-02T15:04:05.000000Z07:00"    // with microseconds (6 digits)
	ISO8601Nano  = "2006-01-02T15:04:05.000000000Z07:00" // with nanoseconds  (9 digits)
)

const (
	NaiveLayout      = "2006-01-02T15:04:05"
	NaiveSpaceLayout = "2006-01-02 15:04:05"
)

const ErrParse errorkit.Error = "ErrParse"

// Naive returns the same wall clock time in UTC,
// without a monotonic clock reading.
func Naive(t time.Time) time.Time {
	year, month, day := t.Date()
	hour, min, sec := t.Clock()
	return time.Date(year, month, day, hour, min, sec, t.Nanosecond(), time.UTC)
}

// ParseNaive parses raw with the given layout and returns it as a naive time.
// Zone information in the input is ignored, only the wall clock is kept.
func ParseNaive(layout, raw string) (time.Time, error) {
	t, err := time.Parse(layout, raw)
	if err != nil {
		return time.Time{}, ErrParse.F("unable to parse %q with layout %q\n%w", raw, layout, err)
	}
	return Naive(t), nil
}

// Range is an ordered time span, where From is never after Till.
type Range struct {
	From time.Time
	Till time.Time
}

func (tr Range) Validate(context.Context) error {
	if tr.Till.Before(tr.From) {
		return ErrInvalidRange.F("Till %s is before From %s",
			tr.Till.Format(ISO8601Nano), tr.From.Format(ISO8601Nano))
	}
	return nil
}

func (tr Range) Contain(ref time.Time) bool {
	return tr.From.Compare(ref) <= 0 &&
		ref.Compare(tr.Till) <= 0
}

func (tr Range) IsZero() bool {
	return tr.From.IsZero() && tr.Till.IsZero()
}

// Overlaps reports whether the two ranges share any moment in time.
// Ranges that only touch at their edges are overlapping.
func (tr Range) Overlaps(other Range) bool {
	return tr.From.Compare(other.Till) <= 0 &&
		other.From.Compare(tr.Till) <= 0
}

func (tr Range) Duration() time.Duration {
	return tr.Till.Sub(tr.From)
}

// Window is a directed span emitted by the Windower.
// For a forward iteration Start is before End,
// and for a backward iteration Start is after End.
type Window struct {
	Start time.Time
	End   time.Time
}

// Duration is signed: negative for windows of a backward iteration.
func (w Window) Duration() time.Duration {
	return w.End.Sub(w.Start)
}

// Range returns the ordered span the Window covers.
func (w Window) Range() Range {
	if w.End.Before(w.Start) {
		return Range{From: w.End, Till: w.Start}
	}
	return Range{From: w.Start, Till: w.End}
}

func (w Window) Contain(ref time.Time) bool {
	return w.Range().Contain(ref)
}

func (w Window) IsZero() bool {
	return w.Start.IsZero() && w.End.IsZero()
}

func (w Window) String() string {
	return fmt.Sprintf("%s/%s", w.Start.Format(NaiveLayout), w.End.Format(NaiveLayout))
}
