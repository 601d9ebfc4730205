// Package chronocli holds the commands of the chronokit command line tool.
package chronocli

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"strings"
	"time"

	"go.llib.dev/chronokit/pkg/timekit"
	"go.llib.dev/frameless/pkg/cli"
	"go.llib.dev/frameless/pkg/env"
	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/jsonkit"
	"go.llib.dev/frameless/pkg/logging"
	"go.llib.dev/testcase/clock"
)

const (
	EnvLogLevel = "CHRONOKIT_LOG_LEVEL"
	EnvLayout   = "CHRONOKIT_LAYOUT"
	EnvFormat   = "CHRONOKIT_FORMAT"
)

const (
	FormatText      = "text"
	FormatJSON      = "json"
	FormatJSONArray = "json-array"
)

const ErrLogLevel errorkit.Error = "ErrLogLevel"

// Mux registers every chronokit command.
func Mux(logger *logging.Logger) *cli.Mux {
	var m cli.Mux
	m.Handle("windows", WindowsCommand{Logger: logger})
	m.Handle("steps", StepsCommand{Logger: logger})
	m.Handle("points", PointsCommand{Logger: logger})
	return &m
}

// NewLogger makes a JSON lines logger writing to out,
// with the level taken from CHRONOKIT_LOG_LEVEL.
func NewLogger(out io.Writer) (*logging.Logger, error) {
	raw, _, err := env.Lookup[string](EnvLogLevel, env.DefaultValue(logging.LevelInfo.String()))
	if err != nil {
		return nil, err
	}
	level := logging.Level(raw)
	switch level {
	case logging.LevelDebug, logging.LevelInfo, logging.LevelWarn, logging.LevelError, logging.LevelFatal:
	default:
		return nil, ErrLogLevel.F("unknown %s value: %q", EnvLogLevel, raw)
	}
	return &logging.Logger{Out: out, Level: level}, nil
}

func loggerOf(l *logging.Logger) *logging.Logger {
	if l != nil {
		return l
	}
	return &logging.Logger{Out: io.Discard}
}

func layoutOf(layout string) string {
	if layout == "" {
		return timekit.NaiveLayout
	}
	return layout
}

// parseRange parses the start and the optional end argument.
// A missing end means the current naive time.
func parseRange(layout, rawStart, rawEnd string) (start, end time.Time, err error) {
	start, err = timekit.ParseNaive(layout, rawStart)
	if err != nil {
		return start, end, err
	}
	if rawEnd == "" {
		return start, timekit.Naive(clock.Now()), nil
	}
	end, err = timekit.ParseNaive(layout, rawEnd)
	return start, end, err
}

type encoder[T any] interface {
	Encode(v T) error
	Close() error
}

type textEncoder[T any] struct {
	W    io.Writer
	Text func(T) string
}

func (e textEncoder[T]) Encode(v T) error {
	_, err := fmt.Fprintln(e.W, e.Text(v))
	return err
}

func (textEncoder[T]) Close() error { return nil }

type jsonLinesEncoder[T any] struct {
	enc interface {
		Encode(v any) error
		Close() error
	}
}

func (e jsonLinesEncoder[T]) Encode(v T) error { return e.enc.Encode(v) }

func (e jsonLinesEncoder[T]) Close() error { return e.enc.Close() }

// newEncoder picks the encoder of format.
// The enum tag of the format flags rejects unknown values, so anything else is text.
func newEncoder[T any](w io.Writer, format string, text func(T) string) encoder[T] {
	switch format {
	case FormatJSON:
		return jsonLinesEncoder[T]{enc: jsonkit.LinesCodec{}.NewStreamEncoder(w)}
	case FormatJSONArray:
		return jsonkit.NewArrayStreamEncoder[T](w)
	default:
		return textEncoder[T]{W: w, Text: text}
	}
}

// write encodes every value of vs into w.
func write[T any](w io.Writer, format string, vs iter.Seq[T], text func(T) string) (n int, rErr error) {
	enc := newEncoder(w, format, text)
	defer errorkit.Finish(&rErr, enc.Close)
	for v := range vs {
		if err := enc.Encode(v); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

type windowRecord struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type pointRecord struct {
	Time string `json:"time"`
}

func toPointRecords(layout string, ts iter.Seq[time.Time]) iter.Seq[pointRecord] {
	return func(yield func(pointRecord) bool) {
		for t := range ts {
			if !yield(pointRecord{Time: t.Format(layout)}) {
				return
			}
		}
	}
}

func pointText(r pointRecord) string { return r.Time }

// fail logs err, prints it, and sets the general error exit code.
// Only the message is reported, the stack trace errorkit may attach is left out.
func fail(w cli.Response, r *cli.Request, l *logging.Logger, command string, err error) {
	msg := message(err)
	l.Error(r.Context(), "command failed",
		logging.Field("command", command),
		logging.Field("error", logging.Fields{"message": msg}))
	w.ExitCode(cli.ExitCodeError)
	fmt.Fprintln(w, msg)
}

// message is the text of err without the frames of the errorkit.TracedError values in it.
func message(err error) string {
	msg := err.Error()
	for {
		var traced errorkit.TracedError
		if !errors.As(err, &traced) || traced.Err == nil {
			return msg
		}
		msg = strings.Replace(msg, traced.Error(), traced.Err.Error(), 1)
		err = traced.Err
	}
}

// badRequest reports invalid command line usage.
func badRequest(w cli.Response, format string, args ...any) {
	w.ExitCode(cli.ExitCodeBadRequest)
	var out io.Writer = w
	if ew, ok := w.(cli.ErrorWriter); ok && ew.Stderr() != nil {
		out = ew.Stderr()
	}
	fmt.Fprintf(out, format+"\n", args...)
}
