package chronocli

import (
	"time"

	"go.llib.dev/chronokit/pkg/timekit"
	"go.llib.dev/frameless/pkg/cli"
	"go.llib.dev/frameless/pkg/iterkit"
	"go.llib.dev/frameless/pkg/logging"
)

type WindowsCommand struct {
	Step   time.Duration `flag:"step,s" default:"1h" desc:"window length, a negative value walks backward"`
	Format string        `flag:"format,f" env:"CHRONOKIT_FORMAT" enum:"text,json,json-array," desc:"output format"`
	Layout string        `flag:"layout" env:"CHRONOKIT_LAYOUT" desc:"time layout of the arguments and the output"`

	Start string `arg:"0" required:"true" desc:"start of the range"`
	End   string `arg:"1" desc:"end of the range, the current time when omitted"`

	Logger *logging.Logger
}

func (cmd WindowsCommand) Summary() string {
	return "split a time range into consecutive windows of a fixed length"
}

func (cmd WindowsCommand) ServeCLI(w cli.Response, r *cli.Request) {
	var (
		ctx    = r.Context()
		logger = loggerOf(cmd.Logger)
		layout = layoutOf(cmd.Layout)
	)
	start, end, err := parseRange(layout, cmd.Start, cmd.End)
	if err != nil {
		fail(w, r, logger, "windows", err)
		return
	}
	logger.Debug(ctx, "splitting range into windows", logging.Fields{
		"start": start.Format(layout),
		"end":   end.Format(layout),
		"step":  cmd.Step.String(),
	})
	windows, err := timekit.Windows(start, end, cmd.Step)
	if err != nil {
		fail(w, r, logger, "windows", err)
		return
	}
	records := func(yield func(windowRecord) bool) {
		for win := range windows {
			if !yield(windowRecord{Start: win.Start.Format(layout), End: win.End.Format(layout)}) {
				return
			}
		}
	}
	n, err := write(w, cmd.Format, records, func(rec windowRecord) string {
		return rec.Start + "\t" + rec.End
	})
	if err != nil {
		fail(w, r, logger, "windows", err)
		return
	}
	logger.Debug(ctx, "windows written", logging.Field("count", n))
}

type StepsCommand struct {
	Step   time.Duration `flag:"step,s" default:"1h" desc:"distance between two points, a negative value walks backward"`
	N      int           `flag:"n" default:"10" desc:"number of points to print"`
	Format string        `flag:"format,f" env:"CHRONOKIT_FORMAT" enum:"text,json,json-array," desc:"output format"`
	Layout string        `flag:"layout" env:"CHRONOKIT_LAYOUT" desc:"time layout of the argument and the output"`

	Start string `arg:"0" required:"true" desc:"first point"`

	Logger *logging.Logger
}

func (cmd StepsCommand) Summary() string {
	return "print the first n points of an endless stepping from start"
}

func (cmd StepsCommand) ServeCLI(w cli.Response, r *cli.Request) {
	var (
		ctx    = r.Context()
		logger = loggerOf(cmd.Logger)
		layout = layoutOf(cmd.Layout)
	)
	if cmd.N <= 0 {
		badRequest(w, "-n must be a positive number, got %d", cmd.N)
		return
	}
	start, err := timekit.ParseNaive(layout, cmd.Start)
	if err != nil {
		fail(w, r, logger, "steps", err)
		return
	}
	stepper, err := timekit.NewStepper(start, cmd.Step)
	if err != nil {
		fail(w, r, logger, "steps", err)
		return
	}
	defer stepper.Close()
	logger.Debug(ctx, "stepping", logging.Fields{
		"start": start.Format(layout),
		"step":  cmd.Step.String(),
		"n":     cmd.N,
	})
	points, errFunc := iterkit.SplitErrSeq(stepper.Seq())
	n, err := write(w, cmd.Format, toPointRecords(layout, iterkit.Head(points, cmd.N)), pointText)
	if err == nil {
		err = errFunc()
	}
	if err != nil {
		fail(w, r, logger, "steps", err)
		return
	}
	logger.Debug(ctx, "steps written", logging.Field("count", n))
}

type PointsCommand struct {
	Step   time.Duration `flag:"step,s" default:"1h" desc:"distance between two points, a negative value walks backward"`
	Format string        `flag:"format,f" env:"CHRONOKIT_FORMAT" enum:"text,json,json-array," desc:"output format"`
	Layout string        `flag:"layout" env:"CHRONOKIT_LAYOUT" desc:"time layout of the arguments and the output"`

	Start string `arg:"0" required:"true" desc:"start of the range"`
	End   string `arg:"1" desc:"end of the range, the current time when omitted"`

	Logger *logging.Logger
}

func (cmd PointsCommand) Summary() string {
	return "print the window boundaries of a time range, both ends included"
}

func (cmd PointsCommand) ServeCLI(w cli.Response, r *cli.Request) {
	var (
		ctx    = r.Context()
		logger = loggerOf(cmd.Logger)
		layout = layoutOf(cmd.Layout)
	)
	start, end, err := parseRange(layout, cmd.Start, cmd.End)
	if err != nil {
		fail(w, r, logger, "points", err)
		return
	}
	logger.Debug(ctx, "collecting boundary points", logging.Fields{
		"start": start.Format(layout),
		"end":   end.Format(layout),
		"step":  cmd.Step.String(),
	})
	points, err := timekit.Points(start, end, cmd.Step)
	if err != nil {
		fail(w, r, logger, "points", err)
		return
	}
	n, err := write(w, cmd.Format, toPointRecords(layout, points), pointText)
	if err != nil {
		fail(w, r, logger, "points", err)
		return
	}
	logger.Debug(ctx, "points written", logging.Field("count", n))
}
