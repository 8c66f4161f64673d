package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"
)

// RunnerConfig describes a command run by a Runner
type RunnerConfig struct {
	Title        string   // e.g., "Careers Application"
	Command      string   // e.g., "orbytrixx apply"
	Params       []Param  // shown in the header
	Steps        []string // step names, in order
	SuccessTitle string   // defaults to Title + " complete"
	FailureTitle string   // defaults to Title + " failed"

	// Troubleshooting returns tips for a failure. Nil means none.
	Troubleshooting func(error) []string

	// Output defaults to os.Stdout. Width defaults to the terminal width.
	Output io.Writer
	Width  int

	// Live overwrites the running step line with a carriage return.
	// Leave false when Output is not a terminal.
	Live bool
}

// Operation is the work a Runner wraps. It reports progress through onStep
// and returns extra details for the success box.
type Operation func(ctx context.Context, onStep StepCallback) ([]Param, error)

// Runner prints header, step progress and result for one operation.
type Runner struct {
	config   RunnerConfig
	header   *Header
	progress *Progress
	out      io.Writer
	width    int
	now      func() time.Time
}

// NewRunner creates a runner from config
func NewRunner(config RunnerConfig) *Runner {
	out := config.Output
	if out == nil {
		out = os.Stdout
	}
	width := config.Width
	if width == 0 {
		width = GetTerminalWidth()
	}
	if config.SuccessTitle == "" {
		config.SuccessTitle = config.Title + " complete"
	}
	if config.FailureTitle == "" {
		config.FailureTitle = config.Title + " failed"
	}

	return &Runner{
		config:   config,
		header:   NewHeader(config.Title, config.Command, config.Params...).SetWidth(width),
		progress: NewProgress(config.Steps...).SetWidth(width),
		out:      out,
		width:    width,
		now:      time.Now,
	}
}

// Progress exposes the step state, mainly for tests.
func (r *Runner) Progress() *Progress {
	return r.progress
}

// Run prints the header, executes op and prints the result box. The error
// returned is op's error.
func (r *Runner) Run(ctx context.Context, op Operation) error {
	start := r.now()

	_, _ = fmt.Fprintln(r.out, r.header.Render())
	_, _ = fmt.Fprintln(r.out)

	details, err := op(ctx, r.onStep)
	elapsed := r.now().Sub(start).Round(time.Millisecond)

	_, _ = fmt.Fprintln(r.out)
	var result *Result
	if err != nil {
		var tips []string
		if r.config.Troubleshooting != nil {
			tips = r.config.Troubleshooting(err)
		}
		result = NewFailureResult(r.config.FailureTitle, err, tips)
	} else {
		result = NewSuccessResult(r.config.SuccessTitle, details...)
		result.AddDetail("Duration", elapsed.String())
	}
	_, _ = fmt.Fprintln(r.out, result.SetWidth(r.width).Render())

	return err
}

func (r *Runner) onStep(stepNumber int, status StepStatus, message string) {
	r.progress.UpdateStep(stepNumber, status, message)
	step, ok := r.progress.Step(stepNumber)
	if !ok {
		return
	}

	switch {
	case status.Finished():
		_, _ = fmt.Fprintln(r.out, r.progress.RenderStepLine(step))
	case status == StepRunning && r.config.Live:
		_, _ = fmt.Fprint(r.out, r.progress.RenderStepLine(step)+"\r")
	}
}
