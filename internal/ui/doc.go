// Package ui renders the non-interactive output of the orbytrixx commands.
//
// Unlike the interactive site in package tui, these components print once
// and return. They share the brand palette so a command's output looks like
// the site it belongs to.
//
// # Components
//
//   - Header: command banner with title, command line and inputs
//   - Progress: bar plus step list for multi-step operations
//   - Result: success, failure (with troubleshooting) and warning boxes
//   - Validation: the field errors that blocked a form
//   - RenderTable: aligned columns for listings such as dial codes
//   - Confirm: summary box and a yes/no prompt
//
// Runner ties Header, Progress and Result together for a single operation:
//
//	runner := ui.NewRunner(ui.RunnerConfig{
//	    Title:   "Careers Application",
//	    Command: "orbytrixx apply",
//	    Steps:   []string{"Validate application", "Send to relay"},
//	})
//
//	err := runner.Run(ctx, func(ctx context.Context, onStep ui.StepCallback) ([]ui.Param, error) {
//	    onStep(1, ui.StepRunning, "")
//	    // ... do work ...
//	    onStep(1, ui.StepComplete, "")
//	    return nil, nil
//	})
//
// Logging is silent unless ORBYTRIXX_LOG_LEVEL is set, so curated output is
// not interleaved with log lines.
package ui
