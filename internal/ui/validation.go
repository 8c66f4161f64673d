package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/orbytrixx/orbytrixx/internal/form"
)

// Validation is a box listing the field errors that blocked a submission.
type Validation struct {
	Title   string
	Variant form.Variant
	Errors  form.Errors
	Width   int
}

// NewValidation creates a validation box for a variant's error map
func NewValidation(variant form.Variant, errs form.Errors) *Validation {
	return &Validation{
		Title:   "Please fix the highlighted fields",
		Variant: variant,
		Errors:  errs,
		Width:   GetTerminalWidth(),
	}
}

// SetWidth sets the render width
func (v *Validation) SetWidth(width int) *Validation {
	v.Width = width
	return v
}

// Lines returns "Label: message" for every error, in form field order.
func (v *Validation) Lines() []string {
	var lines []string
	for _, f := range v.Variant.Fields() {
		msg, ok := v.Errors[f]
		if !ok {
			continue
		}
		lines = append(lines, v.Variant.Label(f)+": "+msg)
	}
	return lines
}

// Render returns the styled box
func (v *Validation) Render() string {
	width := v.Width
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}

	lines := []string{
		"",
		WarningTitleStyle.Render(fmt.Sprintf("   %s  %d INVALID  ─  %s", WarningMarker, len(v.Errors), v.Title)),
		"",
	}
	labelStyle := lipgloss.NewStyle().Foreground(TextColor).Bold(true)
	for _, f := range v.Variant.Fields() {
		msg, ok := v.Errors[f]
		if !ok {
			continue
		}
		lines = append(lines,
			labelStyle.Render("   "+strings.ToUpper(v.Variant.Label(f))),
			ErrorMessageStyle.Render("   "+FailureMarker+" "+msg),
		)
	}
	lines = append(lines, "")

	return resultBoxStyle(width, WarningColor).Render(strings.Join(lines, "\n"))
}

// String implements fmt.Stringer
func (v *Validation) String() string {
	return v.Render()
}
