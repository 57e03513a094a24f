package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
)

// Spinner shows that a wait is in progress
type Spinner struct {
	bar *progressbar.ProgressBar
	out io.Writer
}

// NewSpinner creates a new spinner writing to out
func NewSpinner(out io.Writer, description string) *Spinner {
	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetDescription(color.CyanString(description)),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWriter(out),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetRenderBlankState(true),
	)

	return &Spinner{bar: bar, out: out}
}

// Tick advances the spinner by one frame
func (s *Spinner) Tick() {
	_ = s.bar.Add(1)
}

// Finish clears the spinner and prints the outcome
func (s *Spinner) Finish(ok bool, message string) {
	_ = s.bar.Finish()
	if ok {
		fmt.Fprintln(s.out, color.GreenString(message))
		return
	}
	fmt.Fprintln(s.out, color.RedString(message))
}
