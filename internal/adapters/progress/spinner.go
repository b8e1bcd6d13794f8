package progress

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/madrazzl3/solbuild/internal/usecase"
)

var stageCaser = cases.Title(language.English)

// SpinnerSink renders compile progress with a terminal spinner.
type SpinnerSink struct {
	spinner *spinner.Spinner
}

// NewSpinnerSink creates a spinner-based progress sink.
func NewSpinnerSink() *SpinnerSink {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.HideCursor = false
	return &SpinnerSink{spinner: s}
}

// OnProgress starts the spinner on compile start and stops it when done.
func (p *SpinnerSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	switch event.Stage {
	case usecase.StageCompileStart:
		message := event.Message
		if message == "" {
			message = stageLabel(event.Stage)
		}
		p.spinner.Suffix = " " + message
		if event.Spinner && !p.spinner.Active() {
			p.spinner.Start()
		}
	case usecase.StageCompileDone:
		if p.spinner.Active() {
			p.spinner.Stop()
		}
	}
}

// stageLabel derives a display message from a stage token such as
// "compile:start".
func stageLabel(stage string) string {
	name, _, _ := strings.Cut(stage, ":")
	return stageCaser.String(name) + "..."
}

// Info prints an informational message below the spinner.
func (p *SpinnerSink) Info(message string) {
	fmt.Println(message)
}

// Error prints an error message to stderr.
func (p *SpinnerSink) Error(message string) {
	fmt.Fprintln(os.Stderr, color.RedString(message))
}

var _ usecase.ProgressSink = (*SpinnerSink)(nil)
