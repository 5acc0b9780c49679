package controller

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"

	m "github.com/natiilollll/Code-Sequence-Validator/internal/model"
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output  io.Writer
	input   io.Reader
	program *tea.Program
	done    chan struct{}
	err     error
}

// NewTUI creates a new TUI. A nil input disables keyboard handling, which is
// required when the records themselves arrive on standard input.
func NewTUI(output io.Writer, input io.Reader) *TUI {
	return &TUI{output: output, input: input}
}

// Start launches the Bubble Tea program in the background.
func (t *TUI) Start() error {
	t.program = tea.NewProgram(newRunModel(), tea.WithOutput(t.output), tea.WithInput(t.input))
	t.done = make(chan struct{})

	go func() {
		defer close(t.done)

		_, t.err = t.program.Run()
	}()

	return nil
}

// Close tells the program that no more results will arrive.
func (t *TUI) Close() {
	t.send(finishedMsg{})
}

// Wait blocks until the program exits.
func (t *TUI) Wait() {
	if t.done != nil {
		<-t.done
	}
}

// Err returns the error the Bubble Tea program exited with, if any.
func (t *TUI) Err() error {
	return t.err
}

// DisplayBanner is a no-op; the title is part of the view.
func (t *TUI) DisplayBanner() {
}

// DisplayResult adds a row for the answered record.
func (t *TUI) DisplayResult(report m.Report) {
	t.send(resultMsg{report: report})
}

// DisplayInputError adds a row for a malformed record.
func (t *TUI) DisplayInputError(err error) {
	t.send(inputErrorMsg{err: err})
}

// DisplaySummary is a no-op; totals are rendered continuously.
func (t *TUI) DisplaySummary(_ []m.Report) {
}

func (t *TUI) send(msg tea.Msg) {
	if t.program != nil {
		t.program.Send(msg)
	}
}
