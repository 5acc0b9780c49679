package controller

import (
	"bytes"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/natiilollll/Code-Sequence-Validator/internal/model"
)

const (
	bannerLine     = "Posloupnost:"
	totalLine      = "Celkem: %d\n"
	malformedInput = "Nespravny vstup."
)

// SimpleUI prints the classic line protocol through the cobra command's writers.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start() error {
	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {
}

// Wait returns immediately; plain output has nothing to wait for.
func (s *SimpleUI) Wait() {
}

// DisplayBanner prints the greeting that precedes all answers.
func (s *SimpleUI) DisplayBanner() {
	s.printf("%s\n", bannerLine)
}

// DisplayResult prints the solution lines, if any, followed by the total.
func (s *SimpleUI) DisplayResult(report m.Report) {
	if report.Err != nil {
		_, _ = fmt.Fprintf(s.cmd.ErrOrStderr(), "record %d failed: %v\n", report.Index, report.Err)
		return
	}

	s.printf("%s", report.Solutions)
	s.printf(totalLine, report.Count)
}

// DisplayInputError reports a malformed record.
func (s *SimpleUI) DisplayInputError(_ error) {
	s.printf("%s\n", malformedInput)
}

// DisplaySummary prints one table row per record.
func (s *SimpleUI) DisplaySummary(reports []m.Report) {
	var tableBuffer bytes.Buffer

	WriteReportTable(&tableBuffer, reports)
	s.printf("\n%s", tableBuffer.String())
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

// WriteReportTable renders reports as a borderless table with a totals footer.
func WriteReportTable(w io.Writer, reports []m.Report) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Record", "Action", "Length", "Count", "Note"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT,
	})

	var total int64

	failed := 0

	for _, r := range reports {
		if r.Failed() {
			failed++
		}

		total += r.Count

		table.Append([]string{
			fmt.Sprintf("%d", r.Index),
			r.Action,
			fmt.Sprintf("%d", r.Length),
			fmt.Sprintf("%d", r.Count),
			reportNote(r),
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Records %d", len(reports)),
		"",
		"",
		fmt.Sprintf("%d", total),
		fmt.Sprintf("Failed %d", failed),
	})

	table.Render()
}

func reportNote(r m.Report) string {
	switch {
	case r.Err != nil:
		return r.Err.Error()
	case r.Error != "":
		return r.Error
	case r.Capped:
		return "length cap"
	}

	return ""
}
