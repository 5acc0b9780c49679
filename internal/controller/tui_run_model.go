package controller

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/natiilollll/Code-Sequence-Validator/internal/model"
)

const maxDigitsShown = 32

type runRow struct {
	index  int
	action string
	digits string
	count  int64
	note   string
	failed bool
}

// runModel shows one row per record while a run is in progress.
type runModel struct {
	width   int
	height  int
	spinner spinner.Model
	rows    []runRow
	total   int64
	failed  int
	done    bool
}

func newRunModel() runModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return runModel{spinner: s, width: 80, height: 24}
}

func (rm runModel) Init() tea.Cmd {
	return rm.spinner.Tick
}

func (rm runModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		rm.width = msg.Width
		rm.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return rm, tea.Quit
		}

	case spinner.TickMsg:
		if rm.done {
			return rm, nil
		}

		var cmd tea.Cmd

		rm.spinner, cmd = rm.spinner.Update(msg)

		return rm, cmd

	case resultMsg:
		rm = rm.addResult(msg.report)

	case inputErrorMsg:
		rm.failed++
		rm.rows = append(rm.rows, runRow{note: msg.err.Error(), failed: true})

	case finishedMsg:
		// Input is nil when records come from stdin, so no key can follow.
		rm.done = true
		return rm, tea.Quit
	}

	return rm, nil
}

func (rm runModel) addResult(r m.Report) runModel {
	row := runRow{
		index:  r.Index,
		action: r.Action,
		digits: truncateToWidth(r.Digits, maxDigitsShown),
		count:  r.Count,
	}

	switch {
	case r.Err != nil:
		row.failed = true
		row.note = r.Err.Error()
		rm.failed++
	case r.Capped:
		row.note = "length cap"
	}

	rm.total += r.Count
	rm.rows = append(rm.rows, row)

	return rm
}

func (rm runModel) View() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	title := titleStyle.Render("Code Sequences")

	status := rm.spinner.View() + " solving"
	if rm.done {
		status = "done"
	}

	summary := summaryStyle.Render(fmt.Sprintf(
		"Records: %s   Partitions: %s   Failed: %s   %s",
		accentStyle.Render(fmt.Sprintf("%d", len(rm.rows))),
		accentStyle.Render(fmt.Sprintf("%d", rm.total)),
		accentStyle.Render(fmt.Sprintf("%d", rm.failed)),
		status,
	))

	// The program exits on its own once the run completes.
	hint := "q abort"
	if rm.done {
		hint = "all records answered"
	}

	footer := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Padding(0, 0, 0, 2).
		Render(hint)

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		summary,
		rm.renderRows(),
		footer,
	) + "\n"
}

// renderRows shows the most recent rows that fit on screen.
func (rm runModel) renderRows() string {
	visible := rm.height - 8
	if visible < 3 {
		visible = 3
	}

	rows := rm.rows
	if len(rows) > visible {
		rows = rows[len(rows)-visible:]
	}

	okStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true).Width(12).Align(lipgloss.Right)
	failStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	digitStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))

	lines := make([]string, 0, len(rows))

	for _, row := range rows {
		if row.failed && row.action == "" {
			lines = append(lines, "  "+failStyle.Render(row.note))
			continue
		}

		line := fmt.Sprintf("%5d %s %s  %s", row.index, row.action, okStyle.Render(fmt.Sprintf("%d", row.count)), digitStyle.Render(row.digits))
		if row.note != "" {
			line += "  " + failStyle.Render(row.note)
		}

		lines = append(lines, line)
	}

	if len(lines) == 0 {
		lines = append(lines, "  waiting for records…")
	}

	return strings.Join(lines, "\n")
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	if width <= 1 {
		return ellipsis
	}

	return text[:width-1] + ellipsis
}
