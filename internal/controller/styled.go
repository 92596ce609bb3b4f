package controller

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/contractfind/internal/model"
)

// StyledUI implements UI with lipgloss colouring for interactive terminals.
type StyledUI struct {
	output io.Writer

	matchStyle lipgloss.Style
	warnStyle  lipgloss.Style
	errorStyle lipgloss.Style
	titleStyle lipgloss.Style
	noteStyle  lipgloss.Style
}

// NewStyledUI creates a new StyledUI writing to output.
func NewStyledUI(output io.Writer) *StyledUI {
	return &StyledUI{
		output:     output,
		matchStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		warnStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		errorStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		titleStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		noteStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	}
}

// MissingCodes implements UI.
func (t *StyledUI) MissingCodes(path m.Path) {
	lines := missingCodesLines(path)
	t.println(t.errorStyle.Render(lines[0]))
	t.println(t.noteStyle.Render(lines[1]))
}

// CodesNotFound implements UI.
func (t *StyledUI) CodesNotFound(path m.Path) {
	t.println(t.errorStyle.Render(codesNotFoundLine(path)))
}

// CodesUnreadable implements UI.
func (t *StyledUI) CodesUnreadable(path m.Path, err error) {
	t.println(t.errorStyle.Render(codesUnreadableLine(path, err)))
}

// CodeListEmpty implements UI.
func (t *StyledUI) CodeListEmpty() {
	t.println(t.warnStyle.Render(codeListEmptyLine))
}

// FileParseFailed implements UI.
func (t *StyledUI) FileParseFailed(path m.Path, err error) {
	t.println(t.warnStyle.Render(parseFailedLine(path, err)))
}

// FileFailed implements UI.
func (t *StyledUI) FileFailed(path m.Path, err error) {
	t.println(t.warnStyle.Render(fileFailedLine(path, err)))
}

// MatchFound implements UI.
func (t *StyledUI) MatchFound(line string) {
	t.println(t.matchStyle.Render(line))
}

// Summary implements UI.
func (t *StyledUI) Summary(summary m.RunSummary) {
	if len(summary.Results) > 0 {
		t.println("")
		t.println(t.titleStyle.Render(totalLine(summary.TotalMatches())))
		_, _ = fmt.Fprint(t.output, renderSummaryTable(summary))
	}

	t.println(t.noteStyle.Render(savedLine(summary.Report)))
}

func (t *StyledUI) println(line string) {
	_, _ = fmt.Fprintln(t.output, line)
}
