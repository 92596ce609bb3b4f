package controller

import (
	"fmt"

	m "github.com/mouse-blink/contractfind/internal/model"
	"github.com/spf13/cobra"
)

// SimpleUI implements UI as plain text on the command's output stream.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// MissingCodes implements UI.
func (s *SimpleUI) MissingCodes(path m.Path) {
	for _, line := range missingCodesLines(path) {
		s.println(line)
	}
}

// CodesNotFound implements UI.
func (s *SimpleUI) CodesNotFound(path m.Path) {
	s.println(codesNotFoundLine(path))
}

// CodesUnreadable implements UI.
func (s *SimpleUI) CodesUnreadable(path m.Path, err error) {
	s.println(codesUnreadableLine(path, err))
}

// CodeListEmpty implements UI.
func (s *SimpleUI) CodeListEmpty() {
	s.println(codeListEmptyLine)
}

// FileParseFailed implements UI.
func (s *SimpleUI) FileParseFailed(path m.Path, err error) {
	s.println(parseFailedLine(path, err))
}

// FileFailed implements UI.
func (s *SimpleUI) FileFailed(path m.Path, err error) {
	s.println(fileFailedLine(path, err))
}

// MatchFound implements UI.
func (s *SimpleUI) MatchFound(line string) {
	s.println(line)
}

// Summary prints the per-code table followed by the report location.
func (s *SimpleUI) Summary(summary m.RunSummary) {
	if len(summary.Results) > 0 {
		s.printf("\n%s", renderSummaryTable(summary))
	}

	s.println(savedLine(summary.Report))
}

func (s *SimpleUI) println(line string) {
	_, _ = fmt.Fprintln(s.cmd.OutOrStdout(), line)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
