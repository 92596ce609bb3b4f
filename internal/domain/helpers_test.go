package domain

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/contractfind/internal/adapter"
	m "github.com/mouse-blink/contractfind/internal/model"
)

const docAB = `<?xml version="1.0" encoding="UTF-8"?>
<Export xmlns="urn:test">
  <Contract><ContractCode>A</ContractCode></Contract>
  <Contract><Info><ContractCode> B </ContractCode></Info></Contract>
</Export>
`

func docWith(codes ...string) string {
	body := ""
	for _, c := range codes {
		body += "<ContractCode>" + c + "</ContractCode>"
	}

	return `<Root xmlns="urn:test">` + body + `</Root>`
}

// spyFS records how the scanner touches the disk.
type spyFS struct {
	*adapter.LocalSourceFSAdapter
	opened []m.Path
	walks  int
}

func newSpyFS() *spyFS {
	return &spyFS{LocalSourceFSAdapter: adapter.NewLocalSourceFSAdapter()}
}

func (s *spyFS) Open(path m.Path) (io.ReadCloser, error) {
	s.opened = append(s.opened, path)
	return s.LocalSourceFSAdapter.Open(path)
}

func (s *spyFS) Walk(root m.Path, fn adapter.FileWalkFunc) error {
	s.walks++
	return s.LocalSourceFSAdapter.Walk(root, fn)
}

// recordingUI keeps every operator message in order.
type recordingUI struct {
	events  []string
	summary *m.RunSummary
}

func (r *recordingUI) add(format string, args ...interface{}) {
	r.events = append(r.events, fmt.Sprintf(format, args...))
}

func (r *recordingUI) MissingCodes(path m.Path) { r.add("missing %s", path) }
func (r *recordingUI) CodesNotFound(path m.Path) { r.add("not found %s", path) }
func (r *recordingUI) CodesUnreadable(path m.Path, err error) { r.add("unreadable %s: %v", path, err) }
func (r *recordingUI) CodeListEmpty() { r.add("empty") }
func (r *recordingUI) FileParseFailed(path m.Path, err error) { r.add("parse %s", path) }
func (r *recordingUI) FileFailed(path m.Path, err error) { r.add("failed %s", path) }
func (r *recordingUI) MatchFound(line string) { r.add("%s", line) }
func (r *recordingUI) Summary(summary m.RunSummary) { r.summary = &summary }

func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	require.NoError(t, err)

	return string(content)
}

func matchLine(path, code string) string {
	return m.Match{File: m.Path(path), Code: code}.Line(m.DefaultElement)
}
