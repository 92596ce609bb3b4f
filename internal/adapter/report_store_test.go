package adapter

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	m "github.com/mouse-blink/contractfind/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalReportStore_ResetTruncates(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "results.txt")
	writeTestFile(t, path, "stale line\n")

	rs := NewReportStore()
	require.NoError(t, rs.Reset(m.Path(path)))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, content)
}

func TestLocalReportStore_ResetCreates(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "results.txt")

	require.NoError(t, NewReportStore().Reset(m.Path(path)))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Zero(t, info.Size())
}

func TestLocalReportStore_AppendKeepsEarlierSessions(t *testing.T) {
	t.Parallel()

	path := m.Path(filepath.Join(t.TempDir(), "results.txt"))
	rs := NewReportStore()
	require.NoError(t, rs.Reset(path))

	require.NoError(t, rs.Append(path, func(w ReportWriter) error {
		return w.WriteLine("first")
	}))
	require.NoError(t, rs.Append(path, func(w ReportWriter) error {
		if err := w.WriteLine("second"); err != nil {
			return err
		}
		return w.WriteLine("third")
	}))

	content, err := os.ReadFile(string(path))
	require.NoError(t, err)
	assert.Equal(t, "first\nsecond\nthird\n", string(content))
}

func TestLocalReportStore_AppendReturnsCallbackError(t *testing.T) {
	t.Parallel()

	path := m.Path(filepath.Join(t.TempDir(), "results.txt"))
	boom := errors.New("boom")

	err := NewReportStore().Append(path, func(w ReportWriter) error {
		require.NoError(t, w.WriteLine("written before failure"))
		return boom
	})
	require.ErrorIs(t, err, boom)

	content, readErr := os.ReadFile(string(path))
	require.NoError(t, readErr)
	assert.Equal(t, "written before failure\n", string(content))
}

func TestLocalReportStore_AppendOpenError(t *testing.T) {
	t.Parallel()

	path := m.Path(filepath.Join(t.TempDir(), "missing-dir", "results.txt"))

	called := false
	err := NewReportStore().Append(path, func(ReportWriter) error {
		called = true
		return nil
	})
	require.Error(t, err)
	assert.False(t, called)
}
