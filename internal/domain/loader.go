package domain

import (
	"errors"
	"io/fs"
	"strings"

	"go.uber.org/zap"

	"github.com/mouse-blink/contractfind/internal/adapter"
	"github.com/mouse-blink/contractfind/internal/controller"
	m "github.com/mouse-blink/contractfind/internal/model"
)

const utf8BOM = "\uFEFF"

// CodeLoader reads the list of target codes.
type CodeLoader interface {
	// Load returns the unique non-blank trimmed lines of the file at path. A
	// missing or unreadable file is reported to the UI and yields an empty set.
	Load(path m.Path) m.CodeSet
}

type codeLoader struct {
	fsAdapter adapter.SourceFSAdapter
	ui        controller.UI
	log       *zap.Logger
}

// NewCodeLoader creates a CodeLoader reading through fsAdapter.
func NewCodeLoader(fsAdapter adapter.SourceFSAdapter, ui controller.UI, log *zap.Logger) CodeLoader {
	return &codeLoader{fsAdapter: fsAdapter, ui: ui, log: log}
}

func (l *codeLoader) Load(path m.Path) m.CodeSet {
	data, err := l.fsAdapter.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			l.ui.CodesNotFound(path)
		} else {
			l.ui.CodesUnreadable(path, err)
		}

		return m.NewCodeSet()
	}

	codes := ParseCodes(string(data))
	l.log.Debug("loaded target codes", zap.String("path", string(path)), zap.Int("count", codes.Len()))

	return codes
}

// ParseCodes splits text into lines and keeps the unique non-blank ones,
// trimmed, in first-appearance order.
func ParseCodes(text string) m.CodeSet {
	text = strings.TrimPrefix(text, utf8BOM)

	var codes []string

	for _, line := range strings.Split(text, "\n") {
		if code := strings.TrimSpace(line); code != "" {
			codes = append(codes, code)
		}
	}

	return m.NewCodeSet(codes...)
}
