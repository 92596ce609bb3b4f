package domain

import (
	"errors"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/mouse-blink/contractfind/internal/adapter"
	"github.com/mouse-blink/contractfind/internal/controller"
	m "github.com/mouse-blink/contractfind/internal/model"
)

// ScanArgs describes one walk of the corpus for one target code.
type ScanArgs struct {
	Root      m.Path
	Code      string
	Report    m.Path
	Element   string
	Extension string
}

// Scanner walks the corpus and records matches for a single code.
type Scanner interface {
	// Scan visits every file below args.Root and appends one report line per
	// element whose trimmed text equals args.Code. Per-file failures are
	// reported to the UI and never abort the walk; only report I/O errors are
	// returned.
	Scan(args ScanArgs) (m.ScanStats, error)
	// ProcessFile parses a single document and classifies the result.
	ProcessFile(path m.Path, element string) m.Outcome
}

type scanner struct {
	fsAdapter  adapter.SourceFSAdapter
	xmlAdapter adapter.XMLFileAdapter
	reports    adapter.ReportStore
	ui         controller.UI
	log        *zap.Logger
}

// NewScanner creates a Scanner with the provided adapters.
func NewScanner(
	fsAdapter adapter.SourceFSAdapter,
	xmlAdapter adapter.XMLFileAdapter,
	reports adapter.ReportStore,
	ui controller.UI,
	log *zap.Logger,
) Scanner {
	return &scanner{
		fsAdapter:  fsAdapter,
		xmlAdapter: xmlAdapter,
		reports:    reports,
		ui:         ui,
		log:        log,
	}
}

func (s *scanner) Scan(args ScanArgs) (m.ScanStats, error) {
	var stats m.ScanStats

	report := filepath.Clean(string(args.Report))

	err := s.reports.Append(args.Report, func(w adapter.ReportWriter) error {
		return s.fsAdapter.Walk(args.Root, func(path m.Path, walkErr error) error {
			if walkErr != nil {
				s.log.Debug("skipping unreadable entry", zap.String("path", string(path)), zap.Error(walkErr))
				return nil
			}

			stats.Visited++

			if !path.HasExt(args.Extension) || filepath.Clean(string(path)) == report {
				return nil
			}

			stats.Considered++

			return s.record(w, path, args, &stats)
		})
	})

	s.log.Debug("scan finished",
		zap.String("code", args.Code),
		zap.Int("visited", stats.Visited),
		zap.Int("considered", stats.Considered),
		zap.Int("matches", stats.Matches))

	return stats, err
}

func (s *scanner) record(w adapter.ReportWriter, path m.Path, args ScanArgs, stats *m.ScanStats) error {
	outcome := s.ProcessFile(path, args.Element)

	switch outcome.Kind {
	case m.OutcomeParseFailed:
		stats.ParseFailed++
		s.ui.FileParseFailed(path, outcome.Err)
	case m.OutcomeOtherFailed:
		stats.OtherFailed++
		s.ui.FileFailed(path, outcome.Err)
	case m.OutcomeMatched:
		for _, match := range outcome.MatchesFor(path, args.Code) {
			line := match.Line(args.Element)
			if err := w.WriteLine(line); err != nil {
				return fmt.Errorf("write report: %w", err)
			}

			stats.Matches++
			s.ui.MatchFound(line)
		}
	}

	return nil
}

func (s *scanner) ProcessFile(path m.Path, element string) m.Outcome {
	outcome := s.processFile(path, element)

	s.log.Debug("processed file",
		zap.String("path", string(path)),
		zap.String("outcome", string(outcome.Kind)),
		zap.Stringer("root", outcome.Root),
		zap.Int("elements", len(outcome.Texts)))

	return outcome
}

func (s *scanner) processFile(path m.Path, element string) m.Outcome {
	rc, err := s.fsAdapter.Open(path)
	if err != nil {
		return m.OtherFailed(err)
	}

	defer func() { _ = rc.Close() }()

	root, texts, err := s.xmlAdapter.Scan(rc, element)
	if err != nil {
		var parseErr *adapter.ParseError
		if errors.As(err, &parseErr) {
			return m.ParseFailed(err)
		}

		return m.OtherFailed(err)
	}

	return m.Matched(root, texts)
}
