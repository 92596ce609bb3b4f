// Package domain implements loading target codes and scanning the corpus for
// them.
package domain

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/mouse-blink/contractfind/internal/adapter"
	"github.com/mouse-blink/contractfind/internal/config"
	"github.com/mouse-blink/contractfind/internal/controller"
	m "github.com/mouse-blink/contractfind/internal/model"
)

// Workflow runs a complete search.
type Workflow interface {
	// Run truncates the report, loads the codes and scans the corpus once per
	// code. A missing or empty code list ends the run early without error.
	Run(cfg config.Config) error
}

type workflow struct {
	fsAdapter adapter.SourceFSAdapter
	reports   adapter.ReportStore
	ui        controller.UI
	loader    CodeLoader
	scanner   Scanner
	log       *zap.Logger
}

// NewWorkflow creates a new Workflow instance with the provided collaborators.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	reports adapter.ReportStore,
	ui controller.UI,
	loader CodeLoader,
	scanner Scanner,
	log *zap.Logger,
) Workflow {
	return &workflow{
		fsAdapter: fsAdapter,
		reports:   reports,
		ui:        ui,
		loader:    loader,
		scanner:   scanner,
		log:       log,
	}
}

func (w *workflow) Run(cfg config.Config) error {
	corpus, codesPath, report := cfg.Paths()

	if err := w.reports.Reset(report); err != nil {
		return err
	}

	exists, err := w.fsAdapter.Exists(codesPath)
	if err != nil {
		w.log.Warn("cannot stat code list", zap.String("path", string(codesPath)), zap.Error(err))
	} else if !exists {
		w.ui.MissingCodes(codesPath)
		return nil
	}

	codes := w.loader.Load(codesPath)
	if codes.Empty() {
		w.ui.CodeListEmpty()
		return nil
	}

	w.log.Debug("starting scan",
		zap.String("corpus", string(corpus)),
		zap.String("report", string(report)),
		zap.Int("codes", codes.Len()))

	summary := m.RunSummary{Report: report}

	for _, code := range codes.Codes() {
		stats, err := w.scanner.Scan(ScanArgs{
			Root:      corpus,
			Code:      code,
			Report:    report,
			Element:   cfg.Element,
			Extension: cfg.Extension,
		})
		if err != nil {
			return fmt.Errorf("scan for %q: %w", code, err)
		}

		summary.Results = append(summary.Results, m.CodeResult{Code: code, Stats: stats})
	}

	w.ui.Summary(summary)

	return nil
}
