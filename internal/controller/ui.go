// Package controller provides the operator-facing output of a scan run.
package controller

import (
	"fmt"

	m "github.com/mouse-blink/contractfind/internal/model"
)

// UI defines the operator-visible channel. Implementations can use different
// output methods (plain text, styled terminal output).
type UI interface {
	// MissingCodes reports that the code list file does not exist.
	MissingCodes(path m.Path)
	// CodesNotFound is the loader's own report of a missing code list.
	CodesNotFound(path m.Path)
	// CodesUnreadable reports any other failure reading the code list.
	CodesUnreadable(path m.Path, err error)
	// CodeListEmpty reports that the code list holds no codes.
	CodeListEmpty()
	// FileParseFailed reports a document that is not well-formed.
	FileParseFailed(path m.Path, err error)
	// FileFailed reports any other per-file failure.
	FileFailed(path m.Path, err error)
	// MatchFound echoes a report line as it is written.
	MatchFound(line string)
	// Summary shows the per-code totals and where the report went.
	Summary(summary m.RunSummary)
}

func missingCodesLines(path m.Path) []string {
	return []string{
		fmt.Sprintf("Файл с кодами не найден: %s", path),
		"Пожалуйста, проверьте, что файл существует.",
	}
}

func codesNotFoundLine(path m.Path) string {
	return fmt.Sprintf("Файл %s не найден. Проверьте путь.", path)
}

func codesUnreadableLine(path m.Path, err error) string {
	return fmt.Sprintf("Не удалось прочитать файл %s: %v", path, err)
}

const codeListEmptyLine = "Список целевых кодов пуст."

func parseFailedLine(path m.Path, err error) string {
	return fmt.Sprintf("Ошибка при обработке файла %s: %v", path, err)
}

func fileFailedLine(path m.Path, err error) string {
	return fmt.Sprintf("Непредвиденная ошибка с файлом %s: %v", path, err)
}

func totalLine(matches int) string {
	return fmt.Sprintf("Найдено совпадений: %d", matches)
}

func savedLine(path m.Path) string {
	return fmt.Sprintf("Результаты сохранены в файл: %s", path)
}
