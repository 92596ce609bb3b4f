package model

import "fmt"

// DefaultElement is the local name of the elements holding contract codes.
const DefaultElement = "ContractCode"

// Match is one element whose trimmed text equals a target code.
type Match struct {
	File Path
	Code string
}

// Line renders the report line for the match, without a trailing newline.
// element is the local name that was searched for.
func (m Match) Line(element string) string {
	return fmt.Sprintf("Файл: %s, %s найден: %s", m.File, element, m.Code)
}

// ScanStats counts what a single tree walk saw.
type ScanStats struct {
	Visited     int // regular files seen
	Considered  int // files with the markup extension
	ParseFailed int
	OtherFailed int
	Matches     int
}

// CodeResult holds the outcome of scanning the tree for one code.
type CodeResult struct {
	Code  string
	Stats ScanStats
}

// RunSummary is what the workflow reports at the end of a run.
type RunSummary struct {
	Report  Path
	Results []CodeResult
}

// TotalMatches sums the matches over every code.
func (r RunSummary) TotalMatches() int {
	total := 0
	for _, res := range r.Results {
		total += res.Stats.Matches
	}

	return total
}
