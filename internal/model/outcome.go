// Package model defines the data structures shared by the contract code scanner.
package model

// OutcomeKind classifies the result of processing one document.
type OutcomeKind string

const (
	// OutcomeMatched means the document parsed; Texts holds the candidate values.
	OutcomeMatched OutcomeKind = "matched"
	// OutcomeParseFailed means the document is not well-formed markup.
	OutcomeParseFailed OutcomeKind = "parse_failed"
	// OutcomeOtherFailed covers I/O, charset and content errors.
	OutcomeOtherFailed OutcomeKind = "other_failed"
)

// Outcome is the result of processing a single file. A failed outcome never
// carries texts.
type Outcome struct {
	Kind OutcomeKind
	// Root is the qualified name of the document element.
	Root QName
	// Texts are the trimmed texts of qualifying elements, in document order.
	Texts []string
	Err   error
}

// Matched builds a successful outcome.
func Matched(root QName, texts []string) Outcome {
	return Outcome{Kind: OutcomeMatched, Root: root, Texts: texts}
}

// ParseFailed builds an outcome for a syntax error.
func ParseFailed(err error) Outcome {
	return Outcome{Kind: OutcomeParseFailed, Err: err}
}

// OtherFailed builds an outcome for any non-syntax failure.
func OtherFailed(err error) Outcome {
	return Outcome{Kind: OutcomeOtherFailed, Err: err}
}

// MatchesFor returns the texts equal to code, as matches for file.
func (o Outcome) MatchesFor(file Path, code string) []Match {
	if o.Kind != OutcomeMatched {
		return nil
	}

	var matches []Match

	for _, text := range o.Texts {
		if text == code {
			matches = append(matches, Match{File: file, Code: code})
		}
	}

	return matches
}
