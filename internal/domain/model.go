package domain

import "strings"

// IssueKind distinguishes detected faults from advisory findings. Only
// errors feed the score; warnings and suggestions are reported verbatim.
type IssueKind string

const (
	KindError      IssueKind = "Error"
	KindWarning    IssueKind = "Warning"
	KindSuggestion IssueKind = "Suggestion"
)

// Severity grades an issue for presentation.
type Severity string

const (
	SeverityCritical Severity = "Critical"
	SeverityMajor    Severity = "Major"
	SeverityMinor    Severity = "Minor"
)

// MaxIssues caps the number of issues returned per analysis. Detection
// past the cap is truncated, not sampled.
const MaxIssues = 100

// Issue is a single detected problem in the analyzed text.
type Issue struct {
	Line       int       `json:"line"`
	Kind       IssueKind `json:"type"`
	Severity   Severity  `json:"severity"`
	Message    string    `json:"message"`
	Suggestion string    `json:"suggestion"`
}

// Document is the immutable analysis input: raw text plus the language
// hint the caller supplied.
type Document struct {
	Code string
	Hint string
}

// NewDocument trims trailing whitespace from the code, matching what the
// caller sees echoed back in responses. The document is never mutated
// after creation.
func NewDocument(code, hint string) Document {
	hint = strings.TrimSpace(hint)
	if hint == "" {
		hint = LanguageAuto
	}
	return Document{Code: strings.TrimRight(code, " \t\r\n"), Hint: hint}
}

// Metrics holds the three independent numeric scores computed from the
// raw text. Each is bounded on its own scale.
type Metrics struct {
	CyclomaticComplexity int `json:"cyclomaticComplexity"`
	ReadabilityScore     int `json:"readabilityScore"`
	StyleAdherence       int `json:"styleAdherence"`
}

// AnalysisResult is derived on every call; nothing is cached or persisted.
type AnalysisResult struct {
	Language Language `json:"language"`
	Issues   []Issue  `json:"issues"`
	Metrics  Metrics  `json:"metrics"`
	Score    int      `json:"codeQualityScore"`
}

// CountKinds returns the number of errors, warnings and suggestions in
// the issue list.
func CountKinds(issues []Issue) (errors, warnings, suggestions int) {
	for _, is := range issues {
		switch is.Kind {
		case KindError:
			errors++
		case KindWarning:
			warnings++
		case KindSuggestion:
			suggestions++
		}
	}
	return
}

// Errors filters the issue list down to errors, preserving order.
func Errors(issues []Issue) []Issue {
	var out []Issue
	for _, is := range issues {
		if is.Kind == KindError {
			out = append(out, is)
		}
	}
	return out
}
