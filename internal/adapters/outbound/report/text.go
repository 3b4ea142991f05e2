// Package report renders an AnalysisResult as a downloadable text or
// HTML document. Purely presentational; the timestamp is supplied by the
// transport layer, never generated here.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/codelens/codelens/internal/domain"
)

// snippetLimit bounds the echoed code snippet in both report formats.
const snippetLimit = 2000

// Document is a rendered report ready to hand to the caller.
type Document struct {
	Filename string `json:"filename"`
	Content  string `json:"content"`
}

// Text renders the plain-text report.
func Text(result domain.AnalysisResult, code string, analyzedAt time.Time) Document {
	errors, others := splitIssues(result.Issues)

	lines := []string{
		"Code Quality Report",
		fmt.Sprintf("Timestamp (UTC): %s", analyzedAt.UTC().Format(time.RFC3339)),
		fmt.Sprintf("Language: %s", result.Language),
		fmt.Sprintf("Code length: %d chars, %d lines", len(code), len(strings.Split(code, "\n"))),
		"",
		fmt.Sprintf("Overall Score: %d/100", result.Score),
		fmt.Sprintf("Cyclomatic Complexity: %d", result.Metrics.CyclomaticComplexity),
		fmt.Sprintf("Readability Score: %d%%", result.Metrics.ReadabilityScore),
		fmt.Sprintf("Style Adherence: %d%%", result.Metrics.StyleAdherence),
		"",
		"Errors:",
	}

	if len(errors) == 0 {
		lines = append(lines, "  - None 🎉")
	} else {
		for _, is := range errors {
			lines = append(lines, formatIssue(is))
		}
	}

	lines = append(lines, "", "Warnings & Suggestions:")
	if len(others) == 0 {
		lines = append(lines, "  - None")
	} else {
		for _, is := range others {
			lines = append(lines, formatIssue(is))
		}
	}

	lines = append(lines,
		"",
		"Code Snippet:",
		strings.Repeat("-", 40),
		truncate(code, snippetLimit),
		strings.Repeat("-", 40),
	)

	return Document{
		Filename: "analysis_report.txt",
		Content:  strings.Join(lines, "\n"),
	}
}

func formatIssue(is domain.Issue) string {
	return fmt.Sprintf("  - Line %d [%s] %s: %s -> Suggestion: %s",
		is.Line, is.Severity, is.Kind, is.Message, is.Suggestion)
}

func splitIssues(issues []domain.Issue) (errors, others []domain.Issue) {
	for _, is := range issues {
		if is.Kind == domain.KindError {
			errors = append(errors, is)
		} else {
			others = append(others, is)
		}
	}
	return
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit]
}
