package report_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codelens/codelens/internal/adapters/outbound/report"
	"github.com/codelens/codelens/internal/domain"
)

var sampleResult = domain.AnalysisResult{
	Language: domain.LangJavaScript,
	Issues: []domain.Issue{
		{Line: 2, Kind: domain.KindError, Severity: domain.SeverityCritical, Message: "Missing semicolon", Suggestion: "Add semicolon at end of statement"},
		{Line: 1, Kind: domain.KindSuggestion, Severity: domain.SeverityMinor, Message: "Avoid var", Suggestion: "Use let or const"},
	},
	Metrics: domain.Metrics{CyclomaticComplexity: 3, ReadabilityScore: 88, StyleAdherence: 85},
	Score:   31,
}

var reportTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestText_Layout(t *testing.T) {
	code := "var x = 1;\nlet y = 2"
	doc := report.Text(sampleResult, code, reportTime)

	assert.Equal(t, "analysis_report.txt", doc.Filename)

	lines := strings.Split(doc.Content, "\n")
	assert.Equal(t, "Code Quality Report", lines[0])
	assert.Equal(t, "Timestamp (UTC): 2025-06-01T12:00:00Z", lines[1])
	assert.Equal(t, "Language: javascript", lines[2])
	assert.Equal(t, "Code length: 20 chars, 2 lines", lines[3])

	assert.Contains(t, doc.Content, "Overall Score: 31/100")
	assert.Contains(t, doc.Content, "Cyclomatic Complexity: 3")
	assert.Contains(t, doc.Content, "Readability Score: 88%")
	assert.Contains(t, doc.Content, "Style Adherence: 85%")
	assert.Contains(t, doc.Content, "  - Line 2 [Critical] Error: Missing semicolon -> Suggestion: Add semicolon at end of statement")
	assert.Contains(t, doc.Content, "  - Line 1 [Minor] Suggestion: Avoid var -> Suggestion: Use let or const")
	assert.Contains(t, doc.Content, strings.Repeat("-", 40))
	assert.Contains(t, doc.Content, code)
}

func TestText_NoIssues(t *testing.T) {
	clean := domain.AnalysisResult{Language: domain.LangPython, Score: 100, Metrics: domain.Metrics{CyclomaticComplexity: 1, ReadabilityScore: 95, StyleAdherence: 95}}
	doc := report.Text(clean, "x = 1", reportTime)

	assert.Contains(t, doc.Content, "Errors:\n  - None 🎉")
	assert.Contains(t, doc.Content, "Warnings & Suggestions:\n  - None")
}

func TestText_SnippetTruncated(t *testing.T) {
	long := strings.Repeat("a", 3000)
	doc := report.Text(sampleResult, long, reportTime)

	assert.Contains(t, doc.Content, strings.Repeat("a", 2000))
	assert.NotContains(t, doc.Content, strings.Repeat("a", 2001))
}

func TestHTML_Rendering(t *testing.T) {
	doc, err := report.HTML(sampleResult, "var x = 1;", reportTime)
	require.NoError(t, err)

	assert.Equal(t, "analysis_report.html", doc.Filename)
	assert.Contains(t, doc.Content, "<title>Code Quality Report</title>")
	assert.Contains(t, doc.Content, "31/100")
	assert.Contains(t, doc.Content, `class="sev-Critical"`)
	assert.Contains(t, doc.Content, `class="sev-Minor"`)
	assert.Contains(t, doc.Content, "Missing semicolon")
}

func TestHTML_EscapesSnippet(t *testing.T) {
	doc, err := report.HTML(sampleResult, "<script>alert(1)</script>", reportTime)
	require.NoError(t, err)

	assert.NotContains(t, doc.Content, "<script>alert(1)</script>")
	assert.Contains(t, doc.Content, "&lt;script&gt;")
}
