package report

import (
	"html/template"
	"strings"
	"time"

	"github.com/codelens/codelens/internal/domain"
)

// htmlData feeds the report template.
type htmlData struct {
	Timestamp  string
	Language   domain.Language
	CodeChars  int
	CodeLines  int
	Score      int
	Metrics    domain.Metrics
	Errors     []issueRow
	Others     []issueRow
	Snippet   string
}

type issueRow struct {
	Line          int
	Kind          domain.IssueKind
	Severity      domain.Severity
	SeverityClass string
	Message       string
	Suggestion    string
}

var htmlTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<title>Code Quality Report</title>
<style>
body { font-family: -apple-system, "Segoe UI", Roboto, sans-serif; margin: 2rem; color: #1f2937; }
h1 { font-size: 1.5rem; }
.meta { color: #6b7280; margin-bottom: 1rem; }
.score { font-size: 2rem; font-weight: 700; }
.metrics span { display: inline-block; margin-right: 1.5rem; }
table { border-collapse: collapse; width: 100%; margin: 1rem 0; }
th, td { text-align: left; padding: 0.4rem 0.6rem; border-bottom: 1px solid #e5e7eb; }
.sev-Critical { color: #e11d48; font-weight: 600; }
.sev-Major { color: #eab308; font-weight: 600; }
.sev-Minor { color: #6b7280; }
pre { background: #f3f4f6; padding: 1rem; border-radius: 6px; overflow-x: auto; }
</style>
</head>
<body>
<h1>Code Quality Report</h1>
<div class="meta">Timestamp (UTC): {{.Timestamp}} &middot; Language: {{.Language}} &middot; {{.CodeChars}} chars, {{.CodeLines}} lines</div>
<div class="score">{{.Score}}/100</div>
<div class="metrics">
<span>Cyclomatic Complexity: {{.Metrics.CyclomaticComplexity}}</span>
<span>Readability: {{.Metrics.ReadabilityScore}}%</span>
<span>Style: {{.Metrics.StyleAdherence}}%</span>
</div>
<h2>Errors</h2>
{{if .Errors}}<table>
<tr><th>Line</th><th>Severity</th><th>Type</th><th>Message</th><th>Suggestion</th></tr>
{{range .Errors}}<tr><td>{{.Line}}</td><td class="{{.SeverityClass}}">{{.Severity}}</td><td>{{.Kind}}</td><td>{{.Message}}</td><td>{{.Suggestion}}</td></tr>
{{end}}</table>{{else}}<p>None 🎉</p>{{end}}
<h2>Warnings &amp; Suggestions</h2>
{{if .Others}}<table>
<tr><th>Line</th><th>Severity</th><th>Type</th><th>Message</th><th>Suggestion</th></tr>
{{range .Others}}<tr><td>{{.Line}}</td><td class="{{.SeverityClass}}">{{.Severity}}</td><td>{{.Kind}}</td><td>{{.Message}}</td><td>{{.Suggestion}}</td></tr>
{{end}}</table>{{else}}<p>None</p>{{end}}
<h2>Code Snippet</h2>
<pre>{{.Snippet}}</pre>
</body>
</html>
`))

// HTML renders the report as a standalone HTML page.
func HTML(result domain.AnalysisResult, code string, analyzedAt time.Time) (Document, error) {
	errors, others := splitIssues(result.Issues)

	data := htmlData{
		Timestamp: analyzedAt.UTC().Format(time.RFC3339),
		Language:  result.Language,
		CodeChars: len(code),
		CodeLines: len(strings.Split(code, "\n")),
		Score:     result.Score,
		Metrics:   result.Metrics,
		Errors:    toRows(errors),
		Others:    toRows(others),
		Snippet:   truncate(code, snippetLimit),
	}

	var sb strings.Builder
	if err := htmlTemplate.Execute(&sb, data); err != nil {
		return Document{}, err
	}
	return Document{
		Filename: "analysis_report.html",
		Content:  sb.String(),
	}, nil
}

func toRows(issues []domain.Issue) []issueRow {
	rows := make([]issueRow, 0, len(issues))
	for _, is := range issues {
		rows = append(rows, issueRow{
			Line:          is.Line,
			Kind:          is.Kind,
			Severity:      is.Severity,
			SeverityClass: "sev-" + string(is.Severity),
			Message:       is.Message,
			Suggestion:    is.Suggestion,
		})
	}
	return rows
}
