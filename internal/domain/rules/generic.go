package rules

import (
	"regexp"
	"strings"

	"github.com/fatih/camelcase"

	"github.com/codelens/codelens/internal/domain"
)

// camelIdentRE matches a camelCase-shaped identifier: a lowercase run
// followed by at least one capitalized word.
var camelIdentRE = regexp.MustCompile(`\b[a-z]+[A-Z][A-Za-z0-9]*\b`)

// genericIssues are the language-agnostic checks run after every
// language-specific detector.
func genericIssues(code string, lang domain.Language) []domain.Issue {
	var issues []domain.Issue

	if code != "" && countNonEmptyLines(code) > 200 {
		issues = append(issues, domain.Issue{
			Line:       1,
			Kind:       domain.KindWarning,
			Severity:   domain.SeverityMajor,
			Message:    "Very large file",
			Suggestion: "Consider splitting into smaller modules",
		})
	}

	if lang.IsJSLike() && domain.SnakeCaseRE.MatchString(code) {
		issues = append(issues, domain.Issue{
			Line:       1,
			Kind:       domain.KindSuggestion,
			Severity:   domain.SeverityMinor,
			Message:    "snake_case found in JS/TS",
			Suggestion: "Use camelCase for variables",
		})
	}

	if lang == domain.LangPython {
		if ident := camelIdentRE.FindString(code); ident != "" {
			issues = append(issues, domain.Issue{
				Line:       1,
				Kind:       domain.KindSuggestion,
				Severity:   domain.SeverityMinor,
				Message:    "camelCase found in Python",
				Suggestion: "Rename " + ident + " to " + toSnakeCase(ident),
			})
		}
	}

	return issues
}

func countNonEmptyLines(code string) int {
	n := 0
	for _, l := range strings.Split(code, "\n") {
		if strings.TrimSpace(l) != "" {
			n++
		}
	}
	return n
}

func toSnakeCase(ident string) string {
	words := camelcase.Split(ident)
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	return strings.Join(words, "_")
}
