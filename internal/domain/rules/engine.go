// Package rules implements the per-language issue detectors and the
// deterministic heuristic repair rewrites.
//
// Detection runs in a fixed order: critical/syntax checks first,
// per-language style checks second, language-agnostic checks last. The
// combined list is truncated at domain.MaxIssues.
//
// Known limitation: the Python per-line syntax re-check re-parses single
// lines out of context, so multi-line constructs (a dangling "else:", a
// continued expression) can be flagged even when the document would be
// fine with more context. The re-check only runs after the whole-document
// parse already failed, which keeps the noise bounded.
package rules

import (
	"strings"

	"github.com/codelens/codelens/internal/domain"
)

// Engine finds issues and applies heuristic repairs. The Python rule set
// delegates syntax validation to the injected checker; a nil checker
// disables Python syntax checks but leaves the style rules active.
type Engine struct {
	python domain.SyntaxChecker
}

// NewEngine creates an Engine backed by the given Python syntax checker.
func NewEngine(python domain.SyntaxChecker) *Engine {
	return &Engine{python: python}
}

// FindIssues runs every detector for the language over the code and
// returns at most domain.MaxIssues issues in detection order.
func (e *Engine) FindIssues(code string, lang domain.Language) []domain.Issue {
	lines := strings.Split(code, "\n")
	var issues []domain.Issue

	// Critical/syntax detectors.
	switch lang {
	case domain.LangPython:
		issues = append(issues, e.pythonSyntaxIssues(code, lines)...)
	case domain.LangJavaScript, domain.LangTypeScript:
		issues = append(issues, checkBrackets(code)...)
		issues = append(issues, jsLineIssues(lines)...)
	case domain.LangC:
		issues = append(issues, cLineIssues(lines)...)
	case domain.LangCPP:
		issues = append(issues, cppLineIssues(lines)...)
	case domain.LangJava:
		issues = append(issues, javaLineIssues(lines)...)
	}

	if lang.IsJSLike() {
		issues = append(issues, jsSemicolonIssues(lines)...)
	}

	// Style/maintainability detectors. Never errors.
	switch lang {
	case domain.LangJavaScript, domain.LangTypeScript:
		issues = append(issues, jsStyleIssues(code, lines)...)
	case domain.LangPython:
		issues = append(issues, pythonStyleIssues(code, lines)...)
	case domain.LangJava:
		issues = append(issues, javaStyleIssues(lines)...)
	case domain.LangCPP:
		issues = append(issues, cppStyleIssues(lines)...)
	}

	// Language-agnostic detectors.
	issues = append(issues, genericIssues(code, lang)...)

	if len(issues) > domain.MaxIssues {
		issues = issues[:domain.MaxIssues]
	}
	return issues
}

// Repair applies the language's ordered rewrite sequence and returns the
// rewritten code plus one change-log entry per applied rewrite. Rewrites
// that leave the text byte-identical log nothing. Trailing whitespace is
// stripped from every line afterwards without a log entry.
//
// Callers decide whether repair should run at all; Repair itself does
// not consult the issue engine.
func (e *Engine) Repair(code string, lang domain.Language) (string, []string) {
	fixed := code
	var changes []string

	switch lang {
	case domain.LangJavaScript, domain.LangTypeScript:
		fixed, changes = jsRepair(fixed)
	case domain.LangPython:
		fixed, changes = pythonRepair(fixed)
	case domain.LangJava:
		fixed, changes = javaRepair(fixed)
	case domain.LangCPP:
		fixed, changes = cppRepair(fixed)
	case domain.LangC:
		fixed, changes = cRepair(fixed)
	}

	fixed = stripTrailingSpace(fixed)
	return fixed, changes
}

func stripTrailingSpace(code string) string {
	lines := strings.Split(code, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " \t")
	}
	return strings.Join(lines, "\n")
}

func hasAnySuffix(s string, suffixes []string) bool {
	for _, suf := range suffixes {
		if strings.HasSuffix(s, suf) {
			return true
		}
	}
	return false
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, pre := range prefixes {
		if strings.HasPrefix(s, pre) {
			return true
		}
	}
	return false
}

func containsAny(s string, tokens []string) bool {
	for _, tok := range tokens {
		if strings.Contains(s, tok) {
			return true
		}
	}
	return false
}
