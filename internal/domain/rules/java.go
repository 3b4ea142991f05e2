package rules

import (
	"regexp"
	"strings"

	"github.com/codelens/codelens/internal/domain"
)

var (
	javaUndefinedTokens = []string{"undefined_method", "undefined_variable"}

	javaExclusionKeywords = []string{"if", "for", "while", "switch", "class", "interface", "try", "catch"}
	javaStatementKeywords = []string{"int ", "String ", "boolean ", "double ", "float ", "char ", "return", "break", "continue"}
	javaOKSuffixes        = []string{";", "{", "}", ":", ",", ")", "("}

	javaRepairSkipPrefixes = []string{"//", "/*", "*", "public", "private", "protected", "class", "interface", "enum"}
	javaRepairOKSuffixes   = []string{";", "{", "}", ":", ","}
	javaRepairKeywords     = []string{"return ", "System.out", "break", "continue", "throw"}

	javaStringEqualityRE = regexp.MustCompile(`(\w+)\s*==\s*"([^"]*)"`)
)

func javaLineIssues(lines []string) []domain.Issue {
	var issues []domain.Issue
	for i, line := range lines {
		ls := strings.TrimSpace(line)
		if ls == "" {
			continue
		}
		if !hasAnySuffix(ls, javaOKSuffixes) && !containsAny(ls, javaExclusionKeywords) {
			if containsAny(ls, javaStatementKeywords) {
				issues = append(issues, domain.Issue{
					Line:       i + 1,
					Kind:       domain.KindError,
					Severity:   domain.SeverityCritical,
					Message:    "Missing semicolon",
					Suggestion: "Add semicolon at end of statement",
				})
			}
		}
		if containsAny(ls, javaUndefinedTokens) {
			issues = append(issues, domain.Issue{
				Line:       i + 1,
				Kind:       domain.KindError,
				Severity:   domain.SeverityCritical,
				Message:    "Undefined method/variable",
				Suggestion: "Declare or import required definition",
			})
		}
	}
	return issues
}

func javaStyleIssues(lines []string) []domain.Issue {
	var issues []domain.Issue
	for i, line := range lines {
		if strings.Contains(line, "==") && !strings.Contains(line, "equals(") && !strings.Contains(line, "!=") {
			issues = append(issues, domain.Issue{
				Line:       i + 1,
				Kind:       domain.KindSuggestion,
				Severity:   domain.SeverityMinor,
				Message:    "Use .equals() for string comparison",
				Suggestion: "Replace == with .equals() for strings",
			})
		}
	}
	return issues
}

func javaRepair(code string) (string, []string) {
	fixed := code
	var changes []string

	if rewritten := javaStringEqualityRE.ReplaceAllString(fixed, `$1.equals("$2")`); rewritten != fixed {
		fixed = rewritten
		changes = append(changes, "Replaced == with .equals() for strings")
	}

	lines := strings.Split(fixed, "\n")
	for i, line := range lines {
		ls := strings.TrimSpace(line)
		if ls == "" || hasAnyPrefix(ls, javaRepairSkipPrefixes) {
			continue
		}
		if hasAnySuffix(ls, javaRepairOKSuffixes) {
			continue
		}
		if containsAny(ls, javaRepairKeywords) {
			lines[i] = strings.TrimRight(line, " \t") + ";"
			changes = append(changes, "Added missing semicolon")
		}
	}

	return strings.Join(lines, "\n"), changes
}
