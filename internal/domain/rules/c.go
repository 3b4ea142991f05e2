package rules

import (
	"strings"

	"github.com/codelens/codelens/internal/domain"
)

var (
	cUndefinedTokens = []string{"undefined_function", "undefined_variable"}

	cExclusionKeywords = []string{"if", "for", "while", "switch", "struct", "enum", "typedef"}
	cStatementKeywords = []string{"int ", "char ", "float ", "double ", "return", "break", "continue"}
	cOKSuffixes        = []string{";", "{", "}", ":", ",", ")", "("}

	cRepairSkipPrefixes = []string{"#", "//", "/*", "*"}
	cRepairOKSuffixes   = []string{";", "{", "}", ":", ","}
	cRepairKeywords     = []string{"return ", "break", "continue", "int ", "char ", "float ", "double "}

	// Required includes inserted when a recognized builtin appears
	// without its header, in application order.
	cIncludeRules = []struct {
		symbol  string
		include string
	}{
		{"printf", "#include <stdio.h>"},
		{"malloc", "#include <stdlib.h>"},
		{"string", "#include <string.h>"},
	}
)

func cLineIssues(lines []string) []domain.Issue {
	var issues []domain.Issue
	for i, line := range lines {
		ls := strings.TrimSpace(line)
		if ls == "" {
			continue
		}
		if !strings.HasPrefix(ls, "#") && !hasAnySuffix(ls, cOKSuffixes) && !containsAny(ls, cExclusionKeywords) {
			if containsAny(ls, cStatementKeywords) {
				issues = append(issues, domain.Issue{
					Line:       i + 1,
					Kind:       domain.KindError,
					Severity:   domain.SeverityCritical,
					Message:    "Missing semicolon",
					Suggestion: "Add semicolon at end of statement",
				})
			}
		}
		if containsAny(ls, cUndefinedTokens) {
			issues = append(issues, domain.Issue{
				Line:       i + 1,
				Kind:       domain.KindError,
				Severity:   domain.SeverityCritical,
				Message:    "Undefined function/variable",
				Suggestion: "Declare function or variable before use",
			})
		}
	}
	return issues
}

func cRepair(code string) (string, []string) {
	fixed := code
	var changes []string

	lines := strings.Split(fixed, "\n")
	for i, line := range lines {
		ls := strings.TrimSpace(line)
		if ls == "" || hasAnyPrefix(ls, cRepairSkipPrefixes) {
			continue
		}
		if hasAnySuffix(ls, cRepairOKSuffixes) {
			continue
		}
		if containsAny(ls, cRepairKeywords) {
			lines[i] = strings.TrimRight(line, " \t") + ";"
			changes = append(changes, "Added missing semicolon")
		}
	}
	fixed = strings.Join(lines, "\n")

	for _, rule := range cIncludeRules {
		if strings.Contains(fixed, rule.symbol) && !strings.Contains(fixed, rule.include) {
			fixed = rule.include + "\n" + fixed
			changes = append(changes, "Added missing "+rule.include)
		}
	}

	return fixed, changes
}
