package rules

import (
	"strings"

	"github.com/codelens/codelens/internal/domain"
)

var (
	cppExclusionKeywords = []string{"if", "for", "while", "switch", "class", "struct", "namespace"}
	cppStatementKeywords = []string{"int ", "char ", "float ", "double ", "bool ", "string ", "auto ", "return"}
	cppOKSuffixes        = []string{";", "{", "}", ":", ",", ")", "("}

	cppRepairSkipPrefixes = []string{"#", "//", "/*", "*", "class", "struct", "namespace", "public:", "private:", "protected:"}
	cppRepairOKSuffixes   = []string{";", "{", "}", ":", ","}
	cppRepairKeywords     = []string{"return ", "cout", "cin", "break", "continue", "throw"}
)

func cppLineIssues(lines []string) []domain.Issue {
	var issues []domain.Issue
	for i, line := range lines {
		ls := strings.TrimSpace(line)
		if ls == "" || strings.HasPrefix(ls, "#") {
			continue
		}
		if !hasAnySuffix(ls, cppOKSuffixes) && !containsAny(ls, cppExclusionKeywords) {
			if containsAny(ls, cppStatementKeywords) {
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
				Suggestion: "Declare or include required definition",
			})
		}
	}
	return issues
}

func cppStyleIssues(lines []string) []domain.Issue {
	var issues []domain.Issue
	for i, line := range lines {
		if strings.Contains(line, "==") && !strings.Contains(line, "!=") && !strings.Contains(line, "std::") {
			issues = append(issues, domain.Issue{
				Line:       i + 1,
				Kind:       domain.KindSuggestion,
				Severity:   domain.SeverityMinor,
				Message:    "Consider using std::equal for complex comparisons",
				Suggestion: "Use std::equal for complex types",
			})
		}
	}
	return issues
}

func cppRepair(code string) (string, []string) {
	fixed := code
	var changes []string

	lines := strings.Split(fixed, "\n")
	for i, line := range lines {
		ls := strings.TrimSpace(line)
		if ls == "" || hasAnyPrefix(ls, cppRepairSkipPrefixes) {
			continue
		}
		if hasAnySuffix(ls, cppRepairOKSuffixes) {
			continue
		}
		if containsAny(ls, cppRepairKeywords) {
			lines[i] = strings.TrimRight(line, " \t") + ";"
			changes = append(changes, "Added missing semicolon")
		}
	}
	fixed = strings.Join(lines, "\n")

	if strings.Contains(fixed, "cout") && !strings.Contains(fixed, "#include <iostream>") {
		fixed = "#include <iostream>\n" + fixed
		changes = append(changes, "Added missing #include <iostream>")
	} else if strings.Contains(fixed, "printf") && !strings.Contains(fixed, "#include <cstdio>") {
		fixed = "#include <cstdio>\n" + fixed
		changes = append(changes, "Added missing #include <cstdio>")
	}

	return fixed, changes
}
