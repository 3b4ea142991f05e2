package rules

import (
	"strings"

	"github.com/codelens/codelens/internal/domain"
)

// The JavaScript rule set also covers TypeScript: the heuristics below
// operate on surface syntax the two languages share.

var (
	jsUndefinedTokens = []string{"undefined_variable", "some_undefined_function"}

	jsSemicolonSkipPrefixes = []string{
		"//", "/*", "*", "function", "if", "for", "while", "switch", "try", "catch", "else",
	}
	jsSemicolonOKSuffixes = []string{";", "{", "}", ":", ",", ")"}
	jsStatementKeywords   = []string{"const ", "let ", "var ", "return ", "break", "continue", "throw"}
)

func jsLineIssues(lines []string) []domain.Issue {
	var issues []domain.Issue
	for i, line := range lines {
		ls := strings.TrimSpace(line)
		if ls == "" {
			continue
		}
		if containsAny(ls, jsUndefinedTokens) {
			issues = append(issues, domain.Issue{
				Line:       i + 1,
				Kind:       domain.KindError,
				Severity:   domain.SeverityCritical,
				Message:    "Undefined variable/function",
				Suggestion: "Define variable or import required module",
			})
		}
		if strings.Contains(ls, "function ") && !strings.HasSuffix(ls, "{") && !strings.Contains(ls, "=>") {
			issues = append(issues, domain.Issue{
				Line:       i + 1,
				Kind:       domain.KindError,
				Severity:   domain.SeverityCritical,
				Message:    "Function declaration syntax error",
				Suggestion: "Add opening brace or fix function syntax",
			})
		}
	}
	return issues
}

func jsSemicolonIssues(lines []string) []domain.Issue {
	var issues []domain.Issue
	for i, line := range lines {
		ls := strings.TrimSpace(line)
		if ls == "" || hasAnyPrefix(ls, jsSemicolonSkipPrefixes) {
			continue
		}
		if hasAnySuffix(ls, jsSemicolonOKSuffixes) {
			continue
		}
		if containsAny(ls, jsStatementKeywords) {
			issues = append(issues, domain.Issue{
				Line:       i + 1,
				Kind:       domain.KindError,
				Severity:   domain.SeverityCritical,
				Message:    "Missing semicolon",
				Suggestion: "Add semicolon at end of statement",
			})
		}
	}
	return issues
}

func jsStyleIssues(code string, lines []string) []domain.Issue {
	var issues []domain.Issue
	for i, line := range lines {
		if strings.Contains(line, "==") && !strings.Contains(line, "===") && !strings.Contains(line, "!=") {
			issues = append(issues, domain.Issue{
				Line:       i + 1,
				Kind:       domain.KindSuggestion,
				Severity:   domain.SeverityMinor,
				Message:    "Use strict equality (===)",
				Suggestion: "Replace == with ===",
			})
		}
		if domain.VarKeywordRE.MatchString(line) {
			issues = append(issues, domain.Issue{
				Line:       i + 1,
				Kind:       domain.KindSuggestion,
				Severity:   domain.SeverityMinor,
				Message:    "Avoid var",
				Suggestion: "Use let or const",
			})
		}
	}
	if domain.JSLoopRE.MatchString(code) {
		issues = append(issues, domain.Issue{
			Line:       1,
			Kind:       domain.KindWarning,
			Severity:   domain.SeverityMajor,
			Message:    "Traditional for loop detected",
			Suggestion: "Consider array methods like map/filter/reduce",
		})
	}
	return issues
}

// jsRepair applies the JS/TS rewrite sequence in order: var → let,
// loose → strict equality, missing closers, missing semicolons.
func jsRepair(code string) (string, []string) {
	fixed := code
	var changes []string

	if domain.VarKeywordRE.MatchString(fixed) {
		fixed = domain.VarKeywordRE.ReplaceAllString(fixed, "let")
		changes = append(changes, "Replaced var with let")
	}

	if strict := strictEquality(fixed); strict != fixed {
		fixed = strict
		changes = append(changes, "Replaced == with ===")
	}

	for _, closer := range missingClosers(fixed) {
		fixed += string(closer)
		changes = append(changes, "Added missing closing bracket/paren")
	}

	lines := strings.Split(fixed, "\n")
	for i, line := range lines {
		ls := strings.TrimSpace(line)
		if ls == "" || hasAnyPrefix(ls, jsSemicolonSkipPrefixes) {
			continue
		}
		if hasAnySuffix(ls, jsSemicolonOKSuffixes) {
			continue
		}
		if containsAny(ls, jsStatementKeywords) {
			lines[i] = strings.TrimRight(line, " \t") + ";"
			changes = append(changes, "Added missing semicolon")
		}
	}
	fixed = strings.Join(lines, "\n")

	return fixed, changes
}

// strictEquality rewrites == to === except where the token is part of a
// comparison that must not be corrupted (!=, <=, >=, ===). Go's RE2 has
// no lookaround, so this is a scanner rather than a regex substitution.
func strictEquality(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); {
		if s[i] != '=' || i+1 >= len(s) || s[i+1] != '=' {
			b.WriteByte(s[i])
			i++
			continue
		}
		precededBy := byte(0)
		if i > 0 {
			precededBy = s[i-1]
		}
		followedByEq := i+2 < len(s) && s[i+2] == '='
		if followedByEq || precededBy == '!' || precededBy == '<' || precededBy == '>' || precededBy == '=' {
			b.WriteByte(s[i])
			i++
			continue
		}
		b.WriteString("===")
		i += 2
	}
	return b.String()
}
