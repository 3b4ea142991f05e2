package rules

import (
	"strings"

	"github.com/codelens/codelens/internal/domain"
)

// compoundKeywords start Python statements that must end with a colon.
var compoundKeywords = []string{
	"if", "for", "while", "def", "class", "elif", "else", "except", "finally", "with",
}

// pythonSyntaxIssues delegates whole-document validation to the parser,
// surfacing each fault as a Critical error. Only when the document failed
// does it re-check line by line, flagging additional faulty lines that do
// not already carry an issue.
func (e *Engine) pythonSyntaxIssues(code string, lines []string) []domain.Issue {
	if e.python == nil {
		return nil
	}

	faults := e.python.Check(code)
	if len(faults) == 0 {
		return nil
	}

	var issues []domain.Issue
	for _, f := range faults {
		line := f.Line
		if line < 1 {
			line = 1
		}
		issues = append(issues, domain.Issue{
			Line:       line,
			Kind:       domain.KindError,
			Severity:   domain.SeverityCritical,
			Message:    "SyntaxError: " + f.Message,
			Suggestion: "Fix Python syntax",
		})
	}

	flagged := make(map[int]bool, len(issues))
	for _, is := range issues {
		flagged[is.Line] = true
	}

	for i, line := range lines {
		if strings.TrimSpace(line) == "" || flagged[i+1] {
			continue
		}
		if len(e.python.Check(line)) > 0 {
			issues = append(issues, domain.Issue{
				Line:       i + 1,
				Kind:       domain.KindError,
				Severity:   domain.SeverityCritical,
				Message:    "Potential syntax error",
				Suggestion: "Check line syntax",
			})
			flagged[i+1] = true
		}
	}

	return issues
}

func pythonStyleIssues(code string, lines []string) []domain.Issue {
	var issues []domain.Issue
	usesLogging := strings.Contains(code, "logging")

	for i, line := range lines {
		if strings.HasSuffix(strings.TrimRight(line, " \t"), ";") {
			issues = append(issues, domain.Issue{
				Line:       i + 1,
				Kind:       domain.KindSuggestion,
				Severity:   domain.SeverityMinor,
				Message:    "Unnecessary semicolon",
				Suggestion: "Remove trailing ; in Python",
			})
		}
		if strings.Contains(line, "print(") && !usesLogging {
			issues = append(issues, domain.Issue{
				Line:       i + 1,
				Kind:       domain.KindWarning,
				Severity:   domain.SeverityMinor,
				Message:    "print used for logging",
				Suggestion: "Use the logging module for production",
			})
		}
	}

	if domain.PyLoopRE.MatchString(code) && strings.Contains(code, "range(") {
		issues = append(issues, domain.Issue{
			Line:       1,
			Kind:       domain.KindWarning,
			Severity:   domain.SeverityMajor,
			Message:    "Manual index loop",
			Suggestion: "Prefer list comprehensions",
		})
	}

	return issues
}

// pythonRepair applies trailing-semicolon removal, missing-colon
// insertion and a naive indentation fix, in that order.
func pythonRepair(code string) (string, []string) {
	var changes []string

	lines := strings.Split(code, "\n")
	for i, line := range lines {
		trimmed := strings.TrimRight(line, " \t")
		if strings.HasSuffix(trimmed, ";") {
			lines[i] = strings.TrimRight(trimmed, ";")
			changes = append(changes, "Removed trailing semicolon")
		}
	}

	colonsAdded := false
	for i, line := range lines {
		if fixedLine, ok := withMissingColon(line); ok {
			lines[i] = fixedLine
			colonsAdded = true
		}
	}
	if colonsAdded {
		changes = append(changes, "Added missing colons")
	}

	for i := 1; i < len(lines); i++ {
		line := lines[i]
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, " ") {
			continue
		}
		if !containsAny(line, []string{"def ", "class ", "if ", "for ", "while "}) {
			continue
		}
		if strings.HasSuffix(strings.TrimSpace(lines[i-1]), ":") {
			lines[i] = "    " + line
			changes = append(changes, "Fixed indentation")
		}
	}

	return strings.Join(lines, "\n"), changes
}

// withMissingColon appends a colon to an indented compound statement
// whose body clause lacks one. Lines already containing a colon, or with
// nothing after the keyword, are left alone.
func withMissingColon(line string) (string, bool) {
	trimmed := strings.TrimRight(line, " \t")
	indentLen := len(trimmed) - len(strings.TrimLeft(trimmed, " \t"))
	if indentLen == 0 {
		return line, false
	}

	body := trimmed[indentLen:]
	for _, kw := range compoundKeywords {
		rest, ok := strings.CutPrefix(body, kw+" ")
		if !ok {
			continue
		}
		if strings.TrimSpace(rest) == "" || strings.Contains(rest, ":") {
			return line, false
		}
		return trimmed + ":", true
	}
	return line, false
}
