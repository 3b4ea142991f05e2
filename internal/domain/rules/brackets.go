package rules

import "github.com/codelens/codelens/internal/domain"

var closerToOpener = map[rune]rune{')': '(', ']': '[', '}': '{'}
var openerToCloser = map[rune]rune{'(': ')', '[': ']', '{': '}'}

// checkBrackets runs a stack-based balance check over the whole text.
// On the first mismatch, or on leftover unclosed openers at end of text,
// it emits exactly one Critical error pinned to line 1 and stops — later
// imbalance in the same call is deliberately not reported.
func checkBrackets(code string) []domain.Issue {
	unbalanced := []domain.Issue{{
		Line:       1,
		Kind:       domain.KindError,
		Severity:   domain.SeverityCritical,
		Message:    "Unbalanced brackets/parens",
		Suggestion: "Fix bracket/parenthesis balancing",
	}}

	var stack []rune
	for _, ch := range code {
		if _, ok := openerToCloser[ch]; ok {
			stack = append(stack, ch)
			continue
		}
		opener, ok := closerToOpener[ch]
		if !ok {
			continue
		}
		if len(stack) == 0 || stack[len(stack)-1] != opener {
			return unbalanced
		}
		stack = stack[:len(stack)-1]
	}

	if len(stack) > 0 {
		return unbalanced
	}
	return nil
}

// missingClosers returns the closing characters needed to balance the
// text, in LIFO order of the unmatched openers. Mismatched closers are
// skipped rather than treated as fatal, matching the repair path's
// best-effort stance.
func missingClosers(code string) []rune {
	var stack []rune
	for _, ch := range code {
		if _, ok := openerToCloser[ch]; ok {
			stack = append(stack, ch)
			continue
		}
		opener, ok := closerToOpener[ch]
		if !ok {
			continue
		}
		if len(stack) > 0 && stack[len(stack)-1] == opener {
			stack = stack[:len(stack)-1]
		}
	}

	closers := make([]rune, 0, len(stack))
	for i := len(stack) - 1; i >= 0; i-- {
		closers = append(closers, openerToCloser[stack[i]])
	}
	return closers
}
