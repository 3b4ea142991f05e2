package domain

import "regexp"

// Compiled-once pattern tables shared by the metrics engine and the rule
// sets. Each pattern is a pure predicate over a line or the whole text.
var (
	// VarKeywordRE matches the legacy JS mutable-variable keyword.
	VarKeywordRE = regexp.MustCompile(`\bvar\b`)

	// SnakeCaseRE matches snake_case-shaped identifiers.
	SnakeCaseRE = regexp.MustCompile(`\b[a-z]+_[a-z0-9]+\b`)

	// TodoCommentRE matches TODO comment markers in // and # comments.
	TodoCommentRE = regexp.MustCompile(`(?i)//\s*TODO|#\s*TODO`)

	// JSLoopRE matches a traditional three-clause for loop.
	JSLoopRE = regexp.MustCompile(`for\s*\(.*;.*;.*\)`)

	// PyLoopRE matches a Python for statement occupying a whole line.
	PyLoopRE = regexp.MustCompile(`(?m)^\s*for\s+.*:\s*$`)
)
