package domain

import "context"

// SyntaxFault is one fault reported by a language parser.
type SyntaxFault struct {
	Line    int
	Message string
}

// SyntaxChecker parses source text and reports syntax faults. The only
// implementation backs the Python rule set with a full parser; every
// other language is checked heuristically.
type SyntaxChecker interface {
	Check(code string) []SyntaxFault
}

// RepairProvider is an external service capable of returning a corrected
// version of code given an error summary. Both known providers implement
// the same contract and are treated as interchangeable.
type RepairProvider interface {
	// Name identifies the provider in attempt records and results.
	Name() string

	// Configured reports whether a credential is present. Unconfigured
	// providers are recorded as skipped and never invoked.
	Configured() bool

	// SubmitRepair asks the provider for corrected code. The returned
	// text is raw; fence stripping happens before it is used.
	SubmitRepair(ctx context.Context, code string, lang Language, errorSummary string) (string, error)
}
