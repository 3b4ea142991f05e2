package domain

// Repair sources. The heuristic engine is the fallback of last resort;
// provider names double as attempt identifiers.
const (
	SourceHeuristic  = "heuristic"
	SourceOpenRouter = "openrouter"
	SourceGoogle     = "google"
)

// NoChangesMarker is the single change-log entry returned when repair
// had nothing to do.
const NoChangesMarker = "No changes"

// MissingCredentialReason is recorded for providers skipped because no
// credential was configured.
const MissingCredentialReason = "missing_api_key"

// NoResultReason is recorded for providers that completed but returned
// empty output or output identical to the input.
const NoResultReason = "no_result"

// RepairAttempt is one entry in the repair audit trail, appended in the
// order attempts were resolved. It never affects the chosen result's
// content.
type RepairAttempt struct {
	Source  string `json:"source"`
	Applied bool   `json:"applied"`
	Error   string `json:"error,omitempty"`
}

// RepairResult is the outcome of one repair request.
type RepairResult struct {
	Language  Language        `json:"language"`
	FixedCode string          `json:"fixedCode"`
	Changes   []string        `json:"changes"`
	Source    string          `json:"source"`
	Attempts  []RepairAttempt `json:"attempts"`
}
