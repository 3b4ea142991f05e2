package application_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codelens/codelens/internal/application"
	"github.com/codelens/codelens/internal/domain"
	"github.com/codelens/codelens/internal/domain/rules"
)

// stubProvider is a scripted repair provider. A zero delay resolves
// immediately; an unset apiKey makes it unconfigured.
type stubProvider struct {
	name       string
	configured bool
	text       string
	err        error
	delay      time.Duration
}

func (p *stubProvider) Name() string     { return p.name }
func (p *stubProvider) Configured() bool { return p.configured }

func (p *stubProvider) SubmitRepair(ctx context.Context, code string, lang domain.Language, errorSummary string) (string, error) {
	if p.delay > 0 {
		select {
		case <-time.After(p.delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return p.text, p.err
}

func newFixService(faults map[string][]domain.SyntaxFault, providers ...domain.RepairProvider) *application.FixService {
	engine := rules.NewEngine(stubChecker{faults: faults})
	analyze := application.NewAnalyzeService(engine)
	cfg := domain.ProvidersConfig{
		RequestTimeout:   time.Second,
		CombinedDeadline: 2 * time.Second,
	}
	return application.NewFixService(analyze, engine, providers, cfg, nil)
}

func TestFix_CleanCodeReturnsNoChanges(t *testing.T) {
	svc := newFixService(nil)
	result := svc.Fix(context.Background(), domain.NewDocument("const x = 1;", "javascript"))

	assert.Equal(t, "const x = 1;", result.FixedCode)
	assert.Equal(t, []string{domain.NoChangesMarker}, result.Changes)
	assert.Equal(t, domain.SourceHeuristic, result.Source)
	assert.Empty(t, result.Attempts)
}

func TestFix_HeuristicRepairResolvesErrors(t *testing.T) {
	svc := newFixService(nil)
	result := svc.Fix(context.Background(), domain.NewDocument("const x = 1", "javascript"))

	assert.Equal(t, "const x = 1;", result.FixedCode)
	assert.Equal(t, []string{"Added missing semicolon"}, result.Changes)
	assert.Equal(t, domain.SourceHeuristic, result.Source)
	require.Len(t, result.Attempts, 1)
	assert.Equal(t, domain.SourceHeuristic, result.Attempts[0].Source)
	assert.True(t, result.Attempts[0].Applied)
}

func TestFix_UnconfiguredProvidersRecorded(t *testing.T) {
	// "undefined_variable" cannot be repaired heuristically.
	code := "const x = undefined_variable;"
	svc := newFixService(nil,
		&stubProvider{name: domain.SourceOpenRouter},
		&stubProvider{name: domain.SourceGoogle},
	)

	result := svc.Fix(context.Background(), domain.NewDocument(code, "javascript"))

	assert.Equal(t, domain.SourceHeuristic, result.Source)
	assert.Equal(t, code, result.FixedCode)
	require.Len(t, result.Attempts, 3)
	assert.Equal(t, domain.MissingCredentialReason, result.Attempts[0].Error)
	assert.Equal(t, domain.MissingCredentialReason, result.Attempts[1].Error)
	assert.Equal(t, domain.SourceHeuristic, result.Attempts[2].Source)
	assert.False(t, result.Attempts[2].Applied)
}

func TestFix_FirstUsableProviderWins(t *testing.T) {
	code := "const x = undefined_variable;"
	fast := &stubProvider{name: "fast", configured: true, text: "const x = 1;"}
	slow := &stubProvider{name: "slow", configured: true, text: "const x = 2;", delay: 500 * time.Millisecond}

	svc := newFixService(nil, fast, slow)
	result := svc.Fix(context.Background(), domain.NewDocument(code, "javascript"))

	assert.Equal(t, "fast", result.Source)
	assert.Equal(t, "const x = 1;", result.FixedCode)
	assert.Equal(t, []string{"AI fix applied"}, result.Changes)

	var winner *domain.RepairAttempt
	for i := range result.Attempts {
		if result.Attempts[i].Source == "fast" {
			winner = &result.Attempts[i]
		}
		assert.NotEqual(t, "slow", result.Attempts[i].Source, "losing provider should be cancelled, not recorded")
	}
	require.NotNil(t, winner)
	assert.True(t, winner.Applied)
}

func TestFix_IdenticalOutputIsNoResult(t *testing.T) {
	code := "const x = undefined_variable;"
	echo := &stubProvider{name: "echo", configured: true, text: code}
	fixer := &stubProvider{name: "fixer", configured: true, text: "const x = 1;", delay: 50 * time.Millisecond}

	svc := newFixService(nil, echo, fixer)
	result := svc.Fix(context.Background(), domain.NewDocument(code, "javascript"))

	assert.Equal(t, "fixer", result.Source)

	var echoAttempt *domain.RepairAttempt
	for i := range result.Attempts {
		if result.Attempts[i].Source == "echo" {
			echoAttempt = &result.Attempts[i]
		}
	}
	require.NotNil(t, echoAttempt)
	assert.False(t, echoAttempt.Applied)
	assert.Equal(t, domain.NoResultReason, echoAttempt.Error)
}

func TestFix_ProviderErrorRecorded(t *testing.T) {
	code := "const x = undefined_variable;"
	failing := &stubProvider{name: "failing", configured: true, err: errors.New("rate limited")}

	svc := newFixService(nil, failing)
	result := svc.Fix(context.Background(), domain.NewDocument(code, "javascript"))

	assert.Equal(t, domain.SourceHeuristic, result.Source)
	require.Len(t, result.Attempts, 2)
	assert.Equal(t, "failing", result.Attempts[0].Source)
	assert.Equal(t, "rate limited", result.Attempts[0].Error)
}

func TestFix_StripsCodeFence(t *testing.T) {
	code := "const x = undefined_variable;"
	fenced := &stubProvider{
		name:       "fenced",
		configured: true,
		text:       "```javascript\nconst x = 1;\n```",
	}

	svc := newFixService(nil, fenced)
	result := svc.Fix(context.Background(), domain.NewDocument(code, "javascript"))

	assert.Equal(t, "fenced", result.Source)
	assert.Equal(t, "const x = 1;", result.FixedCode)
}

func TestFix_UnterminatedFenceKeepsTrailingContent(t *testing.T) {
	code := "const x = undefined_variable;"
	fenced := &stubProvider{
		name:       "fenced",
		configured: true,
		text:       "```javascript\nconst x = 1;\nconst y = 2;",
	}

	svc := newFixService(nil, fenced)
	result := svc.Fix(context.Background(), domain.NewDocument(code, "javascript"))

	assert.Equal(t, "const x = 1;\nconst y = 2;", result.FixedCode)
}

func TestFix_EmptyProviderOutputFallsBackToHeuristic(t *testing.T) {
	code := "const x = undefined_variable;"
	empty := &stubProvider{name: "empty", configured: true, text: "   "}

	svc := newFixService(nil, empty)
	result := svc.Fix(context.Background(), domain.NewDocument(code, "javascript"))

	assert.Equal(t, domain.SourceHeuristic, result.Source)
	assert.Equal(t, code, result.FixedCode)
	require.Len(t, result.Attempts, 2)
	assert.Equal(t, domain.NoResultReason, result.Attempts[0].Error)
}
