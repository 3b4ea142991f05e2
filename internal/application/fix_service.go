package application

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/codelens/codelens/internal/domain"
	"github.com/codelens/codelens/internal/domain/rules"
)

// FixService orchestrates auto-repair: a deterministic heuristic pass
// first, then — only if errors remain — a best-effort race between the
// configured AI repair providers.
type FixService struct {
	analyze   *AnalyzeService
	engine    *rules.Engine
	providers []domain.RepairProvider

	requestTimeout   time.Duration
	combinedDeadline time.Duration

	log *zap.Logger
}

func NewFixService(
	analyze *AnalyzeService,
	engine *rules.Engine,
	providers []domain.RepairProvider,
	cfg domain.ProvidersConfig,
	log *zap.Logger,
) *FixService {
	if log == nil {
		log = zap.NewNop()
	}
	return &FixService{
		analyze:          analyze,
		engine:           engine,
		providers:        providers,
		requestTimeout:   cfg.RequestTimeout,
		combinedDeadline: cfg.CombinedDeadline,
		log:              log,
	}
}

// Fix analyzes the document and attempts repair. It never fails: at
// worst it returns the heuristic output (possibly unchanged) with the
// attempt audit trail explaining why.
func (s *FixService) Fix(ctx context.Context, doc domain.Document) domain.RepairResult {
	lang := domain.DetectLanguage(doc.Code, doc.Hint)
	attempts := []domain.RepairAttempt{}

	analysis := s.analyze.analyzeAs(doc.Code, lang)
	errors := domain.Errors(analysis.Issues)
	if len(errors) == 0 {
		return domain.RepairResult{
			Language:  lang,
			FixedCode: doc.Code,
			Changes:   []string{domain.NoChangesMarker},
			Source:    domain.SourceHeuristic,
			Attempts:  attempts,
		}
	}

	fixed, changes := s.engine.Repair(doc.Code, lang)

	if len(changes) > 0 {
		recheck := s.analyze.analyzeAs(fixed, lang)
		if len(domain.Errors(recheck.Issues)) == 0 {
			attempts = append(attempts, domain.RepairAttempt{Source: domain.SourceHeuristic, Applied: true})
			return domain.RepairResult{
				Language:  lang,
				FixedCode: fixed,
				Changes:   changes,
				Source:    domain.SourceHeuristic,
				Attempts:  attempts,
			}
		}
	}

	if result, ok := s.raceProviders(ctx, doc.Code, lang, errors, &attempts); ok {
		result.Language = lang
		return result
	}

	attempts = append(attempts, domain.RepairAttempt{Source: domain.SourceHeuristic, Applied: len(changes) > 0})
	if len(changes) == 0 {
		changes = []string{domain.NoChangesMarker}
	}
	return domain.RepairResult{
		Language:  lang,
		FixedCode: fixed,
		Changes:   changes,
		Source:    domain.SourceHeuristic,
		Attempts:  attempts,
	}
}

type providerOutcome struct {
	name string
	text string
	err  error
}

// raceProviders invokes every configured provider concurrently and
// accepts the first completion whose fence-stripped output is non-empty
// and differs from the original input. Unconfigured providers are
// recorded up front and never invoked. Returns ok=false when no result
// was accepted before the combined deadline.
func (s *FixService) raceProviders(
	ctx context.Context,
	original string,
	lang domain.Language,
	errors []domain.Issue,
	attempts *[]domain.RepairAttempt,
) (domain.RepairResult, bool) {
	raceCtx, cancel := context.WithTimeout(ctx, s.combinedDeadline)
	defer cancel()

	summary := errorSummary(errors)

	// Buffered so late completions after acceptance or deadline never
	// block their goroutines.
	results := make(chan providerOutcome, len(s.providers))
	inFlight := 0

	for _, p := range s.providers {
		if !p.Configured() {
			*attempts = append(*attempts, domain.RepairAttempt{
				Source:  p.Name(),
				Applied: false,
				Error:   domain.MissingCredentialReason,
			})
			continue
		}
		inFlight++
		go func(p domain.RepairProvider) {
			callCtx, callCancel := context.WithTimeout(raceCtx, s.requestTimeout)
			defer callCancel()
			text, err := p.SubmitRepair(callCtx, original, lang, summary)
			results <- providerOutcome{name: p.Name(), text: text, err: err}
		}(p)
	}

	for inFlight > 0 {
		select {
		case <-raceCtx.Done():
			s.log.Debug("provider race deadline elapsed", zap.Int("in_flight", inFlight))
			return domain.RepairResult{}, false
		case out := <-results:
			inFlight--
			if out.err != nil {
				s.log.Debug("provider attempt failed", zap.String("provider", out.name), zap.Error(out.err))
				*attempts = append(*attempts, domain.RepairAttempt{
					Source:  out.name,
					Applied: false,
					Error:   out.err.Error(),
				})
				continue
			}
			text := stripCodeFence(out.text)
			if text == "" || text == original {
				*attempts = append(*attempts, domain.RepairAttempt{
					Source:  out.name,
					Applied: false,
					Error:   domain.NoResultReason,
				})
				continue
			}
			// First usable completion wins; cancel the rest.
			cancel()
			*attempts = append(*attempts, domain.RepairAttempt{Source: out.name, Applied: true})
			return domain.RepairResult{
				FixedCode: text,
				Changes:   []string{"AI fix applied"},
				Source:    out.name,
				Attempts:  *attempts,
			}, true
		}
	}

	return domain.RepairResult{}, false
}

func errorSummary(errors []domain.Issue) string {
	lines := make([]string, 0, len(errors))
	for _, e := range errors {
		lines = append(lines, fmt.Sprintf("Line %d: %s", e.Line, e.Message))
	}
	return strings.Join(lines, "\n")
}

// stripCodeFence removes leading/trailing fenced-code markup: the first
// line is dropped if it opens a fence (optionally carrying a language
// tag), the last line only if it is exactly a closing fence.
func stripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	lines := strings.Split(text, "\n")
	if len(lines) <= 1 {
		return text
	}
	lines = lines[1:]
	if strings.TrimSpace(lines[len(lines)-1]) == "```" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}
