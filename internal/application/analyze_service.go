package application

import (
	"github.com/codelens/codelens/internal/domain"
	"github.com/codelens/codelens/internal/domain/rules"
)

// AnalyzeService runs the analysis pipeline:
// detect language → find issues → compute metrics → score.
// It is purely synchronous and side-effect free; results are derived on
// every call and never cached.
type AnalyzeService struct {
	engine *rules.Engine
}

func NewAnalyzeService(engine *rules.Engine) *AnalyzeService {
	return &AnalyzeService{engine: engine}
}

func (s *AnalyzeService) Analyze(doc domain.Document) domain.AnalysisResult {
	lang := domain.DetectLanguage(doc.Code, doc.Hint)
	return s.analyzeAs(doc.Code, lang)
}

// analyzeAs analyzes code under an already-resolved language tag. The
// fix service uses it to re-check repaired code without re-detecting.
func (s *AnalyzeService) analyzeAs(code string, lang domain.Language) domain.AnalysisResult {
	issues := s.engine.FindIssues(code, lang)
	metrics := domain.ComputeMetrics(code, lang)
	return domain.AnalysisResult{
		Language: lang,
		Issues:   issues,
		Metrics:  metrics,
		Score:    domain.Score(issues, metrics),
	}
}
