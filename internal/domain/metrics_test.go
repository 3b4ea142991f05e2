package domain_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/codelens/codelens/internal/domain"
)

func TestComputeMetrics_ComplexityCountsBranches(t *testing.T) {
	code := "x = a if flag else b while c"
	m := domain.ComputeMetrics(code, domain.LangPython)
	// base 1 + " if " + " while ".
	assert.Equal(t, 3, m.CyclomaticComplexity)
}

func TestComputeMetrics_ComplexityClampedAt30(t *testing.T) {
	code := strings.Repeat("a if b ", 50)
	m := domain.ComputeMetrics(code, domain.LangJavaScript)
	assert.Equal(t, 30, m.CyclomaticComplexity)
}

func TestComputeMetrics_ReadabilityIgnoresBlankLines(t *testing.T) {
	short := "x = 1\n\n\ny = 2"
	m := domain.ComputeMetrics(short, domain.LangPython)
	// avg line length 5, no long lines: 100 - 5 = 95.
	assert.Equal(t, 95, m.ReadabilityScore)
}

func TestComputeMetrics_ReadabilityPenalizesLongLines(t *testing.T) {
	long := strings.Repeat("x", 130)
	m := domain.ComputeMetrics(long, domain.LangPython)
	// avg capped at 60, one long line: 100 - 60 - 2 = 38.
	assert.Equal(t, 38, m.ReadabilityScore)
}

func TestComputeMetrics_ReadabilityFloor(t *testing.T) {
	lines := make([]string, 15)
	for i := range lines {
		lines[i] = strings.Repeat("x", 200)
	}
	m := domain.ComputeMetrics(strings.Join(lines, "\n"), domain.LangPython)
	assert.Equal(t, 20, m.ReadabilityScore)
}

func TestComputeMetrics_StyleAdherence(t *testing.T) {
	tests := []struct {
		name string
		code string
		lang domain.Language
		want int
	}{
		{"clean js", "const x = 1;", domain.LangJavaScript, 95},
		{"var in js", "var x = 1;", domain.LangJavaScript, 85},
		{"var in python is fine", "var_count = 1", domain.LangPython, 85}, // snake_case penalty only
		{"snake in js", "const my_var = 1;", domain.LangJavaScript, 85},
		{"todo comment", "const x = 1; // TODO: fix", domain.LangJavaScript, 90},
		{"all penalties", "var my_var = 1; // TODO later", domain.LangJavaScript, 70},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := domain.ComputeMetrics(tt.code, tt.lang)
			assert.Equal(t, tt.want, m.StyleAdherence)
		})
	}
}

func TestScore_NoErrorsIsPerfect(t *testing.T) {
	issues := []domain.Issue{
		{Kind: domain.KindWarning},
		{Kind: domain.KindSuggestion},
	}
	m := domain.Metrics{ReadabilityScore: 10, StyleAdherence: 10}
	assert.Equal(t, 100, domain.Score(issues, m))
}

func TestScore_SingleError(t *testing.T) {
	issues := []domain.Issue{{Kind: domain.KindError}}
	m := domain.Metrics{ReadabilityScore: 90, StyleAdherence: 95}
	// base = min(50, 27+19) = 46, penalty 15 -> 31.
	assert.Equal(t, 31, domain.Score(issues, m))
}

func TestScore_ErrorsDominate(t *testing.T) {
	issues := make([]domain.Issue, 4)
	for i := range issues {
		issues[i] = domain.Issue{Kind: domain.KindError}
	}
	m := domain.Metrics{ReadabilityScore: 100, StyleAdherence: 100}
	// base capped at 50, penalty 60 -> floor of 5.
	assert.Equal(t, 5, domain.Score(issues, m))
}

func TestScore_PenaltyCappedAt90(t *testing.T) {
	issues := make([]domain.Issue, 20)
	for i := range issues {
		issues[i] = domain.Issue{Kind: domain.KindError}
	}
	assert.Equal(t, 5, domain.Score(issues, domain.Metrics{ReadabilityScore: 100, StyleAdherence: 100}))
}
