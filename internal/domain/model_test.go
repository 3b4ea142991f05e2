package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/codelens/codelens/internal/domain"
)

func TestNewDocument_TrimsTrailingWhitespace(t *testing.T) {
	doc := domain.NewDocument("const x = 1;\n\n  \t", "javascript")
	assert.Equal(t, "const x = 1;", doc.Code)
	assert.Equal(t, "javascript", doc.Hint)
}

func TestNewDocument_DefaultsHintToAuto(t *testing.T) {
	assert.Equal(t, "auto", domain.NewDocument("x", "").Hint)
	assert.Equal(t, "auto", domain.NewDocument("x", "  ").Hint)
}

func TestCountKinds(t *testing.T) {
	issues := []domain.Issue{
		{Kind: domain.KindError},
		{Kind: domain.KindError},
		{Kind: domain.KindWarning},
		{Kind: domain.KindSuggestion},
	}
	errors, warnings, suggestions := domain.CountKinds(issues)
	assert.Equal(t, 2, errors)
	assert.Equal(t, 1, warnings)
	assert.Equal(t, 1, suggestions)
}

func TestErrors_PreservesOrder(t *testing.T) {
	issues := []domain.Issue{
		{Line: 3, Kind: domain.KindError},
		{Line: 1, Kind: domain.KindWarning},
		{Line: 7, Kind: domain.KindError},
	}
	errors := domain.Errors(issues)
	assert.Len(t, errors, 2)
	assert.Equal(t, 3, errors[0].Line)
	assert.Equal(t, 7, errors[1].Line)
}
