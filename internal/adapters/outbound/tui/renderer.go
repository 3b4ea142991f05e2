package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/codelens/codelens/internal/domain"
)

// ── warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
	info    = lipgloss.Color("#8B949E") // soft blue-gray
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(64)

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	errorTagStyle = lipgloss.NewStyle().Foreground(danger).Bold(true)
	warnTagStyle  = lipgloss.NewStyle().Foreground(warning).Bold(true)
	infoTagStyle  = lipgloss.NewStyle().Foreground(info)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	separatorLine = faintStyle.Render(strings.Repeat("─", 60))
)

// RenderAnalysis formats an analysis result for terminal output.
func RenderAnalysis(result domain.AnalysisResult) string {
	var b strings.Builder

	// ── Header ──
	title := headerStyle.Render("codelens")
	subtitle := dimStyle.Render(fmt.Sprintf("%s · code quality", result.Language))
	scoreStyled := lipgloss.NewStyle().
		Bold(true).
		Foreground(scoreColor(result.Score)).
		Render(fmt.Sprintf("%d / 100", result.Score))

	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + scoreStyled))
	b.WriteString("\n\n")

	// ── Metrics ──
	renderMetric(&b, "Cyclomatic Complexity", fmt.Sprintf("%d", result.Metrics.CyclomaticComplexity), complexityColor(result.Metrics.CyclomaticComplexity))
	renderMetric(&b, "Readability", fmt.Sprintf("%d%%", result.Metrics.ReadabilityScore), scoreColor(result.Metrics.ReadabilityScore))
	renderMetric(&b, "Style Adherence", fmt.Sprintf("%d%%", result.Metrics.StyleAdherence), scoreColor(result.Metrics.StyleAdherence))

	b.WriteString("\n")
	b.WriteString("  " + separatorLine)
	b.WriteString("\n\n")

	// ── Issues ──
	if len(result.Issues) > 0 {
		errors, warnings, suggestions := domain.CountKinds(result.Issues)
		b.WriteString("  ")
		b.WriteString(titleStyle.Render("Issues"))
		b.WriteString("  ")
		if errors > 0 {
			b.WriteString(errorTagStyle.Render(fmt.Sprintf("%d errors", errors)))
			b.WriteString("  ")
		}
		if warnings > 0 {
			b.WriteString(warnTagStyle.Render(fmt.Sprintf("%d warnings", warnings)))
			b.WriteString("  ")
		}
		if suggestions > 0 {
			b.WriteString(infoTagStyle.Render(fmt.Sprintf("%d suggestions", suggestions)))
		}
		b.WriteString("\n\n")

		for _, issue := range result.Issues {
			renderIssue(&b, issue)
		}
	} else {
		b.WriteString("  " + passStyle.Render("No issues found.") + "\n")
	}

	b.WriteString("\n")
	return b.String()
}

// RenderFix formats a repair result for terminal output.
func RenderFix(result domain.RepairResult) string {
	var b strings.Builder

	title := headerStyle.Render("codelens fix")
	subtitle := dimStyle.Render(fmt.Sprintf("%s · via %s", result.Language, result.Source))
	b.WriteString(boxStyle.Render(title + "\n" + subtitle))
	b.WriteString("\n\n")

	b.WriteString("  " + titleStyle.Render("Changes") + "\n")
	for _, change := range result.Changes {
		b.WriteString("    " + passStyle.Render("●") + " " + dimStyle.Render(change) + "\n")
	}

	if len(result.Attempts) > 0 {
		b.WriteString("\n  " + titleStyle.Render("Attempts") + "\n")
		for _, at := range result.Attempts {
			renderAttempt(&b, at)
		}
	}

	b.WriteString("\n")
	return b.String()
}

func renderMetric(b *strings.Builder, name, value string, color lipgloss.Color) {
	styled := lipgloss.NewStyle().Bold(true).Foreground(color).Render(value)
	fmt.Fprintf(b, "  %s %s\n", dimStyle.Render(padRight(name, 24)), styled)
}

func renderIssue(b *strings.Builder, issue domain.Issue) {
	tag := kindTag(issue.Kind)
	fmt.Fprintf(b, "    %s %s  %s\n", tag, dimStyle.Render(fmt.Sprintf("L%-4d", issue.Line)), issue.Message)
	if issue.Suggestion != "" {
		fmt.Fprintf(b, "            %s\n", faintStyle.Render(issue.Suggestion))
	}
}

func renderAttempt(b *strings.Builder, at domain.RepairAttempt) {
	var icon string
	switch {
	case at.Applied:
		icon = passStyle.Render("●")
	case at.Error != "":
		icon = errorTagStyle.Render("●")
	default:
		icon = faintStyle.Render("○")
	}
	line := fmt.Sprintf("    %s %s", icon, at.Source)
	if at.Error != "" {
		line += "  " + faintStyle.Render(at.Error)
	}
	b.WriteString(line + "\n")
}

func kindTag(kind domain.IssueKind) string {
	switch kind {
	case domain.KindError:
		return errorTagStyle.Render("error")
	case domain.KindWarning:
		return warnTagStyle.Render("warn ")
	default:
		return infoTagStyle.Render("hint ")
	}
}

func scoreColor(score int) lipgloss.Color {
	switch {
	case score >= 80:
		return success
	case score >= 60:
		return lipgloss.Color("#A3E635") // lime
	case score >= 40:
		return warning
	default:
		return danger
	}
}

func complexityColor(complexity int) lipgloss.Color {
	switch {
	case complexity <= 5:
		return success
	case complexity <= 15:
		return warning
	default:
		return danger
	}
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
