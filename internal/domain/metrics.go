package domain

import "strings"

// branchKeywords are the branching/looping tokens counted by the
// complexity estimate. Each is padded with spaces so "elif" does not
// also count as "if".
var branchKeywords = []string{
	" if ", " for ", " while ", " case ", " catch ", " elif ", " else if ",
}

// ComputeMetrics derives the three bounded metrics from the raw text.
// It is a pure function of (code, language).
func ComputeMetrics(code string, lang Language) Metrics {
	return Metrics{
		CyclomaticComplexity: estimateComplexity(code),
		ReadabilityScore:     readabilityScore(code),
		StyleAdherence:       styleAdherence(code, lang),
	}
}

func estimateComplexity(code string) int {
	count := 1
	low := " " + strings.ToLower(code) + " "
	for _, kw := range branchKeywords {
		count += strings.Count(low, kw)
	}
	return clamp(count, 1, 30)
}

func readabilityScore(code string) int {
	var lines []string
	for _, l := range strings.Split(code, "\n") {
		if strings.TrimSpace(l) != "" {
			lines = append(lines, l)
		}
	}

	total := 0
	tooLong := 0
	for _, l := range lines {
		total += len(l)
		if len(l) > 120 {
			tooLong++
		}
	}

	avg := 0
	if len(lines) > 0 {
		avg = total / len(lines)
	}

	score := 100 - min(60, avg) - min(20, tooLong*2)
	return clamp(score, 10, 100)
}

func styleAdherence(code string, lang Language) int {
	penalty := 0
	if lang.IsJSLike() && VarKeywordRE.MatchString(code) {
		penalty += 10
	}
	if SnakeCaseRE.MatchString(code) {
		penalty += 10
	}
	if TodoCommentRE.MatchString(code) {
		penalty += 5
	}
	return max(10, 95-penalty)
}

// Score combines issue counts and metrics into a single quality score.
// Any detected error dominates by construction: the non-error
// contribution is capped at 50 while the error penalty alone reaches 90.
func Score(issues []Issue, m Metrics) int {
	errors, _, _ := CountKinds(issues)
	if errors == 0 {
		return 100
	}

	penalty := min(90, errors*15)
	base := min(50, int(0.3*float64(m.ReadabilityScore)+0.2*float64(m.StyleAdherence)))
	return max(5, base-penalty)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
