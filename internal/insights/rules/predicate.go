package rules

import "strings"

// Matches reports whether the condition holds for the given metrics.
func (c Condition) Matches(m Metrics) bool {
	value, ok := resolveMetric(c, m)
	if !ok {
		return false
	}
	op, threshold := c.comparison()
	return evaluateOperator(value, op, threshold)
}

// comparison picks the operator and threshold for a condition. An explicit operator always
// wins; otherwise threshold compares for equality, minCount is a lower bound, deviation is an
// upper bound, and a bare condition only requires the metric to be present (>= 1).
func (c Condition) comparison() (string, float64) {
	op := strings.ToLower(strings.TrimSpace(c.Operator))
	var threshold float64
	def := OpGTE
	switch {
	case c.Threshold != nil:
		threshold, def = *c.Threshold, OpEQ
	case c.MinCount != nil:
		threshold = *c.MinCount
	case c.Deviation != nil:
		threshold, def = *c.Deviation, OpLTE
	default:
		threshold = 1
	}
	if op == "" {
		op = def
	}
	return op, threshold
}

func evaluateOperator(value float64, operator string, threshold float64) bool {
	switch strings.ToLower(strings.TrimSpace(operator)) {
	case OpLT:
		return value < threshold
	case OpLTE:
		return value <= threshold
	case OpGT:
		return value > threshold
	case OpGTE:
		return value >= threshold
	case OpEQ, "":
		return value == threshold
	default:
		return false
	}
}

// resolveMetric locates the number a condition compares against. Name and keyword
// conditions resolve to a match count so they share the operator path with magnitudes.
// The second return is false when the metric does not exist for this student; a domain
// with no records at all has no counts to compare.
func resolveMetric(c Condition, m Metrics) (float64, bool) {
	switch c.Kind() {
	case KindAcademicScore:
		if len(m.SubjectScores) == 0 {
			return 0, false
		}
		names := c.subjectNames()
		if len(names) == 0 {
			return m.AverageScore, true
		}
		for _, name := range names {
			for _, s := range m.SubjectScores {
				if strings.EqualFold(s.Subject, name) {
					return s.Score, true
				}
			}
		}
		return 0, false
	case KindAcademicStrength:
		if m.StrongSubject == "" {
			return 0, false
		}
		names := c.subjectNames()
		if len(names) == 0 {
			return 1, true
		}
		return boolToFloat(containsFold(names, m.StrongSubject)), true
	case KindBalancedScores:
		if len(m.SubjectScores) <= 1 {
			return 0, false
		}
		return m.SubjectScores[0].Score - m.SubjectScores[len(m.SubjectScores)-1].Score, true
	case KindActivityEngagement:
		return countMatching(m.Activities, c.activityNames()), len(m.Activities) > 0
	case KindSportEngagement:
		return countMatching(m.Sports, c.activityNames()), len(m.Sports) > 0
	case KindProjectParticipation:
		if len(m.Projects) == 0 {
			return 0, false
		}
		keyword := strings.TrimSpace(c.Keyword)
		if keyword == "" {
			keyword = "project"
		}
		return countMatching(m.Projects, []string{keyword}), true
	case KindJournalCount:
		return float64(m.JournalCount), m.JournalCount > 0
	case KindMoodPattern:
		if len(m.Moods) == 0 {
			return 0, false
		}
		keyword := strings.TrimSpace(c.Keyword)
		if keyword == "" {
			return float64(len(m.Moods)), true
		}
		var n float64
		for _, mood := range m.Moods {
			if strings.EqualFold(mood, keyword) {
				n++
			}
		}
		return n, true
	case KindGoalExists:
		return countMatching(m.Goals, nonEmpty([]string{c.Keyword})), len(m.Goals) > 0
	case KindGradeLevel:
		return m.GradeLevel, m.HasGradeLevel
	case KindFeedback:
		return countMatching(m.Feedback, nonEmpty([]string{c.Keyword})), len(m.Feedback) > 0
	default:
		return 0, false
	}
}

// countMatching counts items containing any of the needles, case-insensitively.
// With no needles every item counts.
func countMatching(items []string, needles []string) float64 {
	if len(needles) == 0 {
		return float64(len(items))
	}
	var n float64
	for _, item := range items {
		lower := strings.ToLower(item)
		for _, needle := range needles {
			if strings.Contains(lower, strings.ToLower(needle)) {
				n++
				break
			}
		}
	}
	return n
}

func containsFold(items []string, value string) bool {
	for _, item := range items {
		if strings.EqualFold(item, value) {
			return true
		}
	}
	return false
}

func boolToFloat(v bool) float64 {
	if v {
		return 1
	}
	return 0
}
