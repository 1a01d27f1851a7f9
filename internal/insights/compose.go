package insights

import (
	"strconv"
	"strings"
	"unicode"

	"treasurebook-backend/internal/insights/rules"
	"treasurebook-backend/internal/records"
)

const (
	defaultGradeLevel = 5
	gradeToAgeOffset  = 5
)

// Compose builds a full report from fetched records. It never fails; missing data degrades
// to placeholder values and fallback rule content. A nil engine evaluates no rules.
func Compose(set records.Set, engine *rules.Engine) Report {
	if engine == nil {
		engine = rules.NewEngine(rules.Config{})
	}

	academicItems := projectAll(set.Academic, projectAcademic)
	talentItems := projectAll(set.Extracurricular, projectExtracurricular)
	sportItems := projectAll(set.Sports, projectSports)
	journalItems := projectAll(set.Journal, projectJournal)
	goalItems := projectAll(set.Goals, projectGoal)
	feedbackItems := projectAll(set.Feedback, projectFeedback)

	report := Report{
		Academic:     summarizeAcademic(academicItems),
		Talent:       summarizeTalent(talentItems),
		Physical:     summarizePhysical(sportItems),
		Emotional:    summarizeEmotional(journalItems),
		Achievements: summarizeAchievements(academicItems, talentItems, sportItems),
		Goals:        summarizeGoals(goalItems),
		Feedback:     summarizeFeedback(feedbackItems),
	}

	strength := ResolveStrength(report.Academic, report.Talent, report.Physical)
	var profile profileRecord
	if len(set.Profile) > 0 && set.Profile[0] != nil {
		profile = projectProfile(set.Profile[0])
	}
	report.ChildSnapshot = ChildSnapshot{
		Name:        orNotAvailable(profile.Name),
		Age:         childAge(profile),
		Class:       orNotAvailable(profile.Grade),
		TopSkill:    strength.TopSkill,
		WeakArea:    strength.WeakArea,
		GrowthScore: strength.GrowthScore,
	}

	m := buildMetrics(report, profile, talentItems, sportItems, journalItems, goalItems, feedbackItems)
	result := engine.Evaluate(m)
	report.Suggestions = result.Suggestions
	report.Forecast = result.Forecast
	report.ActionPlan = result.ActionPlan
	return report
}

func buildMetrics(report Report, profile profileRecord, talent, sports []activityRecord, journal []journalRecord, goals []goalRecord, feedback []feedbackRecord) rules.Metrics {
	m := rules.Metrics{
		AverageScore:   report.Academic.AverageScore,
		JournalCount:   len(journal),
		CompletedGoals: report.Goals.Completed,
	}
	for _, s := range report.Academic.SubjectScores {
		m.SubjectScores = append(m.SubjectScores, rules.SubjectScore{Subject: s.Subject, Score: s.Score})
	}
	if valid(report.Academic.StrongSubject) {
		m.StrongSubject = report.Academic.StrongSubject
	}
	if valid(report.Academic.WeakSubject) {
		m.WeakSubject = report.Academic.WeakSubject
	}
	if valid(report.Emotional.CurrentMood) {
		m.CurrentMood = report.Emotional.CurrentMood
	}
	for _, it := range talent {
		if it.Name != "" {
			m.Activities = append(m.Activities, it.Name)
		}
		if text := joinNonEmpty(it.Name, it.Category, it.Description); text != "" {
			m.Projects = append(m.Projects, text)
		}
	}
	for _, it := range sports {
		if it.Name != "" {
			m.Sports = append(m.Sports, it.Name)
		}
	}
	for _, it := range journal {
		if it.Mood != "" {
			m.Moods = append(m.Moods, it.Mood)
		}
	}
	for _, it := range goals {
		m.Goals = append(m.Goals, it.Title)
		if !it.Completed {
			m.PendingGoals++
		}
	}
	for _, it := range feedback {
		m.Feedback = append(m.Feedback, it.Positive...)
		m.Feedback = append(m.Feedback, it.Improvements...)
	}
	if level, ok := leadingInt(profile.Grade); ok {
		m.GradeLevel, m.HasGradeLevel = float64(level), true
	}
	return m
}

// childAge prefers a recorded age and otherwise estimates it from the grade.
func childAge(p profileRecord) int {
	if p.HasAge {
		return int(p.Age)
	}
	level, ok := leadingInt(p.Grade)
	if !ok {
		level = defaultGradeLevel
	}
	return level + gradeToAgeOffset
}

// leadingInt parses the integer at the start of s, e.g. "7th" or "10 B".
func leadingInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	end := strings.IndexFunc(s, func(r rune) bool { return !unicode.IsDigit(r) })
	if end == -1 {
		end = len(s)
	}
	if end == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

func orNotAvailable(v string) string {
	if v == "" {
		return NotAvailable
	}
	return v
}

func joinNonEmpty(parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " ")
}
