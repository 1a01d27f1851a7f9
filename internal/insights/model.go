package insights

import "treasurebook-backend/internal/insights/rules"

const (
	// NotAvailable marks a summary field with no underlying data.
	NotAvailable = "N/A"
	// NotEnoughData is the snapshot value when no domain can supply a skill or weak area.
	NotEnoughData = "Not enough data"
)

// SubjectScore is one subject's averaged, normalized score.
type SubjectScore struct {
	Subject string  `json:"subject"`
	Score   float64 `json:"score"`
	Grade   string  `json:"grade"`
}

// AcademicSummary aggregates academic records. SubjectScores is sorted by descending score.
type AcademicSummary struct {
	AverageScore  float64        `json:"averageScore"`
	StrongSubject string         `json:"strongSubject"`
	StrongGrade   string         `json:"strongGrade"`
	WeakSubject   string         `json:"weakSubject"`
	WeakGrade     string         `json:"weakGrade"`
	SubjectScores []SubjectScore `json:"subjectScores"`
	// RecordCount includes records without a subject; they still feed AverageScore.
	RecordCount   int            `json:"recordCount"`
}

type TalentSummary struct {
	TopActivity  string   `json:"topActivity"`
	Achievements []string `json:"achievements"`
	Enjoyment    string   `json:"enjoyment"`
}

type PhysicalSummary struct {
	TopSport       string   `json:"topSport"`
	Achievements   []string `json:"achievements"`
	Recommendation string   `json:"recommendation"`
}

type MoodCount struct {
	Mood  string `json:"mood"`
	Count int    `json:"count"`
}

type EmotionalSummary struct {
	CurrentMood    string      `json:"currentMood"`
	MoodHistory    []MoodCount `json:"moodHistory"`
	Recommendation string      `json:"recommendation"`
}

type AchievementSummary struct {
	Recent     []string       `json:"recent"`
	ByCategory map[string]int `json:"byCategory"`
}

type GoalSummary struct {
	Completed      int      `json:"completed"`
	Pending        []string `json:"pending"`
	Recommendation string   `json:"recommendation"`
}

type FeedbackSummary struct {
	Positive           []string `json:"positive"`
	AreasOfImprovement []string `json:"areasOfImprovement"`
	Recommendation     string   `json:"recommendation"`
}

// ChildSnapshot is the headline block of a report.
type ChildSnapshot struct {
	Name        string `json:"name"`
	Age         int    `json:"age"`
	Class       string `json:"class"`
	TopSkill    string `json:"topSkill"`
	WeakArea    string `json:"weakArea"`
	GrowthScore int    `json:"growthScore"`
}

// Report is the complete insight output for one student.
type Report struct {
	ChildSnapshot ChildSnapshot      `json:"childSnapshot"`
	Academic      AcademicSummary    `json:"academic"`
	Talent        TalentSummary      `json:"talent"`
	Physical      PhysicalSummary    `json:"physical"`
	Emotional     EmotionalSummary   `json:"emotional"`
	Achievements  AchievementSummary `json:"achievements"`
	Goals         GoalSummary        `json:"goals"`
	Feedback      FeedbackSummary    `json:"feedback"`
	Suggestions   []string           `json:"suggestions"`
	Forecast      string             `json:"forecast"`
	ActionPlan    rules.ActionPlan   `json:"actionPlan"`
}
