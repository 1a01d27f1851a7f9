package rules

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// Condition kinds understood by the evaluators.
const (
	KindAcademicScore        = "academicScore"
	KindAcademicStrength     = "academicStrength"
	KindBalancedScores       = "balancedScores"
	KindActivityEngagement   = "activityEngagement"
	KindSportEngagement      = "sportEngagement"
	KindProjectParticipation = "projectParticipation"
	KindJournalCount         = "journalCount"
	KindMoodPattern          = "moodPattern"
	KindGoalExists           = "goalExists"
	KindGradeLevel           = "gradeLevel"
	KindFeedback             = "feedback"
)

// Comparison operators.
const (
	OpLT  = "lt"
	OpLTE = "lte"
	OpGT  = "gt"
	OpGTE = "gte"
	OpEQ  = "eq"
)

var knownKinds = map[string]bool{
	KindAcademicScore:        true,
	KindAcademicStrength:     true,
	KindBalancedScores:       true,
	KindActivityEngagement:   true,
	KindSportEngagement:      true,
	KindProjectParticipation: true,
	KindJournalCount:         true,
	KindMoodPattern:          true,
	KindGoalExists:           true,
	KindGradeLevel:           true,
	KindFeedback:             true,
}

// Condition is a declarative predicate over derived metrics. The discriminator may be
// spelled either `type` or `condition` in rule files.
type Condition struct {
	Type       string   `yaml:"type,omitempty" json:"type,omitempty"`
	Condition  string   `yaml:"condition,omitempty" json:"condition,omitempty"`
	Subject    string   `yaml:"subject,omitempty" json:"subject,omitempty"`
	Subjects   []string `yaml:"subjects,omitempty" json:"subjects,omitempty"`
	Activity   string   `yaml:"activity,omitempty" json:"activity,omitempty"`
	Activities []string `yaml:"activities,omitempty" json:"activities,omitempty"`
	Keyword    string   `yaml:"keyword,omitempty" json:"keyword,omitempty"`
	Threshold  *float64 `yaml:"threshold,omitempty" json:"threshold,omitempty"`
	MinCount   *float64 `yaml:"minCount,omitempty" json:"minCount,omitempty"`
	Deviation  *float64 `yaml:"deviation,omitempty" json:"deviation,omitempty" validate:"omitempty,gte=0"`
	Operator   string   `yaml:"operator,omitempty" json:"operator,omitempty" validate:"omitempty,oneof=lt lte gt gte eq"`
}

// Kind returns the condition discriminator.
func (c Condition) Kind() string {
	if kind := strings.TrimSpace(c.Type); kind != "" {
		return kind
	}
	return strings.TrimSpace(c.Condition)
}

func (c Condition) subjectNames() []string {
	return nonEmpty(append([]string{c.Subject}, c.Subjects...))
}

func (c Condition) activityNames() []string {
	return nonEmpty(append([]string{c.Activity}, c.Activities...))
}

// Conditions decodes from either a single mapping or a sequence of mappings.
type Conditions []Condition

// UnmarshalYAML implements yaml.Unmarshaler.
func (cs *Conditions) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.MappingNode {
		var single Condition
		if err := value.Decode(&single); err != nil {
			return err
		}
		*cs = Conditions{single}
		return nil
	}
	var many []Condition
	if err := value.Decode(&many); err != nil {
		return err
	}
	*cs = many
	return nil
}

// SuggestionRule emits Content when its single trigger matches.
type SuggestionRule struct {
	ID      string    `yaml:"id" json:"id" validate:"required"`
	Trigger Condition `yaml:"trigger" json:"trigger"`
	Content string    `yaml:"content" json:"content" validate:"required"`
}

// ForecastRule fires only when every trigger condition matches.
type ForecastRule struct {
	ID      string     `yaml:"id" json:"id" validate:"required"`
	Trigger Conditions `yaml:"trigger" json:"trigger" validate:"min=1,dive"`
	Content string     `yaml:"content" json:"content" validate:"required"`
}

// ActionPlanRule contributes its plan lists when its trigger matches.
type ActionPlanRule struct {
	ID         string    `yaml:"id" json:"id" validate:"required"`
	Trigger    Condition `yaml:"trigger" json:"trigger"`
	ShortTerm  []string  `yaml:"shortTerm,omitempty" json:"shortTerm,omitempty"`
	MediumTerm []string  `yaml:"mediumTerm,omitempty" json:"mediumTerm,omitempty"`
	LongTerm   []string  `yaml:"longTerm,omitempty" json:"longTerm,omitempty"`
}

// Config is the full rule set. It is loaded once and never mutated.
type Config struct {
	Suggestions []SuggestionRule `yaml:"suggestions" json:"suggestions" validate:"dive"`
	Forecasts   []ForecastRule   `yaml:"forecasts" json:"forecasts" validate:"dive"`
	ActionPlans []ActionPlanRule `yaml:"actionPlans" json:"actionPlans" validate:"dive"`
}

// SubjectScore is a subject with its normalized 0-100 average.
type SubjectScore struct {
	Subject string
	Score   float64
}

// Metrics is the flat view of a student's derived data that conditions are evaluated against.
type Metrics struct {
	// SubjectScores is sorted by descending score.
	SubjectScores  []SubjectScore
	AverageScore   float64
	StrongSubject  string
	WeakSubject    string
	Activities     []string
	Sports         []string
	Projects       []string
	JournalCount   int
	CurrentMood    string
	Moods          []string
	Goals          []string
	PendingGoals   int
	CompletedGoals int
	Feedback       []string
	GradeLevel     float64
	HasGradeLevel  bool
}

// ActionPlan is the tiered plan assembled from matching action-plan rules.
type ActionPlan struct {
	ShortTerm  []string `json:"shortTerm"`
	MediumTerm []string `json:"mediumTerm"`
	LongTerm   []string `json:"longTerm"`
}

// Result is the combined output of the three evaluators.
type Result struct {
	Suggestions []string
	Forecast    string
	ActionPlan  ActionPlan
}

func nonEmpty(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
