package rules

import (
	"fmt"
	"strings"
)

const (
	DefaultForecast           = "Keep tracking progress regularly to unlock a more detailed growth forecast."
	DefaultSuggestion         = "Keep adding records so we can offer more tailored suggestions."
	weakSubjectSuggestionTmpl = "Spend a little extra time on %s each week to build confidence."
	DefaultShortTerm          = "Review this week's schoolwork together for 15 minutes each day."
	DefaultMediumTerm         = "Set one achievable goal for the coming month and track it together."
	DefaultLongTerm           = "Build a balanced routine across academics, activities, and rest."
)

// Engine evaluates a fixed rule set against derived metrics.
type Engine struct {
	cfg Config
}

// NewEngine wraps an already validated rule config.
func NewEngine(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

// Config returns the rule set the engine was built with.
func (e *Engine) Config() Config {
	return e.cfg
}

// Evaluate runs all three evaluators.
func (e *Engine) Evaluate(m Metrics) Result {
	return Result{
		Suggestions: Suggestions(e.cfg.Suggestions, m),
		Forecast:    Forecast(e.cfg.Forecasts, m),
		ActionPlan:  Plan(e.cfg.ActionPlans, m),
	}
}

// Suggestions returns the content of every matching rule in rule order, without duplicates.
// When nothing matches a single fallback is returned, pointing at the weak subject if known.
func Suggestions(rules []SuggestionRule, m Metrics) []string {
	var out []string
	for _, rule := range rules {
		if rule.Trigger.Matches(m) {
			out = appendUnique(out, rule.Content)
		}
	}
	if len(out) > 0 {
		return out
	}
	if weak := strings.TrimSpace(m.WeakSubject); weak != "" {
		return []string{fmt.Sprintf(weakSubjectSuggestionTmpl, weak)}
	}
	return []string{DefaultSuggestion}
}

// Forecast returns the content of the first rule whose conditions all match.
func Forecast(rules []ForecastRule, m Metrics) string {
	for _, rule := range rules {
		if allMatch(rule.Trigger, m) {
			return rule.Content
		}
	}
	return DefaultForecast
}

// Plan merges the lists of every matching rule. Each tier is deduplicated in insertion
// order and falls back to a default entry when empty.
func Plan(rules []ActionPlanRule, m Metrics) ActionPlan {
	var plan ActionPlan
	for _, rule := range rules {
		if !rule.Trigger.Matches(m) {
			continue
		}
		plan.ShortTerm = appendUnique(plan.ShortTerm, rule.ShortTerm...)
		plan.MediumTerm = appendUnique(plan.MediumTerm, rule.MediumTerm...)
		plan.LongTerm = appendUnique(plan.LongTerm, rule.LongTerm...)
	}
	if len(plan.ShortTerm) == 0 {
		plan.ShortTerm = []string{DefaultShortTerm}
	}
	if len(plan.MediumTerm) == 0 {
		plan.MediumTerm = []string{DefaultMediumTerm}
	}
	if len(plan.LongTerm) == 0 {
		plan.LongTerm = []string{DefaultLongTerm}
	}
	return plan
}

// allMatch is false for an empty trigger list so a misconfigured rule never fires.
func allMatch(conds Conditions, m Metrics) bool {
	if len(conds) == 0 {
		return false
	}
	for _, c := range conds {
		if !c.Matches(m) {
			return false
		}
	}
	return true
}

func appendUnique(dst []string, items ...string) []string {
	for _, item := range items {
		if strings.TrimSpace(item) == "" {
			continue
		}
		dup := false
		for _, existing := range dst {
			if existing == item {
				dup = true
				break
			}
		}
		if !dup {
			dst = append(dst, item)
		}
	}
	return dst
}
