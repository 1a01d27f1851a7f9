package rules

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
)

type memOpener map[string]string

func (m memOpener) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, ok := m[key]
	if !ok {
		return nil, errors.New("missing object")
	}
	return io.NopCloser(bytes.NewReader([]byte(data))), nil
}

func TestDefaultRulesValid(t *testing.T) {
	cfg, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if len(cfg.Suggestions) == 0 || len(cfg.Forecasts) == 0 || len(cfg.ActionPlans) == 0 {
		t.Fatalf("expected all three rule lists to be populated")
	}
}

// Count kinds have no metric when their domain is empty, so an upper bound on them would
// fire for a child with a few records and stay silent for a child with none.
func TestDefaultCountRulesOnlyUseLowerBounds(t *testing.T) {
	cfg, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	countKinds := map[string]bool{
		KindActivityEngagement:   true,
		KindSportEngagement:      true,
		KindProjectParticipation: true,
		KindJournalCount:         true,
		KindMoodPattern:          true,
		KindGoalExists:           true,
		KindFeedback:             true,
	}
	check := func(id string, c Condition) {
		if !countKinds[c.Kind()] {
			return
		}
		if op, _ := c.comparison(); op != OpGT && op != OpGTE {
			t.Fatalf("rule %s compares %s with %q; count rules must use a lower bound", id, c.Kind(), op)
		}
	}
	for _, r := range cfg.Suggestions {
		check(r.ID, r.Trigger)
	}
	for _, r := range cfg.Forecasts {
		for _, c := range r.Trigger {
			check(r.ID, c)
		}
	}
	for _, r := range cfg.ActionPlans {
		check(r.ID, r.Trigger)
	}
}

func TestParseAcceptsBothDiscriminators(t *testing.T) {
	data := `
suggestions:
  - id: s1
    trigger: { condition: journalCount, minCount: 2 }
    content: "write more"
forecasts:
  - id: f1
    trigger: { type: academicScore, operator: gte, threshold: 80 }
    content: "bright"
actionPlans:
  - id: a1
    trigger: { type: goalExists }
    longTerm: ["keep going"]
`
	cfg, err := Parse([]byte(data))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := cfg.Suggestions[0].Trigger.Kind(); got != KindJournalCount {
		t.Fatalf("expected kind %q, got %q", KindJournalCount, got)
	}
	if len(cfg.Forecasts[0].Trigger) != 1 {
		t.Fatalf("expected single forecast condition to decode as a list of one, got %d", len(cfg.Forecasts[0].Trigger))
	}
}

func TestParseRejectsInvalidRules(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"unknown kind", `
suggestions:
  - id: s1
    trigger: { type: weather }
    content: "x"
`},
		{"bad operator", `
suggestions:
  - id: s1
    trigger: { type: journalCount, operator: between, threshold: 2 }
    content: "x"
`},
		{"missing content", `
suggestions:
  - id: s1
    trigger: { type: journalCount }
`},
		{"duplicate ids", `
suggestions:
  - id: s1
    trigger: { type: journalCount }
    content: "x"
  - id: s1
    trigger: { type: goalExists }
    content: "y"
`},
		{"empty forecast trigger", `
forecasts:
  - id: f1
    trigger: []
    content: "x"
`},
		{"empty plan", `
actionPlans:
  - id: a1
    trigger: { type: goalExists }
`},
		{"score without threshold", `
suggestions:
  - id: s1
    trigger: { type: academicScore, operator: lt }
    content: "x"
`},
		{"unknown field", `
suggestions:
  - id: s1
    trigger: { type: journalCount, colour: blue }
    content: "x"
`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.data))
			if !errors.Is(err, ErrInvalidRules) {
				t.Fatalf("expected ErrInvalidRules, got %v", err)
			}
		})
	}
}

func TestLoadFromStore(t *testing.T) {
	store := memOpener{"rules/insights.yaml": `
suggestions:
  - id: only
    trigger: { type: journalCount }
    content: "from store"
`}
	cfg, err := Load(context.Background(), store, "rules/insights.yaml")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cfg.Suggestions) != 1 || cfg.Suggestions[0].Content != "from store" {
		t.Fatalf("unexpected suggestions: %+v", cfg.Suggestions)
	}

	if _, err := Load(context.Background(), store, "rules/missing.yaml"); err == nil {
		t.Fatalf("expected error for missing rules object")
	}

	def, err := Load(context.Background(), store, "")
	if err != nil {
		t.Fatalf("Load default: %v", err)
	}
	if len(def.Suggestions) < 2 {
		t.Fatalf("expected embedded defaults for empty key")
	}
}

func TestMarshalRoundTripsThroughParse(t *testing.T) {
	cfg, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !strings.Contains(string(data), "actionPlans:") {
		t.Fatalf("expected actionPlans key in output")
	}
	if _, err := Parse(data); err != nil {
		t.Fatalf("Parse marshalled rules: %v", err)
	}
}
