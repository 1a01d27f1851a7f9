package rules

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultRules []byte

// ErrInvalidRules is returned when a rule file fails to parse or validate.
var ErrInvalidRules = errors.New("invalid rules")

// Opener reads a stored object by key. Object stores satisfy it.
type Opener interface {
	Open(ctx context.Context, key string) (io.ReadCloser, error)
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report rule-file field names instead of Go struct names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterStructValidation(conditionStructValidation, Condition{})
	v.RegisterStructValidation(actionPlanStructValidation, ActionPlanRule{})
	return v
}

func conditionStructValidation(sl validator.StructLevel) {
	c := sl.Current().Interface().(Condition)
	kind := c.Kind()
	if !knownKinds[kind] {
		sl.ReportError(c.Type, "type", "Type", "known_kind", kind)
		return
	}
	switch kind {
	case KindAcademicScore, KindGradeLevel:
		if c.Threshold == nil && c.MinCount == nil {
			sl.ReportError(c.Threshold, "threshold", "Threshold", "required", "")
		}
	case KindBalancedScores:
		if c.Deviation == nil {
			sl.ReportError(c.Deviation, "deviation", "Deviation", "required", "")
		}
	}
}

func actionPlanStructValidation(sl validator.StructLevel) {
	rule := sl.Current().Interface().(ActionPlanRule)
	if len(nonEmpty(rule.ShortTerm))+len(nonEmpty(rule.MediumTerm))+len(nonEmpty(rule.LongTerm)) == 0 {
		sl.ReportError(rule.ShortTerm, "shortTerm", "ShortTerm", "plan_required", "")
	}
}

// Default returns the rule set embedded in the binary.
func Default() (Config, error) {
	return Parse(defaultRules)
}

// Parse decodes and validates a YAML rule file. Unknown fields are rejected.
func Parse(data []byte) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: decode: %v", ErrInvalidRules, err)
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every rule and that ids are unique within each list.
func Validate(cfg Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRules, err)
	}
	ids := func(list string, get func(int) string, n int) error {
		seen := make(map[string]bool, n)
		for i := 0; i < n; i++ {
			id := strings.TrimSpace(get(i))
			if seen[id] {
				return fmt.Errorf("%w: duplicate %s id %q", ErrInvalidRules, list, id)
			}
			seen[id] = true
		}
		return nil
	}
	if err := ids("suggestion", func(i int) string { return cfg.Suggestions[i].ID }, len(cfg.Suggestions)); err != nil {
		return err
	}
	if err := ids("forecast", func(i int) string { return cfg.Forecasts[i].ID }, len(cfg.Forecasts)); err != nil {
		return err
	}
	return ids("action plan", func(i int) string { return cfg.ActionPlans[i].ID }, len(cfg.ActionPlans))
}

// Load reads a rule file from the store. An empty key yields the embedded defaults.
func Load(ctx context.Context, store Opener, key string) (Config, error) {
	if strings.TrimSpace(key) == "" || store == nil {
		return Default()
	}
	rc, err := store.Open(ctx, key)
	if err != nil {
		return Config{}, fmt.Errorf("open rules %s: %w", key, err)
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		return Config{}, fmt.Errorf("read rules %s: %w", key, err)
	}
	return Parse(data)
}

// Marshal encodes a rule config back to YAML.
func Marshal(cfg Config) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
