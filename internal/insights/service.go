package insights

import (
	"context"
	"fmt"
	"time"

	"treasurebook-backend/internal/insights/rules"
	"treasurebook-backend/internal/records"
	"treasurebook-backend/internal/shared/metrics"
	"treasurebook-backend/internal/shared/telemetry"
)

// Service produces insight reports from a student's stored records.
type Service struct {
	Store records.Store
	Rules *rules.Engine

	// compose defaults to Compose.
	compose func(records.Set, *rules.Engine) Report
}

// NewService constructs a Service. A nil engine falls back to the embedded default rules.
func NewService(store records.Store, engine *rules.Engine) (*Service, error) {
	if engine == nil {
		cfg, err := rules.Default()
		if err != nil {
			return nil, err
		}
		engine = rules.NewEngine(cfg)
	}
	return &Service{Store: store, Rules: engine}, nil
}

// Generate fetches all seven collections and composes a report. Any fetch failure yields
// (nil, err) with err wrapping ErrUnavailable; a partial report is never returned.
func (s *Service) Generate(ctx context.Context, studentID string) (*Report, error) {
	start := time.Now()
	set, err := records.FetchAll(ctx, s.Store, studentID)
	if err != nil {
		return nil, s.unavailable(studentID, err)
	}

	report, err := s.composeReport(set)
	if err != nil {
		return nil, s.unavailable(studentID, err)
	}

	elapsed := float64(time.Since(start).Microseconds()) / 1000.0
	metrics.IncInsightsGenerated()
	metrics.ObserveInsightsDurationMs(elapsed)
	telemetry.Info("insights.generated", map[string]any{
		"student_id":  studentID,
		"duration_ms": elapsed,
		"suggestions": len(report.Suggestions),
		"growth":      report.ChildSnapshot.GrowthScore,
	})
	return &report, nil
}

// composeReport converts a panic during composition into an error.
func (s *Service) composeReport(set records.Set) (report Report, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("compose: %v", rec)
		}
	}()
	compose := s.compose
	if compose == nil {
		compose = Compose
	}
	return compose(set, s.Rules), nil
}

func (s *Service) unavailable(studentID string, err error) error {
	metrics.IncInsightsUnavailable()
	telemetry.Warn("insights.unavailable", map[string]any{
		"student_id": studentID,
		"error":      err.Error(),
	})
	return fmt.Errorf("%w: %w", ErrUnavailable, err)
}
