package metrics

import (
	"bytes"
	"strings"
	"testing"
)

func TestRenderIncludesInsightSeries(t *testing.T) {
	IncInsightsGenerated()
	IncInsightsUnavailable()
	ObserveInsightsDurationMs(3)
	ObserveInsightsDurationMs(-1)

	out := Render()
	for _, want := range []string{
		"# TYPE insights_generated_total counter",
		"# TYPE insights_unavailable_total counter",
		"# TYPE insights_duration_ms histogram",
		`insights_duration_ms_bucket{le="5"}`,
		`insights_duration_ms_bucket{le="+Inf"}`,
		"insights_duration_ms_count",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestHistogramRendersCumulativeBuckets(t *testing.T) {
	h := newHistogram([]float64{1, 10})
	h.Observe(0.5)
	h.Observe(5)
	h.Observe(50)

	var buf bytes.Buffer
	writeHistogram(&buf, "h", "test", h.Snapshot())
	out := buf.String()
	for _, want := range []string{
		`h_bucket{le="1"} 1`,
		`h_bucket{le="10"} 2`,
		`h_bucket{le="+Inf"} 3`,
		"h_sum 55.5",
		"h_count 3",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}
