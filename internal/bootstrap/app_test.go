package bootstrap

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"treasurebook-backend/internal/records"
	"treasurebook-backend/internal/shared/config"
)

func devConfig(t *testing.T) config.Config {
	t.Helper()
	return config.Config{
		Env:             "dev",
		ObjectStoreType: "local",
		LocalStoreDir:   t.TempDir(),
		LogLevel:        "error",
		RateLimitRPS:    100,
		RateLimitBurst:  100,
	}
}

func TestBuildDevUsesMemoryStoreAndDefaultRules(t *testing.T) {
	app, err := Build(devConfig(t))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if _, ok := app.RecordStore.(*records.MemoryStore); !ok {
		t.Fatalf("expected memory record store, got %T", app.RecordStore)
	}
	if len(app.Rules.Config().Suggestions) == 0 {
		t.Fatalf("expected default rules")
	}

	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/v1/students/s1/insights", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestBuildLoadsRulesFromObjectStore(t *testing.T) {
	cfg := devConfig(t)
	cfg.RulesKey = "rules/insights.yaml"
	path := filepath.Join(cfg.LocalStoreDir, "rules", "insights.yaml")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	data := "suggestions:\n  - id: only\n    trigger: { type: journalCount }\n    content: \"custom\"\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write rules: %v", err)
	}

	app, err := Build(cfg)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	got := app.Rules.Config().Suggestions
	if len(got) != 1 || got[0].Content != "custom" {
		t.Fatalf("unexpected suggestions: %+v", got)
	}
}

func TestBuildProductionRequiresDatabase(t *testing.T) {
	cfg := devConfig(t)
	cfg.Env = "production"
	_, err := Build(cfg)
	if err == nil || !strings.Contains(err.Error(), "DATABASE_URL") {
		t.Fatalf("expected DATABASE_URL error, got %v", err)
	}
}
