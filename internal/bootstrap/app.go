package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"treasurebook-backend/internal/insights"
	"treasurebook-backend/internal/insights/rules"
	"treasurebook-backend/internal/records"
	"treasurebook-backend/internal/services/health"
	"treasurebook-backend/internal/shared/config"
	"treasurebook-backend/internal/shared/server"
	"treasurebook-backend/internal/shared/storage/db"
	"treasurebook-backend/internal/shared/storage/object"
	localstore "treasurebook-backend/internal/shared/storage/object/local"
	s3store "treasurebook-backend/internal/shared/storage/object/s3"
	"treasurebook-backend/internal/shared/telemetry"
)

// App holds shared dependencies and the wired router.
type App struct {
	Config          config.Config
	Router          *gin.Engine
	DB              *sql.DB
	ObjectStore     object.ObjectStore
	RecordStore     records.Store
	Rules           *rules.Engine
	InsightsService *insights.Service
	InsightsHandler *insights.Handler
	RecordsHandler  *records.Handler
	Health          *health.Service
}

// Build prepares shared dependencies and the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	telemetry.Init(nil, cfg.LogLevel)
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildObjectStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	engine, err := buildRules(ctx, cfg, store)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config:      cfg,
		DB:          sqlDB,
		ObjectStore: store,
		Rules:       engine,
	}
	if sqlDB != nil {
		app.RecordStore = &records.PGStore{DB: sqlDB}
		app.Health = health.NewService(sqlDB)
	} else {
		app.RecordStore = records.NewMemoryStore()
		app.Health = health.NewService(nil)
	}

	app.InsightsService, err = insights.NewService(app.RecordStore, engine)
	if err != nil {
		return nil, err
	}
	app.InsightsHandler = insights.NewHandler(app.InsightsService)
	app.RecordsHandler = records.NewHandler(app.RecordStore)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:          cfg,
		InsightsHandler: app.InsightsHandler,
		RecordsHandler:  app.RecordsHandler,
		Health:          app.Health,
	})
	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if cfg.DevLike() {
			telemetry.Warn("bootstrap.memory_records", map[string]any{"reason": "DATABASE_URL empty"})
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	var (
		sqlDB *sql.DB
		err   error
	)
	if db.IsLambdaRuntime() {
		sqlDB, err = db.GetSingleton(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultLambdaOptions()))
	} else {
		sqlDB, err = db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
	}
	if err != nil {
		if cfg.DevLike() {
			telemetry.Warn("bootstrap.memory_records", map[string]any{"reason": "database connect failed", "error": err.Error()})
			return nil, nil
		}
		return nil, err
	}
	return sqlDB, nil
}

func buildObjectStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

// buildRules loads the rule file named by RULES_KEY. Dev-like environments fall back to the
// embedded defaults when the file is missing or invalid; other environments fail startup.
func buildRules(ctx context.Context, cfg config.Config, store object.ObjectStore) (*rules.Engine, error) {
	rc, err := rules.Load(ctx, store, cfg.RulesKey)
	if err != nil {
		if !cfg.DevLike() {
			return nil, fmt.Errorf("load rules: %w", err)
		}
		telemetry.Warn("bootstrap.default_rules", map[string]any{"rules_key": cfg.RulesKey, "error": err.Error()})
		if rc, err = rules.Default(); err != nil {
			return nil, err
		}
	}
	telemetry.Info("bootstrap.rules_loaded", map[string]any{
		"rules_key":    cfg.RulesKey,
		"suggestions":  len(rc.Suggestions),
		"forecasts":    len(rc.Forecasts),
		"action_plans": len(rc.ActionPlans),
	})
	return rules.NewEngine(rc), nil
}
