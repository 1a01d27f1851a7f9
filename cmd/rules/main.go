package main

// Validate a rules file, optionally publishing it to the configured object store:
//   go run ./cmd/rules -file rules.yaml
//   go run ./cmd/rules -file rules.yaml -publish -key rules/insights.yaml
//   go run ./cmd/rules -defaults > rules.yaml

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"treasurebook-backend/internal/insights/rules"
	"treasurebook-backend/internal/shared/config"
	"treasurebook-backend/internal/shared/storage/object"
	localstore "treasurebook-backend/internal/shared/storage/object/local"
	s3store "treasurebook-backend/internal/shared/storage/object/s3"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("rules", flag.ContinueOnError)
	file := fs.String("file", "", "rules YAML file to validate")
	publish := fs.Bool("publish", false, "upload the validated file to the object store")
	key := fs.String("key", "", "object key to publish to (defaults to RULES_KEY)")
	defaults := fs.Bool("defaults", false, "print the embedded default rules and exit")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *defaults {
		cfg, err := rules.Default()
		if err != nil {
			return err
		}
		data, err := rules.Marshal(cfg)
		if err != nil {
			return err
		}
		_, err = out.Write(data)
		return err
	}

	if strings.TrimSpace(*file) == "" {
		return fmt.Errorf("-file is required")
	}
	data, err := os.ReadFile(*file)
	if err != nil {
		return fmt.Errorf("read %s: %w", *file, err)
	}
	cfg, err := rules.Parse(data)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "ok: %d suggestions, %d forecasts, %d action plans\n",
		len(cfg.Suggestions), len(cfg.Forecasts), len(cfg.ActionPlans))

	if !*publish {
		return nil
	}
	appCfg := config.Load()
	target := strings.TrimSpace(*key)
	if target == "" {
		target = appCfg.RulesKey
	}
	if target == "" {
		return fmt.Errorf("-key or RULES_KEY is required to publish")
	}
	store, err := openStore(ctx, appCfg)
	if err != nil {
		return err
	}
	n, err := store.Put(ctx, target, "application/yaml", bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("publish %s: %w", target, err)
	}
	fmt.Fprintf(out, "published %d bytes to %s (%s)\n", n, target, appCfg.ObjectStoreType)
	return nil
}

func openStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	if cfg.ObjectStoreType == "s3" {
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	}
	return localstore.New(cfg.LocalStoreDir), nil
}
