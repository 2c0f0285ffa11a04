package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/AnatoleLucet/railway-timeline/internal/config"
	"github.com/AnatoleLucet/railway-timeline/internal/dataset"
	"github.com/AnatoleLucet/railway-timeline/internal/railway"
)

func TestRunHelpPrintsUsage(t *testing.T) {
	var out bytes.Buffer
	if err := run([]string{"--help"}, &out); err != nil {
		t.Fatalf("run --help: %v", err)
	}
	for _, want := range []string{"Usage:", "--file", "--api-key", "--log-file"} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("expected help to mention %q, got:\n%s", want, out.String())
		}
	}
}

func TestRunRejectsPositionalArguments(t *testing.T) {
	err := run([]string{"extra"}, &bytes.Buffer{})
	if err == nil || !strings.Contains(err.Error(), "unexpected argument: extra") {
		t.Fatalf("expected unexpected argument error, got %v", err)
	}
}

func TestRunRejectsUnknownFlag(t *testing.T) {
	if err := run([]string{"--bogus"}, &bytes.Buffer{}); err == nil {
		t.Fatal("expected error for unknown flag")
	}
}

func TestApplyOptionsOverridesConfig(t *testing.T) {
	flagSet, opts := newFlagSet()
	dataPath := filepath.Join(t.TempDir(), "deployments.yaml")
	err := flagSet.Parse([]string{
		"--file", dataPath,
		"--project", "proj-2",
		"--environment", "env-2",
		"--pixels-per-day", "250",
	})
	if err != nil {
		t.Fatalf("parse flags: %v", err)
	}

	base := config.Default()
	base.ProjectID = "proj-1"
	base.ZoomSensitivity = 40

	cfg, err := applyOptions(base, opts)
	if err != nil {
		t.Fatalf("apply options: %v", err)
	}
	if cfg.DataFile != dataPath {
		t.Fatalf("expected data file %q, got %q", dataPath, cfg.DataFile)
	}
	if cfg.ProjectID != "proj-2" || cfg.EnvironmentID != "env-2" {
		t.Fatalf("expected flag IDs, got %q/%q", cfg.ProjectID, cfg.EnvironmentID)
	}
	if cfg.PixelsPerDay != 250 {
		t.Fatalf("expected pixels per day 250, got %v", cfg.PixelsPerDay)
	}
	if cfg.ZoomSensitivity != 40 {
		t.Fatalf("expected unset flag to keep zoom sensitivity 40, got %v", cfg.ZoomSensitivity)
	}
}

func TestApplyOptionsRejectsNegativeDensity(t *testing.T) {
	flagSet, opts := newFlagSet()
	if err := flagSet.Parse([]string{"--pixels-per-day=-5"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	if _, err := applyOptions(config.Default(), opts); err == nil {
		t.Fatal("expected negative pixels per day to be rejected")
	}
}

func TestNewSource(t *testing.T) {
	t.Run("dataset file wins", func(t *testing.T) {
		cfg := config.Config{DataFile: "/tmp/deployments.yaml", APIKey: "token"}
		source, watch, err := newSource(cfg)
		if err != nil {
			t.Fatalf("new source: %v", err)
		}
		if _, ok := source.(*dataset.File); !ok {
			t.Fatalf("expected dataset source, got %T", source)
		}
		if watch != cfg.DataFile {
			t.Fatalf("expected watch path %q, got %q", cfg.DataFile, watch)
		}
	})

	t.Run("railway api", func(t *testing.T) {
		source, watch, err := newSource(config.Config{APIKey: "token", ProjectID: "proj-1"})
		if err != nil {
			t.Fatalf("new source: %v", err)
		}
		rs, ok := source.(*railway.Source)
		if !ok {
			t.Fatalf("expected railway source, got %T", source)
		}
		if rs.ProjectID != "proj-1" {
			t.Fatalf("expected project proj-1, got %q", rs.ProjectID)
		}
		if watch != "" {
			t.Fatalf("expected no watch path, got %q", watch)
		}
	})

	t.Run("nothing configured", func(t *testing.T) {
		if _, _, err := newSource(config.Config{}); !errors.Is(err, errNoSource) {
			t.Fatalf("expected errNoSource, got %v", err)
		}
	})
}

func TestLoadDotEnv(t *testing.T) {
	if err := loadDotEnv(filepath.Join(t.TempDir(), ".env")); err != nil {
		t.Fatalf("expected a missing .env file to be ignored, got %v", err)
	}

	const key = "RAILWAY_TIMELINE_DOTENV_TEST"
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte(key+"=from-file\n"), 0o644); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	t.Cleanup(func() { os.Unsetenv(key) })
	if err := loadDotEnv(path); err != nil {
		t.Fatalf("load .env: %v", err)
	}
	if got := os.Getenv(key); got != "from-file" {
		t.Fatalf("expected variable from .env, got %q", got)
	}
}
