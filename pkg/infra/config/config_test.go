// 指示: miu200521358
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/miu200521358/mu_poser2rig/pkg/infra/history"
	"github.com/spf13/pflag"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd failed: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("chdir failed: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	cfg, err := Load("", nil, nil)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.History.Path != history.DefaultPath || !cfg.History.Enabled {
		t.Fatalf("unexpected history defaults: %+v", cfg.History)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "text" {
		t.Fatalf("unexpected log defaults: %+v", cfg.Log)
	}
	if cfg.Output.Compress {
		t.Fatalf("compress should default to false")
	}
}

func TestLoadFileEnvAndFlags(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")
	body := "input: figure.yaml\nwidgets: widgets.yaml\noutput:\n  path: out/figure_rig.yaml\n  compress: true\nlog:\n  level: debug\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	t.Setenv("MU_POSER2RIG_LOG_FORMAT", "json")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("in", "", "")
	flags.String("out", "", "")
	if err := flags.Parse([]string{"--out", "cli_rig.yaml"}); err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	cfg, err := Load(path, flags, map[string]string{KeyInput: "in", KeyOutputPath: "out"})
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Input != "figure.yaml" {
		t.Fatalf("unset flag must not override file: %s", cfg.Input)
	}
	if cfg.Output.Path != "cli_rig.yaml" {
		t.Fatalf("flag must override file: %s", cfg.Output.Path)
	}
	if !cfg.Output.Compress || cfg.Widgets != "widgets.yaml" || cfg.Log.Level != "debug" {
		t.Fatalf("file values not loaded: %+v", cfg)
	}
	if cfg.Log.Format != "json" {
		t.Fatalf("env value not loaded: %s", cfg.Log.Format)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), nil, nil); err == nil {
		t.Fatalf("expected error for missing explicit file")
	}
}
