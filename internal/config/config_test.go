package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Analysis.TopN != 5 || cfg.Summarizer.Scorer != "tfidf" || cfg.Summarizer.MaxSentences != 3 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("summarizer:\n  scorer: frequency\n  order: original\nanalysis:\n  top_n: 10\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Summarizer.Scorer != "frequency" || cfg.Summarizer.Order != "original" || cfg.Analysis.TopN != 10 {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if !cfg.Summarizer.Stopwords || cfg.Summarizer.MaxSentences != 3 || !cfg.Language.Enabled {
		t.Fatalf("omitted keys lost their defaults: %+v", cfg)
	}
}

func TestLoadRejectsUnknownScorer(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("summarizer:\n  scorer: bert\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("TEXTMETRICS_LOG_LEVEL", "debug")
	t.Setenv("TEXTMETRICS_REPORT_PATH", "/tmp/out.txt")
	t.Setenv("TEXTMETRICS_COLOR", "false")
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Log.Level != "debug" || cfg.Report.Path != "/tmp/out.txt" || cfg.Report.Color {
		t.Fatalf("env not applied: %+v", cfg)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	want := DefaultConfig()
	want.Search.Related = 7
	if err := Save(path, want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got.Search.Related != 7 {
		t.Fatalf("related = %d, want 7", got.Search.Related)
	}
}

func TestLoadDefaultWritesUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd failed: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("Chdir failed: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	cfg, path, err := LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault failed: %v", err)
	}
	if cfg == nil || path != filepath.Join(home, ".config", "textmetrics", "config.yaml") {
		t.Fatalf("path = %q", path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("defaults not written: %v", err)
	}
}
