package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// AnalysisConfig configures the statistics tables.
type AnalysisConfig struct {
	TopN int `yaml:"top_n"`
}

// SummarizerConfig selects and configures the summarizer.
type SummarizerConfig struct {
	Scorer       string `yaml:"scorer"`
	MaxSentences int    `yaml:"max_sentences"`
	Order        string `yaml:"order"`
	Stopwords    bool   `yaml:"stopwords"`
}

// LanguageConfig configures language detection.
type LanguageConfig struct {
	Enabled       bool    `yaml:"enabled"`
	MinConfidence float64 `yaml:"min_confidence"`
}

// SearchConfig configures the related-sentence lookup of a search.
type SearchConfig struct {
	Related int `yaml:"related"`
}

// ReportConfig configures where reports are saved and how they are printed.
type ReportConfig struct {
	Path  string `yaml:"path"`
	Color bool   `yaml:"color"`
}

// LogConfig configures the logger. An empty File logs to stderr outside the TUI.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Analysis   AnalysisConfig   `yaml:"analysis"`
	Summarizer SummarizerConfig `yaml:"summarizer"`
	Language   LanguageConfig   `yaml:"language"`
	Search     SearchConfig     `yaml:"search"`
	Report     ReportConfig     `yaml:"report"`
	Log        LogConfig        `yaml:"log"`
}

// Load reads a config from a specified path. If the file does not exist, returns defaults.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := DefaultConfig()
			applyEnv(cfg)
			return cfg, nil
		}
		return nil, err
	}
	// Unmarshal over the defaults so omitted keys keep their default values.
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	applyConfigDefaults(cfg)
	applyEnv(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDefault tries ./config.yaml first, then ~/.config/textmetrics/config.yaml.
// If neither exists, it writes defaults to ~/.config/textmetrics/config.yaml and returns them.
func LoadDefault() (*AppConfig, string, error) {
	cwdPath := "config.yaml"
	if _, err := os.Stat(cwdPath); err == nil {
		cfg, err := Load(cwdPath)
		return cfg, cwdPath, err
	}
	userPath, err := defaultUserConfigPath()
	if err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(userPath); err == nil {
		cfg, err := Load(userPath)
		return cfg, userPath, err
	}
	cfg := DefaultConfig()
	if err := Save(userPath, cfg); err != nil {
		return nil, "", err
	}
	applyEnv(cfg)
	return cfg, userPath, nil
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Validate rejects settings no component understands.
func (c *AppConfig) Validate() error {
	switch c.Summarizer.Scorer {
	case "tfidf", "frequency":
	default:
		return fmt.Errorf("unknown summarizer scorer: %q", c.Summarizer.Scorer)
	}
	switch c.Summarizer.Order {
	case "rank", "original":
	default:
		return fmt.Errorf("unknown summary order: %q", c.Summarizer.Order)
	}
	if c.Language.MinConfidence < 0 || c.Language.MinConfidence > 1 {
		return fmt.Errorf("language.min_confidence must be within [0, 1], got %v", c.Language.MinConfidence)
	}
	return nil
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "textmetrics", "config.yaml"), nil
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Analysis:   AnalysisConfig{TopN: 5},
		Summarizer: SummarizerConfig{Scorer: "tfidf", MaxSentences: 3, Order: "rank", Stopwords: true},
		Language:   LanguageConfig{Enabled: true},
		Search:     SearchConfig{Related: 3},
		Report:     ReportConfig{Path: "textmetrics-report.txt", Color: true},
		Log:        LogConfig{Level: "info"},
	}
}

func applyConfigDefaults(cfg *AppConfig) {
	if cfg.Analysis.TopN <= 0 {
		cfg.Analysis.TopN = 5
	}
	if cfg.Summarizer.Scorer == "" {
		cfg.Summarizer.Scorer = "tfidf"
	}
	if cfg.Summarizer.MaxSentences <= 0 {
		cfg.Summarizer.MaxSentences = 3
	}
	if cfg.Summarizer.Order == "" {
		cfg.Summarizer.Order = "rank"
	}
	if cfg.Search.Related < 0 {
		cfg.Search.Related = 0
	}
	if cfg.Report.Path == "" {
		cfg.Report.Path = "textmetrics-report.txt"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
}

// applyEnv lets TEXTMETRICS_* variables (including those from .env) override the file.
func applyEnv(cfg *AppConfig) {
	cfg.Log.Level = getEnv("TEXTMETRICS_LOG_LEVEL", cfg.Log.Level)
	cfg.Log.File = getEnv("TEXTMETRICS_LOG_FILE", cfg.Log.File)
	cfg.Report.Path = getEnv("TEXTMETRICS_REPORT_PATH", cfg.Report.Path)
	cfg.Report.Color = getEnvBool("TEXTMETRICS_COLOR", cfg.Report.Color)
	cfg.Language.Enabled = getEnvBool("TEXTMETRICS_LANGUAGE", cfg.Language.Enabled)
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
