package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	EnvDataDir      = "FITLIFE_DATA_DIR"
	EnvLogLevel     = "FITLIFE_LOG_LEVEL"
	EnvAnalysisDays = "FITLIFE_ANALYSIS_DAYS"
	EnvGeminiAPIKey = "GEMINI_API_KEY"
	EnvGeminiModel  = "GEMINI_MODEL"
	EnvGeminiURL    = "GEMINI_BASE_URL"

	DefaultGeminiModel   = "gemini-2.0-flash-lite"
	DefaultGeminiBaseURL = "https://generativelanguage.googleapis.com"
	DefaultAnalysisDays  = 30
)

// Config holds settings resolved from flags, the environment (optionally
// seeded from .env), settings.yaml in the data directory, and defaults, in
// that order of precedence.
type Config struct {
	DataDir      string         `yaml:"-"`
	LogLevel     string         `yaml:"log_level"`
	AnalysisDays int            `yaml:"analysis_days"`
	Gemini       GeminiSettings `yaml:"gemini"`
}

type GeminiSettings struct {
	// APIKey is only ever read from the environment.
	APIKey  string `yaml:"-"`
	Model   string `yaml:"model"`
	BaseURL string `yaml:"base_url"`
}

func DefaultConfig() Config {
	return Config{
		LogLevel:     "info",
		AnalysisDays: DefaultAnalysisDays,
		Gemini: GeminiSettings{
			Model:   DefaultGeminiModel,
			BaseURL: DefaultGeminiBaseURL,
		},
	}
}

func LoadConfig(dataDirFlag string) (Config, error) {
	// A missing .env is the normal case.
	_ = godotenv.Load()

	cfg := DefaultConfig()
	dir := strings.TrimSpace(dataDirFlag)
	if dir == "" {
		dir = strings.TrimSpace(os.Getenv(EnvDataDir))
	}
	if dir == "" {
		d, err := DefaultDataDir()
		if err != nil {
			return cfg, err
		}
		dir = d
	}
	cfg.DataDir = dir

	if err := cfg.readSettings(SettingsPath(dir)); err != nil {
		return cfg, err
	}
	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	if cfg.AnalysisDays <= 0 {
		return cfg, fmt.Errorf("analysis_days must be > 0, got %d", cfg.AnalysisDays)
	}
	return cfg, nil
}

func (c *Config) APIKeyConfigured() bool {
	return strings.TrimSpace(c.Gemini.APIKey) != ""
}

func (c *Config) readSettings(path string) error {
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read settings: %w", err)
	}
	if err := yaml.Unmarshal(b, c); err != nil {
		return fmt.Errorf("parse settings %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		c.LogLevel = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvAnalysisDays)); v != "" {
		days, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q", EnvAnalysisDays, v)
		}
		c.AnalysisDays = days
	}
	c.Gemini.APIKey = strings.TrimSpace(os.Getenv(EnvGeminiAPIKey))
	if v := strings.TrimSpace(os.Getenv(EnvGeminiModel)); v != "" {
		c.Gemini.Model = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvGeminiURL)); v != "" {
		c.Gemini.BaseURL = v
	}
	return nil
}

// WriteDefaultSettings creates settings.yaml with default values unless one
// already exists. It reports whether a file was written.
func WriteDefaultSettings(dataDir string) (bool, error) {
	path := SettingsPath(dataDir)
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}
	b, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return false, fmt.Errorf("marshal default settings: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return false, fmt.Errorf("write settings: %w", err)
	}
	return true, nil
}
