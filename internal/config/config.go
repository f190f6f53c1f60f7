package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr                string   `yaml:"addr"`
	ReadTimeoutSecs     int      `yaml:"read_timeout_secs"`
	WriteTimeoutSecs    int      `yaml:"write_timeout_secs"`
	ShutdownTimeoutSecs int      `yaml:"shutdown_timeout_secs"`
	CORSOrigins         []string `yaml:"cors_origins"`
}

// StoreConfig selects and configures the record store.
type StoreConfig struct {
	Type string `yaml:"type"`
	Path string `yaml:"path"`
}

// ExtractorConfig configures article downloads.
type ExtractorConfig struct {
	TimeoutSecs  int    `yaml:"timeout_secs"`
	UserAgent    string `yaml:"user_agent"`
	MaxBodyBytes int64  `yaml:"max_body_bytes"`
}

// SummarizerConfig selects and configures the summarizer.
type SummarizerConfig struct {
	Type             string `yaml:"type"`
	Splitter         string `yaml:"splitter"`
	DefaultSentences int    `yaml:"default_sentences"`
	MinTextLength    int    `yaml:"min_text_length"`
	StopwordsFile    string `yaml:"stopwords_file,omitempty"`
}

// LogConfig configures logging and optional file rotation.
type LogConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file,omitempty"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Server     ServerConfig     `yaml:"server"`
	Store      StoreConfig      `yaml:"store"`
	Extractor  ExtractorConfig  `yaml:"extractor"`
	Summarizer SummarizerConfig `yaml:"summarizer"`
	Log        LogConfig        `yaml:"log"`
}

// Load reads a config from a specified path. If the file does not exist, returns defaults.
// Environment variables (and a .env file in the working directory) override file values.
func Load(path string) (*AppConfig, error) {
	_ = godotenv.Load()

	cfg := defaultConfig()
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, err
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}
	applyEnv(cfg)
	applyConfigDefaults(cfg)
	return cfg, nil
}

// LoadDefault tries ./config.yaml first, then ~/.config/articlesum/config.yaml.
// If neither exists, it writes defaults to ~/.config/articlesum/config.yaml and returns them.
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
	if err := Save(userPath, defaultConfig()); err != nil {
		return nil, "", err
	}
	cfg, err := Load(userPath)
	return cfg, userPath, err
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

// Validate rejects settings the application cannot run with.
func (c *AppConfig) Validate() error {
	switch c.Store.Type {
	case "sqlite":
		if c.Store.Path == "" {
			return errors.New("store.path is required for the sqlite store")
		}
	case "memory":
	default:
		return fmt.Errorf("unknown store type %q", c.Store.Type)
	}
	switch c.Summarizer.Type {
	case "frequency":
	default:
		return fmt.Errorf("unknown summarizer %q", c.Summarizer.Type)
	}
	switch c.Summarizer.Splitter {
	case "punkt", "regex":
	default:
		return fmt.Errorf("unknown sentence splitter %q", c.Summarizer.Splitter)
	}
	if c.Summarizer.DefaultSentences < 1 {
		return errors.New("summarizer.default_sentences must be at least 1")
	}
	if c.Summarizer.MinTextLength < 1 {
		return errors.New("summarizer.min_text_length must be at least 1")
	}
	return nil
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "articlesum", "config.yaml"), nil
}

func defaultDataPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "summarizer.db"
	}
	return filepath.Join(home, ".local", "share", "articlesum", "summarizer.db")
}

func defaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Addr:                ":8000",
			ReadTimeoutSecs:     15,
			WriteTimeoutSecs:    60,
			ShutdownTimeoutSecs: 10,
			CORSOrigins:         []string{"*"},
		},
		Store:      StoreConfig{Type: "sqlite", Path: defaultDataPath()},
		Extractor:  ExtractorConfig{TimeoutSecs: 30, UserAgent: "articlesum/1.0", MaxBodyBytes: 5 << 20},
		Summarizer: SummarizerConfig{Type: "frequency", Splitter: "punkt", DefaultSentences: 5, MinTextLength: 50},
		Log:        LogConfig{Level: "info", MaxSizeMB: 15, MaxBackups: 3, MaxAgeDays: 28},
	}
}

func applyEnv(cfg *AppConfig) {
	cfg.Server.Addr = getEnv("ARTICLESUM_ADDR", cfg.Server.Addr)
	cfg.Store.Type = getEnv("ARTICLESUM_STORE_TYPE", cfg.Store.Type)
	cfg.Store.Path = getEnv("ARTICLESUM_DB_PATH", cfg.Store.Path)
	cfg.Log.Level = getEnv("ARTICLESUM_LOG_LEVEL", cfg.Log.Level)
	cfg.Log.File = getEnv("ARTICLESUM_LOG_FILE", cfg.Log.File)
	cfg.Summarizer.MinTextLength = getEnvInt("ARTICLESUM_MIN_TEXT_LENGTH", cfg.Summarizer.MinTextLength)
	cfg.Summarizer.DefaultSentences = getEnvInt("ARTICLESUM_DEFAULT_SENTENCES", cfg.Summarizer.DefaultSentences)
}

func applyConfigDefaults(cfg *AppConfig) {
	cfg.Store.Type = strings.ToLower(cfg.Store.Type)
	if cfg.Store.Type == "" {
		cfg.Store.Type = "sqlite"
	}
	if cfg.Summarizer.Type == "" {
		cfg.Summarizer.Type = "frequency"
	}
	if cfg.Summarizer.Splitter == "" {
		cfg.Summarizer.Splitter = "punkt"
	}
	if cfg.Summarizer.DefaultSentences == 0 {
		cfg.Summarizer.DefaultSentences = 5
	}
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8000"
	}
	if cfg.Extractor.TimeoutSecs == 0 {
		cfg.Extractor.TimeoutSecs = 30
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
