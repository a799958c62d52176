// Package config loads agent settings from an optional YAML file
// layered under environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Defaults applied when neither the config file nor the environment
// sets a value.
const (
	DefaultModel               = "gpt-4"
	DefaultSummarizerModel     = "gpt-3.5-turbo"
	DefaultFallbackModel       = "gpt-3.5-turbo"
	DefaultMaxContextSize      = 4000
	DefaultMaxMemoryItemSize   = 1024
	DefaultSummarizerChunkSize = 4000
)

// Config holds all agent settings.
type Config struct {
	APIKey              string `yaml:"api_key"`
	APIBase             string `yaml:"api_base"`
	Model               string `yaml:"model"`
	SummarizerModel     string `yaml:"summarizer_model"`
	FallbackModel       string `yaml:"fallback_model"`
	MaxContextSize      int    `yaml:"max_context_size"`
	MaxMemoryItemSize   int    `yaml:"max_memory_item_size"`
	SummarizerChunkSize int    `yaml:"summarizer_chunk_size"`
	WorkDir             string `yaml:"work_dir"`
	ToolRateLimit       int    `yaml:"tool_rate_limit"` // max tool calls per hour, 0 = off
	Debug               bool   `yaml:"debug"`
	EnableCritic        bool   `yaml:"enable_critic"` // reserved
	PromptUser          bool   `yaml:"prompt_user"`
}

// Load builds a Config from defaults, then ~/.miniagent/config.yaml if
// present, then environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Model:               DefaultModel,
		SummarizerModel:     DefaultSummarizerModel,
		FallbackModel:       DefaultFallbackModel,
		MaxContextSize:      DefaultMaxContextSize,
		MaxMemoryItemSize:   DefaultMaxMemoryItemSize,
		SummarizerChunkSize: DefaultSummarizerChunkSize,
	}

	if path, err := configPath(); err == nil {
		if data, err := os.ReadFile(path); err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse %s: %w", path, err)
			}
		}
	}

	applyEnv(cfg)
	return cfg, nil
}

func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".miniagent", "config.yaml"), nil
}

func applyEnv(cfg *Config) {
	setString(&cfg.APIKey, "OPENAI_API_KEY")
	setString(&cfg.APIBase, "OPENAI_API_BASE")
	setString(&cfg.Model, "MODEL")
	setString(&cfg.SummarizerModel, "SUMMARIZER_MODEL")
	setString(&cfg.FallbackModel, "FALLBACK_MODEL")
	setString(&cfg.WorkDir, "WORK_DIR")
	setInt(&cfg.MaxContextSize, "MAX_CONTEXT_SIZE")
	setInt(&cfg.MaxMemoryItemSize, "MAX_MEMORY_ITEM_SIZE")
	setInt(&cfg.SummarizerChunkSize, "SUMMARIZER_CHUNK_SIZE")
	setInt(&cfg.ToolRateLimit, "TOOL_RATE_LIMIT")
	setBool(&cfg.Debug, "DEBUG")
	setBool(&cfg.EnableCritic, "ENABLE_CRITIC")
	setBool(&cfg.PromptUser, "PROMPT_USER")
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func setBool(dst *bool, key string) {
	if v, ok := os.LookupEnv(key); ok {
		*dst = ParseBool(v)
	}
}

// ParseBool accepts the usual truthy spellings.
func ParseBool(v string) bool {
	switch v {
	case "true", "1", "t", "y", "yes":
		return true
	}
	return false
}

// ResolveWorkDir returns the directory all relative file and shell
// operations resolve against. An unset work dir defaults to
// ~/miniagent, created if absent. A configured but missing directory
// is an error so the operator can fix the setting.
func (c *Config) ResolveWorkDir() (string, error) {
	if c.WorkDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, "miniagent")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("create work dir: %w", err)
		}
		return dir, nil
	}
	info, err := os.Stat(c.WorkDir)
	if err != nil || !info.IsDir() {
		return "", fmt.Errorf("work dir %s does not exist", c.WorkDir)
	}
	return c.WorkDir, nil
}
