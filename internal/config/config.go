// Package config loads runtime configuration from defaults, an optional
// config file, and EZHIL_-prefixed environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/ezhil-ai/ezhil/internal/provider"
)

// Config holds everything the assistant needs at runtime. Store file fields
// are absolute paths after Load.
type Config struct {
	DataDir          string `mapstructure:"data_dir"`
	MemoryFile       string `mapstructure:"memory_file"`
	CalendarFile     string `mapstructure:"calendar_file"`
	ConversationFile string `mapstructure:"conversation_file"`
	Model            string `mapstructure:"model"`
	MaxTokens        int64  `mapstructure:"max_tokens"`
	LogLevel         string `mapstructure:"log_level"`
}

// Load resolves configuration. Precedence: EZHIL_* env vars, then the file
// named by EZHIL_CONFIG (if set), then defaults. Relative store file names
// are resolved against the data directory.
func Load() (Config, error) {
	v := viper.New()
	v.SetDefault("data_dir", defaultDataDir())
	v.SetDefault("memory_file", "memory_store.json")
	v.SetDefault("calendar_file", "calendar_store.json")
	v.SetDefault("conversation_file", "conversation.json")
	v.SetDefault("model", string(provider.DefaultModel))
	v.SetDefault("max_tokens", 1024)
	v.SetDefault("log_level", "info")

	v.SetEnvPrefix("EZHIL")
	v.AutomaticEnv()

	if path := os.Getenv("EZHIL_CONFIG"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if cfg.MaxTokens <= 0 {
		return Config{}, fmt.Errorf("max_tokens must be positive, got %d", cfg.MaxTokens)
	}

	cfg.MemoryFile = resolve(cfg.DataDir, cfg.MemoryFile)
	cfg.CalendarFile = resolve(cfg.DataDir, cfg.CalendarFile)
	cfg.ConversationFile = resolve(cfg.DataDir, cfg.ConversationFile)
	return cfg, nil
}

func resolve(dataDir, file string) string {
	if filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(dataDir, file)
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".ezhil"
	}
	return filepath.Join(home, ".ezhil")
}
