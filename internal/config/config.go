// Package config loads assistant settings from ~/.stark/config.toml with
// STARK_-prefixed environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	configDirName  = ".stark"
	configFileName = "config.toml"
	configFileMode = 0o600
	configDirMode  = 0o700

	defaultBaseURL = "https://api.openai.com/v1"
	defaultModel   = "gpt-4o-mini"
)

// Config is the loaded assistant configuration.
type Config struct {
	OpenAI   OpenAIConfig
	Executor ExecutorConfig
	Chat     ChatConfig
	LogPath  string
}

type OpenAIConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

type ExecutorConfig struct {
	// Root confines file operations to a directory when set. Empty
	// disables confinement.
	Root string
}

type ChatConfig struct {
	// AutoApprove skips the confirmation prompt for destructive actions.
	AutoApprove bool
}

// fileSchema mirrors the on-disk TOML layout.
type fileSchema struct {
	OpenAI   openAISchema   `toml:"openai"`
	Executor executorSchema `toml:"executor"`
	Chat     chatSchema     `toml:"chat"`
	Log      logSchema      `toml:"log"`
}

type openAISchema struct {
	APIKey  string `toml:"api_key,omitempty"`
	BaseURL string `toml:"base_url,omitempty"`
	Model   string `toml:"model,omitempty"`
}

type executorSchema struct {
	Root string `toml:"root,omitempty"`
}

type chatSchema struct {
	AutoApprove bool `toml:"auto_approve,omitempty"`
}

type logSchema struct {
	Path string `toml:"path,omitempty"`
}

// Load reads the config file, applies defaults and environment overrides.
// A missing config file is not an error; defaults apply.
func Load(cfg *viper.Viper) (Config, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	dir, err := Dir()
	if err != nil {
		return Config{}, err
	}

	cfg.SetConfigName(strings.TrimSuffix(configFileName, filepath.Ext(configFileName)))
	cfg.SetConfigType("toml")
	cfg.AddConfigPath(dir)

	cfg.SetEnvPrefix("STARK")
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	cfg.SetDefault("openai.base_url", defaultBaseURL)
	cfg.SetDefault("openai.model", defaultModel)
	cfg.SetDefault("log.path", filepath.Join(dir, "assistant.log"))

	if err := cfg.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	return Config{
		OpenAI: OpenAIConfig{
			APIKey:  cfg.GetString("openai.api_key"),
			BaseURL: cfg.GetString("openai.base_url"),
			Model:   cfg.GetString("openai.model"),
		},
		Executor: ExecutorConfig{
			Root: cfg.GetString("executor.root"),
		},
		Chat: ChatConfig{
			AutoApprove: cfg.GetBool("chat.auto_approve"),
		},
		LogPath: cfg.GetString("log.path"),
	}, nil
}

// Dir returns the assistant state directory, honoring STARK_HOME.
func Dir() (string, error) {
	if custom := os.Getenv("STARK_HOME"); custom != "" {
		return filepath.Clean(custom), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}

	return filepath.Join(homeDir, configDirName), nil
}

// WriteDefault writes a starter config file, refusing to overwrite an
// existing one. Returns the written path.
func WriteDefault() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, configFileName)
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("config file already exists at %s", path)
	} else if !errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("stat config file: %w", err)
	}

	data, err := toml.Marshal(fileSchema{
		OpenAI: openAISchema{
			BaseURL: defaultBaseURL,
			Model:   defaultModel,
		},
		Log: logSchema{
			Path: filepath.Join(dir, "assistant.log"),
		},
	})
	if err != nil {
		return "", fmt.Errorf("encode config file: %w", err)
	}

	if err := os.MkdirAll(dir, configDirMode); err != nil {
		return "", fmt.Errorf("create config directory: %w", err)
	}

	if err := os.WriteFile(path, data, configFileMode); err != nil {
		return "", fmt.Errorf("write config file: %w", err)
	}

	return path, nil
}
