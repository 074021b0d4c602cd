package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWithoutConfigFile(t *testing.T) {
	t.Setenv("STARK_HOME", t.TempDir())

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "https://api.openai.com/v1", cfg.OpenAI.BaseURL)
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAI.Model)
	assert.Empty(t, cfg.OpenAI.APIKey)
	assert.Empty(t, cfg.Executor.Root)
	assert.False(t, cfg.Chat.AutoApprove)
	assert.Contains(t, cfg.LogPath, "assistant.log")
}

func TestLoadReadsConfigFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("STARK_HOME", home)

	contents := `[openai]
api_key = "sk-test"
model = "gpt-4o"

[executor]
root = "/tmp/stark-files"

[chat]
auto_approve = true
`
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.toml"), []byte(contents), 0o600))

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "sk-test", cfg.OpenAI.APIKey)
	assert.Equal(t, "gpt-4o", cfg.OpenAI.Model)
	assert.Equal(t, "/tmp/stark-files", cfg.Executor.Root)
	assert.True(t, cfg.Chat.AutoApprove)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("STARK_HOME", home)
	t.Setenv("STARK_OPENAI_API_KEY", "sk-env")

	contents := "[openai]\napi_key = \"sk-file\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.toml"), []byte(contents), 0o600))

	cfg, err := Load(viper.New())
	require.NoError(t, err)
	assert.Equal(t, "sk-env", cfg.OpenAI.APIKey)
}

func TestWriteDefaultCreatesStarterConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("STARK_HOME", home)

	path, err := WriteDefault()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "config.toml"), path)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(configFileMode), info.Mode().Perm())

	cfg, err := Load(viper.New())
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAI.Model)
}

func TestWriteDefaultRefusesToOverwrite(t *testing.T) {
	home := t.TempDir()
	t.Setenv("STARK_HOME", home)

	_, err := WriteDefault()
	require.NoError(t, err)

	_, err = WriteDefault()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestDirHonorsStarkHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("STARK_HOME", home)

	dir, err := Dir()
	require.NoError(t, err)
	assert.Equal(t, home, dir)
}
