package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 5, cfg.Engine.MaxCandidates)
	assert.True(t, cfg.Engine.Sentence)
	assert.Equal(t, "data/dictionary.txt", cfg.Dict.Path)
	assert.False(t, cfg.Dict.Watch)
	assert.Equal(t, 500, cfg.Dict.WatchDebounceMs)
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[engine]
max_candidates = 3
sentence = false

[dict]
path = "/tmp/dict.txt"
watch = true
watch_debounce_ms = 250

[cli]
show_timing = true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Engine.MaxCandidates)
	assert.False(t, cfg.Engine.Sentence)
	assert.Equal(t, "/tmp/dict.txt", cfg.Dict.Path)
	assert.True(t, cfg.Dict.Watch)
	assert.Equal(t, 250, cfg.Dict.WatchDebounceMs)
	assert.True(t, cfg.CLI.ShowTiming)
	// unset keys keep their defaults
	assert.False(t, cfg.CLI.ShowBoundaries)
}

func TestLoadConfigPartialRecovery(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	// max_candidates has the wrong type; the rest of the section is fine
	content := `
[engine]
max_candidates = "five"
sentence = false
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Engine.MaxCandidates, "bad key falls back to default")
	assert.False(t, cfg.Engine.Sentence, "good keys in the same section survive")
}

func TestInitConfigCreatesDefaultFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sitelen", "config.toml")

	cfg, err := InitConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.FileExists(t, path)

	// second call loads the file it created
	again, err := InitConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}

func TestSaveConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := DefaultConfig()
	cfg.Engine.MaxCandidates = 7
	cfg.Dict.Watch = true
	require.NoError(t, SaveConfig(cfg, path))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
