package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")

	assert.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFileThenEnv(t *testing.T) {
	// arrange
	path := filepath.Join(t.TempDir(), "phonebook.yaml")
	require.NoError(t, os.WriteFile(path, []byte("storage: trie\ncodec: json\nlog_level: debug\n"), 0o600))
	t.Setenv("PHONEBOOK_CODEC", "bson")

	// act
	cfg, err := Load(path)

	// assert
	require.NoError(t, err)
	assert.Equal(t, "trie", cfg.Storage)
	assert.Equal(t, "bson", cfg.Codec)
	assert.Equal(t, "-", cfg.Scenario)
	lvl, err := cfg.Level()
	assert.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))

	assert.Error(t, err)
}

func TestBadLevel(t *testing.T) {
	cfg := Default()
	cfg.LogLevel = "loud"

	_, err := cfg.Level()

	assert.Error(t, err)
}
