package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "https://pokeapi.co/api/v2", cfg.API.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.API.Timeout)
	assert.Equal(t, 10, cfg.Generator.HistorySize)
}

func TestLoadParsesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte("api:\n  base_url: http://localhost:9999\nui:\n  page_size: 12\n")
	require.NoError(t, os.WriteFile(path, content, 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9999", cfg.API.BaseURL)
	assert.Equal(t, 12, cfg.UI.PageSize)
	// Untouched fields keep defaults.
	assert.Equal(t, "https://api.pokemontcg.io/v2", cfg.TCG.BaseURL)
}

func TestEnvOverrideWinsOverFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tcg:\n  api_key: from-file\n"), 0644))
	t.Setenv("POKEDEX_TCG_API_KEY", "from-env")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.TCG.APIKey)
}

func TestValidateRejectsBadShinyChance(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Generator.ShinyChance = 1.5
	assert.Error(t, cfg.Validate())
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")
	cfg := DefaultConfig()
	cfg.UI.Theme = "light"
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "light", loaded.UI.Theme)
}

func TestEffectiveShinyChance(t *testing.T) {
	cfg := DefaultConfig()
	assert.InDelta(t, 1.0/4096, cfg.EffectiveShinyChance(), 1e-12)
	cfg.Generator.ShinyChance = 1.0
	assert.Equal(t, 1.0, cfg.EffectiveShinyChance())
}
