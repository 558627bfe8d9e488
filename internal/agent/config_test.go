package agent

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 1, cfg.DecayAmount)
	assert.Equal(t, 3, cfg.DreamCount)
	assert.False(t, cfg.TransitionOnTick)
	assert.Equal(t, DefaultTriggers(), cfg.Triggers)
	assert.NotEmpty(t, cfg.Templates["CALM"])
}

func TestLoadConfig_PartialOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chaos.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"decay_amount: 2\ntransition_on_tick: true\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.DecayAmount)
	assert.True(t, cfg.TransitionOnTick)
	assert.Equal(t, 3, cfg.DreamCount, "absent fields keep defaults")
	assert.Equal(t, DefaultTriggers(), cfg.Triggers)
}

func TestLoadConfig_TriggersReplaceTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chaos.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
triggers:
  - keyword: ember
    emotion: JOY
    intensity: 4
templates:
  JOY:
    - "spark {a}"
`), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Len(t, cfg.Triggers, 1)
	assert.Equal(t, Trigger{Keyword: "ember", Emotion: "JOY", Intensity: 4}, cfg.Triggers[0])
	assert.Equal(t, []string{"spark {a}"}, cfg.Templates["JOY"], "named pool is replaced")
	assert.NotEmpty(t, cfg.Templates["CALM"], "unnamed pools survive")
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadConfig_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chaos.yaml")
	require.NoError(t, os.WriteFile(path, []byte("decay_amount: [oops"), 0o644))
	_, err := LoadConfig(path)
	assert.Error(t, err)
}
