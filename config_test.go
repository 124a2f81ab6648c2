package slogtune_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/apperia-de/slogtune"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testConfigFile = "test/data/slogtune.test_config.yml"

func TestLoadConfig(t *testing.T) {
	cfg, err := slogtune.LoadConfig(testConfigFile)
	require.NoError(t, err)
	assert.Equal(t, "ERROR", cfg.LogLevel)
	require.Len(t, cfg.Overrides, 2)
	assert.Equal(t, "DEBUG", cfg.Overrides[0].Level)
	assert.Equal(t, []string{"pkg.[app,web]"}, cfg.Overrides[0].Namespaces)
	assert.Equal(t, "INFO", cfg.Overrides[1].Level)
	assert.Equal(t, []string{"pkg.app.title"}, cfg.Overrides[1].Namespaces)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := slogtune.LoadConfig("test/data/does_not_exist.yml")
	assert.Error(t, err)
}

func TestApplyConfig(t *testing.T) {
	applier, reg, buf := newTestApplier("")

	cfg, err := slogtune.LoadConfig(testConfigFile)
	require.NoError(t, err)
	require.NoError(t, applier.ApplyConfig(cfg))

	assert.Equal(t, slogtune.LevelError, reg.Root().EffectiveLevel())

	web, ok := reg.Lookup("pkg.web")
	require.True(t, ok)
	assert.Equal(t, slogtune.LevelDebug, web.EffectiveLevel())

	app, ok := reg.Lookup("pkg.app")
	require.True(t, ok)
	assert.Equal(t, slogtune.LevelInfo, app.EffectiveLevel())
	require.NotNil(t, app.Filter())
	assert.Equal(t, []string{"GetTitle"}, app.Filter().Names())

	assert.Contains(t, buf.String(), "pkg.app (overrides previous level DEBUG)")
}

func TestApplyConfigUnknownLevel(t *testing.T) {
	applier, _, _ := newTestApplier("")

	err := applier.ApplyConfig(&slogtune.Config{LogLevel: "verbose"})
	var lvlErr *slogtune.UnknownLevelError
	assert.ErrorAs(t, err, &lvlErr)
}

func TestWatchConfig(t *testing.T) {
	t.Run("missing config file", func(t *testing.T) {
		applier, _, _ := newTestApplier("")
		_, err := applier.WatchConfig("test/data/does_not_exist.yml")
		assert.Error(t, err)
	})

	t.Run("write events re-apply the config", func(t *testing.T) {
		applier, reg, _ := newTestApplier("")

		cfgFile := filepath.Join(t.TempDir(), "slogtune.yml")
		require.NoError(t, os.WriteFile(cfgFile, []byte("log_level: WARNING\n"), 0o644))

		done, err := applier.WatchConfig(cfgFile)
		require.NoError(t, err)
		defer close(done)

		require.NoError(t, os.WriteFile(cfgFile, []byte("log_level: DEBUG\n"), 0o644))
		assert.Eventually(t, func() bool {
			return reg.Root().EffectiveLevel() == slogtune.LevelDebug
		}, 2*time.Second, 10*time.Millisecond)
	})
}
