package pkg

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qnkhuat/tetterm/pkg/game"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(nil, "")
	require.NoError(t, err)

	assert.Equal(t, "./log", cfg.Log.Path)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, int64(0), cfg.Seed)
	assert.Equal(t, 16*time.Millisecond, cfg.Tick)
	assert.Equal(t, game.DefaultConfig(), cfg.Game())
}

func TestLoadPrecedence(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "tetterm.yaml")
	require.NoError(t, os.WriteFile(file, []byte("nick: file\nseed: 1\nfall:\n  base: 800ms\n  step: 50ms\n"), 0644))

	t.Setenv("TETTERM_SEED", "2")
	t.Setenv("TETTERM_FALL_STEP", "70ms")

	flags := Flags("test")
	require.NoError(t, flags.Parse([]string{"--seed=3", "--tick=20ms"}))

	cfg, err := Load(flags, file)
	require.NoError(t, err)

	assert.Equal(t, "file", cfg.Nick)
	assert.Equal(t, int64(3), cfg.Seed)
	assert.Equal(t, 20*time.Millisecond, cfg.Tick)

	g := cfg.Game()
	assert.Equal(t, int64(3), g.Seed)
	assert.Equal(t, 800*time.Millisecond, g.BaseFallInterval)
	assert.Equal(t, 70*time.Millisecond, g.FallIntervalStep)
	assert.Equal(t, 100*time.Millisecond, g.MinFallInterval)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("TETTERM_NICK", "envy")
	t.Setenv("TETTERM_LOG_LEVEL", "debug")

	cfg, err := Load(Flags("test"), "")
	require.NoError(t, err)

	assert.Equal(t, "envy", cfg.Nick)
	assert.Equal(t, "debug", cfg.Log.Level)
}

// chdir moves into dir for the rest of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(wd) })
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	// No .env at all is fine.
	_, err := Load(nil, "")
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("BAD-KEY=1\n"), 0644))
	_, err = Load(nil, "")
	assert.Error(t, err)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(nil, filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	flags := Flags("test")
	require.NoError(t, flags.Parse([]string{"--tick=0s"}))
	_, err = Load(flags, "")
	assert.ErrorIs(t, err, game.ErrInvalidConfig)

	flags = Flags("test")
	require.NoError(t, flags.Parse([]string{"--fall-min=2s"}))
	_, err = Load(flags, "")
	assert.ErrorIs(t, err, game.ErrInvalidConfig)
}
