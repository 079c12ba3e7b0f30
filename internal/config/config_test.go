package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, 4096, cfg.LZ.WindowSize)
	assert.Equal(t, 18, cfg.LZ.LookaheadSize)
	assert.Equal(t, 10, cfg.Hamilton.MaxCycles)
	assert.Equal(t, 5, cfg.Bench.Iterations)
}

func TestLoad_FileOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "infotrace.yaml")
	doc := `
lz:
  window_size: 64
hamilton:
  unique_rotations: true
playback:
  delay: 250ms
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 64, cfg.LZ.WindowSize)
	assert.Equal(t, 18, cfg.LZ.LookaheadSize, "untouched keys keep defaults")
	assert.True(t, cfg.Hamilton.UniqueRotations)
	assert.Equal(t, 250*time.Millisecond, cfg.Playback.Delay)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_ParseAndRangeErrors(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("lz: [not, a, map"), 0o644))
	_, err := Load(bad)
	assert.ErrorContains(t, err, "failed to parse config")

	zero := filepath.Join(dir, "zero.yaml")
	require.NoError(t, os.WriteFile(zero, []byte("hamilton:\n  max_cycles: 0\n"), 0o644))
	_, err = Load(zero)
	assert.ErrorIs(t, err, ErrInvalid)

	level := filepath.Join(dir, "level.yaml")
	require.NoError(t, os.WriteFile(level, []byte("logging:\n  level: loud\n"), 0o644))
	_, err = Load(level)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestEnvOverrides(t *testing.T) {
	t.Run("values override file and defaults", func(t *testing.T) {
		t.Setenv(EnvLZWindowSize, "128")
		t.Setenv(EnvBenchSeed, "99")
		t.Setenv(EnvLogLevel, "warn")
		t.Setenv(EnvPlaybackDelay, "1s")

		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, 128, cfg.LZ.WindowSize)
		assert.Equal(t, int64(99), cfg.Bench.Seed)
		assert.Equal(t, "warn", cfg.Logging.Level)
		assert.Equal(t, time.Second, cfg.Playback.Delay)
	})

	t.Run("empty values are ignored", func(t *testing.T) {
		t.Setenv(EnvHamiltonMaxCycles, "")
		cfg := DefaultConfig()
		require.NoError(t, cfg.applyEnvOverrides())
		assert.Equal(t, 10, cfg.Hamilton.MaxCycles)
	})

	t.Run("malformed values are rejected", func(t *testing.T) {
		t.Setenv(EnvBenchIterations, "many")
		_, err := Load("")
		assert.ErrorIs(t, err, ErrInvalid)
	})

	t.Run("single-draw bench size is rejected", func(t *testing.T) {
		t.Setenv(EnvBenchDataSize, "1")
		_, err := Load("")
		assert.ErrorIs(t, err, ErrInvalid)
	})

	t.Run("malformed duration is rejected", func(t *testing.T) {
		t.Setenv(EnvPlaybackDelay, "soon")
		_, err := Load("")
		assert.ErrorIs(t, err, ErrInvalid)
	})
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	cfg := DefaultConfig()
	cfg.Bench.DataSize = 42
	require.NoError(t, cfg.Save(path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 42, got.Bench.DataSize)
}
