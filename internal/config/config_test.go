package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points HOME and the working directory at empty temp dirs.
func isolate(t *testing.T) (home, work string) {
	t.Helper()
	home = t.TempDir()
	work = t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)
	return home, work
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestDefaultConfigIsValid(t *testing.T) {
	assert.NoError(t, DefaultAsteroidsConfig().Validate())
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := decode(defaultAsteroidsYAML)
	require.NoError(t, err)
	assert.Equal(t, DefaultAsteroidsConfig(), cfg)
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	isolate(t)

	cfg, source, err := ResolveAsteroids("")
	require.NoError(t, err)
	assert.Equal(t, SourceEmbedded, source)
	assert.Equal(t, DefaultAsteroidsConfig(), cfg)
}

func TestLoadCustomPathPartial(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, "rocks:\n  initial_count: 9\nworld:\n  width: 1024\n")

	cfg, err := LoadAsteroids(path)
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.Rocks.InitialCount)
	assert.Equal(t, 1024.0, cfg.World.Width)
	assert.Equal(t, 600.0, cfg.World.Height, "unset keys keep their defaults")
	assert.Equal(t, 40, cfg.Bullet.Life)
}

func TestLoadCustomPathErrors(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	_, err := LoadAsteroids(filepath.Join(dir, "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read")

	bad := filepath.Join(dir, "bad.yaml")
	writeFile(t, bad, "world: [not, a, map\n")
	_, err = LoadAsteroids(bad)
	assert.ErrorContains(t, err, "failed to parse")

	invalid := filepath.Join(dir, "invalid.yaml")
	writeFile(t, invalid, "world:\n  width: 0\n")
	_, err = LoadAsteroids(invalid)
	assert.ErrorContains(t, err, "world.width")
}

func TestLoadSearchOrder(t *testing.T) {
	home, work := isolate(t)

	writeFile(t, filepath.Join(work, "configs", FileName), "rocks:\n  initial_count: 2\n")
	cfg, source, err := ResolveAsteroids("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("configs", FileName), source)
	assert.Equal(t, 2, cfg.Rocks.InitialCount)

	userPath := filepath.Join(home, ".arcade", "configs", FileName)
	writeFile(t, userPath, "rocks:\n  initial_count: 3\n")
	cfg, source, err = ResolveAsteroids("")
	require.NoError(t, err)
	assert.Equal(t, userPath, source)
	assert.Equal(t, 3, cfg.Rocks.InitialCount)
}

func TestLoadSkipsBrokenSearchPathFiles(t *testing.T) {
	home, _ := isolate(t)
	writeFile(t, filepath.Join(home, ".arcade", "configs", FileName), "ship:\n  radius: -4\n")

	_, source, err := ResolveAsteroids("")
	require.NoError(t, err)
	assert.Equal(t, SourceEmbedded, source)
}

func TestValidateReportsEveryField(t *testing.T) {
	cfg := DefaultAsteroidsConfig()
	cfg.World.Height = 0
	cfg.Bullet.Life = 0
	cfg.Rocks.InitialCount = -1
	cfg.Input.HoldTicks = 0

	err := cfg.Validate()
	require.Error(t, err)
	for _, field := range []string{"world.height", "bullet.life", "rocks.initial_count", "input.hold_ticks"} {
		assert.ErrorContains(t, err, field)
	}

	cfg = DefaultAsteroidsConfig()
	cfg.Audio.Enabled = false
	cfg.Audio.SampleRate = 0
	assert.NoError(t, cfg.Validate(), "sample rate is ignored when audio is off")
}

func TestValidateRejectsNonFiniteSpeeds(t *testing.T) {
	cfg := DefaultAsteroidsConfig()
	cfg.Bullet.Speed = math.Inf(1)
	cfg.Ship.Thrust = math.NaN()
	cfg.Rocks.Speed = math.Inf(-1)
	cfg.World.Width = math.Inf(1)

	err := cfg.Validate()
	require.Error(t, err)
	for _, field := range []string{"bullet.speed", "ship.thrust", "rocks.speed", "world.width"} {
		assert.ErrorContains(t, err, field)
	}

	cfg = DefaultAsteroidsConfig()
	cfg.Bullet.Speed = 1e20
	assert.NoError(t, cfg.Validate(), "large but finite speeds are playable")
}

func TestToYAMLRoundTrip(t *testing.T) {
	data, err := DefaultAsteroidsConfig().ToYAML()
	require.NoError(t, err)
	assert.Contains(t, string(data), "initial_count: 5")

	cfg, err := decode(data)
	require.NoError(t, err)
	assert.Equal(t, DefaultAsteroidsConfig(), cfg)
}
