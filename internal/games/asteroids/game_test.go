package asteroids

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	platformcore "github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids/core"
	"github.com/vovakirdan/tui-asteroids/internal/registry"
)

type recordingSink struct {
	events []core.Event
}

func (r *recordingSink) HandleEvent(e core.Event) {
	r.events = append(r.events, e)
}

func (r *recordingSink) count(e core.Event) int {
	n := 0
	for _, got := range r.events {
		if got == e {
			n++
		}
	}
	return n
}

func runtimeConfig() platformcore.RuntimeConfig {
	return platformcore.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42}
}

func newTestGame(t *testing.T, mutate func(*config.AsteroidsConfig)) (*Game, *recordingSink) {
	t.Helper()
	cfg := config.DefaultAsteroidsConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	g := NewWithConfig(cfg)
	sink := &recordingSink{}
	g.SetEventSink(sink)
	g.Reset(runtimeConfig())
	return g, sink
}

func frame(actions ...platformcore.Action) platformcore.InputFrame {
	f := platformcore.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestRegistered(t *testing.T) {
	require.True(t, registry.Exists(ID))
	g, err := registry.Create(ID)
	require.NoError(t, err)
	assert.Equal(t, "Asteroids", g.Title())
}

func TestResetStartsMusic(t *testing.T) {
	g, sink := newTestGame(t, nil)

	assert.Equal(t, []core.Event{core.EventMusicStart}, sink.events)
	assert.Equal(t, platformcore.GameState{}, g.State())
	snap := g.Snapshot()
	assert.Len(t, snap.Asteroids, 5)
	assert.True(t, snap.Ship.Alive)
}

func TestFireReachesSink(t *testing.T) {
	g, sink := newTestGame(t, nil)

	g.Step(frame(platformcore.ActionFire))
	g.Step(frame(platformcore.ActionFire))

	assert.Equal(t, 1, sink.count(core.EventFired))
	assert.Len(t, g.Snapshot().Projectiles, 1)
}

func TestPauseFreezesWorld(t *testing.T) {
	g, _ := newTestGame(t, nil)
	g.Step(frame())

	res := g.Step(frame(platformcore.ActionPause))
	require.True(t, res.State.Paused)
	tick := g.Snapshot().Tick

	for i := 0; i < 10; i++ {
		g.Step(frame(platformcore.ActionThrust))
	}
	assert.Equal(t, tick, g.Snapshot().Tick)

	res = g.Step(frame(platformcore.ActionPause))
	assert.False(t, res.State.Paused)
	assert.Equal(t, tick+1, g.Snapshot().Tick, "resuming step runs a tick")
}

func TestLossAndRestart(t *testing.T) {
	// A ship this large overlaps every rock on the first tick.
	g, sink := newTestGame(t, func(c *config.AsteroidsConfig) { c.Ship.Radius = 1000 })

	res := g.Step(frame())
	assert.True(t, res.State.GameOver)
	assert.False(t, res.State.Won)
	assert.Equal(t, 1, sink.count(core.EventShipDestroyed))
	assert.Equal(t, 1, sink.count(core.EventMusicStop))

	res = g.Step(frame(platformcore.ActionRestart))
	assert.False(t, res.State.GameOver)
	assert.Equal(t, 2, sink.count(core.EventMusicStart))
	assert.True(t, g.Snapshot().Ship.Alive)
}

func TestPauseIgnoredAfterRoundEnds(t *testing.T) {
	g, _ := newTestGame(t, func(c *config.AsteroidsConfig) { c.Rocks.InitialCount = 0 })

	res := g.Step(frame())
	require.True(t, res.State.Won)

	res = g.Step(frame(platformcore.ActionPause))
	assert.False(t, res.State.Paused)
}

func TestTooSmallScreenHoldsSimulation(t *testing.T) {
	g, _ := newTestGame(t, nil)
	g.Resize(20, 8)

	g.Step(frame(platformcore.ActionThrust))
	assert.Equal(t, uint64(0), g.Snapshot().Tick)

	screen := platformcore.NewScreen(20, 8)
	g.Render(screen)
	assert.Contains(t, screen.String(), "too small")

	g.Resize(80, 24)
	g.Step(frame())
	assert.Equal(t, uint64(1), g.Snapshot().Tick)
}

func TestResizeKeepsRound(t *testing.T) {
	g, _ := newTestGame(t, nil)
	for i := 0; i < 5; i++ {
		g.Step(frame(platformcore.ActionTurnLeft))
	}
	before := g.Snapshot()

	g.Resize(120, 40)

	assert.Equal(t, before, g.Snapshot())
}

func TestDeterministicWithSeed(t *testing.T) {
	run := func() core.Snapshot {
		g, _ := newTestGame(t, nil)
		for i := 0; i < 200; i++ {
			f := frame()
			if i%3 == 0 {
				f.Set(platformcore.ActionTurnRight)
			}
			if i%10 == 0 {
				f.Set(platformcore.ActionFire)
			}
			g.Step(f)
		}
		return g.Snapshot()
	}

	assert.Equal(t, run(), run())
}

func TestControlsFromInput(t *testing.T) {
	tests := []struct {
		action platformcore.Action
		want   core.Controls
	}{
		{platformcore.ActionTurnLeft, core.Controls{TurnLeft: true}},
		{platformcore.ActionTurnRight, core.Controls{TurnRight: true}},
		{platformcore.ActionThrust, core.Controls{Thrust: true}},
		{platformcore.ActionReverseThrust, core.Controls{ReverseThrust: true}},
		{platformcore.ActionFire, core.Controls{Fire: true}},
		{platformcore.ActionRestart, core.Controls{Restart: true}},
		{platformcore.ActionPause, core.Controls{}},
	}

	for _, tc := range tests {
		t.Run(tc.action.String(), func(t *testing.T) {
			assert.Equal(t, tc.want, ControlsFromInput(frame(tc.action)))
		})
	}
}

func TestParamsFromDefaultConfig(t *testing.T) {
	assert.Equal(t, core.DefaultParams(), ParamsFromConfig(config.DefaultAsteroidsConfig()))
}

func TestConfigPresetAppliedOnReset(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	SetDifficultyPreset("hard")
	t.Cleanup(func() { SetDifficultyPreset("") })

	g := New()
	g.Reset(runtimeConfig())

	assert.Len(t, g.Snapshot().Asteroids, 9)
	assert.Equal(t, 9, g.Config().Rocks.InitialCount)
}

func TestCustomConfigPath(t *testing.T) {
	path := t.TempDir() + "/asteroids.yaml"
	require.NoError(t, writeConfig(path, "rocks:\n  initial_count: 2\n"))
	SetConfigPath(path)
	t.Cleanup(func() { SetConfigPath("") })

	g := New()
	g.Reset(runtimeConfig())

	assert.Len(t, g.Snapshot().Asteroids, 2)
}

func TestRenderBeforeResetIsBlank(t *testing.T) {
	screen := platformcore.NewScreen(10, 3)
	New().Render(screen)
	assert.Equal(t, strings.Repeat(" ", 10), screen.Row(1))
}
