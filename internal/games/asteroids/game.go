// Package asteroids provides the Asteroids game for the arcade platform.
// The simulation itself lives in the core subpackage; this package adapts
// it to the platform: input frames, config loading, sound cues and
// rendering into a character screen.
package asteroids

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	platformcore "github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids/core"
	"github.com/vovakirdan/tui-asteroids/internal/registry"
)

// ID is the registry identifier of the game.
const ID = "asteroids"

// Minimum terminal size the playfield is drawn at.
const (
	MinScreenW = 40
	MinScreenH = 12
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParseDifficulty(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// EventSink receives the sound cues emitted by the simulation.
// HandleEvent is called from the game loop and must not block.
type EventSink interface {
	HandleEvent(e core.Event)
}

// Game implements registry.Game for Asteroids.
type Game struct {
	runtime platformcore.RuntimeConfig
	cfg     config.AsteroidsConfig
	fixed   *config.AsteroidsConfig // Bypasses file loading when set
	sim     *core.Simulation
	sink    EventSink

	paused   bool
	tooSmall bool
}

// New creates a game that loads its configuration on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game that always uses cfg.
func NewWithConfig(cfg config.AsteroidsConfig) *Game {
	return &Game{fixed: &cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Asteroids"
}

// SetEventSink routes sound cues to sink. A nil sink drops them.
func (g *Game) SetEventSink(sink EventSink) {
	g.sink = sink
}

// Config returns the configuration of the current round.
func (g *Game) Config() config.AsteroidsConfig {
	return g.cfg
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime platformcore.RuntimeConfig) {
	g.runtime = runtime
	g.cfg = g.loadConfig()

	seed := runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.sim = core.NewSimulation(ParamsFromConfig(g.cfg), rand.New(rand.NewSource(seed)))
	g.paused = false
	g.Resize(runtime.ScreenW, runtime.ScreenH)

	g.emit(g.sim.Reset())
}

func (g *Game) loadConfig() config.AsteroidsConfig {
	if g.fixed != nil {
		return *g.fixed
	}

	// Load game config
	cfg, err := config.LoadAsteroids(configPath)
	if err != nil {
		cfg = config.DefaultAsteroidsConfig()
	}

	// Apply difficulty preset if set
	if difficultyPreset != "" {
		config.ApplyAsteroidsPreset(&cfg, difficultyPreset)
	}
	return cfg
}

// Resize adapts the layout to a new terminal size. The world keeps running.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.tooSmall = w < MinScreenW || h < MinScreenH
}

// Step advances the game by one tick.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	if g.sim == nil || g.tooSmall {
		return platformcore.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(platformcore.ActionPause) && g.sim.Status() == core.StatusRunning {
		g.paused = !g.paused
	}
	if g.paused {
		return platformcore.StepResult{State: g.State()}
	}

	res := g.sim.Tick(ControlsFromInput(in))
	g.emit(res.Events)

	return platformcore.StepResult{State: g.State()}
}

func (g *Game) emit(events []core.Event) {
	if g.sink == nil {
		return
	}
	for _, e := range events {
		g.sink.HandleEvent(e)
	}
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	if g.sim == nil {
		return platformcore.GameState{}
	}
	status := g.sim.Status()
	return platformcore.GameState{
		Score:    g.sim.Score(),
		GameOver: status.Terminal(),
		Won:      status == core.StatusWon,
		Paused:   g.paused,
	}
}

// Snapshot returns a copy of the world for determinism checks.
func (g *Game) Snapshot() core.Snapshot {
	if g.sim == nil {
		return core.Snapshot{}
	}
	return g.sim.Snapshot()
}

// ControlsFromInput maps platform actions to simulation controls.
func ControlsFromInput(in platformcore.InputFrame) core.Controls {
	return core.Controls{
		TurnLeft:      in.Has(platformcore.ActionTurnLeft),
		TurnRight:     in.Has(platformcore.ActionTurnRight),
		Thrust:        in.Has(platformcore.ActionThrust),
		ReverseThrust: in.Has(platformcore.ActionReverseThrust),
		Fire:          in.Has(platformcore.ActionFire),
		Restart:       in.Has(platformcore.ActionRestart),
	}
}

// ParamsFromConfig converts a loaded configuration into simulation constants.
func ParamsFromConfig(cfg config.AsteroidsConfig) core.Params {
	class := func(c config.RockClassConfig) core.SizeClass {
		return core.SizeClass{Radius: c.Radius, Spin: c.Spin, Points: c.Points}
	}
	return core.Params{
		World: core.Bounds{W: cfg.World.Width, H: cfg.World.Height},
		Ship: core.ShipParams{
			TurnAmount:   cfg.Ship.TurnRate,
			ThrustAmount: cfg.Ship.Thrust,
			Radius:       cfg.Ship.Radius,
			InitialAngle: cfg.Ship.InitialAngle,
		},
		Bullet: core.BulletParams{
			Radius: cfg.Bullet.Radius,
			Speed:  cfg.Bullet.Speed,
			Life:   cfg.Bullet.Life,
		},
		Rocks: core.RockParams{
			InitialCount: cfg.Rocks.InitialCount,
			Large:        class(cfg.Rocks.Large),
			Medium:       class(cfg.Rocks.Medium),
			Small:        class(cfg.Rocks.Small),
			LargeSpeed:   cfg.Rocks.Speed,
			SpawnMaxX:    cfg.Rocks.Spawn.MaxX,
			SpawnMaxY:    cfg.Rocks.Spawn.MaxY,
			MaxHeading:   cfg.Rocks.Spawn.MaxHeading,
			Scatter:      cfg.Rocks.Scatter,
		},
	}
}

func init() {
	registry.Register(ID, func() registry.Game { return New() })
}
