// Package config provides YAML-based game configuration loading and
// difficulty presets for the asteroids game.
package config

import (
	"errors"
	"fmt"
	"math"

	"gopkg.in/yaml.v3"
)

// AsteroidsConfig contains all configuration for the asteroids game.
// Every value is fixed once a round starts.
type AsteroidsConfig struct {
	World      WorldConfig      `yaml:"world"`
	Ship       ShipConfig       `yaml:"ship"`
	Bullet     BulletConfig     `yaml:"bullet"`
	Rocks      RocksConfig      `yaml:"rocks"`
	Audio      AudioConfig      `yaml:"audio"`
	Input      InputConfig      `yaml:"input"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig defines the size of the wrapping playfield in world units.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ShipConfig defines the player ship.
type ShipConfig struct {
	TurnRate     float64 `yaml:"turn_rate"` // Degrees per tick
	Thrust       float64 `yaml:"thrust"`    // Velocity added per tick
	Radius       float64 `yaml:"radius"`
	InitialAngle float64 `yaml:"initial_angle"`
}

// BulletConfig defines projectiles.
type BulletConfig struct {
	Radius float64 `yaml:"radius"`
	Speed  float64 `yaml:"speed"`
	Life   int     `yaml:"life"` // Ticks
}

// RocksConfig defines the asteroid population and size classes.
type RocksConfig struct {
	InitialCount int             `yaml:"initial_count"`
	Speed        float64         `yaml:"speed"` // Large asteroid spawn speed
	Spawn        SpawnConfig     `yaml:"spawn"`
	Scatter      int             `yaml:"scatter"` // Max fragment velocity offset per axis
	Large        RockClassConfig `yaml:"large"`
	Medium       RockClassConfig `yaml:"medium"`
	Small        RockClassConfig `yaml:"small"`
}

// SpawnConfig bounds the random spawn of large asteroids.
type SpawnConfig struct {
	MaxX       int `yaml:"max_x"`
	MaxY       int `yaml:"max_y"`
	MaxHeading int `yaml:"max_heading"`
}

// RockClassConfig defines one asteroid size class.
type RockClassConfig struct {
	Radius float64 `yaml:"radius"`
	Spin   float64 `yaml:"spin"`
	Points int     `yaml:"points"`
}

// AudioConfig controls sound playback.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	Volume     float64 `yaml:"volume"` // Gain in powers of two, 0 = unchanged
	SampleRate int     `yaml:"sample_rate"`
}

// InputConfig tunes key handling in terminals without key-release events.
type InputConfig struct {
	HoldTicks int `yaml:"hold_ticks"` // Ticks a key stays held after its last press
}

// DifficultyConfig defines what the non-fixed presets scale.
type DifficultyConfig struct {
	ExtraRocks      int     `yaml:"extra_rocks"`      // Rocks added at level 1.0
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to rock speed at level 1.0
}

// Validate reports every invalid field.
func (c AsteroidsConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if !(v > 0) || math.IsInf(v, 1) {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}
	finite := func(name string, v float64) {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			errs = append(errs, fmt.Errorf("%s must be a finite number, got %v", name, v))
		}
	}
	nonNegative := func(name string, v int) {
		if v < 0 {
			errs = append(errs, fmt.Errorf("%s must not be negative, got %d", name, v))
		}
	}

	positive("world.width", c.World.Width)
	positive("world.height", c.World.Height)
	positive("ship.radius", c.Ship.Radius)
	positive("bullet.radius", c.Bullet.Radius)
	positive("bullet.life", float64(c.Bullet.Life))
	positive("rocks.large.radius", c.Rocks.Large.Radius)
	positive("rocks.medium.radius", c.Rocks.Medium.Radius)
	positive("rocks.small.radius", c.Rocks.Small.Radius)
	positive("input.hold_ticks", float64(c.Input.HoldTicks))
	finite("ship.turn_rate", c.Ship.TurnRate)
	finite("ship.thrust", c.Ship.Thrust)
	finite("ship.initial_angle", c.Ship.InitialAngle)
	finite("bullet.speed", c.Bullet.Speed)
	finite("rocks.speed", c.Rocks.Speed)
	finite("rocks.large.spin", c.Rocks.Large.Spin)
	finite("rocks.medium.spin", c.Rocks.Medium.Spin)
	finite("rocks.small.spin", c.Rocks.Small.Spin)
	finite("difficulty.speed_multiplier", c.Difficulty.SpeedMultiplier)
	nonNegative("rocks.initial_count", c.Rocks.InitialCount)
	nonNegative("rocks.scatter", c.Rocks.Scatter)
	nonNegative("rocks.spawn.max_x", c.Rocks.Spawn.MaxX)
	nonNegative("rocks.spawn.max_y", c.Rocks.Spawn.MaxY)
	nonNegative("rocks.spawn.max_heading", c.Rocks.Spawn.MaxHeading)
	nonNegative("difficulty.extra_rocks", c.Difficulty.ExtraRocks)
	if c.Audio.Enabled && c.Audio.SampleRate <= 0 {
		errs = append(errs, fmt.Errorf("audio.sample_rate must be positive, got %d", c.Audio.SampleRate))
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("config: invalid asteroids config: %w", errors.Join(errs...))
}

// ToYAML renders the configuration as YAML.
func (c AsteroidsConfig) ToYAML() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}
