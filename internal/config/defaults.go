package config

import (
	_ "embed"
)

//go:embed defaults/asteroids.yaml
var defaultAsteroidsYAML []byte

// DefaultAsteroidsConfig returns the default asteroids configuration.
func DefaultAsteroidsConfig() AsteroidsConfig {
	return AsteroidsConfig{
		World: WorldConfig{
			Width:  800,
			Height: 600,
		},
		Ship: ShipConfig{
			TurnRate:     3,
			Thrust:       0.25,
			Radius:       30,
			InitialAngle: 1,
		},
		Bullet: BulletConfig{
			Radius: 30,
			Speed:  10,
			Life:   40,
		},
		Rocks: RocksConfig{
			InitialCount: 5,
			Speed:        1.5,
			Spawn: SpawnConfig{
				MaxX:       50,
				MaxY:       150,
				MaxHeading: 50,
			},
			Scatter: 2,
			Large:   RockClassConfig{Radius: 15, Spin: 1, Points: 20},
			Medium:  RockClassConfig{Radius: 5, Spin: -2, Points: 50},
			Small:   RockClassConfig{Radius: 2, Spin: 5, Points: 100},
		},
		Audio: AudioConfig{
			Enabled:    true,
			Volume:     -1,
			SampleRate: 44100,
		},
		Input: InputConfig{
			HoldTicks: 4,
		},
		Difficulty: DifficultyConfig{
			ExtraRocks:      5,
			SpeedMultiplier: 1.0,
		},
	}
}
