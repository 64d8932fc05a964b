package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the built-in configuration. It mirrors
// defaults/runner.yaml and is used when the embedded file cannot be parsed.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Arena: ArenaConfig{Width: 1280, Height: 720},
		Player: PlayerConfig{
			X:            100,
			Width:        64,
			Height:       64,
			GroundLevel:  220,
			MaxHealth:    3,
			PowerupScale: 1.2,
		},
		Physics: PhysicsConfig{
			Gravity:            0.5,
			JumpVelocity:       12,
			DoubleJumpVelocity: 14,
			JumpCooldownMS:     100,
			MaxFrameMS:         100,
		},
		Collision: CollisionConfig{
			Margin:                 10,
			PlatformSnapTolerance:  10,
			PlatformCheckMinHeight: 220,
			FallStep:               5,
			FallFloor:              220,
			BlockKnockback:         10,
		},
		Scoring: ScoringConfig{
			TimeRate:           0.01,
			TimeLevelFactor:    0.5,
			BonusScore:         1,
			BlockScore:         10,
			BlockPowerupChance: 0.3,
			PowerupLift:        40,
			LevelDelta:         100,
		},
		Difficulty: DifficultyConfig{
			BaseSpeed:     200,
			SpeedPerLevel: 50,
		},
		Spawns: SpawnsConfig{
			Hazards: SpawnConfig{
				Cap: 5, BaseMS: 3000, StepMS: 300, FloorMS: 1000, JitterMS: 750,
				EnterOffset: 10, CullMargin: 100,
				MinWidth: 70, MaxWidth: 100, MinY: 220, MaxY: 220,
			},
			Pickups: PickupConfig{
				SpawnConfig: SpawnConfig{
					Cap: 5, BaseMS: 2000, StepMS: 100, FloorMS: 1000,
					EnterOffset: 20, CullMargin: 100,
					MinWidth: 40, MaxWidth: 40, MinHeight: 40, MaxHeight: 40,
				},
				Tiers: []PickupTier{
					{Name: "low", Weight: 20, MinY: 300, MaxY: 329},
					{Name: "medium", Weight: 40, MinY: 290, MaxY: 349},
					{Name: "high", Weight: 30, MinY: 360, MaxY: 429},
					{Name: "super", Weight: 10, MinY: 440, MaxY: 489},
				},
				HighValueAbove:    400,
				LowValue:          10,
				HighValue:         20,
				LevelLiftPerLevel: 5,
				LevelLiftMax:      40,
				EnterJitter:       100,
			},
			Platforms: SpawnConfig{
				Cap: 3, BaseMS: 4000, StepMS: 300, FloorMS: 2000,
				EnterOffset: 100, CullMargin: 200,
				MinWidth: 64, MaxWidth: 164, MinHeight: 16, MaxHeight: 16, MinY: 280, MaxY: 380,
			},
			Blocks: BlockConfig{
				SpawnConfig: SpawnConfig{
					Cap: 3, BaseMS: 5000, StepMS: 300, FloorMS: 2500,
					EnterOffset: 32, CullMargin: 100,
					MinWidth: 32, MaxWidth: 32, MinHeight: 32, MaxHeight: 32, MinY: 320, MaxY: 420,
				},
				BonusChance: 0.5,
			},
			Birds: BirdConfig{
				SpawnConfig: SpawnConfig{
					Cap: 3, BaseMS: 4000, StepMS: 300, FloorMS: 2000, JitterMS: 500,
					EnterOffset: 50, CullMargin: 100,
					MinWidth: 48, MaxWidth: 48, MinHeight: 32, MaxHeight: 32, MinY: 400, MaxY: 600,
				},
				FlapMS:      150,
				FlapStepMS:  5,
				FlapFloorMS: 100,
			},
			Candies: CandyConfig{
				SpawnConfig: SpawnConfig{
					Cap: 1, BaseMS: 5000, StepMS: 300, FloorMS: 3000,
					EnterOffset: 1130, CullMargin: 100,
					MinWidth: 40, MaxWidth: 40, MinHeight: 40, MaxHeight: 40, MinY: 350, MaxY: 350,
				},
				LevelUpDelay: 2000,
			},
			Opening: []OpeningSpawn{
				{AtMS: 0, Category: "platforms"},
				{AtMS: 1000, Category: "pickups"},
				{AtMS: 1500, Category: "platforms"},
				{AtMS: 2000, Category: "hazards"},
				{AtMS: 2000, Category: "pickups"},
				{AtMS: 3000, Category: "platforms"},
				{AtMS: 3000, Category: "pickups"},
			},
		},
	}
}
