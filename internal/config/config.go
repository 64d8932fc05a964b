// Package config provides YAML-based configuration loading and
// level-based difficulty scaling for the runner.
package config

// RunnerConfig contains every tunable of the simulation. The pixel values
// are tied to the arena scale below; change them together.
type RunnerConfig struct {
	Arena      ArenaConfig      `yaml:"arena"`
	Player     PlayerConfig     `yaml:"player"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Collision  CollisionConfig  `yaml:"collision"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Spawns     SpawnsConfig     `yaml:"spawns"`
}

// ArenaConfig defines the simulated play area in pixels.
type ArenaConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// HealthLimit is the most health a player can ever hold.
const HealthLimit = 3

// PlayerConfig defines the player's footprint and vitals.
type PlayerConfig struct {
	X            float64 `yaml:"x"`
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundLevel  float64 `yaml:"ground_level"`
	MaxHealth    int     `yaml:"max_health"`
	PowerupScale float64 `yaml:"powerup_scale"`
}

// PhysicsConfig defines the jump model. Velocities and gravity are per tick.
type PhysicsConfig struct {
	Gravity            float64 `yaml:"gravity"`
	JumpVelocity       float64 `yaml:"jump_velocity"`
	DoubleJumpVelocity float64 `yaml:"double_jump_velocity"`
	JumpCooldownMS     float64 `yaml:"jump_cooldown_ms"`
	MaxFrameMS         float64 `yaml:"max_frame_ms"`
}

// CollisionConfig holds the hand-tuned collision thresholds.
type CollisionConfig struct {
	Margin                 float64 `yaml:"margin"`
	PlatformSnapTolerance  float64 `yaml:"platform_snap_tolerance"`
	PlatformCheckMinHeight float64 `yaml:"platform_check_min_height"`
	FallStep               float64 `yaml:"fall_step"`
	FallFloor              float64 `yaml:"fall_floor"`
	BlockKnockback         float64 `yaml:"block_knockback"`
}

// ScoringConfig defines score awards and the level threshold.
type ScoringConfig struct {
	TimeRate           float64 `yaml:"time_rate"`
	TimeLevelFactor    float64 `yaml:"time_level_factor"`
	BonusScore         int     `yaml:"bonus_score"`
	BlockScore         int     `yaml:"block_score"`
	BlockPowerupChance float64 `yaml:"block_powerup_chance"`
	PowerupLift        float64 `yaml:"powerup_lift"`
	LevelDelta         int     `yaml:"level_delta"`
}

// DifficultyConfig defines how entity speed scales with level.
type DifficultyConfig struct {
	BaseSpeed     float64 `yaml:"base_speed"`
	SpeedPerLevel float64 `yaml:"speed_per_level"`
}

// SpawnConfig defines one category's population and spawn distribution.
// Heights are bottom offsets; sizes are in pixels; times in milliseconds.
type SpawnConfig struct {
	Cap         int     `yaml:"cap"`
	BaseMS      float64 `yaml:"base_ms"`
	StepMS      float64 `yaml:"step_ms"`
	FloorMS     float64 `yaml:"floor_ms"`
	JitterMS    float64 `yaml:"jitter_ms"`
	EnterOffset float64 `yaml:"enter_offset"`
	CullMargin  float64 `yaml:"cull_margin"`
	MinWidth    float64 `yaml:"min_width"`
	MaxWidth    float64 `yaml:"max_width"`
	MinHeight   float64 `yaml:"min_height"`
	MaxHeight   float64 `yaml:"max_height"`
	MinY        float64 `yaml:"min_y"`
	MaxY        float64 `yaml:"max_y"`
}

// PickupTier is one band of the pickup height distribution.
type PickupTier struct {
	Name   string  `yaml:"name"`
	Weight int     `yaml:"weight"` // Percent; tiers should sum to 100
	MinY   float64 `yaml:"min_y"`
	MaxY   float64 `yaml:"max_y"`
}

// PickupConfig extends SpawnConfig with the tiered height distribution.
type PickupConfig struct {
	SpawnConfig       `yaml:",inline"`
	Tiers             []PickupTier `yaml:"tiers"`
	HighValueAbove    float64      `yaml:"high_value_above"`
	LowValue          int          `yaml:"low_value"`
	HighValue         int          `yaml:"high_value"`
	LevelLiftPerLevel float64      `yaml:"level_lift_per_level"`
	LevelLiftMax      float64      `yaml:"level_lift_max"`
	EnterJitter       float64      `yaml:"enter_jitter"`
}

// BirdConfig extends SpawnConfig with the cosmetic flap cadence.
type BirdConfig struct {
	SpawnConfig `yaml:",inline"`
	FlapMS      float64 `yaml:"flap_ms"`
	FlapStepMS  float64 `yaml:"flap_step_ms"`
	FlapFloorMS float64 `yaml:"flap_floor_ms"`
}

// BlockConfig extends SpawnConfig with the bonus-block share.
type BlockConfig struct {
	SpawnConfig `yaml:",inline"`
	BonusChance float64 `yaml:"bonus_chance"`
}

// CandyConfig extends SpawnConfig with the post-level-up delay.
type CandyConfig struct {
	SpawnConfig  `yaml:",inline"`
	LevelUpDelay float64 `yaml:"level_up_delay_ms"`
}

// OpeningSpawn schedules one spawn at a fixed time after the session starts.
type OpeningSpawn struct {
	AtMS     float64 `yaml:"at_ms"`
	Category string  `yaml:"category"`
}

// SpawnsConfig groups the six entity categories.
type SpawnsConfig struct {
	Hazards   SpawnConfig    `yaml:"hazards"`
	Pickups   PickupConfig   `yaml:"pickups"`
	Platforms SpawnConfig    `yaml:"platforms"`
	Blocks    BlockConfig    `yaml:"blocks"`
	Birds     BirdConfig     `yaml:"birds"`
	Candies   CandyConfig    `yaml:"candies"`
	Opening   []OpeningSpawn `yaml:"opening"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a flag value to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}
