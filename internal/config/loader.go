package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadRunner loads the runner configuration.
// Search order: customPath -> ~/.bunny/configs/runner.yaml -> ./configs/runner.yaml -> embedded default.
// Files are overlaid on the defaults, so a file may set only the keys it changes.
func LoadRunner(customPath string) (RunnerConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultRunnerConfig(), fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parseRunner(data)
		if err != nil {
			return DefaultRunnerConfig(), fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("runner.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseRunner(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "runner.yaml")); err == nil {
		if cfg, err := parseRunner(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	var cfg RunnerConfig
	if err := yaml.Unmarshal(defaultRunnerYAML, &cfg); err != nil {
		return DefaultRunnerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseRunner overlays YAML data on the defaults and validates the result.
func parseRunner(data []byte) (RunnerConfig, error) {
	cfg := DefaultRunnerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Marshal renders the configuration as YAML.
func (c RunnerConfig) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: cannot marshal: %w", err)
	}
	return data, nil
}

// Validate rejects configurations the simulation cannot run with.
func (c RunnerConfig) Validate() error {
	var errs []error
	if c.Arena.Width <= 0 || c.Arena.Height <= 0 {
		errs = append(errs, errors.New("arena size must be positive"))
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		errs = append(errs, errors.New("player size must be positive"))
	}
	if c.Player.GroundLevel+c.Player.Height > c.Arena.Height {
		errs = append(errs, errors.New("player does not fit between ground and ceiling"))
	}
	if c.Player.MaxHealth < 1 || c.Player.MaxHealth > HealthLimit {
		errs = append(errs, fmt.Errorf("max_health must be between 1 and %d", HealthLimit))
	}
	if c.Physics.Gravity <= 0 {
		errs = append(errs, errors.New("gravity must be positive"))
	}
	if c.Physics.MaxFrameMS <= 0 {
		errs = append(errs, errors.New("max_frame_ms must be positive"))
	}
	if c.Scoring.LevelDelta <= 0 {
		errs = append(errs, errors.New("level_delta must be positive"))
	}
	for name, sc := range c.Spawns.byName() {
		if sc.Cap < 0 {
			errs = append(errs, fmt.Errorf("spawns.%s.cap must not be negative", name))
		}
		if sc.FloorMS <= 0 {
			errs = append(errs, fmt.Errorf("spawns.%s.floor_ms must be positive", name))
		}
	}
	total := 0
	for _, tier := range c.Spawns.Pickups.Tiers {
		total += tier.Weight
	}
	if total <= 0 {
		errs = append(errs, errors.New("spawns.pickups.tiers must have positive total weight"))
	}
	for _, o := range c.Spawns.Opening {
		if _, ok := c.Spawns.byName()[o.Category]; !ok {
			errs = append(errs, fmt.Errorf("spawns.opening: unknown category %q", o.Category))
		}
	}
	return errors.Join(errs...)
}

// byName maps YAML category names to their base spawn settings.
func (s SpawnsConfig) byName() map[string]SpawnConfig {
	return map[string]SpawnConfig{
		"hazards":   s.Hazards,
		"pickups":   s.Pickups.SpawnConfig,
		"platforms": s.Platforms,
		"blocks":    s.Blocks.SpawnConfig,
		"birds":     s.Birds.SpawnConfig,
		"candies":   s.Candies.SpawnConfig,
	}
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".bunny", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Difficulty.SpeedPerLevel = 30
		cfg.Spawns.Hazards.StepMS = 150
		cfg.Spawns.Birds.StepMS = 150
	case DifficultyHard:
		cfg.Difficulty.BaseSpeed = 260
		cfg.Spawns.Hazards.FloorMS = 800
		cfg.Spawns.Birds.FloorMS = 1500
	case DifficultyFixed:
		cfg.Difficulty.SpeedPerLevel = 0
		cfg.Spawns.Hazards.StepMS = 0
		cfg.Spawns.Pickups.StepMS = 0
		cfg.Spawns.Platforms.StepMS = 0
		cfg.Spawns.Blocks.StepMS = 0
		cfg.Spawns.Birds.StepMS = 0
		cfg.Spawns.Candies.StepMS = 0
	}
}
