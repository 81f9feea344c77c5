// Package config provides YAML-based game configuration loading and
// difficulty management.
package config

// StackerConfig contains all configuration for the tower-stacking game.
type StackerConfig struct {
	Block      BlockConfig      `yaml:"block"`
	Pendulum   PendulumConfig   `yaml:"pendulum"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	World      WorldConfig      `yaml:"world"`
	Colors     ColorsConfig     `yaml:"colors"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BlockConfig defines the shared extents and mass of every block in a session.
type BlockConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Depth  float64 `yaml:"depth"`
	Mass   float64 `yaml:"mass"` // Applied when a block turns dynamic on drop
}

// PendulumConfig defines the swing of the block-in-play.
type PendulumConfig struct {
	Amplitude    float64 `yaml:"amplitude"`     // Horizontal sway in length-units
	Speed        float64 `yaml:"speed"`         // Phase advance in radians per tick
	HeightOffset float64 `yaml:"height_offset"` // Swing height above the tower top, in block heights
}

// ScoringConfig defines the drop-alignment reward ladder and the fall penalty.
// A drop with alignment below PerfectRadius is snapped and scores PerfectPoints;
// below PartialRadius it scores PartialPoints; anything wider scores PoorPoints.
type ScoringConfig struct {
	PerfectRadius float64 `yaml:"perfect_radius"`
	PartialRadius float64 `yaml:"partial_radius"`
	PerfectPoints int     `yaml:"perfect_points"`
	PartialPoints int     `yaml:"partial_points"`
	PoorPoints    int     `yaml:"poor_points"`
	FallPenalty   int     `yaml:"fall_penalty"` // Subtracted when a block falls out of bounds
}

// WorldConfig defines physics-world parameters.
type WorldConfig struct {
	Gravity      float64 `yaml:"gravity"`         // Vertical acceleration, negative pulls down
	OutOfBoundsY float64 `yaml:"out_of_bounds_y"` // Blocks at or below this height are destroyed
}

// ColorsConfig defines block color rotation.
type ColorsConfig struct {
	RotateEvery int `yaml:"rotate_every"` // Spawns between random palette re-picks
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to pendulum speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyStackerPreset modifies the config based on a difficulty preset.
func ApplyStackerPreset(cfg *StackerConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
}
