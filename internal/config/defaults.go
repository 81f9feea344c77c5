package config

import (
	_ "embed"
)

//go:embed defaults/stacker.yaml
var defaultStackerYAML []byte

// DefaultStackerConfig returns the default tower-stacking configuration.
// Kept in sync with defaults/stacker.yaml as the last-resort fallback.
func DefaultStackerConfig() StackerConfig {
	return StackerConfig{
		Block: BlockConfig{
			Width:  3.0,
			Height: 1.0,
			Depth:  3.0,
			Mass:   1.0,
		},
		Pendulum: PendulumConfig{
			Amplitude:    10.0,
			Speed:        0.02,
			HeightOffset: 3.0,
		},
		Scoring: ScoringConfig{
			PerfectRadius: 0.5,
			PartialRadius: 2.0,
			PerfectPoints: 10,
			PartialPoints: 5,
			PoorPoints:    1,
			FallPenalty:   5,
		},
		World: WorldConfig{
			Gravity:      -30.0,
			OutOfBoundsY: -10.0,
		},
		Colors: ColorsConfig{
			RotateEvery: 5,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 300,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.5,
			},
		},
	}
}
