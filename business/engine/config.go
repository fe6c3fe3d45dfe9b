package engine

import (
	"context"
	"whyEngine/domain"
)

const (
	defaultTopK     = 5
	defaultRatioMin = 0.10
	defaultRatioMax = 0.15
)

// Config holds the serving knobs of the engine. Weight profiles are a
// separate concern (see presets.go); Config only bounds them.
type Config struct {
	// TopK is the size of the primary ranked list.
	TopK int

	// RatioMin and RatioMax bound the share of survivors surfaced as
	// discovery items.
	RatioMin float64
	RatioMax float64
}

func DefaultConfig() Config {
	return Config{
		TopK:     defaultTopK,
		RatioMin: defaultRatioMin,
		RatioMax: defaultRatioMax,
	}
}

// PresetRepository reads stored preset overrides, falling back to the
// compiled table when a preset has no row.
type PresetRepository interface {
	GetPreset(ctx context.Context, name string) (domain.PresetConfig, bool, error)
	UpsertPreset(ctx context.Context, cfg domain.PresetConfig) error
}
