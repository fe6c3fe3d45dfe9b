package engine

import "fmt"

// PresetDefault is the profile used when the request names no preset.
const PresetDefault = "default"

// WeightConfig is one named weight profile: how much budget savings, time
// headroom, and comfort/exploration alignment contribute to the final
// score, plus the discovery share applied at injection. The engine uses a
// plain weighted sum, so the weight scale carries through to the score
// range.
type WeightConfig struct {
	WBudget        float64 `json:"w_budget"`
	WTime          float64 `json:"w_time"`
	WAlignment     float64 `json:"w_alignment"`
	DiscoveryRatio float64 `json:"discovery_ratio"`
}

// Validate checks a profile against the engine bounds. Stored overrides
// that fail validation are ignored in favor of the compiled table.
func (w WeightConfig) Validate(cfg Config) error {
	if w.WBudget < 0 || w.WTime < 0 || w.WAlignment < 0 {
		return fmt.Errorf("weights must not be negative: (%v, %v, %v)", w.WBudget, w.WTime, w.WAlignment)
	}
	if w.WBudget == 0 && w.WTime == 0 && w.WAlignment == 0 {
		return fmt.Errorf("at least one weight must be positive")
	}
	if w.DiscoveryRatio < cfg.RatioMin || w.DiscoveryRatio > cfg.RatioMax {
		return fmt.Errorf("discovery_ratio %v outside [%v, %v]", w.DiscoveryRatio, cfg.RatioMin, cfg.RatioMax)
	}
	return nil
}

// defaultPresets is the compiled preset table. Students lean on budget
// and time, savers on budget, explorers on alignment with the larger
// discovery share. Adding a preset is a table change only.
func defaultPresets() map[string]WeightConfig {
	return map[string]WeightConfig{
		PresetDefault: {
			WBudget:        0.35,
			WTime:          0.30,
			WAlignment:     0.35,
			DiscoveryRatio: 0.10,
		},
		"student": {
			WBudget:        0.50,
			WTime:          0.30,
			WAlignment:     0.20,
			DiscoveryRatio: 0.10,
		},
		"saver": {
			WBudget:        0.60,
			WTime:          0.15,
			WAlignment:     0.25,
			DiscoveryRatio: 0.10,
		},
		"explorer": {
			WBudget:        0.15,
			WTime:          0.15,
			WAlignment:     0.70,
			DiscoveryRatio: 0.15,
		},
	}
}
