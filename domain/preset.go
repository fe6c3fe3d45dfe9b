package domain

import "time"

// CREATE TABLE public.preset_configs (
//     name            TEXT PRIMARY KEY,
//     w_budget        NUMERIC NOT NULL,
//     w_time          NUMERIC NOT NULL,
//     w_alignment     NUMERIC NOT NULL,
//     discovery_ratio NUMERIC NOT NULL,
//     updated_at      TIMESTAMPTZ DEFAULT NOW()
// );

// PresetConfig is the stored form of a named weight profile. Tuning a
// preset is a config change, never a scoring-code change.
type PresetConfig struct {
	Name           string    `gorm:"column:name;primaryKey;type:text" json:"name"`
	WBudget        float64   `gorm:"column:w_budget;type:numeric" json:"w_budget"`
	WTime          float64   `gorm:"column:w_time;type:numeric" json:"w_time"`
	WAlignment     float64   `gorm:"column:w_alignment;type:numeric" json:"w_alignment"`
	DiscoveryRatio float64   `gorm:"column:discovery_ratio;type:numeric" json:"discovery_ratio"`
	UpdatedAt      time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (PresetConfig) TableName() string {
	return "preset_configs"
}
