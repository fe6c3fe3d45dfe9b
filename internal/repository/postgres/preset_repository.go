package postgres

import (
	"context"

	"whyEngine/business/engine"
	"whyEngine/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PresetRepository struct {
	DB *gorm.DB
}

var _ engine.PresetRepository = (*PresetRepository)(nil)

func NewPresetRepository(db *gorm.DB) *PresetRepository {
	return &PresetRepository{DB: db}
}

func (r *PresetRepository) GetPreset(ctx context.Context, name string) (domain.PresetConfig, bool, error) {
	var cfg domain.PresetConfig

	err := r.DB.WithContext(ctx).
		Where("name = ?", name).
		First(&cfg).Error
	if err == gorm.ErrRecordNotFound {
		return domain.PresetConfig{}, false, nil
	}
	if err != nil {
		return domain.PresetConfig{}, false, err
	}

	return cfg, true, nil
}

func (r *PresetRepository) UpsertPreset(ctx context.Context, cfg domain.PresetConfig) error {
	return r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"w_budget",
				"w_time",
				"w_alignment",
				"discovery_ratio",
				"updated_at",
			}),
		}).
		Create(&cfg).Error
}
