package postgres

import (
	"context"
	"errors"
	"fmt"

	"whyEngine/business/catalog"
	"whyEngine/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ItemRepository struct {
	DB *gorm.DB
}

var _ catalog.ItemRepository = (*ItemRepository)(nil)

func NewItemRepository(db *gorm.DB) *ItemRepository {
	return &ItemRepository{DB: db}
}

func (r *ItemRepository) FindByDomain(ctx context.Context, domainName string) ([]domain.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var items []domain.Item
	err := r.DB.WithContext(ctx).
		Where("domain = ?", domainName).
		Order("id ASC").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load items for domain %q: %w", domainName, err)
	}
	// a domain exists iff it has rows
	if len(items) == 0 {
		return nil, catalog.ErrDomainNotFound
	}

	return items, nil
}

func (r *ItemRepository) Domains(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var domains []string
	err := r.DB.WithContext(ctx).Model(&domain.Item{}).
		Distinct("domain").
		Order("domain ASC").
		Pluck("domain", &domains).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list domains: %w", err)
	}

	return domains, nil
}

// SeedItems upserts catalog records by item_id, used to load or refresh a
// domain's catalog from fixtures.
func (r *ItemRepository) SeedItems(ctx context.Context, items []domain.Item) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}
	if len(items) == 0 {
		return errors.New("no items to seed")
	}

	return r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "item_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"domain",
				"name",
				"category",
				"description",
				"tags",
				"price",
				"time_minutes",
				"comfort_score",
				"exploration_score",
			}),
		}).
		Create(&items).Error
}
