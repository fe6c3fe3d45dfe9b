package domain

import (
	"fmt"
	"time"

	"gorm.io/datatypes"
)

// CREATE TABLE public.catalog_items (
//     id                BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     item_id           TEXT UNIQUE NOT NULL,
//     domain            TEXT NOT NULL,
//     name              TEXT,
//     category          TEXT,
//     description       TEXT,
//     tags              JSONB,
//     price             NUMERIC NOT NULL,
//     time_minutes      NUMERIC NOT NULL,
//     comfort_score     NUMERIC NOT NULL,
//     exploration_score NUMERIC NOT NULL,
//     created_at        TIMESTAMPTZ DEFAULT NOW()
// );

type Item struct {
	ID               uint64                      `gorm:"primaryKey;autoIncrement" json:"-"`
	ItemID           string                      `gorm:"column:item_id;uniqueIndex;type:text" json:"id"`
	Domain           string                      `gorm:"column:domain;index;type:text" json:"domain,omitempty"`
	Name             string                      `gorm:"column:name;type:text" json:"name"`
	Category         string                      `gorm:"column:category;type:text" json:"category"`
	Description      string                      `gorm:"column:description;type:text" json:"description"`
	Tags             datatypes.JSONSlice[string] `gorm:"column:tags;type:jsonb" json:"tags"`
	Price            float64                     `gorm:"column:price;type:numeric" json:"price"`
	TimeMinutes      float64                     `gorm:"column:time_minutes;type:numeric" json:"time_minutes"`
	ComfortScore     float64                     `gorm:"column:comfort_score;type:numeric" json:"comfort_score"`
	ExplorationScore float64                     `gorm:"column:exploration_score;type:numeric" json:"exploration_score"`
	CreatedAt        time.Time                   `gorm:"column:created_at" json:"-"`
}

func (Item) TableName() string {
	return "catalog_items"
}

// Validate checks the catalog record invariants. Items failing these are
// not scorable and must not reach the engine.
func (i Item) Validate() error {
	if i.ItemID == "" {
		return fmt.Errorf("item id is required")
	}
	if i.Price < 0 {
		return fmt.Errorf("item %s: price must not be negative", i.ItemID)
	}
	if i.TimeMinutes < 0 {
		return fmt.Errorf("item %s: time_minutes must not be negative", i.ItemID)
	}
	if i.ComfortScore < 0 || i.ComfortScore > 1 {
		return fmt.Errorf("item %s: comfort_score must be in [0,1]", i.ItemID)
	}
	if i.ExplorationScore < 0 || i.ExplorationScore > 1 {
		return fmt.Errorf("item %s: exploration_score must be in [0,1]", i.ItemID)
	}
	return nil
}
