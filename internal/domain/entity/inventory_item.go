package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kaushal774/jewelbill-api/internal/domain/enum"
	"gorm.io/gorm"
)

// InventoryItem is a named stock line for one metal, tracked by weight in
// grams. Weight never goes below zero: sales clamp, they do not error.
type InventoryItem struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	Metal     enum.Metal `gorm:"default:0;uniqueIndex:idx_metal_item" json:"metal"`
	ItemName  string     `gorm:"size:50;not null;uniqueIndex:idx_metal_item" json:"item_name"`
	Weight    float64    `gorm:"type:numeric(12,3);default:0" json:"weight"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// BeforeCreate generates a UUID and normalizes the item name
func (i *InventoryItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	i.ItemName = NormalizeItemName(i.ItemName)
	return nil
}

// TableName returns the table name for the InventoryItem model
func (InventoryItem) TableName() string {
	return "inventory_items"
}

// NormalizeItemName uppercases and trims an item name so (metal, name)
// lookups are stable regardless of how the name was typed.
func NormalizeItemName(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}
