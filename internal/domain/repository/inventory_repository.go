package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/kaushal774/jewelbill-api/internal/domain/entity"
	"github.com/kaushal774/jewelbill-api/internal/domain/enum"
)

// InventoryRepository defines the interface for stock ledger operations
type InventoryRepository interface {
	// Restock upserts an item: existing weight is incremented, a missing
	// item is created with the delta as its weight.
	Restock(ctx context.Context, metal enum.Metal, name string, delta float64) (*entity.InventoryItem, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.InventoryItem, error)
	// GetByKey looks an item up by (metal, normalized name). Returns
	// (nil, nil) when absent.
	GetByKey(ctx context.Context, metal enum.Metal, name string) (*entity.InventoryItem, error)
	// ListByMetal returns items of one metal in insertion order.
	ListByMetal(ctx context.Context, metal enum.Metal) ([]entity.InventoryItem, error)
	List(ctx context.Context) ([]entity.InventoryItem, error)
}

// StockDeduction is one clamped weight decrement applied during a sale.
type StockDeduction struct {
	Metal  enum.Metal
	Name   string
	Weight float64
}
