package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/kaushal774/jewelbill-api/internal/domain/entity"
	"github.com/kaushal774/jewelbill-api/internal/domain/enum"
	domainRepo "github.com/kaushal774/jewelbill-api/internal/domain/repository"
	"gorm.io/gorm"
)

type inventoryRepository struct {
	db *gorm.DB
}

// NewInventoryRepository creates a new inventory repository
func NewInventoryRepository(db *gorm.DB) domainRepo.InventoryRepository {
	return &inventoryRepository{db: db}
}

// Restock adds delta grams to an existing item or creates it. The update is
// atomic so concurrent restocks of the same item cannot lose increments.
func (r *inventoryRepository) Restock(ctx context.Context, metal enum.Metal, name string, delta float64) (*entity.InventoryItem, error) {
	name = entity.NormalizeItemName(name)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&entity.InventoryItem{}).
			Where("metal = ? AND item_name = ?", metal, name).
			Update("weight", gorm.Expr("ROUND((weight + ?::numeric), 3)", delta))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			item := &entity.InventoryItem{Metal: metal, ItemName: name, Weight: delta}
			return tx.Create(item).Error
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.GetByKey(ctx, metal, name)
}

func (r *inventoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.InventoryItem, error) {
	var item entity.InventoryItem
	err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &item, err
}

func (r *inventoryRepository) GetByKey(ctx context.Context, metal enum.Metal, name string) (*entity.InventoryItem, error) {
	var item entity.InventoryItem
	err := r.db.WithContext(ctx).
		First(&item, "metal = ? AND item_name = ?", metal, entity.NormalizeItemName(name)).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &item, err
}

func (r *inventoryRepository) ListByMetal(ctx context.Context, metal enum.Metal) ([]entity.InventoryItem, error) {
	var items []entity.InventoryItem
	err := r.db.WithContext(ctx).
		Where("metal = ?", metal).
		Order("created_at ASC").
		Find(&items).Error
	return items, err
}

func (r *inventoryRepository) List(ctx context.Context) ([]entity.InventoryItem, error) {
	var items []entity.InventoryItem
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&items).Error
	return items, err
}

// applyDeduction decrements one stock line, clamped at zero. A missing
// (metal, name) pair affects no rows; callers treat that as a no-op.
// Exported through BillRepository.CreateSale, which runs it inside the
// sale transaction.
func applyDeduction(tx *gorm.DB, d domainRepo.StockDeduction) (int64, error) {
	result := tx.Model(&entity.InventoryItem{}).
		Where("metal = ? AND item_name = ?", d.Metal, entity.NormalizeItemName(d.Name)).
		Update("weight", gorm.Expr("ROUND(GREATEST(weight - ?::numeric, 0), 3)", d.Weight))
	return result.RowsAffected, result.Error
}
