package service

import (
	"context"

	"github.com/kaushal774/jewelbill-api/internal/domain/entity"
	"github.com/kaushal774/jewelbill-api/internal/domain/enum"
	"github.com/kaushal774/jewelbill-api/internal/domain/repository"
	"github.com/kaushal774/jewelbill-api/pkg/apperror"
)

// InventoryService manages the per-metal stock ledger. Stock only leaves the
// ledger through sales; this service handles the restock side.
type InventoryService struct {
	inventoryRepo repository.InventoryRepository
}

// NewInventoryService creates a new inventory service
func NewInventoryService(inventoryRepo repository.InventoryRepository) *InventoryService {
	return &InventoryService{inventoryRepo: inventoryRepo}
}

// RestockInput represents a stock addition request
type RestockInput struct {
	Metal  string
	Name   string
	Weight float64
}

// Restock adds weight to an item, creating the ledger entry if it does not
// exist yet.
func (s *InventoryService) Restock(ctx context.Context, input *RestockInput) (*entity.InventoryItem, error) {
	var fieldErrors []apperror.FieldError

	metal, ok := enum.ParseMetal(input.Metal)
	if !ok {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "metal", Message: "metal must be Gold or Silver"})
	}
	if input.Name == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "name", Message: "item name is required"})
	}
	if input.Weight <= 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "weight", Message: "restock weight must be greater than zero"})
	}
	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	return s.inventoryRepo.Restock(ctx, metal, entity.NormalizeItemName(input.Name), input.Weight)
}

// ListByMetal returns the ledger for one metal
func (s *InventoryService) ListByMetal(ctx context.Context, metalStr string) ([]entity.InventoryItem, error) {
	metal, ok := enum.ParseMetal(metalStr)
	if !ok {
		return nil, apperror.NewBadRequestError("metal must be Gold or Silver")
	}
	return s.inventoryRepo.ListByMetal(ctx, metal)
}

// List returns the full ledger across both metals
func (s *InventoryService) List(ctx context.Context) ([]entity.InventoryItem, error) {
	return s.inventoryRepo.List(ctx)
}
