package service

import (
	"context"

	"github.com/kaushal774/jewelbill-api/internal/domain/entity"
	"github.com/kaushal774/jewelbill-api/internal/domain/repository"
	"github.com/kaushal774/jewelbill-api/pkg/apperror"
)

// ShopService manages the singleton shop profile printed on every bill.
type ShopService struct {
	shopRepo repository.ShopRepository
}

// NewShopService creates a new shop service
func NewShopService(shopRepo repository.ShopRepository) *ShopService {
	return &ShopService{shopRepo: shopRepo}
}

// UpdateShopInput represents a shop profile update
type UpdateShopInput struct {
	Name    string
	GSTIN   string
	Address string
	Mobile  string
}

// Get returns the shop profile
func (s *ShopService) Get(ctx context.Context) (*entity.ShopProfile, error) {
	shop, err := s.shopRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if shop == nil {
		return nil, apperror.NewNotFoundError("Shop profile")
	}
	return shop, nil
}

// Update replaces the profile fields, creating the row if seeding was
// skipped. All four fields are written as submitted.
func (s *ShopService) Update(ctx context.Context, input *UpdateShopInput) (*entity.ShopProfile, error) {
	if input.Name == "" {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "name", Message: "shop name is required"},
		})
	}

	shop, err := s.shopRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	if shop == nil {
		shop = &entity.ShopProfile{
			Name:    input.Name,
			GSTIN:   input.GSTIN,
			Address: input.Address,
			Mobile:  input.Mobile,
		}
		if err := s.shopRepo.Create(ctx, shop); err != nil {
			return nil, err
		}
		return shop, nil
	}

	shop.Name = input.Name
	shop.GSTIN = input.GSTIN
	shop.Address = input.Address
	shop.Mobile = input.Mobile

	if err := s.shopRepo.Update(ctx, shop); err != nil {
		return nil, err
	}
	return shop, nil
}
