package repository

import (
	"context"

	"github.com/kaushal774/jewelbill-api/internal/domain/entity"
)

// ShopRepository defines the interface for the singleton shop profile
type ShopRepository interface {
	// Get returns the profile row, or (nil, nil) before seeding.
	Get(ctx context.Context) (*entity.ShopProfile, error)
	Create(ctx context.Context, profile *entity.ShopProfile) error
	Update(ctx context.Context, profile *entity.ShopProfile) error
}
