package repository

import (
	"context"
	"errors"

	"github.com/kaushal774/jewelbill-api/internal/domain/entity"
	domainRepo "github.com/kaushal774/jewelbill-api/internal/domain/repository"
	"gorm.io/gorm"
)

type shopRepository struct {
	db *gorm.DB
}

// NewShopRepository creates a new shop profile repository
func NewShopRepository(db *gorm.DB) domainRepo.ShopRepository {
	return &shopRepository{db: db}
}

func (r *shopRepository) Get(ctx context.Context) (*entity.ShopProfile, error) {
	var profile entity.ShopProfile
	err := r.db.WithContext(ctx).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &profile, err
}

func (r *shopRepository) Create(ctx context.Context, profile *entity.ShopProfile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *shopRepository) Update(ctx context.Context, profile *entity.ShopProfile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}
