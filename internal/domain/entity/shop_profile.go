package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShopProfile is the single shop identity printed on every invoice.
// Exactly one row exists; it is seeded at startup and only ever updated.
type ShopProfile struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	GSTIN     string    `gorm:"size:50" json:"gstin"`
	Address   string    `gorm:"size:200" json:"address"`
	Mobile    string    `gorm:"size:20" json:"mobile"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating the shop profile
func (s *ShopProfile) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the ShopProfile model
func (ShopProfile) TableName() string {
	return "shop_profile"
}
