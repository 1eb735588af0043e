package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/kaushal774/jewelbill-api/internal/domain/enum"
	"gorm.io/gorm"
)

// BillRecord is the persisted summary of one completed sale. Inserting it is
// the durability boundary of a sale: rendering and register appends happen
// afterwards and are best-effort.
type BillRecord struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	BillNo       string         `gorm:"size:50;unique;not null" json:"bill_no"`
	BillDate     time.Time      `gorm:"type:date;not null" json:"bill_date"`
	Customer     string         `gorm:"size:100;not null" json:"customer"`
	Mobile       string         `gorm:"size:15" json:"mobile"`
	Metal        enum.Metal     `gorm:"default:0" json:"metal"`
	NetWeight    float64        `gorm:"type:numeric(12,3);default:0" json:"net_weight"`
	OldWeight    float64        `gorm:"type:numeric(12,3);default:0" json:"old_weight"`
	PurityLabel  string         `gorm:"size:30" json:"purity_label"`
	DisplayRate  string         `gorm:"size:30" json:"display_rate"`
	GSTAmount    float64        `gorm:"type:numeric(12,2);default:0" json:"gst_amount"`
	MakingAmount float64        `gorm:"type:numeric(12,2);default:0" json:"making_amount"`
	Discount     float64        `gorm:"type:numeric(12,2);default:0" json:"discount"`
	Total        float64        `gorm:"type:numeric(12,2);not null" json:"total"`
	Paid         float64        `gorm:"type:numeric(12,2);default:0" json:"paid"`
	Balance      float64        `gorm:"type:numeric(12,2);default:0" json:"balance"`
	GSTPolicy    enum.GSTPolicy `gorm:"default:0" json:"gst_policy"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Items []BillItem `gorm:"foreignKey:BillID" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new bill record
func (b *BillRecord) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the BillRecord model
func (BillRecord) TableName() string {
	return "bill_records"
}

// BillItem is one sold (item name, weight) line of a bill.
type BillItem struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	BillID   uuid.UUID `gorm:"type:uuid;not null;index" json:"bill_id"`
	ItemName string    `gorm:"size:50;not null" json:"item_name"`
	Weight   float64   `gorm:"type:numeric(12,3);not null" json:"weight"`

	// Relationships
	Bill BillRecord `gorm:"foreignKey:BillID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new bill item
func (i *BillItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the BillItem model
func (BillItem) TableName() string {
	return "bill_items"
}
