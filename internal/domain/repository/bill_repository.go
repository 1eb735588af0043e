package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/kaushal774/jewelbill-api/internal/domain/entity"
	"github.com/kaushal774/jewelbill-api/pkg/pagination"
)

// BillRepository defines the interface for persisted sale records
type BillRepository interface {
	// CreateSale inserts the bill with its items and applies the stock
	// deductions in one serializable transaction. Deductions clamp at zero
	// and silently skip items absent from the ledger; the bill insert is
	// the durability boundary of a sale.
	CreateSale(ctx context.Context, bill *entity.BillRecord, deductions []StockDeduction) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.BillRecord, error)
	List(ctx context.Context, params *BillFilterParams) ([]entity.BillRecord, int64, error)
	// ListBetween returns all bills in [from, to] in bill-date order,
	// unpaginated, for register exports and daily summaries.
	ListBetween(ctx context.Context, from, to time.Time) ([]entity.BillRecord, error)
}

// BillFilterParams contains filtering parameters for bill queries
type BillFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string // matches customer name or mobile
	StartDate  *time.Time
	EndDate    *time.Time
}
