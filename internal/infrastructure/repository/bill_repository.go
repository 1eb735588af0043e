package repository

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/kaushal774/jewelbill-api/internal/domain/entity"
	domainRepo "github.com/kaushal774/jewelbill-api/internal/domain/repository"
	"gorm.io/gorm"
)

type billRepository struct {
	db *gorm.DB
}

// NewBillRepository creates a new bill repository
func NewBillRepository(db *gorm.DB) domainRepo.BillRepository {
	return &billRepository{db: db}
}

// CreateSale applies the stock deductions and inserts the bill in a single
// serializable transaction. Interleaved sales of the same stock line cannot
// race the read-modify-write this way. Deductions targeting items absent
// from the ledger affect no rows and are logged, not failed: the sale is
// still priced and recorded.
func (r *billRepository) CreateSale(ctx context.Context, bill *entity.BillRecord, deductions []domainRepo.StockDeduction) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, d := range deductions {
			affected, err := applyDeduction(tx, d)
			if err != nil {
				return err
			}
			if affected == 0 {
				log.Printf("sale: no stock entry for %s %q, ledger unchanged", d.Metal, d.Name)
			}
		}
		return tx.Create(bill).Error
	}, &sql.TxOptions{Isolation: sql.LevelSerializable})
}

func (r *billRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.BillRecord, error) {
	var bill entity.BillRecord
	err := r.db.WithContext(ctx).
		Preload("Items").
		First(&bill, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &bill, err
}

func (r *billRepository) List(ctx context.Context, params *domainRepo.BillFilterParams) ([]entity.BillRecord, int64, error) {
	var bills []entity.BillRecord
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.BillRecord{})

	if params.Search != "" {
		query = query.Where("customer ILIKE ? OR mobile ILIKE ?",
			"%"+params.Search+"%", "%"+params.Search+"%")
	}

	if params.StartDate != nil {
		query = query.Where("bill_date >= ?", *params.StartDate)
	}

	if params.EndDate != nil {
		query = query.Where("bill_date <= ?", *params.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Items").
		Order("created_at DESC").
		Find(&bills).Error

	return bills, total, err
}

func (r *billRepository) ListBetween(ctx context.Context, from, to time.Time) ([]entity.BillRecord, error) {
	var bills []entity.BillRecord
	err := r.db.WithContext(ctx).
		Where("bill_date >= ? AND bill_date <= ?", from, to).
		Preload("Items").
		Order("bill_date ASC, created_at ASC").
		Find(&bills).Error
	return bills, err
}
