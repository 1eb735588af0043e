package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/kaushal774/jewelbill-api/internal/domain/entity"
	"github.com/kaushal774/jewelbill-api/internal/domain/enum"
	"github.com/kaushal774/jewelbill-api/internal/domain/pricing"
	"github.com/kaushal774/jewelbill-api/internal/domain/repository"
	"github.com/kaushal774/jewelbill-api/pkg/apperror"
	"github.com/kaushal774/jewelbill-api/pkg/document"
	"github.com/kaushal774/jewelbill-api/pkg/pagination"
	"github.com/kaushal774/jewelbill-api/pkg/register"
	"github.com/shopspring/decimal"
)

// BillingService turns a sale submission into a priced, persisted bill.
type BillingService struct {
	billRepo  repository.BillRepository
	shopRepo  repository.ShopRepository
	renderer  document.Renderer
	register  *register.Register
	gstPolicy enum.GSTPolicy
}

// NewBillingService creates a new billing service. register may be nil when
// the spreadsheet register is disabled.
func NewBillingService(
	billRepo repository.BillRepository,
	shopRepo repository.ShopRepository,
	renderer document.Renderer,
	reg *register.Register,
	gstPolicy enum.GSTPolicy,
) *BillingService {
	return &BillingService{
		billRepo:  billRepo,
		shopRepo:  shopRepo,
		renderer:  renderer,
		register:  reg,
		gstPolicy: gstPolicy,
	}
}

// SaleItemInput is one purchased (item name, weight) line
type SaleItemInput struct {
	Name   string
	Weight float64
}

// CreateBillInput represents a raw sale submission
type CreateBillInput struct {
	Customer        string
	Mobile          string
	Metal           string
	NetWeight       float64
	OldWeight       float64
	Rate            float64
	DisplayRate     string
	Purity          float64 // gold only, 0 means default
	Making          float64 // percent for gold, flat for silver
	ExtraAdjustment float64
	GSTPercent      float64
	Discount        float64
	Paid            float64
	Items           []SaleItemInput
}

// validate runs the whole-request validation pass. Nothing is deducted,
// priced or persisted until every field has passed; partial defaulting of
// bad fields is not done.
func (in *CreateBillInput) validate() (enum.Metal, []apperror.FieldError) {
	var fieldErrors []apperror.FieldError

	if in.Customer == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "customer", Message: "customer name is required"})
	}
	metal, ok := enum.ParseMetal(in.Metal)
	if !ok {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "metal", Message: "metal must be Gold or Silver"})
	}
	if in.NetWeight <= 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "net_weight", Message: "net weight must be greater than zero"})
	}
	if in.OldWeight < 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "old_weight", Message: "old weight cannot be negative"})
	}
	if in.Rate <= 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "rate", Message: "rate must be greater than zero"})
	}
	if metal == enum.MetalGold && in.Purity != 0 && (in.Purity <= 0 || in.Purity > 100) {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "purity", Message: "purity must be between 0 and 100"})
	}
	if in.Making < 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "making", Message: "making charge cannot be negative"})
	}
	if in.GSTPercent < 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "gst_percent", Message: "GST percent cannot be negative"})
	}
	if in.Discount < 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "discount", Message: "discount cannot be negative"})
	}
	if in.Paid < 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "paid", Message: "paid amount cannot be negative"})
	}
	for i, item := range in.Items {
		if item.Name == "" {
			continue // incomplete rows are dropped, matching the form behaviour
		}
		if item.Weight <= 0 {
			fieldErrors = append(fieldErrors, apperror.FieldError{
				Field:   fmt.Sprintf("items[%d].weight", i),
				Message: "item weight must be greater than zero",
			})
		}
	}

	return metal, fieldErrors
}

// CreateBill validates the submission, prices it, and records the sale.
// Stock deduction and the bill insert commit together; the PDF and the
// spreadsheet register are written afterwards, best-effort. A line item
// absent from the inventory ledger does not block the sale.
func (s *BillingService) CreateBill(ctx context.Context, input *CreateBillInput) (*entity.BillRecord, error) {
	metal, fieldErrors := input.validate()
	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	quote := pricing.Compute(pricing.Input{
		Metal:           metal,
		NetWeight:       decimal.NewFromFloat(input.NetWeight),
		OldWeight:       decimal.NewFromFloat(input.OldWeight),
		Rate:            decimal.NewFromFloat(input.Rate),
		Purity:          decimal.NewFromFloat(input.Purity),
		Making:          decimal.NewFromFloat(input.Making),
		ExtraAdjustment: decimal.NewFromFloat(input.ExtraAdjustment),
		GSTPercent:      decimal.NewFromFloat(input.GSTPercent),
		Discount:        decimal.NewFromFloat(input.Discount),
		Paid:            decimal.NewFromFloat(input.Paid),
	}, s.gstPolicy)

	if quote.Clamped {
		log.Printf("sale for %q: discount %.2f exceeded the computed total, clamped to 0", input.Customer, input.Discount)
	}

	displayRate := input.DisplayRate
	if displayRate == "" {
		displayRate = decimal.NewFromFloat(input.Rate).String()
	}

	items := make([]entity.BillItem, 0, len(input.Items))
	deductions := make([]repository.StockDeduction, 0, len(input.Items))
	for _, item := range input.Items {
		if item.Name == "" {
			continue
		}
		name := entity.NormalizeItemName(item.Name)
		items = append(items, entity.BillItem{ItemName: name, Weight: item.Weight})
		deductions = append(deductions, repository.StockDeduction{
			Metal:  metal,
			Name:   name,
			Weight: item.Weight,
		})
	}

	bill := &entity.BillRecord{
		BillNo:       fmt.Sprintf("BILL-%s", uuid.New().String()[:8]),
		BillDate:     time.Now(),
		Customer:     input.Customer,
		Mobile:       input.Mobile,
		Metal:        metal,
		NetWeight:    input.NetWeight,
		OldWeight:    input.OldWeight,
		PurityLabel:  quote.PurityLabel,
		DisplayRate:  displayRate,
		GSTAmount:    quote.GSTAmount.Round(2).InexactFloat64(),
		MakingAmount: quote.MakingAmount.Round(2).InexactFloat64(),
		Discount:     input.Discount,
		Total:        quote.Total.InexactFloat64(),
		Paid:         input.Paid,
		Balance:      quote.Balance.InexactFloat64(),
		GSTPolicy:    s.gstPolicy,
		Items:        items,
	}

	if err := s.billRepo.CreateSale(ctx, bill, deductions); err != nil {
		return nil, err
	}

	// The sale is durable from here; rendering and bookkeeping must not
	// undo or fail it.
	s.renderAndLog(ctx, bill)

	return bill, nil
}

// renderAndLog produces the printable bill and the register row. Both carry
// the engine's making-charge figure verbatim; neither re-derives it.
func (s *BillingService) renderAndLog(ctx context.Context, bill *entity.BillRecord) {
	shop, err := s.shopRepo.Get(ctx)
	if err != nil || shop == nil {
		log.Printf("bill %s: shop profile unavailable, skipping document: %v", bill.BillNo, err)
		return
	}

	if _, err := s.renderer.Render(s.buildInvoice(bill, shop)); err != nil {
		log.Printf("bill %s: document rendering failed: %v", bill.BillNo, err)
	}

	if s.register != nil {
		row := register.Row{
			Date:         bill.BillDate.Format("02-01-2006"),
			BillNo:       bill.BillNo,
			Customer:     bill.Customer,
			Mobile:       bill.Mobile,
			Metal:        bill.Metal.String(),
			PurityLabel:  bill.PurityLabel,
			GSTAmount:    bill.GSTAmount,
			MakingAmount: bill.MakingAmount,
			Discount:     bill.Discount,
			Total:        bill.Total,
			Paid:         bill.Paid,
			Balance:      bill.Balance,
		}
		if err := s.register.Append(row); err != nil {
			log.Printf("bill %s: register append failed: %v", bill.BillNo, err)
		}
	}
}

func (s *BillingService) buildInvoice(bill *entity.BillRecord, shop *entity.ShopProfile) *document.Invoice {
	items := make([]document.Item, len(bill.Items))
	for i, item := range bill.Items {
		items[i] = document.Item{Name: item.ItemName, Weight: item.Weight}
	}

	return &document.Invoice{
		ShopName:     shop.Name,
		ShopAddress:  shop.Address,
		ShopGSTIN:    shop.GSTIN,
		ShopMobile:   shop.Mobile,
		BillNo:       bill.BillNo,
		Date:         bill.BillDate.Format("02-01-2006"),
		Customer:     bill.Customer,
		Mobile:       bill.Mobile,
		Metal:        bill.Metal.String(),
		CaratLabel:   pricing.CaratLabel(bill.PurityLabel),
		NetWeight:    bill.NetWeight,
		OldWeight:    bill.OldWeight,
		DisplayRate:  bill.DisplayRate,
		Items:        items,
		GSTAmount:    bill.GSTAmount,
		MakingAmount: bill.MakingAmount,
		Discount:     bill.Discount,
		Total:        bill.Total,
		Paid:         bill.Paid,
		Balance:      bill.Balance,
	}
}

// GetBill retrieves a bill by ID
func (s *BillingService) GetBill(ctx context.Context, id uuid.UUID) (*entity.BillRecord, error) {
	bill, err := s.billRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, apperror.NewNotFoundError("Bill")
	}
	return bill, nil
}

// RenderBill regenerates the printable document for a recorded bill and
// returns the file path.
func (s *BillingService) RenderBill(ctx context.Context, id uuid.UUID) (string, error) {
	bill, err := s.GetBill(ctx, id)
	if err != nil {
		return "", err
	}

	shop, err := s.shopRepo.Get(ctx)
	if err != nil {
		return "", err
	}
	if shop == nil {
		return "", apperror.NewNotFoundError("Shop profile")
	}

	path, err := s.renderer.Render(s.buildInvoice(bill, shop))
	if err != nil {
		return "", apperror.NewAppError(500, "Failed to render bill document")
	}
	if path == "" {
		return "", apperror.NewAppError(503, "Document rendering is disabled")
	}
	return path, nil
}

// ListBills lists bills with filtering
func (s *BillingService) ListBills(ctx context.Context, params *repository.BillFilterParams) (*pagination.PaginatedResult[entity.BillRecord], error) {
	bills, total, err := s.billRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(bills, pag), nil
}
