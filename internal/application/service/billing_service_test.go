package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/kaushal774/jewelbill-api/internal/domain/entity"
	"github.com/kaushal774/jewelbill-api/internal/domain/enum"
	"github.com/kaushal774/jewelbill-api/internal/domain/repository"
	"github.com/kaushal774/jewelbill-api/pkg/apperror"
	"github.com/kaushal774/jewelbill-api/pkg/document"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBillRepo struct {
	saved      *entity.BillRecord
	deductions []repository.StockDeduction
	createErr  error
	byID       map[uuid.UUID]*entity.BillRecord
}

func (f *fakeBillRepo) CreateSale(ctx context.Context, bill *entity.BillRecord, deductions []repository.StockDeduction) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.saved = bill
	f.deductions = deductions
	return nil
}

func (f *fakeBillRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.BillRecord, error) {
	return f.byID[id], nil
}

func (f *fakeBillRepo) List(ctx context.Context, params *repository.BillFilterParams) ([]entity.BillRecord, int64, error) {
	return nil, 0, nil
}

func (f *fakeBillRepo) ListBetween(ctx context.Context, from, to time.Time) ([]entity.BillRecord, error) {
	return nil, nil
}

type fakeShopRepo struct {
	shop *entity.ShopProfile
	err  error
}

func (f *fakeShopRepo) Get(ctx context.Context) (*entity.ShopProfile, error) {
	return f.shop, f.err
}

func (f *fakeShopRepo) Create(ctx context.Context, profile *entity.ShopProfile) error { return nil }
func (f *fakeShopRepo) Update(ctx context.Context, profile *entity.ShopProfile) error { return nil }

type fakeRenderer struct {
	invoice *document.Invoice
	err     error
}

func (f *fakeRenderer) Render(inv *document.Invoice) (string, error) {
	f.invoice = inv
	if f.err != nil {
		return "", f.err
	}
	return "/tmp/Bill_test.pdf", nil
}

func testShop() *entity.ShopProfile {
	return &entity.ShopProfile{
		ID:      uuid.New(),
		Name:    "FAKKAD JEWELLERS",
		GSTIN:   "09BMRPS8447R1Z1",
		Address: "Madhogarh, Jalaun",
		Mobile:  "9451508591",
	}
}

func goldSale() *CreateBillInput {
	return &CreateBillInput{
		Customer:   "Ramesh Kumar",
		Mobile:     "9876543210",
		Metal:      "Gold",
		NetWeight:  10,
		Rate:       6000,
		Purity:     75,
		Making:     10,
		GSTPercent: 3,
		Paid:       5000,
		Items: []SaleItemInput{
			{Name: "ring", Weight: 4},
			{Name: "Chain", Weight: 6},
		},
	}
}

func TestCreateBill_GoldSale(t *testing.T) {
	billRepo := &fakeBillRepo{}
	renderer := &fakeRenderer{}
	svc := NewBillingService(billRepo, &fakeShopRepo{shop: testShop()}, renderer, nil, enum.GSTPolicyPlain)

	bill, err := svc.CreateBill(context.Background(), goldSale())
	require.NoError(t, err)
	require.NotNil(t, billRepo.saved)

	assert.Equal(t, enum.MetalGold, bill.Metal)
	assert.Equal(t, "Gold 75%", bill.PurityLabel)
	assert.InDelta(t, 153.0, bill.GSTAmount, 0.001)
	assert.InDelta(t, 600.0, bill.MakingAmount, 0.001)
	assert.InDelta(t, 5253.0, bill.Total, 0.001)
	assert.InDelta(t, 253.0, bill.Balance, 0.001)
	assert.NotEmpty(t, bill.BillNo)

	require.Len(t, billRepo.deductions, 2)
	assert.Equal(t, "RING", billRepo.deductions[0].Name)
	assert.Equal(t, "CHAIN", billRepo.deductions[1].Name)
	assert.Equal(t, enum.MetalGold, billRepo.deductions[0].Metal)
	assert.InDelta(t, 4.0, billRepo.deductions[0].Weight, 0.0001)
}

func TestCreateBill_LegacyGSTPolicy(t *testing.T) {
	billRepo := &fakeBillRepo{}
	svc := NewBillingService(billRepo, &fakeShopRepo{shop: testShop()}, &fakeRenderer{}, nil, enum.GSTPolicyLegacyFactor)

	bill, err := svc.CreateBill(context.Background(), goldSale())
	require.NoError(t, err)

	assert.InDelta(t, 5268.29, bill.Total, 0.001)
	assert.Equal(t, enum.GSTPolicyLegacyFactor, bill.GSTPolicy)
}

func TestCreateBill_RendererFigureCarriedVerbatim(t *testing.T) {
	renderer := &fakeRenderer{}
	svc := NewBillingService(&fakeBillRepo{}, &fakeShopRepo{shop: testShop()}, renderer, nil, enum.GSTPolicyPlain)

	input := goldSale()
	input.ExtraAdjustment = 3

	bill, err := svc.CreateBill(context.Background(), input)
	require.NoError(t, err)
	require.NotNil(t, renderer.invoice)

	// The invoice carries the engine's making charge, not a re-derivation.
	assert.InDelta(t, bill.MakingAmount, renderer.invoice.MakingAmount, 0.0001)
	assert.InDelta(t, 780.0, renderer.invoice.MakingAmount, 0.001)
	assert.Equal(t, "18K", renderer.invoice.CaratLabel)
}

func TestCreateBill_ValidationCollectsAllErrors(t *testing.T) {
	svc := NewBillingService(&fakeBillRepo{}, &fakeShopRepo{shop: testShop()}, &fakeRenderer{}, nil, enum.GSTPolicyPlain)

	input := &CreateBillInput{
		Metal:     "Platinum",
		NetWeight: 0,
		Rate:      -1,
		Discount:  -5,
		Items: []SaleItemInput{
			{Name: "Ring", Weight: 0},
		},
	}

	bill, err := svc.CreateBill(context.Background(), input)
	assert.Nil(t, bill)
	require.Error(t, err)

	appErr := apperror.GetAppError(err)
	assert.Equal(t, 422, appErr.Code)

	fields := make(map[string]bool)
	for _, fe := range appErr.Errors {
		fields[fe.Field] = true
	}
	assert.True(t, fields["customer"])
	assert.True(t, fields["metal"])
	assert.True(t, fields["net_weight"])
	assert.True(t, fields["rate"])
	assert.True(t, fields["discount"])
	assert.True(t, fields["items[0].weight"])
}

func TestCreateBill_EmptyItemRowsDropped(t *testing.T) {
	billRepo := &fakeBillRepo{}
	svc := NewBillingService(billRepo, &fakeShopRepo{shop: testShop()}, &fakeRenderer{}, nil, enum.GSTPolicyPlain)

	input := goldSale()
	input.Items = []SaleItemInput{
		{Name: "", Weight: 99},
		{Name: "Ring", Weight: 4},
	}

	bill, err := svc.CreateBill(context.Background(), input)
	require.NoError(t, err)

	assert.Len(t, bill.Items, 1)
	assert.Len(t, billRepo.deductions, 1)
	assert.Equal(t, "RING", bill.Items[0].ItemName)
}

func TestCreateBill_OversizedDiscountClampsTotal(t *testing.T) {
	billRepo := &fakeBillRepo{}
	svc := NewBillingService(billRepo, &fakeShopRepo{shop: testShop()}, &fakeRenderer{}, nil, enum.GSTPolicyPlain)

	input := &CreateBillInput{
		Customer:   "Walk-in",
		Metal:      "Gold",
		NetWeight:  1,
		Rate:       6000,
		Purity:     75,
		Making:     10,
		GSTPercent: 3,
		Discount:   10000,
		Paid:       100,
	}

	bill, err := svc.CreateBill(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, 0.0, bill.Total)
	assert.InDelta(t, -100.0, bill.Balance, 0.001)
}

func TestCreateBill_RendererFailureDoesNotFailSale(t *testing.T) {
	billRepo := &fakeBillRepo{}
	renderer := &fakeRenderer{err: errors.New("disk full")}
	svc := NewBillingService(billRepo, &fakeShopRepo{shop: testShop()}, renderer, nil, enum.GSTPolicyPlain)

	bill, err := svc.CreateBill(context.Background(), goldSale())
	require.NoError(t, err)
	assert.NotNil(t, bill)
	assert.NotNil(t, billRepo.saved)
}

func TestCreateBill_MissingShopProfileDoesNotFailSale(t *testing.T) {
	billRepo := &fakeBillRepo{}
	renderer := &fakeRenderer{}
	svc := NewBillingService(billRepo, &fakeShopRepo{shop: nil}, renderer, nil, enum.GSTPolicyPlain)

	_, err := svc.CreateBill(context.Background(), goldSale())
	require.NoError(t, err)
	assert.Nil(t, renderer.invoice)
}

func TestCreateBill_RepositoryErrorPropagates(t *testing.T) {
	billRepo := &fakeBillRepo{createErr: errors.New("serialization failure")}
	svc := NewBillingService(billRepo, &fakeShopRepo{shop: testShop()}, &fakeRenderer{}, nil, enum.GSTPolicyPlain)

	bill, err := svc.CreateBill(context.Background(), goldSale())
	assert.Nil(t, bill)
	assert.Error(t, err)
}

func TestCreateBill_SilverSale(t *testing.T) {
	billRepo := &fakeBillRepo{}
	svc := NewBillingService(billRepo, &fakeShopRepo{shop: testShop()}, &fakeRenderer{}, nil, enum.GSTPolicyPlain)

	input := &CreateBillInput{
		Customer:   "Sita Devi",
		Metal:      "Silver",
		NetWeight:  100,
		Rate:       800,
		Making:     50,
		GSTPercent: 3,
		Paid:       200,
	}

	bill, err := svc.CreateBill(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, "Silver", bill.PurityLabel)
	assert.InDelta(t, 50.0, bill.MakingAmount, 0.001)
	assert.InDelta(t, 133.9, bill.Total, 0.001)
	assert.InDelta(t, -66.1, bill.Balance, 0.001)
}

func TestGetBill_NotFound(t *testing.T) {
	svc := NewBillingService(&fakeBillRepo{byID: map[uuid.UUID]*entity.BillRecord{}}, &fakeShopRepo{}, &fakeRenderer{}, nil, enum.GSTPolicyPlain)

	bill, err := svc.GetBill(context.Background(), uuid.New())
	assert.Nil(t, bill)
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestRenderBill_RegeneratesDocument(t *testing.T) {
	id := uuid.New()
	stored := &entity.BillRecord{
		ID:           id,
		BillNo:       "BILL-abcd1234",
		BillDate:     time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC),
		Customer:     "Ramesh Kumar",
		Metal:        enum.MetalGold,
		PurityLabel:  "Gold 75%",
		MakingAmount: 600,
		Total:        5253,
	}
	renderer := &fakeRenderer{}
	svc := NewBillingService(&fakeBillRepo{byID: map[uuid.UUID]*entity.BillRecord{id: stored}}, &fakeShopRepo{shop: testShop()}, renderer, nil, enum.GSTPolicyPlain)

	path, err := svc.RenderBill(context.Background(), id)
	require.NoError(t, err)
	assert.NotEmpty(t, path)
	require.NotNil(t, renderer.invoice)
	assert.Equal(t, "15-08-2026", renderer.invoice.Date)
	assert.InDelta(t, 600.0, renderer.invoice.MakingAmount, 0.001)
}
