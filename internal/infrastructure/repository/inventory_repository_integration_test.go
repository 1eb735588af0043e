package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/kaushal774/jewelbill-api/internal/domain/entity"
	"github.com/kaushal774/jewelbill-api/internal/domain/enum"
	domainRepo "github.com/kaushal774/jewelbill-api/internal/domain/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB connects to a dedicated TEST database so the live database is
// never touched. Set TEST_DATABASE_DSN in the environment to run these.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN not set — skipping integration test to protect live database")
	}

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	if err := db.AutoMigrate(
		&entity.InventoryItem{},
		&entity.BillRecord{},
		&entity.BillItem{},
	); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	if err := db.Exec(`TRUNCATE TABLE bill_items, bill_records, inventory_items CASCADE`).Error; err != nil {
		t.Fatalf("Failed to clean test database: %v", err)
	}

	return db
}

func seedItem(t *testing.T, db *gorm.DB, metal enum.Metal, name string, weight float64) {
	t.Helper()
	item := &entity.InventoryItem{Metal: metal, ItemName: name, Weight: weight}
	require.NoError(t, db.Create(item).Error)
}

func ledgerWeight(t *testing.T, repo domainRepo.InventoryRepository, metal enum.Metal, name string) float64 {
	t.Helper()
	item, err := repo.GetByKey(context.Background(), metal, name)
	require.NoError(t, err)
	require.NotNil(t, item)
	return item.Weight
}

func testBill(billNo string) *entity.BillRecord {
	return &entity.BillRecord{
		BillNo:   billNo,
		BillDate: time.Now(),
		Customer: "Ramesh Kumar",
		Metal:    enum.MetalGold,
		Total:    5253,
	}
}

func TestCreateSale_OverSellingClampsWeightToZero(t *testing.T) {
	db := setupTestDB(t)
	invRepo := NewInventoryRepository(db)
	billRepo := NewBillRepository(db)
	ctx := context.Background()

	seedItem(t, db, enum.MetalGold, "RING", 5.000)

	err := billRepo.CreateSale(ctx, testBill("BILL-it-0001"), []domainRepo.StockDeduction{
		{Metal: enum.MetalGold, Name: "RING", Weight: 12.5},
	})
	require.NoError(t, err)

	assert.Equal(t, 0.0, ledgerWeight(t, invRepo, enum.MetalGold, "RING"),
		"selling more than the stock must land at exactly zero, never negative")
}

func TestCreateSale_ExactStockLandsAtZero(t *testing.T) {
	db := setupTestDB(t)
	invRepo := NewInventoryRepository(db)
	billRepo := NewBillRepository(db)
	ctx := context.Background()

	seedItem(t, db, enum.MetalSilver, "PAYAL", 200.000)

	err := billRepo.CreateSale(ctx, testBill("BILL-it-0002"), []domainRepo.StockDeduction{
		{Metal: enum.MetalSilver, Name: "PAYAL", Weight: 200.000},
	})
	require.NoError(t, err)

	assert.Equal(t, 0.0, ledgerWeight(t, invRepo, enum.MetalSilver, "PAYAL"))
}

func TestCreateSale_PartialDeductionKeepsThreeDecimals(t *testing.T) {
	db := setupTestDB(t)
	invRepo := NewInventoryRepository(db)
	billRepo := NewBillRepository(db)
	ctx := context.Background()

	seedItem(t, db, enum.MetalGold, "CHAIN", 10.000)

	err := billRepo.CreateSale(ctx, testBill("BILL-it-0003"), []domainRepo.StockDeduction{
		{Metal: enum.MetalGold, Name: "CHAIN", Weight: 4.255},
	})
	require.NoError(t, err)

	assert.InDelta(t, 5.745, ledgerWeight(t, invRepo, enum.MetalGold, "CHAIN"), 0.0005)
}

func TestCreateSale_UnknownItemIsANoOp(t *testing.T) {
	db := setupTestDB(t)
	invRepo := NewInventoryRepository(db)
	billRepo := NewBillRepository(db)
	ctx := context.Background()

	seedItem(t, db, enum.MetalGold, "RING", 5.000)

	err := billRepo.CreateSale(ctx, testBill("BILL-it-0004"), []domainRepo.StockDeduction{
		{Metal: enum.MetalGold, Name: "TIARA", Weight: 3},
	})
	require.NoError(t, err, "a sale of an item absent from the ledger must still record the bill")

	// No ledger entry was created for the unknown item.
	missing, err := invRepo.GetByKey(ctx, enum.MetalGold, "TIARA")
	require.NoError(t, err)
	assert.Nil(t, missing)

	// The existing stock is untouched and the bill is durable.
	assert.Equal(t, 5.0, ledgerWeight(t, invRepo, enum.MetalGold, "RING"))
	bill := &entity.BillRecord{}
	require.NoError(t, db.First(bill, "bill_no = ?", "BILL-it-0004").Error)
}

func TestCreateSale_SameMetalOnlyIsDeducted(t *testing.T) {
	db := setupTestDB(t)
	invRepo := NewInventoryRepository(db)
	billRepo := NewBillRepository(db)
	ctx := context.Background()

	seedItem(t, db, enum.MetalGold, "RING", 5.000)
	seedItem(t, db, enum.MetalSilver, "RING", 300.000)

	err := billRepo.CreateSale(ctx, testBill("BILL-it-0005"), []domainRepo.StockDeduction{
		{Metal: enum.MetalGold, Name: "RING", Weight: 2},
	})
	require.NoError(t, err)

	assert.Equal(t, 3.0, ledgerWeight(t, invRepo, enum.MetalGold, "RING"))
	assert.Equal(t, 300.0, ledgerWeight(t, invRepo, enum.MetalSilver, "RING"))
}

func TestRestock_UpsertsAndAccumulates(t *testing.T) {
	db := setupTestDB(t)
	invRepo := NewInventoryRepository(db)
	ctx := context.Background()

	item, err := invRepo.Restock(ctx, enum.MetalGold, "ring", 3.5)
	require.NoError(t, err)
	assert.Equal(t, "RING", item.ItemName)
	assert.InDelta(t, 3.5, item.Weight, 0.0005)

	item, err = invRepo.Restock(ctx, enum.MetalGold, "RING", 1.25)
	require.NoError(t, err)
	assert.InDelta(t, 4.75, item.Weight, 0.0005)
}
