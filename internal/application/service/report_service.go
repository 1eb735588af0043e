package service

import (
	"context"
	"time"

	"github.com/kaushal774/jewelbill-api/internal/domain/enum"
	"github.com/kaushal774/jewelbill-api/internal/domain/repository"
	"github.com/kaushal774/jewelbill-api/pkg/apperror"
	"github.com/xuri/excelize/v2"
)

const exportSheet = "Bills"

var exportHeader = []string{
	"Date", "Bill No", "Customer", "Mobile", "Metal", "Purity",
	"Net Weight", "Old Weight", "GST", "Making", "Discount", "Total", "Paid", "Balance",
}

// ReportService produces spreadsheet exports and summaries over recorded
// bills. Reports read the persisted figures; nothing is re-priced here.
type ReportService struct {
	billRepo repository.BillRepository
}

// NewReportService creates a new report service
func NewReportService(billRepo repository.BillRepository) *ReportService {
	return &ReportService{billRepo: billRepo}
}

// DailySummary aggregates the bills recorded on one calendar day.
type DailySummary struct {
	Date        string  `json:"date"`
	BillCount   int     `json:"bill_count"`
	GoldBills   int     `json:"gold_bills"`
	SilverBills int     `json:"silver_bills"`
	TotalSales  float64 `json:"total_sales"`
	TotalGST    float64 `json:"total_gst"`
	TotalPaid   float64 `json:"total_paid"`
	TotalDue    float64 `json:"total_due"`
}

// ExportBills builds an XLSX workbook of the bills in [from, to].
func (s *ReportService) ExportBills(ctx context.Context, from, to time.Time) (*excelize.File, error) {
	if to.Before(from) {
		return nil, apperror.NewBadRequestError("end date must not be before start date")
	}

	bills, err := s.billRepo.ListBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	index, err := f.NewSheet(exportSheet)
	if err != nil {
		return nil, apperror.NewAppError(500, "Failed to build export workbook")
	}
	f.SetActiveSheet(index)
	_ = f.DeleteSheet("Sheet1")

	head := make([]interface{}, len(exportHeader))
	for i, h := range exportHeader {
		head[i] = h
	}
	if err := f.SetSheetRow(exportSheet, "A1", &head); err != nil {
		return nil, apperror.NewAppError(500, "Failed to build export workbook")
	}

	for i, bill := range bills {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, apperror.NewAppError(500, "Failed to build export workbook")
		}
		row := []interface{}{
			bill.BillDate.Format("02-01-2006"), bill.BillNo, bill.Customer, bill.Mobile,
			bill.Metal.String(), bill.PurityLabel,
			bill.NetWeight, bill.OldWeight,
			bill.GSTAmount, bill.MakingAmount, bill.Discount, bill.Total, bill.Paid, bill.Balance,
		}
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return nil, apperror.NewAppError(500, "Failed to build export workbook")
		}
	}

	return f, nil
}

// Summarize aggregates the bills recorded on the given day.
func (s *ReportService) Summarize(ctx context.Context, day time.Time) (*DailySummary, error) {
	from := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	to := from.Add(24*time.Hour - time.Nanosecond)

	bills, err := s.billRepo.ListBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}

	summary := &DailySummary{Date: from.Format("02-01-2006")}
	for _, bill := range bills {
		summary.BillCount++
		switch bill.Metal {
		case enum.MetalGold:
			summary.GoldBills++
		case enum.MetalSilver:
			summary.SilverBills++
		}
		summary.TotalSales += bill.Total
		summary.TotalGST += bill.GSTAmount
		summary.TotalPaid += bill.Paid
		summary.TotalDue += bill.Balance
	}

	return summary, nil
}
