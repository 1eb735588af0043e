package register

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

const sheet = "Bills"

var header = []string{"Date", "Bill No", "Customer", "Mobile", "Metal", "Purity", "GST", "Making", "Discount", "Total", "Paid", "Balance"}

// Row is one register line for a completed sale.
type Row struct {
	Date         string
	BillNo       string
	Customer     string
	Mobile       string
	Metal        string
	PurityLabel  string
	GSTAmount    float64
	MakingAmount float64
	Discount     float64
	Total        float64
	Paid         float64
	Balance      float64
}

// Register appends completed sales to an XLSX workbook, keeping a rotating
// set of backup copies. It is a best-effort bookkeeping aid with no
// consistency relationship to the bill records table.
type Register struct {
	path    string
	backups int
}

// New creates a register writing to path, keeping up to backups rotated
// copies of the previous file on every append.
func New(path string, backups int) *Register {
	return &Register{path: path, backups: backups}
}

// Append writes one row to the register, creating the workbook with a
// header row on first use.
func (r *Register) Append(row Row) error {
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return fmt.Errorf("register: failed to create dir: %w", err)
	}

	f, nextRow, err := r.open()
	if err != nil {
		return err
	}
	defer f.Close()

	cell, err := excelize.CoordinatesToCellName(1, nextRow)
	if err != nil {
		return fmt.Errorf("register: %w", err)
	}
	values := []interface{}{
		row.Date, row.BillNo, row.Customer, row.Mobile, row.Metal, row.PurityLabel,
		row.GSTAmount, row.MakingAmount, row.Discount, row.Total, row.Paid, row.Balance,
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("register: failed to set row: %w", err)
	}

	r.rotateBackups()

	if err := f.SaveAs(r.path); err != nil {
		return fmt.Errorf("register: failed to save %s: %w", r.path, err)
	}
	return nil
}

func (r *Register) open() (*excelize.File, int, error) {
	if _, err := os.Stat(r.path); os.IsNotExist(err) {
		f := excelize.NewFile()
		index, err := f.NewSheet(sheet)
		if err != nil {
			return nil, 0, fmt.Errorf("register: %w", err)
		}
		f.SetActiveSheet(index)
		_ = f.DeleteSheet("Sheet1")
		head := make([]interface{}, len(header))
		for i, h := range header {
			head[i] = h
		}
		if err := f.SetSheetRow(sheet, "A1", &head); err != nil {
			return nil, 0, fmt.Errorf("register: failed to write header: %w", err)
		}
		return f, 2, nil
	}

	f, err := excelize.OpenFile(r.path)
	if err != nil {
		return nil, 0, fmt.Errorf("register: failed to open %s: %w", r.path, err)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		f.Close()
		return nil, 0, fmt.Errorf("register: failed to read %s: %w", r.path, err)
	}
	return f, len(rows) + 1, nil
}

// rotateBackups shifts path.bak1..bakN down one slot and snapshots the
// current file into .bak1. Failures are ignored: losing a backup copy never
// blocks recording the sale.
func (r *Register) rotateBackups() {
	if r.backups < 1 {
		return
	}
	if _, err := os.Stat(r.path); err != nil {
		return
	}
	for i := r.backups - 1; i >= 1; i-- {
		src := fmt.Sprintf("%s.bak%d", r.path, i)
		dst := fmt.Sprintf("%s.bak%d", r.path, i+1)
		_ = os.Rename(src, dst)
	}
	_ = copyFile(r.path, r.path+".bak1")
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, in)
	return err
}
