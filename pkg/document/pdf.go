package document

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

type pdfRenderer struct {
	outputDir string
}

// NewPDFRenderer creates a renderer that writes A4 PDF bills into outputDir.
// The directory is created if it does not exist.
func NewPDFRenderer(outputDir string) (Renderer, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("document: failed to create output dir %s: %w", outputDir, err)
	}
	return &pdfRenderer{outputDir: outputDir}, nil
}

func (r *pdfRenderer) Render(inv *Invoice) (string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	// Shop header
	pdf.SetFont("Arial", "B", 18)
	pdf.CellFormat(0, 10, inv.ShopName, "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 5, inv.ShopAddress, "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 5, fmt.Sprintf("GST: %s | Mob: %s", inv.ShopGSTIN, inv.ShopMobile), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	// Customer and bill info
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(95, 6, "Customer: "+inv.Customer, "", 0, "L", false, 0, "")
	pdf.CellFormat(95, 6, "Date: "+inv.Date, "", 1, "L", false, 0, "")
	pdf.CellFormat(95, 6, "Mobile: "+inv.Mobile, "B", 0, "L", false, 0, "")
	pdf.CellFormat(95, 6, fmt.Sprintf("Metal: %s (%s)", inv.Metal, inv.CaratLabel), "B", 1, "L", false, 0, "")
	pdf.Ln(6)

	// Items table
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(0, 6, "Purchase Details:", "", 1, "L", false, 0, "")
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(140, 7, "Item Description", "1", 0, "L", true, 0, "")
	pdf.CellFormat(50, 7, "Weight (gm)", "1", 1, "C", true, 0, "")
	pdf.SetFont("Arial", "", 10)
	for _, item := range inv.Items {
		pdf.CellFormat(140, 7, item.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(50, 7, fmt.Sprintf("%.3f", item.Weight), "1", 1, "C", false, 0, "")
	}
	pdf.Ln(8)

	// Summary grid
	pdf.SetFont("Arial", "", 10)
	summary := [][2]string{
		{"Net Weight:", fmt.Sprintf("%.3f g", inv.NetWeight)},
		{"Applied Rate:", "Rs. " + inv.DisplayRate},
		{"Old Weight:", fmt.Sprintf("- %.3f g", inv.OldWeight)},
		{"GST Amount:", fmt.Sprintf("Rs. %.2f", inv.GSTAmount)},
		{"Discount:", fmt.Sprintf("- Rs. %.2f", inv.Discount)},
		{"Making Charges:", fmt.Sprintf("Rs. %.2f", inv.MakingAmount)},
	}
	for i := 0; i < len(summary); i += 2 {
		pdf.CellFormat(47, 7, summary[i][0], "1", 0, "L", false, 0, "")
		pdf.CellFormat(48, 7, summary[i][1], "1", 0, "R", false, 0, "")
		pdf.CellFormat(47, 7, summary[i+1][0], "1", 0, "L", false, 0, "")
		pdf.CellFormat(48, 7, summary[i+1][1], "1", 1, "R", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(47, 8, "TOTAL AMOUNT:", "", 0, "L", false, 0, "")
	pdf.CellFormat(48, 8, fmt.Sprintf("Rs. %.2f", inv.Total), "", 0, "R", false, 0, "")
	pdf.CellFormat(47, 8, "PAID:", "", 0, "L", false, 0, "")
	pdf.CellFormat(48, 8, fmt.Sprintf("Rs. %.2f", inv.Paid), "", 1, "R", false, 0, "")
	pdf.SetTextColor(200, 0, 0)
	pdf.CellFormat(95, 8, "", "", 0, "L", false, 0, "")
	pdf.CellFormat(47, 8, "BALANCE DUE:", "", 0, "L", false, 0, "")
	pdf.CellFormat(48, 8, fmt.Sprintf("Rs. %.2f", inv.Balance), "", 1, "R", false, 0, "")
	pdf.SetTextColor(0, 0, 0)

	// Signature block
	pdf.Ln(30)
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 5, "__________________________", "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5, "Authorized Signatory", "", 1, "L", false, 0, "")

	path := filepath.Join(r.outputDir, fmt.Sprintf("Bill_%s.pdf", sanitizeName(inv.Customer)))
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("document: failed to write %s: %w", path, err)
	}
	return path, nil
}

// sanitizeName strips path separators so a customer name cannot escape the
// output directory.
func sanitizeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "Customer"
	}
	replacer := strings.NewReplacer("/", "_", "\\", "_", "..", "_", " ", "_")
	return replacer.Replace(name)
}
