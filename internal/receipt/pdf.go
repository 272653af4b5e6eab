package receipt

import (
	"fmt"
	"io"
	"time"

	"wave-estimates-backend/internal/models"
	"wave-estimates-backend/internal/money"

	"github.com/jung-kurt/gofpdf"
)

// Filename is the attachment name used when serving the receipt.
func Filename(est *models.Estimate) string {
	return fmt.Sprintf("estimate-%s.pdf", est.Number)
}

// Render writes a one-page A4 receipt for est. Customer and LineItems must be
// loaded.
func Render(w io.Writer, est *models.Estimate, generatedAt time.Time) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	// --- Header ---
	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(190, 10, "ESTIMATE")
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(95, 6, "Estimate No: "+tr(est.Number))
	pdf.Cell(95, 6, "Status: "+tr(est.Status))
	pdf.Ln(6)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(95, 6, "Date: "+tr(est.Date))
	pdf.Cell(95, 6, "Valid Until: "+tr(est.ValidUntil))
	pdf.Ln(10)

	// --- Bill to ---
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(190, 8, "Bill To")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 10)
	if est.Customer != nil {
		pdf.Cell(190, 6, tr(est.Customer.Name))
		pdf.Ln(6)
		if est.Customer.Email != "" {
			pdf.Cell(190, 6, tr(est.Customer.Email))
			pdf.Ln(6)
		}
		if est.Customer.Phone != "" {
			pdf.Cell(190, 6, tr(est.Customer.Phone))
			pdf.Ln(6)
		}
	} else {
		pdf.Cell(190, 6, "-")
		pdf.Ln(6)
	}
	pdf.Ln(6)

	// --- Lines ---
	pdf.SetFont("Arial", "B", 11)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(55, 8, "Item", "1", 0, "L", true, 0, "")
	pdf.CellFormat(55, 8, "Description", "1", 0, "L", true, 0, "")
	pdf.CellFormat(20, 8, "Qty", "1", 0, "C", true, 0, "")
	pdf.CellFormat(30, 8, "Price", "1", 0, "C", true, 0, "")
	pdf.CellFormat(30, 8, "Subtotal", "1", 1, "C", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	for _, li := range est.LineItems {
		pdf.CellFormat(55, 8, tr(li.Name), "1", 0, "L", false, 0, "")
		pdf.CellFormat(55, 8, tr(li.Description), "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, 8, fmt.Sprintf("%d", li.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(30, 8, money.FormatFloat(li.Price), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 8, money.Format(li.Subtotal()), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(5)

	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(160, 8, "Total")
	pdf.CellFormat(30, 8, money.Format(est.Total()), "1", 1, "R", false, 0, "")

	if est.Notes != "" {
		pdf.Ln(8)
		pdf.SetFont("Arial", "B", 11)
		pdf.Cell(190, 8, "Notes:")
		pdf.Ln(6)
		pdf.SetFont("Arial", "", 10)
		pdf.MultiCell(190, 6, tr(est.Notes), "", "L", false)
	}

	// --- Footer ---
	pdf.SetY(-20)
	pdf.SetFont("Arial", "I", 8)
	pdf.Cell(190, 6, "Generated on: "+generatedAt.Format("2006-01-02 15:04:05"))

	return pdf.Output(w)
}
