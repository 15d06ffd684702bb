package report

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/Marym-Saleh/jrp-planner/internal/solver"
)

var pdfColumns = []string{
	"ID",
	"Multiplier (m)",
	"Cycle (Ti)",
	"Setup ($)",
	"Holding ($)",
	"Total ($)",
}

// RenderPDF produces a paginated report: title, T* and total-cost summary
// lines, and the full policy grid.
func RenderPDF(policy solver.Policy) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, fmt.Sprintf("Joint Replenishment Report: %s", policy.InstanceName),
		"", 1, "C", false, 0, "")
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 10, fmt.Sprintf("System T*: %.5f", policy.BaseCycle), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 10, fmt.Sprintf("Total Annual Cost: $%.2f", policy.TotalCost), "", 1, "L", false, 0, "")
	pdf.Ln(5)

	pdf.SetFont("Arial", "B", 8)
	for _, col := range pdfColumns {
		pdf.CellFormat(32, 10, col, "1", 0, "", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 8)
	for _, item := range policy.Items {
		cells := []string{
			item.ID,
			fmt.Sprintf("%d", item.Multiplier),
			fmt.Sprintf("%.5f", item.Cycle),
			fmt.Sprintf("%.2f", item.SetupCost),
			fmt.Sprintf("%.2f", item.HoldingCost),
			fmt.Sprintf("%.2f", item.TotalCost),
		}
		for _, cell := range cells {
			pdf.CellFormat(32, 10, cell, "1", 0, "", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render PDF: %w", err)
	}
	return buf.Bytes(), nil
}
