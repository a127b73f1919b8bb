package pdf

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/nurpe/rentals/internal/model"
)

type Generator struct {
	fontName string
	fontData []byte
	compress bool
}

// NewGenerator renders with the core Helvetica font, which only covers cp1252.
func NewGenerator() *Generator {
	return &Generator{fontName: "Helvetica", compress: true}
}

// NewUTF8Generator embeds the TrueType font at fontFile so any script prints.
func NewUTF8Generator(fontFile string) (*Generator, error) {
	data, err := os.ReadFile(fontFile)
	if err != nil {
		return nil, fmt.Errorf("read pdf font: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("font data is empty")
	}
	return &Generator{fontName: "Body", fontData: data, compress: true}, nil
}

func (g *Generator) Generate(doc model.AgreementDocument) ([]byte, error) {
	if doc.Agreement == nil {
		return nil, fmt.Errorf("agreement is required")
	}
	a := doc.Agreement

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(g.compress)
	pdf.SetMargins(15, 15, 15)
	pdf.SetTitle(fmt.Sprintf("Rental agreement #%d", a.ID()), true)
	tr := func(s string) string { return s }
	if g.fontData != nil {
		pdf.AddUTF8FontFromBytes(g.fontName, "", g.fontData)
		pdf.AddUTF8FontFromBytes(g.fontName, "B", g.fontData)
	} else {
		tr = pdf.UnicodeTranslatorFromDescriptor("")
	}
	if err := pdf.Error(); err != nil {
		return nil, err
	}
	pdf.AddPage()

	pdf.SetFont(g.fontName, "B", 14)
	pdf.CellFormat(0, 10, fmt.Sprintf("Rental agreement #%d", a.ID()), "", 1, "C", false, 0, "")
	pdf.SetFont(g.fontName, "", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("Issued %s", formatDate(doc.GeneratedAt)), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	tenant := a.Tenant()
	addBlock(pdf, g.fontName, "Tenant", []string{
		tr(tenant.Name()),
		fmt.Sprintf("Email: %s", tr(safeValue(tenant.Email()))),
		fmt.Sprintf("Phone: %s", tr(safeValue(tenant.Phone()))),
	})
	pdf.Ln(2)

	p := a.Property()
	addBlock(pdf, g.fontName, "Property", []string{
		fmt.Sprintf("%s #%d", p.Kind(), p.ID()),
		fmt.Sprintf("Address: %s", tr(p.Address())),
		fmt.Sprintf("Area: %s m2", formatAmount(p.Area(), 1)),
		fmt.Sprintf("Monthly rate: %s", formatAmount(p.MonthlyRate(), 2)),
	})
	pdf.Ln(2)

	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 8, "Rental period", "", 1, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("from %s to %s", formatDate(a.StartDate()), formatDate(a.EndDate())), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 8, "Cost", "", 1, "L", false, 0, "")

	colWidths := []float64{130, 50}
	drawTableRow(pdf, g.fontName, []string{"Item", "Amount"}, colWidths, true)
	drawTableRow(pdf, g.fontName, []string{"Rent", formatAmount(a.RentCost(), 2)}, colWidths, false)
	for _, extra := range a.Extras() {
		drawTableRow(pdf, g.fontName, []string{tr(extra.Name), formatAmount(extra.Price, 2)}, colWidths, false)
	}

	pdf.Ln(2)
	pdf.SetFont(g.fontName, "B", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("Total: %s", formatAmount(a.TotalCost(), 2)), "", 1, "R", false, 0, "")

	pdf.Ln(6)
	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 8, "Signatures", "", 1, "L", false, 0, "")
	signatureBlock(pdf, g.fontName, "Landlord", "")
	signatureBlock(pdf, g.fontName, "Tenant", tr(tenant.Name()))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func addBlock(pdf *gofpdf.Fpdf, fontName, title string, lines []string) {
	pdf.SetFont(fontName, "B", 11)
	pdf.CellFormat(0, 6, title, "", 1, "L", false, 0, "")
	pdf.SetFont(fontName, "", 10)
	for _, line := range lines {
		pdf.MultiCell(0, 5, line, "", "L", false)
	}
}

func drawTableRow(pdf *gofpdf.Fpdf, fontName string, cols []string, widths []float64, header bool) {
	style := ""
	if header {
		style = "B"
	}
	pdf.SetFont(fontName, style, 10)
	for i, col := range cols {
		align := "L"
		if i > 0 {
			align = "R"
		}
		pdf.CellFormat(widths[i], 8, col, "1", 0, align, false, 0, "")
	}
	pdf.Ln(-1)
}

func signatureBlock(pdf *gofpdf.Fpdf, fontName, label, name string) {
	pdf.SetFont(fontName, "", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("%s: ______________________ /%s/", label, safeValue(name)), "", 1, "L", false, 0, "")
}

func safeValue(value string) string {
	if strings.TrimSpace(value) == "" {
		return "-"
	}
	return value
}

func formatAmount(value float64, precision int) string {
	format := fmt.Sprintf("%%.%df", precision)
	return fmt.Sprintf(format, value)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02")
}
