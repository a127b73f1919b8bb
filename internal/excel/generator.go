package excel

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/nurpe/rentals/internal/model"
)

const (
	SummarySheet    = "Summary"
	PropertiesSheet = "Properties"
	AgreementsSheet = "Agreements"
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) Generate(report model.PortfolioReport) ([]byte, error) {
	file := excelize.NewFile()
	defer file.Close()

	if err := file.SetSheetName("Sheet1", SummarySheet); err != nil {
		return nil, err
	}
	g.writeSummary(file, report)

	if _, err := file.NewSheet(PropertiesSheet); err != nil {
		return nil, err
	}
	g.writeProperties(file, report.Properties)

	if _, err := file.NewSheet(AgreementsSheet); err != nil {
		return nil, err
	}
	g.writeAgreements(file, report.Agreements)

	file.SetActiveSheet(0)
	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *Generator) writeSummary(file *excelize.File, report model.PortfolioReport) {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(SummarySheet, cell, value)
	}

	available := 0
	for _, p := range report.Properties {
		if p.Available() {
			available++
		}
	}
	total := 0.0
	for _, a := range report.Agreements {
		total += a.TotalCost()
	}

	set("A1", "Generated at")
	set("B1", formatDateTime(report.GeneratedAt))
	set("A2", "Properties")
	set("B2", len(report.Properties))
	set("A3", "Available properties")
	set("B3", available)
	set("A4", "Tenants")
	set("B4", len(report.Tenants))
	set("A5", "Agreements")
	set("B5", len(report.Agreements))
	set("A6", "Agreements total")
	set("B6", formatAmount(total))

	_ = file.SetColWidth(SummarySheet, "A", "A", 24)
	_ = file.SetColWidth(SummarySheet, "B", "B", 20)
}

func (g *Generator) writeProperties(file *excelize.File, properties []model.Property) {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(PropertiesSheet, cell, value)
	}

	headers := []string{"ID", "Type", "Address", "Area, m2", "Monthly rate", "Available", "Details"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		set(cell, header)
	}

	for i, p := range properties {
		row := i + 2
		set(fmt.Sprintf("A%d", row), p.ID())
		set(fmt.Sprintf("B%d", row), string(p.Kind()))
		set(fmt.Sprintf("C%d", row), p.Address())
		set(fmt.Sprintf("D%d", row), p.Area())
		set(fmt.Sprintf("E%d", row), formatAmount(p.MonthlyRate()))
		set(fmt.Sprintf("F%d", row), yesNo(p.Available()))
		set(fmt.Sprintf("G%d", row), variantDetails(p))
	}

	_ = file.SetColWidth(PropertiesSheet, "A", "B", 16)
	_ = file.SetColWidth(PropertiesSheet, "C", "C", 40)
	_ = file.SetColWidth(PropertiesSheet, "D", "F", 14)
	_ = file.SetColWidth(PropertiesSheet, "G", "G", 24)
}

func (g *Generator) writeAgreements(file *excelize.File, agreements []*model.Agreement) {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(AgreementsSheet, cell, value)
	}

	headers := []string{"ID", "Tenant", "Email", "Property", "Start", "End", "Extras", "Total"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		set(cell, header)
	}

	for i, a := range agreements {
		row := i + 2
		set(fmt.Sprintf("A%d", row), a.ID())
		set(fmt.Sprintf("B%d", row), a.Tenant().Name())
		set(fmt.Sprintf("C%d", row), a.Tenant().Email())
		set(fmt.Sprintf("D%d", row), a.Property().Address())
		set(fmt.Sprintf("E%d", row), formatDate(a.StartDate()))
		set(fmt.Sprintf("F%d", row), formatDate(a.EndDate()))
		set(fmt.Sprintf("G%d", row), len(a.Extras()))
		set(fmt.Sprintf("H%d", row), formatAmount(a.TotalCost()))
	}

	_ = file.SetColWidth(AgreementsSheet, "A", "A", 8)
	_ = file.SetColWidth(AgreementsSheet, "B", "D", 32)
	_ = file.SetColWidth(AgreementsSheet, "E", "H", 14)
}

func variantDetails(p model.Property) string {
	switch v := p.(type) {
	case *model.Apartment:
		return fmt.Sprintf("rooms: %d", v.Rooms())
	case *model.House:
		return "garden: " + yesNo(v.HasGarden())
	case *model.CommercialSpace:
		return "business: " + v.BusinessType()
	default:
		return ""
	}
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}

func formatAmount(value float64) string {
	return fmt.Sprintf("%.2f", value)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

func formatDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02 15:04:05")
}
