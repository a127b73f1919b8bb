package service

import (
	"fmt"
	"strings"

	"github.com/nurpe/rentals/internal/model"
)

type ExportResult struct {
	FileName string
	Content  []byte
}

func (s *RentalService) ExportPortfolio() (*ExportResult, error) {
	report := model.PortfolioReport{
		GeneratedAt: s.now().UTC(),
		Properties:  s.properties.List(),
		Tenants:     s.tenants.List(),
		Agreements:  s.agreements.List(),
	}

	content, err := s.excel.Generate(report)
	if err != nil {
		return nil, fmt.Errorf("generate portfolio workbook: %w", err)
	}

	s.log.Info().
		Int("properties", len(report.Properties)).
		Int("agreements", len(report.Agreements)).
		Msg("portfolio exported")
	return &ExportResult{
		FileName: buildFileName("portfolio", report.GeneratedAt.Format("20060102"), "xlsx"),
		Content:  content,
	}, nil
}

func (s *RentalService) ExportAgreementPDF(agreementID int) (*ExportResult, error) {
	a, err := s.GetAgreement(agreementID)
	if err != nil {
		return nil, err
	}

	content, err := s.pdf.Generate(model.AgreementDocument{
		Agreement:   a,
		GeneratedAt: s.now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("generate agreement document: %w", err)
	}

	s.log.Info().Int("agreement_id", a.ID()).Msg("agreement exported")
	suffix := fmt.Sprintf("%d-%s", a.ID(), sanitizeFileName(a.Tenant().Name()))
	return &ExportResult{
		FileName: buildFileName("agreement", suffix, "pdf"),
		Content:  content,
	}, nil
}

func buildFileName(kind, suffix, ext string) string {
	suffix = strings.Trim(suffix, "-")
	if suffix == "" {
		return fmt.Sprintf("rentals-%s.%s", kind, ext)
	}
	return fmt.Sprintf("rentals-%s-%s.%s", kind, suffix, ext)
}

func sanitizeFileName(input string) string {
	result := make([]rune, 0, len(input))
	for _, r := range input {
		switch {
		case r >= 'a' && r <= 'z':
			result = append(result, r)
		case r >= 'A' && r <= 'Z':
			result = append(result, r)
		case r >= '0' && r <= '9':
			result = append(result, r)
		case r == '-', r == '_':
			result = append(result, r)
		default:
			result = append(result, '-')
		}
	}
	return strings.Trim(string(result), "-")
}
