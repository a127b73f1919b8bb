package service

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/nurpe/rentals/internal/model"
	"github.com/nurpe/rentals/internal/repository"
)

type ExcelGenerator interface {
	Generate(report model.PortfolioReport) ([]byte, error)
}

type PDFGenerator interface {
	Generate(doc model.AgreementDocument) ([]byte, error)
}

type RentalService struct {
	properties *repository.PropertyRepository
	tenants    *repository.TenantRepository
	agreements *repository.AgreementRepository
	events     model.Events
	excel      ExcelGenerator
	pdf        PDFGenerator
	approvals  Approver
	log        zerolog.Logger
	now        func() time.Time
}

func NewRentalService(
	properties *repository.PropertyRepository,
	tenants *repository.TenantRepository,
	agreements *repository.AgreementRepository,
	events model.Events,
	excel ExcelGenerator,
	pdf PDFGenerator,
	log zerolog.Logger,
) *RentalService {
	if events == nil {
		events = model.NopEvents
	}
	return &RentalService{
		properties: properties,
		tenants:    tenants,
		agreements: agreements,
		events:     events,
		excel:      excel,
		pdf:        pdf,
		approvals:  NewApprovalChain(),
		log:        log.With().Str("component", "rental_service").Logger(),
		now:        time.Now,
	}
}

type CreatePropertyInput struct {
	Type         string
	Address      string
	Area         float64
	MonthlyRate  float64
	Rooms        *int
	HasGarden    *bool
	BusinessType *string
}

func (s *RentalService) CreateProperty(input CreatePropertyInput) (model.Property, error) {
	p, err := model.NewProperty(input.Type, model.Fields{
		ID:           s.properties.NextID(),
		Address:      strings.TrimSpace(input.Address),
		Area:         input.Area,
		MonthlyRate:  input.MonthlyRate,
		Rooms:        input.Rooms,
		HasGarden:    input.HasGarden,
		BusinessType: input.BusinessType,
	}, s.events)
	if err != nil {
		return nil, err
	}
	s.properties.Save(p)
	s.log.Info().
		Int("property_id", p.ID()).
		Str("type", p.Kind().Tag()).
		Str("address", p.Address()).
		Msg("property created")
	return p, nil
}

func (s *RentalService) ListProperties() []model.Property {
	return s.properties.List()
}

func (s *RentalService) GetProperty(id int) (model.Property, error) {
	p, err := s.properties.Get(id)
	if err != nil {
		return nil, notFound(err, "property", id)
	}
	return p, nil
}

func (s *RentalService) SearchProperties(query string) []model.Property {
	return s.properties.SearchByAddress(query)
}

type UpdatePropertyInput struct {
	Address     *string
	Area        *float64
	MonthlyRate *float64
}

// UpdateProperty applies every provided field or none of them.
func (s *RentalService) UpdateProperty(id int, input UpdatePropertyInput) (model.Property, error) {
	p, err := s.GetProperty(id)
	if err != nil {
		return nil, err
	}

	if input.Address != nil {
		address := strings.TrimSpace(*input.Address)
		input.Address = &address
		if err := model.ValidateAddress(address); err != nil {
			return nil, err
		}
	}
	if input.Area != nil {
		if err := model.ValidateArea(*input.Area); err != nil {
			return nil, err
		}
	}
	if input.MonthlyRate != nil {
		if err := model.ValidateMonthlyRate(*input.MonthlyRate); err != nil {
			return nil, err
		}
	}

	if input.Address != nil {
		if err := p.SetAddress(*input.Address); err != nil {
			return nil, err
		}
	}
	if input.Area != nil {
		if err := p.SetArea(*input.Area); err != nil {
			return nil, err
		}
	}
	if input.MonthlyRate != nil {
		if err := p.SetMonthlyRate(*input.MonthlyRate); err != nil {
			return nil, err
		}
	}

	s.log.Info().Int("property_id", id).Msg("property updated")
	return p, nil
}

// DeleteProperty removes the listing from the catalogue. Agreements that reference
// it keep their own reference.
func (s *RentalService) DeleteProperty(id int) error {
	if err := s.properties.Delete(id); err != nil {
		return notFound(err, "property", id)
	}
	s.log.Info().
		Int("property_id", id).
		Int("agreements", len(s.agreements.ListByProperty(id))).
		Msg("property deleted")
	return nil
}

type PropertyAnalysis struct {
	MostExpensive model.Property
	Cheapest      model.Property
}

func (s *RentalService) AnalyzeProperties() (*PropertyAnalysis, error) {
	list := s.properties.List()
	if len(list) == 0 {
		return nil, fmt.Errorf("%w: no properties to analyze", ErrNotFound)
	}
	return &PropertyAnalysis{
		MostExpensive: slices.MaxFunc(list, model.Compare),
		Cheapest:      slices.MinFunc(list, model.Compare),
	}, nil
}

type CreateTenantInput struct {
	Name  string
	Email string
	Phone string
}

func (s *RentalService) CreateTenant(input CreateTenantInput) (*model.Tenant, error) {
	t, err := model.NewTenant(
		s.tenants.NextID(),
		strings.TrimSpace(input.Name),
		strings.TrimSpace(input.Email),
		strings.TrimSpace(input.Phone),
	)
	if err != nil {
		return nil, err
	}
	s.tenants.Save(t)
	s.log.Info().Int("tenant_id", t.ID()).Str("name", t.Name()).Msg("tenant created")
	return t, nil
}

func (s *RentalService) ListTenants() []*model.Tenant {
	return s.tenants.List()
}

func (s *RentalService) GetTenant(id int) (*model.Tenant, error) {
	t, err := s.tenants.Get(id)
	if err != nil {
		return nil, notFound(err, "tenant", id)
	}
	return t, nil
}

type CreateAgreementInput struct {
	PropertyID int
	TenantID   int
	StartDate  time.Time
	EndDate    time.Time
	Months     int
	Extras     []model.Extra
}

// CreateAgreement forms an agreement and prices it for input.Months. Nothing is
// stored when pricing fails.
func (s *RentalService) CreateAgreement(input CreateAgreementInput) (*model.Agreement, error) {
	if input.Months <= 0 {
		return nil, fmt.Errorf("%w: months must be positive", ErrInvalidInput)
	}
	p, err := s.GetProperty(input.PropertyID)
	if err != nil {
		return nil, err
	}
	t, err := s.GetTenant(input.TenantID)
	if err != nil {
		return nil, err
	}

	a, err := model.NewAgreement(s.agreements.NextID(), t, p, input.StartDate, input.EndDate, s.events)
	if err != nil {
		return nil, err
	}
	for _, extra := range input.Extras {
		a.AddExtra(extra.Name, extra.Price)
	}
	total, err := a.CalculateTotal(input.Months)
	if err != nil {
		return nil, err
	}
	s.agreements.Save(a)

	s.log.Info().
		Int("agreement_id", a.ID()).
		Int("property_id", p.ID()).
		Int("tenant_id", t.ID()).
		Int("months", input.Months).
		Float64("total", total).
		Msg("agreement created")
	return a, nil
}

func (s *RentalService) ListAgreements() []*model.Agreement {
	return s.agreements.List()
}

func (s *RentalService) GetAgreement(id int) (*model.Agreement, error) {
	a, err := s.agreements.Get(id)
	if err != nil {
		return nil, notFound(err, "agreement", id)
	}
	return a, nil
}

func (s *RentalService) AddExtra(agreementID int, name string, price float64) error {
	a, err := s.GetAgreement(agreementID)
	if err != nil {
		return err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: extra name is required", ErrInvalidInput)
	}
	a.AddExtra(name, price)
	return nil
}

func (s *RentalService) RemoveExtra(agreementID int, name string) error {
	a, err := s.GetAgreement(agreementID)
	if err != nil {
		return err
	}
	a.RemoveExtra(strings.TrimSpace(name))
	return nil
}

func (s *RentalService) CalculateTotal(agreementID, months int) (float64, error) {
	a, err := s.GetAgreement(agreementID)
	if err != nil {
		return 0, err
	}
	return a.CalculateTotal(months)
}

func (s *RentalService) AgreementReport(agreementID int) (string, error) {
	a, err := s.GetAgreement(agreementID)
	if err != nil {
		return "", err
	}
	return a.Report(), nil
}

// RentAgreement activates an agreement. Only managers may do so.
func (s *RentalService) RentAgreement(principal model.Principal, agreementID int) error {
	if !principal.IsManager() {
		return ErrPermissionDenied
	}
	a, err := s.GetAgreement(agreementID)
	if err != nil {
		return err
	}
	a.Rent()
	s.log.Info().
		Int("agreement_id", a.ID()).
		Int("property_id", a.Property().ID()).
		Msg("agreement activated")
	return nil
}

func notFound(err error, entity string, id int) error {
	if errors.Is(err, repository.ErrRecordNotFound) {
		return fmt.Errorf("%w: %s %d", ErrNotFound, entity, id)
	}
	return err
}
