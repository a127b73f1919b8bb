package service

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nurpe/rentals/internal/model"
)

func TestCreatePropertyAssignsIDs(t *testing.T) {
	f := newFixture(t)
	first := f.apartment(t, "10 Lenin St", 30000, 2)
	second := f.apartment(t, "7 Gorky St", 25000, 1)

	assert.Equal(t, 1, first.ID())
	assert.Equal(t, 2, second.ID())
	assert.Len(t, f.svc.ListProperties(), 2)
}

func TestCreatePropertyErrors(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.CreateProperty(CreatePropertyInput{Type: "castle", Address: "A", Area: 1})
	assert.ErrorIs(t, err, model.ErrUnknownType)

	garden := true
	_, err = f.svc.CreateProperty(CreatePropertyInput{Type: "house", Address: "A", Area: 0, HasGarden: &garden})
	assert.ErrorIs(t, err, model.ErrValidation)

	assert.Empty(t, f.svc.ListProperties())
	p := f.apartment(t, "A", 1, 1)
	assert.Equal(t, 1, p.ID())
}

func TestSearchProperties(t *testing.T) {
	f := newFixture(t)
	f.apartment(t, "10 Lenin St", 30000, 2)
	f.apartment(t, "7 Gorky St", 25000, 1)

	found := f.svc.SearchProperties("lenin")
	require.Len(t, found, 1)
	assert.Equal(t, "10 Lenin St", found[0].Address())
	assert.Len(t, f.svc.SearchProperties(""), 2)
	assert.Empty(t, f.svc.SearchProperties("Victory"))
}

func TestUpdatePropertyIsAllOrNothing(t *testing.T) {
	f := newFixture(t)
	p := f.apartment(t, "10 Lenin St", 30000, 2)

	rate := 35000.0
	area := -1.0
	_, err := f.svc.UpdateProperty(p.ID(), UpdatePropertyInput{MonthlyRate: &rate, Area: &area})
	assert.ErrorIs(t, err, model.ErrValidation)
	assert.Equal(t, 30000.0, p.MonthlyRate())
	assert.Equal(t, 45.0, p.Area())

	area = 50
	address := "12 Lenin St"
	updated, err := f.svc.UpdateProperty(p.ID(), UpdatePropertyInput{MonthlyRate: &rate, Area: &area, Address: &address})
	require.NoError(t, err)
	assert.Equal(t, 35000.0, updated.MonthlyRate())
	assert.Equal(t, 50.0, updated.Area())
	assert.Equal(t, "12 Lenin St", updated.Address())

	_, err = f.svc.UpdateProperty(99, UpdatePropertyInput{MonthlyRate: &rate})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdatePropertyTrimsAddress(t *testing.T) {
	f := newFixture(t)
	p := f.apartment(t, "10 Lenin St", 30000, 2)

	blank := "   "
	_, err := f.svc.UpdateProperty(p.ID(), UpdatePropertyInput{Address: &blank})
	assert.ErrorIs(t, err, model.ErrValidation)
	assert.Equal(t, "10 Lenin St", p.Address())

	padded := "  14 Lenin St "
	updated, err := f.svc.UpdateProperty(p.ID(), UpdatePropertyInput{Address: &padded})
	require.NoError(t, err)
	assert.Equal(t, "14 Lenin St", updated.Address())
}

func TestUpdatePropertyRejectsNonFiniteNumbers(t *testing.T) {
	f := newFixture(t)
	p := f.apartment(t, "10 Lenin St", 30000, 2)

	rate := math.NaN()
	_, err := f.svc.UpdateProperty(p.ID(), UpdatePropertyInput{MonthlyRate: &rate})
	assert.ErrorIs(t, err, model.ErrValidation)
	area := math.Inf(1)
	_, err = f.svc.UpdateProperty(p.ID(), UpdatePropertyInput{Area: &area})
	assert.ErrorIs(t, err, model.ErrValidation)
	assert.Equal(t, 30000.0, p.MonthlyRate())
	assert.Equal(t, 45.0, p.Area())
}

func TestDeleteProperty(t *testing.T) {
	f := newFixture(t)
	p := f.apartment(t, "10 Lenin St", 30000, 2)
	tenant := f.tenant(t, "Ivan")
	agreement, err := f.svc.CreateAgreement(CreateAgreementInput{
		PropertyID: p.ID(), TenantID: tenant.ID(),
		StartDate: date(2025, 1, 1), EndDate: date(2025, 7, 1), Months: 6,
	})
	require.NoError(t, err)

	require.NoError(t, f.svc.DeleteProperty(p.ID()))
	assert.ErrorIs(t, f.svc.DeleteProperty(p.ID()), ErrNotFound)
	_, err = f.svc.GetProperty(p.ID())
	assert.ErrorIs(t, err, ErrNotFound)

	// The agreement keeps working on its own reference.
	total, err := f.svc.CalculateTotal(agreement.ID(), 1)
	require.NoError(t, err)
	assert.InDelta(t, 30000, total, 1e-6)
}

func TestAnalyzeProperties(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.AnalyzeProperties()
	assert.ErrorIs(t, err, ErrNotFound)

	f.apartment(t, "Mid", 30000, 1)
	f.apartment(t, "Top", 90000, 3)
	f.apartment(t, "Low", 10000, 1)

	analysis, err := f.svc.AnalyzeProperties()
	require.NoError(t, err)
	assert.Equal(t, "Top", analysis.MostExpensive.Address())
	assert.Equal(t, "Low", analysis.Cheapest.Address())
}

func TestCreateTenant(t *testing.T) {
	f := newFixture(t)
	tenant, err := f.svc.CreateTenant(CreateTenantInput{Name: " Ivan ", Email: "ivan@example.com", Phone: "+7999"})
	require.NoError(t, err)
	assert.Equal(t, "Ivan", tenant.Name())

	_, err = f.svc.CreateTenant(CreateTenantInput{Name: "Maria"})
	assert.ErrorIs(t, err, model.ErrValidation)

	got, err := f.svc.GetTenant(1)
	require.NoError(t, err)
	assert.Same(t, tenant, got)
	_, err = f.svc.GetTenant(2)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Len(t, f.svc.ListTenants(), 1)
}

func TestCreateAgreementScenario(t *testing.T) {
	f := newFixture(t)
	p := f.apartment(t, "10 Lenin St", 30000, 2)
	tenant := f.tenant(t, "Ivan Ivanov")

	agreement, err := f.svc.CreateAgreement(CreateAgreementInput{
		PropertyID: p.ID(),
		TenantID:   tenant.ID(),
		StartDate:  date(2025, 1, 1),
		EndDate:    date(2026, 1, 1),
		Months:     12,
		Extras:     []model.Extra{{Name: "Cleaning", Price: 2000}},
	})
	require.NoError(t, err)
	assert.InDelta(t, 326000, agreement.TotalCost(), 1e-6)
	assert.Contains(t, f.events.notifications, "rental of 10 Lenin St confirmed for Ivan Ivanov")

	report, err := f.svc.AgreementReport(agreement.ID())
	require.NoError(t, err)
	assert.Contains(t, report, "Total: 326000.00")
}

func TestCreateAgreementErrors(t *testing.T) {
	f := newFixture(t)
	p := f.apartment(t, "10 Lenin St", 30000, 2)
	tenant := f.tenant(t, "Ivan")

	base := CreateAgreementInput{PropertyID: p.ID(), TenantID: tenant.ID(), StartDate: date(2025, 1, 1), EndDate: date(2025, 6, 1), Months: 5}

	in := base
	in.Months = 0
	_, err := f.svc.CreateAgreement(in)
	assert.ErrorIs(t, err, ErrInvalidInput)

	in = base
	in.PropertyID = 42
	_, err = f.svc.CreateAgreement(in)
	assert.ErrorIs(t, err, ErrNotFound)

	in = base
	in.TenantID = 42
	_, err = f.svc.CreateAgreement(in)
	assert.ErrorIs(t, err, ErrNotFound)

	in = base
	in.StartDate, in.EndDate = in.EndDate, in.StartDate
	_, err = f.svc.CreateAgreement(in)
	assert.ErrorIs(t, err, model.ErrValidation)

	assert.Empty(t, f.svc.ListAgreements())
}

func TestAgreementExtras(t *testing.T) {
	f := newFixture(t)
	p := f.apartment(t, "10 Lenin St", 30000, 2)
	tenant := f.tenant(t, "Ivan")
	agreement, err := f.svc.CreateAgreement(CreateAgreementInput{
		PropertyID: p.ID(), TenantID: tenant.ID(),
		StartDate: date(2025, 1, 1), EndDate: date(2025, 2, 1), Months: 1,
	})
	require.NoError(t, err)

	require.NoError(t, f.svc.AddExtra(agreement.ID(), "Internet", 1500))
	assert.ErrorIs(t, f.svc.AddExtra(agreement.ID(), " ", 10), ErrInvalidInput)
	assert.ErrorIs(t, f.svc.AddExtra(99, "Internet", 1500), ErrNotFound)

	total, err := f.svc.CalculateTotal(agreement.ID(), 1)
	require.NoError(t, err)
	assert.InDelta(t, 31500, total, 1e-6)

	require.NoError(t, f.svc.RemoveExtra(agreement.ID(), "Internet"))
	total, err = f.svc.CalculateTotal(agreement.ID(), 1)
	require.NoError(t, err)
	assert.InDelta(t, 30000, total, 1e-6)

	_, err = f.svc.CalculateTotal(agreement.ID(), -3)
	assert.ErrorIs(t, err, model.ErrValidation)
}

func TestRentAgreementRequiresManager(t *testing.T) {
	f := newFixture(t)
	p := f.apartment(t, "10 Lenin St", 30000, 2)
	tenant := f.tenant(t, "Ivan")
	agreement, err := f.svc.CreateAgreement(CreateAgreementInput{
		PropertyID: p.ID(), TenantID: tenant.ID(),
		StartDate: date(2025, 1, 1), EndDate: date(2025, 2, 1), Months: 1,
	})
	require.NoError(t, err)

	err = f.svc.RentAgreement(model.Principal{Role: model.RoleGuest}, agreement.ID())
	assert.ErrorIs(t, err, ErrPermissionDenied)
	assert.True(t, p.Available())

	require.NoError(t, f.svc.RentAgreement(manager, agreement.ID()))
	assert.False(t, p.Available())
	assert.ErrorIs(t, f.svc.RentAgreement(manager, 99), ErrNotFound)
}
