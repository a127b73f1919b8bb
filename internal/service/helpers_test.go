package service

import (
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/nurpe/rentals/internal/model"
	"github.com/nurpe/rentals/internal/repository"
)

type recordingEvents struct {
	logs          []string
	notifications []string
}

func (r *recordingEvents) Log(message string)    { r.logs = append(r.logs, message) }
func (r *recordingEvents) Notify(message string) { r.notifications = append(r.notifications, message) }

type fakeExcel struct {
	report model.PortfolioReport
	err    error
}

func (f *fakeExcel) Generate(report model.PortfolioReport) ([]byte, error) {
	f.report = report
	if f.err != nil {
		return nil, f.err
	}
	return []byte("xlsx"), nil
}

type fakePDF struct {
	doc model.AgreementDocument
}

func (f *fakePDF) Generate(doc model.AgreementDocument) ([]byte, error) {
	f.doc = doc
	return []byte("pdf"), nil
}

var errGenerate = errors.New("generate failed")

type fixture struct {
	svc    *RentalService
	events *recordingEvents
	excel  *fakeExcel
	pdf    *fakePDF
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{events: &recordingEvents{}, excel: &fakeExcel{}, pdf: &fakePDF{}}
	f.svc = NewRentalService(
		repository.NewPropertyRepository(),
		repository.NewTenantRepository(),
		repository.NewAgreementRepository(),
		f.events,
		f.excel,
		f.pdf,
		zerolog.Nop(),
	)
	f.svc.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	return f
}

func (f *fixture) apartment(t *testing.T, address string, rate float64, rooms int) model.Property {
	t.Helper()
	p, err := f.svc.CreateProperty(CreatePropertyInput{
		Type:        "apartment",
		Address:     address,
		Area:        45,
		MonthlyRate: rate,
		Rooms:       &rooms,
	})
	require.NoError(t, err)
	return p
}

func (f *fixture) tenant(t *testing.T, name string) *model.Tenant {
	t.Helper()
	tenant, err := f.svc.CreateTenant(CreateTenantInput{Name: name, Email: "tenant@example.com", Phone: "+79990000000"})
	require.NoError(t, err)
	return tenant
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

var manager = model.Principal{Role: model.RoleManager}
