package main

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/nurpe/rentals/internal/activity"
	"github.com/nurpe/rentals/internal/config"
	"github.com/nurpe/rentals/internal/console"
	"github.com/nurpe/rentals/internal/excel"
	"github.com/nurpe/rentals/internal/logger"
	"github.com/nurpe/rentals/internal/model"
	"github.com/nurpe/rentals/internal/pdf"
	"github.com/nurpe/rentals/internal/repository"
	"github.com/nurpe/rentals/internal/service"
)

type app struct {
	cfg     *config.Config
	log     zerolog.Logger
	journal *activity.Journal
	svc     *service.RentalService
	close   func() error
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	log, closer, err := logger.New(cfg.Environment, cfg.Log.Level, cfg.Log.File)
	if err != nil {
		return nil, err
	}

	pdfGenerator, err := newPDFGenerator(cfg.Export.PDFFontFile)
	if err != nil {
		_ = closer.Close()
		return nil, err
	}

	journal := activity.NewJournal(log)
	svc := service.NewRentalService(
		repository.NewPropertyRepository(),
		repository.NewTenantRepository(),
		repository.NewAgreementRepository(),
		journal,
		excel.NewGenerator(),
		pdfGenerator,
		log,
	)
	return &app{cfg: cfg, log: log, journal: journal, svc: svc, close: closer.Close}, nil
}

func newPDFGenerator(fontFile string) (*pdf.Generator, error) {
	if fontFile == "" {
		return pdf.NewGenerator(), nil
	}
	return pdf.NewUTF8Generator(fontFile)
}

func newRootCmd(in io.Reader, out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "rentals",
		Short:         "In-memory rental management console",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			a.log.Info().Str("role", a.cfg.Access.Role).Msg("starting rental console")
			return console.New(a.svc, in, out, console.Options{
				Principal: model.Principal{Role: a.cfg.Access.Role},
				ExportDir: a.cfg.Export.Dir,
				Inbox:     a.journal,
			}, a.log).Run()
		},
	}
	root.SetIn(in)
	root.SetOut(out)
	root.AddCommand(demoCmd(out))
	return root
}

func demoCmd(out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the sample pricing scenarios and print the agreement report",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()
			return runDemo(a.svc, out)
		},
	}
}

func runDemo(svc *service.RentalService, out io.Writer) error {
	rooms := 2
	apt, err := svc.CreateProperty(service.CreatePropertyInput{
		Type: "apartment", Address: "10 Lenin St", Area: 45, MonthlyRate: 30000, Rooms: &rooms,
	})
	if err != nil {
		return err
	}
	garden := true
	house, err := svc.CreateProperty(service.CreatePropertyInput{
		Type: "house", Address: "5 Garden St", Area: 120, MonthlyRate: 50000, HasGarden: &garden,
	})
	if err != nil {
		return err
	}
	business := "retail"
	shop, err := svc.CreateProperty(service.CreatePropertyInput{
		Type: "commercialspace", Address: "Business Center", Area: 200, MonthlyRate: 100000, BusinessType: &business,
	})
	if err != nil {
		return err
	}

	for _, run := range []struct {
		p      model.Property
		months int
	}{{house, 2}, {shop, 1}} {
		cost, err := run.p.RentalCost(run.months)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s for %d months: %.2f\n", run.p, run.months, cost)
	}

	tenant, err := svc.CreateTenant(service.CreateTenantInput{Name: "Ivan Ivanov", Email: "ivan@example.com", Phone: "+79991234567"})
	if err != nil {
		return err
	}
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	agreement, err := svc.CreateAgreement(service.CreateAgreementInput{
		PropertyID: apt.ID(),
		TenantID:   tenant.ID(),
		StartDate:  start,
		EndDate:    start.AddDate(1, 0, 0),
		Months:     12,
		Extras:     []model.Extra{{Name: "Cleaning", Price: 2000}},
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "\n%s\n", agreement.Report())
	return nil
}
