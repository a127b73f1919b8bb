package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/nurpe/rentals/internal/activity"
	"github.com/nurpe/rentals/internal/model"
	"github.com/nurpe/rentals/internal/service"
)

const menu = `
===========================
     RENTAL SERVICE
===========================
1. Add property
2. List properties
3. Search properties
4. Edit property
5. Delete property
6. Analyze (most/least expensive)
7. Add tenant
8. Create agreement
9. List agreements
10. Rent agreement
11. Export portfolio workbook
12. Export agreement PDF
13. Request change approval
14. Rent property (online/offline)
15. Add extra to agreement
16. Remove extra from agreement
17. Recalculate agreement total
18. Show agreement report
0. Exit
`

// errExit ends the loop when input runs out.
var errExit = errors.New("input closed")

type Inbox interface {
	Drain() []activity.Notification
}

type Console struct {
	svc       *service.RentalService
	inbox     Inbox
	principal model.Principal
	exportDir string
	in        *bufio.Scanner
	out       io.Writer
	log       zerolog.Logger
}

type Options struct {
	Principal model.Principal
	ExportDir string
	Inbox     Inbox
}

func New(svc *service.RentalService, in io.Reader, out io.Writer, opts Options, log zerolog.Logger) *Console {
	return &Console{
		svc:       svc,
		inbox:     opts.Inbox,
		principal: opts.Principal,
		exportDir: opts.ExportDir,
		in:        bufio.NewScanner(in),
		out:       out,
		log:       log.With().Str("component", "console").Logger(),
	}
}

// Run shows the menu until the operator exits or input ends. Action errors are
// printed and the loop goes on.
func (c *Console) Run() error {
	for {
		c.printf("%s", menu)
		choice, err := c.prompt("Choose an action: ")
		if err != nil {
			if errors.Is(err, errExit) {
				return nil
			}
			return err
		}

		if choice == "0" {
			c.printf("Goodbye.\n")
			return nil
		}

		action, ok := c.actions()[choice]
		if !ok {
			c.printf("Unknown choice, try again.\n")
			continue
		}
		if err := action(); err != nil {
			if errors.Is(err, errExit) {
				return nil
			}
			c.log.Debug().Err(err).Str("choice", choice).Msg("action failed")
			c.printf("Error: %v\n", err)
		}
		c.flushNotifications()
	}
}

func (c *Console) actions() map[string]func() error {
	return map[string]func() error{
		"1":  c.createProperty,
		"2":  c.listProperties,
		"3":  c.searchProperties,
		"4":  c.editProperty,
		"5":  c.deleteProperty,
		"6":  c.analyzeProperties,
		"7":  c.createTenant,
		"8":  c.createAgreement,
		"9":  c.listAgreements,
		"10": c.rentAgreement,
		"11": c.exportPortfolio,
		"12": c.exportAgreement,
		"13": c.requestApproval,
		"14": c.rentProperty,
		"15": c.addExtra,
		"16": c.removeExtra,
		"17": c.recalculateTotal,
		"18": c.showReport,
	}
}

func (c *Console) createProperty() error {
	tag, err := c.prompt(fmt.Sprintf("Type (%s): ", strings.Join(model.Tags(), "/")))
	if err != nil {
		return err
	}
	input := service.CreatePropertyInput{Type: tag}
	if input.Address, err = c.prompt("Address: "); err != nil {
		return err
	}
	if input.Area, err = c.promptFloat("Area (m2): "); err != nil {
		return err
	}
	if input.MonthlyRate, err = c.promptFloat("Monthly rate: "); err != nil {
		return err
	}

	switch strings.ToLower(tag) {
	case model.KindApartment.Tag():
		rooms, err := c.promptInt("Rooms: ")
		if err != nil {
			return err
		}
		input.Rooms = &rooms
	case model.KindHouse.Tag():
		answer, err := c.prompt("Has garden? (y/n): ")
		if err != nil {
			return err
		}
		garden := strings.EqualFold(answer, "y")
		input.HasGarden = &garden
	case model.KindCommercialSpace.Tag():
		businessType, err := c.prompt("Business type: ")
		if err != nil {
			return err
		}
		input.BusinessType = &businessType
	}

	p, err := c.svc.CreateProperty(input)
	if err != nil {
		return err
	}
	c.printf("Property #%d created.\n", p.ID())
	return nil
}

func (c *Console) listProperties() error {
	list := c.svc.ListProperties()
	if len(list) == 0 {
		c.printf("No properties.\n")
		return nil
	}
	for _, p := range list {
		c.printf("- #%d %s\n", p.ID(), p)
	}
	return nil
}

func (c *Console) searchProperties() error {
	query, err := c.prompt("Address contains: ")
	if err != nil {
		return err
	}
	found := c.svc.SearchProperties(query)
	if len(found) == 0 {
		c.printf("Nothing found.\n")
		return nil
	}
	for _, p := range found {
		c.printf("- #%d %s\n", p.ID(), p)
	}
	return nil
}

func (c *Console) editProperty() error {
	id, err := c.promptInt("Property ID: ")
	if err != nil {
		return err
	}
	p, err := c.svc.GetProperty(id)
	if err != nil {
		return err
	}
	rate, err := c.promptFloat(fmt.Sprintf("New monthly rate (current %.2f): ", p.MonthlyRate()))
	if err != nil {
		return err
	}
	area, err := c.promptFloat(fmt.Sprintf("New area (current %.2f): ", p.Area()))
	if err != nil {
		return err
	}
	if _, err := c.svc.UpdateProperty(id, service.UpdatePropertyInput{MonthlyRate: &rate, Area: &area}); err != nil {
		return err
	}
	c.printf("Property #%d updated.\n", id)
	return nil
}

func (c *Console) deleteProperty() error {
	id, err := c.promptInt("Property ID: ")
	if err != nil {
		return err
	}
	if err := c.svc.DeleteProperty(id); err != nil {
		return err
	}
	c.printf("Property #%d deleted.\n", id)
	return nil
}

func (c *Console) analyzeProperties() error {
	analysis, err := c.svc.AnalyzeProperties()
	if err != nil {
		return err
	}
	c.printf("Most expensive: %s - %.2f per month\n", analysis.MostExpensive.Address(), analysis.MostExpensive.MonthlyRate())
	c.printf("Cheapest: %s - %.2f per month\n", analysis.Cheapest.Address(), analysis.Cheapest.MonthlyRate())
	return nil
}

func (c *Console) createTenant() error {
	var input service.CreateTenantInput
	var err error
	if input.Name, err = c.prompt("Name: "); err != nil {
		return err
	}
	if input.Email, err = c.prompt("Email: "); err != nil {
		return err
	}
	if input.Phone, err = c.prompt("Phone: "); err != nil {
		return err
	}
	t, err := c.svc.CreateTenant(input)
	if err != nil {
		return err
	}
	c.printf("Tenant #%d added.\n", t.ID())
	return nil
}

func (c *Console) createAgreement() error {
	if len(c.svc.ListProperties()) == 0 || len(c.svc.ListTenants()) == 0 {
		c.printf("Add a property and a tenant first.\n")
		return nil
	}
	var input service.CreateAgreementInput
	var err error
	if input.PropertyID, err = c.promptInt("Property ID: "); err != nil {
		return err
	}
	if input.TenantID, err = c.promptInt("Tenant ID: "); err != nil {
		return err
	}
	if input.StartDate, err = c.promptDate("Start date (YYYY-MM-DD): "); err != nil {
		return err
	}
	if input.EndDate, err = c.promptDate("End date (YYYY-MM-DD): "); err != nil {
		return err
	}
	if input.Months, err = c.promptInt("Months: "); err != nil {
		return err
	}
	for {
		name, err := c.prompt("Extra service (empty to finish): ")
		if err != nil {
			return err
		}
		if name == "" {
			break
		}
		price, err := c.promptFloat("Price: ")
		if err != nil {
			return err
		}
		input.Extras = append(input.Extras, model.Extra{Name: name, Price: price})
	}

	a, err := c.svc.CreateAgreement(input)
	if err != nil {
		return err
	}
	c.printf("Agreement #%d created. Total cost: %.2f\n", a.ID(), a.TotalCost())
	return nil
}

func (c *Console) listAgreements() error {
	list := c.svc.ListAgreements()
	if len(list) == 0 {
		c.printf("No agreements.\n")
		return nil
	}
	for _, a := range list {
		c.printf("%s\n\n", a.Report())
	}
	return nil
}

func (c *Console) rentAgreement() error {
	id, err := c.promptInt("Agreement ID: ")
	if err != nil {
		return err
	}
	if err := c.svc.RentAgreement(c.principal, id); err != nil {
		return err
	}
	c.printf("Agreement #%d activated.\n", id)
	return nil
}

func (c *Console) rentProperty() error {
	raw, err := c.prompt("Channel (online/offline): ")
	if err != nil {
		return err
	}
	channel, err := service.ParseChannel(raw)
	if err != nil {
		return err
	}
	propertyID, err := c.promptInt("Property ID: ")
	if err != nil {
		return err
	}
	tenantID, err := c.promptInt("Tenant ID: ")
	if err != nil {
		return err
	}
	result, err := c.svc.Rent(c.principal, channel, propertyID, tenantID)
	if err != nil {
		return err
	}
	c.printf("%s\n", result)
	return nil
}

func (c *Console) addExtra() error {
	id, err := c.promptInt("Agreement ID: ")
	if err != nil {
		return err
	}
	name, err := c.prompt("Extra service: ")
	if err != nil {
		return err
	}
	price, err := c.promptFloat("Price: ")
	if err != nil {
		return err
	}
	if err := c.svc.AddExtra(id, name, price); err != nil {
		return err
	}
	c.printf("Extra added. Recalculate to update the total.\n")
	return nil
}

func (c *Console) removeExtra() error {
	id, err := c.promptInt("Agreement ID: ")
	if err != nil {
		return err
	}
	name, err := c.prompt("Extra service: ")
	if err != nil {
		return err
	}
	if err := c.svc.RemoveExtra(id, name); err != nil {
		return err
	}
	c.printf("Extra removed. Recalculate to update the total.\n")
	return nil
}

func (c *Console) recalculateTotal() error {
	id, err := c.promptInt("Agreement ID: ")
	if err != nil {
		return err
	}
	months, err := c.promptInt("Months: ")
	if err != nil {
		return err
	}
	total, err := c.svc.CalculateTotal(id, months)
	if err != nil {
		return err
	}
	c.printf("Total cost: %.2f\n", total)
	return nil
}

func (c *Console) showReport() error {
	id, err := c.promptInt("Agreement ID: ")
	if err != nil {
		return err
	}
	report, err := c.svc.AgreementReport(id)
	if err != nil {
		return err
	}
	c.printf("%s\n", report)
	return nil
}

func (c *Console) exportPortfolio() error {
	result, err := c.svc.ExportPortfolio()
	if err != nil {
		return err
	}
	return c.writeExport(result)
}

func (c *Console) exportAgreement() error {
	id, err := c.promptInt("Agreement ID: ")
	if err != nil {
		return err
	}
	result, err := c.svc.ExportAgreementPDF(id)
	if err != nil {
		return err
	}
	return c.writeExport(result)
}

func (c *Console) requestApproval() error {
	kind, err := c.prompt("Change type (minor/financial/major): ")
	if err != nil {
		return err
	}
	c.printf("%s\n", c.svc.ApproveChange(service.ChangeRequest{Type: strings.ToLower(kind)}))
	return nil
}

func (c *Console) writeExport(result *service.ExportResult) error {
	if err := os.MkdirAll(c.exportDir, 0o755); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}
	path := filepath.Join(c.exportDir, result.FileName)
	if err := os.WriteFile(path, result.Content, 0o644); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	c.printf("Saved %s\n", path)
	return nil
}

func (c *Console) flushNotifications() {
	if c.inbox == nil {
		return
	}
	for _, n := range c.inbox.Drain() {
		c.printf("[notice] %s\n", n.Message)
	}
}

func (c *Console) prompt(label string) (string, error) {
	c.printf("%s", label)
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", errExit
	}
	return strings.TrimSpace(c.in.Text()), nil
}

func (c *Console) promptInt(label string) (int, error) {
	raw, err := c.prompt(label)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a whole number", service.ErrInvalidInput, raw)
	}
	return v, nil
}

func (c *Console) promptFloat(label string) (float64, error) {
	raw, err := c.prompt(label)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", "."), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", service.ErrInvalidInput, raw)
	}
	return v, nil
}

func (c *Console) promptDate(label string) (time.Time, error) {
	raw, err := c.prompt(label)
	if err != nil {
		return time.Time{}, err
	}
	return model.ParseDate(raw)
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}
