package model

import (
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

type Extra struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Agreement binds a tenant and a property for a period. Neither is owned: the same
// property may back several agreements and edits to it are seen by all of them.
//
// TotalCost and RentCost hold the result of the last CalculateTotal call and are
// not refreshed when extras change.
type Agreement struct {
	id        int
	tenant    *Tenant
	property  Property
	startDate time.Time
	endDate   time.Time
	extras    []Extra
	rentCost  float64
	totalCost float64
	events    Events
}

func NewAgreement(id int, tenant *Tenant, property Property, start, end time.Time, events Events) (*Agreement, error) {
	if tenant == nil {
		return nil, fmt.Errorf("%w: tenant is required", ErrValidation)
	}
	if property == nil {
		return nil, fmt.Errorf("%w: property is required", ErrValidation)
	}
	if start.IsZero() || end.IsZero() {
		return nil, fmt.Errorf("%w: start and end dates are required", ErrValidation)
	}
	start, end = dateOnly(start), dateOnly(end)
	if end.Before(start) {
		return nil, fmt.Errorf("%w: end date must not be before start date", ErrValidation)
	}

	a := &Agreement{
		id:        id,
		tenant:    tenant,
		property:  property,
		startDate: start,
		endDate:   end,
		extras:    []Extra{},
		events:    eventsOrNop(events),
	}
	a.events.Log(fmt.Sprintf("agreement %d created", id))
	a.events.Notify(fmt.Sprintf("rental of %s confirmed for %s", property.Address(), tenant.Name()))
	return a, nil
}

func (a *Agreement) ID() int              { return a.id }
func (a *Agreement) Tenant() *Tenant      { return a.tenant }
func (a *Agreement) Property() Property   { return a.property }
func (a *Agreement) StartDate() time.Time { return a.startDate }
func (a *Agreement) EndDate() time.Time   { return a.endDate }
func (a *Agreement) TotalCost() float64   { return a.totalCost }

// RentCost is the property part of the last computed total.
func (a *Agreement) RentCost() float64 { return a.rentCost }

func (a *Agreement) Extras() []Extra {
	out := make([]Extra, len(a.extras))
	copy(out, a.extras)
	return out
}

// AddExtra appends a line item. Names are not unique.
func (a *Agreement) AddExtra(name string, price float64) {
	a.extras = append(a.extras, Extra{Name: name, Price: price})
	a.events.Log(fmt.Sprintf("extra %q added at %.2f", name, price))
}

// RemoveExtra drops every line item with the given name.
func (a *Agreement) RemoveExtra(name string) {
	kept := a.extras[:0]
	for _, extra := range a.extras {
		if extra.Name != name {
			kept = append(kept, extra)
		}
	}
	clear(a.extras[len(kept):])
	a.extras = kept
	a.events.Log(fmt.Sprintf("extra %q removed", name))
}

func (a *Agreement) CalculateTotal(months int) (float64, error) {
	rent, err := a.property.RentalCost(months)
	if err != nil {
		return 0, err
	}
	cost := rent
	for _, extra := range a.extras {
		cost += extra.Price
	}
	a.rentCost = rent
	a.totalCost = cost
	a.events.Log(fmt.Sprintf("agreement %d total %.2f", a.id, cost))
	return cost, nil
}

// Rent takes the property off the market. Repeated calls repeat the side effects.
func (a *Agreement) Rent() {
	a.property.SetAvailable(false)
	a.events.Log(fmt.Sprintf("agreement %d activated", a.id))
	a.events.Notify(fmt.Sprintf("property %s is no longer available", a.property.Address()))
}

func (a *Agreement) Report() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Agreement #%d\n", a.id)
	fmt.Fprintf(&b, "Tenant: %s\n", a.tenant.Name())
	fmt.Fprintf(&b, "Property: %s\n", a.property.Address())
	fmt.Fprintf(&b, "Period: %s - %s\n", a.startDate.Format(dateLayout), a.endDate.Format(dateLayout))
	fmt.Fprintf(&b, "Extras: %d\n", len(a.extras))
	fmt.Fprintf(&b, "Total: %.2f", a.totalCost)
	return b.String()
}

func (a *Agreement) ToMap() map[string]any {
	return map[string]any{
		"agreement_id": a.id,
		"tenant":       a.tenant.ToMap(),
		"property_id":  a.property.ID(),
		"start_date":   a.startDate.Format(dateLayout),
		"end_date":     a.endDate.Format(dateLayout),
		"extras":       a.Extras(),
		"total_cost":   a.totalCost,
	}
}

func (a *Agreement) String() string {
	return fmt.Sprintf("Agreement #%d: %s -> %s", a.id, a.tenant.Name(), a.property.Address())
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate accepts an ISO calendar date or an RFC 3339 timestamp.
func ParseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range []string{dateLayout, time.RFC3339, "2006-01-02T15:04:05"} {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return dateOnly(parsed), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: invalid date %q", ErrValidation, raw)
}
