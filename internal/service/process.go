package service

import (
	"fmt"
	"strings"

	"github.com/nurpe/rentals/internal/model"
)

type Channel string

const (
	ChannelOnline  Channel = "online"
	ChannelOffline Channel = "offline"
)

// channelSteps are the parts of the rental flow that differ between channels.
type channelSteps interface {
	create(events model.Events, p model.Property, t *model.Tenant)
	confirm(events model.Events, p model.Property, t *model.Tenant)
}

type onlineSteps struct{}

func (onlineSteps) create(events model.Events, p model.Property, t *model.Tenant) {
	events.Log(fmt.Sprintf("online rental for %s in progress", t.Name()))
	p.SetAvailable(false)
}

func (onlineSteps) confirm(events model.Events, p model.Property, t *model.Tenant) {
	events.Notify(fmt.Sprintf("rental of %s confirmed for %s (online)", p.Address(), t.Name()))
}

type officeSteps struct{}

func (officeSteps) create(events model.Events, p model.Property, t *model.Tenant) {
	events.Log(fmt.Sprintf("offline rental for %s in progress", t.Name()))
	p.SetAvailable(false)
}

func (officeSteps) confirm(events model.Events, p model.Property, t *model.Tenant) {
	events.Notify(fmt.Sprintf("rental of %s confirmed for %s (in office)", p.Address(), t.Name()))
}

func ParseChannel(raw string) (Channel, error) {
	switch Channel(strings.ToLower(strings.TrimSpace(raw))) {
	case ChannelOnline:
		return ChannelOnline, nil
	case ChannelOffline:
		return ChannelOffline, nil
	default:
		return "", fmt.Errorf("%w: unknown channel %q", ErrInvalidInput, raw)
	}
}

func stepsFor(channel Channel) (channelSteps, error) {
	switch channel {
	case ChannelOnline:
		return onlineSteps{}, nil
	case ChannelOffline:
		return officeSteps{}, nil
	default:
		return nil, fmt.Errorf("%w: unknown channel %q", ErrInvalidInput, channel)
	}
}

// Rent runs the rental flow for a property without forming an agreement:
// check the role, check availability, take the property, confirm.
func (s *RentalService) Rent(principal model.Principal, channel Channel, propertyID, tenantID int) (string, error) {
	if !principal.IsManager() {
		return "", fmt.Errorf("%w: role %q cannot rent, %q required", ErrPermissionDenied, principal.Role, model.RoleManager)
	}
	steps, err := stepsFor(channel)
	if err != nil {
		return "", err
	}
	p, err := s.GetProperty(propertyID)
	if err != nil {
		return "", err
	}
	t, err := s.GetTenant(tenantID)
	if err != nil {
		return "", err
	}
	if !p.Available() {
		return "", fmt.Errorf("%w: %s", ErrUnavailable, p.Address())
	}

	steps.create(s.events, p, t)
	steps.confirm(s.events, p, t)

	s.log.Info().
		Str("channel", string(channel)).
		Int("property_id", p.ID()).
		Int("tenant_id", t.ID()).
		Msg("property rented")
	return "rental completed", nil
}
