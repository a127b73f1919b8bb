package model

import (
	"fmt"
	"strings"
)

const (
	longTermMonths     = 12
	longTermDiscount   = 0.9
	gardenSurcharge    = 1.1
	retailSurcharge    = 1.2
	retailBusinessType = "retail"
)

type Apartment struct {
	base
	rooms int
}

func NewApartment(fields Fields, events Events) (*Apartment, error) {
	if err := fields.only(KindApartment); err != nil {
		return nil, err
	}
	if *fields.Rooms < 0 {
		return nil, fmt.Errorf("%w: rooms must not be negative", ErrValidation)
	}
	b, err := newBase(KindApartment, fields, events)
	if err != nil {
		return nil, err
	}
	return &Apartment{base: b, rooms: *fields.Rooms}, nil
}

func (a *Apartment) Rooms() int { return a.rooms }

// RentalCost gives a discount for stays of a year or longer.
func (a *Apartment) RentalCost(months int) (float64, error) {
	multiplier := 1.0
	if months >= longTermMonths {
		multiplier = longTermDiscount
	}
	return a.cost(months, multiplier)
}

func (a *Apartment) String() string {
	return fmt.Sprintf("Apartment: %s, rooms: %d", a.address, a.rooms)
}

type House struct {
	base
	hasGarden bool
}

func NewHouse(fields Fields, events Events) (*House, error) {
	if err := fields.only(KindHouse); err != nil {
		return nil, err
	}
	b, err := newBase(KindHouse, fields, events)
	if err != nil {
		return nil, err
	}
	return &House{base: b, hasGarden: *fields.HasGarden}, nil
}

func (h *House) HasGarden() bool { return h.hasGarden }

func (h *House) RentalCost(months int) (float64, error) {
	multiplier := 1.0
	if h.hasGarden {
		multiplier = gardenSurcharge
	}
	return h.cost(months, multiplier)
}

func (h *House) String() string {
	garden := "no"
	if h.hasGarden {
		garden = "yes"
	}
	return fmt.Sprintf("House: %s, garden: %s", h.address, garden)
}

type CommercialSpace struct {
	base
	businessType string
}

func NewCommercialSpace(fields Fields, events Events) (*CommercialSpace, error) {
	if err := fields.only(KindCommercialSpace); err != nil {
		return nil, err
	}
	b, err := newBase(KindCommercialSpace, fields, events)
	if err != nil {
		return nil, err
	}
	return &CommercialSpace{base: b, businessType: *fields.BusinessType}, nil
}

func (c *CommercialSpace) BusinessType() string { return c.businessType }

// RentalCost charges retail tenants more, matched case-insensitively.
func (c *CommercialSpace) RentalCost(months int) (float64, error) {
	multiplier := 1.0
	if strings.ToLower(c.businessType) == retailBusinessType {
		multiplier = retailSurcharge
	}
	return c.cost(months, multiplier)
}

func (c *CommercialSpace) String() string {
	return fmt.Sprintf("CommercialSpace: %s, business type: %s", c.address, c.businessType)
}

var (
	_ Property = (*Apartment)(nil)
	_ Property = (*House)(nil)
	_ Property = (*CommercialSpace)(nil)
)
