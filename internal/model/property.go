package model

import (
	"cmp"
	"encoding/json"
	"fmt"
	"math"
	"strings"
)

type Kind string

const (
	KindApartment       Kind = "Apartment"
	KindHouse           Kind = "House"
	KindCommercialSpace Kind = "CommercialSpace"
)

// Tag is the lowercase registry key of the kind.
func (k Kind) Tag() string {
	return strings.ToLower(string(k))
}

// Property is a rentable listing. Each variant prices a rental period with its own rule.
type Property interface {
	ID() int
	Kind() Kind

	Address() string
	SetAddress(value string) error
	Area() float64
	SetArea(value float64) error
	MonthlyRate() float64
	SetMonthlyRate(value float64) error
	Available() bool
	SetAvailable(value bool)

	RentalCost(months int) (float64, error)

	ToMap() map[string]any
	ToJSON() (string, error)
	String() string
}

type base struct {
	id          int
	kind        Kind
	address     string
	area        float64
	monthlyRate float64
	available   bool
	events      Events
}

func newBase(kind Kind, fields Fields, events Events) (base, error) {
	if err := ValidateAddress(fields.Address); err != nil {
		return base{}, err
	}
	if err := ValidateArea(fields.Area); err != nil {
		return base{}, err
	}
	if err := ValidateMonthlyRate(fields.MonthlyRate); err != nil {
		return base{}, err
	}
	available := true
	if fields.Available != nil {
		available = *fields.Available
	}
	return base{
		id:          fields.ID,
		kind:        kind,
		address:     fields.Address,
		area:        fields.Area,
		monthlyRate: fields.MonthlyRate,
		available:   available,
		events:      eventsOrNop(events),
	}, nil
}

func (b *base) ID() int              { return b.id }
func (b *base) Kind() Kind           { return b.kind }
func (b *base) Address() string      { return b.address }
func (b *base) Area() float64        { return b.area }
func (b *base) MonthlyRate() float64 { return b.monthlyRate }
func (b *base) Available() bool      { return b.available }

func (b *base) SetAddress(value string) error {
	if err := ValidateAddress(value); err != nil {
		return err
	}
	b.address = value
	return nil
}

func (b *base) SetArea(value float64) error {
	if err := ValidateArea(value); err != nil {
		return err
	}
	b.area = value
	return nil
}

func (b *base) SetMonthlyRate(value float64) error {
	if err := ValidateMonthlyRate(value); err != nil {
		return err
	}
	b.monthlyRate = value
	return nil
}

func (b *base) SetAvailable(value bool) {
	b.available = value
}

func (b *base) ToMap() map[string]any {
	return map[string]any{
		"type":         string(b.kind),
		"property_id":  b.id,
		"address":      b.address,
		"area":         b.area,
		"monthly_rate": b.monthlyRate,
		"is_available": b.available,
	}
}

func (b *base) ToJSON() (string, error) {
	data, err := json.MarshalIndent(b.ToMap(), "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// cost applies the variant multiplier and records the result.
func (b *base) cost(months int, multiplier float64) (float64, error) {
	if months <= 0 {
		return 0, fmt.Errorf("%w: months must be positive, got %d", ErrValidation, months)
	}
	total := b.monthlyRate * float64(months) * multiplier
	b.events.Log(fmt.Sprintf("%s - rental cost %.2f for %d months", b.kind, total, months))
	return total, nil
}

func ValidateAddress(value string) error {
	if value == "" {
		return fmt.Errorf("%w: address must not be empty", ErrValidation)
	}
	return nil
}

func ValidateArea(value float64) error {
	if !(value > 0) || math.IsInf(value, 0) {
		return fmt.Errorf("%w: area must be a positive number", ErrValidation)
	}
	return nil
}

func ValidateMonthlyRate(value float64) error {
	if !(value >= 0) || math.IsInf(value, 0) {
		return fmt.Errorf("%w: monthly rate must not be negative", ErrValidation)
	}
	return nil
}

// Compare orders properties by monthly rate only. Two different listings with the
// same rate compare as equal.
func Compare(a, b Property) int {
	return cmp.Compare(a.MonthlyRate(), b.MonthlyRate())
}

func Less(a, b Property) bool {
	return Compare(a, b) < 0
}

func Equal(a, b Property) bool {
	return Compare(a, b) == 0
}
