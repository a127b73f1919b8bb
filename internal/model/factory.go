package model

import (
	"fmt"
	"sort"
	"strings"
)

// Fields is the field set handed to a property constructor. Variant fields are
// pointers so a constructor can tell a missing field from a zero value.
type Fields struct {
	ID          int
	Address     string
	Area        float64
	MonthlyRate float64
	Available   *bool

	Rooms        *int
	HasGarden    *bool
	BusinessType *string
}

// only checks that the variant field of kind is present and no other variant field is.
func (f Fields) only(kind Kind) error {
	present := map[string]bool{
		"rooms":         f.Rooms != nil,
		"has_garden":    f.HasGarden != nil,
		"business_type": f.BusinessType != nil,
	}
	required := variantField[kind]
	if !present[required] {
		return fmt.Errorf("%w: %s is required for %s", ErrValidation, required, kind.Tag())
	}
	for _, name := range []string{"rooms", "has_garden", "business_type"} {
		if name != required && present[name] {
			return fmt.Errorf("%w: %s does not apply to %s", ErrValidation, name, kind.Tag())
		}
	}
	return nil
}

var variantField = map[Kind]string{
	KindApartment:       "rooms",
	KindHouse:           "has_garden",
	KindCommercialSpace: "business_type",
}

type Constructor func(fields Fields, events Events) (Property, error)

var registry = map[string]Constructor{
	KindApartment.Tag():       construct(NewApartment),
	KindHouse.Tag():           construct(NewHouse),
	KindCommercialSpace.Tag(): construct(NewCommercialSpace),
}

// construct adapts a typed constructor so a failed build yields a nil Property
// rather than a typed nil.
func construct[P Property](ctor func(Fields, Events) (P, error)) Constructor {
	return func(fields Fields, events Events) (Property, error) {
		p, err := ctor(fields, events)
		if err != nil {
			return nil, err
		}
		return p, nil
	}
}

func Lookup(tag string) (Constructor, bool) {
	ctor, ok := registry[strings.ToLower(strings.TrimSpace(tag))]
	return ctor, ok
}

// Tags lists the registered type tags in sorted order.
func Tags() []string {
	tags := make([]string, 0, len(registry))
	for tag := range registry {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// NewProperty builds the variant registered under tag.
func NewProperty(tag string, fields Fields, events Events) (Property, error) {
	ctor, ok := Lookup(tag)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, strings.ToLower(strings.TrimSpace(tag)))
	}
	return ctor(fields, events)
}
