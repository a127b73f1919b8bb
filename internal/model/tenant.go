package model

import (
	"fmt"
	"math"
)

type Tenant struct {
	id    int
	name  string
	email string
	phone string
}

func NewTenant(id int, name, email, phone string) (*Tenant, error) {
	switch {
	case name == "":
		return nil, fmt.Errorf("%w: tenant name is required", ErrValidation)
	case email == "":
		return nil, fmt.Errorf("%w: tenant email is required", ErrValidation)
	case phone == "":
		return nil, fmt.Errorf("%w: tenant phone is required", ErrValidation)
	}
	return &Tenant{id: id, name: name, email: email, phone: phone}, nil
}

func (t *Tenant) ID() int       { return t.id }
func (t *Tenant) Name() string  { return t.name }
func (t *Tenant) Email() string { return t.email }
func (t *Tenant) Phone() string { return t.phone }

func (t *Tenant) String() string {
	return fmt.Sprintf("Tenant: %s (%s)", t.name, t.email)
}

func (t *Tenant) ToMap() map[string]any {
	return map[string]any{
		"tenant_id": t.id,
		"name":      t.name,
		"email":     t.email,
		"phone":     t.phone,
	}
}

// TenantFromMap rebuilds a tenant from ToMap output or decoded JSON.
func TenantFromMap(data map[string]any) (*Tenant, error) {
	id, err := intValue(data, "tenant_id")
	if err != nil {
		return nil, err
	}
	fields := make([]string, 0, 3)
	for _, key := range []string{"name", "email", "phone"} {
		raw, ok := data[key]
		if !ok {
			return nil, fmt.Errorf("%w: %s is required", ErrValidation, key)
		}
		value, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("%w: %s must be a string", ErrValidation, key)
		}
		fields = append(fields, value)
	}
	return NewTenant(id, fields[0], fields[1], fields[2])
}

func intValue(data map[string]any, key string) (int, error) {
	raw, ok := data[key]
	if !ok {
		return 0, fmt.Errorf("%w: %s is required", ErrValidation, key)
	}
	switch v := raw.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		if v == math.Trunc(v) {
			return int(v), nil
		}
	}
	return 0, fmt.Errorf("%w: %s must be an integer", ErrValidation, key)
}
