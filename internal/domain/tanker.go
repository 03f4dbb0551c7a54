package domain

import (
	"fmt"
	"math"
	"strings"
)

// TankerType is a named cost and capacity profile for trucking water.
type TankerType struct {
	Name             string
	Capacity         float64 // m³ per trip
	FixedCost        float64 // per trip
	CostPerKm        float64 // per trip and km
	ConsumptionPerKm float64 // fuel per trip and km
}

// Validate rejects empty names and out-of-range numbers.
func (t TankerType) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("%w: name must not be empty", ErrInvalidTankerType)
	}
	if !(t.Capacity > 0) || math.IsInf(t.Capacity, 0) {
		return fmt.Errorf("%w: %q capacity must be positive (capacity=%v)", ErrInvalidTankerType, t.Name, t.Capacity)
	}
	fields := []struct {
		label string
		v     float64
	}{
		{"fixed_cost", t.FixedCost},
		{"cost_per_km", t.CostPerKm},
		{"consumption_per_km", t.ConsumptionPerKm},
	}
	for _, f := range fields {
		if !(f.v >= 0) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%w: %q %s must be non-negative (%s=%v)", ErrInvalidTankerType, t.Name, f.label, f.label, f.v)
		}
	}
	return nil
}

// TankerCatalog is the immutable set of tanker types known to the process.
// It is built once at startup and shared read-only between allocation runs.
type TankerCatalog struct {
	byName map[string]TankerType
	names  []string
}

// NewTankerCatalog validates the given profiles and returns a catalog
// preserving their order.
func NewTankerCatalog(types ...TankerType) (*TankerCatalog, error) {
	if len(types) == 0 {
		return nil, fmt.Errorf("%w: catalog must contain at least one tanker type", ErrInvalidTankerType)
	}

	c := &TankerCatalog{
		byName: make(map[string]TankerType, len(types)),
		names:  make([]string, 0, len(types)),
	}
	for _, t := range types {
		t.Name = strings.TrimSpace(t.Name)
		if err := t.Validate(); err != nil {
			return nil, err
		}
		if _, ok := c.byName[t.Name]; ok {
			return nil, fmt.Errorf("%w: duplicate tanker type %q", ErrInvalidTankerType, t.Name)
		}
		c.byName[t.Name] = t
		c.names = append(c.names, t.Name)
	}

	return c, nil
}

// DefaultTankerCatalog returns the built-in 19 m³ and 34 m³ profiles.
func DefaultTankerCatalog() *TankerCatalog {
	c, err := NewTankerCatalog(
		TankerType{Name: "19 m³", Capacity: 19, FixedCost: 350, CostPerKm: 6, ConsumptionPerKm: 0.5},
		TankerType{Name: "34 m³", Capacity: 34, FixedCost: 500, CostPerKm: 8, ConsumptionPerKm: 0.8},
	)
	if err != nil {
		panic(err)
	}
	return c
}

// Lookup returns the tanker type registered under name.
func (c *TankerCatalog) Lookup(name string) (TankerType, error) {
	t, ok := c.byName[strings.TrimSpace(name)]
	if !ok {
		return TankerType{}, fmt.Errorf("%w: %q", ErrUnknownTankerType, name)
	}
	return t, nil
}

// Names lists tanker type names in catalog order.
func (c *TankerCatalog) Names() []string {
	return append([]string(nil), c.names...)
}

// Types lists tanker types in catalog order.
func (c *TankerCatalog) Types() []TankerType {
	out := make([]TankerType, 0, len(c.names))
	for _, n := range c.names {
		out = append(out, c.byName[n])
	}
	return out
}
