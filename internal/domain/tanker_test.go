package domain

import (
	"errors"
	"testing"
)

func TestDefaultTankerCatalogLookup(t *testing.T) {
	c := DefaultTankerCatalog()

	got, err := c.Lookup("19 m³")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Capacity != 19 || got.FixedCost != 350 || got.CostPerKm != 6 || got.ConsumptionPerKm != 0.5 {
		t.Fatalf("19 m³ profile = %+v", got)
	}

	got, err = c.Lookup(" 34 m³ ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Capacity != 34 || got.FixedCost != 500 || got.CostPerKm != 8 || got.ConsumptionPerKm != 0.8 {
		t.Fatalf("34 m³ profile = %+v", got)
	}

	names := c.Names()
	if len(names) != 2 || names[0] != "19 m³" || names[1] != "34 m³" {
		t.Fatalf("names = %v, want [19 m³ 34 m³]", names)
	}
}

func TestTankerCatalogUnknownType(t *testing.T) {
	c := DefaultTankerCatalog()

	_, err := c.Lookup("50 m³")
	if !errors.Is(err, ErrUnknownTankerType) {
		t.Fatalf("err = %v, want ErrUnknownTankerType", err)
	}
}

func TestNewTankerCatalogRejectsInvalidProfiles(t *testing.T) {
	cases := []struct {
		name  string
		types []TankerType
	}{
		{"empty", nil},
		{"zero capacity", []TankerType{{Name: "a", Capacity: 0}}},
		{"negative fixed cost", []TankerType{{Name: "a", Capacity: 10, FixedCost: -1}}},
		{"negative consumption", []TankerType{{Name: "a", Capacity: 10, ConsumptionPerKm: -0.1}}},
		{"blank name", []TankerType{{Name: "  ", Capacity: 10}}},
		{"duplicate", []TankerType{{Name: "a", Capacity: 10}, {Name: "a", Capacity: 20}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewTankerCatalog(tc.types...); !errors.Is(err, ErrInvalidTankerType) {
				t.Fatalf("err = %v, want ErrInvalidTankerType", err)
			}
		})
	}
}

func TestTankerCatalogTypesIsACopy(t *testing.T) {
	c := DefaultTankerCatalog()

	types := c.Types()
	types[0].Capacity = 1

	got, _ := c.Lookup("19 m³")
	if got.Capacity != 19 {
		t.Fatalf("catalog mutated through Types(): capacity = %v", got.Capacity)
	}
}
