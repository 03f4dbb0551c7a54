package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"water-distribution-service/internal/domain"

	"gopkg.in/yaml.v3"
)

type tankerFile struct {
	Tankers []tankerEntry `yaml:"tankers"`
}

type tankerEntry struct {
	Name             string  `yaml:"name"`
	Capacity         float64 `yaml:"capacity"`
	FixedCost        float64 `yaml:"fixed_cost"`
	CostPerKm        float64 `yaml:"cost_per_km"`
	ConsumptionPerKm float64 `yaml:"consumption_per_km"`
}

// LoadTankerCatalog reads a YAML tanker catalog. An empty path yields the
// built-in catalog.
//
//	tankers:
//	  - name: "19 m³"
//	    capacity: 19
//	    fixed_cost: 350
//	    cost_per_km: 6
//	    consumption_per_km: 0.5
func LoadTankerCatalog(path string) (*domain.TankerCatalog, error) {
	if path == "" {
		return domain.DefaultTankerCatalog(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load tanker catalog: read %q: %w", path, err)
	}

	catalog, err := ParseTankerCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("load tanker catalog %q: %w", path, err)
	}
	return catalog, nil
}

// ParseTankerCatalog decodes YAML catalog bytes. Unknown keys are rejected.
func ParseTankerCatalog(data []byte) (*domain.TankerCatalog, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f tankerFile
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty catalog file", domain.ErrInvalidTankerType)
		}
		return nil, fmt.Errorf("decode yaml: %w", err)
	}

	types := make([]domain.TankerType, 0, len(f.Tankers))
	for _, e := range f.Tankers {
		types = append(types, domain.TankerType{
			Name:             e.Name,
			Capacity:         e.Capacity,
			FixedCost:        e.FixedCost,
			CostPerKm:        e.CostPerKm,
			ConsumptionPerKm: e.ConsumptionPerKm,
		})
	}
	return domain.NewTankerCatalog(types...)
}
