package services

import (
	"fmt"
	"math"
	"water-distribution-service/internal/domain"
)

// TripCost is the trucking effort needed to move a volume over a distance.
type TripCost struct {
	Trips int
	Cost  float64
	Fuel  float64
}

// ComputeTripCost converts a volume and a one-way distance into whole tanker
// trips, their monetary cost and fuel consumption.
//
// Trips are the ceiling of volume/capacity: an evenly divisible volume incurs
// no extra trip. Every trip pays the fixed cost plus the per-km cost.
func ComputeTripCost(volume, distanceKm float64, tanker domain.TankerType) (TripCost, error) {
	if !isNonNegative(volume) || !isNonNegative(distanceKm) {
		return TripCost{}, fmt.Errorf(
			"compute trip cost: %w (volume=%v distance_km=%v)",
			domain.ErrInvalidQuantity, volume, distanceKm,
		)
	}
	if !(tanker.Capacity > 0) {
		return TripCost{}, fmt.Errorf("compute trip cost: %w: capacity=%v", domain.ErrInvalidTankerType, tanker.Capacity)
	}

	// The quotient is derived from the remainder so both agree even when
	// volume/capacity rounds up to a whole number.
	rem := math.Mod(volume, tanker.Capacity)
	trips := int(math.Round((volume - rem) / tanker.Capacity))
	if rem > 0 {
		trips++
	}

	n := float64(trips)
	return TripCost{
		Trips: trips,
		Cost:  n * (tanker.FixedCost + tanker.CostPerKm*distanceKm),
		Fuel:  n * tanker.ConsumptionPerKm * distanceKm,
	}, nil
}

func isNonNegative(v float64) bool {
	return v >= 0 && !math.IsInf(v, 1)
}
