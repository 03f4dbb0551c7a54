package domain

// AllocationEntry describes the water drawn from a single source.
type AllocationEntry struct {
	SourceID       string
	VolumeAssigned float64
	Trips          int
	Cost           float64
	Fuel           float64
	DistanceKm     float64
	SourceLocation Coordinates
}

// AllocationResult is the outcome of one allocation run.
// Entries are ordered nearest source first.
type AllocationResult struct {
	Demand      float64
	Entries     []AllocationEntry
	UnmetDemand float64
	TotalTrips  int
	TotalCost   float64
	TotalFuel   float64
}

// Satisfied reports whether the whole demand was covered.
func (r AllocationResult) Satisfied() bool { return r.UnmetDemand <= 0 }

// AssignedVolume is the sum of volumes over all entries.
func (r AllocationResult) AssignedVolume() float64 {
	total := 0.0
	for _, e := range r.Entries {
		total += e.VolumeAssigned
	}
	return total
}
