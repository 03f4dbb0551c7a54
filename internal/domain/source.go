package domain

// Source is a well providing a finite daily water yield.
// Sources are read-only reference data; allocation never mutates them.
type Source struct {
	ID            string
	YieldM3PerDay float64
	Location      Coordinates
}

// Available returns the scenario-adjusted yield for a scenario percentage.
func (s Source) Available(scenarioPct int) float64 {
	return s.YieldM3PerDay * (float64(scenarioPct) / 100)
}
