package dto

type AllocationRequest struct {
	Kind     string `json:"kind"`
	Name     string `json:"name"`
	Scenario *int   `json:"scenario"`
	Tanker   string `json:"tanker"`
}

type GroupAllocationRequest struct {
	Names    []string `json:"names"`
	Scenario *int     `json:"scenario"`
	Tanker   string   `json:"tanker"`
}

type AllocationEntryResponse struct {
	SourceID       string  `json:"source_id"`
	VolumeAssigned float64 `json:"volume_assigned"`
	Trips          int     `json:"trips"`
	Cost           float64 `json:"cost"`
	Fuel           float64 `json:"fuel"`
	DistanceKm     float64 `json:"distance_km"`
	Lon            float64 `json:"lon"`
	Lat            float64 `json:"lat"`
}

type AllocationResponse struct {
	RunID        string                    `json:"run_id"`
	Kind         string                    `json:"kind"`
	Names        []string                  `json:"names"`
	Scenario     int                       `json:"scenario"`
	Tanker       string                    `json:"tanker"`
	ReferenceLon float64                   `json:"reference_lon"`
	ReferenceLat float64                   `json:"reference_lat"`
	Demand       float64                   `json:"demand"`
	Satisfied    bool                      `json:"satisfied"`
	UnmetDemand  float64                   `json:"unmet_demand"`
	TotalTrips   int                       `json:"total_trips"`
	TotalCost    float64                   `json:"total_cost"`
	TotalFuel    float64                   `json:"total_fuel"`
	Message      string                    `json:"message"`
	Entries      []AllocationEntryResponse `json:"entries"`
}
