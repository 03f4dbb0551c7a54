package dto

type TankerResponse struct {
	Name             string  `json:"name"`
	Capacity         float64 `json:"capacity"`
	FixedCost        float64 `json:"fixed_cost"`
	CostPerKm        float64 `json:"cost_per_km"`
	ConsumptionPerKm float64 `json:"consumption_per_km"`
}

type ListTankersResponse struct {
	Tankers []TankerResponse `json:"tankers"`
}

type SourceResponse struct {
	ID            string  `json:"id"`
	YieldM3PerDay float64 `json:"yield_m3_per_day"`
	Lon           float64 `json:"lon"`
	Lat           float64 `json:"lat"`
}

type ListSourcesResponse struct {
	Sources []SourceResponse `json:"sources"`
}

// AreaResponse omits geometry; clients only need the reference point.
type AreaResponse struct {
	Kind           string  `json:"kind"`
	Name           string  `json:"name"`
	DemandM3PerDay float64 `json:"demand_m3_per_day"`
	CentroidLon    float64 `json:"centroid_lon"`
	CentroidLat    float64 `json:"centroid_lat"`
}

type ListAreasResponse struct {
	Areas []AreaResponse `json:"areas"`
}
