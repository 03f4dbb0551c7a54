package dto

type SummaryRowResponse struct {
	Name        string  `json:"name"`
	Demand      float64 `json:"demand"`
	TotalCost   float64 `json:"total_cost"`
	TotalTrips  int     `json:"total_trips"`
	TotalFuel   float64 `json:"total_fuel"`
	UnmetDemand float64 `json:"unmet_demand"`
}

type SummaryResponse struct {
	Level       string               `json:"level"`
	Scenario    int                  `json:"scenario"`
	Tanker      string               `json:"tanker"`
	Cached      bool                 `json:"cached"`
	MostCostly  *SummaryRowResponse  `json:"most_costly"`
	LeastCostly *SummaryRowResponse  `json:"least_costly"`
	Top         []SummaryRowResponse `json:"top"`
	Bottom      []SummaryRowResponse `json:"bottom"`
	Rows        []SummaryRowResponse `json:"rows"`
}
