package handlers

import (
	"net/http"
	"strings"
	"water-distribution-service/internal/api/dto"
	"water-distribution-service/internal/domain"
	"water-distribution-service/internal/services"
)

type AllocationHandler struct {
	Planner *services.Planner
}

// Allocate covers the demand of one sector or district. Scenario and tanker
// are both required; there is no default tanker type.
func (h *AllocationHandler) Allocate(w http.ResponseWriter, r *http.Request) {
	if !allowOnly(w, r, http.MethodPost) {
		return
	}

	var req dto.AllocationRequest
	if !decodeBody(w, r, &req) {
		return
	}

	kind, err := domain.ParseAreaKind(req.Kind)
	if err != nil || kind == domain.AreaCombined {
		writeError(w, r, http.StatusBadRequest, "kind must be sector or district")
		return
	}
	if req.Name == "" {
		writeError(w, r, http.StatusBadRequest, "name is required")
		return
	}
	if req.Scenario == nil {
		writeError(w, r, http.StatusBadRequest, "scenario is required")
		return
	}
	if strings.TrimSpace(req.Tanker) == "" {
		writeError(w, r, http.StatusBadRequest, "tanker is required")
		return
	}

	out, err := h.Planner.AllocateArea(r.Context(), services.AreaAllocationRequest{
		Kind:        kind,
		Name:        req.Name,
		ScenarioPct: *req.Scenario,
		Tanker:      req.Tanker,
	})
	if err != nil {
		writeServiceError(w, r, "allocate area", err)
		return
	}

	writeJSON(w, r, http.StatusOK, allocationResponse(out))
}

// AllocateGroup covers the summed demand of several districts of the
// combined layer.
func (h *AllocationHandler) AllocateGroup(w http.ResponseWriter, r *http.Request) {
	if !allowOnly(w, r, http.MethodPost) {
		return
	}

	var req dto.GroupAllocationRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Scenario == nil {
		writeError(w, r, http.StatusBadRequest, "scenario is required")
		return
	}
	if strings.TrimSpace(req.Tanker) == "" {
		writeError(w, r, http.StatusBadRequest, "tanker is required")
		return
	}

	out, err := h.Planner.AllocateGroup(r.Context(), services.GroupAllocationRequest{
		Names:       req.Names,
		ScenarioPct: *req.Scenario,
		Tanker:      req.Tanker,
	})
	if err != nil {
		writeServiceError(w, r, "allocate group", err)
		return
	}

	writeJSON(w, r, http.StatusOK, allocationResponse(out))
}

func allocationResponse(a *services.AreaAllocation) dto.AllocationResponse {
	res := a.Result
	out := dto.AllocationResponse{
		RunID:        a.RunID,
		Kind:         string(a.Kind),
		Names:        a.Names,
		Scenario:     a.ScenarioPct,
		Tanker:       a.Tanker.Name,
		ReferenceLon: a.Reference.Lon,
		ReferenceLat: a.Reference.Lat,
		Demand:       res.Demand,
		Satisfied:    res.Satisfied(),
		UnmetDemand:  res.UnmetDemand,
		TotalTrips:   res.TotalTrips,
		TotalCost:    res.TotalCost,
		TotalFuel:    res.TotalFuel,
		Message:      a.Message(),
		Entries:      make([]dto.AllocationEntryResponse, 0, len(res.Entries)),
	}
	for _, e := range res.Entries {
		out.Entries = append(out.Entries, dto.AllocationEntryResponse{
			SourceID:       e.SourceID,
			VolumeAssigned: e.VolumeAssigned,
			Trips:          e.Trips,
			Cost:           e.Cost,
			Fuel:           e.Fuel,
			DistanceKm:     round3(e.DistanceKm),
			Lon:            e.SourceLocation.Lon,
			Lat:            e.SourceLocation.Lat,
		})
	}
	return out
}
