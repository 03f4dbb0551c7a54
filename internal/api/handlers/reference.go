package handlers

import (
	"log"
	"net/http"
	"water-distribution-service/internal/api/dto"
	"water-distribution-service/internal/domain"
	"water-distribution-service/internal/ports"
)

// ReferenceHandler exposes read-only reference data: tankers, wells and
// demand areas.
type ReferenceHandler struct {
	Tankers *domain.TankerCatalog
	Sources ports.SourceRepository
	Areas   ports.AreaRepository
}

func (h *ReferenceHandler) ListTankers(w http.ResponseWriter, r *http.Request) {
	if !allowOnly(w, r, http.MethodGet) {
		return
	}

	types := h.Tankers.Types()
	res := dto.ListTankersResponse{Tankers: make([]dto.TankerResponse, 0, len(types))}
	for _, t := range types {
		res.Tankers = append(res.Tankers, dto.TankerResponse{
			Name:             t.Name,
			Capacity:         t.Capacity,
			FixedCost:        t.FixedCost,
			CostPerKm:        t.CostPerKm,
			ConsumptionPerKm: t.ConsumptionPerKm,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *ReferenceHandler) ListSources(w http.ResponseWriter, r *http.Request) {
	if !allowOnly(w, r, http.MethodGet) {
		return
	}

	sources, err := h.Sources.ListSources(r.Context())
	if err != nil {
		log.Printf("list sources failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListSourcesResponse{Sources: make([]dto.SourceResponse, 0, len(sources))}
	for _, s := range sources {
		res.Sources = append(res.Sources, dto.SourceResponse{
			ID:            s.ID,
			YieldM3PerDay: s.YieldM3PerDay,
			Lon:           s.Location.Lon,
			Lat:           s.Location.Lat,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

// ListAreas requires ?kind=sector|district|combined.
func (h *ReferenceHandler) ListAreas(w http.ResponseWriter, r *http.Request) {
	if !allowOnly(w, r, http.MethodGet) {
		return
	}

	kind, err := domain.ParseAreaKind(r.URL.Query().Get("kind"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "kind must be sector, district or combined")
		return
	}

	areas, err := h.Areas.ListAreas(r.Context(), kind)
	if err != nil {
		log.Printf("list areas failed: kind=%s err=%v", kind, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListAreasResponse{Areas: make([]dto.AreaResponse, 0, len(areas))}
	for _, a := range areas {
		c := a.Centroid()
		res.Areas = append(res.Areas, dto.AreaResponse{
			Kind:           string(a.Kind),
			Name:           a.Name,
			DemandM3PerDay: a.DemandM3PerDay,
			CentroidLon:    c.Lon,
			CentroidLat:    c.Lat,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
