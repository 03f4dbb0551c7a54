package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"water-distribution-service/internal/api/dto"
	"water-distribution-service/internal/domain"
	"water-distribution-service/internal/ports"
	"water-distribution-service/internal/services"
)

const defaultSummaryLimit = 10

type SummaryHandler struct {
	Planner *services.Planner
}

// Summary answers GET /summary?level=sector|district&scenario=N&tanker=T&limit=K.
// Rows come back most expensive first; top and bottom hold limit rows each.
func (h *SummaryHandler) Summary(w http.ResponseWriter, r *http.Request) {
	if !allowOnly(w, r, http.MethodGet) {
		return
	}

	q := r.URL.Query()

	level, err := domain.ParseAreaKind(q.Get("level"))
	if err != nil || level == domain.AreaCombined {
		writeError(w, r, http.StatusBadRequest, "level must be sector or district")
		return
	}

	scenario, err := parseScenario(q.Get("scenario"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	tanker := strings.TrimSpace(q.Get("tanker"))
	if tanker == "" {
		writeError(w, r, http.StatusBadRequest, "tanker is required")
		return
	}

	limit := defaultSummaryLimit
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeError(w, r, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	sum, err := h.Planner.Summarize(r.Context(), level, scenario, tanker)
	if err != nil {
		writeServiceError(w, r, "summarize", err)
		return
	}

	res := dto.SummaryResponse{
		Level:    string(sum.Level),
		Scenario: sum.ScenarioPct,
		Tanker:   sum.Tanker,
		Cached:   sum.Cached,
		Top:      summaryRows(sum.Top(limit)),
		Bottom:   summaryRows(sum.Bottom(limit)),
		Rows:     summaryRows(sum.Ranked()),
	}
	if row, ok := sum.MostCostly(); ok {
		res.MostCostly = summaryRow(row)
	}
	if row, ok := sum.LeastCostly(); ok {
		res.LeastCostly = summaryRow(row)
	}

	writeJSON(w, r, http.StatusOK, res)
}

func summaryRow(r ports.SummaryRow) *dto.SummaryRowResponse {
	return &dto.SummaryRowResponse{
		Name:        r.Name,
		Demand:      r.Demand,
		TotalCost:   r.TotalCost,
		TotalTrips:  r.TotalTrips,
		TotalFuel:   r.TotalFuel,
		UnmetDemand: r.UnmetDemand,
	}
}

func summaryRows(rows []ports.SummaryRow) []dto.SummaryRowResponse {
	out := make([]dto.SummaryRowResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, *summaryRow(r))
	}
	return out
}
