package api

import (
	"net/http"
	"water-distribution-service/internal/api/handlers"
	"water-distribution-service/internal/metrics"
	"water-distribution-service/internal/services"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(planner *services.Planner) http.Handler {
	metrics.RegisterDefault()

	mux := http.NewServeMux()

	refHandler := &handlers.ReferenceHandler{
		Tankers: planner.Tankers,
		Sources: planner.Sources,
		Areas:   planner.Areas,
	}
	allocHandler := &handlers.AllocationHandler{Planner: planner}
	summaryHandler := &handlers.SummaryHandler{Planner: planner}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/tankers", refHandler.ListTankers)
	mux.HandleFunc("/sources", refHandler.ListSources)
	mux.HandleFunc("/areas", refHandler.ListAreas)
	mux.HandleFunc("/allocations", allocHandler.Allocate)
	mux.HandleFunc("/allocations/group", allocHandler.AllocateGroup)
	mux.HandleFunc("/summary", summaryHandler.Summary)
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	return requestIDMiddleware(loggingMiddleware(mux))
}
