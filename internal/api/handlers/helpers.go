package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"math"
	"net/http"
	"strconv"
	"strings"
	"water-distribution-service/internal/domain"
	"water-distribution-service/internal/ports"
	"water-distribution-service/internal/services"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

func allowOnly(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method == method {
		return true
	}
	w.Header().Set("Allow", method)
	writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	return false
}

// decodeBody reads exactly one JSON object and rejects unknown fields.
// It writes the error response itself and reports whether decoding succeeded.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return false
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return false
	}
	return true
}

// writeServiceError maps domain and port errors onto HTTP statuses. Anything
// unrecognised is logged and hidden behind a 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	switch {
	case errors.Is(err, domain.ErrUnknownTankerType),
		errors.Is(err, domain.ErrInvalidDemand),
		errors.Is(err, domain.ErrInvalidScenario),
		errors.Is(err, services.ErrEmptySelection):
		writeError(w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, ports.ErrAreaNotFound):
		writeError(w, r, http.StatusNotFound, err.Error())
	default:
		log.Printf("%s failed: %v", op, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
	}
}

func parseScenario(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, errors.New("scenario must be an integer between 0 and 100")
	}
	return n, nil
}

// round3 reports kilometres to the metre.
func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
