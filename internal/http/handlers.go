package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"pacedash/internal/pacing"
	"pacedash/internal/report"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	// The upstream spreadsheet API is not probed here: a cold check per
	// readiness poll would burn the Sheets quota the dashboard itself needs.
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ready",
		"caches": map[string]int{
			"client":  s.clientCache.Size(),
			"pod":     s.podCache.Size(),
			"company": s.companyCache.Size(),
		},
	})
}

func (s *Server) handleCeo(w http.ResponseWriter, r *http.Request) {
	if res := s.validator.ValidateCeo(token(r)); !res.Valid {
		writeUnauthorized(w)
		return
	}

	if resp, ok := s.companyCache.Get("ceo"); ok {
		writeJSON(w, http.StatusOK, resp)
		return
	}

	resp, err := s.service.Company(r.Context())
	if err != nil {
		s.logger.ErrorContext(r.Context(), "company report failed", "error", err)
		writeFetchError(w)
		return
	}
	s.companyCache.Set("ceo", resp)
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handlePod(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if res := s.validator.ValidatePod(slug, token(r)); !res.Valid {
		writeUnauthorized(w)
		return
	}
	p, ok := period(r)
	if !ok {
		writeBadPeriod(w)
		return
	}

	key := slug + "|" + string(p)
	if resp, ok := s.podCache.Get(key); ok {
		writeJSON(w, http.StatusOK, resp)
		return
	}

	resp, err := s.service.Pod(r.Context(), slug, p)
	if err != nil {
		if errors.Is(err, report.ErrNotFound) {
			writeUnauthorized(w)
			return
		}
		s.logger.ErrorContext(r.Context(), "pod report failed", "pod", slug, "error", err)
		writeFetchError(w)
		return
	}
	s.podCache.Set(key, resp)
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleClient(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if res := s.validator.ValidateClient(slug, token(r)); !res.Valid {
		writeUnauthorized(w)
		return
	}
	p, ok := period(r)
	if !ok {
		writeBadPeriod(w)
		return
	}

	key := slug + "|" + string(p)
	if resp, ok := s.clientCache.Get(key); ok {
		writeJSON(w, http.StatusOK, resp)
		return
	}

	resp, err := s.service.Client(r.Context(), slug, p)
	if err != nil {
		if errors.Is(err, report.ErrNotFound) {
			writeUnauthorized(w)
			return
		}
		s.logger.ErrorContext(r.Context(), "client report failed", "client", slug, "error", err)
		writeFetchError(w)
		return
	}
	s.clientCache.Set(key, resp)
	writeJSON(w, http.StatusOK, resp)
}

func token(r *http.Request) string {
	return r.URL.Query().Get("token")
}

// period reads the optional calendar-window parameter. Absent means the
// full series; an unknown value is a client error.
func period(r *http.Request) (pacing.TimePeriod, bool) {
	switch p := pacing.TimePeriod(r.URL.Query().Get("period")); p {
	case "", pacing.PeriodCurrentMonth, pacing.PeriodLastMonth, pacing.PeriodLast90Days, pacing.PeriodYearToDate:
		return p, true
	default:
		return "", false
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeUnauthorized(w http.ResponseWriter) {
	writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
}

func writeBadPeriod(w http.ResponseWriter) {
	writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid period"})
}

// writeFetchError keeps upstream detail out of the response; the log line
// carries it.
func writeFetchError(w http.ResponseWriter) {
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to fetch data"})
}
