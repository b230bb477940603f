// Package mockserver serves the canned development responses over HTTP so a
// frontend can run without the real backend.
package mockserver

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/Ridwanullahi-super/chimbo-helping-hands/client"
	"github.com/Ridwanullahi-super/chimbo-helping-hands/internal/mockserver/recovery"
)

// NewRouter builds the mock backend. Every path under prefix is answered by
// the same matcher the client falls back to; now stamps mock tokens and may
// be nil.
func NewRouter(prefix string, now func() time.Time) *mux.Router {
	mt := client.NewMockTransport(now)
	prefix = strings.TrimRight(prefix, "/")

	r := mux.NewRouter()
	r.Use(recovery.Middleware)
	r.Use(corsMiddleware)

	r.HandleFunc("/health", handleHealth).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	api := r.PathPrefix(prefix + "/").Subrouter()
	api.PathPrefix("/").Handler(mockHandler(prefix, mt))

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]any{"success": false, "message": "Route not found"})
	})
	return r
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Mock backend is running",
		"data":    map[string]string{"status": "ok"},
	})
}

func mockHandler(prefix string, mt *client.MockTransport) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := strings.TrimPrefix(r.URL.Path, prefix)
		if r.URL.RawQuery != "" {
			path += "?" + r.URL.RawQuery
		}
		resp, err := mt.RoundTrip(r.Context(), &client.Request{
			Method: r.Method,
			Path:   path,
			URL:    r.URL.String(),
			Header: r.Header,
		})
		if err != nil {
			log.Error().Err(err).Str("path", path).Msg("mock response failed")
			writeJSON(w, http.StatusInternalServerError, map[string]any{"success": false, "message": err.Error()})
			return
		}
		log.Debug().Str("method", r.Method).Str("path", path).Msg("mock response served")
		for k, v := range resp.Header {
			w.Header()[k] = v
		}
		w.WriteHeader(resp.StatusCode)
		_, _ = w.Write(resp.Body)
	})
}

// corsMiddleware lets a browser frontend on another origin call the mock.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Request-ID")
		h.Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}
