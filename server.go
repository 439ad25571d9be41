package main

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
)

// searchServer exposes a read-only search surface over the exercise index.
// It is not the application's REST API, just a reviewer-facing endpoint over
// the reconciled catalog.
type searchServer struct {
	indexer *SearchIndexer
	log     zerolog.Logger
}

// Handler builds the HTTP handler with CORS and h2c support.
func (s *searchServer) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/api/exercises/search", s.handleSearch)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	})

	return h2c.NewHandler(corsHandler.Handler(mux), &http2.Server{})
}

func (s *searchServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *searchServer) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	limit := int64(50)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed < 1 || parsed > 500 {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "limit must be an integer in [1,500]"})
			return
		}
		limit = parsed
	}

	hits, err := s.indexer.Search(query, limit)
	if err != nil {
		s.log.Error().Err(err).Str("query", query).Msg("search failed")
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": "search unavailable"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"query":     query,
		"total":     len(hits),
		"exercises": hits,
	})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
