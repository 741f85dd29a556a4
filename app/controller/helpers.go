package controller

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"sanchez-brick/service"
)

// errorResponse is the JSON error envelope of the /api endpoints
type errorResponse struct {
	Detail string `json:"detail"`
}

// writeJSON encodes v as the response body with the given status
func writeJSON(w http.ResponseWriter, status int, v any, handler string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msgf("❌ %s: Error encoding response", handler)
	}
}

// writeJSONError writes {"detail": ...} with the given status
func writeJSONError(w http.ResponseWriter, status int, detail string, handler string) {
	writeJSON(w, status, errorResponse{Detail: detail}, handler)
}

// renderPage renders an HTML page with the given status
func renderPage(w http.ResponseWriter, renderer *service.PageRenderer, status int, page string, data any, handler string) {
	var buf bytes.Buffer
	if err := renderer.Render(&buf, page, data); err != nil {
		log.Error().Err(err).Msgf("❌ %s: Error rendering %s", handler, page)
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		log.Error().Err(err).Msgf("❌ %s: Error writing response", handler)
	}
}
