// internal/adapters/in/http/handler/helpers.go
package handler

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"

	"urbanthreads/internal/domain/common"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[handler] encode response failed: %v", err)
	}
}

// writeErr maps a taxonomy code to an HTTP status and renders {"error": msg}.
func writeErr(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch common.CodeOf(err) {
	case common.CodeValidation:
		status = http.StatusBadRequest
	case common.CodeAuth:
		status = http.StatusUnauthorized
	case common.CodeNotFound:
		status = http.StatusNotFound
	case common.CodeUnsupported:
		status = http.StatusMethodNotAllowed
	}
	if status == http.StatusInternalServerError {
		log.Printf("[handler] internal error: %v", err)
	}
	writeJSON(w, status, map[string]string{"error": common.MessageOf(err)})
}

// decodeBody decodes a JSON request body into dst. A missing or malformed body
// is a caller error, reported in the taxonomy shape.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if r.Body == nil {
		writeErr(w, common.Validation("request body is required"))
		return false
	}
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		writeErr(w, common.Validation("invalid request body"))
		return false
	}
	return true
}

func parseIntDefault(s string, def int) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes":
		return true
	}
	return false
}
