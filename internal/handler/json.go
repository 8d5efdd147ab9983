package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/aditi25bce10868-blip/NexusPrime/internal/domain"
)

// writeJSON sends a JSON response with the given status code and body.
func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("write JSON response", "error", err)
	}
}

// writeSuccess sends the success envelope {"status":"success","data":...}.
// Extra top-level fields (such as "count") can be merged in via extra.
func writeSuccess(w http.ResponseWriter, status int, data map[string]any, extra map[string]any) {
	body := map[string]any{"status": "success"}
	for k, v := range extra {
		body[k] = v
	}
	if data != nil {
		body["data"] = data
	}
	writeJSON(w, status, body)
}

// writeError sends the error envelope {"status":"error","message":...}.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{"status": "error", "message": message})
}

// writeDomainError maps a service error onto the HTTP error taxonomy:
// invalid input and duplicates map to 400, ownership violations to 403,
// missing entities to 404. Anything else becomes a 500 with the error text
// passed through, additionally logged.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrDuplicateEmail):
		writeError(w, http.StatusBadRequest, "User already exists")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "Not authorized to modify this resource")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "Not found")
	default:
		slog.Error("unexpected error", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

// readJSON decodes the request body into the given destination.
func readJSON(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}
