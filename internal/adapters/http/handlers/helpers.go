package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"mime"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/jsamuelsen11/todo-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-service/internal/domain"
	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
)

// parseTodoID extracts and validates the UUID path parameter. A malformed
// identifier is a validation failure, reported before any lookup is
// attempted, never conflated with "not found".
func parseTodoID(r *http.Request) (uuid.UUID, error) {
	raw := chi.URLParam(r, "id")
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, &domain.ValidationError{
			Fields: map[string]string{"id": fmt.Sprintf("must be a valid UUID, got %q", raw)},
		}
	}
	return id, nil
}

// parseFilter extracts and validates the list filter query parameter.
func parseFilter(r *http.Request) (todo.Filter, error) {
	return todo.ParseFilter(r.URL.Query().Get("filter"))
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", slog.Any("error", err))
	}
}

// maxJSONBodyBytes is the maximum allowed size for a JSON request body (1 MB).
const maxJSONBodyBytes = 1 << 20

// decodeJSONBody decodes the request body as JSON into dst. Requests must
// declare an application/json content type (415 otherwise), and the body is
// limited to maxJSONBodyBytes (413 beyond that). On failure it writes the
// error response and returns false.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	ct, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || ct != "application/json" {
		dto.WriteErrorResponse(w, r,
			fmt.Errorf("%w: Content-Type must be application/json", domain.ErrUnsupportedMedia))
		return false
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			dto.WriteErrorResponse(w, r,
				fmt.Errorf("%w: request body exceeds %d bytes", domain.ErrPayloadTooLarge, maxErr.Limit))
			return false
		}
		dto.WriteErrorResponse(w, r, &domain.ValidationError{
			Fields: map[string]string{"body": "invalid JSON"},
		})
		return false
	}
	return true
}
