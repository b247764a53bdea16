// Package v1alpha1 exposes the crawl API over HTTP with JSON bodies.
// Handlers stay thin: decode, delegate to an orchestrator, encode. Error
// codes map onto HTTP statuses through the errors package.
package v1alpha1

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/crawlhq/crawl-api/internal/errors"
)

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode response", "error", err.Error())
	}
}

func writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	writeJSON(w, code.HTTPStatus(), errorResponse{
		Code:    code.String(),
		Message: err.Error(),
	})
}

// decodeJSON rejects malformed and trailing input.
func decodeJSON(r *http.Request, into any) error {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(into); err != nil {
		return errors.InvalidArgumentf("invalid request body: %v", err)
	}
	if dec.More() {
		return errors.InvalidArgument("invalid request body: trailing data")
	}
	return nil
}
