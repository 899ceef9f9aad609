package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/scorekeeper/internal/api/apierr"
	"github.com/mcoot/scorekeeper/internal/model"
)

// Re-export from apierr for convenience
type APIError = apierr.APIError
type ErrorResponse = apierr.ErrorResponse

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	apierr.WriteError(w, err)
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return apierr.NewInvalidRequestError(message)
}

// NewValidationError creates a validation error carrying every issue
func NewValidationError(message string, issues []model.Issue) error {
	return apierr.NewValidationError(message, issues)
}

// decodeBody reads a JSON request body into dst
func decodeBody(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return NewInvalidRequestError("Invalid request body")
	}
	return nil
}

// readBody decodes a JSON request body into dst and returns the raw bytes
// for schema checks that need to see absent fields.
func readBody(r *http.Request, dst any) ([]byte, error) {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, NewInvalidRequestError("Invalid request body")
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return nil, NewInvalidRequestError("Invalid request body")
	}
	return data, nil
}

func gameID(r *http.Request) model.GameID {
	return model.GameID(mux.Vars(r)["id"])
}
