package apierr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/mcoot/scorekeeper/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string        `json:"code"`
	Message string        `json:"message"`
	Issues  []model.Issue `json:"issues,omitempty"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Error codes
const (
	CodeInvalidRequest      = "INVALID_REQUEST"
	CodeValidationFailed    = "VALIDATION_FAILED"
	CodeGameNotFound        = "GAME_NOT_FOUND"
	CodeGameCompleted       = "GAME_COMPLETED"
	CodeDuplicatePlayerName = "DUPLICATE_PLAYER_NAME"
	CodeTooManyPlayers      = "TOO_MANY_PLAYERS"
	CodeModuleNotFound      = "MODULE_NOT_FOUND"
	CodeComponentNotFound   = "COMPONENT_NOT_FOUND"
	CodeInternalError       = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	var validationErr *model.ValidationError
	if errors.As(err, &validationErr) {
		return &httpError{http.StatusBadRequest, APIError{
			Code:    CodeValidationFailed,
			Message: "Invalid round input: " + summarize(validationErr.Issues),
			Issues:  validationErr.Issues,
		}}
	}

	var tooMany *model.TooManyPlayersError
	if errors.As(err, &tooMany) {
		return &httpError{http.StatusBadRequest, APIError{
			Code:    CodeTooManyPlayers,
			Message: fmt.Sprintf("Maximum number of players exceeded. You can add up to %d players", tooMany.Max),
		}}
	}

	var moduleErr *model.ModuleNotFoundError
	if errors.As(err, &moduleErr) {
		return &httpError{http.StatusBadRequest, APIError{
			Code:    CodeModuleNotFound,
			Message: fmt.Sprintf("Module %s not found", moduleErr.Module),
		}}
	}

	var componentErr *model.ComponentNotFoundError
	if errors.As(err, &componentErr) {
		return &httpError{http.StatusBadRequest, APIError{
			Code:    CodeComponentNotFound,
			Message: fmt.Sprintf("Component %s not found in module %s", componentErr.Component, componentErr.Module),
		}}
	}

	switch {
	case errors.Is(err, model.ErrGameNotFound):
		return &httpError{http.StatusNotFound, APIError{Code: CodeGameNotFound, Message: "Game not found"}}
	case errors.Is(err, model.ErrGameCompleted):
		return &httpError{http.StatusConflict, APIError{Code: CodeGameCompleted, Message: "Game already completed"}}
	case errors.Is(err, model.ErrDuplicatePlayerName):
		return &httpError{http.StatusConflict, APIError{Code: CodeDuplicatePlayerName, Message: "Player names must be unique."}}
	case errors.Is(err, model.ErrTooManyPlayers):
		return &httpError{http.StatusBadRequest, APIError{Code: CodeTooManyPlayers, Message: "Maximum number of players exceeded"}}
	case errors.Is(err, model.ErrModuleNotFound):
		return &httpError{http.StatusBadRequest, APIError{Code: CodeModuleNotFound, Message: "Module not found"}}
	case errors.Is(err, model.ErrComponentNotFound):
		return &httpError{http.StatusBadRequest, APIError{Code: CodeComponentNotFound, Message: "Component not found"}}
	default:
		return &httpError{http.StatusInternalServerError, APIError{Code: CodeInternalError, Message: "Internal server error"}}
	}
}

func summarize(issues []model.Issue) string {
	if len(issues) == 0 {
		return "no details"
	}
	msg := issues[0].String()
	if len(issues) > 1 {
		msg += fmt.Sprintf(" (and %d more)", len(issues)-1)
	}
	return msg
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{Code: CodeInvalidRequest, Message: message}}
}

// NewValidationError reports every issue found in a request body
func NewValidationError(message string, issues []model.Issue) error {
	return &httpError{http.StatusBadRequest, APIError{
		Code:    CodeValidationFailed,
		Message: message,
		Issues:  issues,
	}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{Code: CodeInternalError, Message: "Internal server error"}}
}
