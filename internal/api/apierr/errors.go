package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcoot/battleship-go2/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest       = "INVALID_REQUEST"
	CodeInvalidSide          = "INVALID_SIDE"
	CodeInvalidShip          = "INVALID_SHIP"
	CodeInvalidDirection     = "INVALID_DIRECTION"
	CodeOutOfBounds          = "OUT_OF_BOUNDS"
	CodeAdjacencyConflict    = "ADJACENCY_CONFLICT"
	CodeShipNotInFleet       = "SHIP_NOT_IN_FLEET"
	CodePlacementClosed      = "PLACEMENT_CLOSED"
	CodeFleetPlacementFailed = "FLEET_PLACEMENT_FAILED"
	CodeFleetIncomplete      = "FLEET_INCOMPLETE"
	CodeAlreadyAttacked      = "ALREADY_ATTACKED"
	CodeNotYourTurn          = "NOT_YOUR_TURN"
	CodeGameOver             = "GAME_OVER"
	CodeMatchNotFound        = "MATCH_NOT_FOUND"
	CodeCommitmentMismatch   = "COMMITMENT_MISMATCH"
	CodeInternalError        = "INTERNAL_ERROR"
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

// Status returns the HTTP status an error maps to
func Status(err error) int {
	return toHTTPError(err).status
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrMatchNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeMatchNotFound, "Match not found"}}
	case errors.Is(err, model.ErrInvalidSide):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidSide, "Side must be human or computer"}}
	case errors.Is(err, model.ErrInvalidShipLength):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidShip, "Ship length must be positive"}}
	case errors.Is(err, model.ErrInvalidDirection):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidDirection, "Direction must be horizontal or vertical"}}
	case errors.Is(err, model.ErrOutOfBounds):
		return &httpError{http.StatusBadRequest, APIError{CodeOutOfBounds, "Coordinate is outside the grid"}}
	case errors.Is(err, model.ErrAdjacencyConflict):
		return &httpError{http.StatusConflict, APIError{CodeAdjacencyConflict, "Ship overlaps or touches another ship"}}
	case errors.Is(err, model.ErrShipNotInFleet):
		return &httpError{http.StatusConflict, APIError{CodeShipNotInFleet, "No unplaced ship of that length"}}
	case errors.Is(err, model.ErrPlacementClosed):
		return &httpError{http.StatusConflict, APIError{CodePlacementClosed, "Ships can only be placed before the first attack"}}
	case errors.Is(err, model.ErrFleetPlacementFailed):
		return &httpError{http.StatusServiceUnavailable, APIError{CodeFleetPlacementFailed, "Could not place fleet, try again"}}
	case errors.Is(err, model.ErrFleetIncomplete):
		return &httpError{http.StatusConflict, APIError{CodeFleetIncomplete, "Both fleets must be placed before attacking"}}
	case errors.Is(err, model.ErrAlreadyAttacked):
		return &httpError{http.StatusConflict, APIError{CodeAlreadyAttacked, "Coordinate was already attacked"}}
	case errors.Is(err, model.ErrNotYourTurn):
		return &httpError{http.StatusForbidden, APIError{CodeNotYourTurn, "Not your turn"}}
	case errors.Is(err, model.ErrGameOver):
		return &httpError{http.StatusConflict, APIError{CodeGameOver, "Match is over"}}
	case errors.Is(err, model.ErrCommitmentMismatch):
		return &httpError{http.StatusUnprocessableEntity, APIError{CodeCommitmentMismatch, "Fleet does not match commitment"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
