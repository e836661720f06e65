package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/mcoot/battleship-go2/internal/api/apierr"
)

// ErrorResponse is the body of every failed API call
type ErrorResponse = apierr.ErrorResponse

// WriteError maps err onto its status and stable code
func WriteError(w http.ResponseWriter, err error) {
	apierr.WriteError(w, err)
}

// NewInvalidRequestError reports a body or parameter the API cannot use
func NewInvalidRequestError(message string) error {
	return apierr.NewInvalidRequestError(message)
}

// decodeBody reads a JSON request body into v. Unknown fields are rejected.
// An empty body is accepted only when the operation has defaults for every field.
func decodeBody(r *http.Request, v any, optional bool) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if optional && errors.Is(err, io.EOF) {
			return nil
		}
		return NewInvalidRequestError("invalid request body: " + err.Error())
	}
	return nil
}
