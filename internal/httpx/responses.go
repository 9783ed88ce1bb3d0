package httpx

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the body of every failed request. Error is a
// human-readable message the front end shows verbatim; Code is stable for
// programmatic use.
type ErrorResponse struct {
	Error     string        `json:"error"`
	Code      string        `json:"code"`
	Details   []ErrorDetail `json:"details,omitempty"`
	RequestID string        `json:"request_id,omitempty"`
}

type ErrorDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// JSON writes v with the given status.
func JSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

// NewError builds an ErrorResponse tagged with the request ID.
func NewError(r *http.Request, code, message string, details []ErrorDetail) ErrorResponse {
	return ErrorResponse{
		Error:     message,
		Code:      code,
		Details:   details,
		RequestID: RequestIDFrom(r),
	}
}

func JSONError(w http.ResponseWriter, r *http.Request, statusCode int, code string, message string, details []ErrorDetail) {
	JSON(w, statusCode, NewError(r, code, message, details))
}

// DecodeJSON reads a single JSON object from the request body into dst.
// Unknown fields are rejected.
func DecodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}
