package issuance

import (
	"errors"
	"net/http"

	"isbnapi/internal/httpx"
	"isbnapi/internal/isbn"
	"isbnapi/internal/platform/logger"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// batchErrorResponse adds how far an underfilled batch got.
type batchErrorResponse struct {
	httpx.ErrorResponse
	Produced int `json:"produced"`
}

// Generate handles POST /api/generate
func (h *HTTPHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var in GenerateRequest
	if !decode(w, r, &in) {
		return
	}
	out, err := h.service.Generate(r.Context(), in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, out)
}

// Validate handles POST /api/validate
func (h *HTTPHandler) Validate(w http.ResponseWriter, r *http.Request) {
	var in ValidateRequest
	if !decode(w, r, &in) {
		return
	}
	out, err := h.service.Validate(r.Context(), in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, out)
}

// BatchGenerate handles POST /api/batch-generate
func (h *HTTPHandler) BatchGenerate(w http.ResponseWriter, r *http.Request) {
	var in BatchRequest
	if !decode(w, r, &in) {
		return
	}
	out, err := h.service.BatchGenerate(r.Context(), in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, out)
}

// decode reads and validates the body, writing the error response itself
// when it fails.
func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := httpx.DecodeJSON(r, dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			httpx.JSONError(w, r, http.StatusRequestEntityTooLarge, "BODY_TOO_LARGE", "Request body too large", nil)
			return false
		}
		httpx.JSONError(w, r, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body", nil)
		return false
	}
	if details := httpx.ValidateStruct(dst); len(details) > 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "MALFORMED_INPUT", httpx.Messages(details), details)
		return false
	}
	return true
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var under *isbn.UnderfilledError
	switch {
	case errors.As(err, &under):
		httpx.JSON(w, http.StatusConflict, batchErrorResponse{
			ErrorResponse: httpx.NewError(r, "BATCH_UNDERFILLED", err.Error(), nil),
			Produced:      under.Produced,
		})
	case errors.Is(err, isbn.ErrMalformedInput):
		httpx.JSONError(w, r, http.StatusBadRequest, "MALFORMED_INPUT", err.Error(), nil)
	case errors.Is(err, isbn.ErrPrefixTooLong):
		httpx.JSONError(w, r, http.StatusBadRequest, "PREFIX_TOO_LONG", err.Error(), nil)
	case errors.Is(err, isbn.ErrInvalidCount):
		httpx.JSONError(w, r, http.StatusBadRequest, "INVALID_COUNT", err.Error(), nil)
	case errors.Is(err, isbn.ErrCapacityExhausted):
		httpx.JSONError(w, r, http.StatusConflict, "CAPACITY_EXHAUSTED", err.Error(), nil)
	case errors.Is(err, isbn.ErrInvariantBroken):
		lg := logger.From(r.Context())
		lg.Error().Err(err).Bool("alert", true).Msg("generator invariant broken")
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
	default:
		lg := logger.From(r.Context())
		lg.Error().Err(err).Msg("unhandled error")
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
	}
}
