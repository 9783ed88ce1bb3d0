package httpx

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestJSON(t *testing.T) {
	w := httptest.NewRecorder()
	JSON(w, http.StatusOK, map[string]string{"isbn": "3916000002931"})

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if w.Header().Get("Content-Type") != "application/json" {
		t.Error("Expected Content-Type application/json")
	}

	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if body["isbn"] != "3916000002931" {
		t.Errorf("unexpected body %v", body)
	}
}

func TestJSONError(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/api/validate", nil)
	r = r.WithContext(ContextWithRequestID(r.Context(), "req-7"))
	w := httptest.NewRecorder()

	details := []ErrorDetail{{Field: "isbn", Message: "isbn must be 13 digits"}}
	JSONError(w, r, http.StatusBadRequest, "MALFORMED_INPUT", "isbn must be 13 digits", details)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}

	var response ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if response.Error != "isbn must be 13 digits" || response.Code != "MALFORMED_INPUT" {
		t.Errorf("unexpected error body %+v", response)
	}
	if response.RequestID != "req-7" {
		t.Errorf("Expected request id req-7, got %q", response.RequestID)
	}
	if len(response.Details) != 1 {
		t.Errorf("Expected 1 detail, got %d", len(response.Details))
	}
}

func TestDecodeJSON_RejectsUnknownFields(t *testing.T) {
	var dst struct {
		ISBN string `json:"isbn"`
	}

	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"isbn":"1","extra":true}`))
	if err := DecodeJSON(r, &dst); err == nil {
		t.Error("Expected unknown field to be rejected")
	}

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"isbn":"1"}`))
	if err := DecodeJSON(r, &dst); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
