package issuance

import "isbnapi/internal/isbn"

// Defaults applied when a request leaves a field out.
const (
	DefaultCountryCode   = "3"
	DefaultPublisherCode = "16"
	DefaultCount         = 10
)

// GenerateRequest is the body of POST /api/generate.
type GenerateRequest struct {
	CountryCode   string `json:"country_code" validate:"omitempty,number"`
	PublisherCode string `json:"publisher_code" validate:"omitempty,number"`
	UseMultiples  *bool  `json:"use_multiples"`
	Offset        int64  `json:"offset" validate:"gte=0"`
}

// GenerateResponse is the body returned for a generated code.
type GenerateResponse struct {
	ISBN          string `json:"isbn"`
	Valid         bool   `json:"valid"`
	CountryCode   string `json:"country_code"`
	PublisherCode string `json:"publisher_code"`
	BookNumber    string `json:"book_number"`
	NextOffset    int64  `json:"next_offset"`
}

// ValidateRequest is the body of POST /api/validate.
type ValidateRequest struct {
	ISBN string `json:"isbn" validate:"required,isbn13"`
}

// ValidateResponse reports both remainder vectors, ordered mod 3, 5, 7, 11, 13.
type ValidateResponse struct {
	ISBN               string      `json:"isbn"`
	Valid              bool        `json:"valid"`
	CountryCode        string      `json:"country_code"`
	PublisherCode      string      `json:"publisher_code"`
	ExpectedRemainders isbn.Vector `json:"expected_remainders"`
	ActualRemainders   isbn.Vector `json:"actual_remainders"`
	MismatchedModuli   []int64     `json:"mismatched_moduli"`
	CorrectedISBN      string      `json:"corrected_isbn,omitempty"`
}

// BatchRequest is the body of POST /api/batch-generate.
type BatchRequest struct {
	CountryCode   string `json:"country_code" validate:"omitempty,number"`
	PublisherCode string `json:"publisher_code" validate:"omitempty,number"`
	Count         *int   `json:"count"`
	UseMultiples  *bool  `json:"use_multiples"`
	Offset        int64  `json:"offset" validate:"gte=0"`
}

// BatchResponse lists the issued codes in generation order.
type BatchResponse struct {
	ISBNs      []string `json:"isbns"`
	Count      int      `json:"count"`
	Prefix     string   `json:"prefix"`
	NextOffset int64    `json:"next_offset"`
}
