package issuance

import "isbnapi/internal/isbn"

//go:generate mockgen -source=ports.go -destination=mock_ports.go -package=issuance

// Engine is the identifier scheme the service issues and checks codes with.
// isbn.Scheme implements it.
type Engine interface {
	Generate(req isbn.Request, cursor isbn.Cursor) (isbn.Digits, isbn.Cursor, error)
	Batch(req isbn.Request, count int, cursor isbn.Cursor) (isbn.BatchResult, error)
	ValidateCode(code string) (isbn.Result, error)
	Split(d isbn.Digits) (country, group, publisher, book string)
	NormalizeCountry(code string) (string, error)
	NormalizePublisher(code string) (string, error)
}
