package issuance

import (
	"context"
	"errors"

	"isbnapi/internal/isbn"
	"isbnapi/internal/platform/logger"
)

// Service turns API requests into scheme calls. It keeps no state between
// requests; callers continue a sequence by passing back next_offset.
type Service struct {
	engine Engine
}

// NewService creates a new issuance service.
func NewService(engine Engine) *Service {
	return &Service{engine: engine}
}

// Generate issues one code.
func (s *Service) Generate(ctx context.Context, in GenerateRequest) (GenerateResponse, error) {
	req, err := s.request(in.CountryCode, in.PublisherCode, in.UseMultiples)
	if err != nil {
		return GenerateResponse{}, err
	}

	d, next, err := s.engine.Generate(req, isbn.Cursor(in.Offset))
	if err != nil {
		return GenerateResponse{}, err
	}
	res, err := s.engine.ValidateCode(d.String())
	if err != nil {
		return GenerateResponse{}, err
	}

	lg := logger.From(ctx)
	lg.Info().
		Str("isbn", d.String()).
		Bool("use_multiples", req.UseMultiples).
		Int64("offset", in.Offset).
		Msg("isbn generated")

	return GenerateResponse{
		ISBN:          d.String(),
		Valid:         res.Valid,
		CountryCode:   req.Country,
		PublisherCode: req.Publisher,
		BookNumber:    isbn.BookNumber(d, req),
		NextOffset:    int64(next),
	}, nil
}

// Validate checks a bare code. Invalid codes come back with the first valid
// code of the same prefix when one exists.
func (s *Service) Validate(ctx context.Context, in ValidateRequest) (ValidateResponse, error) {
	d, err := isbn.Parse(in.ISBN)
	if err != nil {
		return ValidateResponse{}, err
	}
	res, err := s.engine.ValidateCode(in.ISBN)
	if err != nil {
		return ValidateResponse{}, err
	}
	country, _, publisher, _ := s.engine.Split(d)

	mismatched := res.Mismatched()
	if mismatched == nil {
		mismatched = []int64{}
	}
	out := ValidateResponse{
		ISBN:               in.ISBN,
		Valid:              res.Valid,
		CountryCode:        country,
		PublisherCode:      publisher,
		ExpectedRemainders: res.Expected,
		ActualRemainders:   res.Actual,
		MismatchedModuli:   mismatched,
	}

	if !res.Valid {
		corrected, _, err := s.engine.Generate(isbn.Request{Country: country, Publisher: publisher}, 0)
		switch {
		case err == nil:
			out.CorrectedISBN = corrected.String()
		case !errors.Is(err, isbn.ErrCapacityExhausted):
			return ValidateResponse{}, err
		}
	}

	lg := logger.From(ctx)
	lg.Debug().
		Str("isbn", in.ISBN).
		Bool("valid", res.Valid).
		Ints64("mismatched_moduli", mismatched).
		Msg("isbn validated")
	return out, nil
}

// BatchGenerate issues count distinct codes under one prefix.
func (s *Service) BatchGenerate(ctx context.Context, in BatchRequest) (BatchResponse, error) {
	req, err := s.request(in.CountryCode, in.PublisherCode, in.UseMultiples)
	if err != nil {
		return BatchResponse{}, err
	}
	count := DefaultCount
	if in.Count != nil {
		count = *in.Count
	}

	res, err := s.engine.Batch(req, count, isbn.Cursor(in.Offset))
	if err != nil {
		return BatchResponse{}, err
	}

	lg := logger.From(ctx)
	lg.Info().
		Str("prefix", res.Prefix).
		Int("count", res.Count()).
		Bool("use_multiples", req.UseMultiples).
		Int64("offset", in.Offset).
		Msg("isbn batch generated")

	return BatchResponse{
		ISBNs:      res.Strings(),
		Count:      res.Count(),
		Prefix:     res.Prefix,
		NextOffset: int64(res.Next),
	}, nil
}

func (s *Service) request(country, publisher string, useMultiples *bool) (isbn.Request, error) {
	if country == "" {
		country = DefaultCountryCode
	}
	if publisher == "" {
		publisher = DefaultPublisherCode
	}
	country, err := s.engine.NormalizeCountry(country)
	if err != nil {
		return isbn.Request{}, err
	}
	publisher, err = s.engine.NormalizePublisher(publisher)
	if err != nil {
		return isbn.Request{}, err
	}

	multiples := true
	if useMultiples != nil {
		multiples = *useMultiples
	}
	return isbn.Request{Country: country, Publisher: publisher, UseMultiples: multiples}, nil
}
