package isbn

import "fmt"

// Result is the outcome of validating a code. Expected and Actual are always
// populated so a failing position can be inspected.
type Result struct {
	Valid    bool
	Expected Vector
	Actual   Vector
	// WrongPrefix is set when the code does not carry the country and
	// publisher it was checked against. Such a code is never valid, whatever
	// its remainders.
	WrongPrefix bool
}

// Mismatched lists the moduli at which the code failed.
func (r Result) Mismatched() []int64 {
	return r.Expected.Mismatched(r.Actual)
}

// Validate checks that code carries country and publisher in their positions
// and matches the remainder vector they imply. The group digit is not
// compared. A well-formed code never produces an error, only Valid=false.
func (s Scheme) Validate(code, country, publisher string) (Result, error) {
	d, err := Parse(code)
	if err != nil {
		return Result{}, err
	}
	start := len(country) + 1 + len(publisher)
	if start >= Length {
		return Result{}, fmt.Errorf("%w: country %q and publisher %q leave no book number", ErrPrefixTooLong, country, publisher)
	}
	expected, err := s.Expected(country, publisher, code[start:])
	if err != nil {
		return Result{}, err
	}
	actual := Remainders(d)
	wrongPrefix := code[:len(country)] != country || code[len(country)+1:start] != publisher
	return Result{
		Valid:       !wrongPrefix && expected == actual,
		Expected:    expected,
		Actual:      actual,
		WrongPrefix: wrongPrefix,
	}, nil
}

// ValidateCode validates a bare code, taking the country and publisher
// segments from the configured widths.
func (s Scheme) ValidateCode(code string) (Result, error) {
	d, err := Parse(code)
	if err != nil {
		return Result{}, err
	}
	country, _, publisher, _ := s.Split(d)
	return s.Validate(code, country, publisher)
}
