package isbn

import "fmt"

// Cursor selects a residue slot within a prefix. Slot k maps to book number
// base + k*Modulus. Cursors are plain values: callers carry them between
// calls, nothing is remembered by the scheme.
type Cursor int64

// Request names the prefix to generate under.
type Request struct {
	Country      string
	Publisher    string
	UseMultiples bool
}

// Prefix is the country and publisher concatenation shared by generated codes.
func (r Request) Prefix() string {
	return r.Country + r.Publisher
}

// plan is the precomputed arithmetic for one prefix.
type plan struct {
	head  string // country + group digit + publisher
	width int    // book-number digits
	base  int64  // least book number satisfying the remainders
	limit int64  // 10^width
}

func (s Scheme) plan(country, publisher string) (plan, error) {
	if !isDigits(country) {
		return plan{}, malformed("country code must be digits, got %q", country)
	}
	if !isDigits(publisher) {
		return plan{}, malformed("publisher code must be digits, got %q", publisher)
	}
	width := Length - len(country) - len(publisher) - 1
	if width <= 0 {
		return plan{}, fmt.Errorf("%w: country %q and publisher %q leave no room for a book number", ErrPrefixTooLong, country, publisher)
	}

	head := country + s.group() + publisher
	limit := pow10(width)
	// The code is head*10^width + book; pick book so the total lands on the
	// publisher's remainders.
	shifted := atoi(head) % Modulus * (limit % Modulus) % Modulus
	target := remaindersOf(atoi(publisher) % Modulus)
	have := remaindersOf(shifted)
	var need Vector
	for i, m := range Moduli {
		need[i] = ((target[i]-have[i])%m + m) % m
	}

	return plan{
		head:  head,
		width: width,
		base:  solve(need),
		limit: limit,
	}, nil
}

// slots is how many book numbers of the residue class fit in the field.
func (p plan) slots() int64 {
	if p.base >= p.limit {
		return 0
	}
	return (p.limit-1-p.base)/Modulus + 1
}

func (p plan) book(c Cursor) (string, error) {
	if int64(c) >= p.slots() {
		return "", fmt.Errorf("%w: prefix %s has no book number at slot %d", ErrCapacityExhausted, p.head, c)
	}
	n := p.base + int64(c)*Modulus
	return fmt.Sprintf("%0*d", p.width, n), nil
}

// Generate builds the code at cursor for the request's prefix and returns it
// with the cursor for the next code. Every code is re-validated before it is
// returned.
func (s Scheme) Generate(req Request, cursor Cursor) (Digits, Cursor, error) {
	if cursor < 0 {
		return Digits{}, cursor, malformed("cursor must not be negative, got %d", cursor)
	}
	p, err := s.plan(req.Country, req.Publisher)
	if err != nil {
		return Digits{}, cursor, err
	}
	book, err := p.book(cursor)
	if err != nil {
		return Digits{}, cursor, err
	}

	code := p.head + book
	d, err := Parse(code)
	if err != nil {
		return Digits{}, cursor, fmt.Errorf("%w: assembled %q: %v", ErrInvariantBroken, code, err)
	}
	res, err := s.Validate(code, req.Country, req.Publisher)
	if err != nil {
		return Digits{}, cursor, fmt.Errorf("%w: revalidating %s: %v", ErrInvariantBroken, code, err)
	}
	if res.WrongPrefix {
		return Digits{}, cursor, fmt.Errorf("%w: %s does not carry country %q and publisher %q",
			ErrInvariantBroken, code, req.Country, req.Publisher)
	}
	if !res.Valid {
		return Digits{}, cursor, fmt.Errorf("%w: %s fails moduli %v (expected %v, actual %v)",
			ErrInvariantBroken, code, res.Mismatched(), res.Expected, res.Actual)
	}
	return d, cursor + s.step(req.UseMultiples), nil
}

// Capacity reports how many distinct codes the prefix admits in the given mode.
func (s Scheme) Capacity(country, publisher string, useMultiples bool) (int64, error) {
	p, err := s.plan(country, publisher)
	if err != nil {
		return 0, err
	}
	n := p.slots()
	if n == 0 {
		return 0, nil
	}
	return (n-1)/int64(s.step(useMultiples)) + 1, nil
}

// BookNumber extracts the book-number segment of a code generated for req.
func BookNumber(d Digits, req Request) string {
	return d.String()[len(req.Country)+1+len(req.Publisher):]
}

func pow10(n int) int64 {
	v := int64(1)
	for ; n > 0; n-- {
		v *= 10
	}
	return v
}
