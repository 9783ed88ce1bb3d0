package isbn

import (
	"fmt"
	"strings"
)

// Scheme fixes the layout parameters of the identifier scheme. A Scheme is an
// immutable value; all of its methods are safe for concurrent use.
//
// A code is laid out as country + group digit + publisher + book number. The
// country and publisher widths are used when a bare code has to be split
// back into its segments; the generator itself derives the book-number width
// from the lengths of the segments it is given.
type Scheme struct {
	CountryWidth   int
	PublisherWidth int
	GroupDigit     int
	// MultipleStride is how many residue slots the cursor advances per code
	// in use-multiples mode.
	MultipleStride int
}

// DefaultScheme is the layout the service runs with unless configured otherwise.
var DefaultScheme = Scheme{
	CountryWidth:   1,
	PublisherWidth: 2,
	GroupDigit:     9,
	MultipleStride: 7,
}

// Check reports whether the scheme parameters describe a usable layout.
func (s Scheme) Check() error {
	switch {
	case s.CountryWidth < 1:
		return fmt.Errorf("scheme: country width must be at least 1, got %d", s.CountryWidth)
	case s.PublisherWidth < 1:
		return fmt.Errorf("scheme: publisher width must be at least 1, got %d", s.PublisherWidth)
	case s.CountryWidth+s.PublisherWidth+1 >= Length:
		return fmt.Errorf("scheme: widths %d+%d leave no room for a book number", s.CountryWidth, s.PublisherWidth)
	case s.GroupDigit < 0 || s.GroupDigit > 9:
		return fmt.Errorf("scheme: group digit must be 0-9, got %d", s.GroupDigit)
	case s.MultipleStride < 1:
		return fmt.Errorf("scheme: multiple stride must be at least 1, got %d", s.MultipleStride)
	}
	return nil
}

// BookWidth is the book-number width for codes that use the configured
// country and publisher widths.
func (s Scheme) BookWidth() int {
	return Length - s.CountryWidth - s.PublisherWidth - 1
}

// Split partitions a code using the configured widths.
func (s Scheme) Split(d Digits) (country, group, publisher, book string) {
	str := d.String()
	c := s.CountryWidth
	p := c + 1 + s.PublisherWidth
	return str[:c], str[c : c+1], str[c+1 : p], str[p:]
}

// NormalizeCountry left-pads a country code with zeros to the configured width.
func (s Scheme) NormalizeCountry(code string) (string, error) {
	return pad("country code", code, s.CountryWidth)
}

// NormalizePublisher left-pads a publisher code with zeros to the configured width.
func (s Scheme) NormalizePublisher(code string) (string, error) {
	return pad("publisher code", code, s.PublisherWidth)
}

func pad(field, code string, width int) (string, error) {
	if !isDigits(code) || len(code) > width {
		return "", malformed("%s must be 1-%d digits, got %q", field, width, code)
	}
	return strings.Repeat("0", width-len(code)) + code, nil
}

func (s Scheme) group() string {
	return string(rune('0' + s.GroupDigit))
}

func (s Scheme) step(useMultiples bool) Cursor {
	if useMultiples {
		return Cursor(s.MultipleStride)
	}
	return 1
}
