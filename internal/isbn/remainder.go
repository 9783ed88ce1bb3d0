package isbn

import "fmt"

// Moduli are the pairwise coprime moduli of the remainder scheme, in the
// order every Vector is reported.
var Moduli = [5]int64{3, 5, 7, 11, 13}

// Modulus is the product of Moduli. Two codes that differ by a multiple of it
// have identical remainder vectors.
const Modulus int64 = 3 * 5 * 7 * 11 * 13

// Vector holds one remainder per modulus, positionally bound to Moduli.
type Vector [5]int64

// Remainders reduces the code's integer value modulo each of Moduli.
func Remainders(d Digits) Vector {
	return remaindersOf(d.Value())
}

func remaindersOf(n int64) Vector {
	var v Vector
	for i, m := range Moduli {
		v[i] = n % m
	}
	return v
}

// Expected returns the remainder vector a correctly constructed code with the
// given segments must have: the publisher code reduced modulo each of Moduli.
// The segments must assemble, together with the group digit, into a full
// 13-digit code.
func (s Scheme) Expected(country, publisher, book string) (Vector, error) {
	switch {
	case !isDigits(country):
		return Vector{}, malformed("country code must be digits, got %q", country)
	case !isDigits(publisher):
		return Vector{}, malformed("publisher code must be digits, got %q", publisher)
	case !isDigits(book):
		return Vector{}, malformed("book number must be digits, got %q", book)
	}
	if n := len(country) + 1 + len(publisher) + len(book); n != Length {
		return Vector{}, malformed("segments assemble to %d digits, want %d", n, Length)
	}
	return remaindersOf(atoi(publisher)), nil
}

// Mismatched lists the moduli at which two vectors disagree.
func (v Vector) Mismatched(other Vector) []int64 {
	var out []int64
	for i := range v {
		if v[i] != other[i] {
			out = append(out, Moduli[i])
		}
	}
	return out
}

// solve returns the unique x in [0, Modulus) with x ≡ v[i] (mod Moduli[i]).
func solve(v Vector) int64 {
	var x int64
	for i, m := range Moduli {
		mi := Modulus / m
		x += v[i] % m * mi % Modulus * inverse(mi%m, m) % Modulus
	}
	return x % Modulus
}

// inverse returns a⁻¹ mod m by the extended Euclidean algorithm. The moduli
// are coprime so the inverse always exists.
func inverse(a, m int64) int64 {
	oldR, r := a, m
	oldS, s := int64(1), int64(0)
	for r != 0 {
		q := oldR / r
		oldR, r = r, oldR-q*r
		oldS, s = s, oldS-q*s
	}
	if oldR != 1 {
		panic(fmt.Sprintf("isbn: %d has no inverse modulo %d", a, m))
	}
	return (oldS%m + m) % m
}
