// Package listing reads and writes the numbered text files operators
// download from a batch run, one code per line:
//
//	1. 3916000002931 (Format: 3-9-16-000002931)
package listing

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"isbnapi/internal/isbn"
)

var lineRe = regexp.MustCompile(`^(\d+)\.\s+(\d{13})\s+\(Format:`)

// Entry is one numbered line of a listing.
type Entry struct {
	Line  int
	Index int
	ISBN  string
}

// Hyphenate renders a code as country-group-publisher-book using the
// scheme widths.
func Hyphenate(s isbn.Scheme, d isbn.Digits) string {
	country, group, publisher, book := s.Split(d)
	return strings.Join([]string{country, group, publisher, book}, "-")
}

// Write writes codes numbered from 1.
func Write(w io.Writer, s isbn.Scheme, codes []isbn.Digits) error {
	bw := bufio.NewWriter(w)
	for i, d := range codes {
		if _, err := fmt.Fprintf(bw, "%d. %s (Format: %s)\n", i+1, d, Hyphenate(s, d)); err != nil {
			return fmt.Errorf("listing: write line %d: %w", i+1, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("listing: flush: %w", err)
	}
	return nil
}

// Scan collects every listing line from r. Lines that do not look like
// listing entries, such as headers or blank lines, are skipped.
func Scan(r io.Reader) ([]Entry, error) {
	var entries []Entry
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		m := lineRe.FindStringSubmatch(strings.TrimSpace(sc.Text()))
		if m == nil {
			continue
		}
		idx, err := strconv.Atoi(m[1])
		if err != nil {
			return nil, fmt.Errorf("listing: line %d: %w", line, err)
		}
		entries = append(entries, Entry{Line: line, Index: idx, ISBN: m[2]})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("listing: scan: %w", err)
	}
	return entries, nil
}
