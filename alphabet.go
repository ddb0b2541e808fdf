package main

import (
	"errors"
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultAlphabet is the German character set of the Faust text.
const DefaultAlphabet = "ABCDEFGHIJKLMNORSTUVWYZÄÖÜß,.;!? "

var (
	ErrEmptyAlphabet   = errors.New("alphabet is empty")
	ErrDuplicateSymbol = errors.New("alphabet contains a duplicate symbol")
)

// Alphabet maps characters to fixed row indices. Symbols are stored verbatim;
// characters looked up are uppercased first. Not safe for concurrent Lookup
// calls because the caser keeps internal state.
type Alphabet struct {
	symbols []rune
	rows    map[rune]int
	upper   cases.Caser
}

func NewAlphabet(symbols string) (*Alphabet, error) {
	if symbols == "" {
		return nil, ErrEmptyAlphabet
	}

	a := &Alphabet{
		rows:  make(map[rune]int),
		upper: cases.Upper(language.Und),
	}
	for _, r := range symbols {
		if _, ok := a.rows[r]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateSymbol, r)
		}
		a.rows[r] = len(a.symbols)
		a.symbols = append(a.symbols, r)
	}
	return a, nil
}

// Len returns the number of rows.
func (a *Alphabet) Len() int {
	return len(a.symbols)
}

// Symbol returns the symbol of a row.
func (a *Alphabet) Symbol(row int) rune {
	return a.symbols[row]
}

func (a *Alphabet) String() string {
	return string(a.symbols)
}

// Normalize returns the first rune of the uppercase form of r, so 'ß'
// becomes 'S'.
func (a *Alphabet) Normalize(r rune) rune {
	if r < 0x80 {
		if r >= 'a' && r <= 'z' {
			return r - 'a' + 'A'
		}
		return r
	}
	for _, u := range a.upper.String(string(r)) {
		return u
	}
	return r
}

// Lookup returns the row of c, or false when c is not part of the alphabet.
func (a *Alphabet) Lookup(c rune) (int, bool) {
	row, ok := a.rows[a.Normalize(c)]
	return row, ok
}
