// Package bcv implements book-chapter-verse addressing for the Greek New Testament.
//
// A Locator is a (book, chapter, verse) triple with a total order and a
// fixed-width key ("BBCCVV", two digits per component) that sorts as a string
// exactly as the triples sort numerically. Keys are the addressing scheme used
// by MorphGNT's first column and by verse-specific entries in gloss tables.
package bcv

import (
	"fmt"
	"strconv"

	"github.com/FocuswithJustin/JuniperReader/core/errors"
)

// MaxComponent is the largest book, chapter or verse number a key can hold.
const MaxComponent = 99

// KeyLen is the length of an encoded key.
const KeyLen = 6

// Locator identifies a single verse.
type Locator struct {
	Book    int `json:"book"`
	Chapter int `json:"chapter"`
	Verse   int `json:"verse"`
}

// Encode returns the fixed-width key for (book, chapter, verse).
// Components above MaxComponent are not required to round-trip.
func Encode(book, chapter, verse int) string {
	return fmt.Sprintf("%02d%02d%02d", book, chapter, verse)
}

// Decode is the inverse of Encode.
func Decode(key string) (Locator, error) {
	if len(key) != KeyLen {
		return Locator{}, errors.NewParse("verse key", key, "expected 6 digits")
	}
	var parts [3]int
	for i := range parts {
		n, err := strconv.Atoi(key[i*2 : i*2+2])
		if err != nil || n < 0 {
			return Locator{}, errors.NewParse("verse key", key, "expected 6 digits")
		}
		parts[i] = n
	}
	return Locator{Book: parts[0], Chapter: parts[1], Verse: parts[2]}, nil
}

// MustDecode decodes a key and panics if it is malformed.
// Intended for constants and tests.
func MustDecode(key string) Locator {
	loc, err := Decode(key)
	if err != nil {
		panic(err)
	}
	return loc
}

// Key returns the fixed-width key of the locator.
func (l Locator) Key() string {
	return Encode(l.Book, l.Chapter, l.Verse)
}

// String returns "book.chapter.verse".
func (l Locator) String() string {
	return fmt.Sprintf("%d.%d.%d", l.Book, l.Chapter, l.Verse)
}

// Compare returns -1, 0 or +1 as l sorts before, equal to, or after o.
func (l Locator) Compare(o Locator) int {
	switch {
	case l.Book != o.Book:
		return sign(l.Book - o.Book)
	case l.Chapter != o.Chapter:
		return sign(l.Chapter - o.Chapter)
	default:
		return sign(l.Verse - o.Verse)
	}
}

// Less reports whether l sorts before o.
func (l Locator) Less(o Locator) bool {
	return l.Compare(o) < 0
}

// Valid reports whether every component is in 1..MaxComponent.
func (l Locator) Valid() bool {
	return inRange(l.Book) && inRange(l.Chapter) && inRange(l.Verse)
}

func inRange(n int) bool {
	return n >= 1 && n <= MaxComponent
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}

// Range is an inclusive span of verses. A single verse has Start == End.
type Range struct {
	Start Locator `json:"start"`
	End   Locator `json:"end"`
}

// Single returns the range holding only loc.
func Single(loc Locator) Range {
	return Range{Start: loc, End: loc}
}

// IsSingle reports whether the range covers one verse.
func (r Range) IsSingle() bool {
	return r.Start == r.End
}

// Contains reports whether loc lies within the range.
func (r Range) Contains(loc Locator) bool {
	return r.Start.Compare(loc) <= 0 && loc.Compare(r.End) <= 0
}

// String renders the range as "start" or "start-end" keys.
func (r Range) String() string {
	if r.IsSingle() {
		return r.Start.Key()
	}
	return r.Start.Key() + "-" + r.End.Key()
}
