// Package corpus defines the word-level records of a tagged corpus and the
// per-book accessor the event stream reads them through.
package corpus

import (
	"github.com/FocuswithJustin/JuniperReader/core/bcv"
)

// Row is one word of the corpus.
type Row struct {
	// Locator is the verse that owns the word.
	Locator bcv.Locator `json:"locator"`

	// Position is the 1-based ordinal of the word within its verse.
	Position int `json:"position"`

	// POS is the part-of-speech tag (e.g., "V-", "N-", "RA").
	POS string `json:"pos"`

	// Parse is the parse code (e.g., "3AAI-S--").
	Parse string `json:"parse"`

	// Text is the surface text including punctuation and text-critical signs.
	Text string `json:"text"`

	// Word is the surface text without punctuation.
	Word string `json:"word,omitempty"`

	// Norm is the normalized word form.
	Norm string `json:"norm,omitempty"`

	// Lemma identifies the word's lexical entry. Never empty.
	Lemma string `json:"lemma"`
}

// Rows iterates over one book's rows in corpus order. It is shaped like
// database/sql.Rows: call Next until it returns false, then check Err.
// Close releases the underlying resource and may be called at any point.
type Rows interface {
	Next() bool
	Row() Row
	Err() error
	Close() error
}

// Source opens the rows of a single book. Rows are yielded in ascending
// (chapter, verse, position) order; callers trust that order.
type Source interface {
	OpenBook(book int) (Rows, error)
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func(book int) (Rows, error)

// OpenBook calls f(book).
func (f SourceFunc) OpenBook(book int) (Rows, error) {
	return f(book)
}
