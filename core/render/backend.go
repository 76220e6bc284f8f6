// Package render turns a corpus event stream into a reader's edition: the
// text of the passage with footnotes giving headword, verb parse and gloss
// for every word not on the exclusion list.
//
// Reader does the work common to every output format (exclusions, lookups,
// footnote numbering and chapter markers); a Backend only knows how to spell
// the pieces in its format.
package render

import (
	"github.com/FocuswithJustin/JuniperReader/core/stream"
)

// Backend formats the pieces of an edition. Each method returns one output
// line without its trailing newline.
type Backend interface {
	// Preamble opens the document.
	Preamble() string
	// Verse marks the start of a verse. chapter is non-zero on the first
	// verse shown from a chapter.
	Verse(chapter, verse int) string
	// Note formats a footnote body. Empty parts are omitted.
	Note(headword, parse, gloss string) string
	// Word formats a word of text. fn is nil for bare words; first is true
	// the first time fn is referenced.
	Word(text string, fn *Footnote, first bool) string
	// Boundary formats any event that has no visible rendering.
	Boundary(e stream.Event) string
	// Postamble closes the document.
	Postamble(doc *Document) string
}

// Footnote is one numbered note. Identical bodies share a number.
type Footnote struct {
	Number int
	Body   string
}

// Entry is one vocabulary line: a lemma glossed in the edition.
type Entry struct {
	Lemma    string
	Headword string
	Gloss    string
	Count    int
}

// Document is what a Reader collected by the end of the stream.
type Document struct {
	Footnotes  []Footnote
	Vocabulary []Entry
}
