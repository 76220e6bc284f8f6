// Package stream turns verse ranges into an ordered sequence of structural
// and lexical events read from a corpus.
package stream

import (
	"fmt"

	"github.com/FocuswithJustin/JuniperReader/core/bcv"
	"github.com/FocuswithJustin/JuniperReader/core/corpus"
)

// Kind identifies an event variant.
type Kind int

// Event kinds, in no particular order.
const (
	KindRangeStart Kind = iota + 1
	KindRangeEnd
	KindBookStart
	KindBookEnd
	KindBookEndPartial
	KindChapterStart
	KindChapterEnd
	KindChapterEndPartial
	KindVerseStart
	KindVerseEnd
	KindWord
)

var kindNames = map[Kind]string{
	KindRangeStart:        "RANGE_START",
	KindRangeEnd:          "RANGE_END",
	KindBookStart:         "BOOK_START",
	KindBookEnd:           "BOOK_END",
	KindBookEndPartial:    "BOOK_END_PARTIAL",
	KindChapterStart:      "CHAPTER_START",
	KindChapterEnd:        "CHAPTER_END",
	KindChapterEndPartial: "CHAPTER_END_PARTIAL",
	KindVerseStart:        "VERSE_START",
	KindVerseEnd:          "VERSE_END",
	KindWord:              "WORD",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Event is one element of the stream. The set of implementations is closed;
// consumers switch on the concrete type.
type Event interface {
	Kind() Kind
	String() string
	event()
}

// RangeStart opens a requested range.
type RangeStart struct{ Range bcv.Range }

// RangeEnd closes a requested range.
type RangeEnd struct{ Range bcv.Range }

// BookStart opens a book.
type BookStart struct{ Book int }

// BookEnd closes a book whose rows were read to the end.
type BookEnd struct{ Book int }

// BookEndPartial closes a book cut short by the end of the range.
type BookEndPartial struct{ Book int }

// ChapterStart opens a chapter.
type ChapterStart struct{ Book, Chapter int }

// ChapterEnd closes a chapter completed within the range.
type ChapterEnd struct{ Book, Chapter int }

// ChapterEndPartial closes the chapter in which the range ended.
type ChapterEndPartial struct{ Book, Chapter int }

// VerseStart opens a verse.
type VerseStart struct{ Locator bcv.Locator }

// VerseEnd closes a verse.
type VerseEnd struct{ Locator bcv.Locator }

// Word carries one corpus row.
type Word struct{ Row corpus.Row }

func (RangeStart) Kind() Kind        { return KindRangeStart }
func (RangeEnd) Kind() Kind          { return KindRangeEnd }
func (BookStart) Kind() Kind         { return KindBookStart }
func (BookEnd) Kind() Kind           { return KindBookEnd }
func (BookEndPartial) Kind() Kind    { return KindBookEndPartial }
func (ChapterStart) Kind() Kind      { return KindChapterStart }
func (ChapterEnd) Kind() Kind        { return KindChapterEnd }
func (ChapterEndPartial) Kind() Kind { return KindChapterEndPartial }
func (VerseStart) Kind() Kind        { return KindVerseStart }
func (VerseEnd) Kind() Kind          { return KindVerseEnd }
func (Word) Kind() Kind              { return KindWord }

func (RangeStart) event()        {}
func (RangeEnd) event()          {}
func (BookStart) event()         {}
func (BookEnd) event()           {}
func (BookEndPartial) event()    {}
func (ChapterStart) event()      {}
func (ChapterEnd) event()        {}
func (ChapterEndPartial) event() {}
func (VerseStart) event()        {}
func (VerseEnd) event()          {}
func (Word) event()              {}

func (e RangeStart) String() string { return fmt.Sprintf("%s %s", e.Kind(), e.Range) }
func (e RangeEnd) String() string   { return fmt.Sprintf("%s %s", e.Kind(), e.Range) }

func (e BookStart) String() string      { return fmt.Sprintf("%s %d", e.Kind(), e.Book) }
func (e BookEnd) String() string        { return fmt.Sprintf("%s %d", e.Kind(), e.Book) }
func (e BookEndPartial) String() string { return fmt.Sprintf("%s %d", e.Kind(), e.Book) }

func (e ChapterStart) String() string      { return fmt.Sprintf("%s %d", e.Kind(), e.Chapter) }
func (e ChapterEnd) String() string        { return fmt.Sprintf("%s %d", e.Kind(), e.Chapter) }
func (e ChapterEndPartial) String() string { return fmt.Sprintf("%s %d", e.Kind(), e.Chapter) }

func (e VerseStart) String() string { return fmt.Sprintf("%s %d", e.Kind(), e.Locator.Verse) }
func (e VerseEnd) String() string   { return fmt.Sprintf("%s %d", e.Kind(), e.Locator.Verse) }

func (e Word) String() string {
	return fmt.Sprintf("%s %s %d %s %s %s %s", e.Kind(), e.Row.Locator.Key(), e.Row.Position,
		e.Row.POS, e.Row.Parse, e.Row.Text, e.Row.Lemma)
}
