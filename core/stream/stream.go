package stream

import (
	"iter"

	"github.com/FocuswithJustin/JuniperReader/core/bcv"
	"github.com/FocuswithJustin/JuniperReader/core/corpus"
)

// state tracks progress through one range.
type state int

const (
	notStarted state = iota
	inProgress
	ended
)

// Stream returns the events for ranges read from src.
//
// Ranges are processed in the order given, each independently. For every
// range the books from Start.Book to End.Book are opened one at a time; rows
// before Start are skipped, and the first row past End closes the open verse,
// chapter and book with partial events and finishes the range. A book whose
// rows run out first is closed normally and the next book is opened.
//
// The sequence is lazy and may be iterated more than once; each iteration
// reads the corpus afresh. An error from the source is yielded as the last
// element. Rows are closed before the next book is opened, on error, and when
// the consumer stops early.
func Stream(ranges []bcv.Range, src corpus.Source) iter.Seq2[Event, error] {
	return func(yield func(Event, error) bool) {
		for _, r := range ranges {
			w := &walker{yield: yield, src: src, r: r}
			if !w.run() {
				return
			}
		}
	}
}

// walker emits the events of a single range.
type walker struct {
	yield func(Event, error) bool
	src   corpus.Source
	r     bcv.Range
	state state
}

func (w *walker) emit(e Event) bool {
	return w.yield(e, nil)
}

// run reports whether the consumer wants more events.
func (w *walker) run() bool {
	if !w.emit(RangeStart{Range: w.r}) {
		return false
	}
	for book := w.r.Start.Book; book <= w.r.End.Book; book++ {
		if !w.emit(BookStart{Book: book}) {
			return false
		}
		if !w.book(book) {
			return false
		}
		if w.state == ended {
			break
		}
	}
	return w.emit(RangeEnd{Range: w.r})
}

// book streams one book and reports whether the consumer wants more events.
func (w *walker) book(book int) bool {
	rows, err := w.src.OpenBook(book)
	if err != nil {
		w.yield(nil, err)
		return false
	}
	defer rows.Close()

	var (
		chapter   int
		verse     bcv.Locator
		verseOpen bool
	)

	closeVerse := func() bool {
		if !verseOpen {
			return true
		}
		verseOpen = false
		return w.emit(VerseEnd{Locator: verse})
	}

	for rows.Next() {
		row := rows.Row()
		loc := row.Locator

		if w.state == notStarted {
			if loc != w.r.Start {
				continue
			}
			w.state = inProgress
		}

		if pastEnd(loc, w.r.End) {
			w.state = ended
			if !closeVerse() {
				return false
			}
			if chapter != 0 && !w.emit(ChapterEndPartial{Book: book, Chapter: chapter}) {
				return false
			}
			return w.emit(BookEndPartial{Book: book})
		}

		if loc.Chapter != chapter {
			if !closeVerse() {
				return false
			}
			if chapter != 0 && !w.emit(ChapterEnd{Book: book, Chapter: chapter}) {
				return false
			}
			chapter = loc.Chapter
			if !w.emit(ChapterStart{Book: book, Chapter: chapter}) {
				return false
			}
		}

		if !verseOpen || loc.Verse != verse.Verse {
			if !closeVerse() {
				return false
			}
			verse, verseOpen = loc, true
			if !w.emit(VerseStart{Locator: loc}) {
				return false
			}
		}

		if !w.emit(Word{Row: row}) {
			return false
		}
	}
	if err := rows.Err(); err != nil {
		w.yield(nil, err)
		return false
	}
	// A book read through without finding the start has nothing to close.
	if w.state == notStarted {
		return true
	}

	if !closeVerse() {
		return false
	}
	if chapter != 0 && !w.emit(ChapterEnd{Book: book, Chapter: chapter}) {
		return false
	}
	return w.emit(BookEnd{Book: book})
}

// pastEnd reports whether loc lies beyond the end of the range within the
// range's final book.
func pastEnd(loc, end bcv.Locator) bool {
	if loc.Book != end.Book {
		return false
	}
	return loc.Chapter > end.Chapter || (loc.Chapter == end.Chapter && loc.Verse > end.Verse)
}

// Collect drains a stream into a slice, stopping at the first error.
func Collect(events iter.Seq2[Event, error]) ([]Event, error) {
	var out []Event
	for e, err := range events {
		if err != nil {
			return out, err
		}
		out = append(out, e)
	}
	return out, nil
}
