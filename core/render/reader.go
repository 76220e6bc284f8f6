package render

import (
	"bufio"
	"io"
	"iter"

	"github.com/FocuswithJustin/JuniperReader/core/corpus"
	"github.com/FocuswithJustin/JuniperReader/core/lexicon"
	"github.com/FocuswithJustin/JuniperReader/core/stream"
)

// Options are the tables a Reader consults. All are optional; without
// Glosses footnotes carry no gloss.
type Options struct {
	Headwords lexicon.Headwords
	Glosses   lexicon.Glosses
	Exclude   lexicon.Wordset
}

// Reader renders event streams through a Backend.
type Reader struct {
	backend Backend
	opts    Options
}

// NewReader returns a Reader for the backend.
func NewReader(b Backend, opts Options) *Reader {
	return &Reader{backend: b, opts: opts}
}

// Render writes the edition for events to w. A stream error or a lemma
// missing from the glosses table stops rendering and is returned; output
// written so far is left in w.
func (r *Reader) Render(w io.Writer, events iter.Seq2[stream.Event, error]) error {
	bw := bufio.NewWriter(w)
	st := &state{
		Reader:  r,
		w:       bw,
		numbers: make(map[string]int),
		vocab:   make(map[string]int),
	}
	err := st.run(events)
	if ferr := bw.Flush(); err == nil {
		err = ferr
	}
	return err
}

// state is the per-document part of rendering.
type state struct {
	*Reader
	w         *bufio.Writer
	postponed int
	numbers   map[string]int
	vocab     map[string]int
	doc       Document
}

func (s *state) run(events iter.Seq2[stream.Event, error]) error {
	s.line(s.backend.Preamble())
	for e, err := range events {
		if err != nil {
			return err
		}
		switch e := e.(type) {
		case stream.Word:
			if err := s.word(e.Row); err != nil {
				return err
			}
		case stream.ChapterStart:
			s.postponed = e.Chapter
		case stream.VerseStart:
			s.line(s.backend.Verse(s.postponed, e.Locator.Verse))
			s.postponed = 0
		default:
			s.line(s.backend.Boundary(e))
		}
	}
	s.line(s.backend.Postamble(&s.doc))
	return nil
}

func (s *state) word(row corpus.Row) error {
	text := StripTextCritical(row.Text)
	if s.opts.Exclude.Contains(row.Lemma) {
		s.line(s.backend.Word(text, nil, false))
		return nil
	}

	headword := s.opts.Headwords.Headword(row.Lemma)
	var parse, gloss string
	if row.POS == "V-" {
		parse = VerbParse(row.Parse)
	}
	if s.opts.Glosses != nil {
		g, err := s.opts.Glosses.Gloss(row.Lemma, row.Locator)
		if err != nil {
			return err
		}
		gloss = g
	}
	s.count(row.Lemma, headword, gloss)

	body := s.backend.Note(headword, parse, gloss)
	n, seen := s.numbers[body]
	if !seen {
		n = len(s.doc.Footnotes) + 1
		s.numbers[body] = n
		s.doc.Footnotes = append(s.doc.Footnotes, Footnote{Number: n, Body: body})
	}
	s.line(s.backend.Word(text, &s.doc.Footnotes[n-1], !seen))
	return nil
}

func (s *state) count(lemma, headword, gloss string) {
	if i, ok := s.vocab[lemma]; ok {
		s.doc.Vocabulary[i].Count++
		return
	}
	s.vocab[lemma] = len(s.doc.Vocabulary)
	s.doc.Vocabulary = append(s.doc.Vocabulary, Entry{Lemma: lemma, Headword: headword, Gloss: gloss, Count: 1})
}

func (s *state) line(text string) {
	s.w.WriteString(text)
	s.w.WriteByte('\n')
}
