// Package export writes an event stream to a SQLite study database with one
// row per book, verse and word, so a passage can be queried without the
// MorphGNT text files.
package export

import (
	"context"
	"database/sql"
	"fmt"
	"iter"
	"strings"

	"github.com/google/uuid"

	"github.com/FocuswithJustin/JuniperReader/core/bcv"
	"github.com/FocuswithJustin/JuniperReader/core/corpus"
	"github.com/FocuswithJustin/JuniperReader/core/lexicon"
	"github.com/FocuswithJustin/JuniperReader/core/stream"
)

// Schema creates the export tables.
const Schema = `
CREATE TABLE meta (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
CREATE TABLE books (
	number INTEGER PRIMARY KEY,
	code   TEXT,
	name   TEXT
);
CREATE TABLE verses (
	key     TEXT PRIMARY KEY,
	book    INTEGER NOT NULL REFERENCES books(number),
	chapter INTEGER NOT NULL,
	verse   INTEGER NOT NULL,
	text    TEXT NOT NULL
);
CREATE TABLE words (
	verse    TEXT NOT NULL REFERENCES verses(key),
	position INTEGER NOT NULL,
	pos      TEXT NOT NULL,
	parse    TEXT NOT NULL,
	text     TEXT NOT NULL,
	word     TEXT NOT NULL,
	norm     TEXT NOT NULL,
	lemma    TEXT NOT NULL,
	headword TEXT,
	gloss    TEXT,
	PRIMARY KEY (verse, position)
);
CREATE INDEX idx_words_lemma ON words(lemma);
`

// Meta keys.
const (
	MetaExportID  = "export_id"
	MetaReference = "reference"
	MetaDigest    = "content_blake3"
)

// Options control what an export records beyond the corpus rows.
type Options struct {
	// Reference is stored in meta as given, e.g. "John 1:1-18".
	Reference string
	// Canon names the books; without it only numbers are stored.
	Canon     *bcv.Canon
	Headwords lexicon.Headwords
	Glosses   lexicon.Glosses
}

// Result summarises a finished export.
type Result struct {
	ID     string
	Digest string
	Books  int
	Verses int
	Words  int
}

// Export creates the schema in db and writes every book, verse and word of
// events inside one transaction. Overlapping ranges store each row once.
// The digest in meta is that of stream.Digest over the same events.
func Export(ctx context.Context, db *sql.DB, events iter.Seq2[stream.Event, error], opts Options) (Result, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return Result{}, fmt.Errorf("begin export: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, Schema); err != nil {
		return Result{}, fmt.Errorf("create schema: %w", err)
	}

	w, err := newWriter(ctx, tx, opts)
	if err != nil {
		return Result{}, err
	}
	defer w.close()

	hasher := stream.NewHasher()
	for e, err := range events {
		if err != nil {
			return Result{}, err
		}
		hasher.Add(e)
		if err := w.event(e); err != nil {
			return Result{}, err
		}
	}

	res := w.res
	res.ID = uuid.NewString()
	res.Digest = hasher.Sum()
	for _, kv := range [][2]string{
		{MetaExportID, res.ID},
		{MetaReference, opts.Reference},
		{MetaDigest, res.Digest},
	} {
		if _, err := tx.ExecContext(ctx, `INSERT INTO meta (key, value) VALUES (?, ?)`, kv[0], kv[1]); err != nil {
			return Result{}, fmt.Errorf("write meta %s: %w", kv[0], err)
		}
	}

	if err := tx.Commit(); err != nil {
		return Result{}, fmt.Errorf("commit export: %w", err)
	}
	return res, nil
}

type writer struct {
	ctx  context.Context
	opts Options

	book, verse, word *sql.Stmt

	pending []corpus.Row
	res     Result
}

func newWriter(ctx context.Context, tx *sql.Tx, opts Options) (*writer, error) {
	w := &writer{ctx: ctx, opts: opts}
	var err error
	prepare := func(query string) *sql.Stmt {
		if err != nil {
			return nil
		}
		var st *sql.Stmt
		st, err = tx.PrepareContext(ctx, query)
		return st
	}
	w.book = prepare(`INSERT OR IGNORE INTO books (number, code, name) VALUES (?, ?, ?)`)
	w.verse = prepare(`INSERT OR IGNORE INTO verses (key, book, chapter, verse, text) VALUES (?, ?, ?, ?, ?)`)
	w.word = prepare(`INSERT OR IGNORE INTO words
		(verse, position, pos, parse, text, word, norm, lemma, headword, gloss)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		w.close()
		return nil, fmt.Errorf("prepare export statements: %w", err)
	}
	return w, nil
}

func (w *writer) close() {
	for _, st := range []*sql.Stmt{w.book, w.verse, w.word} {
		if st != nil {
			st.Close()
		}
	}
}

func (w *writer) event(e stream.Event) error {
	switch e := e.(type) {
	case stream.BookStart:
		return w.addBook(e.Book)
	case stream.VerseStart:
		w.pending = w.pending[:0]
	case stream.Word:
		w.pending = append(w.pending, e.Row)
	case stream.VerseEnd:
		return w.addVerse(e.Locator)
	}
	return nil
}

func (w *writer) addBook(n int) error {
	var code, name sql.NullString
	if w.opts.Canon != nil {
		if b, ok := w.opts.Canon.Book(n); ok {
			code = sql.NullString{String: b.Code, Valid: true}
			name = sql.NullString{String: b.Name, Valid: true}
		}
	}
	return w.exec(w.book, &w.res.Books, "book", n, code, name)
}

// addVerse writes the verse row followed by its buffered words.
func (w *writer) addVerse(loc bcv.Locator) error {
	text := make([]string, len(w.pending))
	for i, r := range w.pending {
		text[i] = r.Text
	}
	if err := w.exec(w.verse, &w.res.Verses, "verse "+loc.Key(),
		loc.Key(), loc.Book, loc.Chapter, loc.Verse, strings.Join(text, " ")); err != nil {
		return err
	}
	for _, r := range w.pending {
		if err := w.addWord(r); err != nil {
			return err
		}
	}
	w.pending = w.pending[:0]
	return nil
}

func (w *writer) addWord(r corpus.Row) error {
	var headword, gloss sql.NullString
	if w.opts.Headwords != nil {
		headword = sql.NullString{String: w.opts.Headwords.Headword(r.Lemma), Valid: true}
	}
	if g, err := w.opts.Glosses.Gloss(r.Lemma, r.Locator); err == nil {
		gloss = sql.NullString{String: g, Valid: true}
	}
	return w.exec(w.word, &w.res.Words, "word "+r.Locator.Key(),
		r.Locator.Key(), r.Position, r.POS, r.Parse, r.Text, r.Word, r.Norm, r.Lemma, headword, gloss)
}

// exec runs st and counts the row if it was new.
func (w *writer) exec(st *sql.Stmt, count *int, what string, args ...any) error {
	res, err := st.ExecContext(w.ctx, args...)
	if err != nil {
		return fmt.Errorf("write %s: %w", what, err)
	}
	if n, err := res.RowsAffected(); err == nil && n > 0 {
		*count += int(n)
	}
	return nil
}
