package corpus

import (
	"os"

	"github.com/FocuswithJustin/JuniperReader/core/errors"
)

// Memory is an in-memory Source keyed by book ordinal.
type Memory struct {
	books map[int][]Row

	// opened counts OpenBook calls per book; closed counts Close calls.
	opened map[int]int
	closed map[int]int
}

// NewMemory groups rows by book, keeping their relative order.
func NewMemory(rows []Row) *Memory {
	m := &Memory{
		books:  make(map[int][]Row),
		opened: make(map[int]int),
		closed: make(map[int]int),
	}
	for _, r := range rows {
		m.books[r.Locator.Book] = append(m.books[r.Locator.Book], r)
	}
	return m
}

// OpenBook returns the book's rows. A book with no rows does not exist.
func (m *Memory) OpenBook(book int) (Rows, error) {
	rows, ok := m.books[book]
	if !ok {
		return nil, errors.NewSourceAccess(book, "", os.ErrNotExist)
	}
	m.opened[book]++
	return &memoryRows{rows: rows, pos: -1, onClose: func() { m.closed[book]++ }}, nil
}

// Opened reports how many times the book was opened.
func (m *Memory) Opened(book int) int {
	return m.opened[book]
}

// Closed reports how many times rows of the book were closed.
func (m *Memory) Closed(book int) int {
	return m.closed[book]
}

type memoryRows struct {
	rows    []Row
	pos     int
	closed  bool
	onClose func()
}

func (r *memoryRows) Next() bool {
	if r.closed || r.pos+1 >= len(r.rows) {
		return false
	}
	r.pos++
	return true
}

func (r *memoryRows) Row() Row {
	return r.rows[r.pos]
}

func (r *memoryRows) Err() error {
	return nil
}

func (r *memoryRows) Close() error {
	if !r.closed {
		r.closed = true
		r.onClose()
	}
	return nil
}
