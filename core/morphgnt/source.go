package morphgnt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"

	"github.com/FocuswithJustin/JuniperReader/core/bcv"
	"github.com/FocuswithJustin/JuniperReader/core/corpus"
	"github.com/FocuswithJustin/JuniperReader/core/errors"
)

// maxLineSize bounds a single corpus line.
const maxLineSize = 64 * 1024

// compressedSuffixes are tried, in order, after the plain file name.
var compressedSuffixes = []string{".xz", ".gz", ".zst"}

// FileName returns the SBLGNT file name of a book, e.g. "64-Jn-morphgnt.txt".
func FileName(b bcv.Book) string {
	return fmt.Sprintf("%02d-%s-morphgnt.txt", 60+b.Number, b.Code)
}

// DirSource reads one file per book from an SBLGNT directory.
type DirSource struct {
	Dir   string
	Canon *bcv.Canon
}

// NewDirSource returns a source over dir for the given canon.
func NewDirSource(dir string, canon *bcv.Canon) *DirSource {
	return &DirSource{Dir: dir, Canon: canon}
}

// Path returns the file that holds the book, preferring the plain file over
// compressed variants.
func (s *DirSource) Path(book int) (string, error) {
	b, ok := s.Canon.Book(book)
	if !ok {
		return "", errors.NewSourceAccess(book, "", fmt.Errorf("no book %d in canon", book))
	}
	base := filepath.Join(s.Dir, FileName(b))
	for _, candidate := range append([]string{base}, suffixed(base)...) {
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", errors.NewSourceAccess(book, base, os.ErrNotExist)
}

// OpenBook opens the book's file.
func (s *DirSource) OpenBook(book int) (corpus.Rows, error) {
	path, err := s.Path(book)
	if err != nil {
		return nil, err
	}
	rc, err := openFile(path)
	if err != nil {
		return nil, errors.NewSourceAccess(book, path, err)
	}
	return NewRows(rc, path, book, 0), nil
}

// FileSource reads every book from a single MorphGNT file, scanning it once
// per book and keeping only that book's lines.
type FileSource struct {
	Path string
}

// OpenBook opens the file and filters it to the book.
func (s *FileSource) OpenBook(book int) (corpus.Rows, error) {
	rc, err := openFile(s.Path)
	if err != nil {
		return nil, errors.NewSourceAccess(book, s.Path, err)
	}
	return NewRows(rc, s.Path, book, book), nil
}

func suffixed(base string) []string {
	out := make([]string, len(compressedSuffixes))
	for i, suffix := range compressedSuffixes {
		out[i] = base + suffix
	}
	return out
}

// openFile opens path, transparently decompressing by extension.
func openFile(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xz":
		r, err := xz.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("xz: %w", err)
		}
		return &stackedCloser{Reader: r, closers: []func() error{f.Close}}, nil
	case ".gz":
		r, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("gzip: %w", err)
		}
		return &stackedCloser{Reader: r, closers: []func() error{r.Close, f.Close}}, nil
	case ".zst":
		d, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("zstd: %w", err)
		}
		return &stackedCloser{Reader: d, closers: []func() error{
			func() error { d.Close(); return nil },
			f.Close,
		}}, nil
	}
	return f, nil
}

// stackedCloser closes a decompressor and then its file.
type stackedCloser struct {
	io.Reader
	closers []func() error
}

func (s *stackedCloser) Close() error {
	var first error
	for _, c := range s.closers {
		if err := c(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// lineRows is a corpus.Rows over MorphGNT lines.
type lineRows struct {
	rc      io.ReadCloser
	scanner *bufio.Scanner
	path    string
	book    int
	only    int
	lineNo  int

	row     corpus.Row
	err     error
	closed  bool
	lastLoc bcv.Locator
	counter int
}

// NewRows reads MorphGNT lines from rc. When only is non-zero, lines of other
// books are skipped. Rows without a nine-digit reference are numbered within
// their verse in file order. path is used in error messages.
func NewRows(rc io.ReadCloser, path string, book, only int) corpus.Rows {
	sc := bufio.NewScanner(rc)
	sc.Buffer(make([]byte, 4096), maxLineSize)
	return &lineRows{rc: rc, scanner: sc, path: path, book: book, only: only}
}

func (r *lineRows) Next() bool {
	if r.closed || r.err != nil {
		return false
	}
	for r.scanner.Scan() {
		r.lineNo++
		line := r.scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		row, err := ParseLine(line)
		if err != nil {
			r.err = lineError(r.path, r.lineNo, err)
			return false
		}
		if r.only != 0 && row.Locator.Book != r.only {
			continue
		}
		if row.Locator != r.lastLoc {
			r.lastLoc = row.Locator
			r.counter = 0
		}
		r.counter++
		if row.Position == 0 {
			row.Position = r.counter
		}
		r.row = row
		return true
	}
	if err := r.scanner.Err(); err != nil {
		r.err = errors.NewSourceAccess(r.book, r.path, err)
	}
	return false
}

func (r *lineRows) Row() corpus.Row {
	return r.row
}

func (r *lineRows) Err() error {
	return r.err
}

func (r *lineRows) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	return r.rc.Close()
}
