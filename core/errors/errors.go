// Package errors provides the typed errors shared by the reader toolkit.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common cases
var (
	// ErrNotFound indicates a table entry was not found
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput indicates invalid input or a parse failure
	ErrInvalidInput = errors.New("invalid input")
	// ErrSourceAccess indicates the corpus could not be opened or read
	ErrSourceAccess = errors.New("source access")
)

// ParseError represents a reference, corpus line, or table file that could not be parsed.
type ParseError struct {
	Format  string // What was being parsed (e.g., "reference", "MorphGNT", "glosses")
	Path    string // File path or input line, if applicable
	Message string // Error details
	Err     error  // Underlying error, if any
}

func (e *ParseError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("failed to parse %s at %s: %s", e.Format, e.Path, e.Message)
	}
	return fmt.Sprintf("failed to parse %s: %s", e.Format, e.Message)
}

// Is makes every ParseError match ErrInvalidInput while Unwrap keeps the cause reachable.
func (e *ParseError) Is(target error) bool {
	return target == ErrInvalidInput
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// LookupError reports a lemma missing from a lookup table.
type LookupError struct {
	Table string // Table name (e.g., "glosses", "lexemes")
	Key   string // Lemma that was looked up
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("%s: no entry for %q", e.Table, e.Key)
}

func (e *LookupError) Unwrap() error {
	return ErrNotFound
}

// SourceAccessError reports a corpus book that could not be opened or read.
type SourceAccessError struct {
	Book int    // Book ordinal
	Path string // File path, if known
	Err  error  // Underlying error
}

func (e *SourceAccessError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("cannot read book %d from %s: %v", e.Book, e.Path, e.Err)
	}
	return fmt.Sprintf("cannot read book %d: %v", e.Book, e.Err)
}

// Is makes every SourceAccessError match ErrSourceAccess while Unwrap keeps the cause reachable.
func (e *SourceAccessError) Is(target error) bool {
	return target == ErrSourceAccess
}

func (e *SourceAccessError) Unwrap() error {
	return e.Err
}

// NewParse creates a ParseError
func NewParse(format, path, message string) *ParseError {
	return &ParseError{
		Format:  format,
		Path:    path,
		Message: message,
	}
}

// NewLookup creates a LookupError
func NewLookup(table, key string) *LookupError {
	return &LookupError{
		Table: table,
		Key:   key,
	}
}

// NewSourceAccess creates a SourceAccessError
func NewSourceAccess(book int, path string, err error) *SourceAccessError {
	return &SourceAccessError{
		Book: book,
		Path: path,
		Err:  err,
	}
}

// Wrap adds context to an error. If err is nil, returns nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf adds formatted context to an error. If err is nil, returns nil.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// Is wraps errors.Is for convenience
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As wraps errors.As for convenience
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
