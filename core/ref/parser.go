// Package ref parses human-readable verse references such as "John 18:1-11"
// into canonical verse ranges.
package ref

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/FocuswithJustin/JuniperReader/core/bcv"
	"github.com/FocuswithJustin/JuniperReader/core/errors"
)

// reference is the participle grammar for one reference string.
// Accepted shapes:
//
//	Book C:V
//	Book C:V-V2
//	Book C:V-C2:V2
//	Book C:V-Book2 C2:V2
//
//nolint:govet // participle grammar tags are not standard struct tags
type reference struct {
	Start startPart `@@`
	End   *endPart  `( "-" @@ )?`
}

//nolint:govet // participle grammar tags are not standard struct tags
type startPart struct {
	Book    string `@(Book | Name) Space`
	Chapter int    `@Number ":"`
	Verse   int    `@Number`
}

//nolint:govet // participle grammar tags are not standard struct tags
type endPart struct {
	Book    string `( @(Book | Name) Space )?`
	Chapter *int   `( @Number ":" )?`
	Verse   int    `@Number`
}

// Parser resolves references against a canon. It is immutable and safe for
// concurrent use.
type Parser struct {
	canon  *bcv.Canon
	parser *participle.Parser[reference]
}

// NewParser builds a parser whose book token accepts the canon's aliases,
// tried in the canon's precedence order. Any other word lexes as a name so
// it can be reported as an unknown book.
func NewParser(canon *bcv.Canon) (*Parser, error) {
	aliases := canon.Aliases()
	quoted := make([]string, len(aliases))
	for i, a := range aliases {
		quoted[i] = regexp.QuoteMeta(a)
	}

	def, err := lexer.NewSimple([]lexer.SimpleRule{
		{Name: "Book", Pattern: `(?:` + strings.Join(quoted, "|") + `)\b`},
		{Name: "Name", Pattern: `[^\s0-9:\-][^\s:\-]*`},
		{Name: "Number", Pattern: `[0-9]+`},
		{Name: "Punct", Pattern: `[:\-]`},
		{Name: "Space", Pattern: `\s`},
	})
	if err != nil {
		return nil, fmt.Errorf("build reference lexer: %w", err)
	}

	p, err := participle.Build[reference](
		participle.Lexer(def),
		participle.UseLookahead(3),
	)
	if err != nil {
		return nil, fmt.Errorf("build reference grammar: %w", err)
	}
	return &Parser{canon: canon, parser: p}, nil
}

// MustParser is NewParser that panics on error.
func MustParser(canon *bcv.Canon) *Parser {
	p, err := NewParser(canon)
	if err != nil {
		panic(err)
	}
	return p
}

// Canon returns the canon the parser resolves book names against.
func (p *Parser) Canon() *bcv.Canon {
	return p.canon
}

// Parse resolves a reference string into its verse ranges. The whole string
// must match; anything else is a *errors.ParseError.
func (p *Parser) Parse(s string) ([]bcv.Range, error) {
	parsed, err := p.parser.ParseString("", s)
	if err != nil {
		return nil, &errors.ParseError{Format: "reference", Path: s, Message: "unrecognised reference", Err: err}
	}

	start, err := p.locate(s, parsed.Start.Book, parsed.Start.Chapter, parsed.Start.Verse)
	if err != nil {
		return nil, err
	}

	end := start
	if e := parsed.End; e != nil {
		book, chapter := parsed.Start.Book, start.Chapter
		if e.Book != "" {
			if e.Chapter == nil {
				return nil, errors.NewParse("reference", s, "a second book needs chapter:verse")
			}
			book = e.Book
		}
		if e.Chapter != nil {
			chapter = *e.Chapter
		}
		end, err = p.locate(s, book, chapter, e.Verse)
		if err != nil {
			return nil, err
		}
	}

	if end.Less(start) {
		return nil, errors.NewParse("reference", s, "range ends before it starts")
	}
	if start == end {
		return []bcv.Range{bcv.Single(start)}, nil
	}
	return []bcv.Range{{Start: start, End: end}}, nil
}

// ParseAll parses several references and concatenates their ranges in order.
func (p *Parser) ParseAll(refs []string) ([]bcv.Range, error) {
	var out []bcv.Range
	for _, s := range refs {
		ranges, err := p.Parse(s)
		if err != nil {
			return nil, err
		}
		out = append(out, ranges...)
	}
	return out, nil
}

func (p *Parser) locate(s, book string, chapter, verse int) (bcv.Locator, error) {
	n, ok := p.canon.Lookup(book)
	if !ok {
		return bcv.Locator{}, errors.NewParse("reference", s, fmt.Sprintf("unknown book %q", book))
	}
	loc := bcv.Locator{Book: n, Chapter: chapter, Verse: verse}
	if !loc.Valid() {
		return bcv.Locator{}, errors.NewParse("reference", s,
			fmt.Sprintf("chapter and verse must be between 1 and %d", bcv.MaxComponent))
	}
	return loc, nil
}

// Format renders a range the way a reader would write it, using the canon's
// display names: "John 18:1", "John 18:1-11", "Matthew 1:1-2:5",
// "Mark 1:1-Luke 2:5".
func Format(canon *bcv.Canon, r bcv.Range) string {
	name := func(n int) string {
		if b, ok := canon.Book(n); ok {
			return b.Name
		}
		return fmt.Sprintf("%d", n)
	}

	s, e := r.Start, r.End
	head := fmt.Sprintf("%s %d:%d", name(s.Book), s.Chapter, s.Verse)
	switch {
	case r.IsSingle():
		return head
	case s.Book != e.Book:
		return fmt.Sprintf("%s-%s %d:%d", head, name(e.Book), e.Chapter, e.Verse)
	case s.Chapter != e.Chapter:
		return fmt.Sprintf("%s-%d:%d", head, e.Chapter, e.Verse)
	default:
		return fmt.Sprintf("%s-%d", head, e.Verse)
	}
}
