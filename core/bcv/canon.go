package bcv

import (
	"fmt"
	"sort"
	"strings"
)

// Book describes one book of a canon.
type Book struct {
	// Number is the 1-based ordinal of the book within its canon.
	Number int `json:"number"`

	// Name is the display name (e.g., "Matthew").
	Name string `json:"name"`

	// Code is the short code used in corpus file names (e.g., "Mt").
	Code string `json:"code"`

	// Aliases are the case-sensitive names a reference may use for the book.
	// Name and Code are always accepted and need not be repeated.
	Aliases []string `json:"aliases,omitempty"`
}

// Canon is an immutable, ordered set of books with an unambiguous alias table.
type Canon struct {
	books   []Book
	aliases map[string]int
	order   []string
}

// NewCanon numbers books in the order given and builds the alias table.
// It fails if any alias names two different books.
func NewCanon(books []Book) (*Canon, error) {
	if len(books) == 0 {
		return nil, fmt.Errorf("canon has no books")
	}
	if len(books) > MaxComponent {
		return nil, fmt.Errorf("canon has %d books, at most %d supported", len(books), MaxComponent)
	}

	c := &Canon{
		books:   make([]Book, len(books)),
		aliases: make(map[string]int),
	}
	for i, b := range books {
		b.Number = i + 1
		b.Aliases = append([]string(nil), b.Aliases...)
		c.books[i] = b

		for _, alias := range append([]string{b.Code, b.Name}, b.Aliases...) {
			if alias == "" {
				continue
			}
			if alias != strings.TrimSpace(alias) {
				return nil, fmt.Errorf("alias %q of %s has surrounding whitespace", alias, b.Name)
			}
			if prev, ok := c.aliases[alias]; ok {
				if prev != b.Number {
					return nil, fmt.Errorf("alias %q names both %s and %s", alias, c.books[prev-1].Name, b.Name)
				}
				continue
			}
			c.aliases[alias] = b.Number
			c.order = append(c.order, alias)
		}
	}

	// Longest aliases compete first so that no alias is shadowed by one of
	// its prefixes ("1 Corinthians" before "1Co", "Jude" before "Jud").
	sort.SliceStable(c.order, func(i, j int) bool {
		return len(c.order[i]) > len(c.order[j])
	})
	return c, nil
}

// MustCanon is NewCanon that panics on error.
func MustCanon(books []Book) *Canon {
	c, err := NewCanon(books)
	if err != nil {
		panic(err)
	}
	return c
}

// Len returns the number of books.
func (c *Canon) Len() int {
	return len(c.books)
}

// Book returns the book with the given ordinal.
func (c *Canon) Book(n int) (Book, bool) {
	if n < 1 || n > len(c.books) {
		return Book{}, false
	}
	return c.books[n-1], true
}

// Books returns a copy of the books in canonical order.
func (c *Canon) Books() []Book {
	return append([]Book(nil), c.books...)
}

// Lookup resolves an alias to a book ordinal.
func (c *Canon) Lookup(alias string) (int, bool) {
	n, ok := c.aliases[alias]
	return n, ok
}

// Aliases returns every alias in match precedence order: longest first,
// ties kept in canon order.
func (c *Canon) Aliases() []string {
	return append([]string(nil), c.order...)
}

// NewTestament returns the 27-book canon in the traditional order, Matthew = 1.
func NewTestament() *Canon {
	return MustCanon(newTestamentBooks)
}

var newTestamentBooks = []Book{
	{Name: "Matthew", Code: "Mt", Aliases: []string{"Matt"}},
	{Name: "Mark", Code: "Mk"},
	{Name: "Luke", Code: "Lk"},
	{Name: "John", Code: "Jn"},
	{Name: "Acts", Code: "Ac"},
	{Name: "Romans", Code: "Ro", Aliases: []string{"Rom"}},
	{Name: "1 Corinthians", Code: "1Co"},
	{Name: "2 Corinthians", Code: "2Co"},
	{Name: "Galatians", Code: "Ga", Aliases: []string{"Gal"}},
	{Name: "Ephesians", Code: "Eph"},
	{Name: "Philippians", Code: "Php"},
	{Name: "Colossians", Code: "Col"},
	{Name: "1 Thessalonians", Code: "1Th"},
	{Name: "2 Thessalonians", Code: "2Th"},
	{Name: "1 Timothy", Code: "1Ti"},
	{Name: "2 Timothy", Code: "2Ti"},
	{Name: "Titus", Code: "Tit"},
	{Name: "Philemon", Code: "Phm"},
	{Name: "Hebrews", Code: "Heb"},
	{Name: "James", Code: "Jas"},
	{Name: "1 Peter", Code: "1Pe", Aliases: []string{"1Pet"}},
	{Name: "2 Peter", Code: "2Pe", Aliases: []string{"2Pet"}},
	{Name: "1 John", Code: "1Jn"},
	{Name: "2 John", Code: "2Jn"},
	{Name: "3 John", Code: "3Jn"},
	{Name: "Jude", Code: "Jud"},
	{Name: "Revelation", Code: "Re", Aliases: []string{"Rev"}},
}
