// Package lexicon loads, queries, builds and writes the lookup tables that
// enrich reader editions: the morphological lexicon, glosses, headwords,
// Strong's numbers and lemma exclusion lists.
//
// Table files are YAML keyed by lemma. Gloss entries map "default" and
// optional verse keys (BBCCVV) to a gloss, so a lemma can be glossed
// differently in a particular verse.
package lexicon

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/FocuswithJustin/JuniperReader/core/bcv"
	"github.com/FocuswithJustin/JuniperReader/core/errors"
)

// DefaultGlossKey is the gloss entry used when no verse-specific entry exists.
const DefaultGlossKey = "default"

// Placeholder marks a table value still to be filled in by an editor.
const Placeholder = "@@@"

// Scalar is a YAML scalar read as its literal text, so that numbers such as
// Strong's 3056 keep their written form.
type Scalar string

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *Scalar) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a scalar", value.Line)
	}
	*s = Scalar(value.Value)
	return nil
}

// Lexeme is one entry of a morphological lexicon file.
type Lexeme struct {
	FullCitationForm string `yaml:"full-citation-form"`
	DankerEntry      string `yaml:"danker-entry"`
	Headword         string `yaml:"headword"`
	Gloss            string `yaml:"gloss"`
	Strongs          Scalar `yaml:"strongs"`
}

// CitationForm returns the form used as a headword: the full citation form,
// else the Danker entry, else a reduced lexicon's headword.
func (l Lexeme) CitationForm() (string, bool) {
	for _, s := range []string{l.FullCitationForm, l.DankerEntry, l.Headword} {
		if s != "" {
			return s, true
		}
	}
	return "", false
}

// Lexicon maps lemmas to lexemes.
type Lexicon map[string]Lexeme

// Lookup returns the lexeme or a *errors.LookupError.
func (l Lexicon) Lookup(lemma string) (Lexeme, error) {
	lex, ok := l[lemma]
	if !ok {
		return Lexeme{}, errors.NewLookup("lexemes", lemma)
	}
	return lex, nil
}

// Glosses maps lemmas to gloss entries.
type Glosses map[string]map[string]string

// Gloss returns the lemma's gloss for the verse, falling back to the default
// entry.
func (g Glosses) Gloss(lemma string, loc bcv.Locator) (string, error) {
	entries, ok := g[lemma]
	if !ok {
		return "", errors.NewLookup("glosses", lemma)
	}
	if gloss, ok := entries[loc.Key()]; ok {
		return gloss, nil
	}
	if gloss, ok := entries[DefaultGlossKey]; ok {
		return gloss, nil
	}
	return "", errors.NewLookup("glosses", lemma)
}

// Clone returns a deep copy.
func (g Glosses) Clone() Glosses {
	out := make(Glosses, len(g))
	for lemma, entries := range g {
		cp := make(map[string]string, len(entries))
		for k, v := range entries {
			cp[k] = v
		}
		out[lemma] = cp
	}
	return out
}

// Headwords maps lemmas to display headwords.
type Headwords map[string]string

// Headword returns the lemma's headword, or the lemma itself.
func (h Headwords) Headword(lemma string) string {
	if hw, ok := h[lemma]; ok {
		return hw
	}
	return lemma
}

// Strongs maps lemmas to Strong's numbers.
type Strongs map[string]string

// Wordset is a set of lemmas, typically those excluded from footnotes.
type Wordset map[string]struct{}

// Contains reports whether lemma is in the set.
func (w Wordset) Contains(lemma string) bool {
	_, ok := w[lemma]
	return ok
}

// LoadLexicon reads a morphological lexicon file.
func LoadLexicon(path string) (Lexicon, error) {
	out := Lexicon{}
	if err := loadYAML(path, "lexemes", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// LoadGlosses reads a glosses file.
func LoadGlosses(path string) (Glosses, error) {
	out := Glosses{}
	if err := loadYAML(path, "glosses", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// LoadHeadwords reads a headwords file.
func LoadHeadwords(path string) (Headwords, error) {
	out := Headwords{}
	if err := loadYAML(path, "headwords", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// LoadStrongs reads a Strong's numbers file.
func LoadStrongs(path string) (Strongs, error) {
	raw := map[string]Scalar{}
	if err := loadYAML(path, "strongs", &raw); err != nil {
		return nil, err
	}
	out := make(Strongs, len(raw))
	for k, v := range raw {
		out[k] = string(v)
	}
	return out, nil
}

func loadYAML(path, table string, out interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s table: %w", table, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return errors.NewParse(table, path, err.Error())
	}
	return nil
}

// LoadWordset reads one lemma per line; text after '#' is a comment and
// blank lines are skipped.
func LoadWordset(path string) (Wordset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read word set: %w", err)
	}
	defer f.Close()

	set := Wordset{}
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		word, _, _ := strings.Cut(sc.Text(), "#")
		if word = strings.TrimSpace(word); word != "" {
			set[word] = struct{}{}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read word set %s: %w", path, err)
	}
	return set, nil
}
