package lexicon

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// indent matches the four-space nesting of the hand-edited table files.
const indent = 4

// WriteGlosses writes glosses with lemmas and entries in collation order.
func WriteGlosses(w io.Writer, g Glosses, c Collator) error {
	root := mapping()
	for _, lemma := range SortedKeys(g, c) {
		entries := mapping()
		for _, key := range SortedKeys(g[lemma], c) {
			entries.Content = append(entries.Content, str(key), str(g[lemma][key]))
		}
		root.Content = append(root.Content, str(lemma), entries)
	}
	return encode(w, root)
}

// WriteHeadwords writes one "lemma: headword" line per lemma in collation order.
func WriteHeadwords(w io.Writer, h Headwords, c Collator) error {
	return writeFlat(w, h, c, str)
}

// WriteStrongs writes one "lemma: number" line per lemma in collation order.
// Numbers stay unquoted.
func WriteStrongs(w io.Writer, s Strongs, c Collator) error {
	return writeFlat(w, s, c, untyped)
}

// Reduced is the per-lemma record kept by ReduceLexicon.
type Reduced struct {
	Headword string
	Gloss    string
}

// ReduceLexicon keeps only the headword and gloss of each lexeme. Lemmas
// without a citation form use the lemma as headword.
func ReduceLexicon(lex Lexicon) map[string]Reduced {
	out := make(map[string]Reduced, len(lex))
	for lemma, l := range lex {
		hw := lemma
		if l.FullCitationForm != "" {
			hw = l.FullCitationForm
		} else if l.DankerEntry != "" {
			hw = l.DankerEntry
		}
		out[lemma] = Reduced{Headword: hw, Gloss: l.Gloss}
	}
	return out
}

// WriteReduced writes a reduced lexicon in collation order.
func WriteReduced(w io.Writer, r map[string]Reduced, c Collator) error {
	root := mapping()
	for _, lemma := range SortedKeys(r, c) {
		entry := mapping()
		entry.Content = append(entry.Content, str("headword"), str(r[lemma].Headword))
		if r[lemma].Gloss != "" {
			entry.Content = append(entry.Content, str("gloss"), str(r[lemma].Gloss))
		}
		root.Content = append(root.Content, str(lemma), entry)
	}
	return encode(w, root)
}

// WriteWordset writes one lemma per line in the given order.
func WriteWordset(w io.Writer, lemmas []string) error {
	for _, l := range lemmas {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}

func writeFlat(w io.Writer, m map[string]string, c Collator, value func(string) *yaml.Node) error {
	root := mapping()
	for _, lemma := range SortedKeys(m, c) {
		root.Content = append(root.Content, str(lemma), value(m[lemma]))
	}
	return encode(w, root)
}

func mapping() *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
}

// str is a string scalar; the encoder quotes it when the plain form would
// read back as something else (verse keys such as 041801, "@@@").
func str(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

// untyped lets the encoder choose the scalar's presentation.
func untyped(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Value: s}
}

func encode(w io.Writer, root *yaml.Node) error {
	if len(root.Content) == 0 {
		return nil
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(indent)
	if err := enc.Encode(root); err != nil {
		return fmt.Errorf("encode table: %w", err)
	}
	return enc.Close()
}
