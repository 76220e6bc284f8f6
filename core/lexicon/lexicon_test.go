package lexicon

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"golang.org/x/text/language"

	"github.com/FocuswithJustin/JuniperReader/core/bcv"
	"github.com/FocuswithJustin/JuniperReader/core/corpus"
	rerrors "github.com/FocuswithJustin/JuniperReader/core/errors"
	"github.com/FocuswithJustin/JuniperReader/core/stream"
)

const lexiconYAML = `ἐν:
    pos: P
    danker-entry: ἐν
    gloss: in
    strongs: 1722
ἀρχή:
    pos: N
    full-citation-form: ἀρχή, -ῆς, ἡ
    danker-entry: ἀρχή
    gloss: beginning
    strongs: 746
εἰμί:
    pos: V
    danker-entry: εἰμί
λόγος:
    pos: N
    full-citation-form: λόγος, -ου, ὁ
    danker-entry: λόγος
    gloss: word
    strongs: G3056
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func row(c, v, pos int, partOfSpeech, lemma string) corpus.Row {
	return corpus.Row{
		Locator:  bcv.Locator{Book: 4, Chapter: c, Verse: v},
		Position: pos,
		POS:      partOfSpeech,
		Parse:    "--------",
		Text:     lemma,
		Lemma:    lemma,
	}
}

func johnEvents() (*corpus.Memory, bcv.Range) {
	src := corpus.NewMemory([]corpus.Row{
		row(1, 1, 1, "P-", "ἐν"),
		row(1, 1, 2, "N-", "ἀρχή"),
		row(1, 1, 3, "V-", "εἰμί"),
		row(1, 1, 4, "RA", "ὁ"),
		row(1, 1, 5, "N-", "λόγος"),
		row(1, 2, 1, "V-", "εἰμί"),
	})
	return src, bcv.Range{Start: bcv.Locator{Book: 4, Chapter: 1, Verse: 1}, End: bcv.Locator{Book: 4, Chapter: 1, Verse: 2}}
}

func TestLoadLexicon(t *testing.T) {
	lex, err := LoadLexicon(writeFile(t, t.TempDir(), "lexemes.yaml", lexiconYAML))
	if err != nil {
		t.Fatalf("LoadLexicon() error: %v", err)
	}
	if len(lex) != 4 {
		t.Fatalf("len = %d, want 4", len(lex))
	}
	if got := lex["ἐν"].Strongs; got != "1722" {
		t.Errorf("numeric strongs = %q, want %q", got, "1722")
	}
	if got := lex["λόγος"].Strongs; got != "G3056" {
		t.Errorf("strongs = %q", got)
	}
	if hw, _ := lex["ἀρχή"].CitationForm(); hw != "ἀρχή, -ῆς, ἡ" {
		t.Errorf("CitationForm() = %q", hw)
	}
	if hw, _ := lex["εἰμί"].CitationForm(); hw != "εἰμί" {
		t.Errorf("CitationForm() falls back to danker-entry, got %q", hw)
	}

	_, err = lex.Lookup("θεός")
	var le *rerrors.LookupError
	if !errors.As(err, &le) || le.Key != "θεός" {
		t.Errorf("Lookup(missing) error = %v", err)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadGlosses(filepath.Join(dir, "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadGlosses(missing) error = %v", err)
	}

	bad := writeFile(t, dir, "bad.yaml", "λόγος: [unterminated\n")
	if _, err := LoadHeadwords(bad); !errors.Is(err, rerrors.ErrInvalidInput) {
		t.Errorf("LoadHeadwords(bad) error = %v, want parse error", err)
	}

	empty := writeFile(t, dir, "empty.yaml", "")
	g, err := LoadGlosses(empty)
	if err != nil || len(g) != 0 {
		t.Errorf("LoadGlosses(empty) = %v, %v", g, err)
	}
}

func TestGlossLookup(t *testing.T) {
	g := Glosses{
		"λόγος": {DefaultGlossKey: "word", "040101": "Word"},
		"ἀρχή":  {"040101": "beginning"},
	}
	tests := []struct {
		lemma   string
		loc     bcv.Locator
		want    string
		wantErr bool
	}{
		{"λόγος", bcv.Locator{Book: 4, Chapter: 1, Verse: 1}, "Word", false},
		{"λόγος", bcv.Locator{Book: 4, Chapter: 1, Verse: 14}, "word", false},
		{"ἀρχή", bcv.Locator{Book: 4, Chapter: 1, Verse: 2}, "", true},
		{"θεός", bcv.Locator{Book: 4, Chapter: 1, Verse: 1}, "", true},
	}
	for _, tt := range tests {
		got, err := g.Gloss(tt.lemma, tt.loc)
		if (err != nil) != tt.wantErr {
			t.Errorf("Gloss(%q, %v) error = %v, wantErr %v", tt.lemma, tt.loc, err, tt.wantErr)
			continue
		}
		if err != nil && !errors.Is(err, rerrors.ErrNotFound) {
			t.Errorf("Gloss(%q) error %v should be a lookup error", tt.lemma, err)
		}
		if got != tt.want {
			t.Errorf("Gloss(%q, %v) = %q, want %q", tt.lemma, tt.loc, got, tt.want)
		}
	}
}

func TestHeadwordFallback(t *testing.T) {
	h := Headwords{"λόγος": "λόγος, -ου, ὁ"}
	if got := h.Headword("λόγος"); got != "λόγος, -ου, ὁ" {
		t.Errorf("Headword() = %q", got)
	}
	if got := h.Headword("καί"); got != "καί" {
		t.Errorf("Headword(missing) = %q, want the lemma", got)
	}
}

func TestLoadWordset(t *testing.T) {
	path := writeFile(t, t.TempDir(), "exclude.txt", "ὁ\nκαί  # conjunction\n\n# comment only\n  αὐτός\n")
	set, err := LoadWordset(path)
	if err != nil {
		t.Fatalf("LoadWordset() error: %v", err)
	}
	want := Wordset{"ὁ": {}, "καί": {}, "αὐτός": {}}
	if !reflect.DeepEqual(set, want) {
		t.Errorf("LoadWordset() = %v, want %v", set, want)
	}
	if !set.Contains("καί") || set.Contains("λόγος") {
		t.Error("Contains() gave wrong membership")
	}
}

func TestSortStringsCollation(t *testing.T) {
	c := NewCollator(language.Und)
	words := []string{"λόγος", "ἀρχή", "βίβλος", "εἰμί", "Ἰησοῦς"}
	SortStrings(words, c)
	want := []string{"ἀρχή", "βίβλος", "εἰμί", "Ἰησοῦς", "λόγος"}
	if !reflect.DeepEqual(words, want) {
		t.Errorf("SortStrings() = %v, want %v", words, want)
	}

	keys := SortedKeys(map[string]int{"default": 1, "041801": 2}, c)
	if !reflect.DeepEqual(keys, []string{"041801", "default"}) {
		t.Errorf("SortedKeys() = %v", keys)
	}
}

func TestBuildGlosses(t *testing.T) {
	lex, _ := LoadLexicon(writeFile(t, t.TempDir(), "lexemes.yaml", lexiconYAML))
	src, r := johnEvents()
	existing := Glosses{"λόγος": {DefaultGlossKey: "Word"}}

	got, err := BuildGlosses(stream.Stream([]bcv.Range{r}, src), lex, existing, Wordset{"ὁ": {}})
	if err != nil {
		t.Fatalf("BuildGlosses() error: %v", err)
	}
	want := Glosses{
		"ἐν":    {DefaultGlossKey: "in"},
		"ἀρχή":  {DefaultGlossKey: "beginning"},
		"εἰμί":  {DefaultGlossKey: Placeholder},
		"λόγος": {DefaultGlossKey: "Word"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("BuildGlosses() = %v, want %v", got, want)
	}
	if len(existing) != 1 {
		t.Error("BuildGlosses() modified the existing table")
	}

	// Without the exclusion, ὁ is looked up and missing from the lexicon.
	_, err = BuildGlosses(stream.Stream([]bcv.Range{r}, src), lex, nil, nil)
	var le *rerrors.LookupError
	if !errors.As(err, &le) || le.Key != "ὁ" {
		t.Errorf("BuildGlosses() error = %v, want lookup error for ὁ", err)
	}
}

func TestBuildHeadwords(t *testing.T) {
	lex, _ := LoadLexicon(writeFile(t, t.TempDir(), "lexemes.yaml", lexiconYAML))
	src, r := johnEvents()

	got, err := BuildHeadwords(stream.Stream([]bcv.Range{r}, src), lex, nil, nil)
	if err != nil {
		t.Fatalf("BuildHeadwords() error: %v", err)
	}
	want := Headwords{"ἀρχή": "ἀρχή, -ῆς, ἡ", "λόγος": "λόγος, -ου, ὁ"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("BuildHeadwords() = %v, want %v", got, want)
	}
}

func TestBuildStrongs(t *testing.T) {
	lex, _ := LoadLexicon(writeFile(t, t.TempDir(), "lexemes.yaml", lexiconYAML))
	src, r := johnEvents()

	got, err := BuildStrongs(stream.Stream([]bcv.Range{r}, src), lex, Strongs{"ἐν": "1722"}, Wordset{"ὁ": {}})
	if err != nil {
		t.Fatalf("BuildStrongs() error: %v", err)
	}
	want := Strongs{"ἐν": "1722", "ἀρχή": "746", "εἰμί": Placeholder, "λόγος": "G3056"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("BuildStrongs() = %v, want %v", got, want)
	}
}

func TestWriteGlossesRoundTrip(t *testing.T) {
	c := NewCollator(language.Und)
	g := Glosses{
		"λόγος": {DefaultGlossKey: "word", "040101": "Word"},
		"ἀρχή":  {DefaultGlossKey: Placeholder},
		"εἰμί":  {DefaultGlossKey: "I am: be"},
	}

	var buf bytes.Buffer
	if err := WriteGlosses(&buf, g, c); err != nil {
		t.Fatalf("WriteGlosses() error: %v", err)
	}
	out := buf.String()

	if a, e, l := strings.Index(out, "ἀρχή:"), strings.Index(out, "εἰμί:"), strings.Index(out, "λόγος:"); !(a < e && e < l) || a != 0 {
		t.Errorf("lemmas not in collation order:\n%s", out)
	}
	if !strings.Contains(out, "\n    default: word\n") {
		t.Errorf("entries should be indented four spaces:\n%s", out)
	}

	path := writeFile(t, t.TempDir(), "glosses.yaml", out)
	back, err := LoadGlosses(path)
	if err != nil {
		t.Fatalf("LoadGlosses() error: %v\n%s", err, out)
	}
	if !reflect.DeepEqual(back, g) {
		t.Errorf("round trip = %v, want %v", back, g)
	}
}

func TestWriteHeadwordsAndStrongs(t *testing.T) {
	c := NewCollator(language.Und)

	var buf bytes.Buffer
	if err := WriteHeadwords(&buf, Headwords{"λόγος": "λόγος, -ου, ὁ", "ἀρχή": "ἀρχή, -ῆς, ἡ"}, c); err != nil {
		t.Fatalf("WriteHeadwords() error: %v", err)
	}
	if got, want := buf.String(), "ἀρχή: ἀρχή, -ῆς, ἡ\nλόγος: λόγος, -ου, ὁ\n"; got != want {
		t.Errorf("WriteHeadwords() = %q, want %q", got, want)
	}

	buf.Reset()
	s := Strongs{"λόγος": "3056", "ἀρχή": Placeholder}
	if err := WriteStrongs(&buf, s, c); err != nil {
		t.Fatalf("WriteStrongs() error: %v", err)
	}
	if !strings.Contains(buf.String(), "λόγος: 3056\n") {
		t.Errorf("numbers should stay unquoted:\n%s", buf.String())
	}
	back, err := LoadStrongs(writeFile(t, t.TempDir(), "strongs.yaml", buf.String()))
	if err != nil {
		t.Fatalf("LoadStrongs() error: %v", err)
	}
	if !reflect.DeepEqual(back, s) {
		t.Errorf("round trip = %v, want %v", back, s)
	}

	buf.Reset()
	if err := WriteHeadwords(&buf, nil, c); err != nil || buf.Len() != 0 {
		t.Errorf("empty table wrote %q, %v", buf.String(), err)
	}
}

func TestReduceLexicon(t *testing.T) {
	lex, _ := LoadLexicon(writeFile(t, t.TempDir(), "lexemes.yaml", lexiconYAML))
	reduced := ReduceLexicon(lex)

	if got := reduced["ἀρχή"]; got != (Reduced{Headword: "ἀρχή, -ῆς, ἡ", Gloss: "beginning"}) {
		t.Errorf("ἀρχή = %+v", got)
	}
	if got := reduced["εἰμί"]; got != (Reduced{Headword: "εἰμί"}) {
		t.Errorf("εἰμί = %+v", got)
	}

	var buf bytes.Buffer
	if err := WriteReduced(&buf, reduced, NewCollator(language.Und)); err != nil {
		t.Fatalf("WriteReduced() error: %v", err)
	}
	back, err := LoadLexicon(writeFile(t, t.TempDir(), "reduced.yaml", buf.String()))
	if err != nil {
		t.Fatalf("LoadLexicon(reduced) error: %v", err)
	}
	if hw, _ := back["λόγος"].CitationForm(); hw != "λόγος, -ου, ὁ" {
		t.Errorf("reduced headword = %q", hw)
	}
	if back["εἰμί"].Gloss != "" {
		t.Error("εἰμί should have no gloss")
	}
}

func TestCountLemmasAndFrequent(t *testing.T) {
	src, _ := johnEvents()
	counts, err := CountLemmas(src, []int{4})
	if err != nil {
		t.Fatalf("CountLemmas() error: %v", err)
	}
	if counts["εἰμί"] != 2 || counts["λόγος"] != 1 {
		t.Errorf("counts = %v", counts)
	}

	got := Frequent(counts, 2, NewCollator(language.Und))
	if !reflect.DeepEqual(got, []string{"εἰμί"}) {
		t.Errorf("Frequent(2) = %v", got)
	}
	if all := Frequent(counts, 1, NewCollator(language.Und)); len(all) != 5 {
		t.Errorf("Frequent(1) = %v", all)
	}

	if _, err := CountLemmas(src, []int{4, 5}); !errors.Is(err, rerrors.ErrSourceAccess) {
		t.Errorf("CountLemmas(missing book) error = %v", err)
	}

	var buf bytes.Buffer
	if err := WriteWordset(&buf, got); err != nil || buf.String() != "εἰμί\n" {
		t.Errorf("WriteWordset() = %q, %v", buf.String(), err)
	}
}
