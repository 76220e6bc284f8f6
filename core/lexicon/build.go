package lexicon

import (
	"iter"

	"github.com/FocuswithJustin/JuniperReader/core/corpus"
	"github.com/FocuswithJustin/JuniperReader/core/errors"
	"github.com/FocuswithJustin/JuniperReader/core/stream"
)

// headwordPOS are the parts of speech that get headword entries.
var headwordPOS = map[string]bool{"N-": true, "A-": true}

// words calls fn for every WORD event whose lemma is not excluded.
func words(events iter.Seq2[stream.Event, error], exclude Wordset, fn func(corpus.Row) error) error {
	for e, err := range events {
		if err != nil {
			return err
		}
		w, ok := e.(stream.Word)
		if !ok || exclude.Contains(w.Row.Lemma) {
			continue
		}
		if err := fn(w.Row); err != nil {
			return err
		}
	}
	return nil
}

// BuildGlosses adds a default gloss, taken from the lexicon, for every lemma
// in the events that is neither excluded nor already glossed. Lemmas the
// lexicon has no gloss for get Placeholder. existing is not modified.
func BuildGlosses(events iter.Seq2[stream.Event, error], lex Lexicon, existing Glosses, exclude Wordset) (Glosses, error) {
	out := existing.Clone()
	err := words(events, exclude, func(r corpus.Row) error {
		if _, ok := out[r.Lemma]; ok {
			return nil
		}
		l, err := lex.Lookup(r.Lemma)
		if err != nil {
			return err
		}
		gloss := l.Gloss
		if gloss == "" {
			gloss = Placeholder
		}
		out[r.Lemma] = map[string]string{DefaultGlossKey: gloss}
		return nil
	})
	return out, err
}

// BuildHeadwords adds the citation form of every noun and adjective lemma in
// the events that is neither excluded nor already present.
func BuildHeadwords(events iter.Seq2[stream.Event, error], lex Lexicon, existing Headwords, exclude Wordset) (Headwords, error) {
	out := make(Headwords, len(existing))
	for k, v := range existing {
		out[k] = v
	}
	err := words(events, exclude, func(r corpus.Row) error {
		if _, ok := out[r.Lemma]; ok || !headwordPOS[r.POS] {
			return nil
		}
		l, err := lex.Lookup(r.Lemma)
		if err != nil {
			return err
		}
		hw, ok := l.CitationForm()
		if !ok {
			return errors.NewLookup("lexeme citation forms", r.Lemma)
		}
		out[r.Lemma] = hw
		return nil
	})
	return out, err
}

// BuildStrongs adds the Strong's number of every lemma in the events that is
// neither excluded nor already present. Lemmas without one get Placeholder.
func BuildStrongs(events iter.Seq2[stream.Event, error], lex Lexicon, existing Strongs, exclude Wordset) (Strongs, error) {
	out := make(Strongs, len(existing))
	for k, v := range existing {
		out[k] = v
	}
	err := words(events, exclude, func(r corpus.Row) error {
		if _, ok := out[r.Lemma]; ok {
			return nil
		}
		l, err := lex.Lookup(r.Lemma)
		if err != nil {
			return err
		}
		if l.Strongs == "" {
			out[r.Lemma] = Placeholder
		} else {
			out[r.Lemma] = string(l.Strongs)
		}
		return nil
	})
	return out, err
}
