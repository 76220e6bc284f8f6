package lexicon

import (
	"github.com/FocuswithJustin/JuniperReader/core/corpus"
)

// CountLemmas counts lemma occurrences across the given books of src.
func CountLemmas(src corpus.Source, books []int) (map[string]int, error) {
	counts := make(map[string]int)
	for _, book := range books {
		if err := countBook(src, book, counts); err != nil {
			return nil, err
		}
	}
	return counts, nil
}

func countBook(src corpus.Source, book int, counts map[string]int) error {
	rows, err := src.OpenBook(book)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		counts[rows.Row().Lemma]++
	}
	return rows.Err()
}

// Frequent returns the lemmas occurring at least minCount times, in collation order.
func Frequent(counts map[string]int, minCount int, c Collator) []string {
	var out []string
	for lemma, n := range counts {
		if n >= minCount {
			out = append(out, lemma)
		}
	}
	SortStrings(out, c)
	return out
}
