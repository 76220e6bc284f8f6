// Package morphgnt reads the MorphGNT SBLGNT corpus.
//
// Each line holds one word in seven whitespace-separated columns:
//
//	BBCCVV  POS  PARSE     TEXT     WORD     NORM     LEMMA
//	040101  P-   --------  Ἐν       Ἐν       ἐν       ἐν
//
// The reference may also be the nine-digit BBCCVVWWW form, in which case WWW
// is the word's position within the verse. Books are stored one per file as
// "<60+n>-<Code>-morphgnt.txt", optionally compressed.
package morphgnt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/FocuswithJustin/JuniperReader/core/bcv"
	"github.com/FocuswithJustin/JuniperReader/core/corpus"
	"github.com/FocuswithJustin/JuniperReader/core/errors"
)

// fieldCount is the number of columns per MorphGNT line.
const fieldCount = 7

// ParseLine parses one MorphGNT line. Position is taken from a nine-digit
// reference and is otherwise left zero for the caller to assign.
func ParseLine(line string) (corpus.Row, error) {
	fields := strings.Fields(line)
	if len(fields) != fieldCount {
		return corpus.Row{}, fmt.Errorf("expected %d fields, found %d", fieldCount, len(fields))
	}

	ref := fields[0]
	var position int
	switch len(ref) {
	case bcv.KeyLen:
	case bcv.KeyLen + 3:
		n, err := strconv.Atoi(ref[bcv.KeyLen:])
		if err != nil || n < 1 {
			return corpus.Row{}, fmt.Errorf("invalid word number in %q", ref)
		}
		position = n
		ref = ref[:bcv.KeyLen]
	default:
		return corpus.Row{}, fmt.Errorf("invalid reference %q", ref)
	}

	loc, err := bcv.Decode(ref)
	if err != nil {
		return corpus.Row{}, fmt.Errorf("invalid reference %q", fields[0])
	}
	if !loc.Valid() {
		return corpus.Row{}, fmt.Errorf("reference %q out of range", fields[0])
	}

	return corpus.Row{
		Locator:  loc,
		Position: position,
		POS:      fields[1],
		Parse:    fields[2],
		Text:     fields[3],
		Word:     fields[4],
		Norm:     fields[5],
		Lemma:    fields[6],
	}, nil
}

// FormatLine renders a row in the six-digit MorphGNT line format.
func FormatLine(r corpus.Row) string {
	return strings.Join([]string{r.Locator.Key(), r.POS, r.Parse, r.Text, r.Word, r.Norm, r.Lemma}, " ")
}

// lineError wraps a line-level failure with its file and line number.
func lineError(path string, lineNo int, err error) error {
	return errors.NewParse("MorphGNT", fmt.Sprintf("%s:%d", path, lineNo), err.Error())
}
