package render

import "strings"

// VerbParse abbreviates a MorphGNT verb parse code (person, tense, voice,
// mood, case, number, gender, degree) to tense, voice and mood, followed by
// person and number for finite moods or case, number and gender for
// participles. "3PAI-S--" gives "PAI 3S" and "-AAPNSM-" gives "AAP NSM".
func VerbParse(code string) string {
	if len(code) < 8 {
		return code
	}
	text := code[1:4]
	switch mood := code[3]; {
	case strings.IndexByte("DISO", mood) >= 0:
		text += " " + code[0:1] + code[5:6]
	case mood == 'P':
		text += " " + code[4:7]
	}
	return text
}

var textCritical = strings.NewReplacer("⸀", "", "⸂", "", "⸃", "")

// StripTextCritical removes the SBLGNT apparatus signs ⸀ ⸂ ⸃ from a word.
func StripTextCritical(s string) string {
	return textCritical.Replace(s)
}
