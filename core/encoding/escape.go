// Package encoding escapes lexicon text for the edition formats.
package encoding

import "strings"

// latexReplacer escapes in a single pass so the braces of \textbackslash{}
// are not escaped again.
var latexReplacer = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	"{", `\{`,
	"}", `\}`,
	"$", `\$`,
	"%", `\%`,
	"&", `\&`,
	"#", `\#`,
	"_", `\_`,
	"^", `\^{}`,
	"~", `\~{}`,
)

// EscapeLaTeX escapes \ { } $ % & # _ ^ ~ for LaTeX body text.
func EscapeLaTeX(s string) string {
	return latexReplacer.Replace(s)
}

var markdownReplacer = strings.NewReplacer(
	`\`, `\\`,
	"*", `\*`,
	"_", `\_`,
	"[", `\[`,
	"]", `\]`,
	"`", "\\`",
	"<", "&lt;",
)

// EscapeMarkdown escapes the inline markup characters that would change
// how a footnote or table cell renders.
func EscapeMarkdown(s string) string {
	return markdownReplacer.Replace(s)
}

// Line folds line breaks into spaces so a value stays on one output line.
func Line(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "\r", " ")
}
