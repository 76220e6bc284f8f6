package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/FocuswithJustin/JuniperReader/core/encoding"
	"github.com/FocuswithJustin/JuniperReader/core/stream"
)

// Markdown writes an edition with reference-style footnotes ([^n]) whose
// definitions follow the text. Consecutive lines form one paragraph.
type Markdown struct {
	// Title, when set, is printed as a level-one heading.
	Title string
	// Vocabulary appends a table of every glossed lemma.
	Vocabulary bool
	Locale     Locale
}

// NewMarkdown returns a Markdown backend with English labels.
func NewMarkdown(title string, vocabulary bool) *Markdown {
	return &Markdown{Title: title, Vocabulary: vocabulary, Locale: locales["en"]}
}

func (m *Markdown) Preamble() string {
	if m.Title == "" {
		return ""
	}
	return "# " + m.Title + "\n"
}

func (m *Markdown) Verse(chapter, verse int) string {
	if chapter != 0 {
		return fmt.Sprintf("**%d.%d**", chapter, verse)
	}
	return fmt.Sprintf("<sup>%d</sup>", verse)
}

func (m *Markdown) Note(headword, parse, gloss string) string {
	var parts []string
	if headword != "" {
		parts = append(parts, encoding.EscapeMarkdown(encoding.Line(headword)))
	}
	if parse != "" {
		parts = append(parts, "– "+parse)
	}
	if gloss != "" {
		parts = append(parts, "– *"+encoding.EscapeMarkdown(encoding.Line(gloss))+"*")
	}
	return strings.Join(parts, " ")
}

func (m *Markdown) Word(text string, fn *Footnote, _ bool) string {
	if fn == nil {
		return text
	}
	return fmt.Sprintf("%s[^%d]", text, fn.Number)
}

func (m *Markdown) Boundary(e stream.Event) string {
	return "<!-- " + e.String() + " -->"
}

func (m *Markdown) Postamble(doc *Document) string {
	var b strings.Builder
	for _, fn := range doc.Footnotes {
		fmt.Fprintf(&b, "\n[^%d]: %s", fn.Number, fn.Body)
	}
	if m.Vocabulary && len(doc.Vocabulary) > 0 {
		fmt.Fprintf(&b, "\n\n## %s\n\n", m.Locale.Vocabulary)
		m.vocabulary(&b, doc.Vocabulary)
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m *Markdown) vocabulary(b *strings.Builder, entries []Entry) {
	table := tablewriter.NewTable(b,
		tablewriter.WithRenderer(renderer.NewMarkdown()),
		tablewriter.WithAlignment([]tw.Align{tw.AlignLeft, tw.AlignLeft, tw.AlignRight}),
		tablewriter.WithHeaderAutoFormat(tw.Off),
	)
	table.Header([]string{m.Locale.Headword, m.Locale.Gloss, m.Locale.Count})
	for _, e := range entries {
		table.Append([]string{e.Headword, e.Gloss, strconv.Itoa(e.Count)})
	}
	table.Render()
}
