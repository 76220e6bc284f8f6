package render

import (
	"fmt"
	"strings"

	"github.com/FocuswithJustin/JuniperReader/core/encoding"
	"github.com/FocuswithJustin/JuniperReader/core/stream"
)

// DefaultTypeface is the roman font of LaTeX editions.
const DefaultTypeface = "Times New Roman"

const latexPreamble = `\documentclass[a4paper,12pt]{article}

\usepackage{setspace}
\usepackage{fontspec}
\usepackage{dblfnote}
\usepackage{pfnote}
\usepackage{hyperref}

\setromanfont{%s}

\newcommand{\footlabel}[2]{%%
    \addtocounter{footnote}{1}%%
    \footnotetext[\thefootnote]{%%
        \addtocounter{footnote}{-1}%%
        \refstepcounter{footnote}\label{#1}%%
        #2%%
    }%%
    $^{\ref{#1}}$%%
}

\newcommand{\footref}[1]{%%
    $^{\ref{#1}}$%%
}

\linespread{1.5}
\onehalfspacing

\makeatletter
\renewcommand\@makefntext[1]{\leftskip=2em\hskip-2em\@makefnmark#1}
\makeatother

\begin{document}`

// LaTeX typesets an edition for XeLaTeX with paragraph footnotes in two
// columns. Repeated footnotes reuse the first one's label.
type LaTeX struct {
	Typeface string
}

// NewLaTeX returns a LaTeX backend. An empty typeface selects DefaultTypeface.
func NewLaTeX(typeface string) *LaTeX {
	if typeface == "" {
		typeface = DefaultTypeface
	}
	return &LaTeX{Typeface: typeface}
}

func (l *LaTeX) Preamble() string {
	return fmt.Sprintf(latexPreamble, l.Typeface)
}

func (l *LaTeX) Verse(chapter, verse int) string {
	if chapter != 0 {
		return fmt.Sprintf(`\textbf{\Large %d.%d}`, chapter, verse)
	}
	return fmt.Sprintf(`\textbf{%d}`, verse)
}

func (l *LaTeX) Note(headword, parse, gloss string) string {
	var parts []string
	if headword != "" {
		parts = append(parts, encoding.EscapeLaTeX(encoding.Line(headword)))
	}
	if parse != "" {
		parts = append(parts, `\textendash\ `+parse)
	}
	if gloss != "" {
		parts = append(parts, `\textendash\ \textit{`+encoding.EscapeLaTeX(encoding.Line(gloss))+`}`)
	}
	return strings.Join(parts, " ")
}

func (l *LaTeX) Word(text string, fn *Footnote, first bool) string {
	switch {
	case fn == nil:
		return text
	case first:
		return fmt.Sprintf(`%s\footlabel{%d}{%s}`, text, fn.Number, fn.Body)
	default:
		return fmt.Sprintf(`%s\footref{%d}`, text, fn.Number)
	}
}

func (l *LaTeX) Boundary(e stream.Event) string {
	return "% " + e.String()
}

func (l *LaTeX) Postamble(*Document) string {
	return `\end{document}`
}
