package main

import (
	"context"
	"fmt"
	"io"
	"iter"
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/FocuswithJustin/JuniperReader/core/export"
	"github.com/FocuswithJustin/JuniperReader/core/lexicon"
	"github.com/FocuswithJustin/JuniperReader/core/render"
	"github.com/FocuswithJustin/JuniperReader/core/sqlite"
	"github.com/FocuswithJustin/JuniperReader/core/stream"
	"github.com/FocuswithJustin/JuniperReader/internal/config"
	"github.com/FocuswithJustin/JuniperReader/internal/logging"
	"github.com/FocuswithJustin/JuniperReader/internal/validation"
)

// ReaderCmd typesets a reader's edition.
type ReaderCmd struct {
	Verses     []string `arg:"" help:"Verses to cover (e.g. 'John 18:1-11')"`
	Format     string   `help:"Output format: latex or markdown (default latex)" env:"READER_FORMAT"`
	Typeface   string   `help:"Typeface to use (default Times New Roman)" env:"READER_TYPEFACE"`
	Locale     string   `help:"Language of headings in Markdown output (default en)" env:"READER_LOCALE"`
	Headwords  string   `help:"Headwords file" type:"path"`
	Glosses    string   `help:"Glosses file" type:"path"`
	Exclude    string   `help:"Exclusion list file" type:"path"`
	Vocabulary bool     `help:"Append a vocabulary table (Markdown only)"`
}

func (c *ReaderCmd) Run(ctx context.Context, g *Globals, out io.Writer) error {
	e, err := g.setup(ctx, config.Config{Format: c.Format, Typeface: c.Typeface, Locale: c.Locale})
	if err != nil {
		return err
	}
	ranges, err := e.parser.ParseAll(c.Verses)
	if err != nil {
		return err
	}

	var opts render.Options
	if c.Headwords != "" {
		if opts.Headwords, err = loadTable(c.Headwords, "headwords", lexicon.LoadHeadwords); err != nil {
			return err
		}
	}
	if c.Glosses != "" {
		if opts.Glosses, err = loadTable(c.Glosses, "glosses", lexicon.LoadGlosses); err != nil {
			return err
		}
	}
	if opts.Exclude, err = loadExclusions(c.Exclude); err != nil {
		return err
	}

	var backend render.Backend
	switch e.cfg.Format {
	case config.FormatMarkdown:
		locale, err := render.LookupLocale(e.cfg.Locale)
		if err != nil {
			return err
		}
		md := render.NewMarkdown(strings.Join(c.Verses, "; "), c.Vocabulary)
		md.Locale = locale
		backend = md
	default:
		backend = render.NewLaTeX(e.cfg.Typeface)
	}

	logging.InfoContext(ctx, "rendering", "verses", c.Verses, "format", e.cfg.Format)
	return render.NewReader(backend, opts).Render(out, stream.Stream(ranges, e.source))
}

// TableFlags are shared by the table builders.
type TableFlags struct {
	Verses   []string `arg:"" help:"Verses to cover (e.g. 'John 18:1-11')"`
	Exclude  string   `help:"Exclusion list file" type:"path"`
	Existing string   `help:"Existing table to extend" type:"path"`
	Lexicon  string   `help:"Path to morphological-lexicon lexemes.yaml (default ../morphological-lexicon/lexemes.yaml)" type:"path" env:"READER_LEXICON"`
}

// prepare resolves the verses and loads the lexicon and exclusions.
func (f *TableFlags) prepare(ctx context.Context, g *Globals) (*env, iter.Seq2[stream.Event, error], lexicon.Lexicon, lexicon.Wordset, error) {
	e, err := g.setup(ctx, config.Config{Lexicon: f.Lexicon})
	if err != nil {
		return nil, nil, nil, nil, err
	}
	ranges, err := e.parser.ParseAll(f.Verses)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	lex, err := loadTable(e.cfg.Lexicon, "lexemes", lexicon.LoadLexicon)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	exclude, err := loadExclusions(f.Exclude)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	return e, stream.Stream(ranges, e.source), lex, exclude, nil
}

// GlossesCmd builds a glosses table.
type GlossesCmd struct {
	TableFlags `embed:""`
}

func (c *GlossesCmd) Run(ctx context.Context, g *Globals, out io.Writer) error {
	e, events, lex, exclude, err := c.prepare(ctx, g)
	if err != nil {
		return err
	}
	var existing lexicon.Glosses
	if c.Existing != "" {
		if existing, err = loadTable(c.Existing, "glosses", lexicon.LoadGlosses); err != nil {
			return err
		}
	}
	table, err := lexicon.BuildGlosses(events, lex, existing, exclude)
	if err != nil {
		return err
	}
	logging.Status("%d glosses, %d new", len(table), len(table)-len(existing))
	return lexicon.WriteGlosses(out, table, e.collator)
}

// HeadwordsCmd builds a headwords table for nouns and adjectives.
type HeadwordsCmd struct {
	TableFlags `embed:""`
}

func (c *HeadwordsCmd) Run(ctx context.Context, g *Globals, out io.Writer) error {
	e, events, lex, exclude, err := c.prepare(ctx, g)
	if err != nil {
		return err
	}
	var existing lexicon.Headwords
	if c.Existing != "" {
		if existing, err = loadTable(c.Existing, "headwords", lexicon.LoadHeadwords); err != nil {
			return err
		}
	}
	table, err := lexicon.BuildHeadwords(events, lex, existing, exclude)
	if err != nil {
		return err
	}
	logging.Status("%d headwords, %d new", len(table), len(table)-len(existing))
	return lexicon.WriteHeadwords(out, table, e.collator)
}

// StrongsCmd builds a Strong's numbers table.
type StrongsCmd struct {
	TableFlags `embed:""`
}

func (c *StrongsCmd) Run(ctx context.Context, g *Globals, out io.Writer) error {
	e, events, lex, exclude, err := c.prepare(ctx, g)
	if err != nil {
		return err
	}
	var existing lexicon.Strongs
	if c.Existing != "" {
		if existing, err = loadTable(c.Existing, "strongs", lexicon.LoadStrongs); err != nil {
			return err
		}
	}
	table, err := lexicon.BuildStrongs(events, lex, existing, exclude)
	if err != nil {
		return err
	}
	logging.Status("%d Strong's numbers, %d new", len(table), len(table)-len(existing))
	return lexicon.WriteStrongs(out, table, e.collator)
}

// LexemesCmd reduces a morphological lexicon.
type LexemesCmd struct {
	Lexicon string `help:"Path to morphological-lexicon lexemes.yaml (default ../morphological-lexicon/lexemes.yaml)" type:"path" env:"READER_LEXICON"`
}

func (c *LexemesCmd) Run(ctx context.Context, g *Globals, out io.Writer) error {
	e, err := g.setup(ctx, config.Config{Lexicon: c.Lexicon})
	if err != nil {
		return err
	}
	lex, err := loadTable(e.cfg.Lexicon, "lexemes", lexicon.LoadLexicon)
	if err != nil {
		return err
	}
	return lexicon.WriteReduced(out, lexicon.ReduceLexicon(lex), e.collator)
}

// ExclusionsCmd lists frequent lemmas.
type ExclusionsCmd struct {
	Occurrences int  `arg:"" help:"Lower occurrence limit to exclude"`
	Table       bool `help:"Print a Markdown table of lemma counts instead of a word list"`
}

func (c *ExclusionsCmd) Run(ctx context.Context, g *Globals, out io.Writer) error {
	if c.Occurrences < 1 {
		return fmt.Errorf("occurrences must be at least 1, got %d", c.Occurrences)
	}
	e, err := g.setup(ctx, config.Config{})
	if err != nil {
		return err
	}
	books := make([]int, e.canon.Len())
	for i := range books {
		books[i] = i + 1
	}
	counts, err := lexicon.CountLemmas(e.source, books)
	if err != nil {
		return err
	}
	lemmas := lexicon.Frequent(counts, c.Occurrences, e.collator)

	if c.Table {
		err = countTable(out, lemmas, counts)
	} else {
		err = lexicon.WriteWordset(out, lemmas)
	}
	if err != nil {
		return err
	}
	logging.Status("output %d/%d lexemes appearing %d times or more", len(lemmas), len(counts), c.Occurrences)
	return nil
}

func countTable(out io.Writer, lemmas []string, counts map[string]int) error {
	table := tablewriter.NewTable(out,
		tablewriter.WithRenderer(renderer.NewMarkdown()),
		tablewriter.WithAlignment([]tw.Align{tw.AlignLeft, tw.AlignRight}),
		tablewriter.WithHeaderAutoFormat(tw.Off),
	)
	table.Header([]string{"lemma", "count"})
	for _, l := range lemmas {
		if err := table.Append([]string{l, strconv.Itoa(counts[l])}); err != nil {
			return err
		}
	}
	return table.Render()
}

// EventsCmd prints the event stream.
type EventsCmd struct {
	Verses []string `arg:"" help:"Verses to cover (e.g. 'John 18:1-11')"`
	Digest bool     `help:"Print only the BLAKE3 digest of the stream"`
}

func (c *EventsCmd) Run(ctx context.Context, g *Globals, out io.Writer) error {
	e, err := g.setup(ctx, config.Config{})
	if err != nil {
		return err
	}
	ranges, err := e.parser.ParseAll(c.Verses)
	if err != nil {
		return err
	}
	events := stream.Stream(ranges, e.source)
	if c.Digest {
		sum, err := stream.Digest(events)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, sum)
		return err
	}
	for ev, err := range events {
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(out, ev); err != nil {
			return err
		}
	}
	return nil
}

// ExportCmd writes a SQLite study database.
type ExportCmd struct {
	Verses    []string `arg:"" help:"Verses to cover (e.g. 'John 18:1-11')"`
	Out       string   `required:"" help:"Output database path" type:"path"`
	Force     bool     `help:"Replace an existing database"`
	Headwords string   `help:"Headwords file" type:"path"`
	Glosses   string   `help:"Glosses file" type:"path"`
}

func (c *ExportCmd) Run(ctx context.Context, g *Globals, out io.Writer) error {
	e, err := g.setup(ctx, config.Config{})
	if err != nil {
		return err
	}
	ranges, err := e.parser.ParseAll(c.Verses)
	if err != nil {
		return err
	}
	if err := validation.ValidateOutput(c.Out); err != nil {
		return err
	}

	opts := export.Options{Reference: strings.Join(c.Verses, "; "), Canon: e.canon}
	if c.Headwords != "" {
		if opts.Headwords, err = loadTable(c.Headwords, "headwords", lexicon.LoadHeadwords); err != nil {
			return err
		}
	}
	if c.Glosses != "" {
		if opts.Glosses, err = loadTable(c.Glosses, "glosses", lexicon.LoadGlosses); err != nil {
			return err
		}
	}

	if c.Force {
		if err := os.Remove(c.Out); err != nil && !os.IsNotExist(err) {
			return err
		}
	}
	db, err := sqlite.Create(c.Out)
	if err != nil {
		return err
	}
	defer db.Close()

	res, err := export.Export(ctx, db, stream.Stream(ranges, e.source), opts)
	if err != nil {
		db.Close()
		os.Remove(c.Out)
		return err
	}
	logging.Status("exported %d verses, %d words to %s", res.Verses, res.Words, c.Out)
	_, err = fmt.Fprintf(out, "%s %s\n", res.ID, res.Digest)
	return err
}

// loadTable validates path, loads it and logs the entry count.
func loadTable[T ~map[string]V, V any](path, name string, load func(string) (T, error)) (T, error) {
	if err := validation.ValidateFile(path); err != nil {
		return nil, fmt.Errorf("%s table: %w", name, err)
	}
	t, err := load(path)
	if err != nil {
		return nil, err
	}
	logging.TableLoaded(name, path, len(t))
	return t, nil
}

func loadExclusions(path string) (lexicon.Wordset, error) {
	if path == "" {
		return nil, nil
	}
	return loadTable(path, "exclusions", lexicon.LoadWordset)
}
