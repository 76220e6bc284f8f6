// Command reader builds Greek New Testament reader's editions from the
// MorphGNT SBLGNT files: LaTeX or Markdown text with glossed footnotes, the
// gloss, headword and Strong's tables those editions use, frequency-based
// exclusion lists, and SQLite study exports.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"golang.org/x/text/language"

	"github.com/FocuswithJustin/JuniperReader/core/bcv"
	"github.com/FocuswithJustin/JuniperReader/core/corpus"
	"github.com/FocuswithJustin/JuniperReader/core/lexicon"
	"github.com/FocuswithJustin/JuniperReader/core/morphgnt"
	"github.com/FocuswithJustin/JuniperReader/core/ref"
	"github.com/FocuswithJustin/JuniperReader/internal/config"
	"github.com/FocuswithJustin/JuniperReader/internal/logging"
	"github.com/FocuswithJustin/JuniperReader/internal/validation"
)

const version = "0.1.0"

// Globals are the flags shared by every command.
type Globals struct {
	Config    string `help:"Config file (default ./reader.yaml)" type:"path" env:"READER_CONFIG"`
	SBLGNT    string `name:"sblgnt" help:"Path to MorphGNT sblgnt directory (default ../sblgnt)" type:"path" env:"READER_SBLGNT_DIR"`
	LogLevel  string `name:"log-level" help:"Log level: debug, info, warn, error" env:"READER_LOG_LEVEL"`
	LogFormat string `name:"log-format" help:"Log format: text or json" env:"READER_LOG_FORMAT"`
}

// CLI defines the command-line interface for reader.
type CLI struct {
	Globals

	Reader     ReaderCmd     `cmd:"" help:"Typeset a reader's edition of the given verses"`
	Glosses    GlossesCmd    `cmd:"" help:"Build or extend a glosses table"`
	Headwords  HeadwordsCmd  `cmd:"" help:"Build or extend a headwords table"`
	Strongs    StrongsCmd    `cmd:"" help:"Build or extend a Strong's numbers table"`
	Lexemes    LexemesCmd    `cmd:"" help:"Reduce a morphological lexicon to headwords and glosses"`
	Exclusions ExclusionsCmd `cmd:"" help:"List lemmas occurring at least N times in the whole corpus"`
	Events     EventsCmd     `cmd:"" help:"Print the corpus event stream for the given verses"`
	Export     ExportCmd     `cmd:"" help:"Export verses to a SQLite study database"`
	Version    VersionCmd    `cmd:"" help:"Print version information"`
}

// env is what a command needs once configuration is resolved.
type env struct {
	ctx      context.Context
	cfg      config.Config
	canon    *bcv.Canon
	parser   *ref.Parser
	source   corpus.Source
	collator lexicon.Collator
}

// setup loads the config file and merges the global flags and the
// command's own flags over it.
func (g *Globals) setup(ctx context.Context, flags config.Config) (*env, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, err
	}
	flags.SBLGNTDir = g.SBLGNT
	flags.LogLevel = g.LogLevel
	flags.LogFormat = g.LogFormat
	cfg = cfg.Merge(flags)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.InitLogging(); err != nil {
		return nil, err
	}

	canon := bcv.NewTestament()
	parser, err := ref.NewParser(canon)
	if err != nil {
		return nil, err
	}
	return &env{
		ctx:      ctx,
		cfg:      cfg,
		canon:    canon,
		parser:   parser,
		source:   &lazySource{dir: cfg.SBLGNTDir, canon: canon},
		collator: lexicon.NewCollator(language.Und),
	}, nil
}

// lazySource checks the corpus directory on first use, so commands that
// never read the corpus do not need it.
type lazySource struct {
	dir   string
	canon *bcv.Canon
	src   *morphgnt.DirSource
}

func (s *lazySource) OpenBook(book int) (corpus.Rows, error) {
	if s.src == nil {
		if err := validation.ValidateDir(s.dir); err != nil {
			return nil, fmt.Errorf("sblgnt directory: %w", err)
		}
		s.src = morphgnt.NewDirSource(s.dir, s.canon)
	}
	path, _ := s.src.Path(book)
	logging.BookOpened(book, path)
	return s.src.OpenBook(book)
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run(out io.Writer) error {
	fmt.Fprintf(out, "reader version %s\n", version)
	return nil
}

func newParser(cli *CLI, stdout, stderr io.Writer, options ...kong.Option) (*kong.Kong, error) {
	options = append([]kong.Option{
		kong.Name("reader"),
		kong.Description("Greek New Testament reader's edition tools"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Writers(stdout, stderr),
		kong.Bind(&cli.Globals),
		kong.BindTo(stdout, (*io.Writer)(nil)),
	}, options...)
	return kong.New(cli, options...)
}

// run parses args and executes the selected command with output on stdout.
func run(args []string, stdout, stderr io.Writer) error {
	var cli CLI
	parser, err := newParser(&cli, stdout, stderr)
	if err != nil {
		return err
	}
	kctx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	return execute(kctx)
}

func execute(kctx *kong.Context) error {
	ctx := logging.WithCommand(context.Background(), kctx.Command())
	start := time.Now()
	kctx.BindTo(ctx, (*context.Context)(nil))
	if err := kctx.Run(); err != nil {
		return err
	}
	logging.CommandDone(ctx, time.Since(start))
	return nil
}

func main() {
	var cli CLI
	parser, err := newParser(&cli, os.Stdout, os.Stderr)
	if err != nil {
		panic(err)
	}
	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)
	err = execute(ctx)
	ctx.FatalIfErrorf(err)
}
