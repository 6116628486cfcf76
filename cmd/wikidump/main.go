package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/wikidump"
	"github.com/fwojciec/wikidump/goquery"
	"github.com/fwojciec/wikidump/htmltomarkdown"
	wikihttp "github.com/fwojciec/wikidump/http"
	wikislog "github.com/fwojciec/wikidump/slog"
	"github.com/fwojciec/wikidump/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// SQLite database used when a command targets one.
	DB *sqlite.DB

	// Article storage for end-to-end testing.
	ArticleService wikidump.ArticleService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("wikidump"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'wikidump --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Kong reports the selected command as "extract <input>" etc; the
	// first word identifies it regardless of global flag position.
	cmd := strings.Fields(kongCtx.Command())[0]

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// Wire command-specific dependencies based on command
	switch cmd {
	case "extract":
		deps.Assembler = wikislog.NewLoggingAssembler(goquery.NewExtractor(), deps.Logger)
		deps.Converter = htmltomarkdown.NewConverter()

		if cli.Extract.DB != "" {
			svc, err := m.openDB(cli.Extract.DB, stderr)
			if err != nil {
				return err
			}
			defer m.Close()
			deps.Articles = svc
			deps.DBWriter = svc
		}

	case "articles":
		svc, err := m.openDB(cli.Articles.DB, stderr)
		if err != nil {
			return err
		}
		defer m.Close()
		deps.Articles = svc

	case "download":
		deps.Dumps = wikihttp.NewDumpService()
	}

	return kongCtx.Run(deps)
}

// openDB opens the SQLite database at path and wires the article service.
func (m *Main) openDB(path string, stderr io.Writer) (*sqlite.ArticleService, error) {
	m.DB = sqlite.NewDB(path)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintln(stderr, "Hint: the parent directory must exist and be writable")
		return nil, fmt.Errorf("failed to open database at %q: %w", path, err)
	}
	svc := sqlite.NewArticleService(m.DB)
	m.ArticleService = svc
	return svc, nil
}
