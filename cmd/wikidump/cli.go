package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/wikidump"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Assembler wikidump.Assembler
	Converter wikidump.Converter
	Articles  wikidump.ArticleService
	DBWriter  wikidump.ArticleWriter
	Dumps     wikidump.DumpService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable debug logging"`

	Extract  ExtractCmd  `cmd:"" help:"Extract structured articles from an Enterprise HTML dump"`
	Articles ArticlesCmd `cmd:"" help:"List articles stored in an extraction database"`
	Download DownloadCmd `cmd:"" help:"Download Enterprise HTML dump files for a run date"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	Input string `arg:"" help:"Dump file: newline-delimited JSON, optionally gzip-compressed"`

	Out    string `short:"o" help:"Output file path (defaults next to the input)"`
	Stdout bool   `help:"Write output to stdout instead of a file"`

	JSON     bool   `help:"Write one JSON object per article per line (default)"`
	HTML     bool   `help:"Write doc-tag text output"`
	Markdown bool   `help:"Write Markdown output"`
	DB       string `help:"Write articles to a SQLite database at this path"`

	IncludeTable bool `name:"include-table" help:"Extract tables"`
	IncludeList  bool `name:"include-list" help:"Extract lists"`

	Dedup       bool `help:"Skip pages whose ID was already seen (approximate, bloom-filter based)"`
	Dev         int  `help:"Process only the first N records"`
	Concurrency int  `short:"c" default:"4" help:"Concurrent assembly workers"`
}

// ArticlesCmd is the "articles" subcommand.
type ArticlesCmd struct {
	DB string `arg:"" help:"Extraction database path"`

	Namespace int  `default:"-1" help:"Filter by namespace ID"`
	Limit     int  `help:"Maximum number of articles to list"`
	Offset    int  `help:"Number of articles to skip"`
	Full      bool `help:"Show article bodies"`
}

// DownloadCmd is the "download" subcommand.
type DownloadCmd struct {
	Date string `arg:"" help:"Dump run date (YYYYMMDD)"`

	Dir  string `short:"d" default:"." help:"Target directory"`
	File string `help:"Download only the named file"`
	List bool   `help:"List available files without downloading"`
}
