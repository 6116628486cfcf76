package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fwojciec/wikidump"
	"github.com/fwojciec/wikidump/bloom"
	"github.com/fwojciec/wikidump/fs"
	"github.com/fwojciec/wikidump/pipeline"
	wikislog "github.com/fwojciec/wikidump/slog"
)

// dedupCapacity sizes the page ID filter. A full English dump carries
// under ten million NS0 pages.
const dedupCapacity = 10_000_000

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	if err := c.validate(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wikidump.ErrorMessage(err))
		return err
	}

	var opts []fs.Option
	if c.Dev > 0 {
		opts = append(opts, fs.WithLimit(c.Dev))
	}

	source, err := fs.Open(c.Input, opts...)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wikidump.ErrorMessage(err))
		return err
	}
	defer source.Close()

	writer, closeWriter, err := c.openWriter(deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wikidump.ErrorMessage(err))
		return err
	}

	var dedup *bloom.Filter
	if c.Dedup {
		dedup = bloom.NewFilter(dedupCapacity, 0.001)
	}

	p := &pipeline.Pipeline{
		Source:    source,
		Assembler: deps.Assembler,
		Writer:    writer,
		Dedup:     dedup,
		Options: wikidump.Options{
			IncludeTables: c.IncludeTable,
			IncludeLists:  c.IncludeList,
		},
		Concurrency: c.Concurrency,
	}

	progress := func(event pipeline.ProgressEvent) {
		if event.Type == pipeline.ProgressFailed {
			fmt.Fprintf(deps.Stderr, "  skip %q: %v\n", event.Title, event.Error)
		}
	}

	result, runErr := p.Run(deps.Ctx, progress)
	if closeErr := closeWriter(); runErr == nil {
		runErr = closeErr
	}
	if runErr != nil {
		fmt.Fprintf(deps.Stderr, "error extracting: %v\n", runErr)
		return runErr
	}

	// When article data goes to stdout the summary moves to stderr.
	summary := deps.Stdout
	if c.Stdout {
		summary = deps.Stderr
	}
	fmt.Fprintf(summary, "Extracted %d articles (%d malformed, %d duplicates, %d undecodable lines)\n",
		result.Written, result.Malformed, result.Duplicates, result.SkippedLines)

	return nil
}

// validate rejects contradictory output selections.
func (c *ExtractCmd) validate() error {
	formats := 0
	for _, set := range []bool{c.JSON, c.HTML, c.Markdown} {
		if set {
			formats++
		}
	}
	if formats > 1 {
		return wikidump.Errorf(wikidump.EINVALID, "choose at most one of --json, --html, --markdown")
	}
	if c.DB != "" && (formats > 0 || c.Stdout || c.Out != "") {
		return wikidump.Errorf(wikidump.EINVALID, "--db cannot be combined with file output flags")
	}
	return nil
}

// openWriter builds the output destination selected by the flags. The
// returned func closes any file the writer owns.
func (c *ExtractCmd) openWriter(deps *Dependencies) (wikidump.ArticleWriter, func() error, error) {
	if c.DB != "" {
		return wikislog.NewLoggingArticleWriter(deps.DBWriter, deps.Logger), func() error { return nil }, nil
	}

	var out io.Writer
	closeFn := func() error { return nil }

	if c.Stdout {
		out = deps.Stdout
	} else {
		path := c.Out
		if path == "" {
			path = c.defaultOutPath()
		}
		f, err := os.Create(path)
		if err != nil {
			return nil, nil, err
		}
		out = f
		closeFn = f.Close
	}

	switch {
	case c.HTML:
		return fs.NewDocWriter(out), closeFn, nil
	case c.Markdown:
		return fs.NewMarkdownWriter(out, deps.Converter), closeFn, nil
	default:
		return fs.NewJSONWriter(out), closeFn, nil
	}
}

// defaultOutPath derives an output path next to the input file.
func (c *ExtractCmd) defaultOutPath() string {
	base := strings.TrimSuffix(c.Input, ".gz")
	base = strings.TrimSuffix(base, ".json")
	base = strings.TrimSuffix(base, ".ndjson")

	switch {
	case c.HTML:
		return base + ".articles.txt"
	case c.Markdown:
		return base + ".articles.md"
	default:
		return base + ".articles.ndjson"
	}
}
