// Package fs provides file-based dump reading and article writing.
package fs

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/fwojciec/wikidump"
)

// Scanner buffer bounds. A dump line carries one whole rendered page
// and routinely runs to several megabytes.
const (
	initialLineBuffer = 1 << 20
	maxLineBuffer     = 64 << 20
)

// dumpLine mirrors the wire shape of one Enterprise dump line.
type dumpLine struct {
	Identifier int64  `json:"identifier"`
	Name       string `json:"name"`
	URL        string `json:"url"`
	Namespace  struct {
		Identifier int `json:"identifier"`
	} `json:"namespace"`
	ArticleBody struct {
		HTML string `json:"html"`
	} `json:"article_body"`
}

// Ensure Reader implements wikidump.DumpSource at compile time.
var _ wikidump.DumpSource = (*Reader)(nil)

// Reader streams dump records from newline-delimited JSON. Archive
// noise can precede the first '{' on a line when a .tar.gz member is
// read as a raw stream; the reader scans forward to the object start.
// Undecodable lines are skipped and counted, never fatal.
type Reader struct {
	sc      *bufio.Scanner
	closers []io.Closer
	limit   int
	read    int
	skipped int
}

// Option configures a Reader.
type Option func(*Reader)

// WithLimit stops the stream after n records (dev-mode truncation).
// Zero means unlimited.
func WithLimit(n int) Option {
	return func(r *Reader) { r.limit = n }
}

// NewReader creates a Reader over an uncompressed NDJSON stream.
func NewReader(r io.Reader, opts ...Option) *Reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, initialLineBuffer), maxLineBuffer)

	reader := &Reader{sc: sc}
	for _, opt := range opts {
		opt(reader)
	}
	return reader
}

// Open creates a Reader for a dump file on disk, transparently
// decompressing .gz files.
func Open(path string, opts ...Option) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	var src io.Reader = f
	closers := []io.Closer{f}
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, wikidump.Errorf(wikidump.EMALFORMED, "open %s: %v", path, err)
		}
		src = gz
		closers = []io.Closer{gz, f}
	}

	r := NewReader(src, opts...)
	r.closers = closers
	return r, nil
}

// Next returns the next record, or io.EOF when the stream or the
// configured limit is exhausted.
func (r *Reader) Next(ctx context.Context) (*wikidump.DumpRecord, error) {
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if r.limit > 0 && r.read >= r.limit {
			return nil, io.EOF
		}
		if !r.sc.Scan() {
			if err := r.sc.Err(); err != nil {
				return nil, err
			}
			return nil, io.EOF
		}

		line := r.sc.Bytes()
		start := bytes.IndexByte(line, '{')
		if start < 0 {
			r.skipped++
			continue
		}

		var dl dumpLine
		if err := json.Unmarshal(line[start:], &dl); err != nil {
			r.skipped++
			continue
		}

		r.read++
		return &wikidump.DumpRecord{
			Identifier: dl.Identifier,
			Title:      dl.Name,
			URL:        dl.URL,
			Namespace:  dl.Namespace.Identifier,
			HTML:       dl.ArticleBody.HTML,
		}, nil
	}
}

// Skipped reports how many undecodable lines were dropped so far.
func (r *Reader) Skipped() int {
	return r.skipped
}

// Close releases the underlying file handles.
func (r *Reader) Close() error {
	var firstErr error
	for _, c := range r.closers {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
