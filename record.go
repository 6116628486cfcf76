package wikidump

import "context"

// DumpRecord is one line of an Enterprise HTML dump: the rendered HTML of
// a single wiki page plus its metadata. Records are immutable and their
// lifecycle is bounded to a single extraction call.
type DumpRecord struct {
	// Identifier is the wiki page ID.
	Identifier int64

	// Title is the page name as published in the dump.
	Title string

	// URL is the canonical page URL.
	URL string

	// Namespace is the wiki namespace ID (0 articles, 6 files,
	// 10 templates). Opaque metadata; passed through, never interpreted.
	Namespace int

	// HTML is the rendered article content fragment.
	HTML string
}

// Validate returns an error if the record is missing required fields.
func (r *DumpRecord) Validate() error {
	if r.Identifier == 0 {
		return Errorf(EINVALID, "record identifier required")
	}
	if r.Title == "" {
		return Errorf(EINVALID, "record title required")
	}
	return nil
}

// DumpSource streams records from a dump file. Implementations return
// io.EOF from Next when the source is exhausted.
type DumpSource interface {
	// Next returns the next record in the dump.
	Next(ctx context.Context) (*DumpRecord, error)

	// Skipped reports how many undecodable lines were dropped so far.
	Skipped() int

	// Close releases the underlying stream.
	Close() error
}
