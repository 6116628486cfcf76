package wikidump

import "context"

// DumpFile describes one downloadable file within a dump run.
type DumpFile struct {
	// Name is the file name as published, e.g.
	// "frwiki-NS0-20240101-ENTERPRISE-HTML.json.tar.gz".
	Name string

	// Bytes is the published size, or 0 when the listing omits it.
	Bytes int64
}

// DumpService enumerates and downloads Enterprise HTML dump files from
// the remote archive. This is a collaborator of the extractor, not part
// of it: no network I/O happens inside extraction.
type DumpService interface {
	// ListFiles returns the files published for a run date (YYYYMMDD).
	ListFiles(ctx context.Context, run string) ([]DumpFile, error)

	// Download fetches one file into dir and returns its local path.
	Download(ctx context.Context, run, name, dir string) (string, error)
}
