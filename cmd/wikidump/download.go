package main

import (
	"fmt"

	"github.com/fwojciec/wikidump"
)

// Run executes the download command.
func (c *DownloadCmd) Run(deps *Dependencies) error {
	files, err := deps.Dumps.ListFiles(deps.Ctx, c.Date)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wikidump.ErrorMessage(err))
		return err
	}

	if c.File != "" {
		files = filterByName(files, c.File)
		if len(files) == 0 {
			fmt.Fprintf(deps.Stderr, "error: file %q not published in run %s\n", c.File, c.Date)
			return wikidump.Errorf(wikidump.ENOTFOUND, "file %q not published in run %s", c.File, c.Date)
		}
	}

	if len(files) == 0 {
		fmt.Fprintf(deps.Stdout, "No files published for run %s\n", c.Date)
		return nil
	}

	if c.List {
		for _, f := range files {
			fmt.Fprintf(deps.Stdout, "%s  %s\n", f.Name, formatBytes(f.Bytes))
		}
		return nil
	}

	for _, f := range files {
		fmt.Fprintf(deps.Stdout, "Downloading %s (%s)\n", f.Name, formatBytes(f.Bytes))
		path, err := deps.Dumps.Download(deps.Ctx, c.Date, f.Name, c.Dir)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error downloading %s: %v\n", f.Name, err)
			return err
		}
		fmt.Fprintf(deps.Stdout, "  Saved %s\n", path)
	}

	return nil
}

func filterByName(files []wikidump.DumpFile, name string) []wikidump.DumpFile {
	var matched []wikidump.DumpFile
	for _, f := range files {
		if f.Name == name {
			matched = append(matched, f)
		}
	}
	return matched
}

// formatBytes formats a byte count in human-readable form.
func formatBytes(bytes int64) string {
	const (
		KB = 1024
		MB = KB * 1024
		GB = MB * 1024
	)
	switch {
	case bytes >= GB:
		return fmt.Sprintf("%.1f GB", float64(bytes)/float64(GB))
	case bytes >= MB:
		return fmt.Sprintf("%.1f MB", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%.1f KB", float64(bytes)/float64(KB))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}
