// Package pipeline provides extraction orchestration. It streams records
// from a dump source through concurrent assembly workers into a single
// output writer.
package pipeline

import (
	"context"
	"io"
	"sync"
	"sync/atomic"

	"github.com/fwojciec/wikidump"
	"github.com/fwojciec/wikidump/bloom"
	"golang.org/x/sync/errgroup"
)

// Pipeline coordinates one extraction run. Assembly fans out across
// Concurrency workers; writing stays on a single goroutine because
// output destinations append to a shared stream.
type Pipeline struct {
	Source    wikidump.DumpSource
	Assembler wikidump.Assembler
	Writer    wikidump.ArticleWriter

	// Dedup, when set, drops records whose page ID was already seen.
	Dedup *bloom.Filter

	Options     wikidump.Options
	Concurrency int
}

// Result holds the outcome of an extraction run.
type Result struct {
	// Processed counts records successfully assembled.
	Processed int

	// Written counts articles handed to the writer.
	Written int

	// Malformed counts records whose HTML could not be parsed.
	Malformed int

	// Duplicates counts records dropped by page ID deduplication.
	Duplicates int

	// SkippedLines counts undecodable dump lines dropped by the source.
	SkippedLines int
}

// ProgressEvent reports progress during an extraction run.
type ProgressEvent struct {
	Type    ProgressType
	Written int
	Title   string
	Error   error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressCompleted ProgressType = iota
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting extraction progress.
type ProgressFunc func(event ProgressEvent)

// Run processes the source until exhaustion. Malformed records are
// counted and skipped; any other failure aborts the run.
func (p *Pipeline) Run(ctx context.Context, progress ProgressFunc) (*Result, error) {
	concurrency := p.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	records := make(chan *wikidump.DumpRecord, concurrency)
	articles := make(chan *wikidump.Article, concurrency)

	var processed, written, malformed, duplicates atomic.Int64

	g, gctx := errgroup.WithContext(ctx)

	// Reader: single goroutine draining the source in dump order.
	g.Go(func() error {
		defer close(records)
		for {
			record, err := p.Source.Next(gctx)
			if err == io.EOF {
				return nil
			}
			if err != nil {
				return err
			}

			if p.Dedup != nil {
				if p.Dedup.Seen(record.Identifier) {
					duplicates.Add(1)
					continue
				}
				p.Dedup.Add(record.Identifier)
			}

			select {
			case records <- record:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
	})

	// Assembly workers.
	var workers sync.WaitGroup
	for range concurrency {
		workers.Add(1)
		g.Go(func() error {
			defer workers.Done()
			for record := range records {
				article, err := p.Assembler.Assemble(record, p.Options)
				if err != nil {
					if wikidump.ErrorCode(err) == wikidump.EMALFORMED {
						malformed.Add(1)
						if progress != nil {
							progress(ProgressEvent{
								Type:  ProgressFailed,
								Title: record.Title,
								Error: err,
							})
						}
						continue
					}
					return err
				}

				processed.Add(1)
				select {
				case articles <- article:
				case <-gctx.Done():
					return gctx.Err()
				}
			}
			return nil
		})
	}

	go func() {
		workers.Wait()
		close(articles)
	}()

	// Writer: single goroutine, serializes output.
	g.Go(func() error {
		for article := range articles {
			if err := p.Writer.WriteArticle(gctx, article); err != nil {
				return err
			}
			n := written.Add(1)
			if progress != nil {
				progress(ProgressEvent{
					Type:    ProgressCompleted,
					Written: int(n),
					Title:   article.Title,
				})
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if progress != nil {
		progress(ProgressEvent{
			Type:    ProgressFinished,
			Written: int(written.Load()),
		})
	}

	return &Result{
		Processed:    int(processed.Load()),
		Written:      int(written.Load()),
		Malformed:    int(malformed.Load()),
		Duplicates:   int(duplicates.Load()),
		SkippedLines: p.Source.Skipped(),
	}, nil
}
