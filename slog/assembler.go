// Package slog provides logging decorators for wikidump services.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/wikidump"
)

// Ensure LoggingAssembler implements wikidump.Assembler.
var _ wikidump.Assembler = (*LoggingAssembler)(nil)

// LoggingAssembler wraps an Assembler with debug logging.
type LoggingAssembler struct {
	next   wikidump.Assembler
	logger *slog.Logger
}

// NewLoggingAssembler creates a new LoggingAssembler.
func NewLoggingAssembler(next wikidump.Assembler, logger *slog.Logger) *LoggingAssembler {
	return &LoggingAssembler{next: next, logger: logger}
}

// Assemble delegates to the wrapped assembler and logs the operation.
// Malformed records log at warn level; successful assembly at debug.
func (a *LoggingAssembler) Assemble(record *wikidump.DumpRecord, opts wikidump.Options) (*wikidump.Article, error) {
	begin := time.Now()
	article, err := a.next.Assemble(record, opts)
	if err != nil {
		a.logger.Warn("assembly failed",
			"page_id", record.Identifier,
			"title", record.Title,
			"duration", time.Since(begin),
			"err", err,
		)
		return nil, err
	}

	a.logger.Debug("assembled article",
		"page_id", record.Identifier,
		"title", record.Title,
		"fields", len(article.Infobox.Fields),
		"tables", len(article.Tables),
		"lists", len(article.Lists),
		"duration", time.Since(begin),
	)
	return article, nil
}
