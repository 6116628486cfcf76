package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/wikidump"
)

// Ensure LoggingArticleWriter implements wikidump.ArticleWriter.
var _ wikidump.ArticleWriter = (*LoggingArticleWriter)(nil)

// LoggingArticleWriter wraps an ArticleWriter with debug logging.
type LoggingArticleWriter struct {
	next   wikidump.ArticleWriter
	logger *slog.Logger
}

// NewLoggingArticleWriter creates a new LoggingArticleWriter.
func NewLoggingArticleWriter(next wikidump.ArticleWriter, logger *slog.Logger) *LoggingArticleWriter {
	return &LoggingArticleWriter{next: next, logger: logger}
}

// WriteArticle delegates to the wrapped writer and logs the operation.
func (w *LoggingArticleWriter) WriteArticle(ctx context.Context, article *wikidump.Article) (err error) {
	defer func(begin time.Time) {
		w.logger.Debug("wrote article",
			"page_id", article.PageID,
			"title", article.Title,
			"bytes", len(article.Body),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WriteArticle(ctx, article)
}
