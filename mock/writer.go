package mock

import (
	"context"

	"github.com/fwojciec/wikidump"
)

var _ wikidump.ArticleWriter = (*ArticleWriter)(nil)

// ArticleWriter is a mock implementation of wikidump.ArticleWriter.
type ArticleWriter struct {
	WriteArticleFn func(ctx context.Context, article *wikidump.Article) error
}

func (w *ArticleWriter) WriteArticle(ctx context.Context, article *wikidump.Article) error {
	return w.WriteArticleFn(ctx, article)
}
