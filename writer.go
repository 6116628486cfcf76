package wikidump

import "context"

// ArticleWriter hands extracted articles to an output destination.
// The destination (file, console, database) is purely a writer concern;
// the extractor is format-neutral.
type ArticleWriter interface {
	WriteArticle(ctx context.Context, article *Article) error
}
