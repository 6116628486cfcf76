package mock

import (
	"context"

	"github.com/fwojciec/wikidump"
)

var _ wikidump.ArticleService = (*ArticleService)(nil)

// ArticleService is a mock implementation of wikidump.ArticleService.
type ArticleService struct {
	CreateArticleFn       func(ctx context.Context, article *wikidump.Article) error
	FindArticleByPageIDFn func(ctx context.Context, pageID int64) (*wikidump.Article, error)
	FindArticlesFn        func(ctx context.Context, filter wikidump.ArticleFilter) ([]*wikidump.Article, error)
	DeleteArticleFn       func(ctx context.Context, pageID int64) error
}

func (s *ArticleService) CreateArticle(ctx context.Context, article *wikidump.Article) error {
	return s.CreateArticleFn(ctx, article)
}

func (s *ArticleService) FindArticleByPageID(ctx context.Context, pageID int64) (*wikidump.Article, error) {
	return s.FindArticleByPageIDFn(ctx, pageID)
}

func (s *ArticleService) FindArticles(ctx context.Context, filter wikidump.ArticleFilter) ([]*wikidump.Article, error) {
	return s.FindArticlesFn(ctx, filter)
}

func (s *ArticleService) DeleteArticle(ctx context.Context, pageID int64) error {
	return s.DeleteArticleFn(ctx, pageID)
}
