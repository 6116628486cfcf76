package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/wikidump"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var (
	_ wikidump.ArticleService = (*ArticleService)(nil)
	_ wikidump.ArticleWriter  = (*ArticleService)(nil)
)

// ArticleService implements wikidump.ArticleService using SQLite.
type ArticleService struct {
	db *DB
}

// NewArticleService creates a new ArticleService.
func NewArticleService(db *DB) *ArticleService {
	return &ArticleService{db: db}
}

// hashContent computes xxHash of content and returns hex string.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	b[0] = byte(h >> 56)
	b[1] = byte(h >> 48)
	b[2] = byte(h >> 40)
	b[3] = byte(h >> 32)
	b[4] = byte(h >> 24)
	b[5] = byte(h >> 16)
	b[6] = byte(h >> 8)
	b[7] = byte(h)
	return hex.EncodeToString(b)
}

// CreateArticle stores an article. Re-extracting the same page replaces
// the stored row, keeping the original row ID.
func (s *ArticleService) CreateArticle(ctx context.Context, article *wikidump.Article) error {
	if err := article.Validate(); err != nil {
		return err
	}

	article.ID = uuid.New().String()
	article.ExtractedAt = time.Now().UTC()
	article.ContentHash = hashContent(article.Body)

	infobox, err := json.Marshal(article.Infobox)
	if err != nil {
		return fmt.Errorf("failed to encode infobox: %w", err)
	}
	tables, err := json.Marshal(article.Tables)
	if err != nil {
		return fmt.Errorf("failed to encode tables: %w", err)
	}
	lists, err := json.Marshal(article.Lists)
	if err != nil {
		return fmt.Errorf("failed to encode lists: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO articles (id, page_id, title, url, namespace, body, infobox, tables, lists, content_hash, extracted_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(page_id) DO UPDATE SET
			title = excluded.title,
			url = excluded.url,
			namespace = excluded.namespace,
			body = excluded.body,
			infobox = excluded.infobox,
			tables = excluded.tables,
			lists = excluded.lists,
			content_hash = excluded.content_hash,
			extracted_at = excluded.extracted_at
	`, article.ID, article.PageID, article.Title, article.URL, article.Namespace,
		article.Body, string(infobox), string(tables), string(lists),
		article.ContentHash, article.ExtractedAt.Format(time.RFC3339))

	return err
}

// WriteArticle makes the service usable as an extraction output
// destination. It is CreateArticle minus the returned row identity.
func (s *ArticleService) WriteArticle(ctx context.Context, article *wikidump.Article) error {
	return s.CreateArticle(ctx, article)
}

const articleColumns = "id, page_id, title, url, namespace, body, infobox, tables, lists, content_hash, extracted_at"

// scanArticle scans one article row, decoding the JSON columns.
func scanArticle(scan func(dest ...any) error) (*wikidump.Article, error) {
	var article wikidump.Article
	var infobox, tables, lists, extractedAt string

	if err := scan(&article.ID, &article.PageID, &article.Title, &article.URL,
		&article.Namespace, &article.Body, &infobox, &tables, &lists,
		&article.ContentHash, &extractedAt); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(infobox), &article.Infobox); err != nil {
		return nil, fmt.Errorf("failed to decode infobox: %w", err)
	}
	if err := json.Unmarshal([]byte(tables), &article.Tables); err != nil {
		return nil, fmt.Errorf("failed to decode tables: %w", err)
	}
	if err := json.Unmarshal([]byte(lists), &article.Lists); err != nil {
		return nil, fmt.Errorf("failed to decode lists: %w", err)
	}

	var err error
	article.ExtractedAt, err = parseRFC3339(extractedAt, "extracted_at")
	if err != nil {
		return nil, err
	}

	return &article, nil
}

// FindArticleByPageID retrieves an article by wiki page ID.
func (s *ArticleService) FindArticleByPageID(ctx context.Context, pageID int64) (*wikidump.Article, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+articleColumns+`
		FROM articles
		WHERE page_id = ?
	`, pageID)

	article, err := scanArticle(row.Scan)
	if err == sql.ErrNoRows {
		return nil, wikidump.Errorf(wikidump.ENOTFOUND, "article not found")
	}
	if err != nil {
		return nil, err
	}

	return article, nil
}

// FindArticles retrieves articles matching the filter.
func (s *ArticleService) FindArticles(ctx context.Context, filter wikidump.ArticleFilter) ([]*wikidump.Article, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + articleColumns + " FROM articles WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.PageID != nil {
		query.WriteString(" AND page_id = ?")
		args = append(args, *filter.PageID)
	}
	if filter.Namespace != nil {
		query.WriteString(" AND namespace = ?")
		args = append(args, *filter.Namespace)
	}

	switch filter.SortBy {
	case wikidump.SortByPageID:
		query.WriteString(" ORDER BY page_id ASC")
	default:
		query.WriteString(" ORDER BY extracted_at DESC")
	}

	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var articles []*wikidump.Article
	for rows.Next() {
		article, err := scanArticle(rows.Scan)
		if err != nil {
			return nil, err
		}
		articles = append(articles, article)
	}

	return articles, rows.Err()
}

// DeleteArticle permanently removes an article by wiki page ID.
func (s *ArticleService) DeleteArticle(ctx context.Context, pageID int64) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM articles WHERE page_id = ?", pageID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return wikidump.Errorf(wikidump.ENOTFOUND, "article not found")
	}

	return nil
}
