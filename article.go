package wikidump

import (
	"context"
	"time"
)

// Article is the structured record extracted from one dump page.
// Body is always populated (possibly empty); Tables and Lists are
// populated only when the corresponding Options flag was set. Infobox
// extraction is always attempted when an infobox panel exists.
type Article struct {
	// ID is the storage row ID, assigned by an ArticleService on create.
	ID string `json:"-"`

	PageID    int64  `json:"id"`
	Title     string `json:"title"`
	URL       string `json:"url,omitempty"`
	Namespace int    `json:"namespace"`

	// Body is the normalized plain text with paragraph boundaries
	// separated by blank lines.
	Body string `json:"body"`

	Infobox Infobox `json:"infobox"`
	Tables  []Table `json:"tables,omitempty"`
	Lists   []List  `json:"lists,omitempty"`

	// Storage metadata, populated by ArticleService implementations.
	ContentHash string    `json:"-"`
	ExtractedAt time.Time `json:"-"`
}

// Validate returns an error if the article contains invalid fields.
func (a *Article) Validate() error {
	if a.PageID == 0 {
		return Errorf(EINVALID, "article page ID required")
	}
	if a.Title == "" {
		return Errorf(EINVALID, "article title required")
	}
	return nil
}

// InfoboxField is one label/value row of an infobox. Multi-valued fields
// (e.g. a value cell containing a list) carry one entry per value.
type InfoboxField struct {
	Label  string   `json:"label"`
	Values []string `json:"values"`
}

// Infobox is an ordered label→values mapping extracted from a page's
// summary panel. Iteration order over Fields matches document order.
// A zero Infobox means the page had no qualifying panel; this is valid
// output, not an error.
type Infobox struct {
	// Title is the panel caption, when one exists.
	Title string `json:"title,omitempty"`

	Fields []InfoboxField `json:"fields,omitempty"`
}

// Add appends values under label, preserving encounter order. Duplicate
// labels merge into the existing field; values are never overwritten.
func (ib *Infobox) Add(label string, values ...string) {
	for i := range ib.Fields {
		if ib.Fields[i].Label == label {
			ib.Fields[i].Values = append(ib.Fields[i].Values, values...)
			return
		}
	}
	ib.Fields = append(ib.Fields, InfoboxField{Label: label, Values: values})
}

// Get returns the values recorded under label, or nil if absent.
func (ib *Infobox) Get(label string) []string {
	for i := range ib.Fields {
		if ib.Fields[i].Label == label {
			return ib.Fields[i].Values
		}
	}
	return nil
}

// Empty reports whether the infobox carries no fields.
func (ib *Infobox) Empty() bool {
	return len(ib.Fields) == 0 && ib.Title == ""
}

// Table is a row-major grid of normalized cell text. Header cells occupy
// the same row indices they held in the source; rows may be ragged and
// are never padded.
type Table struct {
	Caption string     `json:"caption,omitempty"`
	Rows    [][]string `json:"rows"`
}

// List is an ordered sequence of possibly nested items.
type List []ListItem

// ListItem is one list entry: its own normalized text plus any nested
// sub-list. An item with neither text nor children is recorded as an
// empty leaf to preserve positional fidelity with the source.
type ListItem struct {
	Text  string `json:"text"`
	Items List   `json:"items,omitempty"`
}

// ArticleSortOrder represents the sort order for article queries.
type ArticleSortOrder string

// Sort orders accepted by ArticleFilter.
const (
	SortByExtractedAt ArticleSortOrder = "extracted_at"
	SortByPageID      ArticleSortOrder = "page_id"
)

// ArticleFilter restricts FindArticles results.
type ArticleFilter struct {
	ID        *string `json:"id"`
	PageID    *int64  `json:"pageId"`
	Namespace *int    `json:"namespace"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`

	SortBy ArticleSortOrder `json:"sortBy"`
}

// ArticleService represents a service for persisting extracted articles.
type ArticleService interface {
	// CreateArticle stores an article. Re-extracting the same page
	// replaces the stored row.
	CreateArticle(ctx context.Context, article *Article) error

	// FindArticleByPageID retrieves an article by wiki page ID.
	// Returns ENOTFOUND if no article exists for the page.
	FindArticleByPageID(ctx context.Context, pageID int64) (*Article, error)

	// FindArticles retrieves articles matching the filter.
	FindArticles(ctx context.Context, filter ArticleFilter) ([]*Article, error)

	// DeleteArticle permanently removes an article by wiki page ID.
	// Returns ENOTFOUND if no article exists for the page.
	DeleteArticle(ctx context.Context, pageID int64) error
}
