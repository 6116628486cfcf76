package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/wikidump"
)

// Ensure Extractor implements wikidump.Assembler at compile time.
var _ wikidump.Assembler = (*Extractor)(nil)

// Extractor assembles articles from dump records. It holds no
// cross-record state: each call parses and discards its own tree, so a
// single Extractor is safe for concurrent use on distinct records.
type Extractor struct {
	classifier *Classifier
}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{classifier: NewClassifier()}
}

// Classifier returns the extractor's node classifier.
func (e *Extractor) Classifier() *Classifier {
	return e.classifier
}

// Assemble parses the record's HTML body, excises noise and extracts
// the structured content. Body text and infobox extraction always run;
// options gate only tables and lists, so the same record assembled with
// different options yields identical body text and infobox. Returns an
// EMALFORMED error when the body is empty or yields no parseable
// content; absent structure is valid zero-content output.
func (e *Extractor) Assemble(record *wikidump.DumpRecord, opts wikidump.Options) (*wikidump.Article, error) {
	if strings.TrimSpace(record.HTML) == "" {
		return nil, wikidump.Errorf(wikidump.EMALFORMED, "record %d: empty HTML body", record.Identifier)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(record.HTML))
	if err != nil {
		return nil, wikidump.Errorf(wikidump.EMALFORMED, "record %d: %v", record.Identifier, err)
	}

	sel := doc.Find("body")
	if len(sel.Nodes) == 0 {
		return nil, wikidump.Errorf(wikidump.EMALFORMED, "record %d: no parseable content", record.Identifier)
	}
	root := sel.Nodes[0]

	e.classifier.RemoveNoise(root)

	article := &wikidump.Article{
		PageID:    record.Identifier,
		Title:     record.Title,
		URL:       record.URL,
		Namespace: record.Namespace,
	}

	// Multiple panels can share infobox markup on one page; the first
	// qualifying panel in document order wins.
	if panels := e.containers(root, wikidump.ClassInfobox); len(panels) > 0 {
		article.Infobox = e.Infobox(panels[0])
	}

	article.Body = e.Body(root)

	if opts.IncludeTables {
		article.Tables = e.Tables(root)
	}
	if opts.IncludeLists {
		article.Lists = e.Lists(root)
	}

	return article, nil
}
