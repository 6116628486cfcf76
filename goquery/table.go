package goquery

import (
	"github.com/fwojciec/wikidump"
	"golang.org/x/net/html"
)

// Tables reduces every table-classified subtree under root to a
// row-major grid of normalized cell text. Header and data cells are
// both emitted as plain text at the row indices they held in the
// source. Grids may be ragged where the source used merged cells; short
// rows are preserved as-is, never padded. A table with zero rows after
// filtering degrades to an empty grid rather than an error.
func (e *Extractor) Tables(root *html.Node) []wikidump.Table {
	var tables []wikidump.Table
	for _, n := range e.containers(root, wikidump.ClassTable) {
		tables = append(tables, extractTable(n))
	}
	return tables
}

func extractTable(n *html.Node) wikidump.Table {
	var t wikidump.Table

	if caption := childElement(n, "caption"); caption != nil {
		t.Caption = Normalize(nodeText(caption, nil))
	}

	for _, tr := range tableRows(n) {
		var row []string
		for c := tr.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}
			if c.Data == "th" || c.Data == "td" {
				row = append(row, normalizeLines(nodeText(c, nil)))
			}
		}
		if row != nil {
			t.Rows = append(t.Rows, row)
		}
	}

	return t
}
