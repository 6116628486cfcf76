package goquery

import (
	"strings"

	"github.com/fwojciec/wikidump"
	"golang.org/x/net/html"
)

// Infobox reduces the summary panel rooted at n to an ordered
// label→values mapping. The panel is modeled as a sequence of
// label/value rows: rows without a recognizable label (captions,
// section headers inside the panel) are skipped for key/value purposes
// but do not terminate extraction. Duplicate labels merge their values
// in encounter order.
func (e *Extractor) Infobox(n *html.Node) wikidump.Infobox {
	var ib wikidump.Infobox
	if n == nil {
		return ib
	}

	if caption := findCaption(n); caption != nil {
		ib.Title = Normalize(nodeText(caption, nil))
	}

	// The v3 div form names the panel in a header element that precedes
	// the first inner table.
	if ib.Title == "" && n.Data == "div" {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}
			if c.Data == "table" {
				break
			}
			if t := Normalize(nodeText(c, nil)); t != "" {
				ib.Title = t
				break
			}
		}
	}

	for _, tr := range tableRows(n) {
		ths, tds := rowCells(tr)
		switch {
		case len(ths) > 0 && len(tds) > 0:
			label := Normalize(nodeText(ths[0], skipLists))
			var values []string
			for _, td := range tds {
				values = append(values, cellValues(td)...)
			}
			if label != "" && len(values) > 0 {
				ib.Add(label, values...)
			}

		case len(ths) == 0 && len(tds) == 2:
			// Some panels render label cells as plain td.
			label := Normalize(nodeText(tds[0], skipLists))
			if values := cellValues(tds[1]); label != "" && len(values) > 0 {
				ib.Add(label, values...)
			}

		case len(ths) > 0 && len(tds) == 0:
			// Section header row inside the panel. The first one names
			// the panel when it has no explicit caption.
			if ib.Title == "" {
				ib.Title = Normalize(nodeText(ths[0], nil))
			}
		}
	}

	return ib
}

// rowCells returns the direct th and td children of a row.
func rowCells(tr *html.Node) (ths, tds []*html.Node) {
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.Data {
		case "th":
			ths = append(ths, c)
		case "td":
			tds = append(tds, c)
		}
	}
	return ths, tds
}

// cellValues decomposes a value cell into one or more semantic values
// in document order: one value per item when the cell contains a list,
// one value per <br>-separated line for the cell's own text. A single
// pass interleaves text runs and list items exactly as they appear.
func cellValues(cell *html.Node) []string {
	var values []string
	var run strings.Builder

	flush := func() {
		for _, line := range strings.Split(run.String(), "\n") {
			if line = Normalize(line); line != "" {
				values = append(values, line)
			}
		}
		run.Reset()
	}

	var stack []*html.Node
	for child := cell.LastChild; child != nil; child = child.PrevSibling {
		stack = append(stack, child)
	}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if cur.Type == html.TextNode {
			run.WriteString(cur.Data)
			continue
		}
		if cur.Type == html.ElementNode {
			switch cur.Data {
			case "br":
				run.WriteString("\n")
				continue
			case "li", "dd", "dt":
				flush()
				if v := Normalize(nodeText(cur, skipLists)); v != "" {
					values = append(values, v)
				}
				continue
			}
		}
		for child := cur.LastChild; child != nil; child = child.PrevSibling {
			stack = append(stack, child)
		}
	}
	flush()

	return values
}

// findCaption returns the panel's caption element: the direct caption
// child of a table-form panel, or the first inner table's caption for
// the div form.
func findCaption(n *html.Node) *html.Node {
	if n.Data == "table" {
		return childElement(n, "caption")
	}
	if inner := childElement(n, "table"); inner != nil {
		return childElement(inner, "caption")
	}
	return nil
}
