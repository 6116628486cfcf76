package goquery

import (
	"strings"

	"github.com/fwojciec/wikidump"
	"golang.org/x/net/html"
)

// Body reduces the filtered tree rooted at root to a single normalized
// text block. The walk visits remaining body-text nodes in document
// order: each paragraph container contributes exactly one paragraph,
// headings contribute a paragraph only when their section contributes
// text, and inline elements contribute no break. Infobox, table and
// list subtrees are skipped entirely regardless of inclusion flags, so
// their rendered text never leaks into the body.
func (e *Extractor) Body(root *html.Node) string {
	var paragraphs []string
	var pending string // heading awaiting section content
	var run []string   // loose inline text between block elements

	appendParagraph := func(text string) {
		if text == "" {
			return
		}
		if pending != "" {
			paragraphs = append(paragraphs, pending)
			pending = ""
		}
		paragraphs = append(paragraphs, text)
	}

	flushRun := func() {
		if len(run) == 0 {
			return
		}
		text := Normalize(strings.Join(run, " "))
		run = run[:0]
		appendParagraph(text)
	}

	stack := []*html.Node{root}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if cur.Type == html.TextNode {
			if strings.TrimSpace(cur.Data) != "" {
				run = append(run, cur.Data)
			}
			continue
		}
		if cur.Type != html.ElementNode {
			continue
		}

		if cur != root {
			switch e.classifier.Classify(cur) {
			case wikidump.ClassNoise, wikidump.ClassInfobox, wikidump.ClassTable, wikidump.ClassList:
				continue
			}

			switch cur.Data {
			case "p":
				flushRun()
				appendParagraph(normalizeLines(nodeText(cur, e.skipStructural)))
				continue
			case "h1", "h2", "h3", "h4", "h5", "h6":
				flushRun()
				// A heading replaces any earlier heading that gathered
				// no section text; empty sections keep no title.
				if text := Normalize(nodeText(cur, nil)); text != "" {
					pending = text + "."
				}
				continue
			case "br":
				continue
			}
		}

		for child := cur.LastChild; child != nil; child = child.PrevSibling {
			stack = append(stack, child)
		}
	}
	flushRun()

	return strings.Join(paragraphs, "\n\n")
}

// skipStructural excludes classified subtrees from a paragraph's text.
func (e *Extractor) skipStructural(n *html.Node) bool {
	switch e.classifier.Classify(n) {
	case wikidump.ClassNoise, wikidump.ClassInfobox, wikidump.ClassTable, wikidump.ClassList:
		return true
	}
	return false
}
