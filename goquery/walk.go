package goquery

import (
	"github.com/fwojciec/wikidump"
	"golang.org/x/net/html"
)

// containers returns the top-level subtree roots under root that carry
// the given class, in document order. Matches are not descended into:
// a table nested inside another table's cell belongs to the outer grid,
// and a list nested inside an item belongs to the outer list.
func (e *Extractor) containers(root *html.Node, class wikidump.Class) []*html.Node {
	var found []*html.Node
	stack := []*html.Node{root}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if cur.Type == html.ElementNode && cur != root &&
			containerTag(cur, class) && e.classifier.Classify(cur) == class {
			found = append(found, cur)
			continue
		}
		for child := cur.LastChild; child != nil; child = child.PrevSibling {
			stack = append(stack, child)
		}
	}
	return found
}

// containerTag reports whether n's element kind can root a subtree of
// the given class.
func containerTag(n *html.Node, class wikidump.Class) bool {
	switch class {
	case wikidump.ClassInfobox:
		return matchAny(n, infoboxSignatures)
	case wikidump.ClassTable:
		return n.Data == "table"
	case wikidump.ClassList:
		return listTags[n.Data]
	}
	return false
}

// tableRows returns the row elements of the subtree rooted at n in
// document order. Rows are not descended into: a table nested inside a
// cell contributes to that cell's text, not extra rows.
func tableRows(n *html.Node) []*html.Node {
	var rows []*html.Node
	stack := []*html.Node{n}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if cur.Type == html.ElementNode && cur != n && cur.Data == "tr" {
			rows = append(rows, cur)
			continue
		}
		for child := cur.LastChild; child != nil; child = child.PrevSibling {
			stack = append(stack, child)
		}
	}
	return rows
}

// childElement returns the first direct child element of n with the
// given tag name, or nil.
func childElement(n *html.Node, tag string) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == tag {
			return c
		}
	}
	return nil
}
