package goquery

import (
	"github.com/fwojciec/wikidump"
	"golang.org/x/net/html"
)

// maxListDepth bounds nesting on adversarial markup. Items beyond it
// flatten to leaf text instead of recursing further.
const maxListDepth = 64

// Lists reduces every top-level list subtree under root to a nested
// item sequence mirroring source nesting. An item with no text and no
// nested list is recorded as an empty leaf, preserving positional
// fidelity with the source.
func (e *Extractor) Lists(root *html.Node) []wikidump.List {
	var lists []wikidump.List
	for _, n := range e.containers(root, wikidump.ClassList) {
		lists = append(lists, extractList(n, 0))
	}
	return lists
}

func extractList(n *html.Node, depth int) wikidump.List {
	var list wikidump.List
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.Data {
		case "li", "dt", "dd":
			list = append(list, extractItem(c, depth))
		case "ul", "ol", "dl":
			// A list nested directly inside a list keeps its items at
			// the current level.
			if depth < maxListDepth {
				list = append(list, extractList(c, depth+1)...)
			}
		}
	}
	return list
}

func extractItem(li *html.Node, depth int) wikidump.ListItem {
	if depth >= maxListDepth {
		return wikidump.ListItem{Text: Normalize(nodeText(li, nil))}
	}

	item := wikidump.ListItem{Text: Normalize(nodeText(li, skipLists))}
	for _, nested := range childLists(li) {
		item.Items = append(item.Items, extractList(nested, depth+1)...)
	}
	return item
}

// childLists returns the topmost list containers inside an item, in
// document order, however deeply they are wrapped.
func childLists(li *html.Node) []*html.Node {
	var lists []*html.Node
	stack := []*html.Node{li}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if cur.Type == html.ElementNode && cur != li && listTags[cur.Data] {
			lists = append(lists, cur)
			continue
		}
		for child := cur.LastChild; child != nil; child = child.PrevSibling {
			stack = append(stack, child)
		}
	}
	return lists
}
