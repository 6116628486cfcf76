package goquery

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/text/unicode/norm"
)

// Normalize applies NFKD unicode normalization, collapses internal
// whitespace runs to a single space and trims the result. Dump HTML
// embeds non-breaking spaces and compatibility forms that NFKD folds
// back to plain characters.
func Normalize(s string) string {
	return strings.Join(strings.Fields(norm.NFKD.String(s)), " ")
}

// normalizeLines normalizes each newline-separated segment of s and
// drops empty segments. Line breaks produced by <br> elements survive;
// everything else collapses.
func normalizeLines(s string) string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if line = Normalize(line); line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}

// nodeText flattens the subtree rooted at n to its text content in
// document order using an explicit work stack. <br> elements contribute
// a line break. Subtrees for which skip returns true are excluded;
// n itself is never skipped.
func nodeText(n *html.Node, skip func(*html.Node) bool) string {
	var b strings.Builder
	stack := []*html.Node{n}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if cur.Type == html.TextNode {
			b.WriteString(cur.Data)
			continue
		}
		if cur.Type == html.ElementNode && cur != n {
			if skip != nil && skip(cur) {
				continue
			}
			if cur.Data == "br" {
				b.WriteString("\n")
				continue
			}
		}
		for child := cur.LastChild; child != nil; child = child.PrevSibling {
			stack = append(stack, child)
		}
	}
	return b.String()
}

// skipLists excludes list containers from a text flattening pass.
func skipLists(n *html.Node) bool {
	return listTags[n.Data]
}
