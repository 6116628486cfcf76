package goquery_test

import (
	"strings"
	"testing"

	gq "github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

// parseBody parses an HTML fragment and returns its body element.
func parseBody(t *testing.T, src string) *html.Node {
	t.Helper()

	doc, err := gq.NewDocumentFromReader(strings.NewReader(src))
	require.NoError(t, err)

	sel := doc.Find("body")
	require.NotEmpty(t, sel.Nodes)
	return sel.Nodes[0]
}

// findNode returns the first node matching a CSS selector.
func findNode(t *testing.T, root *html.Node, selector string) *html.Node {
	t.Helper()

	sel := gq.NewDocumentFromNode(root).Find(selector)
	require.NotEmpty(t, sel.Nodes, "no node matches %q", selector)
	return sel.Nodes[0]
}

// renderNode serializes a node back to HTML.
func renderNode(t *testing.T, n *html.Node) string {
	t.Helper()

	var b strings.Builder
	require.NoError(t, html.Render(&b, n))
	return b.String()
}
