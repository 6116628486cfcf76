// Package goquery implements the wikidump extraction core on top of
// goquery-parsed HTML trees: a signature-table node classifier, a noise
// filter, the infobox/table/list extractors, a body text reducer and the
// article assembler that orchestrates them.
package goquery

import (
	"strings"

	"github.com/fwojciec/wikidump"
	"golang.org/x/net/html"
)

// signature matches one DOM element by tag name, class token and role
// attribute. Empty fields match any value.
type signature struct {
	tag   string
	class string
	role  string
}

// noiseSignatures identify subtrees that never contribute content:
// navigation templates, edit-section links, footnote back-references,
// reference lists, media scaffolding and hidden elements.
var noiseSignatures = []signature{
	{tag: "style"},
	{tag: "script"},
	{tag: "link"},
	{tag: "meta"},
	{tag: "nav"},
	{tag: "figure"},
	{tag: "figcaption"},
	{role: "navigation"},
	{role: "note"},
	{class: "navbox"},
	{class: "vertical-navbox"},
	{class: "navigation-not-searchable"},
	{class: "mw-editsection"},
	{class: "mw-jump-link"},
	{class: "mw-cite-backlink"},
	{class: "mw-references-wrap"},
	{class: "reflist"},
	{class: "references"},
	{class: "reference"},
	{class: "mw-ref"},
	{class: "noprint"},
	{class: "mw-hidden"},
	{class: "hatnote"},
	{class: "bandeau-container"},
}

// infoboxSignatures identify summary panels, ordered by specificity:
// the v3 div form, the v2 table form and the plain infobox table as
// rendered in Enterprise dumps.
var infoboxSignatures = []signature{
	{tag: "div", class: "infobox_v3"},
	{tag: "table", class: "infobox_v2"},
	{tag: "table", class: "infobox"},
	{tag: "div", class: "infobox"},
}

// listTags are the list-structural container elements.
var listTags = map[string]bool{"ul": true, "ol": true, "dl": true}

// Classifier assigns a structural class to DOM elements. Classification
// is a pure function of a node's tag, attributes and ancestor chain;
// the signature tables above can be tuned without touching traversal
// logic.
type Classifier struct{}

// NewClassifier creates a new Classifier.
func NewClassifier() *Classifier {
	return &Classifier{}
}

// Classify returns the class of n. Priority order, first match wins:
// noise signatures, inheritance from an infobox or table ancestor
// (preventing double extraction of nested markup), infobox signatures,
// table elements, list containers, and finally body text. Text and
// non-element nodes classify as body text.
func (c *Classifier) Classify(n *html.Node) wikidump.Class {
	if n == nil || n.Type != html.ElementNode {
		return wikidump.ClassBodyText
	}

	if matchAny(n, noiseSignatures) || isHidden(n) {
		return wikidump.ClassNoise
	}

	tableAncestor := false
	for p := n.Parent; p != nil; p = p.Parent {
		if p.Type != html.ElementNode {
			continue
		}
		if matchAny(p, infoboxSignatures) {
			return wikidump.ClassInfobox
		}
		if p.Data == "table" {
			tableAncestor = true
		}
	}
	if tableAncestor {
		return wikidump.ClassTable
	}

	if matchAny(n, infoboxSignatures) {
		return wikidump.ClassInfobox
	}
	if n.Data == "table" {
		return wikidump.ClassTable
	}
	if listTags[n.Data] {
		return wikidump.ClassList
	}
	return wikidump.ClassBodyText
}

// matches reports whether n satisfies every non-empty field of s.
func (s signature) matches(n *html.Node) bool {
	if s.tag != "" && n.Data != s.tag {
		return false
	}
	if s.class != "" && !hasClassToken(n, s.class) {
		return false
	}
	if s.role != "" && attr(n, "role") != s.role {
		return false
	}
	return true
}

func matchAny(n *html.Node, sigs []signature) bool {
	for _, s := range sigs {
		if s.matches(n) {
			return true
		}
	}
	return false
}

// isHidden reports whether an element is explicitly marked hidden in
// its own markup.
func isHidden(n *html.Node) bool {
	if hasAttr(n, "hidden") {
		return true
	}
	style := strings.ToLower(strings.ReplaceAll(attr(n, "style"), " ", ""))
	return strings.Contains(style, "display:none")
}

func hasClassToken(n *html.Node, token string) bool {
	for _, t := range strings.Fields(attr(n, "class")) {
		if t == token {
			return true
		}
	}
	return false
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasAttr(n *html.Node, key string) bool {
	for _, a := range n.Attr {
		if a.Key == key {
			return true
		}
	}
	return false
}
