package goquery

import (
	"github.com/fwojciec/wikidump"
	"golang.org/x/net/html"
)

// RemoveNoise excises every noise-classified subtree under root, at any
// nesting depth, so downstream extractors never see them. The walk uses
// an explicit stack; deeply nested markup cannot exhaust the call stack.
// Idempotent: filtering an already filtered tree changes nothing.
func (c *Classifier) RemoveNoise(root *html.Node) {
	if root == nil {
		return
	}

	var noise []*html.Node
	stack := []*html.Node{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			if child.Type == html.ElementNode && c.Classify(child) == wikidump.ClassNoise {
				noise = append(noise, child)
				continue
			}
			stack = append(stack, child)
		}
	}

	for _, n := range noise {
		n.Parent.RemoveChild(n)
	}
}
