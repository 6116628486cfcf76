package goquery_test

import (
	"testing"

	"github.com/fwojciec/wikidump"
	"github.com/fwojciec/wikidump/goquery"
	"github.com/stretchr/testify/assert"
	"golang.org/x/net/html"
)

func TestClassifier_Classify(t *testing.T) {
	t.Parallel()

	t.Run("classifies navigation containers as noise", func(t *testing.T) {
		t.Parallel()

		root := parseBody(t, `<body>
<nav><a href="/wiki/Main_Page">Main page</a></nav>
<div role="navigation" class="portal">Portals</div>
<table class="navbox"><tbody><tr><td>Related articles</td></tr></tbody></table>
</body>`)

		c := goquery.NewClassifier()
		assert.Equal(t, wikidump.ClassNoise, c.Classify(findNode(t, root, "nav")))
		assert.Equal(t, wikidump.ClassNoise, c.Classify(findNode(t, root, "div.portal")))
		assert.Equal(t, wikidump.ClassNoise, c.Classify(findNode(t, root, "table.navbox")))
	})

	t.Run("classifies edit links and footnote markers as noise", func(t *testing.T) {
		t.Parallel()

		root := parseBody(t, `<body>
<p>Text<span class="mw-editsection">edit</span><sup class="reference">[1]</sup></p>
<div class="reflist">References</div>
</body>`)

		c := goquery.NewClassifier()
		assert.Equal(t, wikidump.ClassNoise, c.Classify(findNode(t, root, "span.mw-editsection")))
		assert.Equal(t, wikidump.ClassNoise, c.Classify(findNode(t, root, "sup.reference")))
		assert.Equal(t, wikidump.ClassNoise, c.Classify(findNode(t, root, "div.reflist")))
	})

	t.Run("classifies explicitly hidden elements as noise", func(t *testing.T) {
		t.Parallel()

		root := parseBody(t, `<body>
<span style="display: none">hidden</span>
<div hidden>also hidden</div>
</body>`)

		c := goquery.NewClassifier()
		assert.Equal(t, wikidump.ClassNoise, c.Classify(findNode(t, root, "span")))
		assert.Equal(t, wikidump.ClassNoise, c.Classify(findNode(t, root, "div")))
	})

	t.Run("classifies infobox panels by signature", func(t *testing.T) {
		t.Parallel()

		root := parseBody(t, `<body>
<div class="infobox_v3"><table><tbody><tr><th>Born</th><td>1920</td></tr></tbody></table></div>
<table class="infobox_v2"><tbody><tr><th>Died</th><td>1990</td></tr></tbody></table>
<table class="infobox vcard"><tbody><tr><th>Name</th><td>Ada</td></tr></tbody></table>
</body>`)

		c := goquery.NewClassifier()
		assert.Equal(t, wikidump.ClassInfobox, c.Classify(findNode(t, root, "div.infobox_v3")))
		assert.Equal(t, wikidump.ClassInfobox, c.Classify(findNode(t, root, "table.infobox_v2")))
		assert.Equal(t, wikidump.ClassInfobox, c.Classify(findNode(t, root, "table.infobox")))
	})

	t.Run("nodes inherit the class of an infobox ancestor", func(t *testing.T) {
		t.Parallel()

		root := parseBody(t, `<body>
<div class="infobox_v3">
	<table><tbody><tr><th>Born</th><td><ul><li>1920</li></ul></td></tr></tbody></table>
</div>
</body>`)

		c := goquery.NewClassifier()
		// The inner table, list and cells all belong to the panel, not
		// to independent table/list subtrees.
		assert.Equal(t, wikidump.ClassInfobox, c.Classify(findNode(t, root, "div.infobox_v3 table")))
		assert.Equal(t, wikidump.ClassInfobox, c.Classify(findNode(t, root, "div.infobox_v3 ul")))
		assert.Equal(t, wikidump.ClassInfobox, c.Classify(findNode(t, root, "div.infobox_v3 td")))
	})

	t.Run("nodes inherit the class of a table ancestor", func(t *testing.T) {
		t.Parallel()

		root := parseBody(t, `<body>
<table><tbody><tr><td><ul><li>a</li></ul></td></tr></tbody></table>
</body>`)

		c := goquery.NewClassifier()
		assert.Equal(t, wikidump.ClassTable, c.Classify(findNode(t, root, "ul")))
		assert.Equal(t, wikidump.ClassTable, c.Classify(findNode(t, root, "td")))
	})

	t.Run("noise wins over ancestor inheritance", func(t *testing.T) {
		t.Parallel()

		root := parseBody(t, `<body>
<table><tbody><tr><th>Header<span class="mw-editsection">edit</span></th></tr></tbody></table>
</body>`)

		c := goquery.NewClassifier()
		assert.Equal(t, wikidump.ClassNoise, c.Classify(findNode(t, root, "span.mw-editsection")))
	})

	t.Run("classifies plain tables, lists and everything else", func(t *testing.T) {
		t.Parallel()

		root := parseBody(t, `<body>
<table><tbody><tr><td>cell</td></tr></tbody></table>
<ul><li>item</li></ul>
<ol><li>item</li></ol>
<dl><dt>term</dt></dl>
<p>Paragraph</p>
<section><h2>Heading</h2></section>
</body>`)

		c := goquery.NewClassifier()
		assert.Equal(t, wikidump.ClassTable, c.Classify(findNode(t, root, "table")))
		assert.Equal(t, wikidump.ClassList, c.Classify(findNode(t, root, "ul")))
		assert.Equal(t, wikidump.ClassList, c.Classify(findNode(t, root, "ol")))
		assert.Equal(t, wikidump.ClassList, c.Classify(findNode(t, root, "dl")))
		assert.Equal(t, wikidump.ClassBodyText, c.Classify(findNode(t, root, "p")))
		assert.Equal(t, wikidump.ClassBodyText, c.Classify(findNode(t, root, "section")))
		assert.Equal(t, wikidump.ClassBodyText, c.Classify(findNode(t, root, "h2")))
	})

	t.Run("every element receives exactly one of the five classes", func(t *testing.T) {
		t.Parallel()

		root := parseBody(t, `<body>
<section>
	<h2>Career<span class="mw-editsection">edit</span></h2>
	<div class="infobox_v3"><table><tbody><tr><th>Born</th><td>1920</td></tr></tbody></table></div>
	<p>Text with <b>bold</b> and <a href="/wiki/X">a link</a>.</p>
	<table><tbody><tr><td>cell</td></tr></tbody></table>
	<ul><li>item<ul><li>nested</li></ul></li></ul>
</section>
</body>`)

		valid := map[wikidump.Class]bool{
			wikidump.ClassBodyText: true,
			wikidump.ClassInfobox:  true,
			wikidump.ClassTable:    true,
			wikidump.ClassList:     true,
			wikidump.ClassNoise:    true,
		}

		c := goquery.NewClassifier()
		var elements int
		stack := []*html.Node{root}
		for len(stack) > 0 {
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if n.Type == html.ElementNode {
				elements++
				assert.True(t, valid[c.Classify(n)])
			}
			for child := n.FirstChild; child != nil; child = child.NextSibling {
				stack = append(stack, child)
			}
		}
		assert.Greater(t, elements, 15)
	})

	t.Run("classification is pure and repeatable", func(t *testing.T) {
		t.Parallel()

		root := parseBody(t, `<body><table class="infobox"><tbody><tr><th>A</th><td>1</td></tr></tbody></table></body>`)
		n := findNode(t, root, "table.infobox")

		c := goquery.NewClassifier()
		first := c.Classify(n)
		for i := 0; i < 5; i++ {
			assert.Equal(t, first, c.Classify(n))
		}
	})
}
