package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/fwojciec/wikidump"
)

// Ensure writers implement wikidump.ArticleWriter at compile time.
var (
	_ wikidump.ArticleWriter = (*JSONWriter)(nil)
	_ wikidump.ArticleWriter = (*DocWriter)(nil)
	_ wikidump.ArticleWriter = (*MarkdownWriter)(nil)
)

// JSONWriter writes the structured form: one JSON object per article
// per line. Writing to stdout instead of a file is purely a matter of
// the injected io.Writer.
type JSONWriter struct {
	enc *json.Encoder
}

// NewJSONWriter creates a JSONWriter targeting w.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{enc: json.NewEncoder(w)}
}

// WriteArticle writes one article as a single JSON line.
func (w *JSONWriter) WriteArticle(ctx context.Context, article *wikidump.Article) error {
	if err := article.Validate(); err != nil {
		return err
	}
	return w.enc.Encode(article)
}

// DocWriter writes the doc-tag rendering form:
//
//	<doc id="…" url="…" title="…">
//	body text
//	</doc>
type DocWriter struct {
	w io.Writer
}

// NewDocWriter creates a DocWriter targeting w.
func NewDocWriter(w io.Writer) *DocWriter {
	return &DocWriter{w: w}
}

// WriteArticle writes one article in the doc-tag form.
func (w *DocWriter) WriteArticle(ctx context.Context, article *wikidump.Article) error {
	if err := article.Validate(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w.w, "<doc id=\"%d\" url=%q title=%q>\n%s\n</doc>\n",
		article.PageID, article.URL, article.Title, article.Body)
	return err
}

// MarkdownWriter renders articles as Markdown for human inspection. It
// rebuilds a minimal HTML rendering of the structured record and feeds
// it through a Converter, which takes care of table and list layout.
type MarkdownWriter struct {
	w    io.Writer
	conv wikidump.Converter
}

// NewMarkdownWriter creates a MarkdownWriter targeting w.
func NewMarkdownWriter(w io.Writer, conv wikidump.Converter) *MarkdownWriter {
	return &MarkdownWriter{w: w, conv: conv}
}

// WriteArticle writes one article as a Markdown document.
func (w *MarkdownWriter) WriteArticle(ctx context.Context, article *wikidump.Article) error {
	if err := article.Validate(); err != nil {
		return err
	}

	md, err := w.conv.Convert(articleHTML(article))
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(w.w, "%s\n\n", strings.TrimSpace(md))
	return err
}

// articleHTML rebuilds a minimal HTML rendering of an article.
func articleHTML(a *wikidump.Article) string {
	var b strings.Builder

	fmt.Fprintf(&b, "<h1>%s</h1>\n", html.EscapeString(a.Title))

	if !a.Infobox.Empty() {
		b.WriteString("<table>")
		if a.Infobox.Title != "" {
			fmt.Fprintf(&b, "<caption>%s</caption>", html.EscapeString(a.Infobox.Title))
		}
		for _, f := range a.Infobox.Fields {
			fmt.Fprintf(&b, "<tr><th>%s</th><td>%s</td></tr>",
				html.EscapeString(f.Label), html.EscapeString(strings.Join(f.Values, ", ")))
		}
		b.WriteString("</table>\n")
	}

	for _, para := range strings.Split(a.Body, "\n\n") {
		if para = strings.TrimSpace(para); para != "" {
			fmt.Fprintf(&b, "<p>%s</p>\n", html.EscapeString(para))
		}
	}

	for _, table := range a.Tables {
		b.WriteString("<table>")
		if table.Caption != "" {
			fmt.Fprintf(&b, "<caption>%s</caption>", html.EscapeString(table.Caption))
		}
		for _, row := range table.Rows {
			b.WriteString("<tr>")
			for _, cell := range row {
				fmt.Fprintf(&b, "<td>%s</td>", html.EscapeString(cell))
			}
			b.WriteString("</tr>")
		}
		b.WriteString("</table>\n")
	}

	for _, list := range a.Lists {
		writeListHTML(&b, list)
	}

	return b.String()
}

func writeListHTML(b *strings.Builder, list wikidump.List) {
	b.WriteString("<ul>")
	for _, item := range list {
		fmt.Fprintf(b, "<li>%s", html.EscapeString(item.Text))
		if len(item.Items) > 0 {
			writeListHTML(b, item.Items)
		}
		b.WriteString("</li>")
	}
	b.WriteString("</ul>\n")
}
