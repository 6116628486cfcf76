package wikidump

// Converter converts HTML to Markdown. Used by rendering writers that
// preserve minimal markup for human inspection.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	Convert(html string) (string, error)
}
