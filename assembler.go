package wikidump

// Class is the structural category assigned to a DOM subtree during
// extraction. The five categories partition the node set: every element
// in a parsed fragment receives exactly one Class.
type Class string

// Classes, in classification priority order (first match wins).
const (
	ClassNoise    Class = "noise"
	ClassInfobox  Class = "infobox"
	ClassTable    Class = "table"
	ClassList     Class = "list"
	ClassBodyText Class = "body-text"
)

// Options controls which optional extractors run during assembly.
// Body text and infobox extraction always run.
type Options struct {
	// IncludeTables populates Article.Tables.
	IncludeTables bool

	// IncludeLists populates Article.Lists.
	IncludeLists bool
}

// Assembler turns one dump record into one article. Implementations are
// stateless: they hold no cross-record state and are safe to invoke
// concurrently on distinct records.
type Assembler interface {
	// Assemble parses the record's HTML body and extracts its structured
	// content. Returns an EMALFORMED error when the body cannot be parsed
	// at all; absence of expected structure is valid zero-content output,
	// never an error.
	Assemble(record *DumpRecord, opts Options) (*Article, error)
}
