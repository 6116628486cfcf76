package mock

import "github.com/fwojciec/wikidump"

var _ wikidump.Assembler = (*Assembler)(nil)

// Assembler is a mock implementation of wikidump.Assembler.
type Assembler struct {
	AssembleFn func(record *wikidump.DumpRecord, opts wikidump.Options) (*wikidump.Article, error)
}

func (a *Assembler) Assemble(record *wikidump.DumpRecord, opts wikidump.Options) (*wikidump.Article, error) {
	return a.AssembleFn(record, opts)
}
