package mock

import (
	"context"

	"github.com/fwojciec/wikidump"
)

var _ wikidump.DumpSource = (*DumpSource)(nil)

// DumpSource is a mock implementation of wikidump.DumpSource.
type DumpSource struct {
	NextFn    func(ctx context.Context) (*wikidump.DumpRecord, error)
	SkippedFn func() int
	CloseFn   func() error
}

func (s *DumpSource) Next(ctx context.Context) (*wikidump.DumpRecord, error) {
	return s.NextFn(ctx)
}

func (s *DumpSource) Skipped() int {
	return s.SkippedFn()
}

func (s *DumpSource) Close() error {
	return s.CloseFn()
}
