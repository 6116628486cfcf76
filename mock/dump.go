package mock

import (
	"context"

	"github.com/fwojciec/wikidump"
)

var _ wikidump.DumpService = (*DumpService)(nil)

// DumpService is a mock implementation of wikidump.DumpService.
type DumpService struct {
	ListFilesFn func(ctx context.Context, run string) ([]wikidump.DumpFile, error)
	DownloadFn  func(ctx context.Context, run, name, dir string) (string, error)
}

func (s *DumpService) ListFiles(ctx context.Context, run string) ([]wikidump.DumpFile, error) {
	return s.ListFilesFn(ctx, run)
}

func (s *DumpService) Download(ctx context.Context, run, name, dir string) (string, error) {
	return s.DownloadFn(ctx, run, name, dir)
}
