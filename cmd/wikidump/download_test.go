package main_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/fwojciec/wikidump"
	main "github.com/fwojciec/wikidump/cmd/wikidump"
	"github.com/fwojciec/wikidump/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDeps(stdout, stderr *bytes.Buffer) *main.Dependencies {
	return &main.Dependencies{
		Ctx:    context.Background(),
		Stdout: stdout,
		Stderr: stderr,
	}
}

func TestDownloadCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists files without downloading", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := testDeps(stdout, stderr)

		downloaded := false
		deps.Dumps = &mock.DumpService{
			ListFilesFn: func(ctx context.Context, run string) ([]wikidump.DumpFile, error) {
				assert.Equal(t, "20240101", run)
				return []wikidump.DumpFile{
					{Name: "enwiki-NS0-20240101-ENTERPRISE-HTML.json.tar.gz", Bytes: 2 << 30},
				}, nil
			},
			DownloadFn: func(ctx context.Context, run, name, dir string) (string, error) {
				downloaded = true
				return "", nil
			},
		}

		cmd := &main.DownloadCmd{Date: "20240101", List: true}
		require.NoError(t, cmd.Run(deps))

		assert.Contains(t, stdout.String(), "enwiki-NS0-20240101-ENTERPRISE-HTML.json.tar.gz")
		assert.Contains(t, stdout.String(), "2.0 GB")
		assert.False(t, downloaded)
	})

	t.Run("downloads every listed file", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := testDeps(stdout, stderr)

		var got []string
		deps.Dumps = &mock.DumpService{
			ListFilesFn: func(ctx context.Context, run string) ([]wikidump.DumpFile, error) {
				return []wikidump.DumpFile{
					{Name: "enwiki.json.tar.gz", Bytes: 100},
					{Name: "frwiki.json.tar.gz", Bytes: 200},
				}, nil
			},
			DownloadFn: func(ctx context.Context, run, name, dir string) (string, error) {
				got = append(got, name)
				return filepath.Join(dir, name), nil
			},
		}

		cmd := &main.DownloadCmd{Date: "20240101", Dir: "/tmp/dumps"}
		require.NoError(t, cmd.Run(deps))

		assert.Equal(t, []string{"enwiki.json.tar.gz", "frwiki.json.tar.gz"}, got)
		assert.Contains(t, stdout.String(), "Saved /tmp/dumps/enwiki.json.tar.gz")
	})

	t.Run("restricts the download to a named file", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := testDeps(stdout, stderr)

		var got []string
		deps.Dumps = &mock.DumpService{
			ListFilesFn: func(ctx context.Context, run string) ([]wikidump.DumpFile, error) {
				return []wikidump.DumpFile{
					{Name: "enwiki.json.tar.gz"},
					{Name: "frwiki.json.tar.gz"},
				}, nil
			},
			DownloadFn: func(ctx context.Context, run, name, dir string) (string, error) {
				got = append(got, name)
				return name, nil
			},
		}

		cmd := &main.DownloadCmd{Date: "20240101", File: "frwiki.json.tar.gz"}
		require.NoError(t, cmd.Run(deps))
		assert.Equal(t, []string{"frwiki.json.tar.gz"}, got)
	})

	t.Run("returns ENOTFOUND for an unpublished named file", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := testDeps(stdout, stderr)

		deps.Dumps = &mock.DumpService{
			ListFilesFn: func(ctx context.Context, run string) ([]wikidump.DumpFile, error) {
				return []wikidump.DumpFile{{Name: "enwiki.json.tar.gz"}}, nil
			},
		}

		cmd := &main.DownloadCmd{Date: "20240101", File: "nowiki.json.tar.gz"}
		err := cmd.Run(deps)
		require.Error(t, err)
		assert.Equal(t, wikidump.ENOTFOUND, wikidump.ErrorCode(err))
	})
}
