// Package http provides an HTTP-based implementation of wikidump.DumpService
// for listing and downloading Enterprise HTML dump files.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/wikidump"
	"golang.org/x/time/rate"
)

// DefaultBaseURL is the public archive of Enterprise HTML dump runs.
const DefaultBaseURL = "https://dumps.wikimedia.org/other/enterprise_html/runs"

// DefaultListTimeout is the default timeout for listing requests.
// Downloads are bounded by their context, not a client timeout, since
// dump files can take hours to transfer.
const DefaultListTimeout = 30 * time.Second

// dumpFileSuffix identifies the per-wiki Enterprise HTML archives within
// a run listing.
const dumpFileSuffix = "-ENTERPRISE-HTML.json.tar.gz"

// Ensure DumpService implements wikidump.DumpService at compile time.
var _ wikidump.DumpService = (*DumpService)(nil)

// DumpService lists and downloads dump files over HTTP. Requests are
// throttled through a shared rate limiter to stay polite to the mirror.
type DumpService struct {
	client  *http.Client
	limiter *rate.Limiter
	baseURL string
}

// Option configures a DumpService.
type Option func(*DumpService)

// WithBaseURL overrides the archive base URL. Used for mirrors and tests.
func WithBaseURL(u string) Option {
	return func(s *DumpService) {
		s.baseURL = strings.TrimSuffix(u, "/")
	}
}

// WithClient sets the HTTP client used for all requests.
func WithClient(c *http.Client) Option {
	return func(s *DumpService) {
		s.client = c
	}
}

// WithRateLimit sets the request rate limit in requests per second.
// Defaults to 1 rps with no bursting.
func WithRateLimit(rps float64) Option {
	return func(s *DumpService) {
		s.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// NewDumpService creates a new DumpService.
func NewDumpService(opts ...Option) *DumpService {
	s := &DumpService{
		client:  &http.Client{Timeout: DefaultListTimeout},
		limiter: rate.NewLimiter(rate.Limit(1), 1),
		baseURL: DefaultBaseURL,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListFiles returns the Enterprise HTML files published for a run date.
func (s *DumpService) ListFiles(ctx context.Context, run string) ([]wikidump.DumpFile, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/%s/", s.baseURL, run)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, wikidump.Errorf(wikidump.ENOTFOUND, "no dump run published for %s", run)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse run listing: %w", err)
	}

	var files []wikidump.DumpFile
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		if !strings.HasSuffix(href, dumpFileSuffix) {
			return
		}
		files = append(files, wikidump.DumpFile{
			Name:  href,
			Bytes: listedSize(sel),
		})
	})

	return files, nil
}

// listedSize reads the size column that follows an index anchor. The
// listing format is "name  date  size"; returns 0 when the column is
// absent or not numeric.
func listedSize(sel *goquery.Selection) int64 {
	node := sel.Nodes[0]
	if node.NextSibling == nil {
		return 0
	}
	fields := strings.Fields(node.NextSibling.Data)
	if len(fields) == 0 {
		return 0
	}
	size, err := strconv.ParseInt(fields[len(fields)-1], 10, 64)
	if err != nil {
		return 0
	}
	return size
}

// Download fetches one dump file into dir and returns its local path.
// The transfer streams to a temporary file which is renamed into place
// only on success, so an interrupted download never leaves a partial
// file under the final name.
func (s *DumpService) Download(ctx context.Context, run, name, dir string) (string, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/%s/%s", s.baseURL, run, name)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	// Downloads bypass the client timeout; the context bounds them.
	client := &http.Client{Transport: s.client.Transport}
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", wikidump.Errorf(wikidump.ENOTFOUND, "dump file %s not found in run %s", name, run)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	dst := filepath.Join(dir, name)
	tmp, err := os.CreateTemp(dir, name+".partial-*")
	if err != nil {
		return "", err
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", err
	}
	if err := os.Rename(tmp.Name(), dst); err != nil {
		return "", err
	}

	return dst, nil
}
