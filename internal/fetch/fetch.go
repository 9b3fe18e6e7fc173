// Package fetch downloads a single remote resource, following at most one redirect.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/spacetheme/spacetheme/internal/messages"
)

const (
	// DefaultTimeout bounds a single request including the body transfer.
	DefaultTimeout = 60 * time.Second
	// DefaultMaxBytes caps the size of any downloaded resource.
	DefaultMaxBytes = int64(100 * 1024 * 1024) // 100 MiB
)

var (
	// ErrUnexpectedStatus reports a final response other than 200 OK.
	ErrUnexpectedStatus = errors.New("fetch: unexpected status")
	// ErrTooManyRedirects reports a redirect after the single allowed hop.
	ErrTooManyRedirects = errors.New("fetch: too many redirects")
	// ErrTooLarge reports a body larger than the configured limit.
	ErrTooLarge = errors.New("fetch: response too large")
)

// Options configures a Fetcher.
type Options struct {
	// Timeout for each request. Default: DefaultTimeout.
	Timeout time.Duration
	// MaxBytes caps the body size. Default: DefaultMaxBytes.
	MaxBytes int64
	// UserAgent is sent with every request when non-empty.
	UserAgent string
}

// Fetcher performs GET requests with explicit single-hop redirect handling.
type Fetcher struct {
	client *http.Client
	opts   Options
}

// New returns a Fetcher. The underlying client never follows redirects on its own.
func New(opts Options) *Fetcher {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.MaxBytes <= 0 {
		opts.MaxBytes = DefaultMaxBytes
	}
	return &Fetcher{
		client: &http.Client{
			Timeout: opts.Timeout,
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		opts: opts,
	}
}

// Fetch downloads url and copies the body to dest. It returns the number of
// bytes written. A 301 or 302 is followed once; every other non-200 status,
// including a second redirect, is an error.
func (f *Fetcher) Fetch(ctx context.Context, url string, dest io.Writer) (int64, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	resp, err := f.get(ctx, url)
	if err != nil {
		return 0, err
	}
	if isRedirect(resp.StatusCode) {
		location, err := resp.Location()
		_ = resp.Body.Close()
		if err != nil {
			return 0, fmt.Errorf(messages.FetchRedirectLocationFmt, url, err)
		}
		next := location.String()
		resp, err = f.get(ctx, next)
		if err != nil {
			return 0, err
		}
		if isRedirect(resp.StatusCode) {
			_ = resp.Body.Close()
			return 0, fmt.Errorf(messages.FetchTooManyRedirectsFmt, ErrTooManyRedirects, next, resp.StatusCode)
		}
		url = next
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf(messages.FetchStatusFmt, ErrUnexpectedStatus, url, resp.StatusCode)
	}

	n, err := io.Copy(dest, io.LimitReader(resp.Body, f.opts.MaxBytes+1))
	if err != nil {
		return n, fmt.Errorf(messages.FetchReadFmt, url, err)
	}
	if n > f.opts.MaxBytes {
		return n, fmt.Errorf(messages.FetchTooLargeFmt, ErrTooLarge, url, f.opts.MaxBytes)
	}
	return n, nil
}

func (f *Fetcher) get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf(messages.FetchCreateRequestFmt, url, err)
	}
	if f.opts.UserAgent != "" {
		req.Header.Set("User-Agent", f.opts.UserAgent)
	}
	resp, err := f.client.Do(req)
	if err != nil {
		if IsTimeout(err) {
			return nil, fmt.Errorf(messages.FetchTimeoutFmt, url, err)
		}
		return nil, fmt.Errorf(messages.FetchRequestFmt, url, err)
	}
	return resp, nil
}

func isRedirect(code int) bool {
	return code == http.StatusMovedPermanently || code == http.StatusFound
}

// IsTimeout reports whether err is a network timeout.
func IsTimeout(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) {
		return netErr.Timeout()
	}
	return false
}
