package pipeline

import (
	"bytes"
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/ppiankov/countrygen/internal/model"
	"github.com/ppiankov/countrygen/internal/util"
)

// ErrEmptyPayload is returned when the dataset response has no content
var ErrEmptyPayload = errors.New("empty payload")

// Downloader retrieves the raw dataset
type Downloader interface {
	Fetch(ctx context.Context, rawURL string) (*FetchResult, error)
}

// Fetcher downloads the dataset over HTTP
type Fetcher struct {
	httpClient *http.Client
	userAgent  string
	maxBytes   int64
	robots     *util.RobotsChecker // nil unless robots.txt is honored
}

// NewFetcher creates a new Fetcher with the given configuration
func NewFetcher(cfg model.HTTPConfig) *Fetcher {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.Proxy = util.NewProxyFunc(cfg.HTTPProxy, cfg.HTTPSProxy, cfg.NoProxy)
	if cfg.InsecureTLS {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}

	maxRedirects := cfg.MaxRedirects
	client := &http.Client{
		Timeout:   cfg.Timeout,
		Transport: transport,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= maxRedirects {
				return fmt.Errorf("stopped after %d redirects", maxRedirects)
			}
			return nil
		},
	}

	f := &Fetcher{
		httpClient: client,
		userAgent:  cfg.UserAgent,
		maxBytes:   cfg.MaxBodyBytes,
	}
	if cfg.RespectRobots {
		f.robots = util.NewRobotsChecker(cfg.UserAgent, cfg.Timeout, client)
	}

	return f
}

// FetchResult contains the downloaded payload and metadata
type FetchResult struct {
	Body     []byte
	Meta     FetchMeta
	FinalURL string
}

// FetchMeta contains HTTP metadata from the download
type FetchMeta struct {
	StatusCode   int
	ContentType  string
	LastModified string
	ETag         string
}

// Fetch retrieves the dataset from the given URL
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*FetchResult, error) {
	if f.robots != nil {
		allowed, err := f.robots.CanFetch(ctx, rawURL)
		if err != nil {
			return nil, fmt.Errorf("robots.txt: %w", err)
		}
		if !allowed {
			return nil, fmt.Errorf("disallowed by robots.txt: %s", rawURL)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "application/json, */*;q=0.8")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	meta := FetchMeta{
		StatusCode:   resp.StatusCode,
		ContentType:  resp.Header.Get("Content-Type"),
		LastModified: resp.Header.Get("Last-Modified"),
		ETag:         resp.Header.Get("ETag"),
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status: %d %s", resp.StatusCode, resp.Status)
	}

	// Read one byte past the limit so truncation is detected
	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if int64(len(body)) > f.maxBytes {
		return nil, fmt.Errorf("payload exceeds %d bytes", f.maxBytes)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, ErrEmptyPayload
	}

	return &FetchResult{
		Body:     body,
		Meta:     meta,
		FinalURL: resp.Request.URL.String(),
	}, nil
}
