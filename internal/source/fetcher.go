// Package source reads raw resource bytes from a local path or an http(s) URL.
package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/osse101/BrandishItemSearch/internal/domain"
	"github.com/osse101/BrandishItemSearch/internal/logger"
)

// Fetcher returns the raw bytes of a resource
type Fetcher interface {
	Fetch(ctx context.Context, location string) ([]byte, error)
}

type fetcher struct {
	client  *http.Client
	timeout time.Duration
}

// NewFetcher creates a fetcher for file paths and http(s) URLs.
// A zero timeout uses DefaultTimeout.
func NewFetcher(timeout time.Duration) Fetcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &fetcher{
		client:  &http.Client{Timeout: timeout},
		timeout: timeout,
	}
}

// IsRemote reports whether location is an http(s) URL
func IsRemote(location string) bool {
	return strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://")
}

// Fetch reads the whole resource. Every failure wraps domain.ErrResourceUnavailable.
func (f *fetcher) Fetch(ctx context.Context, location string) ([]byte, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(location) == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrResourceUnavailable, ErrMsgEmptyLocation)
	}

	log.Debug(LogMsgFetchStarted, "location", location)
	start := time.Now()

	var data []byte
	var err error
	if IsRemote(location) {
		data, err = f.fetchHTTP(ctx, location)
	} else {
		data, err = f.fetchFile(ctx, location)
	}
	if err != nil {
		log.Warn(LogMsgFetchFailed, "location", location, "error", err)
		return nil, err
	}

	log.Debug(LogMsgFetchFinished, "location", location, "bytes", len(data), "duration", time.Since(start))
	return data, nil
}

func (f *fetcher) fetchFile(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrResourceUnavailable, err)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrResourceUnavailable, err)
	}
	defer file.Close()

	return readLimited(file)
}

func (f *fetcher) fetchHTTP(ctx context.Context, url string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrResourceUnavailable, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrResourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s %d", domain.ErrResourceUnavailable, ErrMsgUnexpectedCode, resp.StatusCode)
	}

	return readLimited(resp.Body)
}

func readLimited(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxPayloadBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrResourceUnavailable, err)
	}
	if len(data) > MaxPayloadBytes {
		return nil, fmt.Errorf("%w: %s", domain.ErrResourceUnavailable, ErrMsgPayloadTooBig)
	}
	return data, nil
}

// RequireContent rejects an empty or whitespace-only payload as unavailable
func RequireContent(data []byte) error {
	if len(strings.TrimSpace(string(data))) == 0 {
		return fmt.Errorf("%w: %s", domain.ErrResourceUnavailable, ErrMsgEmptyPayload)
	}
	return nil
}

// IsUnavailable reports whether err means the resource could not be read
func IsUnavailable(err error) bool {
	return errors.Is(err, domain.ErrResourceUnavailable)
}
