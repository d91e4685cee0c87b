package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/concero/chain-registry/internal/infra/filesystem"
	fsjson "github.com/concero/chain-registry/internal/infra/filesystem/json"
	"github.com/concero/chain-registry/internal/logger"
)

// Fetcher retrieves raw documents over HTTP(S), or from disk for any other location.
type Fetcher struct {
	client *http.Client
	reader filesystem.Reader
	logger *slog.Logger
}

// NewFetcher creates a new fetcher. A zero timeout means requests never time out.
func NewFetcher(timeout time.Duration) *Fetcher {
	return &Fetcher{
		client: &http.Client{
			Timeout: timeout,
		},
		reader: fsjson.NewReader(),
		logger: logger.Named("fetcher"),
	}
}

// FetchText returns the document at location as a string.
func (f *Fetcher) FetchText(ctx context.Context, location string) (string, error) {
	body, err := f.fetch(ctx, location)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// FetchJSON decodes the document at location into target.
func (f *Fetcher) FetchJSON(ctx context.Context, location string, target any) error {
	body, err := f.fetch(ctx, location)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, target); err != nil {
		return fmt.Errorf("failed to unmarshal '%s': %w", location, err)
	}

	return nil
}

func (f *Fetcher) fetch(ctx context.Context, location string) ([]byte, error) {
	logger := f.logger.With("location", location)

	if !isRemote(location) {
		logger.Debug("reading local document")
		body, err := f.reader.ReadBytes(location)
		if err != nil {
			return nil, fmt.Errorf("failed to read '%s': %w", location, err)
		}
		return body, nil
	}

	logger.Debug("fetching remote document")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch '%s': %w", location, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("failed to fetch '%s': unexpected status code: %d", location, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body of '%s': %w", location, err)
	}

	logger.With("bytes", len(body)).Debug("document fetched successfully")

	return body, nil
}

func isRemote(location string) bool {
	u, err := url.Parse(location)
	if err != nil {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}
