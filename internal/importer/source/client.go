package source

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/smallbiznis/atlas/internal/config"
	"go.uber.org/zap"
)

// Client fetches the full country corpus from the upstream REST source with
// one blocking GET.
type Client struct {
	url  string
	http *http.Client
	log  *zap.Logger
}

func NewClient(cfg config.Config, log *zap.Logger) *Client {
	transport := &http.Transport{
		MaxIdleConns:        10,
		IdleConnTimeout:     30 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	}

	return &Client{
		url: cfg.SourceURL,
		http: &http.Client{
			Timeout:   time.Duration(cfg.SourceTimeoutSeconds) * time.Second,
			Transport: transport,
		},
		log: log.Named("countries.source"),
	}
}

// FetchAll returns every country document, or an error when the call fails
// or returns a non-success status.
func (c *Client) FetchAll(ctx context.Context) ([]CountryDocument, error) {
	c.log.Info("fetching countries data", zap.String("url", c.url))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build source request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch countries data: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("fetch countries data: unexpected status %d", resp.StatusCode)
	}

	var docs []CountryDocument
	if err := json.NewDecoder(resp.Body).Decode(&docs); err != nil {
		return nil, fmt.Errorf("decode countries data: %w", err)
	}

	return docs, nil
}
