// Package adsapi is the HTTP client for the advertising platform's
// insights endpoint. It returns raw rows; the normalizer owns all field
// interpretation so API and file-export columns flow through one path.
package adsapi

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"prism/config"
	"prism/internal/domain/schema"
	"prism/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	defaultTimeout = 30 * time.Second

	// maxPages bounds paging follow-up so a misbehaving endpoint cannot
	// hold a sync pass forever.
	maxPages = 50
)

// insightsResponse is the paged envelope of the insights endpoint.
type insightsResponse struct {
	Data   []schema.RawRow `json:"data"`
	Paging struct {
		Next string `json:"next"`
	} `json:"paging"`
}

type client struct {
	endpoint    string
	accessToken string
	httpClient  *http.Client
	logger      *slog.Logger
}

// NewClient creates the insights client. Returns nil when the
// advertising API is not configured; the sync usecase treats a nil
// provider as "sync disabled".
func NewClient(cfg *config.AdsAPIConfig, logger *slog.Logger) service.AdsProvider {
	if cfg == nil || cfg.Endpoint == "" {
		logger.Info("Advertising API not configured, sync disabled")

		return nil
	}

	timeout := defaultTimeout
	if cfg.Timeout > 0 {
		timeout = cfg.Timeout
	}

	return &client{
		endpoint:    cfg.Endpoint,
		accessToken: cfg.AccessToken,
		httpClient:  &http.Client{Timeout: timeout},
		logger:      logger,
	}
}

// FetchAdRows retrieves raw advertising rows reported since the given time,
// following the endpoint's paging links.
func (c *client) FetchAdRows(ctx context.Context, since time.Time) ([]schema.RawRow, error) {
	requestURL, err := c.buildURL(since)
	if err != nil {
		return nil, err
	}

	var rows []schema.RawRow
	for page := 0; requestURL != "" && page < maxPages; page++ {
		envelope, err := c.fetchPage(ctx, requestURL)
		if err != nil {
			return nil, err
		}
		rows = append(rows, envelope.Data...)
		requestURL = envelope.Paging.Next
	}

	c.logger.Info("Fetched advertising rows",
		slog.Int("rows", len(rows)),
		slog.Time("since", since),
	)

	return rows, nil
}

func (c *client) buildURL(since time.Time) (string, error) {
	parsed, err := url.Parse(c.endpoint)
	if err != nil {
		return "", errors.Wrap(err, "invalid advertising API endpoint")
	}

	query := parsed.Query()
	query.Set("access_token", c.accessToken)
	query.Set("time_increment", "1")
	if !since.IsZero() {
		query.Set("since", since.Format("2006-01-02"))
	}
	parsed.RawQuery = query.Encode()

	return parsed.String(), nil
}

func (c *client) fetchPage(ctx context.Context, requestURL string) (*insightsResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build insights request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "insights request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))

		return nil, errors.Errorf("insights endpoint returned status %d: %s", resp.StatusCode, string(body))
	}

	envelope := &insightsResponse{}
	if err := json.NewDecoder(resp.Body).Decode(envelope); err != nil {
		return nil, errors.Wrap(err, "failed to decode insights response")
	}

	return envelope, nil
}
