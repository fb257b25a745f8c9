// Package feed fetches the upstream COVID-19 time-series feeds over HTTP.
package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/covidboard/covidstore/internal/contract"
	"github.com/covidboard/covidstore/schema"
	"github.com/sony/gobreaker"
)

// Client fetches raw CSV feeds and commit metadata from the upstream
// publisher. Requests are not retried; a circuit breaker protects repeated
// initializations against a flapping upstream.
type Client struct {
	dataURL    string
	commitsURL string
	httpClient *http.Client
	circuit    *gobreaker.CircuitBreaker
}

var _ contract.FeedClient = &Client{} // Compile-time check

// NewClient returns a Client configured from cfg.
func NewClient(cfg *contract.Config) *Client {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "covid-feeds",
		MaxRequests: 3,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &Client{
		dataURL:    cfg.DataURL,
		commitsURL: cfg.CommitsURL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		circuit:    cb,
	}
}

// feedFileName maps a feed to its CSV file name in the upstream directory.
func feedFileName(feed schema.Feed) string {
	return fmt.Sprintf("time_series_covid19_%s.csv", feed)
}

// FetchFeed returns the raw CSV text of one upstream feed. A non-2xx response
// yields a schema.FetchError.
func (c *Client) FetchFeed(ctx context.Context, feed schema.Feed) (string, error) {
	url := c.dataURL + "/" + feedFileName(feed)
	body, err := c.get(ctx, url)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// commitRecord is the subset of the commit-metadata response we consume.
type commitRecord struct {
	Commit struct {
		Author struct {
			Date time.Time `json:"date"`
		} `json:"author"`
	} `json:"commit"`
}

// FetchLastUpdated queries the commit-metadata endpoint, filtered upstream to
// the time-series directory and a single most-recent commit, and returns its
// author date. An empty commit list is a schema.DataAnomalyError.
func (c *Client) FetchLastUpdated(ctx context.Context) (time.Time, error) {
	body, err := c.get(ctx, c.commitsURL)
	if err != nil {
		return time.Time{}, err
	}

	var commits []commitRecord
	if err := json.Unmarshal(body, &commits); err != nil {
		return time.Time{}, fmt.Errorf("failed to decode commit metadata: %w", err)
	}
	if len(commits) == 0 {
		return time.Time{}, &schema.DataAnomalyError{Detail: "commit metadata contains no commits"}
	}
	return commits[0].Commit.Author.Date, nil
}

// get performs one HTTP GET through the circuit breaker and reads the full
// body. Non-2xx statuses map to schema.FetchError.
func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	result, err := c.circuit.Execute(func() (interface{}, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, err
		}
		defer func() { _ = resp.Body.Close() }()

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			// Drain so the connection can be reused.
			_, _ = io.Copy(io.Discard, resp.Body)
			return nil, &schema.FetchError{Status: resp.StatusCode, StatusText: http.StatusText(resp.StatusCode)}
		}

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to read response from %s: %w", url, err)
		}
		return body, nil
	})
	if err != nil {
		return nil, err
	}

	body, ok := result.([]byte)
	if !ok {
		return nil, fmt.Errorf("unexpected result type from circuit breaker")
	}
	return body, nil
}
