// Package codegolf is the HTTP client for the code.golf API.
//
// The API is a little unstable: the solutions-log endpoint returns the
// occasional non-2xx response under load, so log fetches carry a bounded
// retry budget. Per-hole logs are fetched concurrently by a worker pool.
package codegolf

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"sync/atomic"
	"time"

	"github.com/okian/birdie/internal/domain/model"
	"github.com/okian/birdie/pkg/logger"
	"github.com/okian/birdie/pkg/metrics"
)

// Default client configuration constants.
const (
	DefaultBaseURL = "https://code.golf"
	defaultTimeout = 30 * time.Second
	defaultRetries = 10
	defaultWorkers = 8

	// workerChannelMultiplier sizes the work channel relative to workers.
	workerChannelMultiplier = 2
)

// Client fetches the hole catalog and per-hole solution logs.
type Client struct {
	baseURL    string
	httpClient *http.Client
	retries    int
	workers    int
	log        logger.Logger
}

// New creates a Client with default configuration, adjusted by options.
func New(opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
		retries:    defaultRetries,
		workers:    defaultWorkers,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.log == nil {
		c.log = logger.Get()
	}
	return c
}

// Holes fetches the full hole catalog. Catalog order is preserved; it is
// the canonical row order of the report.
func (c *Client) Holes(ctx context.Context) ([]model.Hole, error) {
	var holes []model.Hole
	if err := c.getJSON(ctx, c.baseURL+"/api/holes", &holes); err != nil {
		return nil, fmt.Errorf("fetching hole catalog: %w", err)
	}
	c.log.Info(ctx, "fetched hole catalog", logger.Int("holes", len(holes)))
	return holes, nil
}

// getJSON performs a single GET and decodes the JSON body into v.
func (c *Client) getJSON(ctx context.Context, target string, v interface{}) error {
	start := time.Now()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.RecordFetch("error", time.Since(start))
		return fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.log.Warn(ctx, "failed to close response body", logger.Error(err))
		}
	}()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		metrics.RecordFetch("error", time.Since(start))
		return fmt.Errorf("%w: HTTP %d from %s", ErrFetchFailed, resp.StatusCode, target)
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		metrics.RecordFetch("error", time.Since(start))
		return fmt.Errorf("%w: %v", ErrDecodeFailed, err)
	}
	metrics.RecordFetch("ok", time.Since(start))
	return nil
}

// SolutionLog fetches the full submission history of one hole for one
// language. Non-2xx responses are retried up to the attempt budget before
// the fetch is abandoned with a diagnostic naming the hole.
func (c *Client) SolutionLog(ctx context.Context, holeID, lang string) ([]model.Solution, error) {
	q := url.Values{}
	q.Set("hole", holeID)
	q.Set("lang", lang)
	target := c.baseURL + "/api/solutions-log?" + q.Encode()

	var lastStatus int
	for attempt := 0; attempt < c.retries; attempt++ {
		if attempt > 0 {
			metrics.RecordFetchRetry()
		}
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("fetching solutions log for hole %q: %w", holeID, ctx.Err())
		default:
		}

		solutions, status, err := c.solutionLogAttempt(ctx, target)
		if err != nil {
			return nil, fmt.Errorf("fetching solutions log for hole %q: %w", holeID, err)
		}
		if status == http.StatusOK {
			metrics.RecordSolutionsLoaded(len(solutions))
			return solutions, nil
		}
		lastStatus = status
		c.log.Debug(ctx, "solutions log fetch returned non-2xx, retrying",
			logger.String("hole", holeID),
			logger.Int("status", status),
			logger.Int("attempt", attempt+1))
	}

	return nil, fmt.Errorf("%w: solutions log for hole %q gave HTTP %d for %d attempts in a row; the code.golf API is a little unstable, so you might just re-run",
		ErrFetchFailed, holeID, lastStatus, c.retries)
}

// solutionLogAttempt performs one fetch. A non-2xx status is returned for
// the caller's retry loop, not as an error; transport and decode failures
// are terminal.
func (c *Client) solutionLogAttempt(ctx context.Context, target string) ([]model.Solution, int, error) {
	start := time.Now()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.RecordFetch("error", time.Since(start))
		return nil, 0, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.log.Warn(ctx, "failed to close response body", logger.Error(err))
		}
	}()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		metrics.RecordFetch("retryable", time.Since(start))
		return nil, resp.StatusCode, nil
	}

	var solutions []model.Solution
	if err := json.NewDecoder(resp.Body).Decode(&solutions); err != nil {
		metrics.RecordFetch("error", time.Since(start))
		return nil, 0, fmt.Errorf("%w: %v", ErrDecodeFailed, err)
	}
	metrics.RecordFetch("ok", time.Since(start))
	return solutions, resp.StatusCode, nil
}

// SolutionLogs fetches every hole's log concurrently with a bounded
// worker pool. Results come back indexed by catalog position; the first
// failed hole aborts the run (no partial report).
func (c *Client) SolutionLogs(ctx context.Context, holes []model.Hole, lang string) ([]model.SolutionLog, error) {
	logs := make([]model.SolutionLog, len(holes))
	errs := make([]error, len(holes))

	var fetched int64
	indexCh := make(chan int, c.workers*workerChannelMultiplier)
	var wg sync.WaitGroup

	for i := 0; i < c.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range indexCh {
				select {
				case <-ctx.Done():
					errs[idx] = ctx.Err()
					continue
				default:
				}
				solutions, err := c.SolutionLog(ctx, holes[idx].ID, lang)
				if err != nil {
					errs[idx] = err
					continue
				}
				logs[idx] = model.SolutionLog{HoleID: holes[idx].ID, Solutions: solutions}
				done := atomic.AddInt64(&fetched, 1)
				c.log.Debug(ctx, "fetched solutions log",
					logger.String("hole", holes[idx].ID),
					logger.Int("solutions", len(solutions)),
					logger.Int("progress", int(done)))
			}
		}()
	}

	for i := range holes {
		indexCh <- i
	}
	close(indexCh)
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	total := 0
	for _, l := range logs {
		total += len(l.Solutions)
	}
	c.log.Info(ctx, "fetched solution logs",
		logger.Int("holes", len(holes)),
		logger.Int("solutions", total))

	return logs, nil
}
