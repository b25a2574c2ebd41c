// Package api fetches weekly schedules from the college schedule service.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/ytget/college-schedule/internal/model"
)

// Defaults
const (
	DefaultBaseURL = "http://10.0.2.2:5000"
	DefaultTimeout = 10 * time.Second
	MaxRetries     = 1
	RetryDelay     = 2 * time.Second
)

// Client calls GET {base}/api/schedule/group/{group}?start=&end=
type Client struct {
	baseURL    string
	httpClient *http.Client
	retryDelay time.Duration
}

// NewClient creates a client for baseURL; timeout <= 0 uses DefaultTimeout
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		retryDelay: RetryDelay,
	}
}

// BaseURL returns the configured service address
func (c *Client) BaseURL() string {
	return c.baseURL
}

// FetchSchedule returns the days of window for group, ordered by date.
// Its signature matches loader.FetchFunc.
func (c *Client) FetchSchedule(ctx context.Context, group model.GroupID, window model.WeekWindow) ([]model.DaySchedule, error) {
	if !group.Valid() {
		return nil, fmt.Errorf("fetch schedule: empty group")
	}
	endpoint := c.scheduleURL(group, window)

	var lastErr error
	for attempt := 0; attempt <= MaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(c.retryDelay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
			log.Printf("api: retrying %s, attempt %d", endpoint, attempt+1)
		}

		days, err := c.get(ctx, endpoint)
		if err == nil {
			return days, nil
		}
		lastErr = err
		log.Printf("api: attempt %d failed for group %s: %v", attempt+1, group, err)

		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		var fe *FetchError
		if errors.As(err, &fe) && !fe.Temporary() {
			break
		}
	}
	return nil, lastErr
}

func (c *Client) scheduleURL(group model.GroupID, window model.WeekWindow) string {
	q := url.Values{}
	q.Set("start", window.Start.String())
	q.Set("end", window.End.String())
	return fmt.Sprintf("%s/api/schedule/group/%s?%s", c.baseURL, url.PathEscape(group.String()), q.Encode())
}

func (c *Client) get(ctx context.Context, endpoint string) ([]model.DaySchedule, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &FetchError{URL: endpoint, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &FetchError{URL: endpoint, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &FetchError{URL: endpoint, StatusCode: resp.StatusCode, Err: errors.New(resp.Status)}
	}

	var payload []dayDTO
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &FetchError{URL: endpoint, StatusCode: resp.StatusCode, Err: fmt.Errorf("%w: %v", ErrMalformedResponse, err)}
	}

	days := make([]model.DaySchedule, 0, len(payload))
	for _, d := range payload {
		day, err := d.toModel()
		if err != nil {
			return nil, &FetchError{URL: endpoint, StatusCode: resp.StatusCode, Err: fmt.Errorf("%w: %v", ErrMalformedResponse, err)}
		}
		days = append(days, day)
	}
	sort.SliceStable(days, func(i, j int) bool { return days[i].Date.Before(days[j].Date) })
	return days, nil
}
