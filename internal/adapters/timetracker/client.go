package timetracker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/renato0307/punch/internal/domain"
	"github.com/renato0307/punch/internal/logging"
	"github.com/renato0307/punch/internal/ports"
)

const (
	defaultTimeout = 10 * time.Second
	maxBodyBytes   = 1 << 20

	opClockIn  = "clock in"
	opClockOut = "clock out"
	opCurrent  = "current entry"
	opList     = "list entries"
)

// layoutLocalTime parses ISO-8601 timestamps sent without a zone offset
const layoutLocalTime = "2006-01-02T15:04:05.999999999"

// Client talks to the time-tracking service over HTTP
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	userAgent  string
}

// Verify interface compliance at compile time
var _ ports.TimesheetClient = (*Client)(nil)

// Options configures the client
type Options struct {
	HTTPClient *http.Client // overrides Timeout when set
	Timeout    time.Duration
	UserAgent  string
}

// entryPayload is the wire form of a time entry
type entryPayload struct {
	ClockIn  string  `json:"clockIn"`
	ClockOut *string `json:"clockOut,omitempty"`
	ID       string  `json:"id"`
	UserID   string  `json:"userId"`
}

type entryResponse struct {
	ClockInTimestamp string        `json:"clockInTimestamp,omitempty"`
	Entry            *entryPayload `json:"entry"`
}

type entriesResponse struct {
	Entries []entryPayload `json:"entries"`
}

// NewClient creates a client for the service rooted at baseURL
func NewClient(baseURL string, opts Options) (*Client, error) {
	trimmed := strings.TrimSpace(baseURL)
	if trimmed == "" {
		return nil, errors.New("service URL is required")
	}

	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("invalid service URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid service URL %q: scheme must be http or https", baseURL)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = "punch"
	}

	return &Client{
		baseURL:    u,
		httpClient: httpClient,
		userAgent:  userAgent,
	}, nil
}

// ClockIn implements ports.TimeTracker
func (c *Client) ClockIn(ctx context.Context, userID string) (time.Time, error) {
	var res entryResponse
	if err := c.do(ctx, http.MethodPost, "TimeEntry/clockin", opClockIn, userID, nil, &res); err != nil {
		return time.Time{}, err
	}

	raw := res.ClockInTimestamp
	if res.Entry != nil && res.Entry.ClockIn != "" {
		raw = res.Entry.ClockIn
	}
	if raw == "" {
		return time.Time{}, &domain.ServiceError{
			Op:     opClockIn,
			UserID: userID,
			Err:    errors.New("response is missing the clock-in timestamp"),
		}
	}

	clockIn, err := parseTimestamp(raw)
	if err != nil {
		return time.Time{}, &domain.ServiceError{Op: opClockIn, UserID: userID, Err: err}
	}

	logging.Logger.Debug("Service accepted clock in", "user_id", userID, "clock_in", clockIn)
	return clockIn, nil
}

// ClockOut implements ports.TimeTracker
func (c *Client) ClockOut(ctx context.Context, userID string) error {
	if err := c.do(ctx, http.MethodPost, "TimeEntry/clockout", opClockOut, userID, nil, nil); err != nil {
		return err
	}
	logging.Logger.Debug("Service accepted clock out", "user_id", userID)
	return nil
}

// Current implements ports.TimesheetReader
func (c *Client) Current(ctx context.Context, userID string) (*domain.TimeEntry, error) {
	var res entryResponse
	if err := c.do(ctx, http.MethodGet, "TimeEntry/current", opCurrent, userID, nil, &res); err != nil {
		return nil, err
	}
	if res.Entry == nil {
		return nil, nil
	}

	entry, err := res.Entry.toDomain()
	if err != nil {
		return nil, &domain.ServiceError{Op: opCurrent, UserID: userID, Err: err}
	}
	return &entry, nil
}

// List implements ports.TimesheetReader
func (c *Client) List(ctx context.Context, userID string, limit int) ([]domain.TimeEntry, error) {
	params := url.Values{}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}

	var res entriesResponse
	if err := c.do(ctx, http.MethodGet, "TimeEntry/entries", opList, userID, params, &res); err != nil {
		return nil, err
	}

	entries := make([]domain.TimeEntry, 0, len(res.Entries))
	for _, p := range res.Entries {
		entry, err := p.toDomain()
		if err != nil {
			return nil, &domain.ServiceError{Op: opList, UserID: userID, Err: err}
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// do issues a request and decodes a JSON body into v when v is non-nil.
// Every failure is returned as a *domain.ServiceError.
func (c *Client) do(ctx context.Context, method, path, op, userID string, params url.Values, v any) error {
	if userID == "" {
		return &domain.ServiceError{Op: op, UserID: userID, Err: domain.ErrUserRequired}
	}

	u := c.baseURL.ResolveReference(&url.URL{Path: path})
	if params == nil {
		params = url.Values{}
	}
	params.Set("userId", userID)
	u.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, method, u.String(), nil)
	if err != nil {
		return &domain.ServiceError{Op: op, UserID: userID, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logging.Logger.Warn("Time-tracking request failed",
			"op", op,
			"user_id", userID,
			"duration", time.Since(start),
			"error", err)
		return &domain.ServiceError{Op: op, UserID: userID, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return &domain.ServiceError{Op: op, UserID: userID, StatusCode: resp.StatusCode, Err: err}
	}

	logging.Logger.Debug("Time-tracking request completed",
		"op", op,
		"user_id", userID,
		"status", resp.StatusCode,
		"duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &domain.ServiceError{
			Op:         op,
			UserID:     userID,
			StatusCode: resp.StatusCode,
			Err:        errors.New(errorMessage(body, resp.Status)),
		}
	}

	if v == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, v); err != nil {
		return &domain.ServiceError{
			Op:         op,
			UserID:     userID,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("malformed response: %w", err),
		}
	}
	return nil
}

// errorMessage extracts {"error": "..."} from a failed response, falling back to the status line
func errorMessage(body []byte, status string) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		return payload.Error
	}
	return status
}

func (p entryPayload) toDomain() (domain.TimeEntry, error) {
	clockIn, err := parseTimestamp(p.ClockIn)
	if err != nil {
		return domain.TimeEntry{}, err
	}

	entry := domain.TimeEntry{
		ClockIn: clockIn,
		ID:      p.ID,
		UserID:  p.UserID,
	}
	if p.ClockOut != nil && *p.ClockOut != "" {
		clockOut, err := parseTimestamp(*p.ClockOut)
		if err != nil {
			return domain.TimeEntry{}, err
		}
		entry.ClockOut = &clockOut
	}
	return entry, nil
}

// parseTimestamp accepts RFC 3339 and zone-less ISO-8601 timestamps.
// Zone-less values are read in local time.
func parseTimestamp(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation(layoutLocalTime, raw, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q", raw)
	}
	return t, nil
}
