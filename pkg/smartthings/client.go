package smartthings

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog"
)

// DefaultBaseURL is the production SmartThings REST API endpoint.
const DefaultBaseURL = "https://api.smartthings.com/v1"

// DefaultTimeout bounds every API round trip.
const DefaultTimeout = 15 * time.Second

// DefaultReadRetries is the retry budget for idempotent reads.
const DefaultReadRetries = 2

// Config holds the immutable client configuration. The token is read once
// at startup and held for the process lifetime; it is never logged.
type Config struct {
	Token       string
	BaseURL     string
	Timeout     time.Duration
	ReadRetries int
	Log         zerolog.Logger
}

// Client is a typed HTTP client for the SmartThings API.
//
// Reads (device listing, detail, status) go through a retrying client since
// they are idempotent. Command execution uses a plain client with no
// retries: re-issuing a command could duplicate its side effect.
type Client struct {
	baseURL string
	token   string
	read    *retryablehttp.Client
	exec    *http.Client
	log     zerolog.Logger
}

// NewClient creates a SmartThings API client from cfg.
// A missing access token is a configuration error.
func NewClient(cfg Config) (*Client, error) {
	if cfg.Token == "" {
		return nil, fmt.Errorf("%w: access token is required", ErrConfig)
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if _, err := url.Parse(cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("%w: invalid base URL %q: %v", ErrConfig, cfg.BaseURL, err)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.ReadRetries < 0 {
		cfg.ReadRetries = 0
	}

	read := retryablehttp.NewClient()
	read.RetryMax = cfg.ReadRetries
	read.RetryWaitMin = 250 * time.Millisecond
	read.RetryWaitMax = 2 * time.Second
	read.Logger = nil
	read.HTTPClient = &http.Client{Timeout: cfg.Timeout}

	return &Client{
		baseURL: cfg.BaseURL,
		token:   cfg.Token,
		read:    read,
		exec:    &http.Client{Timeout: cfg.Timeout},
		log:     cfg.Log,
	}, nil
}

// ListDevices returns all devices of the authenticated account, in the
// order the API reports them.
func (c *Client) ListDevices(ctx context.Context) ([]Device, error) {
	var page struct {
		Items []Device `json:"items"`
	}
	if err := c.get(ctx, "/devices", &page); err != nil {
		return nil, err
	}
	return page.Items, nil
}

// GetDevice returns the full descriptor of a single device.
func (c *Client) GetDevice(ctx context.Context, deviceID string) (*Device, error) {
	var d Device
	if err := c.get(ctx, "/devices/"+url.PathEscape(deviceID), &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// GetDeviceStatus returns the current attribute values of a device.
func (c *Client) GetDeviceStatus(ctx context.Context, deviceID string) (*DeviceStatus, error) {
	var s DeviceStatus
	if err := c.get(ctx, "/devices/"+url.PathEscape(deviceID)+"/status", &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// ExecuteCommands sends commands to a device. Never retried.
func (c *Client) ExecuteCommands(ctx context.Context, deviceID string, commands []Command) (*CommandResponse, error) {
	body, err := json.Marshal(map[string][]Command{"commands": commands})
	if err != nil {
		return nil, fmt.Errorf("encode commands: %w", err)
	}

	endpoint := c.baseURL + "/devices/" + url.PathEscape(deviceID) + "/commands"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	c.setHeaders(req)

	start := time.Now()
	resp, err := c.exec.Do(req)
	if err != nil {
		return nil, classifyTransportErr(err)
	}
	defer resp.Body.Close()

	c.log.Debug().
		Str("method", http.MethodPost).
		Str("path", req.URL.Path).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("smartthings request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.apiError(resp)
	}

	var out CommandResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode command response: %w", err)
	}
	return &out, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	c.setHeaders(req.Request)

	start := time.Now()
	resp, err := c.read.Do(req)
	if err != nil {
		return classifyTransportErr(err)
	}
	defer resp.Body.Close()

	c.log.Debug().
		Str("method", http.MethodGet).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("smartthings request")

	if resp.StatusCode != http.StatusOK {
		return c.apiError(resp)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
}

// apiError maps a non-2xx response to the error taxonomy.
func (c *Client) apiError(resp *http.Response) error {
	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w (status %d)", ErrUnauthorized, resp.StatusCode)
	case http.StatusNotFound:
		return ErrDeviceNotFound
	}

	apiErr := &APIError{StatusCode: resp.StatusCode}
	var body struct {
		RequestID string `json:"requestId"`
		Error     struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err == nil && json.Unmarshal(raw, &body) == nil {
		apiErr.RequestID = body.RequestID
		apiErr.Code = body.Error.Code
		apiErr.Message = body.Error.Message
	}
	return apiErr
}

// classifyTransportErr folds timeouts and connectivity failures into
// ErrNetwork so callers can treat them as transient.
func classifyTransportErr(err error) error {
	if errors.Is(err, context.Canceled) {
		return err
	}
	var urlErr *url.Error
	if errors.Is(err, context.DeadlineExceeded) || errors.As(err, &urlErr) {
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	// retryablehttp wraps exhausted retries in a plain error
	return fmt.Errorf("%w: %v", ErrNetwork, err)
}
