package submission

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/orbytrixx/orbytrixx/internal/form"
	"github.com/orbytrixx/orbytrixx/internal/logging"
	"github.com/orbytrixx/orbytrixx/internal/version"
)

const (
	// DefaultEndpoint is the form relay that forwards applications by mail
	DefaultEndpoint = "https://api.web3forms.com/submit"

	// DefaultTimeout bounds a single submission attempt
	DefaultTimeout = 15 * time.Second

	// maxResponseSize caps how much of a response body is read
	maxResponseSize = 1 << 20
)

// Client posts Careers applications to the form relay. There is no
// automatic retry: a failed attempt is reported and the applicant decides.
type Client struct {
	// Endpoint is the full URL applications are POSTed to
	Endpoint string

	// AccessKey identifies the site to the relay
	AccessKey string

	// Subject and FromName are copied into every payload
	Subject  string
	FromName string

	// HTTPClient is the underlying HTTP client
	HTTPClient *http.Client

	// newID generates attempt ids; replaced in tests
	newID func() string
}

// NewClient creates a client for the given access key with default endpoint,
// subject, sender and timeout.
func NewClient(accessKey string) *Client {
	return NewClientWithURL(DefaultEndpoint, accessKey)
}

// NewClientWithURL creates a client posting to a custom endpoint
func NewClientWithURL(endpoint, accessKey string) *Client {
	return &Client{
		Endpoint:   endpoint,
		AccessKey:  accessKey,
		Subject:    DefaultSubject,
		FromName:   DefaultFromName,
		HTTPClient: &http.Client{Timeout: DefaultTimeout},
		newID:      func() string { return uuid.NewString() },
	}
}

// SetTimeout sets the per-attempt timeout. Non-positive values are ignored.
func (c *Client) SetTimeout(timeout time.Duration) {
	if timeout > 0 {
		c.HTTPClient.Timeout = timeout
	}
}

// SetSender overrides the mail subject and sender name. Empty values keep
// the current setting.
func (c *Client) SetSender(subject, fromName string) {
	if subject != "" {
		c.Subject = subject
	}
	if fromName != "" {
		c.FromName = fromName
	}
}

// Validate checks that the client can attempt a submission at all.
func (c *Client) Validate() error {
	if c.AccessKey == "" {
		return NewConfigError("no access key configured")
	}
	u, err := url.Parse(c.Endpoint)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return NewConfigError(fmt.Sprintf("invalid endpoint %q", c.Endpoint))
	}
	return nil
}

// Submit sends a Careers record. It satisfies form.Submitter.
func (c *Client) Submit(ctx context.Context, values form.Values) error {
	_, err := c.Send(ctx, PayloadFromValues(values))
	return err
}

// Send posts a payload once and returns the decoded response. Any outcome
// other than HTTP 2xx with success=true is returned as a *SubmitError.
func (c *Client) Send(ctx context.Context, payload Payload) (*Response, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	payload.AccessKey = c.AccessKey
	if payload.Subject == "" {
		payload.Subject = c.Subject
	}
	if payload.FromName == "" {
		payload.FromName = c.FromName
	}

	attemptID := c.newID()
	start := time.Now()

	resp, err := c.sendAttempt(ctx, attemptID, payload)

	outcome := "submitted"
	if err != nil {
		outcome = "failed"
	}
	logging.LogSubmission(attemptID, "careers", outcome, time.Since(start), err)

	return resp, err
}

// sendAttempt performs a single POST
func (c *Client) sendAttempt(ctx context.Context, attemptID string, payload Payload) (*Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, NewParseError("failed to encode payload", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, NewConfigError(fmt.Sprintf("failed to create POST request: %v", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", version.UserAgent())

	logging.LogHTTPRequest(attemptID, req.Method, c.Endpoint, map[string]string{
		"Content-Type": "application/json",
		"Accept":       "application/json",
		"User-Agent":   version.UserAgent(),
	})

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, NewNetworkError("POST request failed", err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, NewNetworkError("failed to read response body", err)
	}
	logging.LogHTTPResponse(attemptID, resp.StatusCode, raw)

	var decoded Response
	decodeErr := json.Unmarshal(raw, &decoded)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := fmt.Sprintf("unexpected status code: %d", resp.StatusCode)
		if decodeErr == nil && decoded.Message != "" {
			msg = decoded.Message
		}
		httpErr := NewHTTPError(resp.StatusCode, msg)
		httpErr.Answered = decodeErr == nil
		return nil, httpErr
	}

	if decodeErr != nil {
		return nil, NewParseError("failed to parse JSON response", decodeErr)
	}

	if !decoded.Success {
		return &decoded, NewRejectedError(resp.StatusCode, decoded.Message)
	}

	return &decoded, nil
}
