// Package relay talks to the remote pairing relay: the service that ferries
// sealed key material between two devices joining the same sync account and
// hosts the account endpoints. It also provides the polling services and
// transmitters the pairing controller consumes.
package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
	"unicode/utf8"
)

// TransientError wraps an error that is likely temporary and safe to retry.
type TransientError struct {
	Err error
}

func (e *TransientError) Error() string { return e.Err.Error() }
func (e *TransientError) Unwrap() error { return e.Err }

// IsTransient reports whether err (or any error in its chain) is a
// TransientError, meaning the caller may retry after a backoff.
func IsTransient(err error) bool {
	var te *TransientError
	return errors.As(err, &te)
}

const (
	// maxRedirects is the maximum number of HTTP redirects to follow
	// before giving up, matching the default net/http limit.
	maxRedirects = 10

	// httpClientTimeout is the timeout for the default HTTP client used
	// when no custom client is provided.
	httpClientTimeout = 30 * time.Second

	// maxResponseBytes caps response body reads. Relay payloads are sealed
	// key material and small JSON documents.
	maxResponseBytes = 1024 * 1024
)

// Client talks to the pairing relay's REST API.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// sameHostRedirectPolicy follows redirects only when the target host
// matches the original request host, so tokens never leak to third-party
// domains.
func sameHostRedirectPolicy(req *http.Request, via []*http.Request) error {
	if len(via) >= maxRedirects {
		return errors.New("stopped after 10 redirects")
	}

	if len(via) > 0 {
		origHost := via[0].URL.Host
		if req.URL.Host != origHost {
			return fmt.Errorf("redirect to different host blocked: %s -> %s", origHost, req.URL.Host)
		}
	}

	return nil
}

// NewClient creates a relay client for the given base URL. If httpClient is
// nil, a client with a 30-second timeout and same-host redirect policy is
// created.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:       httpClientTimeout,
			CheckRedirect: sameHostRedirectPolicy,
		}
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
	}
}

// sanitizeResponseBody truncates and sanitizes a response body for
// inclusion in error messages. Limits to 256 bytes and replaces
// non-printable characters to prevent log injection.
func sanitizeResponseBody(body []byte) string {
	const maxLen = 256
	if len(body) > maxLen {
		body = body[:maxLen]
	}

	var clean []byte

	for len(body) > 0 {
		r, size := utf8.DecodeRune(body)
		if r == utf8.RuneError && size <= 1 {
			clean = append(clean, '?')
			body = body[1:]

			continue
		}

		if r < 0x20 && r != '\n' && r != '\r' && r != '\t' {
			clean = append(clean, '?')
		} else {
			clean = append(clean, body[:size]...)
		}

		body = body[size:]
	}

	return string(clean)
}

// isTransientStatus returns true for HTTP status codes that indicate a
// temporary server-side problem worth retrying.
func isTransientStatus(code int) bool {
	switch code {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	}

	return false
}

// do sends a request with a JSON body (when body is non-nil) and decodes a
// JSON response into result (when result is non-nil). A nil, nil return
// with empty=true means the relay had nothing for us (204 or 404), which
// poll loops treat as "not yet".
func (c *Client) do(ctx context.Context, method, endpoint, token string, body, result any) (empty bool, err error) {
	var reader io.Reader

	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return false, fmt.Errorf("marshalling request body: %w", err)
		}

		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reader)
	if err != nil {
		return false, fmt.Errorf("creating request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Network errors (timeouts, connection refused, DNS failures)
		// are transient by nature.
		return false, &TransientError{Err: fmt.Errorf("sending request to %s: %w", endpoint, err)}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return false, fmt.Errorf("reading response from %s: %w", endpoint, err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNoContent, http.StatusNotFound:
		return true, nil
	default:
		err := fmt.Errorf("relay %s returned status %d: %s", endpoint, resp.StatusCode, sanitizeResponseBody(respBody))
		if isTransientStatus(resp.StatusCode) {
			return false, &TransientError{Err: err}
		}

		return false, err
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return false, fmt.Errorf("decoding response from %s: %w", endpoint, err)
		}
	}

	return false, nil
}

// sealedEnvelope is the wire wrapper around sealed key material.
type sealedEnvelope struct {
	Payload []byte `json:"payload"`
}

// PutExchange posts a sealed exchange payload to the channel identified by
// keyID.
func (c *Client) PutExchange(ctx context.Context, keyID string, payload []byte) error {
	if _, err := c.do(ctx, http.MethodPut, "/v1/exchange/"+keyID, "", sealedEnvelope{Payload: payload}, nil); err != nil {
		return fmt.Errorf("putting exchange payload: %w", err)
	}

	return nil
}

// GetExchange fetches the sealed payload waiting on an exchange channel, or
// nil when nothing has arrived yet.
func (c *Client) GetExchange(ctx context.Context, keyID string) ([]byte, error) {
	var env sealedEnvelope

	pending, err := c.do(ctx, http.MethodGet, "/v1/exchange/"+keyID, "", nil, &env)
	if err != nil {
		return nil, fmt.Errorf("getting exchange payload: %w", err)
	}

	if pending {
		return nil, nil
	}

	return env.Payload, nil
}

// PutConnect posts a sealed recovery payload to the channel identified by
// the connect device ID.
func (c *Client) PutConnect(ctx context.Context, deviceID string, payload []byte) error {
	if _, err := c.do(ctx, http.MethodPut, "/v1/connect/"+deviceID, "", sealedEnvelope{Payload: payload}, nil); err != nil {
		return fmt.Errorf("putting connect payload: %w", err)
	}

	return nil
}

// GetConnect fetches the sealed payload waiting on a connect channel, or
// nil when nothing has arrived yet.
func (c *Client) GetConnect(ctx context.Context, deviceID string) ([]byte, error) {
	var env sealedEnvelope

	pending, err := c.do(ctx, http.MethodGet, "/v1/connect/"+deviceID, "", nil, &env)
	if err != nil {
		return nil, fmt.Errorf("getting connect payload: %w", err)
	}

	if pending {
		return nil, nil
	}

	return env.Payload, nil
}

// Signup registers a new account and its first device.
func (c *Client) Signup(ctx context.Context, req SignupRequest) (*SignupResponse, error) {
	var resp SignupResponse
	if _, err := c.do(ctx, http.MethodPost, "/v1/signup", "", req, &resp); err != nil {
		return nil, fmt.Errorf("signing up: %w", err)
	}

	return &resp, nil
}

// Login authenticates a device into an existing account using hashed
// recovery credentials and registers the device.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	var resp LoginResponse
	if _, err := c.do(ctx, http.MethodPost, "/v1/login", "", req, &resp); err != nil {
		return nil, fmt.Errorf("logging in: %w", err)
	}

	return &resp, nil
}

// ListDevices returns the devices registered against the account the token
// belongs to.
func (c *Client) ListDevices(ctx context.Context, token string) (*DeviceListResponse, error) {
	var resp DeviceListResponse
	if _, err := c.do(ctx, http.MethodGet, "/v1/devices", token, nil, &resp); err != nil {
		return nil, fmt.Errorf("listing devices: %w", err)
	}

	return &resp, nil
}

// Logout removes the device from its account and invalidates the token.
func (c *Client) Logout(ctx context.Context, token, deviceID string) error {
	if _, err := c.do(ctx, http.MethodPost, "/v1/logout", token, LogoutRequest{DeviceID: deviceID}, nil); err != nil {
		return fmt.Errorf("logging out: %w", err)
	}

	return nil
}
