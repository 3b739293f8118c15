// Package api implements the authenticated HTTP client for the GRADiEnt
// backend: it attaches the bearer token to outbound requests, skips
// guest-accessible endpoints, and on an authentication-rejected response
// performs exactly one token refresh before replaying the original request.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gradient-edu/gradient-cli/internal/client/tokenstore"
	"github.com/gradient-edu/gradient-cli/internal/common"
	"github.com/gradient-edu/gradient-cli/internal/logging"
)

const refreshPath = "/auth/refresh-token"

// Client applies cross-cutting request policy to all backend calls.
// Construct it with New; the zero value is not usable.
type Client struct {
	baseURL string
	httpc   *http.Client
	tokens  tokenstore.Store
	log     logging.Logger

	// onSessionExpired fires after a failed refresh has cleared the token
	// store. The hosting application decides how to react.
	onSessionExpired func()
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpc = h }
}

// WithLogger sets the structured logger. Defaults to a no-op logger.
func WithLogger(l logging.Logger) Option {
	return func(c *Client) { c.log = l }
}

// WithTimeout sets the per-request timeout on the underlying HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpc.Timeout = d }
}

// WithSessionExpiredHook registers the callback fired when a token refresh
// fails and the session is irrecoverably lost.
func WithSessionExpiredHook(fn func()) Option {
	return func(c *Client) { c.onSessionExpired = fn }
}

// New builds a Client for the API rooted at baseURL (e.g.
// "http://localhost:8000/api/v1"). tokens must not be nil.
func New(baseURL string, tokens tokenstore.Store, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: 30 * time.Second},
		tokens:  tokens,
		log:     logging.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// pending is one logical request plus its one-shot retry flag. The body is
// buffered up front so a replay after refresh rebuilds an identical request.
type pending struct {
	method      string
	path        string
	query       url.Values
	body        []byte
	contentType string
	retried     bool
}

// GetJSON issues a GET and decodes the JSON response into out (which may be
// nil to discard the body).
func (c *Client) GetJSON(ctx context.Context, path string, query url.Values, out any) error {
	return c.call(ctx, &pending{method: http.MethodGet, path: path, query: query}, out)
}

// PostJSON issues a POST with a JSON body. in may be nil for an empty body.
func (c *Client) PostJSON(ctx context.Context, path string, in, out any) error {
	p, err := jsonPending(http.MethodPost, path, in)
	if err != nil {
		return err
	}
	return c.call(ctx, p, out)
}

// PutJSON issues a PUT with a JSON body.
func (c *Client) PutJSON(ctx context.Context, path string, in, out any) error {
	p, err := jsonPending(http.MethodPut, path, in)
	if err != nil {
		return err
	}
	return c.call(ctx, p, out)
}

// Delete issues a DELETE and decodes any JSON response into out.
func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.call(ctx, &pending{method: http.MethodDelete, path: path}, out)
}

// PostForm issues a POST with a URL-encoded form body. The login endpoint
// requires this encoding.
func (c *Client) PostForm(ctx context.Context, path string, form url.Values, out any) error {
	p := &pending{
		method:      http.MethodPost,
		path:        path,
		body:        []byte(form.Encode()),
		contentType: "application/x-www-form-urlencoded",
	}
	return c.call(ctx, p, out)
}

// Upload is a file attached to a multipart request.
type Upload struct {
	Field   string
	Name    string
	Content []byte
}

// PostMultipart issues a POST with a multipart form body built from fields
// and optional file uploads. Used by assignment and submission creation.
func (c *Client) PostMultipart(ctx context.Context, path string, fields map[string]string, files []Upload, out any) error {
	p, err := multipartPending(http.MethodPost, path, fields, files)
	if err != nil {
		return err
	}
	return c.call(ctx, p, out)
}

// PutMultipart issues a PUT with a multipart form body.
func (c *Client) PutMultipart(ctx context.Context, path string, fields map[string]string, files []Upload, out any) error {
	p, err := multipartPending(http.MethodPut, path, fields, files)
	if err != nil {
		return err
	}
	return c.call(ctx, p, out)
}

func jsonPending(method, path string, in any) (*pending, error) {
	p := &pending{method: method, path: path, contentType: "application/json"}
	if in != nil {
		body, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		p.body = body
	}
	return p, nil
}

// call executes a pending request and decodes a successful JSON response
// into out. Failures surface as *APIError for backend rejections or a
// wrapped transport error otherwise.
func (c *Client) call(ctx context.Context, p *pending, out any) error {
	body, err := c.do(ctx, p)
	if err != nil {
		return err
	}
	if out == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// do sends the request, applying the bearer token and, for non-guest
// endpoints, the single-refresh-and-replay policy on a 401.
func (c *Client) do(ctx context.Context, p *pending) ([]byte, error) {
	guest := isGuestPath(p.path)

	req, err := c.build(ctx, p, guest)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	body, readErr := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if readErr != nil {
		return nil, fmt.Errorf("read response: %w", readErr)
	}

	if resp.StatusCode == http.StatusUnauthorized && !guest && !p.retried {
		c.log.Debug(ctx, "auth rejected, attempting token refresh", "path", p.path)

		newToken, refreshErr := c.refresh(ctx)
		if refreshErr != nil {
			c.log.Warn(ctx, "token refresh failed", "err", refreshErr)
			_ = c.tokens.Clear(ctx)
			if c.onSessionExpired != nil {
				c.onSessionExpired()
			}
			// The caller gets the refresh error, not the original 401.
			return nil, fmt.Errorf("%w: %v", common.ErrSessionExpired, refreshErr)
		}

		if err := c.tokens.Set(ctx, newToken); err != nil {
			return nil, fmt.Errorf("store refreshed token: %w", err)
		}

		p.retried = true
		return c.do(ctx, p)
	}

	if resp.StatusCode >= 400 {
		return nil, newAPIError(resp.StatusCode, body)
	}
	return body, nil
}

func (c *Client) build(ctx context.Context, p *pending, guest bool) (*http.Request, error) {
	u := c.baseURL + p.path
	if len(p.query) > 0 {
		u += "?" + p.query.Encode()
	}

	var body io.Reader
	if len(p.body) > 0 {
		body = bytes.NewReader(p.body)
	}

	req, err := http.NewRequestWithContext(ctx, p.method, u, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	if p.contentType != "" {
		req.Header.Set("Content-Type", p.contentType)
	}
	req.Header.Set(common.RequestIDHeaderName, uuid.NewString())

	if !guest {
		token, err := c.tokens.Get(ctx)
		if err != nil {
			return nil, fmt.Errorf("read token: %w", err)
		}
		if token != "" {
			req.Header.Set(common.AuthHeaderName, common.BearerPrefix+token)
		}
	}
	return req, nil
}

// refresh exchanges the current (expiring) token for a fresh one. It goes
// through a plain request on purpose: the refresh call itself must never
// re-enter the retry flow.
func (c *Client) refresh(ctx context.Context) (string, error) {
	token, err := c.tokens.Get(ctx)
	if err != nil {
		return "", fmt.Errorf("read token: %w", err)
	}
	if token == "" {
		return "", common.ErrNotAuthenticated
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+refreshPath, nil)
	if err != nil {
		return "", fmt.Errorf("build refresh request: %w", err)
	}
	req.Header.Set(common.AuthHeaderName, common.BearerPrefix+token)
	req.Header.Set(common.RequestIDHeaderName, uuid.NewString())

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read refresh response: %w", err)
	}
	if resp.StatusCode >= 400 {
		return "", newAPIError(resp.StatusCode, body)
	}

	var tok struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(body, &tok); err != nil {
		return "", fmt.Errorf("decode refresh response: %w", err)
	}
	if tok.AccessToken == "" {
		return "", fmt.Errorf("refresh response contained no token")
	}
	return tok.AccessToken, nil
}

// isGuestPath reports whether the path contains a literal "guest" segment.
// Guest endpoints never receive a token and never trigger the refresh flow.
func isGuestPath(path string) bool {
	for _, seg := range strings.Split(path, "/") {
		if seg == "guest" {
			return true
		}
	}
	return false
}

// newAPIError extracts the backend's {"detail": ...} envelope if present;
// otherwise the whole body becomes the detail.
func newAPIError(status int, body []byte) *APIError {
	var envelope struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && len(envelope.Detail) > 0 {
		return &APIError{StatusCode: status, Detail: envelope.Detail}
	}
	return &APIError{StatusCode: status, Detail: body}
}
