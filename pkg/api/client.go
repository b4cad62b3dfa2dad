// Package api is the HTTP client for the persistence backend. All state
// lives server-side; this package only moves JSON and normalizes errors.
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
	"go.uber.org/zap"
)

// DefaultBaseURL matches the backend's development address.
const DefaultBaseURL = "http://localhost:3333"

const defaultTimeout = 30 * time.Second

// TokenSource yields the bearer token attached to each request. An empty
// token sends the request unauthenticated, which the login call relies on.
type TokenSource interface {
	Token() string
}

// TokenFunc adapts a function into a TokenSource.
type TokenFunc func() string

func (fn TokenFunc) Token() string { return fn() }

// Client talks to the backend. Construct with NewClient; the zero value is
// not usable.
type Client struct {
	base           string
	http           *http.Client
	tokens         TokenSource
	onUnauthorized func()
	log            *zap.SugaredLogger
}

// Option mutates a Client during construction.
type Option func(*Client)

// WithHTTPClient swaps the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTokenSource wires the bearer-token provider.
func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) { c.tokens = ts }
}

// WithOnUnauthorized registers the hook fired on any 401 response, before
// ErrUnauthorized is returned. Typically it clears the session.
func WithOnUnauthorized(fn func()) Option {
	return func(c *Client) { c.onUnauthorized = fn }
}

// WithLogger wires a sugared zap logger.
func WithLogger(log *zap.SugaredLogger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// WithTimeout sets the per-request timeout of the default http.Client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// NewClient builds a client against baseURL, falling back to DefaultBaseURL
// when blank.
func NewClient(baseURL string, fns ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		base: strings.TrimRight(baseURL, "/"),
		http: &http.Client{Timeout: defaultTimeout},
		log:  zap.NewNop().Sugar(),
	}
	for _, fn := range fns {
		fn(c)
	}
	return c
}

// do runs one JSON round trip. A nil body sends no payload; a nil out
// discards the response body. Non-2xx responses come back as StatusError,
// with 401 short-circuited to ErrUnauthorized after the hook runs.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := c.base + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var payload io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		payload = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, payload)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	res, err := c.http.Do(req)
	if err != nil {
		c.log.Errorw("request failed", "method", method, "path", path, "error", err)
		return err
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusUnauthorized {
		c.log.Warnw("unauthorized response", "method", method, "path", path)
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return ErrUnauthorized
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		c.log.Errorw("backend error", "method", method, "path", path, "status", res.StatusCode)
		return StatusError{Code: res.StatusCode, Err: fmt.Errorf("%s %s: %s", method, path, res.Status)}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, res.Body)
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

type loginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login exchanges credentials for a JWT. Storing the token is the caller's
// concern (see the auth package).
func (c *Client) Login(ctx context.Context, email, senha string) (string, error) {
	var res loginResponse
	if err := c.do(ctx, http.MethodPost, "/login", nil, loginRequest{Email: email, Senha: senha}, &res); err != nil {
		return "", err
	}
	if res.Token == "" {
		return "", StatusError{Code: http.StatusUnauthorized, Err: fmt.Errorf("login: backend returned no token")}
	}
	return res.Token, nil
}
