package client

import (
	"net/http"
	"time"

	"github.com/viant/policyadmin/client/auth/store"
	"go.uber.org/zap"
)

// Option represents option
type Option func(c *Client)

// WithBaseURL sets the address relative paths are appended to
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithTimeout bounds the initial dispatch of each request, zero disables the bound.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithHTTPClient sets http client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithCookieJar attaches a cookie jar, the dashboard relies on session cookies with some deployments.
func WithCookieJar(jar http.CookieJar) Option {
	return func(c *Client) {
		c.jar = jar
	}
}

// WithStore sets session store
func WithStore(store store.Store) Option {
	return func(c *Client) {
		c.store = store
	}
}

// WithLogger sets logger
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithProbePath sets the path used to detect the header format right after login.
func WithProbePath(path string) Option {
	return func(c *Client) {
		c.probePath = path
	}
}
