package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/viant/policyadmin/client/auth"
	"github.com/viant/policyadmin/client/auth/store"
	"go.uber.org/zap"
)

const (
	DefaultBaseURL = "http://localhost:8000/api"
	DefaultTimeout = 30 * time.Second
	// DefaultProbePath is requested after login to detect the accepted header format.
	DefaultProbePath = "/branches/"
)

// Client dispatches API requests on behalf of the stored session.
type Client struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
	jar        http.CookieJar
	store      store.Store
	logger     *zap.Logger
	probePath  string
}

// New creates a client
func New(options ...Option) *Client {
	ret := &Client{
		baseURL:    DefaultBaseURL,
		timeout:    DefaultTimeout,
		httpClient: http.DefaultClient,
		store:      store.NewMemoryStore(),
		logger:     zap.NewNop(),
		probePath:  DefaultProbePath,
	}
	for _, opt := range options {
		opt(ret)
	}
	if ret.jar != nil {
		httpClient := *ret.httpClient
		httpClient.Jar = ret.jar
		ret.httpClient = &httpClient
	}
	return ret
}

// Store returns the session store
func (c *Client) Store() store.Store {
	return c.store
}

// BaseURL returns base URL
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Close releases the session store when it holds resources
func (c *Client) Close() error {
	if closer, ok := c.store.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// Send dispatches request with data decoded as generic JSON value.
func (c *Client) Send(ctx context.Context, request *Request) *Envelope[interface{}] {
	return Send[interface{}](ctx, c, request)
}

// Send dispatches request and decodes a successful body into T.
func Send[T any](ctx context.Context, c *Client, request *Request) *Envelope[T] {
	if request == nil {
		request = &Request{}
	}
	URL := c.resolve(request.Path)
	logger := c.logger.With(
		zap.String("requestId", uuid.NewString()),
		zap.String("method", request.method()),
		zap.String("url", URL))
	if request.err != nil {
		logger.Error("invalid request payload", zap.Error(request.err))
		return failure[T](0, request.err)
	}
	if request.Form != nil {
		logger.Debug("request payload", zap.String("body", "[form]"))
	} else if request.Body != nil {
		logger.Debug("request payload", zap.Int("bytes", len(request.Body)))
	}

	credential, err := auth.Load(ctx, c.store)
	if err != nil {
		logger.Warn("failed to load credential", zap.Error(err))
		credential = nil
	}
	authorization := ""
	if credential != nil {
		authorization = credential.Header()
		logger = logger.With(zap.String("authFormat", string(credential.Format)))
		logger.Debug("using credential", zap.String("token", credential.Masked()))
	}

	response, cancel, err := c.dispatchWithTimeout(ctx, request, URL, authorization)
	if err != nil {
		logger.Error("api request failed", zap.Error(err))
		return networkFailure[T](err)
	}
	defer cancel()
	defer response.Body.Close()
	logger.Debug("api response", zap.Int("status", response.StatusCode))

	if response.StatusCode == http.StatusUnauthorized && credential != nil {
		logger.Info("response was unauthorized, trying alternative auth formats")
		if probed := c.probe(ctx, request, URL, credential, logger); probed != nil {
			defer probed.Body.Close()
			return normalize[T](probed)
		}
	}
	return normalize[T](response)
}

// dispatchWithTimeout arms a cancellation timer that only covers waiting for the response headers;
// the returned cancel must be called once the body was consumed.
func (c *Client) dispatchWithTimeout(ctx context.Context, request *Request, URL, authorization string) (*http.Response, context.CancelFunc, error) {
	ctx, cancel := context.WithCancel(ctx)
	var timer *time.Timer
	var expired atomic.Bool
	if c.timeout > 0 {
		timer = time.AfterFunc(c.timeout, func() {
			expired.Store(true)
			cancel()
		})
	}
	response, err := c.do(ctx, request, URL, authorization)
	if timer != nil && !timer.Stop() {
		// the timer fired, the body would be read from a cancelled context
		expired.Store(true)
		if err == nil {
			discard(response)
			err = context.DeadlineExceeded
		}
	}
	if err != nil {
		cancel()
		if expired.Load() {
			err = fmt.Errorf("request timed out after %v: %w", c.timeout, err)
		}
		return nil, nil, err
	}
	return response, cancel, nil
}

// probe retries a rejected request with the alternative header formats; probes are not time bounded.
// It returns the first non 401 response after remembering its format, or nil.
func (c *Client) probe(ctx context.Context, request *Request, URL string, credential *auth.Credential, logger *zap.Logger) *http.Response {
	for _, format := range auth.Fallback(credential.Format) {
		response, err := c.do(ctx, request, URL, format.Header(credential))
		if err != nil {
			logger.Warn("auth format probe failed", zap.String("format", string(format)), zap.Error(err))
			continue
		}
		logger.Debug("auth format probe", zap.String("format", string(format)), zap.Int("status", response.StatusCode))
		if response.StatusCode == http.StatusUnauthorized {
			discard(response)
			continue
		}
		if err = auth.SaveFormat(ctx, c.store, format); err != nil {
			logger.Warn("failed to remember auth format", zap.String("format", string(format)), zap.Error(err))
		} else {
			logger.Info("saved working auth format", zap.String("format", string(format)))
		}
		return response
	}
	return nil
}

func (c *Client) do(ctx context.Context, request *Request, URL, authorization string) (*http.Response, error) {
	httpRequest, err := c.newHTTPRequest(ctx, request, URL, authorization)
	if err != nil {
		return nil, err
	}
	return c.httpClient.Do(httpRequest)
}

// newHTTPRequest applies JSON content type unless the payload is a form, then the authorization header, then caller headers.
func (c *Client) newHTTPRequest(ctx context.Context, request *Request, URL, authorization string) (*http.Request, error) {
	body, contentType, err := request.payload()
	if err != nil {
		return nil, fmt.Errorf("failed to encode payload: %w", err)
	}
	httpRequest, err := http.NewRequestWithContext(ctx, request.method(), URL, body)
	if err != nil {
		return nil, err
	}
	if contentType == "" {
		contentType = ContentTypeJSON
	}
	httpRequest.Header.Set(HeaderContentType, contentType)
	if authorization != "" {
		httpRequest.Header.Set(HeaderAuthorization, authorization)
	}
	for key, values := range request.Header {
		httpRequest.Header.Del(key)
		for _, value := range values {
			httpRequest.Header.Add(key, value)
		}
	}
	return httpRequest, nil
}

// resolve keeps absolute URLs, relative paths are concatenated to the base URL.
func (c *Client) resolve(path string) string {
	if strings.HasPrefix(path, "http") {
		return path
	}
	return c.baseURL + path
}

func discard(response *http.Response) {
	_, _ = io.Copy(io.Discard, response.Body)
	_ = response.Body.Close()
}
