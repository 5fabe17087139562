package client

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrNotFound is returned when an upstream answers 404.
var ErrNotFound = errors.New("resource not found")

// StatusError is returned for any other non-200 upstream answer.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("request to %s failed with status %d", e.URL, e.StatusCode)
}

// Options configures one upstream API client.
type Options struct {
	BaseURL string
	// Timeout bounds a single request when the context carries no deadline.
	Timeout time.Duration
	// Limiter throttles outgoing requests; nil means unlimited.
	Limiter *rate.Limiter
	// Headers are sent with every request, e.g. API keys.
	Headers map[string]string
}

// restClient performs rate limited GET requests and decodes JSON bodies.
type restClient struct {
	client  *fasthttp.Client
	baseURL string
	timeout time.Duration
	limiter *rate.Limiter
	headers map[string]string
	logger  *zap.Logger
}

func newRestClient(opts Options, logger *zap.Logger) *restClient {
	limiter := opts.Limiter
	if limiter == nil {
		limiter = rate.NewLimiter(rate.Inf, 0)
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &restClient{
		client:  &fasthttp.Client{},
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		timeout: timeout,
		limiter: limiter,
		headers: opts.Headers,
		logger:  logger,
	}
}

// getJSON requests baseURL+path with the query and decodes the 200 body into out.
func (c *restClient) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	requestURL := c.baseURL + path
	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter wait for %s: %w", requestURL, err)
	}

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	req.SetRequestURI(requestURL)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Accept", "application/json")
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	c.logger.Debug("Requesting upstream", zap.String("url", requestURL))

	if deadline, ok := ctx.Deadline(); ok {
		if err := c.client.DoDeadline(req, resp, deadline); err != nil {
			return fmt.Errorf("failed to execute request to %s: %w", requestURL, err)
		}
	} else {
		if err := c.client.DoTimeout(req, resp, c.timeout); err != nil {
			return fmt.Errorf("failed to execute request to %s with default timeout: %w", requestURL, err)
		}
	}

	switch status := resp.StatusCode(); {
	case status == fasthttp.StatusNotFound:
		return fmt.Errorf("%s: %w", requestURL, ErrNotFound)
	case status != fasthttp.StatusOK:
		c.logger.Debug("Upstream answered with an error status",
			zap.String("url", requestURL),
			zap.Int("statusCode", status),
			zap.ByteString("responseBody", resp.Body()))
		return &StatusError{URL: requestURL, StatusCode: status}
	}

	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("failed to unmarshal response from %s: %w", requestURL, err)
	}
	return nil
}
