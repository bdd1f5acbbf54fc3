package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/fivetwenty-io/rtr/internal/auth"
	"github.com/fivetwenty-io/rtr/internal/constants"
	"github.com/fivetwenty-io/rtr/pkg/rtr"
)

const contentTypeJSON = "application/json"

// Logger interface for HTTP client logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Client is the HTTP client used by every resource client.
type Client struct {
	baseURL         string
	authorizer      auth.Authorizer
	httpClient      *retryablehttp.Client
	logger          Logger
	debug           bool
	userAgent       string
	timeout         time.Duration
	limiter         *rate.Limiter
	transportLogger *log.Entry
	interceptors    *rtr.InterceptorChain
}

// Option configures the HTTP client.
type Option func(*Client)

// WithLogger sets the logger.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request and response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithRetryConfig sets the retry count and the backoff bounds.
func WithRetryConfig(retryMax int, retryWaitMin, retryWaitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = retryMax
		c.httpClient.RetryWaitMin = retryWaitMin
		c.httpClient.RetryWaitMax = retryWaitMax
	}
}

// WithTimeout bounds a single attempt.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithRateLimit paces outgoing attempts to requestsPerSecond.
func WithRateLimit(requestsPerSecond float64) Option {
	return func(c *Client) {
		if requestsPerSecond > 0 {
			c.limiter = rtr.NewRateLimiter(requestsPerSecond)
		}
	}
}

// WithTransportLogger logs every attempt, retries included, to entry.
func WithTransportLogger(entry *log.Entry) Option {
	return func(c *Client) {
		c.transportLogger = entry
	}
}

// WithCircuitBreaker rejects requests while breaker is open.
func WithCircuitBreaker(breaker *rtr.CircuitBreaker) Option {
	return func(c *Client) {
		c.interceptors.AddRequestInterceptor(rtr.CircuitBreakerRequestInterceptor(breaker))
		c.interceptors.AddResponseInterceptor(rtr.CircuitBreakerResponseInterceptor(breaker))
	}
}

// WithHeaders sends headers with every request.
func WithHeaders(headers map[string]string) Option {
	return func(c *Client) {
		c.interceptors.AddRequestInterceptor(rtr.HeaderInterceptor(headers))
	}
}

// WithInterceptorLogging logs every request and its outcome, error kind
// included, to logger.
func WithInterceptorLogging(logger rtr.Logger) Option {
	return func(c *Client) {
		c.interceptors.AddRequestInterceptor(rtr.LoggingInterceptor(logger))
		c.interceptors.AddResponseInterceptor(rtr.LoggingResponseInterceptor(logger))
	}
}

// WithMetrics records latency and failures of every request in collector.
func WithMetrics(collector *rtr.MetricsCollector) Option {
	return func(c *Client) {
		c.interceptors.AddRequestInterceptor(rtr.MetricsRequestInterceptor(collector))
		c.interceptors.AddResponseInterceptor(rtr.MetricsResponseInterceptor(collector))
	}
}

// WithCache serves and stores cacheable responses through manager.
func WithCache(manager *rtr.CacheManager, policy *rtr.CachingPolicy) Option {
	return func(c *Client) {
		rtr.ConfigureCache(c.interceptors, manager, policy)
	}
}

// NewClient creates a new HTTP client. A nil authorizer sends no
// Authorization header.
func NewClient(baseURL string, authorizer auth.Authorizer, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.Logger = nil
	retryClient.RetryMax = 0
	retryClient.RetryWaitMin = constants.DefaultRetryWaitMin
	retryClient.RetryWaitMax = constants.DefaultRetryWaitMax
	retryClient.CheckRetry = checkRetry
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	client := &Client{
		baseURL:      strings.TrimRight(baseURL, "/"),
		authorizer:   authorizer,
		httpClient:   retryClient,
		userAgent:    constants.DefaultUserAgent,
		timeout:      constants.DefaultHTTPTimeout,
		interceptors: rtr.NewInterceptorChain(),
	}

	for _, opt := range opts {
		opt(client)
	}

	retryClient.HTTPClient = &http.Client{
		Transport: newTransport(client.limiter, client.transportLogger),
		Timeout:   client.timeout,
	}

	return client
}

// BaseURL returns the API root without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Request represents an HTTP request. RawQuery is sent as is and takes
// precedence over Query on the wire; Query still keys the cache.
type Request struct {
	Method      string
	Path        string
	Query       url.Values
	RawQuery    string
	Body        interface{}
	RawBody     []byte
	ContentType string
	Headers     map[string]string
}

// Response represents an HTTP response.
type Response struct {
	StatusCode int
	Body       []byte
	Headers    http.Header
}

// Do executes an HTTP request. Responses with a status of 400 or above are
// returned together with the classified error.
//
//nolint:funlen,cyclop // Single request pipeline
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	body := req.RawBody
	contentType := req.ContentType

	if body == nil && req.Body != nil {
		data, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}

		body = data
		contentType = contentTypeJSON
	}

	intercepted := &rtr.Request{
		Method:   req.Method,
		Path:     req.Path,
		Query:    req.Query,
		Headers:  make(http.Header),
		Body:     body,
		Metadata: make(map[string]interface{}),
	}

	for key, value := range req.Headers {
		intercepted.Headers.Set(key, value)
	}

	if c.authorizer != nil {
		authorization, err := c.authorizer.Authorization(ctx)
		if err != nil {
			return nil, fmt.Errorf("getting authorization: %w", err)
		}

		intercepted.Headers.Set("Authorization", authorization)
	}

	err := c.interceptors.ExecuteRequestInterceptors(ctx, intercepted)
	if err != nil {
		return nil, err
	}

	if cached, ok := intercepted.Metadata[rtr.MetadataCachedResponse].(*rtr.Response); ok {
		_ = c.interceptors.ExecuteResponseInterceptors(ctx, intercepted, cached)

		return &Response{StatusCode: cached.StatusCode, Body: cached.Body, Headers: cached.Headers}, nil
	}

	httpReq, err := c.newRequest(ctx, req, intercepted, contentType)
	if err != nil {
		_ = c.interceptors.ExecuteResponseInterceptors(ctx, intercepted, &rtr.Response{Error: err})

		return nil, err
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    httpReq.URL.String(),
		})
	}

	start := time.Now()

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		_ = c.interceptors.ExecuteResponseInterceptors(ctx, intercepted, &rtr.Response{Error: err})

		return nil, fmt.Errorf("executing request: %w", err)
	}

	defer func() { _ = httpResp.Body.Close() }()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		_ = c.interceptors.ExecuteResponseInterceptors(ctx, intercepted, &rtr.Response{Error: err})

		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"status":   httpResp.StatusCode,
			"duration": time.Since(start).String(),
		})
	}

	result := &rtr.Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       respBody,
	}

	if httpResp.StatusCode >= http.StatusBadRequest {
		result.Error = rtr.ClassifyError(httpResp.StatusCode, httpResp.Header, respBody)

		if httpResp.StatusCode == http.StatusUnauthorized {
			if invalidator, ok := c.authorizer.(auth.Invalidator); ok {
				invalidator.Invalidate()
			}
		}
	}

	err = c.interceptors.ExecuteResponseInterceptors(ctx, intercepted, result)
	if err != nil && result.Error == nil {
		return nil, err
	}

	response := &Response{
		StatusCode: result.StatusCode,
		Body:       result.Body,
		Headers:    result.Headers,
	}

	if result.Error != nil {
		return response, result.Error
	}

	return response, nil
}

func (c *Client) newRequest(ctx context.Context, req *Request, intercepted *rtr.Request, contentType string) (*retryablehttp.Request, error) {
	path := intercepted.Path
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	target, err := url.Parse(c.baseURL + path)
	if err != nil {
		return nil, fmt.Errorf("parsing request URL: %w", err)
	}

	switch {
	case req.RawQuery != "":
		target.RawQuery = req.RawQuery
	case len(intercepted.Query) > 0:
		target.RawQuery = intercepted.Query.Encode()
	}

	var body interface{}
	if len(intercepted.Body) > 0 {
		body = intercepted.Body
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, intercepted.Method, target.String(), body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("Accept", contentTypeJSON)
	httpReq.Header.Set("User-Agent", c.userAgent)

	if body != nil && contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}

	for key, values := range intercepted.Headers {
		httpReq.Header[key] = values
	}

	return httpReq, nil
}

// checkRetry retries transport failures, 429 and 5xx except 501. Other
// client errors are final.
func checkRetry(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}

	if err != nil {
		return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		return true, nil
	}

	if resp.StatusCode >= http.StatusInternalServerError && resp.StatusCode != http.StatusNotImplemented {
		return true, nil
	}

	return false, nil
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodGet,
		Path:   path,
		Query:  query,
	})
}

// GetWithParams performs a GET request whose query keeps the insertion order
// and repeated keys of params.
func (c *Client) GetWithParams(ctx context.Context, path string, params *rtr.Params) (*Response, error) {
	if params == nil || params.Len() == 0 {
		return c.Get(ctx, path, nil)
	}

	return c.Do(ctx, &Request{
		Method:   http.MethodGet,
		Path:     path,
		Query:    params.Values(),
		RawQuery: params.Encode(),
	})
}

// Post performs a POST request.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodPost,
		Path:   path,
		Body:   body,
	})
}

// PostWithQuery performs a POST request with query parameters.
func (c *Client) PostWithQuery(ctx context.Context, path string, query url.Values, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodPost,
		Path:   path,
		Query:  query,
		Body:   body,
	})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodDelete,
		Path:   path,
	})
}

// DeleteWithBody performs a DELETE request carrying a JSON body.
func (c *Client) DeleteWithBody(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodDelete,
		Path:   path,
		Body:   body,
	})
}

// FilePart is a file attached to a multipart request.
type FilePart struct {
	FieldName   string
	FileName    string
	ContentType string
	Data        []byte
}

// ErrEmptyFieldName is returned for a file part without a field name.
var ErrEmptyFieldName = errors.New("multipart file part has no field name")

// PostMultipart posts command as a JSON part named "command" followed by
// files.
func (c *Client) PostMultipart(ctx context.Context, path string, command interface{}, files ...FilePart) (*Response, error) {
	var buf bytes.Buffer

	writer := multipart.NewWriter(&buf)

	commandJSON, err := json.Marshal(command)
	if err != nil {
		return nil, fmt.Errorf("marshaling command: %w", err)
	}

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="command"; filename="blob"`)
	header.Set("Content-Type", contentTypeJSON)

	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, fmt.Errorf("creating command part: %w", err)
	}

	_, err = part.Write(commandJSON)
	if err != nil {
		return nil, fmt.Errorf("writing command part: %w", err)
	}

	for _, file := range files {
		err = writeFilePart(writer, file)
		if err != nil {
			return nil, err
		}
	}

	err = writer.Close()
	if err != nil {
		return nil, fmt.Errorf("closing multipart body: %w", err)
	}

	return c.Do(ctx, &Request{
		Method:      http.MethodPost,
		Path:        path,
		RawBody:     buf.Bytes(),
		ContentType: writer.FormDataContentType(),
	})
}

func writeFilePart(writer *multipart.Writer, file FilePart) error {
	if file.FieldName == "" {
		return ErrEmptyFieldName
	}

	fileName := file.FileName
	if fileName == "" {
		fileName = file.FieldName
	}

	contentType := file.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, file.FieldName, fileName))
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	if err != nil {
		return fmt.Errorf("creating part %s: %w", file.FieldName, err)
	}

	_, err = part.Write(file.Data)
	if err != nil {
		return fmt.Errorf("writing part %s: %w", file.FieldName, err)
	}

	return nil
}
