package rtr_test

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/rtr/pkg/rtr"
)

type recordingLogger struct {
	mu      sync.Mutex
	entries []string
	fields  []map[string]interface{}
}

func (l *recordingLogger) add(level, msg string, fields map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append(l.entries, level+":"+msg)
	l.fields = append(l.fields, fields)
}

func (l *recordingLogger) Debug(msg string, fields map[string]interface{}) { l.add("debug", msg, fields) }
func (l *recordingLogger) Info(msg string, fields map[string]interface{})  { l.add("info", msg, fields) }
func (l *recordingLogger) Warn(msg string, fields map[string]interface{})  { l.add("warn", msg, fields) }
func (l *recordingLogger) Error(msg string, fields map[string]interface{}) { l.add("error", msg, fields) }

func TestInterceptorChain(t *testing.T) {
	t.Parallel()

	chain := rtr.NewInterceptorChain()

	var order []string

	chain.AddRequestInterceptor(func(ctx context.Context, req *rtr.Request) error {
		order = append(order, "first")

		return nil
	})
	chain.AddRequestInterceptor(func(ctx context.Context, req *rtr.Request) error {
		order = append(order, "second")

		return nil
	})
	chain.AddResponseInterceptor(func(ctx context.Context, req *rtr.Request, resp *rtr.Response) error {
		order = append(order, "response")

		return nil
	})

	assert.Equal(t, 3, chain.Len())

	req := &rtr.Request{Method: http.MethodGet, Path: "/providers/"}

	require.NoError(t, chain.ExecuteRequestInterceptors(context.Background(), req))
	require.NoError(t, chain.ExecuteResponseInterceptors(context.Background(), req, &rtr.Response{StatusCode: 200}))
	assert.Equal(t, []string{"first", "second", "response"}, order)
}

func TestInterceptorChain_StopsOnError(t *testing.T) {
	t.Parallel()

	chain := rtr.NewInterceptorChain()
	boom := errors.New("boom")
	called := false

	chain.AddRequestInterceptor(func(ctx context.Context, req *rtr.Request) error {
		return boom
	})
	chain.AddRequestInterceptor(func(ctx context.Context, req *rtr.Request) error {
		called = true

		return nil
	})

	err := chain.ExecuteRequestInterceptors(context.Background(), &rtr.Request{})
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "request interceptor failed")
	assert.False(t, called)
}

func TestLoggingInterceptors(t *testing.T) {
	t.Parallel()

	logger := &recordingLogger{}
	ctx := context.Background()
	req := &rtr.Request{Method: http.MethodPost, Path: "/domains/example.nl/renew"}

	require.NoError(t, rtr.LoggingInterceptor(logger)(ctx, req))

	respond := rtr.LoggingResponseInterceptor(logger)
	require.NoError(t, respond(ctx, req, &rtr.Response{StatusCode: 200}))
	require.NoError(t, respond(ctx, req, &rtr.Response{
		StatusCode: 400,
		Error:      &rtr.APIError{Kind: rtr.KindInsufficientCredit, StatusCode: 400},
	}))

	assert.Equal(t, []string{"debug:API Request", "debug:API Response", "error:API Response Error"}, logger.entries)
	assert.Equal(t, "InsufficientCreditException", logger.fields[2]["kind"])
	assert.Equal(t, 400, logger.fields[2]["status_code"])
}

func TestHeaderInterceptor(t *testing.T) {
	t.Parallel()

	req := &rtr.Request{}

	require.NoError(t, rtr.HeaderInterceptor(map[string]string{"Accept-Language": "nl"})(context.Background(), req))
	assert.Equal(t, "nl", req.Headers.Get("Accept-Language"))
}

func TestNewRateLimiter(t *testing.T) {
	t.Parallel()

	limiter := rtr.NewRateLimiter(2)

	assert.Equal(t, 1, limiter.Burst())
	assert.True(t, limiter.Allow())
	assert.False(t, limiter.Allow())
}

func TestMetricsInterceptors(t *testing.T) {
	t.Parallel()

	collector := rtr.NewMetricsCollector()
	ctx := context.Background()

	var changes int

	collector.SetOnChange(func(endpoint string, metrics rtr.Metrics) {
		changes++
	})

	before := rtr.MetricsRequestInterceptor(collector)
	after := rtr.MetricsResponseInterceptor(collector)

	for _, status := range []int{200, 503} {
		req := &rtr.Request{Method: http.MethodGet, Path: "/providers/"}

		require.NoError(t, before(ctx, req))
		time.Sleep(time.Millisecond)
		require.NoError(t, after(ctx, req, &rtr.Response{StatusCode: status}))
	}

	metrics := collector.GetMetrics("GET /providers/")
	require.NotNil(t, metrics)
	assert.Equal(t, int64(2), metrics.TotalRequests)
	assert.Equal(t, int64(1), metrics.TotalErrors)
	assert.Positive(t, metrics.AverageLatency)
	assert.Equal(t, 2, changes)

	assert.Nil(t, collector.GetMetrics("GET /domains/"))
}

func TestCircuitBreakerInterceptors(t *testing.T) {
	t.Parallel()

	breaker := rtr.NewCircuitBreaker(&rtr.CircuitBreakerConfig{
		Name:         "test",
		MaxRequests:  1,
		Interval:     time.Minute,
		Timeout:      time.Minute,
		MinRequests:  3,
		FailureRatio: 0.5,
	})

	before := rtr.CircuitBreakerRequestInterceptor(breaker)
	after := rtr.CircuitBreakerResponseInterceptor(breaker)
	ctx := context.Background()

	// client errors do not count as failures
	req := &rtr.Request{}
	require.NoError(t, before(ctx, req))
	require.NoError(t, after(ctx, req, &rtr.Response{StatusCode: 404}))
	assert.Equal(t, "closed", breaker.State())

	for _, resp := range []*rtr.Response{{StatusCode: 502}, {Error: errors.New("connection refused")}} {
		req := &rtr.Request{}
		require.NoError(t, before(ctx, req))
		require.NoError(t, after(ctx, req, resp))
	}

	assert.Equal(t, "open", breaker.State())

	err := before(ctx, &rtr.Request{})
	require.ErrorIs(t, err, rtr.ErrCircuitBreakerOpen)
}

func TestDefaultCircuitBreakerConfig(t *testing.T) {
	t.Parallel()

	config := rtr.DefaultCircuitBreakerConfig()

	assert.Equal(t, "rtr", config.Name)
	assert.Positive(t, config.MinRequests)
	assert.Equal(t, "closed", rtr.NewCircuitBreaker(nil).State())
}
