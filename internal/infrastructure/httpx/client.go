package httpx

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/hashicorp/go-retryablehttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/MayankBansal12/evol-kiosk/internal/infrastructure/logging"
	"github.com/MayankBansal12/evol-kiosk/internal/infrastructure/resilience"
)

// Client wraps resty with a retrying transport, rate limiting, and a
// circuit breaker. One Client is created per external collaborator so
// a misbehaving endpoint only trips its own breaker.
type Client struct {
	Resty   *resty.Client
	Limiter *rate.Limiter
	Breaker *resilience.Breaker
}

// Options configures a collaborator client
type Options struct {
	Name    string
	Timeout time.Duration
	Logger  *logging.Logger
}

// New creates a production-ready HTTP client for one collaborator
func New(opts Options) *Client {
	if opts.Timeout == 0 {
		opts.Timeout = 30 * time.Second
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}

	// Retrying transport underneath resty
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 3
	retryClient.RetryWaitMin = 1 * time.Second
	retryClient.RetryWaitMax = 30 * time.Second
	retryClient.Logger = nil

	restyClient := resty.New()
	restyClient.
		SetTimeout(opts.Timeout).
		SetHeader("User-Agent", "EvolKiosk/1.0")
	restyClient.SetTransport(retryClient.HTTPClient.Transport)

	breaker := resilience.New(opts.Name, resilience.Settings{
		MaxRequests: 5,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts resilience.Counts) bool {
			// Hosted AI endpoints vary in reliability; trip on 10+
			// consecutive failures or >70% failure rate over 20+ calls
			return counts.ConsecutiveFailures >= 10 ||
				(counts.Requests >= 20 && float64(counts.TotalFailures)/float64(counts.Requests) > 0.7)
		},
		OnStateChange: func(name string, from, to resilience.State) {
			logger.Warn("Collaborator breaker state changed",
				zap.String("collaborator", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	})

	return &Client{
		Resty:   restyClient,
		Limiter: rate.NewLimiter(rate.Inf, 0),
		Breaker: breaker,
	}
}

// Execute runs one request through the rate limiter and breaker.
// Non-2xx responses count as breaker failures.
func (c *Client) Execute(ctx context.Context, call func() (*resty.Response, error)) (*resty.Response, error) {
	if err := c.Limiter.Wait(ctx); err != nil {
		return nil, err
	}

	result, err := c.Breaker.Execute(func() (interface{}, error) {
		resp, callErr := call()
		if callErr != nil {
			return nil, callErr
		}
		if resp.IsError() {
			return resp, fmt.Errorf("endpoint returned status %d", resp.StatusCode())
		}
		return resp, nil
	})

	resp, _ := result.(*resty.Response)
	return resp, err
}

// SetRateLimit caps outbound requests per second
func (c *Client) SetRateLimit(rps float64, burst int) {
	c.Limiter = rate.NewLimiter(rate.Limit(rps), burst)
}
