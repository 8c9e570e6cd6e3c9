package api

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"sync"
	"time"

	http "github.com/bogdanfinn/fhttp"
	tls_client "github.com/bogdanfinn/tls-client"
	"github.com/bogdanfinn/tls-client/profiles"
	"github.com/rs/zerolog"

	apierrors "github.com/diogo/gompei/internal/errors"
	"github.com/diogo/gompei/internal/models"
)

// Answerer maps a question to an answer. It is the only thing the
// conversation widget needs from the service.
type Answerer interface {
	Ask(ctx context.Context, question string) (models.Answer, error)
}

// AnswerClientInterface is the full client surface used by the commands
type AnswerClientInterface interface {
	Answerer
	Ping(ctx context.Context) (*models.HealthStatus, error)
	Endpoint() string
	Close()
	IsClosed() bool
}

var (
	_ AnswerClientInterface = (*Client)(nil)
	_ AnswerClientInterface = (*MockAnswerer)(nil)
)

// Client talks to the answering service over HTTP
type Client struct {
	httpClient tls_client.HttpClient
	endpoint   string
	timeout    time.Duration
	logger     zerolog.Logger
	mu         sync.RWMutex
	closed     bool
}

// ClientOption is a function that configures the client
type ClientOption func(*Client)

// WithEndpoint sets the chat endpoint URL
func WithEndpoint(endpoint string) ClientOption {
	return func(c *Client) {
		c.endpoint = endpoint
	}
}

// WithTimeout bounds each request. Zero disables the timeout.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithLogger sets the debug logger
func WithLogger(logger zerolog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(httpClient tls_client.HttpClient) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a new Client
func NewClient(opts ...ClientOption) (*Client, error) {
	client := &Client{
		endpoint: models.DefaultEndpoint,
		logger:   zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(client)
	}

	u, err := url.Parse(client.endpoint)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid endpoint: %q", client.endpoint)
	}

	if client.httpClient == nil {
		options := []tls_client.HttpClientOption{
			tls_client.WithTimeoutSeconds(int(client.timeout / time.Second)),
			tls_client.WithClientProfile(profiles.Chrome_120),
		}

		httpClient, err := tls_client.NewHttpClient(tls_client.NewNoopLogger(), options...)
		if err != nil {
			return nil, fmt.Errorf("failed to create HTTP client: %w", err)
		}
		client.httpClient = httpClient
	}

	return client, nil
}

// Endpoint returns the chat endpoint URL
func (c *Client) Endpoint() string {
	return c.endpoint
}

// GetHTTPClient returns the underlying HTTP client
func (c *Client) GetHTTPClient() tls_client.HttpClient {
	return c.httpClient
}

// Close releases idle connections. Requests made after Close fail.
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.closed = true
	c.httpClient.CloseIdleConnections()
}

// IsClosed returns whether the client is closed
func (c *Client) IsClosed() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.closed
}

// rootURL returns the service root, i.e. the endpoint with its last path
// segment removed: http://host:8000/chat -> http://host:8000/
func (c *Client) rootURL() string {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return c.endpoint
	}
	return u.ResolveReference(&url.URL{Path: "./"}).String()
}

// requestContext applies the client timeout to ctx
func (c *Client) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	if c.timeout > 0 {
		return context.WithTimeout(ctx, c.timeout)
	}
	return context.WithCancel(ctx)
}

// do sends req and returns the body of a 2xx reply
func (c *Client) do(req *http.Request, operation string) ([]byte, error) {
	endpoint := req.URL.String()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apierrors.NewNetworkError(operation, endpoint, err)
	}
	defer func() {
		if resp != nil && resp.Body != nil {
			_ = resp.Body.Close()
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		errorBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		message := operation + " failed"
		if detail := errorDetail(string(errorBody)); detail != "" {
			message += ": " + detail
		}
		return nil, apierrors.NewAPIErrorWithBody(resp.StatusCode, endpoint, message, string(errorBody))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, apierrors.NewNetworkError(operation, endpoint, err)
	}
	return body, nil
}
