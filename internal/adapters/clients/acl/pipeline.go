package acl

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/quotedroplet/droplet/internal/domain"
	"github.com/quotedroplet/droplet/internal/platform/logging"
	"github.com/quotedroplet/droplet/internal/platform/telemetry"
)

const (
	contentTypeJSON = "application/json"

	// maxResponseBytes bounds how much of a response body is read.
	maxResponseBytes = 4 << 20

	// maxLoggedBodyBytes bounds the error body excerpt written to debug logs.
	maxLoggedBodyBytes = 256
)

// Transport sends prepared requests to the quote API origin.
// *clients.Client implements it.
type Transport interface {
	Do(ctx context.Context, req *http.Request) (*http.Response, error)
	BaseURL() string
}

// Request describes one quote API call.
type Request struct {
	// Operation names the call in logs, metrics and errors, e.g. "RandomQuote".
	Operation string

	// Method is the HTTP method. Only POST and PUT carry a body.
	Method string

	// Path is resolved against the transport's base URL, e.g. "/quotes/7/like".
	Path string

	// Query holds raw parameter values. They are percent-encoded here; callers must not pre-encode.
	Query url.Values

	// Body is serialized to JSON for POST and PUT and ignored otherwise.
	Body any

	// Header holds extra headers. Content-Type is always application/json.
	Header http.Header
}

// Pipeline runs requests through the shared compose, send, classify and decode steps.
// It holds no per-request state and is safe for concurrent use.
type Pipeline struct {
	transport Transport
	logger    *slog.Logger
	metrics   *telemetry.QuoteMetrics
}

// NewPipeline creates a pipeline over transport. Logger and metrics may be nil.
func NewPipeline(transport Transport, logger *slog.Logger, metrics *telemetry.QuoteMetrics) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{transport: transport, logger: logger, metrics: metrics}
}

// Send executes req and decodes a successful response body into T.
// Exactly one of the value and the error is meaningful:
//   - the URL cannot be composed: domain.InvalidURLError
//   - the body cannot be serialized: domain.JSONParsingError, nothing is sent
//   - no response (transport failure, cancellation, open circuit): domain.NetworkError
//   - status outside 200-299: domain.HTTPError
//   - empty body: domain.NoDataError
//   - body does not decode into T: domain.DecodingError
func Send[T any](ctx context.Context, p *Pipeline, req Request) (T, error) {
	var zero T

	p.metrics.ObserveRequest(req.Operation)

	body, err := p.roundTrip(ctx, req)
	if err != nil {
		return zero, p.fail(ctx, req, err)
	}

	var out T
	if err := json.Unmarshal(body, &out); err != nil {
		return zero, p.fail(ctx, req, domain.NewDecodingError(req.Operation, err))
	}

	return out, nil
}

// roundTrip performs steps one to six and returns the raw 2xx body.
func (p *Pipeline) roundTrip(ctx context.Context, req Request) ([]byte, error) {
	target, err := p.resolve(req.Path, req.Query)
	if err != nil {
		return nil, err
	}

	payload, err := encodeBody(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target, payload)
	if err != nil {
		return nil, domain.NewInvalidURLError(req.Path, err)
	}
	for key, values := range req.Header {
		for _, v := range values {
			httpReq.Header.Add(key, v)
		}
	}
	httpReq.Header.Set("Content-Type", contentTypeJSON)
	httpReq.Header.Set("Accept", contentTypeJSON)

	p.logger.Log(ctx, logging.LevelTrace, "quote api request started",
		slog.String("operation", req.Operation),
		slog.String("method", req.Method),
		slog.String("url", target),
	)

	resp, err := p.transport.Do(ctx, httpReq)
	if err != nil {
		return nil, domain.NewNetworkError(req.Operation, err)
	}
	if resp == nil {
		return nil, domain.NewHTTPError(0)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))

	p.logger.Log(ctx, logging.LevelTrace, "quote api request completed",
		slog.String("operation", req.Operation),
		slog.Int("status", resp.StatusCode),
		slog.Int("bytes", len(body)),
	)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		p.logger.DebugContext(ctx, "quote api returned error status",
			slog.String("operation", req.Operation),
			slog.Int("status", resp.StatusCode),
			slog.String("body", excerpt(body)),
		)
		return nil, domain.NewHTTPError(resp.StatusCode)
	}

	if err != nil {
		return nil, domain.NewNetworkError(req.Operation, err)
	}

	if len(bytes.TrimSpace(body)) == 0 {
		return nil, domain.NewNoDataError(req.Operation)
	}

	return body, nil
}

// resolve composes the absolute request URL from the base origin, path and query.
func (p *Pipeline) resolve(path string, query url.Values) (string, error) {
	base, err := url.Parse(p.transport.BaseURL())
	if err != nil {
		return "", domain.NewInvalidURLError(path, err)
	}
	if base.Scheme == "" || base.Host == "" {
		return "", domain.NewInvalidURLError(path, errors.New("base url must be absolute"))
	}

	ref, err := url.Parse(path)
	if err != nil {
		return "", domain.NewInvalidURLError(path, err)
	}
	if ref.IsAbs() || ref.Host != "" {
		return "", domain.NewInvalidURLError(path, errors.New("path must be relative to the base url"))
	}

	u := *base
	u.Path = strings.TrimSuffix(base.Path, "/") + "/" + strings.TrimPrefix(ref.Path, "/")
	u.RawPath = ""
	u.RawQuery = query.Encode()
	u.Fragment = ""

	return u.String(), nil
}

// encodeBody serializes the request body for POST and PUT.
func encodeBody(req Request) (io.Reader, error) {
	if req.Body == nil || (req.Method != http.MethodPost && req.Method != http.MethodPut) {
		return http.NoBody, nil
	}

	data, err := json.Marshal(req.Body)
	if err != nil {
		return nil, domain.NewJSONParsingError(req.Operation, err)
	}

	return bytes.NewReader(data), nil
}

// fail records a failed operation and returns err unchanged.
func (p *Pipeline) fail(ctx context.Context, req Request, err error) error {
	kind := domain.Kind(err)
	p.metrics.ObserveFailure(req.Operation, string(kind))
	p.logger.DebugContext(ctx, "quote api request failed",
		slog.String("operation", req.Operation),
		slog.String("kind", string(kind)),
		slog.Any("error", err),
	)
	return err
}

func excerpt(body []byte) string {
	if len(body) > maxLoggedBodyBytes {
		return string(body[:maxLoggedBodyBytes]) + "..."
	}
	return string(body)
}
