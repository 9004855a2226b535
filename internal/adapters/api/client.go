// Package api is the Resource Client: one typed wrapper per remote resource,
// all sharing the request, decoding and error-normalization path in this file.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bnema/skillconnect-cli/internal/domain"
	"github.com/bnema/skillconnect-cli/internal/ports"
)

const maxResponseBytes = 1 << 20

// SessionSource supplies the bearer token and the default actor for writes.
type SessionSource interface {
	Get() domain.Session
}

type Client struct {
	BaseURL        string
	HTTPClient     *http.Client
	RequestTimeout time.Duration
	UserAgent      string
	Session        SessionSource
	// OnUnauthorized runs after a 401 response to an authenticated request,
	// before the error is returned to the caller.
	OnUnauthorized func(ctx context.Context)
	Logger         *slog.Logger
}

var (
	_ ports.UserAPI         = (*Client)(nil)
	_ ports.PostAPI         = (*Client)(nil)
	_ ports.ProgressAPI     = (*Client)(nil)
	_ ports.NotificationAPI = (*Client)(nil)
	_ ports.FollowAPI       = (*Client)(nil)
	_ ports.MediaTypeAPI    = (*Client)(nil)
	_ ports.LikeAPI         = (*Client)(nil)
	_ ports.CommentAPI      = (*Client)(nil)
)

type request struct {
	op       string
	fallback string
	notFound string
	method   string
	path     string
	query    url.Values
	body     any

	// anonymous requests carry no session token and never trigger OnUnauthorized.
	anonymous bool
}

type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (c *Client) do(ctx context.Context, req request, out any) error {
	endpoint, err := buildAPIURL(c.BaseURL, req.path, req.query)
	if err != nil {
		return c.failure(req, 0, err)
	}

	var body io.Reader
	if req.body != nil {
		payload, err := json.Marshal(req.body)
		if err != nil {
			return c.failure(req, 0, fmt.Errorf("encode request body: %w", err))
		}
		body = bytes.NewReader(payload)
	}

	requestCtx, cancel := c.requestContext(ctx)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(requestCtx, req.method, endpoint, body)
	if err != nil {
		return c.failure(req, 0, fmt.Errorf("create request: %w", err))
	}
	httpReq.Header.Set("Accept", "application/json")
	if req.body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if c.UserAgent != "" {
		httpReq.Header.Set("User-Agent", c.UserAgent)
	}
	if token := c.session().AuthToken; token != "" && !req.anonymous {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	started := time.Now()
	resp, err := c.httpClient().Do(httpReq)
	if err != nil {
		c.logger().Debug("api request failed", "op", req.op, "method", req.method, "path", req.path, "err", err)
		return c.failure(req, 0, fmt.Errorf("perform request: %w", err))
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return c.failure(req, resp.StatusCode, fmt.Errorf("read response: %w", err))
	}
	c.logger().Debug("api request", "op", req.op, "method", req.method, "path", req.path, "status", resp.StatusCode, "elapsed", time.Since(started))

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		remoteErr := c.statusError(req, resp.StatusCode, data)
		if remoteErr.Kind == domain.RemoteUnauthorized && !req.anonymous && c.OnUnauthorized != nil {
			c.OnUnauthorized(ctx)
		}
		return remoteErr
	}

	if out == nil {
		return nil
	}
	if err := decodeBody(data, out); err != nil {
		return c.failure(req, resp.StatusCode, fmt.Errorf("decode response: %w", err))
	}

	return nil
}

func (c *Client) statusError(req request, status int, data []byte) *domain.RemoteError {
	kind := domain.KindForStatus(status)
	message := req.fallback
	if kind == domain.RemoteNotFound && req.notFound != "" {
		message = req.notFound
	} else if serverMessage := messageFromBody(data); serverMessage != "" {
		message = serverMessage
	}

	return &domain.RemoteError{
		Kind:    kind,
		Status:  status,
		Op:      req.op,
		Message: message,
		Err:     fmt.Errorf("status %d", status),
	}
}

func (c *Client) failure(req request, status int, err error) *domain.RemoteError {
	return &domain.RemoteError{
		Kind:    domain.RemoteFailureKind,
		Status:  status,
		Op:      req.op,
		Message: req.fallback,
		Err:     err,
	}
}

func messageFromBody(data []byte) string {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return ""
	}

	var parsed errorBody
	if err := json.Unmarshal(trimmed, &parsed); err != nil {
		return ""
	}
	if parsed.Message != "" {
		return parsed.Message
	}

	return parsed.Error
}

// decodeBody decodes JSON into out. A *string target also accepts a plain
// text body, which is what the follow endpoints return.
func decodeBody(data []byte, out any) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil
	}

	if text, ok := out.(*string); ok && trimmed[0] != '"' {
		*text = string(trimmed)
		return nil
	}

	return json.Unmarshal(trimmed, out)
}

func (c *Client) session() domain.Session {
	if c.Session == nil {
		return domain.Session{}
	}
	return c.Session.Get()
}

func (c *Client) actor() domain.UserID {
	return c.session().UserID
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func (c *Client) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}

func (c *Client) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}
	if c.RequestTimeout <= 0 {
		return ctx, func() {}
	}

	return context.WithTimeout(ctx, c.RequestTimeout)
}

func buildAPIURL(baseURL string, path string, query url.Values) (string, error) {
	if baseURL == "" {
		return "", errors.New("api base url is required")
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("parse api base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", errors.New("api base url must use http or https")
	}
	if parsed.Host == "" {
		return "", errors.New("api base url host is required")
	}

	rawPath := strings.TrimRight(parsed.EscapedPath(), "/") + "/" + strings.TrimLeft(path, "/")
	unescaped, err := url.PathUnescape(rawPath)
	if err != nil {
		return "", fmt.Errorf("unescape api path: %w", err)
	}
	parsed.Path = unescaped
	parsed.RawPath = rawPath
	if len(query) > 0 {
		parsed.RawQuery = query.Encode()
	}

	return parsed.String(), nil
}

// resourcePath joins path segments, escaping each so an id cannot add or
// climb path levels.
func resourcePath(segments ...string) string {
	escaped := make([]string, len(segments))
	for i, segment := range segments {
		switch segment {
		case ".", "..":
			escaped[i] = strings.Repeat("%2E", len(segment))
		default:
			escaped[i] = url.PathEscape(segment)
		}
	}
	return strings.Join(escaped, "/")
}
