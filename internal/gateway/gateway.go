// Package gateway is the single HTTP path between the client and the
// platform API. It injects the bearer token at call time, lets multipart
// bodies carry their own boundary, and on an authentication failure clears
// the session and fires a hook exactly once per request instead of navigating
// anywhere itself. It never retries.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/beksultan/talentlink/internal/domain/forms"
	"github.com/beksultan/talentlink/internal/session"
	"github.com/beksultan/talentlink/pkg/logger"
	"github.com/beksultan/talentlink/pkg/metrics"
)

const defaultTimeout = 30 * time.Second

// AuthFailureHook is invoked after a 401 clears the session. The top-level
// router subscribes to it; the gateway itself stays free of navigation.
type AuthFailureHook func()

// Gateway wraps an http.Client for all platform API traffic.
type Gateway struct {
	base     *url.URL
	client   *http.Client
	sessions *session.Store
	onAuth   AuthFailureHook
	log      logger.Logger
}

// Option applies a configuration option to the Gateway.
type Option func(*Gateway)

// WithBaseURL sets the API root. Invalid URLs are ignored in favor of the
// current value.
func WithBaseURL(raw string) Option {
	return func(g *Gateway) {
		if u, err := url.Parse(raw); err == nil && u.Host != "" {
			g.base = u
		}
	}
}

// WithTimeout bounds every request.
func WithTimeout(d time.Duration) Option {
	return func(g *Gateway) {
		if d > 0 {
			g.client.Timeout = d
		}
	}
}

// WithHTTPClient swaps the underlying client, mainly for tests.
func WithHTTPClient(c *http.Client) Option {
	return func(g *Gateway) {
		if c != nil {
			g.client = c
		}
	}
}

// WithSessionStore attaches the session store read on every request.
func WithSessionStore(s *session.Store) Option {
	return func(g *Gateway) {
		if s != nil {
			g.sessions = s
		}
	}
}

// WithAuthFailureHook sets the hook fired once per 401-failed request.
func WithAuthFailureHook(fn AuthFailureHook) Option {
	return func(g *Gateway) {
		g.onAuth = fn
	}
}

// WithLogger sets the gateway's logger.
func WithLogger(l logger.Logger) Option {
	return func(g *Gateway) {
		if l != nil {
			g.log = l
		}
	}
}

// New creates a Gateway.
func New(opts ...Option) *Gateway {
	base, _ := url.Parse("http://127.0.0.1:8000")
	g := &Gateway{
		base:   base,
		client: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.log == nil {
		g.log = logger.Named("gateway")
	}
	return g
}

// Response is the decoded-enough result handed back to callers.
type Response struct {
	StatusCode int
	Body       []byte
}

// JSON unmarshals the body into v.
func (r *Response) JSON(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return nil
}

// Get issues a GET request.
func (g *Gateway) Get(ctx context.Context, path string) (*Response, error) {
	return g.do(ctx, http.MethodGet, path, "", nil)
}

// Post issues a POST request with a JSON body. A nil body sends no payload.
func (g *Gateway) Post(ctx context.Context, path string, body any) (*Response, error) {
	return g.doJSON(ctx, http.MethodPost, path, body)
}

// Patch issues a PATCH request with a JSON body.
func (g *Gateway) Patch(ctx context.Context, path string, body any) (*Response, error) {
	return g.doJSON(ctx, http.MethodPatch, path, body)
}

// Put issues a PUT request with a JSON body.
func (g *Gateway) Put(ctx context.Context, path string, body any) (*Response, error) {
	return g.doJSON(ctx, http.MethodPut, path, body)
}

// Delete issues a DELETE request.
func (g *Gateway) Delete(ctx context.Context, path string) (*Response, error) {
	return g.do(ctx, http.MethodDelete, path, "", nil)
}

// PostForm issues a multipart POST built from field values and attachments.
func (g *Gateway) PostForm(ctx context.Context, path string, values map[string]string, files map[string]forms.File) (*Response, error) {
	return g.doMultipart(ctx, http.MethodPost, path, values, files)
}

// PatchForm issues a multipart PATCH built from field values and attachments.
func (g *Gateway) PatchForm(ctx context.Context, path string, values map[string]string, files map[string]forms.File) (*Response, error) {
	return g.doMultipart(ctx, http.MethodPatch, path, values, files)
}

func (g *Gateway) doJSON(ctx context.Context, method, path string, body any) (*Response, error) {
	var reader io.Reader
	contentType := ""
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("%w: marshal body: %w", ErrRequest, err)
		}
		reader = bytes.NewReader(data)
		contentType = "application/json"
	}
	return g.do(ctx, method, path, contentType, reader)
}

func (g *Gateway) doMultipart(ctx context.Context, method, path string, values map[string]string, files map[string]forms.File) (*Response, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for name, value := range values {
		if err := w.WriteField(name, value); err != nil {
			return nil, fmt.Errorf("%w: write field %s: %w", ErrRequest, name, err)
		}
	}
	for field, file := range files {
		part, err := w.CreateFormFile(field, file.Name)
		if err != nil {
			return nil, fmt.Errorf("%w: attach %s: %w", ErrRequest, field, err)
		}
		if _, err := part.Write(file.Content); err != nil {
			return nil, fmt.Errorf("%w: attach %s: %w", ErrRequest, field, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("%w: finalize form: %w", ErrRequest, err)
	}
	metrics.RecordMultipartBytes(buf.Len())

	// The form writer's content type carries the boundary; nothing else may
	// set the header for multipart requests.
	return g.do(ctx, method, path, w.FormDataContentType(), &buf)
}

func (g *Gateway) do(ctx context.Context, method, path, contentType string, body io.Reader) (*Response, error) {
	u := g.base.JoinPath(path)
	if i := strings.IndexByte(path, '?'); i >= 0 {
		u = g.base.JoinPath(path[:i])
		u.RawQuery = path[i+1:]
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRequest, err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("X-Request-ID", uuid.NewString())

	// Token is read at call time, never captured at construction; a session
	// replaced mid-flight is picked up by the next request.
	if g.sessions != nil {
		if sess := g.sessions.Current(); sess.Token != "" {
			req.Header.Set("Authorization", "Bearer "+sess.Token)
		}
	}

	resource := resourceLabel(path)
	start := time.Now()
	resp, err := g.client.Do(req)
	latency := float64(time.Since(start).Milliseconds())
	if err != nil {
		metrics.RecordRequest(resource, method, "transport_error")
		return nil, fmt.Errorf("%w: %w", ErrRequest, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", ErrRequest, err)
	}

	metrics.RecordRequest(resource, method, strconv.Itoa(resp.StatusCode))
	metrics.RecordRequestDuration(resource, method, latency)
	g.log.Debug(ctx, "request completed",
		logger.String("method", method),
		logger.String("path", path),
		logger.Int("status", resp.StatusCode),
	)

	if resp.StatusCode == http.StatusUnauthorized {
		g.handleAuthFailure(ctx)
		return nil, fmt.Errorf("%w: %s %s", ErrUnauthorized, method, path)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return nil, apiErrorFrom(resp.StatusCode, data)
	}
	return &Response{StatusCode: resp.StatusCode, Body: data}, nil
}

// handleAuthFailure clears the session and fires the hook, unless this
// request was itself born from the hook (the recovery flag breaks the loop).
func (g *Gateway) handleAuthFailure(ctx context.Context) {
	metrics.RecordAuthFailure()
	if g.sessions != nil {
		if err := g.sessions.Clear(); err != nil {
			g.log.Warn(ctx, "failed to clear session after 401", logger.Error(err))
		}
	}
	if g.onAuth != nil && !isAuthRecovery(ctx) {
		g.onAuth()
	}
}

type authRecoveryKey struct{}

// MarkAuthRecovery flags a context so a 401 on this request cannot re-fire
// the auth failure hook.
func MarkAuthRecovery(ctx context.Context) context.Context {
	return context.WithValue(ctx, authRecoveryKey{}, true)
}

func isAuthRecovery(ctx context.Context) bool {
	v, _ := ctx.Value(authRecoveryKey{}).(bool)
	return v
}

// resourceLabel reduces a request path to a low-cardinality metrics label.
func resourceLabel(path string) string {
	p := strings.TrimPrefix(strings.TrimPrefix(path, "/"), "api/")
	if i := strings.IndexByte(p, '?'); i >= 0 {
		p = p[:i]
	}
	if i := strings.IndexByte(p, '/'); i >= 0 {
		p = p[:i]
	}
	if p == "" {
		return "root"
	}
	return p
}
