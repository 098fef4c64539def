package proxy

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mughesh03/aromatone/internal/logging"
)

// DefaultBaseURL is the upstream API root.
const DefaultBaseURL = "https://api.novita.ai/v3"

// Upstream paths relayed by the server.
const (
	PathChatCompletions = "/openai/chat/completions"
	PathTextToSpeech    = "/async/txt2speech"
)

// ErrNonJSON is returned when the upstream answers with a body that is not JSON.
var ErrNonJSON = errors.New("upstream returned a non-JSON body")

// failureBody is the only error the browser ever sees from the proxy.
var failureBody = []byte(`{"error":"Failed to process request"}`)

// Response is an upstream reply.
type Response struct {
	Status int
	Body   []byte
}

// Observer is notified after every forwarded request. status is 0 when the
// upstream could not be reached or answered with a non-JSON body.
type Observer func(path string, status int, elapsed time.Duration)

// Option configures a Forwarder.
type Option func(*Forwarder)

// WithHTTPClient overrides http.DefaultClient.
func WithHTTPClient(c *http.Client) Option {
	return func(f *Forwarder) {
		f.client = c
	}
}

// WithLogger sets the logger used for upstream failures.
func WithLogger(logger *slog.Logger) Option {
	return func(f *Forwarder) {
		f.logger = logger
	}
}

// WithObserver registers a metrics callback.
func WithObserver(o Observer) Option {
	return func(f *Forwarder) {
		f.observer = o
	}
}

// Forwarder relays JSON requests to the upstream API.
type Forwarder struct {
	baseURL  string
	apiKey   string
	client   *http.Client
	logger   *slog.Logger
	observer Observer
}

// New creates a forwarder. An empty baseURL means DefaultBaseURL.
func New(baseURL, apiKey string, opts ...Option) *Forwarder {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	f := &Forwarder{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  http.DefaultClient,
		logger:  logging.NewNop(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Forward POSTs body to path and returns the upstream status and body.
// The body is not inspected or validated.
func (f *Forwarder) Forward(ctx context.Context, path string, body []byte) (resp *Response, err error) {
	start := time.Now()
	defer func() {
		if f.observer == nil {
			return
		}
		status := 0
		if err == nil {
			status = resp.Status
		}
		f.observer(path, status, time.Since(start))
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build upstream request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+f.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	res, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upstream request: %w", err)
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("read upstream body: %w", err)
	}
	if !json.Valid(data) {
		return nil, fmt.Errorf("%w (status %d)", ErrNonJSON, res.StatusCode)
	}
	return &Response{Status: res.StatusCode, Body: data}, nil
}

// Handler relays the request body to path. Upstream status and body are
// written unchanged; any failure becomes a generic 500.
func (f *Forwarder) Handler(path string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			f.fail(w, r, path, fmt.Errorf("read request body: %w", err))
			return
		}

		resp, err := f.Forward(r.Context(), path, body)
		if err != nil {
			f.fail(w, r, path, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(resp.Status)
		_, _ = w.Write(resp.Body)
	}
}

func (f *Forwarder) fail(w http.ResponseWriter, r *http.Request, path string, err error) {
	f.logger.ErrorContext(r.Context(), "proxy request failed", "path", path, "err", err)
	WriteFailure(w)
}

// WriteFailure writes the generic proxy error response.
func WriteFailure(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = w.Write(failureBody)
}
