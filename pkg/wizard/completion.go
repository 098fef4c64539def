package wizard

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/mughesh03/aromatone/pkg/domain"
)

const redacted = "[REDACTED]"

// Result is what a completed wizard hands to its completer.
type Result struct {
	SessionID   string          `json:"session_id"`
	Variant     string          `json:"variant"`
	Data        domain.FormData `json:"data"`
	Redirect    string          `json:"redirect,omitempty"`
	CompletedAt time.Time       `json:"completed_at"`

	secrets []string
}

// Redacted returns a copy of the data with secret fields masked.
func (r *Result) Redacted() domain.FormData {
	out := r.Data.Clone()
	for _, name := range r.secrets {
		if _, ok := out[name]; ok {
			out[name] = redacted
		}
	}
	return out
}

// Completer performs the terminal action of a wizard.
type Completer interface {
	Complete(ctx context.Context, res *Result) error
}

// CompleterFunc adapts a function to Completer.
type CompleterFunc func(ctx context.Context, res *Result) error

func (f CompleterFunc) Complete(ctx context.Context, res *Result) error {
	return f(ctx, res)
}

type nopCompleter struct{}

func (nopCompleter) Complete(context.Context, *Result) error { return nil }

// LogCompleter logs the submitted record with secrets masked.
type LogCompleter struct {
	Logger *slog.Logger
}

func (c LogCompleter) Complete(ctx context.Context, res *Result) error {
	logger := c.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.InfoContext(ctx, "wizard completed",
		"session_id", res.SessionID,
		"variant", res.Variant,
		"redirect", res.Redirect,
		"data", map[string]any(res.Redacted()),
	)
	return nil
}

// Recorder keeps every result it receives. Useful in tests and the CLI.
type Recorder struct {
	mu      sync.Mutex
	results []*Result
}

func (r *Recorder) Complete(_ context.Context, res *Result) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.results = append(r.results, res)
	return nil
}

// Results returns the recorded results in arrival order.
func (r *Recorder) Results() []*Result {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*Result, len(r.results))
	copy(out, r.results)
	return out
}

// Chain runs completers in order and stops at the first error.
func Chain(cs ...Completer) Completer {
	return CompleterFunc(func(ctx context.Context, res *Result) error {
		for _, c := range cs {
			if c == nil {
				continue
			}
			if err := c.Complete(ctx, res); err != nil {
				return err
			}
		}
		return nil
	})
}
