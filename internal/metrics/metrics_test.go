package metrics

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mughesh03/aromatone/pkg/domain"
)

// sample returns the value of the counter or the histogram count matching
// name and labels, or -1 when absent.
func sample(t *testing.T, m *Metrics, name string, labels map[string]string) float64 {
	t.Helper()
	families, err := m.Registry().Gather()
	require.NoError(t, err)
	for _, fam := range families {
		if fam.GetName() != name {
			continue
		}
	metrics:
		for _, metric := range fam.GetMetric() {
			got := map[string]string{}
			for _, lp := range metric.GetLabel() {
				got[lp.GetName()] = lp.GetValue()
			}
			for k, v := range labels {
				if got[k] != v {
					continue metrics
				}
			}
			if c := metric.GetCounter(); c != nil {
				return c.GetValue()
			}
			if h := metric.GetHistogram(); h != nil {
				return float64(h.GetSampleCount())
			}
		}
	}
	return -1
}

func TestHooks(t *testing.T) {
	m := New()
	hooks := m.Hooks()
	ctx := context.Background()

	hooks.OnStepEnter(ctx, &domain.StepEvent{Type: domain.EventStepEnter, Variant: "signup"})
	hooks.OnBlocked(ctx, &domain.StepEvent{Type: domain.EventBlocked, Variant: "signup"})
	hooks.OnComplete(ctx, &domain.StepEvent{Type: domain.EventComplete, Variant: "signup"})

	assert.Equal(t, 1.0, sample(t, m, "aromatone_wizard_step_events_total", map[string]string{"variant": "signup", "type": "blocked"}))
	assert.Equal(t, 1.0, sample(t, m, "aromatone_wizard_completions_total", map[string]string{"variant": "signup"}))
	assert.Equal(t, -1.0, sample(t, m, "aromatone_wizard_completions_total", map[string]string{"variant": "recipe-flow"}))
}

func TestObserve(t *testing.T) {
	m := New()
	m.ObserveProxy("/openai/chat/completions", 200, 120*time.Millisecond)
	m.ObserveProxy("/openai/chat/completions", 0, time.Second)
	m.ObserveEvent("signup", "next", "blocked")

	assert.Equal(t, 1.0, sample(t, m, "aromatone_proxy_requests_total", map[string]string{"path": "/openai/chat/completions", "status": "0"}))
	assert.Equal(t, 2.0, sample(t, m, "aromatone_proxy_request_duration_seconds", map[string]string{"path": "/openai/chat/completions"}))
	assert.Equal(t, 1.0, sample(t, m, "aromatone_wizard_events_total", map[string]string{"variant": "signup", "event": "next", "outcome": "blocked"}))
}

func TestHandler(t *testing.T) {
	m := New()
	m.ObserveEvent("signup", "next", "advanced")

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `aromatone_wizard_events_total{event="next",outcome="advanced",variant="signup"} 1`)
	assert.Contains(t, string(body), "go_goroutines")
}
