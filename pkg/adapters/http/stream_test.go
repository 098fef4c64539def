package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mughesh03/aromatone/pkg/flows"
	"github.com/mughesh03/aromatone/pkg/wizard"
)

// syncRecorder guards the recorder body, written by the stream handler while
// the test reads it.
type syncRecorder struct {
	mu sync.Mutex
	*httptest.ResponseRecorder
}

func (r *syncRecorder) Write(b []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ResponseRecorder.Write(b)
}

func (r *syncRecorder) Flush() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ResponseRecorder.Flush()
}

func (r *syncRecorder) String() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.Body.String()
}

func subscribe(t *testing.T, env *testEnv, id, query string) (*syncRecorder, func()) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	rec := &syncRecorder{ResponseRecorder: httptest.NewRecorder()}
	req := httptest.NewRequest(http.MethodGet, "/api/sessions/"+id+"/stream"+query, nil).WithContext(ctx)

	done := make(chan struct{})
	go func() {
		defer close(done)
		env.handler.ServeHTTP(rec, req)
	}()
	require.Eventually(t, func() bool {
		return env.server.Streams.Subscribers(id) == 1
	}, time.Second, 5*time.Millisecond)

	return rec, func() {
		cancel()
		<-done
	}
}

func TestSubscribeEvents_Session(t *testing.T) {
	env := newTestEnv(t)
	id := env.create(t, flows.Signup).SessionID

	rec, stop := subscribe(t, env, id, "")

	require.Equal(t, http.StatusOK, env.event(t, id, wizard.SetField("name", "Ada")).Code)
	require.Equal(t, http.StatusOK, env.event(t, id, wizard.SetField("password", "hunter2")).Code)

	require.Eventually(t, func() bool {
		return strings.Count(rec.String(), "data: {") == 2
	}, time.Second, 5*time.Millisecond)
	stop()

	out := rec.String()
	assert.Contains(t, out, "event: ping")
	assert.Contains(t, out, `"name":"Ada"`)
	assert.Contains(t, out, `"password":"[REDACTED]"`)
	assert.NotContains(t, out, "hunter2")
	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
}

func TestSubscribeEvents_WatchFilter(t *testing.T) {
	env := newTestEnv(t)
	id := env.create(t, flows.RecipeFlow).SessionID

	rec, stop := subscribe(t, env, id, "?watch=step")

	env.event(t, id, wizard.SetField("desiredDish", "soup"))
	env.event(t, id, wizard.Next())

	require.Eventually(t, func() bool {
		return strings.Contains(rec.String(), `"current_step":2`)
	}, time.Second, 5*time.Millisecond)
	stop()

	assert.NotContains(t, rec.String(), `"desiredDish"`)
}

func TestSubscribeEvents_UnknownSession(t *testing.T) {
	env := newTestEnv(t)
	w := env.do(t, http.MethodGet, "/api/sessions/nope/stream", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStreamManager(t *testing.T) {
	sm := NewStreamManager()
	ch, cancel := sm.Subscribe("s1")
	assert.Equal(t, 1, sm.Subscribers("s1"))

	sm.Broadcast("s1", "hello")
	sm.Broadcast("s2", "ignored")
	assert.Equal(t, "hello", <-ch)

	sm.Close("s1")
	_, open := <-ch
	assert.False(t, open)
	assert.Equal(t, 0, sm.Subscribers("s1"))

	assert.NotPanics(t, cancel, "cancel after close")
}
