package cooking

import (
	"fmt"
	"sync"
	"time"
)

// FormatElapsed renders a duration as MM:SS. Minutes are not capped at 59.
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

// Recorder tracks the elapsed time of a recording. Starting clears the
// previous take; stopping freezes the timer until the next start.
type Recorder struct {
	mu      sync.Mutex
	now     func() time.Time
	started time.Time
	elapsed time.Duration
	running bool
}

// NewRecorder creates a stopped recorder. A nil clock means time.Now.
func NewRecorder(now func() time.Time) *Recorder {
	if now == nil {
		now = time.Now
	}
	return &Recorder{now: now}
}

// Start begins a new take. It is a no-op while already recording.
func (r *Recorder) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.running {
		return
	}
	r.started = r.now()
	r.elapsed = 0
	r.running = true
}

// Stop ends the take and returns its length.
func (r *Recorder) Stop() time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.running {
		r.elapsed = r.now().Sub(r.started)
		r.running = false
	}
	return r.elapsed
}

// Recording reports whether a take is in progress.
func (r *Recorder) Recording() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.running
}

// Elapsed returns the length of the current or last take.
func (r *Recorder) Elapsed() time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.running {
		return r.now().Sub(r.started)
	}
	return r.elapsed
}
