package keys

import (
	"log/slog"
	"strings"
	"sync"
)

// Recorder is an Injector that stores events instead of sending them. It
// backs dry runs and tests.
type Recorder struct {
	mu     sync.Mutex
	events []Event
	logger *slog.Logger
}

// NewRecorder creates a recorder. When logger is non-nil every event is
// also logged at debug level.
func NewRecorder(logger *slog.Logger) *Recorder {
	return &Recorder{logger: logger}
}

// Press implements Injector.
func (r *Recorder) Press(k Key) error {
	r.record(Event{Key: k, Down: true})
	return nil
}

// Release implements Injector.
func (r *Recorder) Release(k Key) error {
	r.record(Event{Key: k, Down: false})
	return nil
}

func (r *Recorder) record(e Event) {
	r.mu.Lock()
	r.events = append(r.events, e)
	r.mu.Unlock()

	if r.logger != nil {
		r.logger.Debug("key event", "event", e.String())
	}
}

// Events returns a copy of everything recorded so far.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

// Reset forgets recorded events.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.events = nil
	r.mu.Unlock()
}

// Count returns how many times k was pressed.
func (r *Recorder) Count(k Key) int {
	n := 0
	for _, e := range r.Events() {
		if e.Key == k && e.Down {
			n++
		}
	}
	return n
}

// String renders events as "shift↓ r↓ r↑ shift↑".
func (r *Recorder) String() string {
	return FormatEvents(r.Events())
}

// FormatEvents renders a key sequence for logs and previews.
func FormatEvents(events []Event) string {
	parts := make([]string, len(events))
	for i, e := range events {
		parts[i] = e.String()
	}
	return strings.Join(parts, " ")
}
