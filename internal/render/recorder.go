package render

import (
	"context"
	"sync"

	"github.com/BerylCAtieno/marketing-super-agent/internal/models"
	"github.com/BerylCAtieno/marketing-super-agent/internal/superagent"
)

// Recorder keeps every rendered event. It is used by surfaces that answer
// once a script has finished playing.
type Recorder struct {
	mu     sync.Mutex
	events []superagent.Event
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Render(_ context.Context, ev superagent.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
	return nil
}

// Events returns a copy of the recorded events in play order.
func (r *Recorder) Events() []superagent.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]superagent.Event(nil), r.events...)
}

// Messages returns the chat messages that were displayed.
func (r *Recorder) Messages() []models.MessageRecord {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.MessageRecord
	for _, ev := range r.events {
		if ev.Kind == superagent.KindMessage && ev.Message != nil {
			out = append(out, *ev.Message)
		}
	}
	return out
}

// Last returns the most recent event of kind.
func (r *Recorder) Last(kind superagent.Kind) (superagent.Event, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := len(r.events) - 1; i >= 0; i-- {
		if r.events[i].Kind == kind {
			return r.events[i], true
		}
	}
	return superagent.Event{}, false
}

func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}
