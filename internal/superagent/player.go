package superagent

import (
	"context"
	"fmt"
	"time"

	"github.com/BerylCAtieno/marketing-super-agent/internal/observability"
	"github.com/BerylCAtieno/marketing-super-agent/internal/session"
)

// Player walks a script against one session. Pace scales every delay:
// 0 plays instantly, 1 is real time.
type Player struct {
	store *session.Store
	pace  float64
	now   func() time.Time
}

func NewPlayer(store *session.Store, pace float64) *Player {
	if pace < 0 {
		pace = 0
	}
	return &Player{store: store, pace: pace, now: time.Now}
}

// Play applies each event to the session and then renders it. A nil
// renderer only updates state.
func (p *Player) Play(ctx context.Context, sessionID string, script Script, r Renderer) error {
	log := observability.LoggerFromContext(ctx).With("session_id", sessionID)
	steps := script.Sorted()
	log.Debug("script started", "events", len(steps), "duration_ms", script.Duration().Milliseconds(), "pace", p.pace)

	start := p.now()
	for _, ev := range steps {
		if err := p.wait(ctx, start, ev.At); err != nil {
			log.Info("script interrupted", "at_ms", ev.At.Milliseconds(), "error", err)
			return err
		}

		if ev.Message != nil {
			msg := *ev.Message
			msg.Timestamp = p.now()
			ev.Message = &msg
		}

		if err := p.store.Update(sessionID, func(st *session.State) error {
			apply(st, &ev)
			return nil
		}); err != nil {
			return err
		}

		if r == nil {
			continue
		}
		if err := r.Render(ctx, ev); err != nil {
			log.Error("render failed", "kind", ev.Kind, "error", err)
			return fmt.Errorf("render %s: %w", ev.Kind, err)
		}
	}

	log.Debug("script finished", "elapsed_ms", time.Since(start).Milliseconds())
	return nil
}

func (p *Player) wait(ctx context.Context, start time.Time, at time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	target := time.Duration(float64(at) * p.pace)
	remaining := target - p.now().Sub(start)
	if remaining <= 0 {
		return nil
	}

	timer := time.NewTimer(remaining)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
