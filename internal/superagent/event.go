package superagent

import (
	"context"
	"sort"
	"time"

	"github.com/BerylCAtieno/marketing-super-agent/internal/catalog"
	"github.com/BerylCAtieno/marketing-super-agent/internal/models"
	"github.com/BerylCAtieno/marketing-super-agent/internal/router"
	"github.com/BerylCAtieno/marketing-super-agent/internal/session"
)

type Kind string

const (
	KindMessage         Kind = "message"
	KindProgressStarted Kind = "progress_started"
	KindThoughtsStored  Kind = "thoughts_stored"
	KindAgentsActivated Kind = "agents_activated"
	KindAgentStep       Kind = "agent_step"
	KindThoughtsOffered Kind = "thoughts_offered"
	KindFollowUps       Kind = "follow_ups"
	KindToolOpened      Kind = "tool_opened"
	KindToolClosed      Kind = "tool_closed"
	KindBuilderOpened   Kind = "builder_opened"
	KindBuilderProgress Kind = "builder_progress"
)

// Event is one scripted change to a session and its display. Only the
// fields relevant to Kind are set.
type Event struct {
	Kind Kind
	// At is the offset from the start of the script.
	At time.Duration

	Message     *models.MessageRecord
	ProgressID  string
	Agents      []router.AgentName
	Agent       router.AgentName
	Status      session.StepStatus
	Task        string
	Thoughts    []models.ThoughtProcess
	Suggestions []string
	Tool        *models.Tool
	Percent     int
	Text        string

	// StatusLine is filled in by the player once the event is applied.
	StatusLine string
}

// Script is a timed sequence of events.
type Script []Event

// Sorted returns the events ordered by At. Events scheduled for the same
// offset keep their planned order.
func (s Script) Sorted() Script {
	out := append(Script(nil), s...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].At < out[j].At })
	return out
}

// Duration is the offset of the last event.
func (s Script) Duration() time.Duration {
	var d time.Duration
	for _, ev := range s {
		if ev.At > d {
			d = ev.At
		}
	}
	return d
}

// Renderer displays events. Implementations ignore kinds they do not show.
type Renderer interface {
	Render(ctx context.Context, ev Event) error
}

// RenderFunc adapts a function to Renderer.
type RenderFunc func(ctx context.Context, ev Event) error

func (f RenderFunc) Render(ctx context.Context, ev Event) error {
	return f(ctx, ev)
}

// apply folds ev into the session state.
func apply(st *session.State, ev *Event) {
	switch ev.Kind {
	case KindMessage:
		if ev.Message != nil {
			st.AppendMessage(*ev.Message)
		}
	case KindProgressStarted:
		st.StartProgress(ev.ProgressID, ev.Agents, catalog.Task)
	case KindThoughtsStored:
		st.StoreThoughts(ev.ProgressID, ev.Thoughts)
	case KindAgentsActivated:
		st.ActivateAgents(ev.Agents)
	case KindAgentStep:
		st.MarkStep(ev.ProgressID, ev.Agent, ev.Status, ev.Task)
	case KindThoughtsOffered:
		if latest, ok := st.LatestThoughts(); ok {
			ev.Thoughts = latest
		}
	case KindToolOpened:
		if ev.Tool != nil {
			st.ShowTool(*ev.Tool)
		}
	case KindToolClosed:
		st.CloseTool()
	case KindBuilderOpened:
		st.OpenBuilder(ev.Text)
	case KindBuilderProgress:
		st.SetBuilderProgress(ev.Percent, ev.Text)
	}
	ev.StatusLine = st.StatusLine()
}
