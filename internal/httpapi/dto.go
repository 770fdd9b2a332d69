package httpapi

import (
	"time"

	"github.com/BerylCAtieno/marketing-super-agent/internal/models"
	"github.com/BerylCAtieno/marketing-super-agent/internal/router"
	"github.com/BerylCAtieno/marketing-super-agent/internal/session"
	"github.com/BerylCAtieno/marketing-super-agent/internal/superagent"
)

type textRequest struct {
	Text string `json:"text" binding:"required"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type sessionResponse struct {
	*session.State
	StatusLine string             `json:"status_line"`
	Working    []router.AgentName `json:"working"`
}

func newSessionResponse(st *session.State) sessionResponse {
	return sessionResponse{
		State:      st,
		StatusLine: st.StatusLine(),
		Working:    st.Working(),
	}
}

type eventResponse struct {
	Kind        superagent.Kind         `json:"kind"`
	AtMS        int64                   `json:"at_ms"`
	Message     *models.MessageRecord   `json:"message,omitempty"`
	ProgressID  string                  `json:"progress_id,omitempty"`
	Agents      []router.AgentName      `json:"agents,omitempty"`
	Agent       router.AgentName        `json:"agent,omitempty"`
	Status      session.StepStatus      `json:"status,omitempty"`
	Task        string                  `json:"task,omitempty"`
	Thoughts    []models.ThoughtProcess `json:"thoughts,omitempty"`
	Suggestions []string                `json:"suggestions,omitempty"`
	Tool        *models.Tool            `json:"tool,omitempty"`
	Percent     int                     `json:"percent,omitempty"`
	Text        string                  `json:"text,omitempty"`
	StatusLine  string                  `json:"status_line"`
}

func newEventResponse(ev superagent.Event) eventResponse {
	return eventResponse{
		Kind:        ev.Kind,
		AtMS:        ev.At.Milliseconds(),
		Message:     ev.Message,
		ProgressID:  ev.ProgressID,
		Agents:      ev.Agents,
		Agent:       ev.Agent,
		Status:      ev.Status,
		Task:        ev.Task,
		Thoughts:    ev.Thoughts,
		Suggestions: ev.Suggestions,
		Tool:        ev.Tool,
		Percent:     ev.Percent,
		Text:        ev.Text,
		StatusLine:  ev.StatusLine,
	}
}

func newEventResponses(evs []superagent.Event) []eventResponse {
	out := make([]eventResponse, 0, len(evs))
	for _, ev := range evs {
		out = append(out, newEventResponse(ev))
	}
	return out
}

type playResponse struct {
	Route   *router.Route   `json:"route,omitempty"`
	Events  []eventResponse `json:"events"`
	Session sessionResponse `json:"session"`
}

type doneResponse struct {
	Route      *router.Route `json:"route,omitempty"`
	DurationMS int64         `json:"duration_ms"`
}

type thoughtsResponse struct {
	Thoughts []models.ThoughtProcess `json:"thoughts"`
}

type catalogResponse struct {
	QuickActions []string `json:"quick_actions"`
	Tools        []string `json:"tools"`
	Commands     []string `json:"commands"`
}

func durationMS(start time.Time) int64 {
	return time.Since(start).Milliseconds()
}
