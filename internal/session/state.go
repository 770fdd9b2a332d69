// Package session holds the per-conversation state of the super agent and
// the reducers that change it.
package session

import (
	"fmt"
	"time"

	"github.com/BerylCAtieno/marketing-super-agent/internal/models"
	"github.com/BerylCAtieno/marketing-super-agent/internal/router"
)

type AgentStatus string

const (
	AgentReady   AgentStatus = "ready"
	AgentWorking AgentStatus = "working"
)

type StepStatus string

const (
	StepPending   StepStatus = "pending"
	StepWorking   StepStatus = "working"
	StepCompleted StepStatus = "completed"
)

// Step is one agent row inside a progress display.
type Step struct {
	Agent  router.AgentName `json:"agent"`
	Task   string           `json:"task"`
	Status StepStatus       `json:"status"`
}

// Progress is the "activating N specialist agents" display.
type Progress struct {
	ID    string `json:"id"`
	Steps []Step `json:"steps"`
}

// Builder tracks the campaign builder progress bar.
type Builder struct {
	Message string `json:"message"`
	Percent int    `json:"percent"`
	Text    string `json:"text"`
}

// State is everything one chat session knows. It is not safe for
// concurrent use; Store serialises access.
type State struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	History []models.MessageRecord           `json:"history"`
	Agents  map[router.AgentName]AgentStatus `json:"agents"`

	Progress   map[string]*Progress               `json:"progress"`
	Thoughts   map[string][]models.ThoughtProcess `json:"-"`
	thoughtIDs []string

	Builder  *Builder     `json:"builder,omitempty"`
	OpenTool *models.Tool `json:"open_tool,omitempty"`
}

// New returns a fresh session with every agent ready.
func New(id string, now time.Time) *State {
	s := &State{
		ID:        id,
		CreatedAt: now,
		UpdatedAt: now,
		Agents:    make(map[router.AgentName]AgentStatus, len(router.AllAgents)),
		Progress:  make(map[string]*Progress),
		Thoughts:  make(map[string][]models.ThoughtProcess),
	}
	for _, a := range router.AllAgents {
		s.Agents[a] = AgentReady
	}
	return s
}

func (s *State) touch(t time.Time) {
	if t.After(s.UpdatedAt) {
		s.UpdatedAt = t
	}
}

// AppendMessage records a displayed message.
func (s *State) AppendMessage(rec models.MessageRecord) {
	s.History = append(s.History, rec)
	s.touch(rec.Timestamp)
}

// Last returns the most recent message.
func (s *State) Last() (models.MessageRecord, bool) {
	if len(s.History) == 0 {
		return models.MessageRecord{}, false
	}
	return s.History[len(s.History)-1], true
}

// ActivateAgents resets the panel and marks names as working. Names outside
// the agent universe are ignored.
func (s *State) ActivateAgents(names []router.AgentName) {
	for a := range s.Agents {
		s.Agents[a] = AgentReady
	}
	for _, n := range names {
		if _, ok := s.Agents[n]; ok {
			s.Agents[n] = AgentWorking
		}
	}
}

// Working returns the agents currently working, in panel order.
func (s *State) Working() []router.AgentName {
	var out []router.AgentName
	for _, a := range router.AllAgents {
		if s.Agents[a] == AgentWorking {
			out = append(out, a)
		}
	}
	return out
}

// StatusLine is the header text of the agent panel.
func (s *State) StatusLine() string {
	if n := len(s.Working()); n > 0 {
		return fmt.Sprintf("%d agents working", n)
	}
	return fmt.Sprintf("%d agents ready", len(router.AllAgents))
}

// StartProgress opens a progress display with every step pending. tasks
// gives the task text per agent.
func (s *State) StartProgress(id string, names []router.AgentName, tasks func(router.AgentName) string) {
	p := &Progress{ID: id, Steps: make([]Step, 0, len(names))}
	for _, n := range names {
		step := Step{Agent: n, Status: StepPending}
		if tasks != nil {
			step.Task = tasks(n)
		}
		p.Steps = append(p.Steps, step)
	}
	s.Progress[id] = p
}

// MarkStep moves an agent's step to status. Unknown progress ids or agents
// are ignored.
func (s *State) MarkStep(id string, agent router.AgentName, status StepStatus, task string) {
	p, ok := s.Progress[id]
	if !ok {
		return
	}
	for i := range p.Steps {
		if p.Steps[i].Agent != agent {
			continue
		}
		p.Steps[i].Status = status
		if task != "" {
			p.Steps[i].Task = task
		}
		return
	}
}

// StoreThoughts keeps the thought process for a progress display.
func (s *State) StoreThoughts(id string, thoughts []models.ThoughtProcess) {
	if _, exists := s.Thoughts[id]; !exists {
		s.thoughtIDs = append(s.thoughtIDs, id)
	}
	s.Thoughts[id] = thoughts
}

// LatestThoughts returns the most recently stored thought process.
func (s *State) LatestThoughts() ([]models.ThoughtProcess, bool) {
	if len(s.thoughtIDs) == 0 {
		return nil, false
	}
	return s.Thoughts[s.thoughtIDs[len(s.thoughtIDs)-1]], true
}

func (s *State) OpenBuilder(message string) {
	s.Builder = &Builder{Message: message}
}

// SetBuilderProgress updates the builder progress bar. It is a no-op when
// no builder is open.
func (s *State) SetBuilderProgress(percent int, text string) {
	if s.Builder == nil {
		return
	}
	s.Builder.Percent = percent
	s.Builder.Text = text
}

func (s *State) ShowTool(tool models.Tool) {
	s.OpenTool = &tool
}

func (s *State) CloseTool() {
	s.OpenTool = nil
}

// Clone returns a deep copy safe to hand to readers.
func (s *State) Clone() *State {
	c := &State{
		ID:         s.ID,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
		History:    append([]models.MessageRecord(nil), s.History...),
		Agents:     make(map[router.AgentName]AgentStatus, len(s.Agents)),
		Progress:   make(map[string]*Progress, len(s.Progress)),
		Thoughts:   make(map[string][]models.ThoughtProcess, len(s.Thoughts)),
		thoughtIDs: append([]string(nil), s.thoughtIDs...),
	}
	for k, v := range s.Agents {
		c.Agents[k] = v
	}
	for k, p := range s.Progress {
		c.Progress[k] = &Progress{ID: p.ID, Steps: append([]Step(nil), p.Steps...)}
	}
	for k, tps := range s.Thoughts {
		cp := make([]models.ThoughtProcess, len(tps))
		for i, tp := range tps {
			cp[i] = models.ThoughtProcess{Agent: tp.Agent, Thoughts: append([]string(nil), tp.Thoughts...)}
		}
		c.Thoughts[k] = cp
	}
	if s.Builder != nil {
		b := *s.Builder
		c.Builder = &b
	}
	if s.OpenTool != nil {
		t := *s.OpenTool
		c.OpenTool = &t
	}
	return c
}
