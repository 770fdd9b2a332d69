// Package superagent plays the scripted multi-agent conversation: it plans
// what each user action displays and when, and applies it to a session.
package superagent

import (
	"context"
	"fmt"
	"strings"

	"github.com/BerylCAtieno/marketing-super-agent/internal/catalog"
	"github.com/BerylCAtieno/marketing-super-agent/internal/models"
	"github.com/BerylCAtieno/marketing-super-agent/internal/observability"
	"github.com/BerylCAtieno/marketing-super-agent/internal/router"
	"github.com/BerylCAtieno/marketing-super-agent/internal/session"
)

type Service struct {
	store   *session.Store
	planner *Planner
	player  *Player
}

type Option func(*Service)

// WithPace sets the delay multiplier of played scripts.
func WithPace(pace float64) Option {
	return func(s *Service) {
		s.player = NewPlayer(s.store, pace)
	}
}

// WithPlanner replaces the default planner.
func WithPlanner(p *Planner) Option {
	return func(s *Service) {
		s.planner = p
	}
}

func NewService(store *session.Store, opts ...Option) *Service {
	s := &Service{
		store:   store,
		planner: NewPlanner(),
		player:  NewPlayer(store, 1),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Paced returns a service sharing the same sessions but playing scripts at
// another pace.
func (s *Service) Paced(pace float64) *Service {
	return &Service{
		store:   s.store,
		planner: s.planner,
		player:  NewPlayer(s.store, pace),
	}
}

func (s *Service) StartSession(ctx context.Context) *session.State {
	st := s.store.Create()
	observability.LoggerFromContext(ctx).Info("session started", "session_id", st.ID)
	return st
}

func (s *Service) Session(ctx context.Context, id string) (*session.State, error) {
	return s.store.Get(id)
}

// SendMessage routes text and plays the full agent response.
func (s *Service) SendMessage(ctx context.Context, sessionID, text string, r Renderer) (router.Route, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return router.Route{}, models.ErrEmptyMessage
	}
	if _, err := s.store.Get(sessionID); err != nil {
		return router.Route{}, err
	}

	script, route := s.planner.Message(text)

	log := observability.LoggerFromContext(ctx).With("session_id", sessionID)
	log.Info("message routed", "category", route.Category, "agents", route.Agents)

	if err := s.player.Play(ctx, sessionID, script, r); err != nil {
		return route, fmt.Errorf("play message script: %w", err)
	}
	return route, nil
}

// QuickAction sends the canned prompt behind a quick-launch chip.
func (s *Service) QuickAction(ctx context.Context, sessionID, action string, r Renderer) (router.Route, error) {
	if strings.TrimSpace(action) == "" {
		return router.Route{}, fmt.Errorf("quick action: %w", models.ErrInvalidInput)
	}
	return s.SendMessage(ctx, sessionID, catalog.QuickActionPrompt(action), r)
}

// ClickAgent plays the introduction of one agent.
func (s *Service) ClickAgent(ctx context.Context, sessionID, slug string, r Renderer) error {
	if strings.TrimSpace(slug) == "" {
		return fmt.Errorf("agent click: %w", models.ErrInvalidInput)
	}
	if _, err := s.store.Get(sessionID); err != nil {
		return err
	}
	observability.LoggerFromContext(ctx).Info("agent clicked", "session_id", sessionID, "agent", slug)
	return s.play(ctx, sessionID, s.planner.AgentClick(slug), r)
}

// ActivateTool opens a tool modal and closes it again.
func (s *Service) ActivateTool(ctx context.Context, sessionID, tool string, r Renderer) error {
	if strings.TrimSpace(tool) == "" {
		return fmt.Errorf("tool activation: %w", models.ErrInvalidInput)
	}
	if _, err := s.store.Get(sessionID); err != nil {
		return err
	}
	observability.LoggerFromContext(ctx).Info("tool activated", "session_id", sessionID, "tool", tool)
	return s.play(ctx, sessionID, s.planner.Tool(tool), r)
}

// RunCommand plays the reply to a response action button.
func (s *Service) RunCommand(ctx context.Context, sessionID, command string, r Renderer) error {
	if _, err := s.store.Get(sessionID); err != nil {
		return err
	}
	script, err := s.planner.Command(command)
	if err != nil {
		return err
	}
	return s.play(ctx, sessionID, script, r)
}

// StartCampaign activates agents for text and runs the campaign builder.
func (s *Service) StartCampaign(ctx context.Context, sessionID, text string, r Renderer) (router.Route, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return router.Route{}, models.ErrEmptyMessage
	}
	if _, err := s.store.Get(sessionID); err != nil {
		return router.Route{}, err
	}

	script, route := s.planner.Campaign(text)
	observability.LoggerFromContext(ctx).Info("campaign started",
		"session_id", sessionID,
		"category", route.Category)

	if err := s.play(ctx, sessionID, script, r); err != nil {
		return route, err
	}
	return route, nil
}

// Thoughts returns the latest stored thought process of a session.
func (s *Service) Thoughts(ctx context.Context, sessionID string) ([]models.ThoughtProcess, bool, error) {
	st, err := s.store.Get(sessionID)
	if err != nil {
		return nil, false, err
	}
	tps, ok := st.LatestThoughts()
	return tps, ok, nil
}

func (s *Service) play(ctx context.Context, sessionID string, script Script, r Renderer) error {
	if err := s.player.Play(ctx, sessionID, script, r); err != nil {
		return fmt.Errorf("play script: %w", err)
	}
	return nil
}
