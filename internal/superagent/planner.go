package superagent

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/BerylCAtieno/marketing-super-agent/internal/catalog"
	"github.com/BerylCAtieno/marketing-super-agent/internal/models"
	"github.com/BerylCAtieno/marketing-super-agent/internal/router"
	"github.com/BerylCAtieno/marketing-super-agent/internal/session"
)

// Scripted delays of the chat flow.
const (
	RouteDelay      = 500 * time.Millisecond
	ProgressDelay   = 1000 * time.Millisecond
	ResponseDelay   = 5000 * time.Millisecond
	RenderDelay     = 2000 * time.Millisecond
	FollowUpDelay   = 1000 * time.Millisecond
	StepStartEvery  = 500 * time.Millisecond
	StepDoneEvery   = 1000 * time.Millisecond
	StepDoneLag     = 2000 * time.Millisecond
	AgentReplyDelay = 1000 * time.Millisecond
	ToolCloseDelay  = 3000 * time.Millisecond
	BuilderDelay    = 500 * time.Millisecond
	BuilderEvery    = 2000 * time.Millisecond
)

// Planner turns user actions into scripts. It does not touch session state.
type Planner struct {
	newID func() string
}

func NewPlanner() *Planner {
	return &Planner{newID: func() string { return uuid.New().String() }}
}

func userMessage(text string) *models.MessageRecord {
	return &models.MessageRecord{Content: text, Sender: models.SenderUser, AgentName: models.DefaultAgentName}
}

func agentMessage(agent, text string) *models.MessageRecord {
	if agent == "" {
		agent = models.DefaultAgentName
	}
	return &models.MessageRecord{Content: text, Sender: models.SenderAgent, AgentName: agent}
}

// Message plans the full response to a typed chat message.
func (p *Planner) Message(text string) (Script, router.Route) {
	route := router.Dispatch(text)
	progressID := "progress-" + p.newID()

	routed := RouteDelay
	progressAt := routed + ProgressDelay
	responseAt := routed + ResponseDelay + RenderDelay

	script := Script{
		{Kind: KindMessage, At: 0, Message: userMessage(text)},
		{Kind: KindMessage, At: routed, Message: agentMessage("", catalog.RoutingNotice)},
		{Kind: KindProgressStarted, At: progressAt, ProgressID: progressID, Agents: route.Agents},
		{Kind: KindThoughtsStored, At: progressAt, ProgressID: progressID, Thoughts: catalog.Thoughts(route.Agents)},
		{Kind: KindAgentsActivated, At: progressAt, Agents: route.Agents},
	}

	for i, agent := range route.Agents {
		n := time.Duration(i + 1)
		script = append(script,
			Event{
				Kind:       KindAgentStep,
				At:         progressAt + n*StepStartEvery,
				ProgressID: progressID,
				Agent:      agent,
				Status:     session.StepWorking,
			},
			Event{
				Kind:       KindAgentStep,
				At:         progressAt + n*StepDoneEvery + StepDoneLag,
				ProgressID: progressID,
				Agent:      agent,
				Status:     session.StepCompleted,
				Task:       catalog.CompletedTask,
			},
		)
	}

	resp := catalog.ResponseFor(route.Category)
	script = append(script,
		Event{Kind: KindMessage, At: responseAt, Message: agentMessage(resp.AgentName, resp.Content)},
		Event{Kind: KindThoughtsOffered, At: responseAt, ProgressID: progressID},
	)

	if suggestions := catalog.FollowUps(route.Category); len(suggestions) > 0 {
		script = append(script, Event{Kind: KindFollowUps, At: responseAt + FollowUpDelay, Suggestions: suggestions})
	}

	return script, route
}

// AgentClick plans the reply when an agent card is clicked.
func (p *Planner) AgentClick(slug string) Script {
	reply := catalog.AgentClickReply(slug)
	return Script{
		{Kind: KindMessage, At: 0, Message: agentMessage("", catalog.AgentClickNotice(slug))},
		{Kind: KindMessage, At: AgentReplyDelay, Message: agentMessage(reply.AgentName, reply.Content)},
	}
}

// Tool plans a tool modal that closes itself.
func (p *Planner) Tool(name string) Script {
	tool := catalog.ToolFor(name)
	return Script{
		{Kind: KindToolOpened, At: 0, Tool: &tool, Text: tool.Action},
		{Kind: KindToolClosed, At: ToolCloseDelay, Tool: &tool},
	}
}

// Command plans the reply to a response action button.
func (p *Planner) Command(name string) (Script, error) {
	resp, ok := catalog.Command(name)
	if !ok {
		return nil, fmt.Errorf("command %q: %w", name, models.ErrUnknownCommand)
	}
	return Script{
		{Kind: KindMessage, At: 0, Message: agentMessage(resp.AgentName, resp.Content)},
	}, nil
}

// Campaign plans the campaign builder flow started from the growth studio.
func (p *Planner) Campaign(text string) (Script, router.Route) {
	route := router.Dispatch(text)
	script := Script{
		{Kind: KindAgentsActivated, At: 0, Agents: route.Agents},
		{Kind: KindBuilderOpened, At: BuilderDelay, Text: text},
	}
	for i, stage := range catalog.BuilderStages {
		script = append(script, Event{
			Kind:    KindBuilderProgress,
			At:      time.Duration(i+1) * BuilderEvery,
			Percent: stage.Percent,
			Text:    stage.Text,
		})
	}
	return script, route
}
