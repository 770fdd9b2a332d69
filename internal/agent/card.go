// Package agent describes the super agent to A2A clients.
package agent

import (
	"fmt"
	"strings"

	"github.com/BerylCAtieno/marketing-super-agent/internal/catalog"
	"github.com/BerylCAtieno/marketing-super-agent/internal/router"
)

const (
	Name        = "Marketing Super Agent"
	Version     = "1.0.0"
	Description = "Routes marketing requests to specialist agents for campaign briefs, creative, journeys, performance, audiences and paid media."

	// EndpointPath is where JSON-RPC requests are served.
	EndpointPath = "/a2a/superagent"
)

type Card struct {
	Name               string       `json:"name"`
	Description        string       `json:"description"`
	URL                string       `json:"url"`
	Version            string       `json:"version"`
	Capabilities       Capabilities `json:"capabilities"`
	DefaultInputModes  []string     `json:"defaultInputModes"`
	DefaultOutputModes []string     `json:"defaultOutputModes"`
	Skills             []Skill      `json:"skills"`
}

type Capabilities struct {
	Streaming              bool `json:"streaming"`
	PushNotifications      bool `json:"pushNotifications"`
	StateTransitionHistory bool `json:"stateTransitionHistory"`
}

type Skill struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Examples    []string `json:"examples,omitempty"`
}

// NewCard builds the agent card served at baseURL. There is one skill per
// routed category.
func NewCard(baseURL string) Card {
	card := Card{
		Name:               Name,
		Description:        Description,
		URL:                strings.TrimRight(baseURL, "/") + EndpointPath,
		Version:            Version,
		DefaultInputModes:  []string{"text/plain"},
		DefaultOutputModes: []string{"text/plain", "application/json"},
	}

	for _, c := range router.Categories {
		resp := catalog.ResponseFor(c)
		skill := Skill{
			ID:          string(c),
			Name:        resp.AgentName,
			Description: skillDescription(c),
			Tags:        router.Triggers(c),
		}
		if ex := catalog.FollowUps(c); len(ex) > 0 {
			skill.Examples = ex
		}
		card.Skills = append(card.Skills, skill)
	}
	return card
}

func skillDescription(c router.Category) string {
	agents := router.Agents(c)
	names := make([]string, 0, len(agents))
	for _, a := range agents {
		names = append(names, string(a))
	}
	return fmt.Sprintf("Activates %s.", strings.Join(names, ", "))
}
