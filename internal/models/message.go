package models

import "time"

type Sender string

const (
	SenderUser  Sender = "user"
	SenderAgent Sender = "agent"
)

// DefaultAgentName is the author of agent messages that no specialist owns.
const DefaultAgentName = "SuperAgent"

// MessageRecord is one displayed chat message.
type MessageRecord struct {
	Content   string    `json:"content"`
	Sender    Sender    `json:"sender"`
	AgentName string    `json:"agent_name"`
	Timestamp time.Time `json:"timestamp"`
}

// ThoughtProcess is the list of reasoning steps shown for one agent.
type ThoughtProcess struct {
	Agent    string   `json:"agent"`
	Thoughts []string `json:"thoughts"`
}
