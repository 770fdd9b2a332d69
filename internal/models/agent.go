package models

import "github.com/BerylCAtieno/marketing-super-agent/internal/router"

// Agent holds the display profile of one specialist.
type Agent struct {
	Name       router.AgentName `json:"name"`
	Slug       string           `json:"slug"`
	Icon       string           `json:"icon"`
	Color      string           `json:"color"`
	Task       string           `json:"task"`
	Capability string           `json:"capability"`
	Thoughts   []string         `json:"thoughts"`
}

// Response is the canned reply a category produces.
type Response struct {
	AgentName string `json:"agent_name"`
	Content   string `json:"content"`
}

// Tool is a campaign tool that opens in a modal.
type Tool struct {
	Name        string `json:"name"`
	Title       string `json:"title"`
	Action      string `json:"action"`
	Description string `json:"description"`
}
