// Package catalog holds the canned agent profiles, replies, prompts and tool
// texts the super agent plays back.
package catalog

import (
	"unicode"
	"unicode/utf8"

	"github.com/BerylCAtieno/marketing-super-agent/internal/models"
	"github.com/BerylCAtieno/marketing-super-agent/internal/router"
)

// DefaultThought is used for agents without a scripted thought process.
const DefaultThought = "Processed request and generated insights"

// CompletedTask replaces an agent's task text once its step completes.
const CompletedTask = "Analysis completed successfully"

const defaultCapability = "I can help with specialized marketing tasks."

var agents = []models.Agent{
	{
		Name:       router.AgentDeepResearch,
		Slug:       "research",
		Icon:       "fas fa-search",
		Color:      "#8b5cf6",
		Task:       "Analyzing market trends and competitor data",
		Capability: "I can analyze market trends, competitor insights, and industry benchmarks.",
		Thoughts: []string{
			"Analyzed current market trends in the target demographic",
			"Reviewed competitor campaigns and identified gaps",
			"Gathered industry benchmarks and performance data",
			"Synthesized insights for strategic recommendations",
		},
	},
	{
		Name:       router.AgentCreative,
		Slug:       "creative",
		Icon:       "fas fa-palette",
		Color:      "#ec4899",
		Task:       "Generating creative concepts and assets",
		Capability: "I can generate ad concepts, creative assets, and A/B testing variants.",
		Thoughts: []string{
			"Reviewed brand guidelines and creative assets",
			"Generated multiple creative concepts and variations",
			"Evaluated concepts for brand alignment and impact",
			"Selected top performing creative directions",
		},
	},
	{
		Name:       router.AgentJourney,
		Slug:       "journey",
		Icon:       "fas fa-route",
		Color:      "#f59e0b",
		Task:       "Mapping customer touchpoints and flows",
		Capability: "I can map customer touchpoints and optimize conversion flows.",
		Thoughts: []string{
			"Mapped current customer touchpoints and interactions",
			"Identified optimization opportunities in the funnel",
			"Designed improved customer flow and timing",
			"Validated journey against conversion benchmarks",
		},
	},
	{
		Name:       router.AgentPerformance,
		Slug:       "performance",
		Icon:       "fas fa-chart-bar",
		Color:      "#3b82f6",
		Task:       "Reviewing campaign performance data",
		Capability: "I can review analytics, optimize campaigns, and provide performance insights.",
		Thoughts: []string{
			"Analyzed historical campaign performance data",
			"Identified top and underperforming segments",
			"Calculated ROI and attribution metrics",
			"Developed optimization recommendations",
		},
	},
	{
		Name:       router.AgentAudience,
		Slug:       "audience",
		Icon:       "fas fa-users",
		Color:      "#10b981",
		Task:       "Identifying target segments",
		Capability: "I can segment audiences, create personas, and optimize targeting.",
		Thoughts: []string{
			"Segmented target audiences by behavior and demographics",
			"Created detailed audience personas and profiles",
			"Analyzed audience overlap and exclusion opportunities",
			"Validated segments against business objectives",
		},
	},
	{
		Name:       router.AgentPaidMedia,
		Slug:       "paid-media",
		Icon:       "fas fa-dollar-sign",
		Color:      "#14b8a6",
		Task:       "Optimizing budget allocation",
		Capability: "I can optimize budgets, allocate spend, and manage platform campaigns.",
		Thoughts: []string{
			"Evaluated current budget allocation across channels",
			"Analyzed channel performance and cost efficiency",
			"Identified reallocation opportunities for better ROI",
			"Calculated projected impact of budget changes",
		},
	},
	{
		Name:       router.AgentHistorical,
		Slug:       "historical",
		Icon:       "fas fa-history",
		Color:      "#6366f1",
		Task:       "Analyzing past campaign learnings",
		Capability: "I can analyze past campaign learnings and apply best practices.",
	},
	{
		Name:       router.AgentDecisioning,
		Slug:       "decisioning",
		Icon:       "fas fa-brain",
		Color:      "#ef4444",
		Task:       "Processing strategic recommendations",
		Capability: "I can provide AI-powered optimization and strategic recommendations.",
	},
}

// Agents returns every agent profile in panel order.
func Agents() []models.Agent {
	out := make([]models.Agent, len(agents))
	for i, a := range agents {
		out[i] = a
		out[i].Thoughts = append([]string(nil), a.Thoughts...)
	}
	return out
}

// Agent looks up the profile for name.
func Agent(name router.AgentName) (models.Agent, bool) {
	for _, a := range agents {
		if a.Name == name {
			return a, true
		}
	}
	return models.Agent{}, false
}

// AgentBySlug looks up a profile by its panel slug.
func AgentBySlug(slug string) (models.Agent, bool) {
	for _, a := range agents {
		if a.Slug == slug {
			return a, true
		}
	}
	return models.Agent{}, false
}

// Capability returns the capability sentence for an agent slug, falling
// back to a generic sentence for unknown slugs.
func Capability(slug string) string {
	if a, ok := AgentBySlug(slug); ok {
		return a.Capability
	}
	return defaultCapability
}

// Thoughts builds the thought process list for an activation set.
func Thoughts(names []router.AgentName) []models.ThoughtProcess {
	out := make([]models.ThoughtProcess, 0, len(names))
	for _, n := range names {
		tp := models.ThoughtProcess{Agent: string(n)}
		if a, ok := Agent(n); ok && len(a.Thoughts) > 0 {
			tp.Thoughts = append([]string(nil), a.Thoughts...)
		} else {
			tp.Thoughts = []string{DefaultThought}
		}
		out = append(out, tp)
	}
	return out
}

// Task returns the progress task text for name.
func Task(name router.AgentName) string {
	if a, ok := Agent(name); ok {
		return a.Task
	}
	return ""
}

// Title upper-cases the first letter of s.
func Title(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
