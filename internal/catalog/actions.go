package catalog

import (
	"fmt"
	"sort"

	"github.com/BerylCAtieno/marketing-super-agent/internal/models"
)

var quickActions = map[string]string{
	"templates":       "Show me campaign templates for different industries and goals",
	"audience":        "Help me build detailed audience segments for my campaign",
	"creative":        "Generate creative assets and A/B testing variants for my campaign",
	"budget":          "Create an optimized budget plan across all marketing channels",
	"performance":     "Analyze my current campaign performance and provide optimization recommendations",
	"testing":         "Set up A/B testing framework for my campaign elements",
	"research":        "Conduct market research and competitor analysis for my industry",
	"automation":      "Design marketing automation workflows and triggered campaigns",
	"analytics":       "Create advanced analytics dashboard with custom KPIs and attribution modeling",
	"personalization": "Build personalized customer experiences and dynamic content strategies",
}

// QuickActionPrompt returns the prompt a quick-launch chip sends.
func QuickActionPrompt(action string) string {
	if p, ok := quickActions[action]; ok {
		return p
	}
	return fmt.Sprintf("Help me with %s", action)
}

// QuickActions lists the known chip names, sorted.
func QuickActions() []string {
	return sortedKeys(quickActions)
}

const toolDescription = "This tool will be available in the full campaign builder interface."

var toolActions = map[string]string{
	"templates":   "Opening Campaign Templates library...",
	"audience":    "Launching Audience Builder with AI segmentation...",
	"creative":    "Starting Creative Studio with brand asset integration...",
	"budget":      "Opening Budget Planner with ROI optimization...",
	"performance": "Loading Performance Tracker with real-time analytics...",
	"testing":     "Initializing A/B Testing framework...",
	"research":    "Activating Market Research with competitor analysis...",

	// campaign builder steps
	"audience-builder": "Opening advanced audience segmentation tools...",
	"creative-studio":  "Launching AI-powered creative generation...",
	"budget-planner":   "Loading budget optimization algorithms...",
	"journey-designer": "Initializing customer journey mapping...",
}

// ToolFor describes the modal shown when tool is activated.
func ToolFor(tool string) models.Tool {
	action, ok := toolActions[tool]
	if !ok {
		action = fmt.Sprintf("Opening %s tool...", tool)
	}
	return models.Tool{
		Name:        tool,
		Title:       fmt.Sprintf("Activating %s Tool", Title(tool)),
		Action:      action,
		Description: toolDescription,
	}
}

// Tools lists the known tool names, sorted.
func Tools() []string {
	return sortedKeys(toolActions)
}

var commands = map[string]models.Response{
	"show-campaign-brief": {
		AgentName: "Campaign Brief Generator",
		Content:   "🎯 **Campaign Brief Generated!** Here's your comprehensive brief with objectives, audience segments, and recommended strategies. Ready to proceed with creative generation or journey design?",
	},
	"show-creative-assets": {
		AgentName: "Creative Generator",
		Content:   "🎨 **Creative Assets Ready!** I've generated 5 variants with predicted CTR scores. Variant A shows 23% higher engagement potential. Ready to set up A/B testing?",
	},
	"show-journey-map": {
		AgentName: "Journey Designer",
		Content:   "🗺️ **Customer Journey Mapped!** Your optimized journey includes 5 touchpoints with 8.2% predicted conversion rate. Email → SMS → Retargeting sequence shows highest performance.",
	},
	"show-performance-dashboard": {
		AgentName: "Performance Analyst",
		Content:   "📊 **Performance Analysis Complete!** Current ROAS: 2.3x. TikTok overperforming by 40%. Recommend shifting 15% budget from Display to TikTok for +$12K additional revenue.",
	},
	"show-audience-insights": {
		AgentName: "Audience Specialist",
		Content:   "👥 **Audience Analysis Ready!** Identified 4 segments: Core Shoppers (125K), Browse Abandoners (89K), VIP Lookalikes (200K), Competitor Shoppers (156K). Core Shoppers show highest LTV.",
	},
	"show-budget-plan": {
		AgentName: "Paid Media Optimizer",
		Content:   "💰 **Budget Plan Optimized!** Recommended allocation: Google 40% ($30K), Meta 33% ($25K), TikTok 20% ($15K), Testing 7% ($5K). Projected 2.8x ROAS improvement.",
	},
	"refine": {
		AgentName: models.DefaultAgentName,
		Content:   "🔄 Refining recommendations with additional market data and competitor analysis...",
	},
	"more-variants": {
		AgentName: models.DefaultAgentName,
		Content:   "➕ Generating 3 additional creative variants with different messaging approaches...",
	},
	"optimize-journey": {
		AgentName: models.DefaultAgentName,
		Content:   "⚡ Optimizing journey timing and touchpoint sequence based on behavioral data...",
	},
	"apply-optimizations": {
		AgentName: models.DefaultAgentName,
		Content:   "🚀 Applying performance optimizations: budget reallocation initiated, underperforming ads paused, winning creative scaled.",
	},
	"create-lookalikes": {
		AgentName: models.DefaultAgentName,
		Content:   "👯 Creating lookalike audiences based on your top customer segments. Estimated reach: 2.3M potential customers.",
	},
	"reallocate-budget": {
		AgentName: models.DefaultAgentName,
		Content:   "🔄 Budget reallocation in progress: moving $8K from underperforming Display to high-performing TikTok campaigns.",
	},
}

// Command returns the reply for a response action button.
func Command(name string) (models.Response, bool) {
	r, ok := commands[name]
	return r, ok
}

// Commands lists the known command names, sorted.
func Commands() []string {
	return sortedKeys(commands)
}

// AgentClickNotice is posted when an agent card is clicked.
func AgentClickNotice(slug string) string {
	return fmt.Sprintf("🤖 Activating %s agent to help with specialized tasks...", slug)
}

// AgentClickReply is the follow-up from the clicked agent.
func AgentClickReply(slug string) models.Response {
	return models.Response{
		AgentName: Title(slug) + " Agent",
		Content:   Capability(slug) + " What would you like me to focus on?",
	}
}

// BuilderStage is one step of the campaign builder progress bar.
type BuilderStage struct {
	Percent int
	Text    string
}

// BuilderStages are shown in order while a campaign is processed.
var BuilderStages = []BuilderStage{
	{50, "Generating campaign strategy..."},
	{75, "Identifying target segments..."},
	{100, "Campaign brief ready!"},
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
