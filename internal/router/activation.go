package router

// AgentName is one of the eight specialist personas on the agent panel.
type AgentName string

const (
	AgentDeepResearch AgentName = "Deep Research"
	AgentCreative     AgentName = "Creative"
	AgentJourney      AgentName = "Journey"
	AgentPerformance  AgentName = "Performance"
	AgentAudience     AgentName = "Audience"
	AgentPaidMedia    AgentName = "Paid Media"
	AgentHistorical   AgentName = "Historical"
	AgentDecisioning  AgentName = "AI Decisioning"
)

// AllAgents is the fixed agent universe in panel order.
var AllAgents = []AgentName{
	AgentDeepResearch,
	AgentCreative,
	AgentJourney,
	AgentPerformance,
	AgentAudience,
	AgentPaidMedia,
	AgentHistorical,
	AgentDecisioning,
}

var activations = map[Category][]AgentName{
	CategoryBrief:       {AgentDeepResearch, AgentPerformance, AgentAudience},
	CategoryCreative:    {AgentCreative, AgentDeepResearch},
	CategoryJourney:     {AgentJourney, AgentAudience},
	CategoryPerformance: {AgentPerformance, AgentDeepResearch},
	CategoryAudience:    {AgentAudience, AgentDeepResearch},
	CategoryPaidMedia:   {AgentPaidMedia, AgentPerformance},
	CategoryGeneral:     {AgentDeepResearch},
}

// Agents returns the activation set for c. Unknown categories get the
// general set. The returned slice is a copy and may be modified.
func Agents(c Category) []AgentName {
	set, ok := activations[c]
	if !ok {
		set = activations[CategoryGeneral]
	}
	return append([]AgentName(nil), set...)
}

// Known reports whether name belongs to the agent universe.
func Known(name AgentName) bool {
	for _, a := range AllAgents {
		if a == name {
			return true
		}
	}
	return false
}

// Route is the router's full answer for one message.
type Route struct {
	Category Category    `json:"category"`
	Agents   []AgentName `json:"agents"`
}

// Dispatch classifies message and looks up its activation set.
func Dispatch(message string) Route {
	c := Classify(message)
	return Route{Category: c, Agents: Agents(c)}
}
