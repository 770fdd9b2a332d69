package router

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    Category
	}{
		{"brief", "Create a campaign brief", CategoryBrief},
		{"campaign plan", "Draft a campaign plan for Q3", CategoryBrief},
		{"creative beats later keywords", "Generate a creative ad", CategoryCreative},
		{"visual", "I need a visual", CategoryCreative},
		{"journey", "Map the customer journey", CategoryJourney},
		{"email", "Set up an email sequence", CategoryJourney},
		{"performance", "How is performance this week?", CategoryPerformance},
		{"analytics", "Show me analytics", CategoryPerformance},
		{"audience", "Who is my audience?", CategoryAudience},
		{"segment", "Build a segment", CategoryAudience},
		{"budget", "Plan my budget", CategoryPaidMedia},
		{"spend", "Cut spend on display", CategoryPaidMedia},
		{"media", "Paid media mix", CategoryPaidMedia},
		{"no trigger", "hello there", CategoryGeneral},
		{"empty", "", CategoryGeneral},
		{"case insensitive", "CREATE A CAMPAIGN BRIEF", CategoryBrief},
		{"budget loses to creative", "budget for creative", CategoryCreative},
		{"ad inside another word", "read this", CategoryCreative},
		{"optimize beats budget", "optimize budget", CategoryPerformance},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.message))
		})
	}
}

func TestClassifyBudgetWithoutEarlierKeyword(t *testing.T) {
	for _, msg := range []string{"budget", "What is our budget?", "Monthly BUDGET review", "the budget"} {
		got := Classify(msg)
		assert.Equal(t, CategoryPaidMedia, got, msg)
	}
}

func TestClassifyIsTotalAndIdempotent(t *testing.T) {
	inputs := []string{"", "  ", "brief", "Creative", "zzz", "optimize the email flow", "narrow the target", "Ünïcödé"}
	for _, in := range inputs {
		first := Classify(in)
		assert.True(t, first.Valid(), "category %q for %q", first, in)
		assert.Equal(t, first, Classify(in))
		assert.Equal(t, first, Classify(strings.ToUpper(in)))
	}
}

func TestAgents(t *testing.T) {
	assert.Equal(t, []AgentName{AgentDeepResearch, AgentPerformance, AgentAudience}, Agents(CategoryBrief))
	assert.Equal(t, []AgentName{AgentDeepResearch}, Agents(CategoryGeneral))
	assert.Equal(t, []AgentName{AgentPaidMedia, AgentPerformance}, Agents(CategoryPaidMedia))
	assert.Equal(t, Agents(CategoryGeneral), Agents(Category("unknown")))
}

func TestAgentsNonEmptyAndKnown(t *testing.T) {
	for _, c := range Categories {
		set := Agents(c)
		require.NotEmpty(t, set, c)
		for _, a := range set {
			assert.True(t, Known(a), "%s activates unknown agent %q", c, a)
		}
	}
	assert.Len(t, AllAgents, 8)
}

func TestAgentsReturnsCopy(t *testing.T) {
	set := Agents(CategoryBrief)
	set[0] = "mutated"
	assert.Equal(t, AgentDeepResearch, Agents(CategoryBrief)[0])
}

func TestDispatch(t *testing.T) {
	r := Dispatch("Create a campaign brief")
	assert.Equal(t, CategoryBrief, r.Category)
	assert.Equal(t, []AgentName{AgentDeepResearch, AgentPerformance, AgentAudience}, r.Agents)

	r = Dispatch("hello there")
	assert.Equal(t, CategoryGeneral, r.Category)
	assert.Equal(t, []AgentName{AgentDeepResearch}, r.Agents)
}

func TestTriggers(t *testing.T) {
	assert.Equal(t, []string{"budget", "spend", "media"}, Triggers(CategoryPaidMedia))
	assert.Nil(t, Triggers(CategoryGeneral))
}
