package catalog

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BerylCAtieno/marketing-super-agent/internal/router"
)

func TestEveryAgentHasProfile(t *testing.T) {
	require.Len(t, Agents(), len(router.AllAgents))
	for _, name := range router.AllAgents {
		a, ok := Agent(name)
		require.True(t, ok, name)
		assert.NotEmpty(t, a.Slug)
		assert.NotEmpty(t, a.Task)
		assert.NotEmpty(t, a.Capability)

		bySlug, ok := AgentBySlug(a.Slug)
		require.True(t, ok)
		assert.Equal(t, name, bySlug.Name)
	}
}

func TestThoughts(t *testing.T) {
	got := Thoughts([]router.AgentName{router.AgentCreative, router.AgentHistorical})
	require.Len(t, got, 2)
	assert.Equal(t, "Creative", got[0].Agent)
	assert.Len(t, got[0].Thoughts, 4)
	assert.Equal(t, []string{DefaultThought}, got[1].Thoughts)
}

func TestResponseFor(t *testing.T) {
	assert.Equal(t, "Campaign Brief Generator", ResponseFor(router.CategoryBrief).AgentName)
	assert.Equal(t, "Paid Media Optimizer", ResponseFor(router.CategoryPaidMedia).AgentName)
	assert.Equal(t, "SuperAgent", ResponseFor(router.CategoryGeneral).AgentName)
	assert.Equal(t, ResponseFor(router.CategoryGeneral), ResponseFor(router.Category("nope")))
	for _, c := range router.Categories {
		assert.NotEmpty(t, ResponseFor(c).Content, c)
	}
}

func TestFollowUps(t *testing.T) {
	for _, c := range router.Categories {
		if c == router.CategoryGeneral {
			assert.Empty(t, FollowUps(c))
			continue
		}
		assert.Len(t, FollowUps(c), 3, c)
	}
}

func TestQuickActionPrompt(t *testing.T) {
	assert.Equal(t, "Create an optimized budget plan across all marketing channels", QuickActionPrompt("budget"))
	assert.Equal(t, "Help me with seo", QuickActionPrompt("seo"))
	assert.Len(t, QuickActions(), 10)
}

func TestToolFor(t *testing.T) {
	tool := ToolFor("testing")
	assert.Equal(t, "Activating Testing Tool", tool.Title)
	assert.Equal(t, "Initializing A/B Testing framework...", tool.Action)

	unknown := ToolFor("crm")
	assert.Equal(t, "Opening crm tool...", unknown.Action)
	assert.Equal(t, "Activating Crm Tool", unknown.Title)
}

func TestTitleMultiByte(t *testing.T) {
	tool := ToolFor("émail")
	assert.Equal(t, "Activating Émail Tool", tool.Title)
	assert.True(t, utf8.ValidString(tool.Title))

	reply := AgentClickReply("ñews")
	assert.Equal(t, "Ñews Agent", reply.AgentName)
	assert.True(t, utf8.ValidString(reply.AgentName))

	assert.Equal(t, "", Title(""))
	assert.Equal(t, "42x", Title("42x"))
}

func TestAgentClick(t *testing.T) {
	assert.Equal(t, "🤖 Activating journey agent to help with specialized tasks...", AgentClickNotice("journey"))

	reply := AgentClickReply("journey")
	assert.Equal(t, "Journey Agent", reply.AgentName)
	assert.Equal(t, "I can map customer touchpoints and optimize conversion flows. What would you like me to focus on?", reply.Content)

	assert.Equal(t, "I can help with specialized marketing tasks. What would you like me to focus on?", AgentClickReply("seo").Content)
}

func TestCommand(t *testing.T) {
	r, ok := Command("show-budget-plan")
	require.True(t, ok)
	assert.Equal(t, "Paid Media Optimizer", r.AgentName)

	_, ok = Command("launch-rocket")
	assert.False(t, ok)
	assert.Contains(t, Commands(), "reallocate-budget")
}
