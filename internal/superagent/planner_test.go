package superagent

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BerylCAtieno/marketing-super-agent/internal/catalog"
	"github.com/BerylCAtieno/marketing-super-agent/internal/models"
	"github.com/BerylCAtieno/marketing-super-agent/internal/router"
	"github.com/BerylCAtieno/marketing-super-agent/internal/session"
)

func fixedPlanner() *Planner {
	return &Planner{newID: func() string { return "fixed" }}
}

func kinds(s Script) []Kind {
	out := make([]Kind, 0, len(s))
	for _, ev := range s {
		out = append(out, ev.Kind)
	}
	return out
}

func TestPlannerMessageBrief(t *testing.T) {
	script, route := fixedPlanner().Message("Create a campaign brief for Q3")

	assert.Equal(t, router.CategoryBrief, route.Category)
	assert.Equal(t, []router.AgentName{router.AgentDeepResearch, router.AgentPerformance, router.AgentAudience}, route.Agents)

	sorted := script.Sorted()
	require.Len(t, sorted, 14)

	first := sorted[0]
	assert.Equal(t, KindMessage, first.Kind)
	assert.Equal(t, time.Duration(0), first.At)
	assert.Equal(t, models.SenderUser, first.Message.Sender)
	assert.Equal(t, models.DefaultAgentName, first.Message.AgentName)

	notice := sorted[1]
	assert.Equal(t, RouteDelay, notice.At)
	assert.Equal(t, catalog.RoutingNotice, notice.Message.Content)
	assert.Equal(t, models.DefaultAgentName, notice.Message.AgentName)

	assert.Equal(t, []Kind{KindProgressStarted, KindThoughtsStored, KindAgentsActivated}, kinds(sorted[2:5]))
	for _, ev := range sorted[2:5] {
		assert.Equal(t, 1500*time.Millisecond, ev.At)
	}
	assert.Equal(t, "progress-fixed", sorted[2].ProgressID)

	last := sorted[len(sorted)-1]
	assert.Equal(t, KindFollowUps, last.Kind)
	assert.Equal(t, 8500*time.Millisecond, last.At)
	assert.Len(t, last.Suggestions, 3)
	assert.Equal(t, 8500*time.Millisecond, script.Duration())

	resp := sorted[len(sorted)-3]
	assert.Equal(t, KindMessage, resp.Kind)
	assert.Equal(t, 7500*time.Millisecond, resp.At)
	assert.Equal(t, "Campaign Brief Generator", resp.Message.AgentName)
	assert.Equal(t, KindThoughtsOffered, sorted[len(sorted)-2].Kind)
}

func TestPlannerMessageStepTimings(t *testing.T) {
	script, _ := fixedPlanner().Message("optimize my analytics")

	var working, done []time.Duration
	for _, ev := range script {
		if ev.Kind != KindAgentStep {
			continue
		}
		switch ev.Status {
		case session.StepWorking:
			working = append(working, ev.At)
		case session.StepCompleted:
			assert.Equal(t, catalog.CompletedTask, ev.Task)
			done = append(done, ev.At)
		}
	}
	assert.Equal(t, []time.Duration{2000 * time.Millisecond, 2500 * time.Millisecond}, working)
	assert.Equal(t, []time.Duration{4500 * time.Millisecond, 5500 * time.Millisecond}, done)
}

func TestPlannerMessageGeneralHasNoFollowUps(t *testing.T) {
	script, route := fixedPlanner().Message("hello there")

	assert.Equal(t, router.CategoryGeneral, route.Category)
	for _, ev := range script {
		assert.NotEqual(t, KindFollowUps, ev.Kind)
	}
	assert.Equal(t, 7500*time.Millisecond, script.Duration())
}

func TestPlannerAgentClick(t *testing.T) {
	script := fixedPlanner().AgentClick("creative")

	require.Len(t, script, 2)
	assert.Equal(t, catalog.AgentClickNotice("creative"), script[0].Message.Content)
	assert.Equal(t, AgentReplyDelay, script[1].At)
	assert.Equal(t, "Creative Agent", script[1].Message.AgentName)
}

func TestPlannerTool(t *testing.T) {
	script := fixedPlanner().Tool("budget")

	require.Len(t, script, 2)
	assert.Equal(t, KindToolOpened, script[0].Kind)
	assert.Equal(t, "Activating Budget Tool", script[0].Tool.Title)
	assert.Equal(t, KindToolClosed, script[1].Kind)
	assert.Equal(t, ToolCloseDelay, script[1].At)
}

func TestPlannerCommand(t *testing.T) {
	script, err := fixedPlanner().Command("show-budget-plan")
	require.NoError(t, err)
	require.Len(t, script, 1)
	assert.Equal(t, "Paid Media Optimizer", script[0].Message.AgentName)

	_, err = fixedPlanner().Command("launch-rockets")
	assert.ErrorIs(t, err, models.ErrUnknownCommand)
}

func TestPlannerCampaign(t *testing.T) {
	script, route := fixedPlanner().Campaign("grow email signups")

	assert.Equal(t, router.CategoryJourney, route.Category)
	assert.Equal(t, []Kind{
		KindAgentsActivated, KindBuilderOpened,
		KindBuilderProgress, KindBuilderProgress, KindBuilderProgress,
	}, kinds(script))
	assert.Equal(t, 6*time.Second, script.Duration())
	assert.Equal(t, 100, script[len(script)-1].Percent)
}

func TestScriptSortedIsStable(t *testing.T) {
	s := Script{
		{Kind: KindMessage, At: time.Second},
		{Kind: KindToolOpened, At: 0},
		{Kind: KindToolClosed, At: 0},
	}
	assert.Equal(t, []Kind{KindToolOpened, KindToolClosed, KindMessage}, kinds(s.Sorted()))
	assert.Equal(t, KindMessage, s[0].Kind)
}
