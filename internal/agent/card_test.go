package agent

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BerylCAtieno/marketing-super-agent/internal/router"
)

func TestNewCard(t *testing.T) {
	card := NewCard("http://localhost:8080/")

	assert.Equal(t, "http://localhost:8080/a2a/superagent", card.URL)
	require.Len(t, card.Skills, len(router.Categories))

	brief := card.Skills[0]
	assert.Equal(t, "brief", brief.ID)
	assert.Equal(t, "Campaign Brief Generator", brief.Name)
	assert.Equal(t, "Activates Deep Research, Performance, Audience.", brief.Description)
	assert.Equal(t, []string{"brief", "campaign plan"}, brief.Tags)
	assert.Len(t, brief.Examples, 3)

	general := card.Skills[len(card.Skills)-1]
	assert.Equal(t, "general", general.ID)
	assert.Empty(t, general.Examples)
}

func TestCardJSON(t *testing.T) {
	data, err := json.Marshal(NewCard("https://agents.example.com"))
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, Name, raw["name"])
	assert.Contains(t, raw, "defaultInputModes")
	assert.Contains(t, raw, "capabilities")
}
