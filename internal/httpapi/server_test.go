package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BerylCAtieno/marketing-super-agent/internal/router"
	"github.com/BerylCAtieno/marketing-super-agent/internal/session"
	"github.com/BerylCAtieno/marketing-super-agent/internal/superagent"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := session.NewStore(16)
	require.NoError(t, err)
	svc := superagent.NewService(store, superagent.WithPace(0))

	r := gin.New()
	r.Use(CORS(), RequestID(), RequestLogger())
	NewServer(svc).Register(r)
	return r
}

func do(t *testing.T, r http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

type sessionBody struct {
	ID         string `json:"id"`
	StatusLine string `json:"status_line"`
	History    []struct {
		Content   string `json:"content"`
		Sender    string `json:"sender"`
		AgentName string `json:"agent_name"`
	} `json:"history"`
	Agents  map[string]string `json:"agents"`
	Builder *struct {
		Percent int `json:"percent"`
	} `json:"builder"`
}

type playBody struct {
	Route  *router.Route `json:"route"`
	Events []struct {
		Kind        string   `json:"kind"`
		AtMS        int64    `json:"at_ms"`
		Suggestions []string `json:"suggestions"`
		StatusLine  string   `json:"status_line"`
	} `json:"events"`
	Session sessionBody `json:"session"`
}

func createSession(t *testing.T, r http.Handler) string {
	t.Helper()
	w := do(t, r, http.MethodPost, "/sessions", "")
	require.Equal(t, http.StatusCreated, w.Code)
	body := decode[sessionBody](t, w)
	require.NotEmpty(t, body.ID)
	assert.Equal(t, "8 agents ready", body.StatusLine)
	assert.Len(t, body.Agents, 8)
	return body.ID
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t)
	w := do(t, r, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
	assert.NotEmpty(t, w.Header().Get(HeaderRequestID))
}

func TestRequestIDIsEchoed(t *testing.T) {
	r := newTestRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(HeaderRequestID, "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(HeaderRequestID))
}

func TestCORSPreflight(t *testing.T) {
	r := newTestRouter(t)
	w := do(t, r, http.MethodOptions, "/sessions", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestClassify(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodPost, "/classify", `{"text":"Increase my budget"}`)
	require.Equal(t, http.StatusOK, w.Code)
	route := decode[router.Route](t, w)
	assert.Equal(t, router.CategoryPaidMedia, route.Category)
	assert.Equal(t, []router.AgentName{router.AgentPaidMedia, router.AgentPerformance}, route.Agents)

	w = do(t, r, http.MethodPost, "/classify", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode[errorResponse](t, w).Error, "invalid input")
}

func TestAgentsAndCatalog(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodGet, "/agents", "")
	require.Equal(t, http.StatusOK, w.Code)
	agents := decode[[]map[string]any](t, w)
	assert.Len(t, agents, 8)

	w = do(t, r, http.MethodGet, "/catalog", "")
	require.Equal(t, http.StatusOK, w.Code)
	cat := decode[catalogResponse](t, w)
	assert.Contains(t, cat.QuickActions, "budget")
	assert.Contains(t, cat.Tools, "journey-designer")
	assert.Contains(t, cat.Commands, "show-campaign-brief")
}

func TestSendMessage(t *testing.T) {
	r := newTestRouter(t)
	id := createSession(t, r)

	w := do(t, r, http.MethodPost, "/sessions/"+id+"/messages", `{"text":"Create a campaign brief"}`)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode[playBody](t, w)
	require.NotNil(t, body.Route)
	assert.Equal(t, router.CategoryBrief, body.Route.Category)
	require.NotEmpty(t, body.Events)

	last := body.Events[len(body.Events)-1]
	assert.Equal(t, "follow_ups", last.Kind)
	assert.Equal(t, int64(8500), last.AtMS)
	assert.Len(t, last.Suggestions, 3)
	assert.Equal(t, "3 agents working", last.StatusLine)

	require.Len(t, body.Session.History, 3)
	assert.Equal(t, "user", body.Session.History[0].Sender)
	assert.Equal(t, "Campaign Brief Generator", body.Session.History[2].AgentName)
	assert.Equal(t, "3 agents working", body.Session.StatusLine)

	w = do(t, r, http.MethodGet, "/sessions/"+id, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[sessionBody](t, w).History, 3)

	w = do(t, r, http.MethodGet, "/sessions/"+id+"/thoughts", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[thoughtsResponse](t, w).Thoughts, 3)
}

func TestSendMessageStream(t *testing.T) {
	r := newTestRouter(t)
	id := createSession(t, r)

	w := do(t, r, http.MethodPost, "/sessions/"+id+"/messages?stream=1", `{"text":"Generate a creative ad"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/event-stream")

	out := w.Body.String()
	assert.Contains(t, out, "event:message")
	assert.Contains(t, out, "event:agent_step")
	assert.Contains(t, out, "event:follow_ups")
	assert.Contains(t, out, "event:done")
	assert.Contains(t, out, `"category":"creative"`)
}

func TestStreamErrorBeforeFirstEvent(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodPost, "/sessions/missing/messages?stream=1", `{"text":"hi"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, decode[errorResponse](t, w).Error, "session not found")
}

func TestSessionErrors(t *testing.T) {
	r := newTestRouter(t)
	id := createSession(t, r)

	tests := []struct {
		name   string
		method string
		target string
		body   string
		status int
	}{
		{"unknown session", http.MethodGet, "/sessions/missing", "", http.StatusNotFound},
		{"message to unknown session", http.MethodPost, "/sessions/missing/messages", `{"text":"hi"}`, http.StatusNotFound},
		{"missing text", http.MethodPost, "/sessions/" + id + "/messages", `{}`, http.StatusBadRequest},
		{"blank text", http.MethodPost, "/sessions/" + id + "/messages", `{"text":"   "}`, http.StatusBadRequest},
		{"unknown command", http.MethodPost, "/sessions/" + id + "/commands/explode", "", http.StatusBadRequest},
		{"no thoughts yet", http.MethodGet, "/sessions/" + id + "/thoughts", "", http.StatusNotFound},
		{"campaign without text", http.MethodPost, "/sessions/" + id + "/campaigns", `{"text":""}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, r, tt.method, tt.target, tt.body)
			assert.Equal(t, tt.status, w.Code)
			assert.NotEmpty(t, decode[errorResponse](t, w).Error)
		})
	}
}

func TestSessionActions(t *testing.T) {
	r := newTestRouter(t)
	id := createSession(t, r)

	w := do(t, r, http.MethodPost, "/sessions/"+id+"/agents/creative/click", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decode[playBody](t, w)
	assert.Nil(t, body.Route)
	assert.Equal(t, "Creative Agent", body.Session.History[len(body.Session.History)-1].AgentName)

	w = do(t, r, http.MethodPost, "/sessions/"+id+"/actions/audience", "")
	require.Equal(t, http.StatusOK, w.Code)
	body = decode[playBody](t, w)
	require.NotNil(t, body.Route)
	assert.Equal(t, router.CategoryAudience, body.Route.Category)

	w = do(t, r, http.MethodPost, "/sessions/"+id+"/tools/templates", "")
	require.Equal(t, http.StatusOK, w.Code)
	body = decode[playBody](t, w)
	require.Len(t, body.Events, 2)
	assert.Equal(t, "tool_opened", body.Events[0].Kind)
	assert.Equal(t, "tool_closed", body.Events[1].Kind)

	w = do(t, r, http.MethodPost, "/sessions/"+id+"/commands/show-journey-map", "")
	require.Equal(t, http.StatusOK, w.Code)
	body = decode[playBody](t, w)
	assert.Equal(t, "Journey Designer", body.Session.History[len(body.Session.History)-1].AgentName)

	w = do(t, r, http.MethodPost, "/sessions/"+id+"/campaigns", `{"text":"Holiday email flow"}`)
	require.Equal(t, http.StatusOK, w.Code)
	body = decode[playBody](t, w)
	require.NotNil(t, body.Session.Builder)
	assert.Equal(t, 100, body.Session.Builder.Percent)
	assert.Equal(t, "2 agents working", body.Session.StatusLine)
}
