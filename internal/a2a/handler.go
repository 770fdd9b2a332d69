package a2a

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BerylCAtieno/marketing-super-agent/internal/agent"
	"github.com/BerylCAtieno/marketing-super-agent/internal/models"
	"github.com/BerylCAtieno/marketing-super-agent/internal/observability"
	"github.com/BerylCAtieno/marketing-super-agent/internal/render"
	"github.com/BerylCAtieno/marketing-super-agent/internal/router"
	"github.com/BerylCAtieno/marketing-super-agent/internal/superagent"
)

const emptyRequestReply = "Please describe your marketing request, for example \"Create a campaign brief for our spring launch\"."

type A2AHandler struct {
	svc *superagent.Service
}

// NewA2AHandler answers A2A requests from svc's sessions. Scripts play
// instantly since the reply is sent in one piece.
func NewA2AHandler(svc *superagent.Service) *A2AHandler {
	return &A2AHandler{svc: svc.Paced(0)}
}

func (h *A2AHandler) Register(r gin.IRouter) {
	r.GET("/.well-known/agent.json", h.ServeAgentCard)
	r.POST(agent.EndpointPath, h.HandleSuperAgent)
}

// HandleSuperAgent processes A2A JSON-RPC messages.
func (h *A2AHandler) HandleSuperAgent(c *gin.Context) {
	ctx := c.Request.Context()
	log := observability.LoggerFromContext(ctx)

	bodyBytes, err := io.ReadAll(c.Request.Body)
	if err != nil {
		log.Error("read request body", "error", err)
		h.sendErrorResponse(c, nil, "Failed to read request body", CodeParseError)
		return
	}
	log.Debug("a2a request", "body", string(bodyBytes))

	var rpcReq JSONRPCRequest
	if err := json.Unmarshal(bodyBytes, &rpcReq); err != nil {
		log.Warn("decode json-rpc request", "error", err)
		h.sendErrorResponse(c, nil, "Invalid JSON", CodeParseError)
		return
	}

	// Some clients post the message params without the JSON-RPC envelope.
	if rpcReq.JSONRPC == "" && rpcReq.Method == "" {
		h.handleDirectMessage(c, bodyBytes)
		return
	}

	if rpcReq.JSONRPC != jsonRPCVersion {
		log.Warn("invalid json-rpc version", "version", rpcReq.JSONRPC)
		h.sendErrorResponse(c, rpcReq.ID, "Invalid JSON-RPC version", CodeInvalidRequest)
		return
	}

	switch rpcReq.Method {
	case MethodAgentTask, MethodMessageSend:
		h.handleTask(c, rpcReq)
	default:
		log.Warn("unknown method", "method", rpcReq.Method)
		h.sendErrorResponse(c, rpcReq.ID, fmt.Sprintf("Method not found: %s", rpcReq.Method), CodeMethodNotFound)
	}
}

// handleDirectMessage handles a message without the JSON-RPC wrapper.
func (h *A2AHandler) handleDirectMessage(c *gin.Context, bodyBytes []byte) {
	var msgParams MessageParams
	if err := json.Unmarshal(bodyBytes, &msgParams); err != nil || len(msgParams.Message.Parts) == 0 {
		h.sendErrorResponse(c, nil, "Invalid request format", CodeInvalidRequest)
		return
	}

	result := h.run(c.Request.Context(), msgParams.Message)
	h.sendSuccessResponse(c, nil, result)
}

func (h *A2AHandler) handleTask(c *gin.Context, rpcReq JSONRPCRequest) {
	if len(rpcReq.Params) == 0 {
		h.sendErrorResponse(c, rpcReq.ID, "Missing parameters", CodeInvalidParams)
		return
	}

	var msgParams MessageParams
	if err := json.Unmarshal(rpcReq.Params, &msgParams); err != nil {
		observability.LoggerFromContext(c.Request.Context()).Warn("decode params", "error", err)
		h.sendErrorResponse(c, rpcReq.ID, "Invalid parameters", CodeInvalidParams)
		return
	}

	result := h.run(c.Request.Context(), msgParams.Message)
	h.sendSuccessResponse(c, rpcReq.ID, result)
}

// run plays the message against the session named by its context id, or a
// new session when the id is empty or unknown.
func (h *A2AHandler) run(ctx context.Context, msg A2AMessage) TaskResult {
	log := observability.LoggerFromContext(ctx)

	taskID := msg.TaskID
	if taskID == "" {
		taskID = uuid.New().String()
	}
	sessionID := h.resolveSession(ctx, msg.ContextID)

	text := extractText(ctx, msg)
	if text == "" {
		log.Info("no request text in message", "task_id", taskID)
		return h.createTaskResult(taskID, sessionID, StateInputRequired, emptyRequestReply)
	}

	rec := render.NewRecorder()
	route, err := h.svc.SendMessage(ctx, sessionID, text, rec)
	if err != nil {
		log.Error("play message", "task_id", taskID, "error", err)
		return h.createTaskResult(taskID, sessionID, StateFailed, fmt.Sprintf("Failed to process request: %v", err))
	}

	log.Info("a2a task completed",
		"task_id", taskID,
		"context_id", sessionID,
		"category", route.Category)
	return h.createSuccessTaskResult(taskID, sessionID, route, rec)
}

func (h *A2AHandler) resolveSession(ctx context.Context, contextID string) string {
	if contextID != "" {
		if _, err := h.svc.Session(ctx, contextID); err == nil {
			return contextID
		} else if !errors.Is(err, models.ErrSessionNotFound) {
			observability.LoggerFromContext(ctx).Warn("lookup session", "context_id", contextID, "error", err)
		}
	}
	return h.svc.StartSession(ctx).ID
}

// ServeAgentCard serves the agent card for the host the request came in on.
func (h *A2AHandler) ServeAgentCard(c *gin.Context) {
	scheme := "http"
	if c.Request.TLS != nil || c.GetHeader("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	c.JSON(http.StatusOK, agent.NewCard(scheme+"://"+c.Request.Host))
}

// extractText collects the request text from text parts and, failing that,
// the most recent user turn in a data part carrying conversation history.
func extractText(ctx context.Context, msg A2AMessage) string {
	var texts []string

	for _, part := range msg.Parts {
		switch part.Kind {
		case "text":
			if t := strings.TrimSpace(part.Text); t != "" {
				texts = append(texts, t)
			}
		case "data":
			if t := lastHistoryText(ctx, part.Data); t != "" {
				texts = append(texts, t)
			}
		}
	}

	return strings.TrimSpace(strings.Join(texts, " "))
}

func lastHistoryText(ctx context.Context, data any) string {
	if data == nil {
		return ""
	}
	dataBytes, err := json.Marshal(data)
	if err != nil {
		return ""
	}
	var items []map[string]any
	if err := json.Unmarshal(dataBytes, &items); err != nil {
		observability.LoggerFromContext(ctx).Debug("data part is not a history list", "error", err)
		return ""
	}

	for i := len(items) - 1; i >= 0; i-- {
		if kind, _ := items[i]["kind"].(string); kind != "text" {
			continue
		}
		text, _ := items[i]["text"].(string)
		text = strings.NewReplacer("<p>", "", "</p>", "").Replace(strings.TrimSpace(text))
		text = strings.TrimSpace(text)

		// skip progress chatter echoed back by some clients
		if text == "" || strings.Trim(text, ".") == "" || strings.HasPrefix(text, "🔍") {
			continue
		}
		return text
	}
	return ""
}

func (h *A2AHandler) createSuccessTaskResult(taskID, contextID string, route router.Route, rec *render.Recorder) TaskResult {
	messages := rec.Messages()

	var reply string
	history := make([]A2AMessage, 0, len(messages))
	for _, m := range messages {
		role := RoleAgent
		if m.Sender == models.SenderUser {
			role = RoleUser
		} else {
			reply = m.Content
		}
		history = append(history, A2AMessage{
			Kind:      "message",
			Role:      role,
			MessageID: uuid.New().String(),
			TaskID:    taskID,
			ContextID: contextID,
			Parts:     []MessagePart{TextPart(m.Content)},
		})
	}

	result := h.createTaskResult(taskID, contextID, StateCompleted, reply)
	result.History = history
	result.Artifacts = []Artifact{{
		ArtifactID: uuid.New().String(),
		Name:       "Activated Agents",
		Parts:      []MessagePart{DataPart(route)},
	}}

	if ev, ok := rec.Last(superagent.KindThoughtsOffered); ok && len(ev.Thoughts) > 0 {
		result.Artifacts = append(result.Artifacts, Artifact{
			ArtifactID: uuid.New().String(),
			Name:       "Thought Process",
			Parts:      []MessagePart{DataPart(ev.Thoughts)},
		})
	}
	if ev, ok := rec.Last(superagent.KindFollowUps); ok && len(ev.Suggestions) > 0 {
		result.Artifacts = append(result.Artifacts, Artifact{
			ArtifactID: uuid.New().String(),
			Name:       "Suggested Follow-ups",
			Parts:      []MessagePart{TextPart("- " + strings.Join(ev.Suggestions, "\n- "))},
		})
	}
	return result
}

func (h *A2AHandler) createTaskResult(taskID, contextID, state, text string) TaskResult {
	return TaskResult{
		ID:        taskID,
		ContextID: contextID,
		Kind:      "task",
		Status: TaskStatus{
			State:     state,
			Timestamp: Timestamp(),
			Message: &A2AMessage{
				Kind:      "message",
				Role:      RoleAgent,
				MessageID: uuid.New().String(),
				TaskID:    taskID,
				ContextID: contextID,
				Parts:     []MessagePart{TextPart(text)},
			},
		},
	}
}

func (h *A2AHandler) sendSuccessResponse(c *gin.Context, id any, result any) {
	c.JSON(http.StatusOK, JSONRPCResponse{
		JSONRPC: jsonRPCVersion,
		ID:      id,
		Result:  result,
	})
}

func (h *A2AHandler) sendErrorResponse(c *gin.Context, id any, message string, code int) {
	observability.LoggerFromContext(c.Request.Context()).Warn("json-rpc error", "code", code, "message", message)

	// JSON-RPC errors are sent with 200 OK
	c.JSON(http.StatusOK, JSONRPCResponse{
		JSONRPC: jsonRPCVersion,
		ID:      id,
		Error:   &JSONRPCError{Code: code, Message: message},
	})
}
