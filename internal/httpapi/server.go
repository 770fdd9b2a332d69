// Package httpapi exposes the super agent over REST. Script playback either
// completes before the response is written or, with ?stream=1, is streamed
// as Server-Sent Events at the configured pace.
package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BerylCAtieno/marketing-super-agent/internal/catalog"
	"github.com/BerylCAtieno/marketing-super-agent/internal/models"
	"github.com/BerylCAtieno/marketing-super-agent/internal/render"
	"github.com/BerylCAtieno/marketing-super-agent/internal/router"
	"github.com/BerylCAtieno/marketing-super-agent/internal/superagent"
)

type Server struct {
	// blocking plays instantly so whole replies can be returned at once.
	blocking *superagent.Service
	live     *superagent.Service
}

// NewServer serves svc. Streamed requests play at svc's pace; all other
// requests share its sessions but play instantly.
func NewServer(svc *superagent.Service) *Server {
	return &Server{
		blocking: svc.Paced(0),
		live:     svc,
	}
}

// Register mounts every route on r.
func (s *Server) Register(r gin.IRouter) {
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	r.POST("/classify", s.classify)
	r.GET("/agents", s.agents)
	r.GET("/catalog", s.listCatalog)

	sessions := r.Group("/sessions")
	sessions.POST("", s.createSession)
	sessions.GET("/:id", s.getSession)
	sessions.GET("/:id/thoughts", s.thoughts)
	sessions.POST("/:id/messages", s.sendMessage)
	sessions.POST("/:id/agents/:slug/click", s.clickAgent)
	sessions.POST("/:id/actions/:action", s.quickAction)
	sessions.POST("/:id/tools/:tool", s.activateTool)
	sessions.POST("/:id/commands/:command", s.runCommand)
	sessions.POST("/:id/campaigns", s.startCampaign)
}

func (s *Server) classify(c *gin.Context) {
	var req textRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, fmt.Errorf("%w: %v", models.ErrInvalidInput, err))
		return
	}
	c.JSON(http.StatusOK, router.Dispatch(req.Text))
}

func (s *Server) agents(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.Agents())
}

func (s *Server) listCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, catalogResponse{
		QuickActions: catalog.QuickActions(),
		Tools:        catalog.Tools(),
		Commands:     catalog.Commands(),
	})
}

func (s *Server) createSession(c *gin.Context) {
	st := s.live.StartSession(c.Request.Context())
	c.JSON(http.StatusCreated, newSessionResponse(st))
}

func (s *Server) getSession(c *gin.Context) {
	st, err := s.live.Session(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, newSessionResponse(st))
}

func (s *Server) thoughts(c *gin.Context) {
	tps, ok, err := s.live.Thoughts(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, errorResponse{Error: "no thought process yet"})
		return
	}
	c.JSON(http.StatusOK, thoughtsResponse{Thoughts: tps})
}

func (s *Server) sendMessage(c *gin.Context) {
	var req textRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, fmt.Errorf("%w: %v", models.ErrEmptyMessage, err))
		return
	}
	id := c.Param("id")
	s.play(c, func(ctx context.Context, svc *superagent.Service, r superagent.Renderer) (*router.Route, error) {
		route, err := svc.SendMessage(ctx, id, req.Text, r)
		return &route, err
	})
}

func (s *Server) clickAgent(c *gin.Context) {
	id, slug := c.Param("id"), c.Param("slug")
	s.play(c, func(ctx context.Context, svc *superagent.Service, r superagent.Renderer) (*router.Route, error) {
		return nil, svc.ClickAgent(ctx, id, slug, r)
	})
}

func (s *Server) quickAction(c *gin.Context) {
	id, action := c.Param("id"), c.Param("action")
	s.play(c, func(ctx context.Context, svc *superagent.Service, r superagent.Renderer) (*router.Route, error) {
		route, err := svc.QuickAction(ctx, id, action, r)
		return &route, err
	})
}

func (s *Server) activateTool(c *gin.Context) {
	id, tool := c.Param("id"), c.Param("tool")
	s.play(c, func(ctx context.Context, svc *superagent.Service, r superagent.Renderer) (*router.Route, error) {
		return nil, svc.ActivateTool(ctx, id, tool, r)
	})
}

func (s *Server) runCommand(c *gin.Context) {
	id, command := c.Param("id"), c.Param("command")
	s.play(c, func(ctx context.Context, svc *superagent.Service, r superagent.Renderer) (*router.Route, error) {
		return nil, svc.RunCommand(ctx, id, command, r)
	})
}

func (s *Server) startCampaign(c *gin.Context) {
	var req textRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, fmt.Errorf("%w: %v", models.ErrEmptyMessage, err))
		return
	}
	id := c.Param("id")
	s.play(c, func(ctx context.Context, svc *superagent.Service, r superagent.Renderer) (*router.Route, error) {
		route, err := svc.StartCampaign(ctx, id, req.Text, r)
		return &route, err
	})
}

type playFunc func(ctx context.Context, svc *superagent.Service, r superagent.Renderer) (*router.Route, error)

func (s *Server) play(c *gin.Context, run playFunc) {
	if c.Query("stream") == "1" {
		s.stream(c, run)
		return
	}

	ctx := c.Request.Context()
	rec := render.NewRecorder()
	route, err := run(ctx, s.blocking, rec)
	if err != nil {
		writeError(c, err)
		return
	}

	st, err := s.blocking.Session(ctx, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, playResponse{
		Route:   route,
		Events:  newEventResponses(rec.Events()),
		Session: newSessionResponse(st),
	})
}

// stream sends each event as it is played. Errors raised before the first
// event still get a JSON error response.
func (s *Server) stream(c *gin.Context, run playFunc) {
	start := time.Now()
	started := false

	r := superagent.RenderFunc(func(ctx context.Context, ev superagent.Event) error {
		if !started {
			c.Header("Cache-Control", "no-cache")
			c.Header("Connection", "keep-alive")
			c.Header("X-Accel-Buffering", "no")
			started = true
		}
		c.SSEvent(string(ev.Kind), newEventResponse(ev))
		c.Writer.Flush()
		return ctx.Err()
	})

	route, err := run(c.Request.Context(), s.live, r)
	if err != nil {
		if !started {
			writeError(c, err)
			return
		}
		c.SSEvent("error", errorResponse{Error: err.Error()})
		c.Writer.Flush()
		return
	}

	c.SSEvent("done", doneResponse{Route: route, DurationMS: durationMS(start)})
	c.Writer.Flush()
}
