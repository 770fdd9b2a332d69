package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BerylCAtieno/marketing-super-agent/internal/a2a"
	"github.com/BerylCAtieno/marketing-super-agent/internal/agent"
	"github.com/BerylCAtieno/marketing-super-agent/internal/config"
	"github.com/BerylCAtieno/marketing-super-agent/internal/httpapi"
	"github.com/BerylCAtieno/marketing-super-agent/internal/observability"
	"github.com/BerylCAtieno/marketing-super-agent/internal/session"
	"github.com/BerylCAtieno/marketing-super-agent/internal/superagent"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		observability.Logger().Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	log := observability.New(cfg.LogLevel, cfg.LogFormat, os.Stdout)
	observability.SetLogger(log)

	if cfg.Mode == config.ModeDebug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	store, err := session.NewStore(cfg.MaxSessions)
	if err != nil {
		log.Error("create session store", "error", err)
		os.Exit(1)
	}
	svc := superagent.NewService(store, superagent.WithPace(cfg.Pace))

	router := gin.New()
	router.Use(gin.Recovery(), httpapi.CORS(), httpapi.RequestID(), httpapi.RequestLogger())

	httpapi.NewServer(svc).Register(router)
	a2a.NewA2AHandler(svc).Register(router)

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	go func() {
		<-ctx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error("server shutdown", "error", err)
		}
	}()

	log.Info("marketing super agent starting",
		"port", cfg.Port,
		"mode", cfg.Mode,
		"pace", cfg.Pace,
		"max_sessions", cfg.MaxSessions,
		"agent_card", "http://localhost:"+cfg.Port+"/.well-known/agent.json",
		"a2a_endpoint", "http://localhost:"+cfg.Port+agent.EndpointPath,
	)

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("server failed", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}
