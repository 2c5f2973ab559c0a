package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	googleauth "github.com/Rithb898/AI-Application-Assistant/internal/auth"
	"github.com/Rithb898/AI-Application-Assistant/internal/generation"
	"github.com/Rithb898/AI-Application-Assistant/internal/history"
	"github.com/Rithb898/AI-Application-Assistant/internal/resumes"
	"github.com/Rithb898/AI-Application-Assistant/internal/shared/config"
	"github.com/Rithb898/AI-Application-Assistant/internal/shared/metrics"
	"github.com/Rithb898/AI-Application-Assistant/internal/shared/server/middleware"
	"github.com/Rithb898/AI-Application-Assistant/internal/shared/server/respond"
)

// RouterDeps carries the handlers the router wires up.
type RouterDeps struct {
	Config            config.Config
	GenerationHandler *generation.Handler
	ResumesHandler    *resumes.Handler
	HistoryHandler    *history.Handler
	GoogleAuth        *googleauth.GoogleService
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.Identity(),
	)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	api.GET("/metrics", metrics.Handler())
	registerMeRoutes(api)
	if deps.GoogleAuth != nil {
		deps.GoogleAuth.RegisterRoutes(api)
	}
	if deps.GenerationHandler != nil {
		deps.GenerationHandler.RegisterRoutes(api)
	}
	if deps.ResumesHandler != nil {
		deps.ResumesHandler.RegisterRoutes(api)
	}
	if deps.HistoryHandler != nil {
		deps.HistoryHandler.RegisterRoutes(api)
	}

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
