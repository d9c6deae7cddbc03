// Package server exposes the screening engine over HTTP. Routing and
// error mapping live here; all screening logic stays in the engine
// packages.
package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/nlebele/dyscreen/internal/assess"
	"github.com/nlebele/dyscreen/internal/store"
	"github.com/nlebele/dyscreen/internal/survey"
)

// Config controls the HTTP surface.
type Config struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string

	// AllowedOrigins configures CORS for browser clients.
	AllowedOrigins []string
}

// Server wires the engine into a gin router.
type Server struct {
	cfg     Config
	tracker *assess.Tracker
	surveys *survey.Service
	results store.ResultRepo
	engine  *gin.Engine
}

// New builds the router with all routes registered.
func New(cfg Config, tracker *assess.Tracker, surveys *survey.Service, results store.ResultRepo) *Server {
	s := &Server{
		cfg:     cfg,
		tracker: tracker,
		surveys: surveys,
		results: results,
	}

	engine := gin.New()
	engine.Use(gin.Logger(), gin.Recovery())

	if len(cfg.AllowedOrigins) > 0 {
		engine.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:     []string{"Content-Type", "Accept", "Origin", headerSubjectID, headerActorRole, headerActorAdmin},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	engine.GET("/healthz", s.handleHealth)

	api := engine.Group("/api/v1", resolveActor)
	{
		assessment := api.Group("/assessment")
		{
			assessment.POST("/begin", s.handleBegin)
			assessment.GET("/question", s.handleQuestion)
			assessment.POST("/answer", s.handleAnswer)
			assessment.GET("/result", s.handleResult)
		}

		api.POST("/survey", s.handleSurvey)

		staff := api.Group("/staff", s.requireStaff)
		{
			staff.GET("/results", s.handleStaffList)
			staff.GET("/results/:subject", s.handleStaffDetail)
		}
	}

	s.engine = engine
	return s
}

// Router returns the underlying gin engine, used by tests and by Run.
func (s *Server) Router() *gin.Engine {
	return s.engine
}

// Run serves HTTP until the listener fails.
func (s *Server) Run() error {
	return s.engine.Run(s.cfg.Addr)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
