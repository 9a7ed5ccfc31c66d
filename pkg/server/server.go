package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ja7ad/distill/pkg/component"
)

// Server is the HTTP front end of the design pipeline.
type Server struct {
	router *gin.Engine
	store  *Store
	comps  []component.Component
	log    *slog.Logger
}

// New creates a server that designs against the component table comps.
func New(comps []component.Component, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		router: gin.New(),
		store:  NewStore(),
		comps:  comps,
		log:    logger,
	}
	s.router.Use(gin.Recovery(), s.requestLog())
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.GET("/health", s.health)

	api := s.router.Group("/api")
	{
		api.GET("/components", s.components)
		api.GET("/packings", s.packings)
		api.GET("/designs", s.listDesigns)
		api.POST("/designs", s.createDesign)
		api.GET("/designs/:id", s.getDesign)
		api.GET("/designs/:id/sweep", s.getSweep)
		api.GET("/designs/:id/export", s.export)
	}
}

func (s *Server) requestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
		)
	}
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Store returns the design store.
func (s *Server) Store() *Store {
	return s.store
}
