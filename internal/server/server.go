// Package server exposes the analysis pipeline over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ppiankov/crosscheck/internal/model"
	"github.com/ppiankov/crosscheck/internal/pipeline"
)

// Server is the HTTP boundary around an Analyzer
type Server struct {
	engine   *gin.Engine
	analyzer *pipeline.Analyzer
	cfg      model.ServerConfig
	log      *zap.SugaredLogger
}

// New builds the router
func New(cfg model.ServerConfig, analyzer *pipeline.Analyzer, log *zap.SugaredLogger) *Server {
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
	}))

	s := &Server{engine: engine, analyzer: analyzer, cfg: cfg, log: log}
	s.attachRoutes()
	return s
}

func (s *Server) attachRoutes() {
	s.engine.GET("/", s.root)
	s.engine.POST("/analyze", s.analyze)
}

// Handler exposes the router for tests and embedding
func (s *Server) Handler() http.Handler { return s.engine }

// Run serves until the listener fails
func (s *Server) Run() error {
	s.log.Infow("http server listening", "addr", s.cfg.Addr)
	srv := &http.Server{
		Addr:    s.cfg.Addr,
		Handler: s.engine,
	}
	return srv.ListenAndServe()
}

type analyzeRequest struct {
	Input string `json:"input"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

func (s *Server) root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Narrative cross-check API",
		"status":  "running",
	})
}

// analyze runs the full pipeline for one input. Empty input is a 400 and
// an unfetchable URL a 422; everything else degrades inside the pipeline.
func (s *Server) analyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Detail: "invalid request body"})
		return
	}

	ctx := c.Request.Context()
	if s.cfg.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.RequestTimeout)
		defer cancel()
	}

	analysis, err := s.analyzer.Analyze(ctx, req.Input)
	switch {
	case errors.Is(err, pipeline.ErrEmptyInput):
		c.JSON(http.StatusBadRequest, errorResponse{Detail: "Input cannot be empty."})
		return
	case errors.Is(err, pipeline.ErrUnfetchable):
		c.JSON(http.StatusUnprocessableEntity, errorResponse{Detail: "Could not extract content from the provided URL."})
		return
	case err != nil:
		s.log.Errorw("analysis failed", "error", err)
		c.JSON(http.StatusInternalServerError, errorResponse{Detail: "analysis failed"})
		return
	}

	c.JSON(http.StatusOK, analysis)
}
