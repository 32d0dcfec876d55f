// Package api exposes the fill engine over HTTP: a fill endpoint, an
// authenticated history endpoint, and a websocket event stream.
package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/crossfill/xwords/internal/auth"
	"github.com/crossfill/xwords/internal/cache"
	"github.com/crossfill/xwords/internal/models"
	"github.com/crossfill/xwords/internal/realtime"
	"github.com/crossfill/xwords/internal/store"
	"github.com/crossfill/xwords/pkg/dict"
	"github.com/crossfill/xwords/pkg/fill"
	"github.com/crossfill/xwords/pkg/grid"
)

// Server bundles the dependencies of the HTTP surface. Store, Cache, and Hub
// are optional; a nil value disables that feature.
type Server struct {
	Trie    *dict.Trie
	Bigrams *dict.BigramTable
	Store   store.Store
	Cache   *cache.SolutionCache
	Hub     *realtime.Hub
	Auth    *auth.Service
	Logger  *slog.Logger

	metrics *PerformanceMetrics
}

// NewRouter wires middleware and routes.
func NewRouter(s *Server) *gin.Engine {
	s.metrics = newPerformanceMetrics()

	router := gin.New()
	router.Use(gin.Recovery(), CORS(), s.RequestID(), s.Logging(), s.PerformanceMonitor())

	router.GET("/health", s.Health)
	router.POST("/api/auth/token", s.Token)
	router.POST("/api/fill", s.Fill)

	authed := router.Group("/", s.RequireAuth())
	authed.GET("/api/fills", s.ListFills)
	authed.GET("/api/fills/:id", s.GetFill)
	authed.GET("/api/metrics", s.Metrics)

	if s.Hub != nil {
		router.GET("/ws/events", func(c *gin.Context) {
			s.Hub.ServeWS(c.Writer, c.Request)
		})
	}

	return router
}

// Health reports liveness.
func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "time": time.Now().Unix()})
}

// TokenRequest carries the admin password.
type TokenRequest struct {
	Password string `json:"password" binding:"required"`
}

// Token exchanges the admin password for a bearer token.
func (s *Server) Token(c *gin.Context) {
	var req TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	token, err := s.Auth.Authenticate(req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// FillRequest is a grid to fill. Width and height must be given together;
// when both are zero the grid must be square.
type FillRequest struct {
	Grid    string `json:"grid" binding:"required"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	Workers int    `json:"workers"`
	Simple  bool   `json:"simple"`
}

// FillResponse is a completed fill.
type FillResponse struct {
	ID         string   `json:"id"`
	Rows       []string `json:"rows"`
	DurationMs int64    `json:"durationMs"`
	Cached     bool     `json:"cached"`
}

// Fill parses the request grid, consults the solution cache, and runs the
// requested driver.
func (s *Server) Fill(c *gin.Context) {
	var req FillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if (req.Width == 0) != (req.Height == 0) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "width and height must be given together"})
		return
	}

	var (
		g   grid.Grid
		err error
	)
	if req.Width > 0 {
		g, err = grid.Rectangle(req.Grid, req.Width, req.Height)
	} else {
		g, err = grid.Square(req.Grid)
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id := uuid.New().String()

	if s.Cache != nil {
		if contents, hit, cacheErr := s.Cache.Get(c.Request.Context(), g); cacheErr == nil && hit {
			solved, parseErr := grid.Rectangle(contents, g.Width(), g.Height())
			if parseErr == nil {
				c.JSON(http.StatusOK, FillResponse{ID: id, Rows: gridRows(solved), Cached: true})
				return
			}
		} else if cacheErr != nil {
			s.Logger.Warn("solution cache read failed", "error", cacheErr)
		}
	}

	s.publish(models.FillEvent{Type: models.EventFillStarted, ID: id})

	filler, strategy := s.filler(req, id)
	start := time.Now()
	solved, err := filler.Fill(g)
	elapsed := time.Since(start)

	if err != nil {
		s.publish(models.FillEvent{Type: models.EventFillFailed, ID: id, Error: err.Error()})
		if errors.Is(err, fill.ErrNoFill) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "no fill found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "fill failed"})
		return
	}

	s.publish(models.FillEvent{Type: models.EventFillCompleted, ID: id, DurationMs: elapsed.Milliseconds()})

	if s.Cache != nil {
		if cacheErr := s.Cache.Set(c.Request.Context(), g, solved.Contents()); cacheErr != nil {
			s.Logger.Warn("solution cache write failed", "error", cacheErr)
		}
	}
	if s.Store != nil {
		rec := models.FillRecord{
			ID:         id,
			Width:      g.Width(),
			Height:     g.Height(),
			Input:      g.Contents(),
			Solution:   solved.Contents(),
			Strategy:   strategy,
			DurationMs: elapsed.Milliseconds(),
			CreatedAt:  time.Now().UTC(),
		}
		if saveErr := s.Store.SaveFill(c.Request.Context(), rec); saveErr != nil {
			s.Logger.Warn("failed to save fill record", "error", saveErr)
		}
	}

	c.JSON(http.StatusOK, FillResponse{ID: id, Rows: gridRows(solved), DurationMs: elapsed.Milliseconds()})
}

// filler picks the driver for a request and hooks progress events into the
// hub.
func (s *Server) filler(req FillRequest, id string) (fill.Filler, string) {
	progress := func(p fill.Progress) {
		s.publish(models.FillEvent{Type: models.EventFillProgress, ID: id, Candidates: p.Candidates})
	}

	switch {
	case req.Simple:
		return fill.NewSimpleSolver(s.Trie), "simple"
	case req.Workers > 1:
		solver := fill.NewParallelSolver(s.Trie, s.Bigrams)
		solver.Workers = req.Workers
		solver.OnProgress = progress
		return solver, "parallel"
	default:
		solver := fill.NewSolver(s.Trie, s.Bigrams)
		solver.OnProgress = progress
		return solver, "priority"
	}
}

func (s *Server) publish(ev models.FillEvent) {
	if s.Hub != nil {
		s.Hub.Broadcast(ev)
	}
}

// ListFills returns recent fill records.
func (s *Server) ListFills(c *gin.Context) {
	if s.Store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no store configured"})
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	fills, err := s.Store.ListFills(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"fills": fills})
}

// GetFill returns one fill record.
func (s *Server) GetFill(c *gin.Context) {
	if s.Store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no store configured"})
		return
	}
	rec, err := s.Store.GetFill(c.Request.Context(), c.Param("id"))
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}
	c.JSON(http.StatusOK, rec)
}

func gridRows(g grid.Grid) []string {
	return strings.Split(g.String(), "\n")
}
