// path: internal/api/server.go

// Package api exposes one engine instance over a small JSON API. The
// engine itself is single-threaded; the server serializes access with
// a mutex.
package api

import (
	"errors"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"chess_arbiter/internal/game"
)

const maxBodyBytes = 4 << 10

// Server owns one game and its lock.
type Server struct {
	mu   sync.Mutex
	game *game.Game
	log  *zap.Logger
}

// NewServer wraps a game. The logger may be nil.
func NewServer(g *game.Game, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{game: g, log: log}
}

// Router builds the gin engine with all routes attached.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), s.limitBody)

	router.GET("/health", s.handleHealth)
	router.GET("/state", s.handleState)
	router.GET("/fen", s.handleFEN)
	router.POST("/move", s.handleMove)
	router.POST("/move/compact", s.handleCompactMove)
	router.POST("/reset", s.handleReset)
	return router
}

func (s *Server) limitBody(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)
	c.Next()
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleState(c *gin.Context) {
	s.mu.Lock()
	state := s.game.State()
	s.mu.Unlock()
	c.JSON(http.StatusOK, state)
}

func (s *Server) handleFEN(c *gin.Context) {
	s.mu.Lock()
	fen := s.game.ExportFEN()
	s.mu.Unlock()
	c.JSON(http.StatusOK, gin.H{"fen": fen})
}

type moveRequest struct {
	From      string `json:"from" binding:"required"`
	To        string `json:"to" binding:"required"`
	Promotion string `json:"promotion"`
}

func (s *Server) handleMove(c *gin.Context) {
	var req moveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.game.MoveCoords(req.From, req.To); err != nil {
		s.rejectMove(c, err)
		return
	}
	if req.Promotion != "" {
		kind, ok := game.PieceTypeFromLetter(req.Promotion)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown promotion piece " + req.Promotion})
			return
		}
		to, err := game.ParseSquare(req.To)
		if err != nil {
			s.rejectMove(c, err)
			return
		}
		if err := s.game.PromotePawn(to, kind); err != nil {
			s.rejectMove(c, err)
			return
		}
	}
	s.log.Debug("move accepted", zap.String("from", req.From), zap.String("to", req.To))
	c.JSON(http.StatusOK, s.game.State())
}

type compactMoveRequest struct {
	Move string `json:"move" binding:"required"`
}

func (s *Server) handleCompactMove(c *gin.Context) {
	var req compactMoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.game.MakeCompactMove(req.Move); err != nil {
		s.rejectMove(c, err)
		return
	}
	s.log.Debug("compact move accepted", zap.String("move", req.Move))
	c.JSON(http.StatusOK, s.game.State())
}

func (s *Server) handleReset(c *gin.Context) {
	s.mu.Lock()
	s.game.Reset()
	state := s.game.State()
	s.mu.Unlock()
	c.JSON(http.StatusOK, state)
}

// rejectMove renders an engine rejection: 422 with the error kind when
// the move itself was illegal, 400 for malformed input.
func (s *Server) rejectMove(c *gin.Context, err error) {
	var moveErr *game.MoveError
	if errors.As(err, &moveErr) {
		status := http.StatusUnprocessableEntity
		if moveErr.Kind == game.KindInvalidSquare {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{
			"error": moveErr.Error(),
			"kind":  moveErr.Kind.String(),
		})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
