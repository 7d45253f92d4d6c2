// path: internal/game/game.go
package game

import (
	"go.uber.org/zap"
)

// MoveRecord is one applied move in the log.
type MoveRecord struct {
	Ply      int       `json:"ply"`
	Color    Color     `json:"color"`
	Piece    PieceType `json:"piece"`
	From     Square    `json:"from"`
	To       Square    `json:"to"`
	Capture  bool      `json:"capture"`
	Castle   string    `json:"castle,omitempty"`
	Notation string    `json:"notation"`
}

func (r MoveRecord) describe() string {
	if r.Castle != "" {
		return r.Castle
	}
	if r.Notation != "" {
		return r.Notation
	}
	sep := " "
	if r.Capture {
		sep = "x"
	}
	return r.Piece.Letter() + r.From.String() + sep + r.To.String()
}

// Game owns the board, the piece registries and all turn bookkeeping.
// It is single-threaded; callers that share an instance must serialize
// access themselves.
type Game struct {
	board    Board
	pieces   map[Color][]*Piece
	captured map[Color][]*Piece

	active        Color
	turnNumber    int
	halfmoveClock int
	enPassant     EnPassantTarget
	moves         []MoveRecord

	log *zap.Logger
}

// NewGame returns a game in the standard starting position. The
// logger is observability only and may be nil.
func NewGame(log *zap.Logger) *Game {
	if log == nil {
		log = zap.NewNop()
	}
	g := &Game{log: log}
	g.Reset()
	return g
}

// Reset restores the standard starting position and bookkeeping.
func (g *Game) Reset() {
	g.ClearBoard()
	backRank := []PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for _, color := range []Color{White, Black} {
		pawnRank := color.backRank() + color.PawnDirection()
		for file := 0; file < 8; file++ {
			home, _ := SquareFromCoords(color.backRank(), file)
			front, _ := SquareFromCoords(pawnRank, file)
			_ = g.AddPiece(NewPiece(color, backRank[file], home))
			_ = g.AddPiece(NewPiece(color, Pawn, front))
		}
	}
}

// ClearBoard empties the board and all registries. Test and setup
// positions are then built with AddPiece.
func (g *Game) ClearBoard() {
	g.board.clear()
	g.pieces = map[Color][]*Piece{White: nil, Black: nil}
	g.captured = map[Color][]*Piece{White: nil, Black: nil}
	g.active = White
	g.turnNumber = 1
	g.halfmoveClock = 0
	g.enPassant = NoEnPassantTarget()
	g.moves = nil
}

// ---------------------------
// Registries and direct board access
// ---------------------------

// AddPiece places a piece on the board and registers it. Escape hatch
// for setup and tests; normal play never calls it except promotion.
func (g *Game) AddPiece(p *Piece) error {
	if err := g.board.place(p); err != nil {
		return err
	}
	g.pieces[p.Color] = append(g.pieces[p.Color], p)
	return nil
}

// RemovePieceAt drops the piece on sq from the board and its registry
// without capture bookkeeping. Escape hatch for setup and tests.
func (g *Game) RemovePieceAt(sq Square) (*Piece, error) {
	p := g.board.remove(sq)
	if p == nil {
		return nil, newMoveError(KindEmptySource, Pawn, sq, NoSquare, "nothing to remove")
	}
	g.pieces[p.Color] = removePiece(g.pieces[p.Color], p)
	return p, nil
}

func removePiece(list []*Piece, target *Piece) []*Piece {
	for i, p := range list {
		if p == target {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}

// detachVictim moves a captured piece from the live registry to the
// captured list and off the board.
func (g *Game) detachVictim(victim *Piece) {
	g.board.remove(victim.Square)
	victim.Captured = true
	g.pieces[victim.Color] = removePiece(g.pieces[victim.Color], victim)
	g.captured[victim.Color] = append(g.captured[victim.Color], victim)
}

// King returns color's live king, nil if absent (bare test positions).
func (g *Game) King(color Color) *Piece {
	for _, p := range g.pieces[color] {
		if p.Kind == King && !p.Captured {
			return p
		}
	}
	return nil
}

// ---------------------------
// Accessors
// ---------------------------

// Board exposes the square table for read-mostly callers.
func (g *Game) Board() *Board { return &g.board }

// PieceAt returns the piece on sq, nil when empty.
func (g *Game) PieceAt(sq Square) *Piece { return g.board.PieceAt(sq) }

// ActivePlayer returns the side to move.
func (g *Game) ActivePlayer() Color { return g.active }

// SetActivePlayer overrides the side to move. Setup/test escape hatch.
func (g *Game) SetActivePlayer(c Color) { g.active = c }

// Pieces returns color's live pieces.
func (g *Game) Pieces(color Color) []*Piece { return g.pieces[color] }

// CapturedPieces returns the captured pieces of the given color
// (keyed by the victim's color, not the captor's).
func (g *Game) CapturedPieces(color Color) []*Piece { return g.captured[color] }

// Moves returns the applied move log.
func (g *Game) Moves() []MoveRecord { return g.moves }

// EnPassant returns the current en-passant target.
func (g *Game) EnPassant() EnPassantTarget { return g.enPassant }

// TurnNumber returns the full-move number, starting at 1.
func (g *Game) TurnNumber() int { return g.turnNumber }

// HalfmoveClock returns the plies since the last pawn move or capture.
func (g *Game) HalfmoveClock() int { return g.halfmoveClock }

// ---------------------------
// Finalize
// ---------------------------

// finalize runs after every applied move: log entry, turn flip,
// checkmate probe, clocks.
func (g *Game) finalize(rec MoveRecord) {
	rec.Ply = len(g.moves) + 1
	g.moves = append(g.moves, rec)
	g.active = g.active.Opposite()
	if g.CheckForCheckmate() {
		g.log.Info("checkmate detected",
			zap.String("side", g.active.Opposite().String()),
			zap.String("move", rec.describe()))
	}
	if rec.Piece == Pawn || rec.Capture {
		g.halfmoveClock = 0
	} else {
		g.halfmoveClock++
	}
	if g.active == White {
		g.turnNumber++
	}
	g.log.Debug("move applied",
		zap.String("move", rec.describe()),
		zap.Int("ply", rec.Ply),
		zap.String("next", g.active.String()))
}
