// path: internal/game/moves.go
package game

import (
	"fmt"

	"go.uber.org/zap"
)

// Move applies one move from from to to for the active player. The
// classification order matters: en passant is recognized before the
// standard occupancy rules because its destination square is empty.
// Self-check is not policed here; the notation resolver filters it,
// direct coordinate callers are trusted.
func (g *Game) Move(from, to Square) error {
	if !from.Valid() || !to.Valid() {
		return newMoveError(KindInvalidSquare, Pawn, from, to, "move endpoints must be board squares")
	}
	pc := g.board.PieceAt(from)
	if pc == nil {
		return newMoveError(KindEmptySource, Pawn, from, to, "source square is empty")
	}
	if pc.Color != g.active {
		return newMoveError(KindWrongTurnOwner, pc.Kind, from, to, fmt.Sprintf("%s to move", g.active))
	}

	if g.isEnPassantMove(pc, to) {
		return g.applyEnPassant(pc, from, to)
	}

	target := g.board.PieceAt(to)
	if target != nil {
		if target.Color == pc.Color {
			return newMoveError(KindIllegalCapture, pc.Kind, from, to, "destination holds a friendly piece")
		}
		if !pc.CanTake(to, g) {
			return g.rejectMove(pc, from, to, true)
		}
	} else if !pc.CanMoveTo(to, g) {
		return g.rejectMove(pc, from, to, false)
	}

	// Any applied move closes the en-passant window; onMoved reopens
	// it for a fresh double step.
	g.enPassant = NoEnPassantTarget()

	capture := false
	if target != nil {
		g.detachVictim(target)
		capture = true
	}
	g.board.ForceMove(from, to)
	pc.onMoved(from, to, g)
	g.finalize(MoveRecord{Color: pc.Color, Piece: pc.Kind, From: from, To: to, Capture: capture})
	return nil
}

// MoveCoords is Move with algebraic endpoints, e.g. ("e2", "e4").
func (g *Game) MoveCoords(from, to string) error {
	fromSq, err := ParseSquare(from)
	if err != nil {
		return err
	}
	toSq, err := ParseSquare(to)
	if err != nil {
		return err
	}
	return g.Move(fromSq, toSq)
}

// isEnPassantMove reports whether pc moving to to is the stored
// en-passant capture: a pawn landing diagonally on the recorded empty
// target square.
func (g *Game) isEnPassantMove(pc *Piece, to Square) bool {
	if pc.Kind != Pawn || !g.enPassant.Valid() || to != g.enPassant.Square() {
		return false
	}
	if g.board.PieceAt(to) != nil {
		return false
	}
	df, dr := pc.Square.Delta(to)
	return abs(df) == 1 && dr == pc.Color.PawnDirection()
}

// applyEnPassant removes the passed pawn, one rank behind the
// destination on the destination file, then relocates the captor.
func (g *Game) applyEnPassant(pc *Piece, from, to Square) error {
	victimSq, ok := to.Offset(0, -pc.Color.PawnDirection())
	if !ok {
		return newMoveError(KindIllegalCapture, Pawn, from, to, "en passant victim square off board")
	}
	victim := g.board.PieceAt(victimSq)
	if victim == nil || victim.Color == pc.Color || victim.Kind != Pawn {
		return newMoveError(KindIllegalCapture, Pawn, from, to, fmt.Sprintf("no enemy pawn on %s to take en passant", victimSq))
	}
	g.enPassant = NoEnPassantTarget()
	g.detachVictim(victim)
	g.board.ForceMove(from, to)
	pc.onMoved(from, to, g)
	g.finalize(MoveRecord{Color: pc.Color, Piece: Pawn, From: from, To: to, Capture: true})
	return nil
}

// rejectMove classifies why a capability check said no.
func (g *Game) rejectMove(pc *Piece, from, to Square, capture bool) error {
	if !pc.geometryReaches(to, capture) {
		return newMoveError(KindIllegalGeometry, pc.Kind, from, to, "")
	}
	switch pc.Kind {
	case King:
		// Geometry fit, so the refusal was the attacked-square rule.
		return newMoveError(KindSelfCheck, King, from, to, "destination square is attacked")
	case Pawn:
		return newMoveError(KindBlockedPath, Pawn, from, to, "pawn advance is blocked")
	default:
		if !g.board.IsPathClear(from, to) {
			return newMoveError(KindBlockedPath, pc.Kind, from, to, "")
		}
		return newMoveError(KindIllegalGeometry, pc.Kind, from, to, "")
	}
}

// PromotePawn replaces the pawn standing on sq with a new piece of
// the given kind. The caller applies the reaching move first.
func (g *Game) PromotePawn(sq Square, kind PieceType) error {
	pc := g.board.PieceAt(sq)
	if pc == nil || pc.Kind != Pawn {
		return newMoveError(KindPromotion, Pawn, sq, sq, "no pawn on promotion square")
	}
	if sq.Rank() != pc.Color.lastRank() {
		return newMoveError(KindPromotion, Pawn, sq, sq, "pawns promote only on the last rank")
	}
	switch kind {
	case Queen, Rook, Bishop, Knight:
	default:
		return newMoveError(KindPromotion, kind, sq, sq, "promotion piece must be queen, rook, bishop or knight")
	}
	if _, err := g.RemovePieceAt(sq); err != nil {
		return err
	}
	promoted := NewPiece(pc.Color, kind, sq)
	promoted.HasMoved = true
	if err := g.AddPiece(promoted); err != nil {
		return err
	}
	g.log.Debug("pawn promoted",
		zap.String("square", sq.String()),
		zap.String("to", kind.String()))
	return nil
}
